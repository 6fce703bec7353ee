package app

import (
	httpMW "github.com/yungbote/swagship-backend/internal/http/middleware"
	"github.com/yungbote/swagship-backend/internal/pkg/logger"
)

type Middleware struct {
	Auth *httpMW.AuthMiddleware
}

func wireMiddleware(log *logger.Logger, svcs Services) Middleware {
	log.Info("Wiring middleware...")
	return Middleware{
		Auth: httpMW.NewAuthMiddleware(log, svcs.Auth),
	}
}
