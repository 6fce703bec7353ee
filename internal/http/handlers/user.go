package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/swagship-backend/internal/http/response"
	"github.com/yungbote/swagship-backend/internal/requestdata"
	"github.com/yungbote/swagship-backend/internal/services"
)

type UserHandler struct {
	userService   services.UserService
	ledgerService services.LedgerService
}

func NewUserHandler(userService services.UserService, ledgerService services.LedgerService) *UserHandler {
	return &UserHandler{userService: userService, ledgerService: ledgerService}
}

// GET /api/me
func (uh *UserHandler) GetMe(c *gin.Context) {
	userID := requestdata.UserID(c.Request.Context())
	me, err := uh.userService.GetByID(c.Request.Context(), userID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"me": me})
}

// GET /api/credits/balance
func (uh *UserHandler) GetBalance(c *gin.Context) {
	userID := requestdata.UserID(c.Request.Context())
	balance, err := uh.ledgerService.Balance(c.Request.Context(), userID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"balance": balance})
}

// GET /api/credits/history?page=&limit=
func (uh *UserHandler) GetHistory(c *gin.Context) {
	userID := requestdata.UserID(c.Request.Context())
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	entries, total, err := uh.ledgerService.Entries(c.Request.Context(), userID, page, limit)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{
		"entries": entries,
		"total":   total,
		"page":    page,
	})
}
