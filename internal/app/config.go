package app

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/yungbote/swagship-backend/internal/pkg/logger"
	"github.com/yungbote/swagship-backend/internal/utils"
)

type Config struct {
	Port                string
	JWTSecretKey        string
	AccessTokenTTL      time.Duration
	WelcomeCredits      decimal.Decimal
	StripeSecretKey     string
	StripeWebhookSecret string
}

func LoadConfig(log *logger.Logger) Config {
	port := utils.GetEnv("PORT", "8080", log)
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	accessTokenTTLSeconds := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 86400, log)
	welcomeCredits, err := decimal.NewFromString(utils.GetEnv("WELCOME_CREDITS", "40.00", log))
	if err != nil {
		log.Warn("invalid WELCOME_CREDITS value, using default", "error", err)
		welcomeCredits = decimal.NewFromInt(40)
	}
	stripeSecretKey := utils.GetEnv("STRIPE_SECRET_KEY", "", log)
	stripeWebhookSecret := utils.GetEnv("STRIPE_WEBHOOK_SECRET", "", log)
	return Config{
		Port:                port,
		JWTSecretKey:        jwtSecretKey,
		AccessTokenTTL:      time.Duration(accessTokenTTLSeconds) * time.Second,
		WelcomeCredits:      welcomeCredits,
		StripeSecretKey:     stripeSecretKey,
		StripeWebhookSecret: stripeWebhookSecret,
	}
}
