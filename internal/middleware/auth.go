package middleware

import (
	"context"

	"wordsaver/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Authorizer is the part of the auth service the middleware needs
type Authorizer interface {
	EnsureUserExists(ctx context.Context, userID int64) error
	IsAuthorized(ctx context.Context, userID int64) (bool, error)
}

var _ Authorizer = (*service.AuthService)(nil)

// AuthMiddleware lets only authorized users through
func AuthMiddleware(auth Authorizer, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if c.Sender() == nil {
				return nil
			}
			userID := c.Sender().ID
			ctx := context.Background()

			if err := auth.EnsureUserExists(ctx, userID); err != nil {
				logger.Error("Failed to ensure user exists in middleware", zap.Error(err))
				return reply(c, "Something went wrong. Please try again later.")
			}

			authorized, err := auth.IsAuthorized(ctx, userID)
			if err != nil {
				logger.Error("Failed to check authorization in middleware", zap.Error(err))
				return reply(c, "Something went wrong. Please try again later.")
			}

			// If not authorized and not /start command, prompt for password
			if !authorized && c.Text() != "/start" {
				return reply(c, "Please send the password first. Use /start to begin.")
			}

			return next(c)
		}
	}
}

// reply answers a callback with an alert or sends a message
func reply(c tele.Context, text string) error {
	if c.Callback() != nil {
		return c.Respond(&tele.CallbackResponse{Text: text, ShowAlert: true})
	}
	return c.Send(text)
}
