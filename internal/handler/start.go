package handler

import (
	"context"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const (
	msgGenericError  = "Something went wrong. Please try again later."
	msgAskPassword   = "Hi! This bot is private. Send the password to continue:"
	msgWrongPassword = "Wrong password"
	msgMainMenu      = "🏠 Main menu\n\nSend me any English word, or choose an action:"
)

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID
	ctx := context.Background()

	h.logger.Info("User started bot",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	// Ensure user exists in database
	if err := h.auth.EnsureUserExists(ctx, userID); err != nil {
		h.logger.Error("Failed to ensure user exists", zap.Error(err))
		return c.Send(msgGenericError)
	}

	authorized, err := h.auth.IsAuthorized(ctx, userID)
	if err != nil {
		h.logger.Error("Failed to check authorization", zap.Error(err))
		return c.Send(msgGenericError)
	}

	h.ResetState(userID)
	if !authorized {
		return c.Send(msgAskPassword)
	}
	return c.Send(msgMainMenu, mainMenuMarkup())
}

// handleMainMenu shows the main menu in place of the current message
func (h *Handler) handleMainMenu(c tele.Context) error {
	h.ResetState(c.Sender().ID)
	return h.render(c, msgMainMenu, mainMenuMarkup())
}

// handleCancel cancels current operation and resets state
func (h *Handler) handleCancel(c tele.Context) error {
	return h.handleMainMenu(c)
}
