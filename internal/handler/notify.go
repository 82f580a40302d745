package handler

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// NotifyReview sends the daily review reminder to a user
func (h *Handler) NotifyReview(ctx context.Context, userID int64) error {
	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnReview))

	if _, err := h.bot.Send(&tele.User{ID: userID}, "📖 Time for your daily review!", markup); err != nil {
		return fmt.Errorf("failed to send review reminder: %w", err)
	}
	return nil
}

// NotifyLevelUp congratulates a user who reached a new level
func (h *Handler) NotifyLevelUp(ctx context.Context, userID int64, level int) {
	text := fmt.Sprintf("🎉 Level up! You reached level %d.", level)
	if _, err := h.bot.Send(&tele.User{ID: userID}, text); err != nil {
		h.logger.Error("Failed to send level-up message",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int("level", level),
		)
	}
}
