package handler

import (
	"context"
	"strings"

	"wordsaver/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleText handles all text messages based on state
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())
	ctx := context.Background()

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	if err := h.auth.EnsureUserExists(ctx, userID); err != nil {
		h.logger.Error("Failed to ensure user exists", zap.Error(err))
		return nil
	}

	authorized, err := h.auth.IsAuthorized(ctx, userID)
	if err != nil {
		h.logger.Error("Failed to check authorization", zap.Error(err))
		return c.Send(msgGenericError)
	}

	if !authorized {
		if !h.auth.CheckPassword(text) {
			return c.Send(msgWrongPassword)
		}

		if err := h.auth.AuthorizeUser(ctx, userID); err != nil {
			h.logger.Error("Failed to authorize user", zap.Error(err))
			return c.Send(msgGenericError)
		}

		h.logger.Info("User authorized", zap.Int64("user_id", userID))
		h.ResetState(userID)
		return c.Send("✅ Access granted!\n\n"+msgMainMenu, mainMenuMarkup())
	}

	if h.GetState(userID).State == domain.StateWaitingWord {
		return h.saveTypedWord(c, text)
	}

	if !domain.IsEnglishWord(text) {
		return c.Send("Send me a single English word (letters only).")
	}
	return h.showToolbar(c, text)
}

// saveTypedWord adds the word typed after pressing "Add word"
func (h *Handler) saveTypedWord(c tele.Context, word string) error {
	userID := c.Sender().ID

	entry, err := h.vocab.Add(context.Background(), userID, word)
	switch {
	case err == nil:
	case isUserError(err):
		return c.Send(userMessage(err), cancelMarkup())
	default:
		h.logger.Error("Failed to save word",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return c.Send(msgGenericError)
	}

	// Stay in the add flow so several words can be saved in a row
	return c.Send("✅ Saved \""+entry.Word+"\"!\n\nSend the next word or go back to the menu.", cancelMarkup())
}
