package handler

import (
	"bytes"
	"context"
	"fmt"

	"wordsaver/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// showToolbar sends the toolbar for a word
func (h *Handler) showToolbar(c tele.Context, word string) error {
	if len(word) > domain.MaxWordLength {
		return c.Send("This word is too long.")
	}

	saved, err := h.vocab.Exists(context.Background(), c.Sender().ID, word)
	if err != nil {
		h.logger.Error("Failed to look up word", zap.Error(err))
		return c.Send(msgGenericError)
	}
	return c.Send(toolbarText(word, saved), toolbarMarkup(word, saved))
}

// handleOpen opens the toolbar for a word picked from a list
func (h *Handler) handleOpen(c tele.Context) error {
	if err := h.showToolbar(c, cleanCallbackData(c.Data())); err != nil {
		return err
	}
	return c.Respond()
}

// handleSpeak sends the pronunciation of the word
func (h *Handler) handleSpeak(c tele.Context) error {
	userID := c.Sender().ID
	word := cleanCallbackData(c.Data())
	ctx := context.Background()

	audio, err := h.synth.Synthesize(ctx, word)
	if err != nil {
		if isUserError(err) {
			return respond(c, userMessage(err), true)
		}
		h.logger.Error("Failed to synthesize speech",
			zap.Error(err),
			zap.String("word", word),
		)
		return respond(c, "Could not pronounce the word", false)
	}

	if err := c.Send(&tele.Audio{
		File:     tele.FromReader(bytes.NewReader(audio)),
		Title:    word,
		FileName: word + ".wav",
		MIME:     "audio/wav",
	}); err != nil {
		h.logger.Error("Failed to send audio", zap.Error(err), zap.Int64("user_id", userID))
		return respond(c, msgGenericError, false)
	}

	return respond(c, h.markReviewed(ctx, userID, word), false)
}

// handleTranslate sends the translation of the word
func (h *Handler) handleTranslate(c tele.Context) error {
	userID := c.Sender().ID
	word := cleanCallbackData(c.Data())
	ctx := context.Background()

	translated, err := h.translator.Translate(ctx, word)
	if err != nil {
		h.logger.Warn("Translation failed",
			zap.Error(err),
			zap.String("word", word),
		)
		return respond(c, userMessage(err), true)
	}

	if err := c.Send(fmt.Sprintf("🔤 %s\n🌐 %s", word, translated)); err != nil {
		h.logger.Error("Failed to send translation", zap.Error(err), zap.Int64("user_id", userID))
		return respond(c, msgGenericError, false)
	}

	return respond(c, h.markReviewed(ctx, userID, word), false)
}

// markReviewed flags a saved word as reviewed and returns the toast to show
func (h *Handler) markReviewed(ctx context.Context, userID int64, word string) string {
	result, err := h.vocab.MarkReviewed(ctx, userID, word)
	if err != nil {
		h.logger.Error("Failed to mark word reviewed",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.String("word", word),
		)
		return ""
	}
	if result == nil {
		return ""
	}
	return fmt.Sprintf("+%d ⭐ (score %d)", result.Points, result.Progress.Score)
}

// handleAddWord saves the word shown in the toolbar
func (h *Handler) handleAddWord(c tele.Context) error {
	userID := c.Sender().ID
	word := cleanCallbackData(c.Data())

	if _, err := h.vocab.Add(context.Background(), userID, word); err != nil {
		if isUserError(err) {
			return respond(c, userMessage(err), true)
		}
		h.logger.Error("Failed to save word", zap.Error(err), zap.Int64("user_id", userID))
		return respond(c, msgGenericError, false)
	}

	return h.renderToast(c, toolbarText(word, true), toolbarMarkup(word, true), "✅ Saved")
}

// handleDeleteWord removes the word shown in the toolbar
func (h *Handler) handleDeleteWord(c tele.Context) error {
	userID := c.Sender().ID
	word := cleanCallbackData(c.Data())

	if err := h.vocab.RemoveWord(context.Background(), userID, word); err != nil {
		if isUserError(err) {
			return respond(c, userMessage(err), true)
		}
		h.logger.Error("Failed to remove word", zap.Error(err), zap.Int64("user_id", userID))
		return respond(c, msgGenericError, false)
	}

	return h.renderToast(c, toolbarText(word, false), toolbarMarkup(word, false), "🗑 Removed")
}
