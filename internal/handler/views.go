package handler

import (
	"bytes"
	"context"

	"wordsaver/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// telegramMessageLimit is the maximum length of a text message
const telegramMessageLimit = 4096

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// handleList shows the vocabulary grouped by recency
func (h *Handler) handleList(c tele.Context) error {
	userID := c.Sender().ID

	groups, err := h.review.Groups(context.Background(), userID)
	if err != nil {
		h.logger.Error("Failed to load word groups", zap.Error(err), zap.Int64("user_id", userID))
		return respond(c, msgGenericError, false)
	}

	if len(groups) == 0 {
		return respond(c, "You have no saved words yet", true)
	}

	text := formatGroups(groups)
	if len(text) > telegramMessageLimit {
		text = splitMessage(text, telegramMessageLimit)[0]
	}
	return h.render(c, text, listMarkup(groups))
}

// handleDeleteEntry removes an entry picked from the word list
func (h *Handler) handleDeleteEntry(c tele.Context) error {
	userID := c.Sender().ID
	id := cleanCallbackData(c.Data())

	if err := h.vocab.Remove(context.Background(), userID, id); err != nil {
		if isUserError(err) {
			return respond(c, userMessage(err), true)
		}
		h.logger.Error("Failed to remove entry", zap.Error(err), zap.Int64("user_id", userID))
		return respond(c, msgGenericError, false)
	}

	groups, err := h.review.Groups(context.Background(), userID)
	if err != nil {
		h.logger.Error("Failed to load word groups", zap.Error(err), zap.Int64("user_id", userID))
		return respond(c, msgGenericError, false)
	}
	if len(groups) == 0 {
		return h.renderToast(c, "📚 Your list is empty", backMarkup(), "🗑 Removed")
	}

	text := formatGroups(groups)
	if len(text) > telegramMessageLimit {
		text = splitMessage(text, telegramMessageLimit)[0]
	}
	return h.renderToast(c, text, listMarkup(groups), "🗑 Removed")
}

// handleReview shows a fresh random sample of saved words
func (h *Handler) handleReview(c tele.Context) error {
	userID := c.Sender().ID

	entries, err := h.review.DailyReview(context.Background(), userID)
	if err != nil {
		h.logger.Error("Failed to build daily review", zap.Error(err), zap.Int64("user_id", userID))
		return respond(c, msgGenericError, false)
	}

	if len(entries) == 0 {
		return respond(c, "You have no saved words yet", true)
	}
	return h.render(c, formatReview(entries), reviewMarkup(entries))
}

// handleAddPrompt waits for the user to type a word to save
func (h *Handler) handleAddPrompt(c tele.Context) error {
	h.SetState(c.Sender().ID, &domain.StateData{State: domain.StateWaitingWord})
	return h.render(c, "➕ Send me the English word to save:", cancelMarkup())
}

// handleCopy sends every saved word, one per line
func (h *Handler) handleCopy(c tele.Context) error {
	userID := c.Sender().ID

	list, err := h.vocab.PlainList(context.Background(), userID)
	if err != nil {
		if isUserError(err) {
			return respond(c, userMessage(err), true)
		}
		h.logger.Error("Failed to build word list", zap.Error(err), zap.Int64("user_id", userID))
		return respond(c, msgGenericError, false)
	}

	for _, chunk := range splitMessage(list, telegramMessageLimit) {
		if err := c.Send(chunk); err != nil {
			h.logger.Error("Failed to send word list", zap.Error(err), zap.Int64("user_id", userID))
			return respond(c, msgGenericError, false)
		}
	}
	return acknowledge(c)
}

// handleExport sends the vocabulary as an xlsx document
func (h *Handler) handleExport(c tele.Context) error {
	userID := c.Sender().ID

	var buf bytes.Buffer
	if err := h.vocab.ExportXLSX(context.Background(), userID, &buf); err != nil {
		if isUserError(err) {
			return respond(c, userMessage(err), true)
		}
		h.logger.Error("Failed to export words", zap.Error(err), zap.Int64("user_id", userID))
		return respond(c, msgGenericError, false)
	}

	if err := c.Send(&tele.Document{
		File:     tele.FromReader(&buf),
		FileName: "words.xlsx",
		MIME:     xlsxMIME,
		Caption:  "📤 Your vocabulary",
	}); err != nil {
		h.logger.Error("Failed to send export", zap.Error(err), zap.Int64("user_id", userID))
		return respond(c, msgGenericError, false)
	}
	return acknowledge(c)
}

// handleProgress shows score and level
func (h *Handler) handleProgress(c tele.Context) error {
	userID := c.Sender().ID

	progress, err := h.scores.Progress(context.Background(), userID)
	if err != nil {
		h.logger.Error("Failed to load progress", zap.Error(err), zap.Int64("user_id", userID))
		return respond(c, msgGenericError, false)
	}
	return h.render(c, formatProgress(progress), backMarkup())
}

// acknowledge answers the callback, if any
func acknowledge(c tele.Context) error {
	if c.Callback() == nil {
		return nil
	}
	return c.Respond()
}
