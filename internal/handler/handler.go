package handler

import (
	"sync"

	"wordsaver/internal/domain"
	"wordsaver/internal/service"
	"wordsaver/internal/speech"
	"wordsaver/internal/translation"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Services groups the collaborators the handler talks to
type Services struct {
	Auth       *service.AuthService
	Vocabulary *service.VocabularyService
	Scores     *service.ScoreService
	Review     *service.ReviewService
	Translator translation.Translator
	Speech     speech.Synthesizer
}

// Handler manages all bot interactions
type Handler struct {
	bot        *tele.Bot
	auth       *service.AuthService
	vocab      *service.VocabularyService
	scores     *service.ScoreService
	review     *service.ReviewService
	translator translation.Translator
	synth      speech.Synthesizer
	logger     *zap.Logger

	// User states (in-memory state machine)
	states   map[int64]*domain.StateData
	stateMux sync.RWMutex
}

// NewHandler creates a new handler instance
func NewHandler(bot *tele.Bot, services Services, logger *zap.Logger) *Handler {
	return &Handler{
		bot:        bot,
		auth:       services.Auth,
		vocab:      services.Vocabulary,
		scores:     services.Scores,
		review:     services.Review,
		translator: services.Translator,
		synth:      services.Speech,
		logger:     logger,
		states:     make(map[int64]*domain.StateData),
	}
}

// RegisterHandlers registers all bot handlers. Everything except /start and
// plain text (which carries the password) goes through the auth middleware.
func (h *Handler) RegisterHandlers(authMiddleware tele.MiddlewareFunc) {
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle(tele.OnText, h.handleText)

	authed := h.bot.Group()
	authed.Use(authMiddleware)

	authed.Handle("/words", h.handleList)
	authed.Handle("/review", h.handleReview)
	authed.Handle("/progress", h.handleProgress)

	// Main menu
	authed.Handle(&btnList, h.handleList)
	authed.Handle(&btnReview, h.handleReview)
	authed.Handle(&btnAdd, h.handleAddPrompt)
	authed.Handle(&btnCopy, h.handleCopy)
	authed.Handle(&btnExport, h.handleExport)
	authed.Handle(&btnProgress, h.handleProgress)
	authed.Handle(&btnCancel, h.handleCancel)
	authed.Handle(&btnMainMenu, h.handleMainMenu)

	// Word toolbar
	authed.Handle(&tele.Btn{Unique: uniqueOpen}, h.handleOpen)
	authed.Handle(&tele.Btn{Unique: uniqueSpeak}, h.handleSpeak)
	authed.Handle(&tele.Btn{Unique: uniqueTranslate}, h.handleTranslate)
	authed.Handle(&tele.Btn{Unique: uniqueAdd}, h.handleAddWord)
	authed.Handle(&tele.Btn{Unique: uniqueDeleteWord}, h.handleDeleteWord)
	authed.Handle(&tele.Btn{Unique: uniqueDeleteEntry}, h.handleDeleteEntry)

	// Generic callback handler for anything unmatched
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// GetState returns user's current state
func (h *Handler) GetState(userID int64) *domain.StateData {
	h.stateMux.RLock()
	defer h.stateMux.RUnlock()

	state, exists := h.states[userID]
	if !exists {
		return &domain.StateData{State: domain.StateIdle}
	}
	return state
}

// SetState sets user's state
func (h *Handler) SetState(userID int64, state *domain.StateData) {
	h.stateMux.Lock()
	defer h.stateMux.Unlock()
	h.states[userID] = state
}

// ResetState resets user to idle state
func (h *Handler) ResetState(userID int64) {
	h.SetState(userID, &domain.StateData{State: domain.StateIdle})
}

// render edits the message behind a callback, or sends a new one for commands
func (h *Handler) render(c tele.Context, text string, markup *tele.ReplyMarkup) error {
	return h.renderToast(c, text, markup, "")
}

// renderToast is render with a short notice on the acknowledged callback
func (h *Handler) renderToast(c tele.Context, text string, markup *tele.ReplyMarkup, toast string) error {
	if c.Callback() == nil {
		return c.Send(text, markup)
	}
	if err := c.Edit(text, markup); err != nil {
		if handleErr := h.handleEditError(err, c, c.Sender().ID); handleErr == nil {
			return nil // Message was already modified, just acknowledged
		}
		return c.Send(text, markup)
	}
	return c.Respond(&tele.CallbackResponse{Text: toast})
}

// respond answers a callback with a toast, or sends a message for commands
func respond(c tele.Context, text string, alert bool) error {
	if c.Callback() == nil {
		return c.Send(text)
	}
	return c.Respond(&tele.CallbackResponse{Text: text, ShowAlert: alert})
}
