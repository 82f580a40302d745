package httpapi

import (
	"bytes"
	"errors"
	"net/http"

	"wordsaver/internal/domain"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type wordRequest struct {
	Word string `json:"word" binding:"required"`
}

type reviewedResponse struct {
	Word        string           `json:"word"`
	Translation string           `json:"translation,omitempty"`
	Awarded     bool             `json:"awarded"`
	LeveledUp   bool             `json:"leveled_up"`
	Progress    *domain.Progress `json:"progress,omitempty"`
}

// statusFor maps domain errors to HTTP statuses
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrDuplicateWord):
		return http.StatusConflict
	case errors.Is(err, domain.ErrEntryNotFound), errors.Is(err, domain.ErrEmptyVocabulary):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidWord):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrTranslation):
		return http.StatusBadGateway
	case errors.Is(err, domain.ErrUnsupportedCapability):
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("Request failed",
			zap.Error(err),
			zap.String("path", c.FullPath()),
			zap.String("request_id", c.GetString(headerRequestID)),
		)
		c.JSON(status, gin.H{"error": "request failed"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func userID(c *gin.Context) int64 {
	return c.GetInt64(ctxUserID)
}

func (s *Server) handleListWords(c *gin.Context) {
	words, err := s.vocab.List(c.Request.Context(), userID(c))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"words": words})
}

func (s *Server) handleAddWord(c *gin.Context) {
	var req wordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "word is required"})
		return
	}

	entry, err := s.vocab.Add(c.Request.Context(), userID(c), req.Word)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (s *Server) handleDeleteWord(c *gin.Context) {
	if err := s.vocab.Remove(c.Request.Context(), userID(c), c.Param("id")); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleGroups(c *gin.Context) {
	groups, err := s.review.Groups(c.Request.Context(), userID(c))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"groups": groups})
}

func (s *Server) handleTranslate(c *gin.Context) {
	word := c.Query("word")
	if word == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "word is required"})
		return
	}

	translated, err := s.translator.Translate(c.Request.Context(), word)
	if err != nil {
		s.fail(c, err)
		return
	}

	resp, err := s.markReviewed(c, word)
	if err != nil {
		s.fail(c, err)
		return
	}
	resp.Translation = translated
	c.JSON(http.StatusOK, resp)
}

// handleSpeak records that the word was spoken on the client
func (s *Server) handleSpeak(c *gin.Context) {
	var req wordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "word is required"})
		return
	}

	resp, err := s.markReviewed(c, req.Word)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) markReviewed(c *gin.Context, word string) (reviewedResponse, error) {
	resp := reviewedResponse{Word: word}

	result, err := s.vocab.MarkReviewed(c.Request.Context(), userID(c), word)
	if err != nil {
		return resp, err
	}
	if result != nil {
		resp.Awarded = true
		resp.LeveledUp = result.LeveledUp
		resp.Progress = &result.Progress
	}
	return resp, nil
}

func (s *Server) handleReview(c *gin.Context) {
	words, err := s.review.DailyReview(c.Request.Context(), userID(c))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"words": words})
}

func (s *Server) handleProgress(c *gin.Context) {
	progress, err := s.scores.Progress(c.Request.Context(), userID(c))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, progress)
}

func (s *Server) handleExport(c *gin.Context) {
	var buf bytes.Buffer
	if err := s.vocab.ExportXLSX(c.Request.Context(), userID(c), &buf); err != nil {
		s.fail(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="words.xlsx"`)
	c.Data(http.StatusOK, xlsxMIME, buf.Bytes())
}
