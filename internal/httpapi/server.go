// Package httpapi exposes the vocabulary over a small JSON API.
package httpapi

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strconv"
	"strings"
	"time"

	"wordsaver/internal/middleware"
	"wordsaver/internal/service"
	"wordsaver/internal/translation"

	ginGzip "github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	cachecontrol "go.eigsys.de/gin-cachecontrol/v2"
	"go.uber.org/zap"
)

const (
	headerRequestID = "X-Request-ID"
	ctxUserID       = "user_id"
)

// Authorizer reports whether a user passed the bot's password gate
type Authorizer interface {
	IsAuthorized(ctx context.Context, userID int64) (bool, error)
}

// Services groups the collaborators the API talks to
type Services struct {
	Auth       Authorizer
	Vocabulary *service.VocabularyService
	Scores     *service.ScoreService
	Review     *service.ReviewService
	Translator translation.Translator
}

// Options configures access control
type Options struct {
	APIToken       string
	RateLimitRPS   int
	RateLimitBurst int
}

// Server serves the JSON API
type Server struct {
	auth       Authorizer
	vocab      *service.VocabularyService
	scores     *service.ScoreService
	review     *service.ReviewService
	translator translation.Translator
	logger     *zap.Logger

	apiToken  string
	limiter   *middleware.RateLimiter[string]
	startTime time.Time
}

// NewServer creates a new API server
func NewServer(services Services, opts Options, logger *zap.Logger) *Server {
	return &Server{
		auth:       services.Auth,
		vocab:      services.Vocabulary,
		scores:     services.Scores,
		review:     services.Review,
		translator: services.Translator,
		logger:     logger,
		apiToken:   opts.APIToken,
		limiter:    middleware.NewRateLimiter[string](opts.RateLimitRPS, opts.RateLimitBurst),
		startTime:  time.Now(),
	}
}

// Router builds the gin engine with all routes
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), s.requestID(), s.logRequests())
	router.Use(ginGzip.Gzip(ginGzip.DefaultCompression))
	router.Use(cachecontrol.New(cachecontrol.Config{
		NoStore:        true,
		NoCache:        true,
		MustRevalidate: true,
	}))

	router.GET("/healthz", s.handleHealth)

	users := router.Group("/api/users/:userID", s.authenticate(), s.rateLimit(), s.authorizeUser())
	users.GET("/words", s.handleListWords)
	users.POST("/words", s.handleAddWord)
	users.DELETE("/words/:id", s.handleDeleteWord)
	users.GET("/groups", s.handleGroups)
	users.GET("/translate", s.handleTranslate)
	users.POST("/speak", s.handleSpeak)
	users.GET("/review", s.handleReview)
	users.GET("/progress", s.handleProgress)
	users.GET("/export", s.handleExport)

	return router
}

func (s *Server) requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(headerRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(headerRequestID, id)
		c.Header(headerRequestID, id)
		c.Next()
	}
}

func (s *Server) logRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("request_id", c.GetString(headerRequestID)),
		)
	}
}

// authenticate requires "Authorization: Bearer <token>". With no token
// configured every request is refused.
func (s *Server) authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || s.apiToken == "" || subtle.ConstantTimeCompare([]byte(token), []byte(s.apiToken)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}

func (s *Server) rateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.limiter.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}

// authorizeUser resolves the path user and admits only users authorized in the bot
func (s *Server) authorizeUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.ParseInt(c.Param("userID"), 10, 64)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
			return
		}

		authorized, err := s.auth.IsAuthorized(c.Request.Context(), userID)
		if err != nil {
			s.logger.Error("Failed to check authorization",
				zap.Error(err),
				zap.Int64("user_id", userID),
			)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "request failed"})
			return
		}
		if !authorized {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "user is not authorized"})
			return
		}

		c.Set(ctxUserID, userID)
		c.Next()
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"uptime":    time.Since(s.startTime).Round(time.Second).String(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
