// Package server exposes résumé upload, profile storage and recommendations over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/spigell/careerise/internal/knowledge"
	"github.com/spigell/careerise/internal/logger"
	"github.com/spigell/careerise/internal/profile"
	"github.com/spigell/careerise/internal/recommend"
	"github.com/spigell/careerise/internal/store"
)

const (
	DefaultAddr           = ":8080"
	DefaultReadTimeout    = 15 * time.Second
	DefaultWriteTimeout   = 30 * time.Second
	DefaultMaxUploadBytes = 10 << 20

	shutdownTimeout = 5 * time.Second
)

type Config struct {
	Addr           string        `mapstructure:"addr"`
	ReadTimeout    time.Duration `mapstructure:"read-timeout"`
	WriteTimeout   time.Duration `mapstructure:"write-timeout"`
	MaxUploadBytes int64         `mapstructure:"max-upload-bytes"`
	ExamLimit      int           `mapstructure:"-"`
}

func (c Config) withDefaults() Config {
	if c.Addr == "" {
		c.Addr = DefaultAddr
	}
	if c.ReadTimeout <= 0 {
		c.ReadTimeout = DefaultReadTimeout
	}
	if c.WriteTimeout <= 0 {
		c.WriteTimeout = DefaultWriteTimeout
	}
	if c.MaxUploadBytes <= 0 {
		c.MaxUploadBytes = DefaultMaxUploadBytes
	}
	if c.ExamLimit <= 0 {
		c.ExamLimit = recommend.DefaultExamLimit
	}
	return c
}

type Server struct {
	cfg       Config
	base      *knowledge.Base
	store     *store.Store
	assembler *profile.Assembler
	logger    *zap.Logger
}

func New(cfg Config, base *knowledge.Base, st *store.Store, assembler *profile.Assembler, log *zap.Logger) *Server {
	return &Server{
		cfg:       cfg.withDefaults(),
		base:      base,
		store:     st,
		assembler: assembler,
		logger:    logger.WithFields(log),
	}
}

// Handler returns the routed handler wrapped in CORS and request logging.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)

	mux.HandleFunc("POST /resume/upload/{user_id}", s.handleUpload)

	mux.HandleFunc("GET /profiles", s.handleListProfiles)
	mux.HandleFunc("GET /profile/{user_id}", s.handleGetProfile)
	mux.HandleFunc("POST /profile/save", s.handleSaveProfile)

	mux.HandleFunc("GET /recommend/careers/{user_id}", s.handleCareers)
	mux.HandleFunc("GET /recommend/exams/{user_id}", s.handleExams)
	mux.HandleFunc("GET /exams/{user_id}", s.handleExams)

	return corsMiddleware(requestLogger(s.logger, mux))
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", zap.String("addr", s.cfg.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen on %s: %w", s.cfg.Addr, err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}
	return nil
}
