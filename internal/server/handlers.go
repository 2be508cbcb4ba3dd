package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/careerise/internal/logger"
	"github.com/spigell/careerise/internal/recommend"
	"github.com/spigell/careerise/internal/store"
	"github.com/spigell/careerise/internal/textextract"
)

type detailResponse struct {
	Detail string `json:"detail"`
}

type statusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type uploadResponse struct {
	Status     string `json:"status"`
	UserID     string `json:"user_id"`
	ResumeInfo any    `json:"resume_info"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, statusResponse{Status: "ok"})
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("user_id")
	log := logger.WithFields(s.logger, zap.String(logger.FieldUserID, userID))

	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)
	if err := r.ParseMultipartForm(s.cfg.MaxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeDetail(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("file exceeds %d bytes", s.cfg.MaxUploadBytes))
			return
		}
		writeDetail(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	format := textextract.FormatFromFilename(header.Filename)
	if _, err := textextract.ParseFormat(format); err != nil {
		s.writeError(w, log, err)
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		s.writeError(w, log, fmt.Errorf("read upload: %w", err))
		return
	}

	p, err := s.assembler.ExtractProfile(data, format)
	if err != nil {
		s.writeError(w, log, err)
		return
	}

	if _, err := s.store.AttachResume(userID, p); err != nil {
		s.writeError(w, log, fmt.Errorf("attach resume: %w", err))
		return
	}

	log.Info("resume processed",
		zap.String(logger.FieldFormat, format),
		zap.Int("size_bytes", len(data)),
		zap.Int("skills", len(p.Skills)),
	)

	writeJSON(w, http.StatusOK, uploadResponse{Status: "ok", UserID: userID, ResumeInfo: p})
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	p, err := s.store.Get(r.PathValue("user_id"))
	if err != nil {
		s.writeError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleListProfiles(w http.ResponseWriter, _ *http.Request) {
	profiles, err := s.store.All()
	if err != nil {
		s.writeError(w, s.logger, fmt.Errorf("list profiles: %w", err))
		return
	}
	writeJSON(w, http.StatusOK, profiles)
}

func (s *Server) handleSaveProfile(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)

	var raw map[string]any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeDetail(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("body exceeds %d bytes", s.cfg.MaxUploadBytes))
			return
		}
		writeDetail(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	p, err := store.DecodeUserProfile(raw)
	if err != nil {
		writeDetail(w, http.StatusBadRequest, fmt.Sprintf("invalid profile: %v", err))
		return
	}
	if strings.TrimSpace(p.UserID) == "" {
		writeDetail(w, http.StatusBadRequest, "userId is required")
		return
	}

	if err := s.store.Save(p); err != nil {
		s.writeError(w, s.logger, fmt.Errorf("save profile: %w", err))
		return
	}

	writeJSON(w, http.StatusOK, statusResponse{Status: "ok", Message: "Profile saved successfully"})
}

func (s *Server) handleCareers(w http.ResponseWriter, r *http.Request) {
	p, err := s.store.Get(r.PathValue("user_id"))
	if err != nil {
		s.writeError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, recommend.FromProfile(p).Careers(s.base))
}

func (s *Server) handleExams(w http.ResponseWriter, r *http.Request) {
	p, err := s.store.Get(r.PathValue("user_id"))
	if err != nil {
		s.writeError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, recommend.FromProfile(p).Exams(s.base, s.cfg.ExamLimit))
}

// writeError maps domain errors onto status codes. Unknown errors are logged and hidden from the client.
func (s *Server) writeError(w http.ResponseWriter, log *zap.Logger, err error) {
	var (
		unsupported *textextract.UnsupportedFormatError
		extraction  *textextract.ExtractionError
	)

	switch {
	case errors.As(err, &unsupported):
		writeDetail(w, http.StatusBadRequest, "Only PDF or DOCX allowed")
	case errors.As(err, &extraction):
		log.Warn("resume could not be parsed", zap.Error(err))
		writeDetail(w, http.StatusUnprocessableEntity, fmt.Sprintf("Resume parse failed: %s", extraction.Reason))
	case errors.Is(err, store.ErrNotFound):
		writeDetail(w, http.StatusNotFound, "Profile not found")
	default:
		log.Error("request failed", zap.Error(err))
		writeDetail(w, http.StatusInternalServerError, "internal error")
	}
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, detailResponse{Detail: detail})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
