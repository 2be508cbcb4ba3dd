// Package store keeps user profiles in a single JSON file keyed by user id.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/spigell/careerise/internal/logger"
	"github.com/spigell/careerise/internal/profile"
)

// ErrNotFound is returned when no profile is stored for a user id.
var ErrNotFound = errors.New("profile not found")

// Store serializes every read-modify-write of the file through one mutex.
type Store struct {
	path   string
	logger *zap.Logger

	mu sync.Mutex
}

func New(path string, log *zap.Logger) *Store {
	return &Store{
		path:   path,
		logger: logger.WithFields(log, zap.String("store_path", path)),
	}
}

func (s *Store) Path() string {
	return s.path
}

// Get returns the profile of userID or ErrNotFound.
func (s *Store) Get(userID string) (*UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.read()
	if err != nil {
		return nil, err
	}

	p, ok := db[userID]
	if !ok {
		return nil, fmt.Errorf("user %q: %w", userID, ErrNotFound)
	}
	return p, nil
}

// Save inserts or replaces the profile stored under p.UserID.
func (s *Store) Save(p *UserProfile) error {
	if p == nil || strings.TrimSpace(p.UserID) == "" {
		return fmt.Errorf("user id is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.read()
	if err != nil {
		return err
	}

	db[p.UserID] = p.normalized()
	if err := s.write(db); err != nil {
		return err
	}

	s.logger.Info("profile saved", zap.String(logger.FieldUserID, p.UserID))
	return nil
}

// AttachResume stores extracted résumé data on the user's profile, creating an empty profile when none exists.
func (s *Store) AttachResume(userID string, resume *profile.Profile) (*UserProfile, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("user id is required")
	}
	if resume == nil {
		return nil, fmt.Errorf("resume profile is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.read()
	if err != nil {
		return nil, err
	}

	p, ok := db[userID]
	if !ok {
		p = &UserProfile{UserID: userID}
	}

	info := *resume
	info.Skills = append([]string{}, resume.Skills...)
	p.ResumeInfo = &info
	db[userID] = p.normalized()

	if err := s.write(db); err != nil {
		return nil, err
	}

	s.logger.Info("resume attached",
		zap.String(logger.FieldUserID, userID),
		zap.Bool("created", !ok),
		zap.Int("resume_skills", len(info.Skills)),
	)
	return p, nil
}

// All returns every stored profile ordered by user id.
func (s *Store) All() ([]*UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.read()
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(db))
	for id := range db {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	profiles := make([]*UserProfile, 0, len(ids))
	for _, id := range ids {
		profiles = append(profiles, db[id])
	}
	return profiles, nil
}

func (s *Store) read() (map[string]*UserProfile, error) {
	db := make(map[string]*UserProfile)

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return db, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read profiles: %w", err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return db, nil
	}

	var raw map[string]map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode profiles file %s: %w", s.path, err)
	}

	for id, record := range raw {
		p, err := DecodeUserProfile(record)
		if err != nil {
			return nil, fmt.Errorf("decode profile %q: %w", id, err)
		}
		if p.UserID == "" {
			p.UserID = id
		}
		db[id] = p
	}
	return db, nil
}

// write replaces the file atomically through a temporary sibling.
func (s *Store) write(db map[string]*UserProfile) error {
	data, err := json.MarshalIndent(db, "", "  ")
	if err != nil {
		return fmt.Errorf("encode profiles: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create profiles dir: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write profiles: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace profiles: %w", err)
	}
	return nil
}
