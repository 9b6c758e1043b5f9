package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/lamdh/gradeview/config"
	"github.com/lamdh/gradeview/internal/model"
)

const (
	tokenFile    = "token"
	identityFile = "identity.json"
)

// Store is the single source of truth for "who is logged in". The
// credential and identity are persisted on disk so a restarted process
// resumes the same session. Observable state is always one of two
// shapes: empty, or fully authenticated; nothing in between.
type Store struct {
	dir string

	mu    sync.RWMutex
	user  *model.User
	token string
}

// NewStore creates the store over cfg.Session.Dir and hydrates it from
// whatever a previous process left behind.
func NewStore(cfg *config.Config) (*Store, error) {
	if err := os.MkdirAll(cfg.Session.Dir, 0o700); err != nil {
		return nil, err
	}
	s := &Store{dir: cfg.Session.Dir}
	s.Hydrate()
	return s, nil
}

// Hydrate loads the persisted (token, identity) pair. Loading is
// best-effort: if either entry is missing, unreadable, or the identity
// does not parse into a valid user, both are discarded and the session
// stays empty. An unauthenticated landing state is a valid default, so
// nothing is surfaced to the caller.
func (s *Store) Hydrate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	tok, err := os.ReadFile(filepath.Join(s.dir, tokenFile))
	if err != nil || len(tok) == 0 {
		s.discardLocked()
		return
	}
	raw, err := os.ReadFile(filepath.Join(s.dir, identityFile))
	if err != nil {
		s.discardLocked()
		return
	}
	var user model.User
	if err := json.Unmarshal(raw, &user); err != nil {
		log.Warn().Err(err).Msg("Discarding corrupt persisted identity")
		s.discardLocked()
		return
	}
	if err := user.Validate(); err != nil {
		log.Warn().Err(err).Msg("Discarding invalid persisted identity")
		s.discardLocked()
		return
	}

	s.token = string(tok)
	s.user = &user
}

// Establish persists and installs a freshly issued session. Both
// entries are written before the in-memory state flips, so a crash
// mid-write leaves at worst a pair the next Hydrate will discard.
func (s *Store) Establish(user model.User, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.WriteFile(filepath.Join(s.dir, tokenFile), []byte(token), 0o600); err != nil {
		return err
	}
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(s.dir, identityFile), raw, 0o600); err != nil {
		return err
	}

	s.user = &user
	s.token = token
	return nil
}

// Clear wipes both the persisted and in-memory session. Notifying the
// backend is the auth service's job, not the store's; local clearing
// never blocks on the network.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.discardLocked()
}

func (s *Store) discardLocked() {
	_ = os.Remove(filepath.Join(s.dir, tokenFile))
	_ = os.Remove(filepath.Join(s.dir, identityFile))
	s.user = nil
	s.token = ""
}

// Token returns the current credential, or "" when unauthenticated.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns the current identity.
func (s *Store) User() (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return model.User{}, false
	}
	return *s.user, true
}

// Authenticated holds exactly when both identity and credential are
// present.
func (s *Store) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil && s.token != ""
}
