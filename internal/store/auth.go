package store

import (
	"encoding/json"
	"strings"
	"sync"

	"skyroute/internal/domain"
	"skyroute/internal/domain/models"
	"skyroute/internal/storage"
	"skyroute/internal/utils"
)

// AuthStore holds the local session flag and profile. It gates the
// booking flow only; there is no credential verification.
type AuthStore struct {
	mu    sync.Mutex
	state models.AuthState
	snap  storage.SnapshotStore
}

// NewAuthStore rehydrates the persisted session when present.
func NewAuthStore(snap storage.SnapshotStore) *AuthStore {
	s := &AuthStore{snap: snap}
	data, ok, err := snap.Load(storage.AuthKey)
	if err != nil {
		utils.LogEvent("", "store", "rehydrate_auth", "load failed: "+err.Error())
		return s
	}
	if !ok {
		return s
	}
	var state models.AuthState
	if err := json.Unmarshal(data, &state); err != nil {
		utils.LogEvent("", "store", "rehydrate_auth", "corrupt snapshot ignored: "+err.Error())
		return s
	}
	s.state = state
	return s
}

// Login sets the session flag and user record.
func (s *AuthStore) Login(name, email string) (models.AuthState, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		return models.AuthState{}, domain.ValidationError{Field: "name", Msg: "name is required"}
	}
	if email == "" || !strings.Contains(email, "@") {
		return models.AuthState{}, domain.ValidationError{Field: "email", Msg: "valid email is required"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = models.AuthState{
		IsAuthenticated: true,
		User:            &models.User{Name: name, Email: email},
	}
	s.persist()
	return s.state, nil
}

// Logout clears the session and removes the persisted record.
func (s *AuthStore) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = models.AuthState{}
	if err := s.snap.Delete(storage.AuthKey); err != nil {
		utils.LogEvent("", "store", "logout", "delete snapshot failed: "+err.Error())
	}
}

// State returns the current auth state.
func (s *AuthStore) State() models.AuthState {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.state
	if s.state.User != nil {
		u := *s.state.User
		out.User = &u
	}
	return out
}

func (s *AuthStore) persist() {
	data, err := json.Marshal(s.state)
	if err != nil {
		utils.LogEvent("", "store", "persist_auth", "marshal failed: "+err.Error())
		return
	}
	if err := s.snap.Save(storage.AuthKey, data); err != nil {
		utils.LogEvent("", "store", "persist_auth", "save failed: "+err.Error())
	}
}
