package auth

import (
	"time"

	"github.com/blackholeinfiverse37/8-pillers-Workflow-Gurukul-HR/internal/storage"
	"github.com/blackholeinfiverse37/8-pillers-Workflow-Gurukul-HR/pkg/model"
)

// Storage keys for the per-session auth cache. The whole set is cleared on
// logout so a stale role can never leak into the next login.
const (
	KeyToken       = "auth_token"
	KeyRole        = "user_role"
	KeyEmail       = "user_email"
	KeyName        = "user_name"
	KeyCandidateID = "candidate_id"
	KeyClientID    = "client_id"
)

var sessionKeys = []string{
	KeyToken,
	KeyRole,
	KeyEmail,
	KeyName,
	KeyCandidateID,
	KeyClientID,
}

// Session caches the authenticated user in an injected store, one session
// per store instance.
type Session struct {
	store storage.Store
}

func NewSession(store storage.Store) *Session {
	return &Session{store: store}
}

func (s *Session) Token() string { return s.store.Get(KeyToken) }

func (s *Session) Role() model.Role { return model.Role(s.store.Get(KeyRole)) }

// Authenticated reports whether the session holds a non-expired token.
func (s *Session) Authenticated() bool {
	token := s.Token()
	return token != "" && !TokenExpired(token, time.Now())
}

// Save stores a successful login. The role is persisted so the next login
// attempt can go straight to the right endpoint instead of re-detecting.
func (s *Session) Save(res *model.AuthRes) {
	s.store.Set(KeyToken, res.Token)
	s.store.Set(KeyRole, string(res.User.Role))
	s.store.Set(KeyEmail, res.User.Email)
	s.store.Set(KeyName, res.User.Name)
	switch res.User.Role {
	case model.RoleCandidate:
		s.store.Set(KeyCandidateID, res.User.ID)
	case model.RoleClient:
		s.store.Set(KeyClientID, res.User.ID)
	}
}

func (s *Session) Clear() {
	for _, key := range sessionKeys {
		s.store.Remove(key)
	}
}
