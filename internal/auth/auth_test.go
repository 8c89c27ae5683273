package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/blackholeinfiverse37/8-pillers-Workflow-Gurukul-HR/internal/storage"
	"github.com/blackholeinfiverse37/8-pillers-Workflow-Gurukul-HR/pkg/model"
)

const testSecret = "test-secret"

func testUser(role model.Role) model.AuthUser {
	return model.AuthUser{ID: "user-1", Email: "asha@example.com", Name: "Asha Rao", Role: role}
}

func TestGenerateAndParseToken(t *testing.T) {
	t.Parallel()
	token, err := GenerateToken(testSecret, testUser(model.RoleRecruiter), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ParseToken(testSecret, token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.UserID != "user-1" || claims.Email != "asha@example.com" {
		t.Errorf("claims: got %+v", claims)
	}
	if claims.Role != model.RoleRecruiter {
		t.Errorf("role: got %q, want recruiter", claims.Role)
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	t.Parallel()
	token, err := GenerateToken(testSecret, testUser(model.RoleRecruiter), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := ParseToken("other-secret", token); err == nil {
		t.Error("token accepted with the wrong secret")
	}
}

func TestTokenExpired(t *testing.T) {
	t.Parallel()
	token, err := GenerateToken(testSecret, testUser(model.RoleRecruiter), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	now := time.Now()
	if TokenExpired(token, now) {
		t.Error("fresh token reported expired")
	}
	if !TokenExpired(token, now.Add(2*time.Hour)) {
		t.Error("stale token reported valid")
	}
	if !TokenExpired("garbage", now) {
		t.Error("unparseable token reported valid")
	}
}

func TestSessionSaveAndClear(t *testing.T) {
	t.Parallel()
	store := storage.NewMemoryStore()
	session := NewSession(store)
	token, err := GenerateToken(testSecret, testUser(model.RoleCandidate), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	session.Save(&model.AuthRes{Token: token, User: testUser(model.RoleCandidate)})
	if !session.Authenticated() {
		t.Error("session not authenticated after save")
	}
	if session.Role() != model.RoleCandidate {
		t.Errorf("role: got %q, want candidate", session.Role())
	}
	if store.Get(KeyCandidateID) != "user-1" {
		t.Errorf("candidate id: got %q", store.Get(KeyCandidateID))
	}
	if store.Get(KeyClientID) != "" {
		t.Errorf("client id set for a candidate session: %q", store.Get(KeyClientID))
	}

	session.Clear()
	if session.Authenticated() || session.Token() != "" || session.Role() != "" {
		t.Error("session survived Clear")
	}
}

func TestSessionExpiredTokenNotAuthenticated(t *testing.T) {
	t.Parallel()
	store := storage.NewMemoryStore()
	session := NewSession(store)
	token, err := GenerateToken(testSecret, testUser(model.RoleRecruiter), -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	session.Save(&model.AuthRes{Token: token, User: testUser(model.RoleRecruiter)})
	if session.Authenticated() {
		t.Error("expired token reported authenticated")
	}
}

func testStrategies(calls *[]string, succeed model.Role) []Strategy {
	mk := func(name string, role model.Role) Strategy {
		return Strategy{
			Name: name,
			Role: role,
			Login: func(ctx context.Context, email, password string) (*model.AuthRes, error) {
				*calls = append(*calls, name)
				if role != succeed {
					return nil, errors.New("invalid credentials")
				}
				return &model.AuthRes{Token: "tok", User: testUser(role)}, nil
			},
		}
	}
	return []Strategy{
		mk("candidate", model.RoleCandidate),
		mk("recruiter", model.RoleRecruiter),
		mk("client", model.RoleClient),
	}
}

func TestLoginStopsAtFirstSuccess(t *testing.T) {
	t.Parallel()
	session := NewSession(storage.NewMemoryStore())
	var calls []string

	res, err := Login(context.Background(), session, testStrategies(&calls, model.RoleRecruiter), "asha@example.com", "pw", nil)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if res.User.Role != model.RoleRecruiter {
		t.Errorf("role: got %q, want recruiter", res.User.Role)
	}
	want := []string{"candidate", "recruiter"}
	if len(calls) != len(want) || calls[0] != want[0] || calls[1] != want[1] {
		t.Errorf("attempts: got %v, want %v", calls, want)
	}
	if session.Role() != model.RoleRecruiter {
		t.Errorf("session role after login: got %q", session.Role())
	}
}

func TestLoginPrefersKnownRole(t *testing.T) {
	t.Parallel()
	store := storage.NewMemoryStore()
	store.Set(KeyRole, string(model.RoleClient))
	session := NewSession(store)
	var calls []string

	if _, err := Login(context.Background(), session, testStrategies(&calls, model.RoleClient), "asha@example.com", "pw", nil); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if len(calls) != 1 || calls[0] != "client" {
		t.Errorf("attempts: got %v, want [client]", calls)
	}
}

func TestLoginAllStrategiesFail(t *testing.T) {
	t.Parallel()
	session := NewSession(storage.NewMemoryStore())
	var calls []string

	_, err := Login(context.Background(), session, testStrategies(&calls, ""), "asha@example.com", "pw", nil)
	if !errors.Is(err, ErrNoStrategySucceeded) {
		t.Fatalf("err: got %v, want ErrNoStrategySucceeded", err)
	}
	if len(calls) != 3 {
		t.Errorf("attempts: got %v, want all three", calls)
	}
	if session.Token() != "" {
		t.Error("failed login left a token in the session")
	}
}
