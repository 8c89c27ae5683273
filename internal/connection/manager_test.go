package connection

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/blackholeinfiverse37/8-pillers-Workflow-Gurukul-HR/internal/gateway"
	"github.com/blackholeinfiverse37/8-pillers-Workflow-Gurukul-HR/internal/storage"
	"github.com/blackholeinfiverse37/8-pillers-Workflow-Gurukul-HR/pkg/model"
)

const testID = "abc123abc123abc123abc123"

func strPtr(s string) *string { return &s }

func TestValidID(t *testing.T) {
	t.Parallel()
	cases := []struct {
		id   string
		want bool
	}{
		{testID, true},
		{strings.ToUpper(testID), true},
		{"abc", false},
		{"", false},
		{strings.Repeat("g", 24), false},
		{testID + "0", false},
	}
	for _, tc := range cases {
		if got := ValidID(tc.id); got != tc.want {
			t.Errorf("ValidID(%q): got %v, want %v", tc.id, got, tc.want)
		}
	}
}

func TestSetConnectionPersistsBeforePublishing(t *testing.T) {
	t.Parallel()
	store := storage.NewMemoryStore()
	persistedAtPublish := false
	m := New(Config{
		Store: store,
		OnChange: func(s model.ConnectionState) {
			// by the time consumers hear about connected, the record
			// must already be in the store
			if s.Status == model.ConnectionConnected {
				persistedAtPublish = store.Get(StorageKey) != ""
			}
		},
	})

	if err := m.SetConnection(testID, "Acme"); err != nil {
		t.Fatalf("SetConnection: %v", err)
	}
	if !persistedAtPublish {
		t.Error("connected state published before the store write")
	}

	// simulated reload observes the connected pairing
	reloaded := New(Config{Store: store})
	got := reloaded.Snapshot()
	if got.Status != model.ConnectionConnected {
		t.Fatalf("status after reload: got %q, want connected", got.Status)
	}
	if got.ConnectionID != testID || got.CompanyName != "Acme" {
		t.Errorf("reloaded state: got %+v", got)
	}
}

func TestSetConnectionRejectsMalformedID(t *testing.T) {
	t.Parallel()
	m := New(Config{Store: storage.NewMemoryStore()})
	if err := m.SetConnection("not-hex", "Acme"); !errors.Is(err, ErrInvalidConnectionID) {
		t.Fatalf("err: got %v, want ErrInvalidConnectionID", err)
	}
	if got := m.Snapshot().Status; got != model.ConnectionNone {
		t.Errorf("status after rejected set: got %q, want none", got)
	}
}

func TestRehydrateIgnoresMalformedPersistedID(t *testing.T) {
	t.Parallel()
	store := storage.NewMemoryStore()
	raw, _ := json.Marshal(map[string]string{"connectionId": "tooshort", "companyName": "Acme"})
	store.Set(StorageKey, string(raw))

	m := New(Config{Store: store})
	if got := m.Snapshot().Status; got != model.ConnectionNone {
		t.Errorf("status after rehydrating bad id: got %q, want none", got)
	}
}

func TestDisconnectedEventResetsEverything(t *testing.T) {
	t.Parallel()
	store := storage.NewMemoryStore()
	m := New(Config{Store: store})
	if err := m.SetConnection(testID, "Acme"); err != nil {
		t.Fatalf("SetConnection: %v", err)
	}

	m.HandleEvent(model.ConnectionEvent{Event: model.EventDisconnected})

	got := m.Snapshot()
	if got.Status != model.ConnectionNone || got.ConnectionID != "" || got.CompanyName != "" {
		t.Errorf("state after disconnected event: got %+v, want cleared none", got)
	}
	if store.Get(StorageKey) != "" {
		t.Error("persisted record survived the disconnected event")
	}
}

func TestConnectedEventUpdatesNameOnly(t *testing.T) {
	t.Parallel()
	m := New(Config{Store: storage.NewMemoryStore()})
	if err := m.SetConnection(testID, "Acme"); err != nil {
		t.Fatalf("SetConnection: %v", err)
	}

	count := 1
	m.HandleEvent(model.ConnectionEvent{
		Event:          model.EventConnected,
		CompanyName:    strPtr("Acme Corp"),
		RecruiterName:  strPtr("Riya"),
		ConnectedCount: &count,
	})

	got := m.Snapshot()
	if got.ConnectionID != testID {
		t.Errorf("connection id changed by event: got %q", got.ConnectionID)
	}
	if got.CompanyName != "Acme Corp" {
		t.Errorf("company name: got %q, want %q", got.CompanyName, "Acme Corp")
	}
	if m.ConnectedCount() != 1 {
		t.Errorf("connected count: got %d, want 1", m.ConnectedCount())
	}
	if m.RecruiterName() != "Riya" {
		t.Errorf("recruiter name: got %q, want %q", m.RecruiterName(), "Riya")
	}
}

func TestConnectedEventWithoutCompanyNameIgnored(t *testing.T) {
	t.Parallel()
	m := New(Config{Store: storage.NewMemoryStore()})
	m.HandleEvent(model.ConnectionEvent{Event: model.EventConnected})
	if got := m.Snapshot().Status; got != model.ConnectionNone {
		t.Errorf("status after nameless connected event: got %q, want none", got)
	}
}

func TestClearConnectionIsFireAndForget(t *testing.T) {
	t.Parallel()
	store := storage.NewMemoryStore()
	var wg sync.WaitGroup
	wg.Add(1)
	m := New(Config{
		Store: store,
		Disconnect: func(ctx context.Context) error {
			defer wg.Done()
			return errors.New("network down")
		},
	})
	if err := m.SetConnection(testID, "Acme"); err != nil {
		t.Fatalf("SetConnection: %v", err)
	}

	m.ClearConnection(context.Background())
	wg.Wait()

	got := m.Snapshot()
	if got.Status != model.ConnectionNone || got.ConnectionID != "" {
		t.Errorf("state after clear: got %+v, want none", got)
	}
	if store.Get(StorageKey) != "" {
		t.Error("persisted record survived ClearConnection")
	}
}

func TestRevalidateInvalidatesWhenIDStopsResolving(t *testing.T) {
	t.Parallel()
	store := storage.NewMemoryStore()
	var changes []model.ConnectionStatus
	m := New(Config{
		Store:    store,
		OnChange: func(s model.ConnectionState) { changes = append(changes, s.Status) },
	})
	if err := m.SetConnection(testID, "Acme"); err != nil {
		t.Fatalf("SetConnection: %v", err)
	}

	lookup := func(ctx context.Context, id string) (*model.ClientCompany, error) {
		return nil, gateway.ErrNotFound
	}
	if err := m.Revalidate(context.Background(), lookup, func(err error) bool {
		return errors.Is(err, gateway.ErrNotFound)
	}); err != nil {
		t.Fatalf("Revalidate: %v", err)
	}

	got := m.Snapshot()
	if got.Status != model.ConnectionInvalid {
		t.Fatalf("status: got %q, want invalid", got.Status)
	}
	if store.Get(StorageKey) != "" {
		t.Error("persisted record survived invalidation")
	}
	if len(changes) == 0 || changes[len(changes)-1] != model.ConnectionInvalid {
		t.Errorf("OnChange notifications: got %v, want trailing invalid", changes)
	}
}

func TestRevalidateKeepsStateOnTransportError(t *testing.T) {
	t.Parallel()
	m := New(Config{Store: storage.NewMemoryStore()})
	if err := m.SetConnection(testID, "Acme"); err != nil {
		t.Fatalf("SetConnection: %v", err)
	}

	transportErr := errors.New("timeout")
	lookup := func(ctx context.Context, id string) (*model.ClientCompany, error) {
		return nil, transportErr
	}
	err := m.Revalidate(context.Background(), lookup, func(err error) bool {
		return errors.Is(err, gateway.ErrNotFound)
	})
	if !errors.Is(err, transportErr) {
		t.Fatalf("err: got %v, want the transport error", err)
	}
	if got := m.Snapshot().Status; got != model.ConnectionConnected {
		t.Errorf("status after transport error: got %q, want connected", got)
	}
}

func TestRevalidateNoopWhenNotConnected(t *testing.T) {
	t.Parallel()
	m := New(Config{Store: storage.NewMemoryStore()})
	called := false
	err := m.Revalidate(context.Background(), func(ctx context.Context, id string) (*model.ClientCompany, error) {
		called = true
		return nil, nil
	}, nil)
	if err != nil {
		t.Fatalf("Revalidate: %v", err)
	}
	if called {
		t.Error("lookup called with no connection held")
	}
}
