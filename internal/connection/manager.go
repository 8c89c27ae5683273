// Package connection maintains the recruiter<->client pairing state: kept
// across restarts through the injected store and kept in sync across both
// parties through the gateway's push event stream, with no polling.
package connection

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"sync"

	"go.uber.org/zap"

	"github.com/blackholeinfiverse37/8-pillers-Workflow-Gurukul-HR/internal/storage"
	"github.com/blackholeinfiverse37/8-pillers-Workflow-Gurukul-HR/pkg/model"
)

// StorageKey is where the last validated connection is persisted.
const StorageKey = "recruiter_last_connection"

var ErrInvalidConnectionID = errors.New("connection: id must be 24 hexadecimal characters")

var connectionIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// ValidID reports whether id has the 24-hex-character connection id shape.
func ValidID(id string) bool {
	return connectionIDPattern.MatchString(id)
}

// persisted is the JSON blob written to the store.
type persisted struct {
	ConnectionID string `json:"connectionId"`
	CompanyName  string `json:"companyName"`
}

type Config struct {
	Store      storage.Store
	StorageKey string // default StorageKey
	// Disconnect notifies the peer on ClearConnection. Best effort.
	Disconnect func(ctx context.Context) error
	// OnChange fires after every state transition, outside the lock.
	OnChange func(model.ConnectionState)
	Logger   *zap.Logger
}

type Manager struct {
	cfg Config
	log *zap.Logger

	mu             sync.Mutex
	state          model.ConnectionState
	connectedCount int
	recruiterName  string
}

// New builds a manager rehydrated from the store: a persisted id of valid
// shape restores the connected state, anything else starts at none.
func New(cfg Config) *Manager {
	if cfg.StorageKey == "" {
		cfg.StorageKey = StorageKey
	}
	if cfg.Store == nil {
		cfg.Store = storage.NewMemoryStore()
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	m := &Manager{cfg: cfg, log: log, state: model.ConnectionState{Status: model.ConnectionNone}}
	if p := m.loadPersisted(); p != nil {
		m.state = model.ConnectionState{
			ConnectionID: p.ConnectionID,
			CompanyName:  p.CompanyName,
			Status:       model.ConnectionConnected,
		}
		log.Sugar().Debugw("connection rehydrated", "connection_id", p.ConnectionID)
	}
	return m
}

func (m *Manager) loadPersisted() *persisted {
	raw := m.cfg.Store.Get(m.cfg.StorageKey)
	if raw == "" {
		return nil
	}
	var p persisted
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil
	}
	if !ValidID(p.ConnectionID) {
		return nil
	}
	return &p
}

// Snapshot returns the current pairing state.
func (m *Manager) Snapshot() model.ConnectionState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// ConnectedCount returns the peer count from the last connected event.
func (m *Manager) ConnectedCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.connectedCount
}

// RecruiterName returns the peer recruiter name from the last event.
func (m *Manager) RecruiterName() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.recruiterName
}

// SetConnection moves to connected. The store write completes before the
// in-memory state is published, so a restart during the call can never
// observe a connected session with nothing persisted.
func (m *Manager) SetConnection(connectionID, companyName string) error {
	if !ValidID(connectionID) {
		return ErrInvalidConnectionID
	}

	m.mu.Lock()
	m.cfg.Store.Remove(m.cfg.StorageKey)
	raw, err := json.Marshal(persisted{ConnectionID: connectionID, CompanyName: companyName})
	if err == nil {
		m.cfg.Store.Set(m.cfg.StorageKey, string(raw))
	}
	m.state = model.ConnectionState{
		ConnectionID: connectionID,
		CompanyName:  companyName,
		Status:       model.ConnectionConnected,
	}
	state := m.state
	m.mu.Unlock()

	m.notify(state)
	return nil
}

// ClearConnection notifies the peer (fire and forget), clears the persisted
// record and resets to none. The network notification never blocks or fails
// the local reset.
func (m *Manager) ClearConnection(ctx context.Context) {
	if m.cfg.Disconnect != nil {
		go func() {
			if err := m.cfg.Disconnect(ctx); err != nil {
				m.log.Sugar().Debugw("disconnect notification failed", "err", err)
			}
		}()
	}

	m.mu.Lock()
	m.cfg.Store.Remove(m.cfg.StorageKey)
	m.state = model.ConnectionState{Status: model.ConnectionNone}
	m.connectedCount = 0
	m.recruiterName = ""
	state := m.state
	m.mu.Unlock()

	m.notify(state)
}

// HandleEvent applies one inbound push event. A connected event refreshes
// peer metadata only; the pairing id it belongs to is the one already held.
// A disconnected event resets fully to none and drops the persisted record.
func (m *Manager) HandleEvent(ev model.ConnectionEvent) {
	m.mu.Lock()
	switch {
	case ev.Event == model.EventConnected && ev.CompanyName != nil:
		m.state.CompanyName = *ev.CompanyName
		m.state.Status = model.ConnectionConnected
		if ev.ConnectedCount != nil {
			m.connectedCount = *ev.ConnectedCount
		}
		if ev.RecruiterName != nil {
			m.recruiterName = *ev.RecruiterName
		}
	case ev.Event == model.EventDisconnected:
		m.cfg.Store.Remove(m.cfg.StorageKey)
		m.state = model.ConnectionState{Status: model.ConnectionNone}
		m.connectedCount = 0
		m.recruiterName = ""
	default:
		m.mu.Unlock()
		return
	}
	state := m.state
	m.mu.Unlock()

	m.notify(state)
}

// Invalidate marks a previously connected pairing as dead after the held id
// stopped resolving. Distinct from none so consumers can unlock a locked id
// input and clear their cached company display.
func (m *Manager) Invalidate() {
	m.mu.Lock()
	m.cfg.Store.Remove(m.cfg.StorageKey)
	m.state = model.ConnectionState{Status: model.ConnectionInvalid}
	m.connectedCount = 0
	m.recruiterName = ""
	state := m.state
	m.mu.Unlock()

	m.notify(state)
}

// Revalidate checks that the held id still resolves, typically on an hourly
// tick. notFound lookups invalidate the pairing; transport errors leave the
// state untouched and are returned to the caller.
func (m *Manager) Revalidate(ctx context.Context, lookup func(ctx context.Context, id string) (*model.ClientCompany, error), notFound func(error) bool) error {
	m.mu.Lock()
	if m.state.Status != model.ConnectionConnected {
		m.mu.Unlock()
		return nil
	}
	id := m.state.ConnectionID
	m.mu.Unlock()

	company, err := lookup(ctx, id)
	if err != nil {
		if notFound != nil && notFound(err) {
			m.log.Sugar().Infow("connection no longer resolves, invalidating", "connection_id", id)
			m.Invalidate()
			return nil
		}
		return err
	}

	m.mu.Lock()
	if m.state.Status == model.ConnectionConnected && m.state.ConnectionID == id {
		m.state.CompanyName = company.CompanyName
	}
	m.mu.Unlock()
	return nil
}

// Run consumes the event stream until it ends or ctx is cancelled.
func (m *Manager) Run(ctx context.Context, subscribe func(ctx context.Context, onEvent func(model.ConnectionEvent)) error) error {
	return subscribe(ctx, m.HandleEvent)
}

func (m *Manager) notify(state model.ConnectionState) {
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(state)
	}
}
