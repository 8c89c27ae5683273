// Package autocomplete implements debounced search-as-you-type over a
// caller-supplied fetch function: length gating, result capping, an
// optional synthetic "no results" row, and circular keyboard navigation.
package autocomplete

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/blackholeinfiverse37/8-pillers-Workflow-Gurukul-HR/pkg/model"
)

// Suggestion is the minimal shape a suggestion item must expose. Display
// text comes from the caller's Label function, never from the item itself.
type Suggestion interface {
	SuggestionID() string
}

// Option is one dropdown row: either a real suggestion or the synthetic
// empty-option shown when a search yields nothing.
type Option[T Suggestion] struct {
	Item  T
	Label string
	Empty bool
}

// ID returns the row's id, the empty-option sentinel for synthetic rows.
func (o Option[T]) ID() string {
	if o.Empty {
		return model.EmptyOptionID
	}
	return o.Item.SuggestionID()
}

// Timer is the debounce timer seam. Production uses time.AfterFunc; tests
// substitute a hand-driven fake.
type Timer interface {
	Stop() bool
}

type Config[T Suggestion] struct {
	// Fetch runs the search. Required.
	Fetch func(ctx context.Context, query string) ([]T, error)
	// Label projects an item to its dropdown text. Required.
	Label func(T) string

	MinLength      int           // default 1
	Debounce       time.Duration // default 250ms
	MaxSuggestions int           // default 10

	// ClearOnSelect empties the input on commit instead of filling in the
	// selected item's label.
	ClearOnSelect bool
	// EmptyOptionLabel, when set, shows a synthetic row for empty results.
	EmptyOptionLabel string

	OnSelect      func(item T)
	OnEmptySelect func()

	// NewTimer overrides the debounce timer construction for tests.
	NewTimer func(d time.Duration, fire func()) Timer

	Logger *zap.Logger
}

type Controller[T Suggestion] struct {
	cfg    Config[T]
	ctx    context.Context
	cancel context.CancelFunc
	log    *zap.Logger

	mu        sync.Mutex
	value     string
	rows      []Option[T]
	loading   bool
	open      bool
	highlight int
	seq       uint64
	timer     Timer
}

func New[T Suggestion](cfg Config[T]) *Controller[T] {
	if cfg.MinLength < 1 {
		cfg.MinLength = 1
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = 250 * time.Millisecond
	}
	if cfg.MaxSuggestions < 1 {
		cfg.MaxSuggestions = 10
	}
	if cfg.NewTimer == nil {
		cfg.NewTimer = func(d time.Duration, fire func()) Timer {
			return time.AfterFunc(d, fire)
		}
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Controller[T]{
		cfg:       cfg,
		ctx:       ctx,
		cancel:    cancel,
		log:       log,
		highlight: -1,
	}
}

// Close cancels any in-flight fetch and pending debounce timer. Results
// arriving after Close are discarded.
func (c *Controller[T]) Close() {
	c.mu.Lock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.seq++
	c.mu.Unlock()
	c.cancel()
}

// SetValue feeds a new text value into the controller. A blank value clears
// and closes immediately with no fetch; anything else restarts the debounce
// timer so only the last value of a typing burst is fetched.
func (c *Controller[T]) SetValue(value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.value = value
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	if strings.TrimSpace(value) == "" {
		c.rows = nil
		c.open = false
		c.highlight = -1
		return
	}
	c.timer = c.cfg.NewTimer(c.cfg.Debounce, func() { c.load(value) })
}

// load runs when a debounce timer fires. Completions carry the sequence
// number issued at fetch start; anything but the latest issued is dropped
// so an older fetch can never overwrite a newer one.
func (c *Controller[T]) load(query string) {
	if len(query) < c.cfg.MinLength {
		c.mu.Lock()
		c.rows = nil
		c.open = false
		c.highlight = -1
		c.mu.Unlock()
		return
	}

	c.mu.Lock()
	c.seq++
	mySeq := c.seq
	c.loading = true
	c.mu.Unlock()

	items, err := c.cfg.Fetch(c.ctx, query)
	if err != nil {
		c.log.Sugar().Debugw("suggestion fetch failed", "query", query, "err", err)
		items = nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if mySeq != c.seq {
		// a newer fetch was issued; it owns the loading flag
		return
	}
	c.loading = false
	c.highlight = -1

	if len(items) > c.cfg.MaxSuggestions {
		items = items[:c.cfg.MaxSuggestions]
	}
	if len(items) == 0 {
		if c.cfg.EmptyOptionLabel != "" {
			c.rows = []Option[T]{{Label: c.cfg.EmptyOptionLabel, Empty: true}}
			c.open = true
		} else {
			c.rows = nil
			c.open = false
		}
		return
	}
	rows := make([]Option[T], 0, len(items))
	for _, item := range items {
		rows = append(rows, Option[T]{Item: item, Label: c.cfg.Label(item)})
	}
	c.rows = rows
	c.open = true
}

// MoveDown advances the highlight, wrapping from the last row to the first.
func (c *Controller[T]) MoveDown() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.open || len(c.rows) == 0 {
		return
	}
	if c.highlight < len(c.rows)-1 {
		c.highlight++
	} else {
		c.highlight = 0
	}
}

// MoveUp moves the highlight back, wrapping from the first row to the last.
func (c *Controller[T]) MoveUp() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.open || len(c.rows) == 0 {
		return
	}
	if c.highlight > 0 {
		c.highlight--
	} else {
		c.highlight = len(c.rows) - 1
	}
}

// Commit selects the highlighted row (Enter). Without a highlight it does
// nothing.
func (c *Controller[T]) Commit() {
	c.mu.Lock()
	if !c.open || c.highlight < 0 || c.highlight >= len(c.rows) {
		c.mu.Unlock()
		return
	}
	row := c.rows[c.highlight]
	c.commitLocked(row, false)
}

// Select commits row i (pointer activation) and drops the suggestion list.
func (c *Controller[T]) Select(i int) {
	c.mu.Lock()
	if i < 0 || i >= len(c.rows) {
		c.mu.Unlock()
		return
	}
	row := c.rows[i]
	c.commitLocked(row, true)
}

// commitLocked finishes a selection; the caller holds the lock, which is
// released before any callback runs.
func (c *Controller[T]) commitLocked(row Option[T], clearList bool) {
	if row.Empty {
		c.value = ""
		c.open = false
		if clearList {
			c.rows = nil
		}
		cb := c.cfg.OnEmptySelect
		c.mu.Unlock()
		if cb != nil {
			cb()
		}
		return
	}
	if c.cfg.ClearOnSelect {
		c.value = ""
	} else {
		c.value = row.Label
	}
	c.open = false
	if clearList {
		c.rows = nil
	}
	cb := c.cfg.OnSelect
	item := row.Item
	c.mu.Unlock()
	if cb != nil {
		cb(item)
	}
}

// Dismiss closes the dropdown without touching the value (Escape or a
// pointer interaction outside the control).
func (c *Controller[T]) Dismiss() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.open = false
	c.highlight = -1
}

func (c *Controller[T]) Value() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

func (c *Controller[T]) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Open reports whether the dropdown has anything to show.
func (c *Controller[T]) Open() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.open && len(c.rows) > 0
}

// Highlight returns the highlighted row index, -1 for none.
func (c *Controller[T]) Highlight() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.highlight
}

// Options returns the current dropdown rows.
func (c *Controller[T]) Options() []Option[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Option[T], len(c.rows))
	copy(out, c.rows)
	return out
}
