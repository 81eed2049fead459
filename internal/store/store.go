// Package store holds the todolists and their task collections in memory.
//
// A single Store owns both the ordered lists and the per-list task
// sequences, so removing a list and its tasks is one atomic step. Every
// command returns a Snapshot of the new state for the caller to render.
package store

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/Makepad-fr/todolists/internal/model"
)

// Store is safe for concurrent use; one lock guards lists and tasks together.
type Store struct {
	mu    sync.RWMutex
	lists []model.Todolist
	tasks map[string][]model.Task // list id -> tasks, newest first

	newID  func() string
	logger *log.Logger
}

type Option func(*Store)

// WithIDFunc replaces the uuid generator, mostly for tests.
func WithIDFunc(fn func() string) Option {
	return func(s *Store) { s.newID = fn }
}

func WithLogger(l *log.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

func New(opts ...Option) *Store {
	s := &Store{
		tasks:  make(map[string][]model.Task),
		newID:  newUUID,
		logger: log.New(io.Discard),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// newUUID returns a time-based id, falling back to a random one if the
// clock sequence cannot be read.
func newUUID() string {
	id, err := uuid.NewUUID()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Snapshot is a deep copy of the store at one point in time.
type Snapshot struct {
	Lists []model.Todolist        `json:"todolists"`
	Items map[string][]model.Task `json:"tasks"`
}

// Snapshot returns the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() Snapshot {
	snap := Snapshot{
		Lists: make([]model.Todolist, len(s.lists)),
		Items: make(map[string][]model.Task, len(s.tasks)),
	}
	copy(snap.Lists, s.lists)
	for id, ts := range s.tasks {
		snap.Items[id] = cloneTasks(ts)
	}
	return snap
}

// List returns the todolist with the given id.
func (sn Snapshot) List(id string) (model.Todolist, bool) {
	for _, l := range sn.Lists {
		if l.ID == id {
			return l, true
		}
	}
	return model.Todolist{}, false
}

// Tasks returns the stored order of a list's tasks, nil if the list is unknown.
func (sn Snapshot) Tasks(id string) []model.Task {
	return sn.Items[id]
}

// Filtered applies the list's own filter to its tasks.
func (sn Snapshot) Filtered(id string) []model.Task {
	l, ok := sn.List(id)
	if !ok {
		return nil
	}
	return FilterTasks(sn.Items[id], l.Filter)
}

func cloneTasks(ts []model.Task) []model.Task {
	out := make([]model.Task, len(ts))
	copy(out, ts)
	return out
}
