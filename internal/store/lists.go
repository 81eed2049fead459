package store

import (
	"github.com/Makepad-fr/todolists/internal/model"
)

// CreateList appends a list with the "all" filter and an empty task collection.
func (s *Store) CreateList(title string) (string, Snapshot, error) {
	t, err := validateListTitle(title)
	if err != nil {
		return "", s.Snapshot(), err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.newID()
	s.lists = append(s.lists, model.Todolist{ID: id, Title: t, Filter: model.FilterAll})
	s.tasks[id] = []model.Task{}
	s.logger.Debug("list created", "list", id, "title", t)
	return id, s.snapshotLocked(), nil
}

// RenameList changes a list title. Unknown ids are ignored.
func (s *Store) RenameList(id, title string) (Snapshot, error) {
	t, err := validateListTitle(title)
	if err != nil {
		return s.Snapshot(), err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOfList(id); i >= 0 {
		s.lists[i].Title = t
		s.logger.Debug("list renamed", "list", id, "title", t)
	}
	return s.snapshotLocked(), nil
}

// RemoveList drops the list and its task collection together.
// Unknown ids are ignored.
func (s *Store) RemoveList(id string) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOfList(id)
	if i < 0 {
		return s.snapshotLocked()
	}
	s.lists = append(s.lists[:i:i], s.lists[i+1:]...)
	s.deleteCollection(id)
	s.logger.Debug("list removed", "list", id)
	return s.snapshotLocked()
}

// SetFilter changes which tasks of a list are visible. Unknown ids are ignored.
func (s *Store) SetFilter(id string, f model.Filter) (Snapshot, error) {
	if !f.Valid() {
		_, err := model.ParseFilter(string(f))
		return s.Snapshot(), err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOfList(id); i >= 0 {
		s.lists[i].Filter = f
		s.logger.Debug("filter set", "list", id, "filter", f)
	}
	return s.snapshotLocked(), nil
}

// Lists returns the todolists in creation order.
func (s *Store) Lists() []model.Todolist {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Todolist, len(s.lists))
	copy(out, s.lists)
	return out
}

func (s *Store) indexOfList(id string) int {
	for i, l := range s.lists {
		if l.ID == id {
			return i
		}
	}
	return -1
}
