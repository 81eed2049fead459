package store

import (
	"fmt"

	"github.com/Makepad-fr/todolists/internal/model"
)

// AddTask validates title and puts a new open task at the front of the list.
func (s *Store) AddTask(listID, title string) (string, Snapshot, error) {
	t, err := ValidateTitle(title)
	if err != nil {
		return "", s.Snapshot(), err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ts, ok := s.tasks[listID]
	if !ok {
		return "", s.snapshotLocked(), fmt.Errorf("list %s: %w", listID, ErrNotFound)
	}
	id := s.newID()
	next := make([]model.Task, 0, len(ts)+1)
	next = append(next, model.Task{ID: id, Title: t})
	s.tasks[listID] = append(next, ts...)
	s.logger.Debug("task added", "list", listID, "task", id, "title", t)
	return id, s.snapshotLocked(), nil
}

// RemoveTask deletes one task. Unknown list or task ids are ignored.
func (s *Store) RemoveTask(listID, taskID string) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	ts := s.tasks[listID]
	if i := indexOfTask(ts, taskID); i >= 0 {
		s.tasks[listID] = append(ts[:i:i], ts[i+1:]...)
		s.logger.Debug("task removed", "list", listID, "task", taskID)
	}
	return s.snapshotLocked()
}

// SetTaskStatus marks a task done or open. Unknown list or task ids are ignored.
func (s *Store) SetTaskStatus(listID, taskID string, done bool) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	ts := s.tasks[listID]
	if i := indexOfTask(ts, taskID); i >= 0 {
		ts[i].Done = done
		s.logger.Debug("task status set", "list", listID, "task", taskID, "done", done)
	}
	return s.snapshotLocked()
}

// Tasks returns a list's tasks, newest first.
func (s *Store) Tasks(listID string) ([]model.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ts, ok := s.tasks[listID]
	if !ok {
		return nil, fmt.Errorf("list %s: %w", listID, ErrNotFound)
	}
	return cloneTasks(ts), nil
}

// FilteredTasks returns the tasks visible under the list's current filter.
func (s *Store) FilteredTasks(listID string) ([]model.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOfList(listID)
	if i < 0 {
		return nil, fmt.Errorf("list %s: %w", listID, ErrNotFound)
	}
	return FilterTasks(s.tasks[listID], s.lists[i].Filter), nil
}

// deleteCollection must be called with s.mu held, as part of RemoveList.
func (s *Store) deleteCollection(listID string) {
	delete(s.tasks, listID)
}

func indexOfTask(ts []model.Task, id string) int {
	for i, t := range ts {
		if t.ID == id {
			return i
		}
	}
	return -1
}
