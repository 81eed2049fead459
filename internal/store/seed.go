package store

import "fmt"

type seedTask struct {
	title string
	done  bool
}

// seedLists is the starter board; tasks are listed in display order.
var seedLists = []struct {
	title string
	tasks []seedTask
}{
	{"What to learn", []seedTask{{"HTML", true}, {"CSS", true}, {"JS/TS", false}}},
	{"What to buy", []seedTask{{"Milk", true}, {"Bread", true}, {"Meat", false}}},
}

// Seed fills s with the starter board.
func Seed(s *Store) (Snapshot, error) {
	for _, sl := range seedLists {
		id, _, err := s.CreateList(sl.title)
		if err != nil {
			return s.Snapshot(), fmt.Errorf("seed list %q: %w", sl.title, err)
		}
		// AddTask prepends, so walk backwards to keep display order.
		for i := len(sl.tasks) - 1; i >= 0; i-- {
			st := sl.tasks[i]
			taskID, next, err := s.AddTask(id, st.title)
			if err != nil {
				return next, fmt.Errorf("seed task %q: %w", st.title, err)
			}
			if st.done {
				s.SetTaskStatus(id, taskID, true)
			}
		}
	}
	return s.Snapshot(), nil
}
