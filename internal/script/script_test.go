package script

import (
	"errors"
	"strings"
	"testing"

	"github.com/Makepad-fr/todolists/internal/model"
	"github.com/Makepad-fr/todolists/internal/store"
	"github.com/Makepad-fr/todolists/internal/testutil"
)

func newStore() *store.Store {
	return store.New(store.WithIDFunc(testutil.SeqIDs("id")))
}

func taskTitles(t *testing.T, s *store.Store, listIdx int) []string {
	t.Helper()
	id := s.Lists()[listIdx].ID
	ts, err := s.FilteredTasks(id)
	if err != nil {
		t.Fatal(err)
	}
	out := make([]string, len(ts))
	for i, task := range ts {
		out[i] = task.Title
	}
	return out
}

func TestRun_ShoppingScenario(t *testing.T) {
	s := newStore()
	src := `
# shopping
list Shopping
add 1 Milk
add 1 Bread
done 1 1
filter 1 active
`
	failed, err := Run(strings.NewReader(src), s, nil)
	if err != nil || len(failed) != 0 {
		t.Fatalf("Run: err=%v failed=%v", err, failed)
	}
	if got := taskTitles(t, s, 0); strings.Join(got, ",") != "Milk" {
		t.Errorf("active = %v, want [Milk]", got)
	}
	if err := Exec(s, "filter 1 completed"); err != nil {
		t.Fatal(err)
	}
	if got := taskTitles(t, s, 0); strings.Join(got, ",") != "Bread" {
		t.Errorf("completed = %v, want [Bread]", got)
	}
}

func TestRun_ContinuesAfterFailure(t *testing.T) {
	s := newStore()
	src := strings.Join([]string{
		"list L1",
		"add 1 waytoolongtitle",
		"add 1",
		"add 2 x",
		"bogus",
		"add 1 ok",
	}, "\n")

	failed, err := Run(strings.NewReader(src), s, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(failed) != 4 {
		t.Fatalf("expected 4 failures, got %d: %v", len(failed), failed)
	}

	checks := []struct {
		line int
		err  error
	}{
		{2, store.ErrTitleTooLong},
		{3, store.ErrTitleRequired},
		{4, ErrOutOfRange},
		{5, ErrUnknownCommand},
	}
	for i, c := range checks {
		if failed[i].Line != c.line || !errors.Is(failed[i], c.err) {
			t.Errorf("failure %d = %v, want line %d %v", i, failed[i], c.line, c.err)
		}
	}
	if got := taskTitles(t, s, 0); strings.Join(got, ",") != "ok" {
		t.Errorf("tasks = %v", got)
	}
}

func TestExec_RemoveListAndTasks(t *testing.T) {
	s := newStore()
	for _, line := range []string{"list L1", "list L2", "add 1 a", "add 2 b", "rmlist 2"} {
		if err := Exec(s, line); err != nil {
			t.Fatalf("%q: %v", line, err)
		}
	}
	lists := s.Lists()
	if len(lists) != 1 || lists[0].Title != "L1" {
		t.Fatalf("lists = %+v", lists)
	}
	if err := Exec(s, "rm 2 1"); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("rm on removed list err = %v", err)
	}
	if err := Exec(s, "rm 1 1"); err != nil {
		t.Fatal(err)
	}
	if got := taskTitles(t, s, 0); len(got) != 0 {
		t.Errorf("tasks = %v", got)
	}
}

func TestExec_RenameAndFilter(t *testing.T) {
	s := newStore()
	Exec(s, "list Old name")
	if err := Exec(s, "rename 1 New name"); err != nil {
		t.Fatal(err)
	}
	if got := s.Lists()[0].Title; got != "New name" {
		t.Errorf("title = %q", got)
	}
	if err := Exec(s, "filter 1 done"); !errors.Is(err, model.ErrUnknownFilter) {
		t.Errorf("err = %v, want ErrUnknownFilter", err)
	}
	if err := Exec(s, "filter 1"); !errors.Is(err, ErrUsage) {
		t.Errorf("err = %v, want ErrUsage", err)
	}
}

func TestExec_UndoAndBadIndex(t *testing.T) {
	s := newStore()
	Exec(s, "list L")
	Exec(s, "add 1 a")
	Exec(s, "done 1 1")
	if err := Exec(s, "undo 1 1"); err != nil {
		t.Fatal(err)
	}
	ts, _ := s.Tasks(s.Lists()[0].ID)
	if ts[0].Done {
		t.Error("undo should reopen the task")
	}
	if err := Exec(s, "done 1 x"); err == nil || !strings.Contains(err.Error(), "not a number") {
		t.Errorf("err = %v", err)
	}
	if err := Exec(s, "done 1 9"); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("err = %v", err)
	}
}

func TestExec_TitlesKeepInnerSpacing(t *testing.T) {
	s := newStore()
	if err := Exec(s, "list Weekly   groceries"); err != nil {
		t.Fatal(err)
	}
	if got := s.Lists()[0].Title; got != "Weekly   groceries" {
		t.Errorf("list title = %q", got)
	}

	// 16 runes once trimmed; collapsing the gap would make it fit.
	if err := Exec(s, "add 1 ab        cdefgh"); !errors.Is(err, store.ErrTitleTooLong) {
		t.Fatalf("err = %v, want ErrTitleTooLong", err)
	}
	if got := taskTitles(t, s, 0); len(got) != 0 {
		t.Fatalf("tasks = %v, want none", got)
	}

	if err := Exec(s, "add   1   a  b  "); err != nil {
		t.Fatal(err)
	}
	if got := taskTitles(t, s, 0); len(got) != 1 || got[0] != "a  b" {
		t.Errorf("tasks = %q, want [\"a  b\"]", got)
	}

	if err := Exec(s, "rename 1 Old  one"); err != nil {
		t.Fatal(err)
	}
	if got := s.Lists()[0].Title; got != "Old  one" {
		t.Errorf("renamed title = %q", got)
	}
}
