package ui

import (
	"fmt"
	"io"

	"github.com/Makepad-fr/todolists/internal/model"
	"github.com/Makepad-fr/todolists/internal/store"
)

// Board prints one panel per todolist, each with its own filter applied.
func Board(w io.Writer, snap store.Snapshot) {
	if len(snap.Lists) == 0 {
		fmt.Fprintln(w, C(Current().Muted, "no todolists"))
		return
	}
	for i, l := range snap.Lists {
		if i > 0 {
			fmt.Fprintln(w)
		}
		Panel(w, listLines(i+1, l, snap))
	}
}

func listLines(n int, l model.Todolist, snap store.Snapshot) []string {
	t := Current()
	all := snap.Tasks(l.ID)
	d, p := store.Stats(all)

	header := fmt.Sprintf("%s %s  %s %d  %s %d  %s %d",
		C(t.Muted, fmt.Sprintf("%d.", n)),
		C(t.Title, l.Title),
		C(t.Success, t.SymDone), d,
		C(t.Pending, t.SymUnchecked), p,
		C(t.Accent, "Total"), len(all),
	)

	lines := []string{header, C(t.Muted, ProgressBar(d, d+p, 20)), ""}
	lines = append(lines, taskLines(all, l.Filter)...)
	lines = append(lines, "", filterLine(l.Filter))
	return lines
}

// taskLines numbers tasks by their position in the full list so the
// indexes stay valid for scripts whatever the filter.
func taskLines(all []model.Task, f model.Filter) []string {
	t := Current()
	var out []string
	for i, task := range all {
		if !f.Match(task) {
			continue
		}
		box, color, title := t.BoxUnchecked, t.Muted, task.Title
		if task.Done {
			box, color, title = t.BoxChecked, t.Success, C(t.Done, task.Title)
		}
		out = append(out, fmt.Sprintf("%s %s %s",
			C(dim, fmt.Sprintf("%2d.", i+1)), C(color, box), title))
	}
	if len(out) == 0 {
		return []string{C(t.Muted, "no tasks")}
	}
	return out
}

func filterLine(active model.Filter) string {
	t := Current()
	s := ""
	for i, f := range model.Filters {
		if i > 0 {
			s += " "
		}
		if f == active {
			s += C(t.Accent, "["+f.Label()+"]")
		} else {
			s += C(t.Muted, " "+f.Label()+" ")
		}
	}
	return s
}
