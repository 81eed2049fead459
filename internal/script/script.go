// Package script applies line-oriented board commands to a store.
//
// One command per line; blank lines and lines starting with # are skipped.
// Lists and tasks are addressed by 1-based index: lists in board order,
// tasks in stored (newest-first) order.
//
//	list <title...>
//	rename <list> <title...>
//	rmlist <list>
//	filter <list> all|active|completed
//	add <list> <title...>
//	rm <list> <task>
//	done <list> <task>
//	undo <list> <task>
package script

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/charmbracelet/log"

	"github.com/Makepad-fr/todolists/internal/model"
	"github.com/Makepad-fr/todolists/internal/store"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUsage          = errors.New("usage")
	ErrOutOfRange     = errors.New("index out of range")
)

// LineError ties a failure to its script line.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string { return fmt.Sprintf("line %d: %v", e.Line, e.Err) }
func (e *LineError) Unwrap() error { return e.Err }

// A handler receives the line with the command word cut off. Titles are
// passed on untouched so the store validates exactly what was typed.
type handler func(s *store.Store, rest string) error

var handlers = map[string]struct {
	usage string
	run   handler
}{
	"list":   {"list <title...>", cmdList},
	"rename": {"rename <list> <title...>", cmdRename},
	"rmlist": {"rmlist <list>", cmdRemoveList},
	"filter": {"filter <list> all|active|completed", cmdFilter},
	"add":    {"add <list> <title...>", cmdAdd},
	"rm":     {"rm <list> <task>", cmdRemoveTask},
	"done":   {"done <list> <task>", statusCmd(true)},
	"undo":   {"undo <list> <task>", statusCmd(false)},
}

// Run executes every line of r against s. A failing line is recorded and
// the script continues; the returned slice holds one error per failed line.
// The error result is only set when r cannot be read.
func Run(r io.Reader, s *store.Store, logger *log.Logger) ([]*LineError, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	var failed []*LineError
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := Exec(s, line); err != nil {
			logger.Warn("script line failed", "line", n, "err", err)
			failed = append(failed, &LineError{Line: n, Err: err})
		}
	}
	if err := sc.Err(); err != nil {
		return failed, fmt.Errorf("read script: %w", err)
	}
	return failed, nil
}

// Exec runs a single command line.
func Exec(s *store.Store, line string) error {
	name, rest := cutWord(line)
	if name == "" {
		return nil
	}
	h, ok := handlers[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}
	if err := h.run(s, rest); err != nil {
		if errors.Is(err, ErrUsage) {
			return fmt.Errorf("%w: %s", ErrUsage, h.usage)
		}
		return err
	}
	return nil
}

// cutWord splits off the first whitespace-separated word. The remainder
// loses only the separator run that follows the word.
func cutWord(s string) (word, rest string) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimLeftFunc(s[i:], unicode.IsSpace)
}

func cmdList(s *store.Store, rest string) error {
	if strings.TrimSpace(rest) == "" {
		return ErrUsage
	}
	_, _, err := s.CreateList(rest)
	return err
}

func cmdRename(s *store.Store, rest string) error {
	idx, title := cutWord(rest)
	if idx == "" || title == "" {
		return ErrUsage
	}
	id, err := resolveList(s, idx)
	if err != nil {
		return err
	}
	_, err = s.RenameList(id, title)
	return err
}

func cmdRemoveList(s *store.Store, rest string) error {
	args := strings.Fields(rest)
	if len(args) != 1 {
		return ErrUsage
	}
	id, err := resolveList(s, args[0])
	if err != nil {
		return err
	}
	s.RemoveList(id)
	return nil
}

func cmdFilter(s *store.Store, rest string) error {
	args := strings.Fields(rest)
	if len(args) != 2 {
		return ErrUsage
	}
	id, err := resolveList(s, args[0])
	if err != nil {
		return err
	}
	f, err := model.ParseFilter(args[1])
	if err != nil {
		return err
	}
	_, err = s.SetFilter(id, f)
	return err
}

// cmdAdd hands an empty title to the store so it reports the title rule.
func cmdAdd(s *store.Store, rest string) error {
	idx, title := cutWord(rest)
	if idx == "" {
		return ErrUsage
	}
	id, err := resolveList(s, idx)
	if err != nil {
		return err
	}
	_, _, err = s.AddTask(id, title)
	return err
}

func cmdRemoveTask(s *store.Store, rest string) error {
	listID, taskID, err := resolveTask(s, strings.Fields(rest))
	if err != nil {
		return err
	}
	s.RemoveTask(listID, taskID)
	return nil
}

func statusCmd(done bool) handler {
	return func(s *store.Store, rest string) error {
		listID, taskID, err := resolveTask(s, strings.Fields(rest))
		if err != nil {
			return err
		}
		s.SetTaskStatus(listID, taskID, done)
		return nil
	}
}

func resolveList(s *store.Store, arg string) (string, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return "", fmt.Errorf("list: not a number: %s", arg)
	}
	lists := s.Lists()
	if n < 1 || n > len(lists) {
		return "", fmt.Errorf("list %w: have %d, got %d", ErrOutOfRange, len(lists), n)
	}
	return lists[n-1].ID, nil
}

func resolveTask(s *store.Store, args []string) (string, string, error) {
	if len(args) != 2 {
		return "", "", ErrUsage
	}
	listID, err := resolveList(s, args[0])
	if err != nil {
		return "", "", err
	}
	n, err := strconv.Atoi(args[1])
	if err != nil {
		return "", "", fmt.Errorf("task: not a number: %s", args[1])
	}
	tasks, err := s.Tasks(listID)
	if err != nil {
		return "", "", err
	}
	if n < 1 || n > len(tasks) {
		return "", "", fmt.Errorf("task %w: have %d, got %d", ErrOutOfRange, len(tasks), n)
	}
	return listID, tasks[n-1].ID, nil
}
