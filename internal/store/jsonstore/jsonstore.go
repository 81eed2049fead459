package jsonstore

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Makepad-fr/todolists/internal/model"
	"github.com/Makepad-fr/todolists/internal/store"
)

// JSON export of a board. Output only; nothing is read back.

// document keeps lists in order and nests each list's tasks under it,
// so the export reads top to bottom like the board.
type document struct {
	Todolists []listDoc `json:"todolists"`
}

type listDoc struct {
	model.Todolist
	Tasks []model.Task `json:"tasks"`
}

func fromSnapshot(snap store.Snapshot) document {
	doc := document{Todolists: make([]listDoc, 0, len(snap.Lists))}
	for _, l := range snap.Lists {
		ts := snap.Tasks(l.ID)
		if ts == nil {
			ts = []model.Task{}
		}
		doc.Todolists = append(doc.Todolists, listDoc{Todolist: l, Tasks: ts})
	}
	return doc
}

// Marshal renders the snapshot as indented JSON.
func Marshal(snap store.Snapshot) ([]byte, error) {
	b, err := json.MarshalIndent(fromSnapshot(snap), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("json marshal: %w", err)
	}
	return b, nil
}

// Write marshals snap to w with a trailing newline.
func Write(w io.Writer, snap store.Snapshot) error {
	b, err := Marshal(snap)
	if err != nil {
		return err
	}
	if _, err := w.Write(append(b, '\n')); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}
