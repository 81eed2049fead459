package model

// Todolist is a named, independently filterable collection of tasks.
// The tasks themselves live in the store, keyed by ID.
type Todolist struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Filter Filter `json:"filter"`
}

// Task is a titled unit of work with a completion flag.
type Task struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Done  bool   `json:"isDone"`
}
