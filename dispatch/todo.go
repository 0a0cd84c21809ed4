package dispatch

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kestrelsec/cybuddy/todo"
	"github.com/kestrelsec/cybuddy/transcript"
)

// handleTodo implements /todo: bare lists, "add <text>" appends,
// "done <n>" completes, "clear" wipes.
func (d *Dispatcher) handleTodo(arg string) Result {
	if d.todos == nil {
		return Result{
			Lines:   []transcript.Line{errLine("todo list unavailable")},
			IsError: true,
		}
	}

	sub, rest, _ := strings.Cut(arg, " ")
	rest = strings.TrimSpace(rest)

	switch strings.ToLower(sub) {
	case "":
		return d.listTodos()
	case "add":
		if rest == "" {
			return usage("/todo add <text>")
		}
		if err := d.todos.Add(rest); err != nil {
			d.log.Warn("todo save failed", "error", err)
			return Result{Lines: []transcript.Line{errLine("todo: " + err.Error())}, IsError: true}
		}
		return Result{Lines: []transcript.Line{success("added: " + rest)}}
	case "done":
		n, err := strconv.Atoi(rest)
		if err != nil {
			return usage("/todo done <number>")
		}
		item, err := d.todos.Done(n)
		if err != nil {
			return Result{Lines: []transcript.Line{errLine(err.Error())}, IsError: true}
		}
		return Result{Lines: []transcript.Line{success("done: " + item.Text)}}
	case "clear":
		if err := d.todos.Clear(); err != nil {
			return Result{Lines: []transcript.Line{errLine("todo: " + err.Error())}, IsError: true}
		}
		return Result{Lines: []transcript.Line{dim("todo list cleared")}}
	}

	return usage("/todo [add <text> | done <number> | clear]")
}

func (d *Dispatcher) listTodos() Result {
	items := d.todos.Items()
	if len(items) == 0 {
		return Result{Lines: []transcript.Line{dim("no todo items, add one with /todo add <text>")}}
	}

	lines := []transcript.Line{title("todo")}
	for i, item := range items {
		text := fmt.Sprintf("  %d. [%s] %s", i+1, item.Status, item.Text)
		if item.Status == todo.StatusCompleted {
			lines = append(lines, dim(text))
		} else {
			lines = append(lines, plain(text))
		}
	}
	return Result{Lines: lines}
}
