package tower

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"strings"
	"sync"

	"readySet/canvas"
	"readySet/venn"
)

// dispatcher runs /set subcommands against a single canvas. Discord
// delivers interactions concurrently, so every command holds the lock.
type dispatcher struct {
	mu     sync.Mutex
	canvas *canvas.Canvas
}

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrInternal       = errors.New("internal error")
)

var cueEmoji = map[venn.Cue]string{
	venn.CueEmptySet:  "🫙",
	venn.CueSimpleSet: "🔵",
	venn.CueOverlap:   "🔗",
	venn.CueComplex:   "🧩",
	venn.CueThreeway:  "🎉",
}

func NewDispatcher() *dispatcher {
	return &dispatcher{canvas: canvas.New()}
}

// Run executes one subcommand and returns the reply text. Panics raised by
// the classifier come back as ErrInternal.
func (d *dispatcher) Run(command, arg string) (reply string, err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Command panicked", "command", command, "panic", r, "stack", string(debug.Stack()))
			reply, err = "", fmt.Errorf("%w: %v", ErrInternal, r)
		}
	}()

	switch command {
	case "add":
		cue, err := d.canvas.AddSet(arg)
		if err != nil {
			return "", err
		}
		sets := d.canvas.Sets()
		added := venn.PlainSet{Set: sets[len(sets)-1]}
		return fmt.Sprintf("%s Added %s\n%s", cueEmoji[cue], venn.Description(added), d.diagram()), nil
	case "style":
		if err := d.canvas.SelectStyle(arg); err != nil {
			return "", fmt.Errorf("style %q: %w", arg, err)
		}
		return fmt.Sprintf("The next set will be Set %s.", d.canvas.Style().Name), nil
	case "undo":
		redo, err := d.canvas.Undo()
		if err != nil {
			return "", err
		}
		verb := "Undone."
		if redo {
			verb = "Redone."
		}
		return verb + "\n" + d.diagram(), nil
	case "empty":
		d.canvas.Empty()
		return "The canvas is empty. This can be undone.", nil
	case "file":
		if err := d.canvas.SelectFile(arg); err != nil {
			return "", fmt.Errorf("file %q: %w", arg, err)
		}
		return fmt.Sprintf("Switched to %s.\n%s", d.canvas.Current().Name, d.diagram()), nil
	case "files":
		return d.files(), nil
	case "show":
		return d.diagram(), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCommand, command)
}

func (d *dispatcher) diagram() string {
	nodes := d.canvas.Nodes()
	if len(nodes) == 0 {
		return "The canvas is empty."
	}
	return "```\n" + venn.Outline(nodes) + "\n```"
}

func (d *dispatcher) files() string {
	var b strings.Builder
	for _, f := range d.canvas.Files() {
		mark := "○"
		if f.Current {
			mark = "●"
		}
		count := "-"
		if f.Sets > 0 {
			count = fmt.Sprint(f.Sets)
		}
		fmt.Fprintf(&b, "%s %s (%s)\n", mark, f.Name, count)
	}
	return strings.TrimSuffix(b.String(), "\n")
}
