// Package canvas holds the user's workspace: a handful of files, each with
// up to three sets, and the diagram derived from the current file.
package canvas

import (
	"errors"
	"slices"
	"strings"

	"github.com/google/uuid"

	"readySet/venn"
)

type Style struct {
	Name  string
	Color string
}

var Styles = []Style{
	{Name: "A", Color: "#5863F8"},
	{Name: "B", Color: "#3AD993"},
	{Name: "C", Color: "#FFE381"},
	{Name: "D", Color: "#F07F5A"},
}

var FileNames = []string{"File A", "File B", "File C", "File D", "File E"}

var (
	ErrLimitReached  = errors.New("limit reached")
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrUnknownFile   = errors.New("unknown file")
	ErrUnknownStyle  = errors.New("unknown style")
	ErrStyleInUse    = errors.New("style already in use")
)

type file struct {
	id             uuid.UUID
	name           string
	sets           []venn.UserSet
	previous       []venn.UserSet
	hasPrevious    bool
	previousIsRedo bool
}

// FileSummary describes a file for listings.
type FileSummary struct {
	ID      uuid.UUID
	Name    string
	Sets    int
	Current bool
}

// Canvas is not safe for concurrent use.
type Canvas struct {
	files   []file
	current int
	style   int
	nodes   []venn.Node
}

func New() *Canvas {
	c := &Canvas{}
	for _, name := range FileNames {
		c.files = append(c.files, file{id: uuid.New(), name: name})
	}
	c.changed()
	return c
}

func (c *Canvas) file() *file {
	return &c.files[c.current]
}

// Sets returns the sets of the current file in the order they were added.
func (c *Canvas) Sets() []venn.UserSet {
	return slices.Clone(c.file().sets)
}

// Nodes returns the diagram of the current file.
func (c *Canvas) Nodes() []venn.Node {
	return slices.Clone(c.nodes)
}

// Style is the style the next added set will get.
func (c *Canvas) Style() Style {
	return Styles[c.style]
}

// AvailableStyles lists the styles no set of the current file uses.
func (c *Canvas) AvailableStyles() []Style {
	var available []Style
	for i, s := range Styles {
		if c.available(i) {
			available = append(available, s)
		}
	}
	return available
}

func (c *Canvas) available(style int) bool {
	for _, s := range c.file().sets {
		if s.Name == Styles[style].Name {
			return false
		}
	}
	return true
}

func (c *Canvas) SelectStyle(name string) error {
	i := slices.IndexFunc(Styles, func(s Style) bool {
		return strings.EqualFold(s.Name, name)
	})
	if i < 0 {
		return ErrUnknownStyle
	}
	if !c.available(i) {
		return ErrStyleInUse
	}
	c.style = i
	return nil
}

// AddSet parses text into a new set with the current style and returns the
// cue for the resulting diagram.
func (c *Canvas) AddSet(text string) (venn.Cue, error) {
	f := c.file()
	if len(f.sets) >= venn.MaxSets {
		return venn.CueNone, ErrLimitReached
	}
	c.savePrevious()
	style := c.Style()
	set := venn.UserSet{
		Name:     style.Name,
		Color:    style.Color,
		Elements: venn.ParseElements(text),
	}
	f.sets = append(slices.Clone(f.sets), set)
	c.changed()
	return venn.CueFor(c.nodes), nil
}

// Empty removes every set of the current file. It can be undone.
func (c *Canvas) Empty() {
	c.savePrevious()
	c.file().sets = nil
	c.changed()
}

// Undo swaps the current file with its previous state. Calling it again
// redoes. The result reports whether this call was a redo.
func (c *Canvas) Undo() (bool, error) {
	f := c.file()
	if !f.hasPrevious {
		return false, ErrNothingToUndo
	}
	redo := f.previousIsRedo
	f.sets, f.previous = f.previous, f.sets
	f.previousIsRedo = !f.previousIsRedo
	c.changed()
	return redo, nil
}

// CanUndo reports whether Undo would do something, and whether it would be
// a redo.
func (c *Canvas) CanUndo() (ok, redo bool) {
	f := c.file()
	return f.hasPrevious, f.previousIsRedo
}

// SelectFile switches to the file with the given name. "File B", "b" and
// "B" all name the second file.
func (c *Canvas) SelectFile(name string) error {
	name = strings.TrimSpace(name)
	i := slices.IndexFunc(c.files, func(f file) bool {
		return strings.EqualFold(f.name, name) ||
			strings.EqualFold(strings.TrimPrefix(f.name, "File "), name)
	})
	if i < 0 {
		return ErrUnknownFile
	}
	c.current = i
	c.changed()
	return nil
}

func (c *Canvas) Current() FileSummary {
	return c.summary(c.current)
}

func (c *Canvas) Files() []FileSummary {
	summaries := make([]FileSummary, len(c.files))
	for i := range c.files {
		summaries[i] = c.summary(i)
	}
	return summaries
}

func (c *Canvas) summary(i int) FileSummary {
	f := c.files[i]
	return FileSummary{ID: f.id, Name: f.name, Sets: len(f.sets), Current: i == c.current}
}

func (c *Canvas) savePrevious() {
	f := c.file()
	f.previous = slices.Clone(f.sets)
	f.hasPrevious = true
	f.previousIsRedo = false
}

// changed rebuilds the diagram and moves off a style that became taken.
func (c *Canvas) changed() {
	c.nodes = venn.Classify(c.file().sets)
	if !c.available(c.style) {
		for i := range Styles {
			if c.available(i) {
				c.style = i
				break
			}
		}
	}
}
