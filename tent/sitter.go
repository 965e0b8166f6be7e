package tent

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"readySet/canvas"
	"readySet/venn"
)

type regexpDispatch struct {
	callback func([]string)
	regex    *regexp.Regexp
}

// sitter runs console commands, one per line, against its own canvas.
type sitter struct {
	hooks   *hooks
	canvas  *canvas.Canvas
	out     io.Writer
	quit    bool
	regexps []regexpDispatch
}

func NewSitter(hooks *hooks, out io.Writer) *sitter {
	s := &sitter{
		hooks:  hooks,
		canvas: canvas.New(),
		out:    out,
	}
	s.regexps = []regexpDispatch{
		{s.onAdd, regexp.MustCompile(`(?i)^add(?:\s+(.*))?$`)},
		{s.onStyle, regexp.MustCompile(`(?i)^style\s+(\S+)$`)},
		{s.onUndo, regexp.MustCompile(`(?i)^(?:undo|redo)$`)},
		{s.onEmpty, regexp.MustCompile(`(?i)^empty$`)},
		{s.onFile, regexp.MustCompile(`(?i)^file\s+(.+)$`)},
		{s.onFiles, regexp.MustCompile(`(?i)^files$`)},
		{s.onShow, regexp.MustCompile(`(?i)^show$`)},
		{s.onExport, regexp.MustCompile(`(?i)^export$`)},
		{s.onQuit, regexp.MustCompile(`(?i)^(?:quit|exit)$`)},
	}
	return s
}

// Run reads commands until in is exhausted or a quit command arrives.
func (s *sitter) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for !s.quit && scanner.Scan() {
		s.parseAndPass(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("could not read commands: %w", err)
	}
	return nil
}

func (s *sitter) parseAndPass(line string) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return
	}
	slog.Debug("Command", "line", line)
	for _, red := range s.regexps {
		match := red.regex.FindStringSubmatch(line)
		if match != nil {
			red.callback(match)
			return
		}
	}
	s.printf("Unknown command %q. Try add, style, undo, empty, file, files, show, export or quit.\n", line)
}

func (s *sitter) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

func (s *sitter) fail(err error) {
	s.printf("Error: %s\n", err)
}

func (s *sitter) show() {
	nodes := s.canvas.Nodes()
	if len(nodes) == 0 {
		s.printf("The canvas is empty.\n")
		return
	}
	s.printf("%s\n", venn.Outline(nodes))
}

func (s *sitter) onAdd(match []string) {
	cue, err := s.canvas.AddSet(match[1])
	if err != nil {
		s.fail(err)
		return
	}
	sets := s.canvas.Sets()
	added := venn.Description(venn.PlainSet{Set: sets[len(sets)-1]})
	s.printf("Added %s (%s)\n", added, cue)
	s.show()
	s.hooks.onAdded(added, cue, venn.Outline(s.canvas.Nodes()))
}

func (s *sitter) onStyle(match []string) {
	if err := s.canvas.SelectStyle(match[1]); err != nil {
		s.fail(err)
		return
	}
	s.printf("The next set will be Set %s.\n", s.canvas.Style().Name)
}

func (s *sitter) onUndo(_ []string) {
	redo, err := s.canvas.Undo()
	if err != nil {
		s.fail(err)
		return
	}
	if redo {
		s.printf("Redone.\n")
	} else {
		s.printf("Undone.\n")
	}
	s.show()
}

func (s *sitter) onEmpty(_ []string) {
	s.canvas.Empty()
	s.printf("The canvas is empty. This can be undone.\n")
	s.hooks.onEmptied(s.canvas.Current().Name)
}

func (s *sitter) onFile(match []string) {
	if err := s.canvas.SelectFile(match[1]); err != nil {
		s.fail(err)
		return
	}
	s.printf("Switched to %s.\n", s.canvas.Current().Name)
	s.show()
}

func (s *sitter) onFiles(_ []string) {
	for _, f := range s.canvas.Files() {
		mark := " "
		if f.Current {
			mark = "*"
		}
		s.printf("%s %s  %d set(s)\n", mark, f.Name, f.Sets)
	}
}

func (s *sitter) onShow(_ []string) {
	s.show()
}

func (s *sitter) onExport(_ []string) {
	out, err := s.canvas.Export()
	if err != nil {
		s.fail(err)
		return
	}
	s.out.Write(out)
}

func (s *sitter) onQuit(_ []string) {
	s.quit = true
	s.printf("Bye.\n")
	s.hooks.onQuit()
}
