// Package search runs a pattern over every line of an input and collects the
// lines that match.
package search

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/coregx/ahocorasick"

	"github.com/mfroeh/btgrep/regex"
)

// ErrEmptyPatternFile is returned by ReadPattern for a file without any content.
var ErrEmptyPatternFile = errors.New("pattern file is empty")

// Line is a line of the input that matched.
type Line struct {
	// 1-based
	Number int
	Text   string
	Match  regex.Location
}

// Result holds the matched lines of one search in input order.
type Result struct {
	Lines []Line
}

// Count is the number of matched lines.
func (r Result) Count() int {
	return len(r.Lines)
}

// ReadPattern returns the first line of the file at path without its line
// terminator.
func ReadPattern(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read pattern file: %w", err)
	}
	if len(content) == 0 {
		return "", fmt.Errorf("%s: %w", path, ErrEmptyPatternFile)
	}

	pattern, _, _ := strings.Cut(string(content), "\n")
	return strings.TrimSuffix(pattern, "\r"), nil
}

// Searcher matches a single pattern against lines.
// Patterns without meta characters are looked up with an Aho-Corasick
// automaton instead of the backtracking engine.
type Searcher struct {
	pattern string
	literal *ahocorasick.Automaton
}

// NewSearcher returns a Searcher for pattern.
func NewSearcher(pattern string) *Searcher {
	s := &Searcher{pattern: pattern}
	if !regex.IsLiteral(pattern) {
		return s
	}

	builder := ahocorasick.NewBuilder()
	builder.AddPattern([]byte(pattern))
	auto, err := builder.Build()
	if err != nil {
		// the backtracking engine handles literals just as well
		return s
	}
	s.literal = auto
	return s
}

// Pattern returns the pattern the Searcher was created with.
func (s *Searcher) Pattern() string {
	return s.pattern
}

// Find returns the location of the leftmost match in line.
func (s *Searcher) Find(line string) (regex.Location, bool) {
	if s.literal == nil {
		return regex.Find(s.pattern, line)
	}

	m := s.literal.Find([]byte(line), 0)
	if m == nil {
		return regex.Location{}, false
	}
	return regex.Location{Start: m.Start, End: m.End}, true
}

// Search collects all lines of r that match, in the order they were read.
func (s *Searcher) Search(r io.Reader) (Result, error) {
	var res Result

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for n := 1; scanner.Scan(); n++ {
		line := scanner.Text()
		loc, match := s.Find(line)
		if !match {
			continue
		}
		res.Lines = append(res.Lines, Line{Number: n, Text: line, Match: loc})
	}

	if err := scanner.Err(); err != nil {
		return res, fmt.Errorf("failed to read input: %w", err)
	}
	return res, nil
}

// SearchFile is Search over the file at path.
func SearchFile(s *Searcher, path string) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	res, err := s.Search(f)
	if err != nil {
		return res, fmt.Errorf("%s: %w", path, err)
	}
	return res, nil
}
