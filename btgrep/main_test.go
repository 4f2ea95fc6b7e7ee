package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"

	"github.com/mfroeh/btgrep/internal/search"
	"github.com/mfroeh/btgrep/regex"
)

// keepNoColor restores the global color setting that run changes.
func keepNoColor(t *testing.T) {
	t.Helper()
	noColor := color.NoColor
	t.Cleanup(func() { color.NoColor = noColor })
}

func TestRun(t *testing.T) {
	keepNoColor(t)

	tests := map[string]struct {
		givenPattern string
		givenInput   string
		givenOpts    options
		wantOut      string
	}{
		"prints matched lines and count": {
			givenPattern: "colou?r\n",
			givenInput:   "color\ncolr\nthe colour red\n",
			wantOut:      "color\nthe colour red\n\nThe number of lines matched is 2.\n",
		},
		"no matches": {
			givenPattern: `\d+`,
			givenInput:   "abc\ndef\n",
			wantOut:      "\nThe number of lines matched is 0.\n",
		},
		"line numbers": {
			givenPattern: "[ab]+c",
			givenInput:   "x\nabc\ny\nbbc\n",
			givenOpts:    options{LineNumber: true},
			wantOut:      "2:abc\n4:bbc\n\nThe number of lines matched is 2.\n",
		},
		"count only": {
			givenPattern: "needle",
			givenInput:   "needle\nhay\nneedles\n",
			givenOpts:    options{Count: true},
			wantOut:      "The number of lines matched is 2.\n",
		},
		"malformed pattern": {
			givenPattern: "[abc",
			givenInput:   "abc\n",
			wantOut:      "\nThe number of lines matched is 0.\n",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			// given
			dir := t.TempDir()
			opts := tt.givenOpts
			opts.Color = "never"
			opts.PatternFile = filepath.Join(dir, "pattern")
			opts.InputFile = filepath.Join(dir, "input")
			if err := os.WriteFile(opts.PatternFile, []byte(tt.givenPattern), 0o644); err != nil {
				t.Fatal(err)
			}
			if err := os.WriteFile(opts.InputFile, []byte(tt.givenInput), 0o644); err != nil {
				t.Fatal(err)
			}

			// when
			out := bytes.Buffer{}
			err := run(opts, &out)

			// then
			if err != nil {
				t.Fatalf("run: %v", err)
			}
			if d := cmp.Diff(tt.wantOut, out.String()); d != "" {
				t.Errorf("got diff (-want +got):\n%s", d)
			}
		})
	}
}

func TestRunMissingFiles(t *testing.T) {
	keepNoColor(t)
	dir := t.TempDir()
	pattern := filepath.Join(dir, "pattern")
	if err := os.WriteFile(pattern, []byte("a"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := map[string]options{
		"missing pattern file": {PatternFile: filepath.Join(dir, "nope"), InputFile: pattern, Color: "never"},
		"missing input file":   {PatternFile: pattern, InputFile: filepath.Join(dir, "nope"), Color: "never"},
	}

	for name, opts := range tests {
		t.Run(name, func(t *testing.T) {
			err := run(opts, &bytes.Buffer{})
			if !errors.Is(err, os.ErrNotExist) {
				t.Errorf("got %v, want an error wrapping os.ErrNotExist", err)
			}
		})
	}
}

func TestFormatLine(t *testing.T) {
	// output that is not a terminal turns the global setting off,
	// the highlight must still be closed
	keepNoColor(t)
	color.NoColor = true
	matchColor.EnableColor()
	t.Cleanup(matchColor.DisableColor)

	tests := map[string]struct {
		givenLine       search.Line
		givenLineNumber bool
		wantOut         string
	}{
		"highlights the match": {
			givenLine: search.Line{Number: 3, Text: "say 123 ok", Match: regex.Location{Start: 4, End: 7}},
			wantOut:   "say " + matchColor.Sprint("123") + " ok",
		},
		"with line number": {
			givenLine:       search.Line{Number: 3, Text: "123", Match: regex.Location{Start: 0, End: 3}},
			givenLineNumber: true,
			wantOut:         "3:" + matchColor.Sprint("123"),
		},
		"empty match is not highlighted": {
			givenLine: search.Line{Number: 1, Text: "abc", Match: regex.Location{Start: 0, End: 0}},
			wantOut:   "abc",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			// when
			got := formatLine(tt.givenLine, tt.givenLineNumber)

			// then
			if d := cmp.Diff(tt.wantOut, got); d != "" {
				t.Errorf("got diff (-want +got):\n%s", d)
			}
			if strings.Count(got, "\x1b[") != 2*strings.Count(tt.wantOut, matchColor.Sprint("123")) {
				t.Errorf("unbalanced escape sequences in %q", got)
			}
		})
	}
}
