package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"

	"github.com/mfroeh/btgrep/internal/search"
	"github.com/mfroeh/btgrep/regex"
)

var matchColor = color.New(color.FgRed, color.Bold)

type options struct {
	PatternFile string `arg:"" name:"pattern-file" help:"File whose first line is the pattern" type:"path"`
	InputFile   string `arg:"" name:"input-file" help:"File to search, line by line" type:"path"`
	Color       string `enum:"auto,always,never" default:"auto" help:"When to highlight matches (${enum})"`
	LineNumber  bool   `short:"n" help:"Prefix matched lines with their line number"`
	Count       bool   `short:"c" help:"Only print the number of matched lines"`
}

var cli options

func main() {
	log.SetFlags(0)
	log.SetPrefix("btgrep: ")

	kong.Parse(&cli,
		kong.Name("btgrep"),
		kong.Description("Prints the lines of input-file that match the pattern in the first line of pattern-file."),
		kong.UsageOnError(),
	)

	if err := run(cli, os.Stdout); err != nil {
		log.Fatalf("%v", err)
	}
}

func run(opts options, out io.Writer) error {
	switch opts.Color {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	}

	pattern, err := search.ReadPattern(opts.PatternFile)
	if err != nil {
		return err
	}

	s := search.NewSearcher(pattern)
	// a malformed pattern still runs, it just doesn't match any line
	if err := regex.Check(s.Pattern()); err != nil {
		log.Printf("pattern %q: %v", s.Pattern(), err)
	}

	res, err := search.SearchFile(s, opts.InputFile)
	if err != nil {
		return err
	}

	if opts.Count {
		_, err = fmt.Fprintf(out, "The number of lines matched is %d.\n", res.Count())
		return err
	}

	for _, line := range res.Lines {
		if _, err := fmt.Fprintln(out, formatLine(line, opts.LineNumber)); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(out, "\nThe number of lines matched is %d.\n", res.Count())
	return err
}

func formatLine(line search.Line, lineNumber bool) string {
	out := strings.Builder{}
	if lineNumber {
		fmt.Fprintf(&out, "%d:", line.Number)
	}

	m := line.Match
	out.WriteString(line.Text[:m.Start])
	if m.End > m.Start {
		out.WriteString(matchColor.Sprint(line.Text[m.Start:m.End]))
	}
	out.WriteString(line.Text[m.End:])
	return out.String()
}
