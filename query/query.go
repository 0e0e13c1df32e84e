package query

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/c-bata/go-prompt"
	"github.com/mattn/go-isatty"

	"github.com/revelaction/autoredactle/navigate"
)

const (
	// Header is printed before the first question.
	Header = "Please type the number of matches of the following words:"

	// promptSuffix follows the word in every question
	promptSuffix = ": "
)

// ParseCount converts an operator answer for word into a count.
func ParseCount(word, raw string) (int, error) {
	s := strings.TrimSpace(raw)
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, navigate.NewInvalidAnswerError(word, s)
	}
	return n, nil
}

// LineAsker asks questions on a line oriented stream. It is used when stdin is
// not a terminal and by tests.
type LineAsker struct {
	scanner *bufio.Scanner
	out     io.Writer
	started bool
}

var _ navigate.Asker = (*LineAsker)(nil)

func NewLineAsker(in io.Reader, out io.Writer) *LineAsker {
	return &LineAsker{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

func (a *LineAsker) Ask(word string) (int, error) {
	if !a.started {
		fmt.Fprintln(a.out, Header)
		a.started = true
	}

	fmt.Fprint(a.out, word+promptSuffix)

	if !a.scanner.Scan() {
		if err := a.scanner.Err(); err != nil {
			return 0, fmt.Errorf("reading answer for '%s': %w", word, err)
		}
		return 0, fmt.Errorf("reading answer for '%s': %w", word, io.ErrUnexpectedEOF)
	}

	return ParseCount(word, a.scanner.Text())
}

// PromptAsker asks questions with an interactive go-prompt line, suggesting
// common counts.
type PromptAsker struct {
	out     io.Writer
	started bool
	history []string
}

var _ navigate.Asker = (*PromptAsker)(nil)

func NewPromptAsker(out io.Writer) *PromptAsker {
	return &PromptAsker{out: out}
}

func (a *PromptAsker) Ask(word string) (int, error) {
	if !a.started {
		fmt.Fprintln(a.out, "🔑 "+Header)
		a.started = true
	}

	in := prompt.Input(word+promptSuffix, completer,
		prompt.OptionTitle("autoredactle"),
		prompt.OptionPrefixTextColor(prompt.Yellow),
		prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
		prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
		prompt.OptionSuggestionBGColor(prompt.DarkGray),
		prompt.OptionMaxSuggestion(6),
		prompt.OptionHistory(a.history),
	)

	a.history = append(a.history, in)
	return ParseCount(word, in)
}

var suggestions = []prompt.Suggest{
	{Text: "0", Description: "the word does not appear"},
	{Text: "1", Description: "once"},
	{Text: "2", Description: "twice"},
	{Text: "5"},
	{Text: "10"},
}

func completer(in prompt.Document) []prompt.Suggest {
	befCursor := in.TextBeforeCursor()

	// Only suggest on an empty line
	if befCursor != "" {
		return []prompt.Suggest{}
	}

	return suggestions
}

// NewAsker returns a PromptAsker when in is an interactive terminal and plain
// is false, a LineAsker otherwise.
func NewAsker(in *os.File, out io.Writer, plain bool) navigate.Asker {
	if !plain && isTerminal(in) {
		return NewPromptAsker(out)
	}
	return NewLineAsker(in, out)
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
