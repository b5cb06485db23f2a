// Package prompt picks a content entry interactively: a fuzzy finder on
// terminals, a numbered list everywhere else.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/nahidreza/folio/internal/errors"
	"github.com/nahidreza/folio/internal/logging"
)

// Sentinel errors for entry selection.
var (
	ErrNoItems            = errors.New("nothing to select from")
	ErrInvalidSelection   = errors.New("invalid selection")
	ErrSelectionCancelled = errors.New("selection cancelled")
)

// Item is one selectable entry.
type Item struct {
	Slug  string
	Title string
	// Preview is shown beside the fuzzy finder list.
	Preview string
}

func (i Item) label() string {
	if i.Title == "" || i.Title == i.Slug {
		return i.Slug
	}
	return i.Title + " (" + i.Slug + ")"
}

// Picker chooses one item and returns its index.
type Picker interface {
	Pick(items []Item) (int, error)
}

// NewPicker returns a FuzzyPicker when both in and out are terminals and a
// Selector over them otherwise.
func NewPicker(in io.Reader, out io.Writer) Picker {
	if logging.IsTTY(in) && logging.IsTTY(out) {
		return FuzzyPicker{}
	}
	return NewSelectorWithIO(in, out)
}

// FuzzyPicker is an interactive full-screen fuzzy finder.
type FuzzyPicker struct{}

// Pick implements Picker.
func (FuzzyPicker) Pick(items []Item) (int, error) {
	if len(items) == 0 {
		return -1, ErrNoItems
	}

	idx, err := fuzzyfinder.Find(
		items,
		func(i int) string { return items[i].label() },
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i == -1 {
				return ""
			}
			return items[i].Preview
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return -1, ErrSelectionCancelled
		}
		return -1, errors.Wrap(err, "fuzzy selection")
	}
	return idx, nil
}

// Selector handles numbered selection prompts.
type Selector struct {
	reader io.Reader
	writer io.Writer
}

// NewSelector creates a new Selector using stdin and stdout.
func NewSelector() *Selector {
	return NewSelectorWithIO(os.Stdin, os.Stdout)
}

// NewSelectorWithIO creates a Selector with custom reader and writer for testing.
func NewSelectorWithIO(r io.Reader, w io.Writer) *Selector {
	return &Selector{
		reader: r,
		writer: w,
	}
}

// Pick prompts the user to choose from items.
//
// Returns:
//   - ErrNoItems if the list is empty
//   - 0 without prompting if only one item exists
//   - the chosen index; an empty answer picks the first item
//   - ErrInvalidSelection if the answer is not a number in range
//   - ErrSelectionCancelled if input is EOF (e.g., Ctrl+D)
func (s *Selector) Pick(items []Item) (int, error) {
	if len(items) == 0 {
		return -1, ErrNoItems
	}
	if len(items) == 1 {
		return 0, nil
	}

	for i, item := range items {
		fmt.Fprintf(s.writer, "  [%d] %s\n", i+1, item.label())
	}
	fmt.Fprintf(s.writer, "Select [1]: ")

	input, err := bufio.NewReader(s.reader).ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || input == "") {
		if errors.Is(err, io.EOF) {
			return -1, ErrSelectionCancelled
		}
		return -1, errors.Wrap(err, "reading selection")
	}

	input = strings.TrimSpace(input)
	if input == "" {
		return 0, nil
	}

	selection, err := strconv.Atoi(input)
	if err != nil {
		return -1, errors.Wrapf(ErrInvalidSelection, "%q is not a number", input)
	}
	if selection < 1 || selection > len(items) {
		return -1, errors.Wrapf(ErrInvalidSelection, "%d is out of range [1-%d]", selection, len(items))
	}

	return selection - 1, nil
}
