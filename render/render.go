package render

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/revelaction/autoredactle/stat"
	"github.com/revelaction/autoredactle/tree"
)

var (
	Green256 = "\033[1;38;5;70m"
	Grey256  = "\033[1;38;5;145m"
	Off      = "\033[0m"
)

// GuessPrefix starts the line announcing the solver's answer.
const GuessPrefix = ">>> "

type Renderer struct {
	Out io.Writer

	HasColor bool

	// HasPrefix adds a numbered prefix to candidate lines.
	HasPrefix bool
}

func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{Out: out}
}

// Guess prints the final answer.
func (r *Renderer) Guess(title string) {
	fmt.Fprintf(r.Out, "%s%s\n", GuessPrefix, r.color(Green256, title))
}

// Candidates prints one title per line, in index order.
func (r *Renderer) Candidates(titles []string) {
	for i, title := range titles {
		var prefix string
		if r.HasPrefix {
			prefix = fmt.Sprintf("%5d 📖 ", i+1)
		}
		fmt.Fprintf(r.Out, "%s%s\n", prefix, title)
	}
}

// Stats prints index statistics, the title word distribution sorted by number
// of words.
func (r *Renderer) Stats(s stat.Stats) {
	fmt.Fprintf(r.Out, "Num articles %d, dictionary size %d\n", s.NumArticles, s.DictionarySize)
	fmt.Fprintf(r.Out, "Dictionary words per article %.2f, articles without words %d\n", s.WordsPerArticleMean, s.EmptyArticles)

	for _, n := range slices.Sorted(maps.Keys(s.TitleWordsDis)) {
		fmt.Fprintf(r.Out, "%s %d\n", r.color(Grey256, fmt.Sprintf("[%2d words]", n)), s.TitleWordsDis[n])
	}
}

// Tree prints t with WriteTree.
func (r *Renderer) Tree(t *tree.Tree) error {
	return WriteTree(r.Out, t)
}

func (r *Renderer) color(code, s string) string {
	if !r.HasColor {
		return s
	}
	return code + s + Off
}

// WriteTree writes a text export of t, one node per line, absent branch
// first:
//
//	|--- cat absent
//	|   |--- class: Rex
//	|--- cat present
//	|   |--- class: Felix
func WriteTree(w io.Writer, t *tree.Tree) error {
	var b strings.Builder
	writeNode(&b, t, t.Root, 0)
	_, err := io.WriteString(w, b.String())
	return err
}

func writeNode(b *strings.Builder, t *tree.Tree, n *tree.Node, depth int) {
	indent := strings.Repeat("|   ", depth)

	if n.IsLeaf() {
		fmt.Fprintf(b, "%s|--- class: %s\n", indent, t.Label(n))
		return
	}

	word := t.Word(n)
	fmt.Fprintf(b, "%s|--- %s absent\n", indent, word)
	writeNode(b, t, n.Absent, depth+1)
	fmt.Fprintf(b, "%s|--- %s present\n", indent, word)
	writeNode(b, t, n.Present, depth+1)
}
