package jpnphoneme

import (
	"fmt"
	"os"
)

// WordSet is an insertion-ordered interning set. The builder uses it to
// dedup the union of the textual word list and every surface form the
// conjugation engine generates before making a single trie-insertion pass,
// so duplicate keys never reach Trie.Insert's last-writer-wins semantics.
type WordSet struct {
	words map[string]int
	index int
}

func NewWordSet() *WordSet {
	return &WordSet{words: make(map[string]int)}
}

// Insert adds s if not already present and returns its index.
func (ws *WordSet) Insert(s string) int {
	if idx, ok := ws.words[s]; ok {
		return idx
	}
	idx := ws.index
	ws.words[s] = idx
	ws.index++
	return idx
}

// Index reports s's insertion index, if present.
func (ws *WordSet) Index(s string) (int, bool) {
	idx, ok := ws.words[s]
	return idx, ok
}

func (ws *WordSet) Len() int { return len(ws.words) }

// Flatten returns the set's members in insertion order.
func (ws *WordSet) Flatten() []string {
	out := make([]string, len(ws.words))
	for s, idx := range ws.words {
		out[idx] = s
	}
	return out
}

// WriteReport writes warnings to path: a first line with the warning count,
// then one line per warning as "index: text\tphoneme\treason".
// This is the builder's side-file for spec.md §7's "offending entries are
// listed to a side file" requirement.
func WriteReport(warnings []Warning, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return newErr(KindIO, "create warnings report %s: %w", path, err)
	}
	defer f.Close()

	fmt.Fprintf(f, "%d\n", len(warnings))
	for i, w := range warnings {
		fmt.Fprintf(f, "%d: %s\t%s\t%s\n", i, w.Text, w.Phoneme, w.Reason)
	}
	return nil
}
