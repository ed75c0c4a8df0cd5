package jpnphoneme

// Trie is a build-time prefix tree keyed by Unicode code point. Every node
// optionally carries a value: absent means "not a key", present-but-empty
// means "valid key with no replacement" (a word-boundary marker), and
// present-and-non-empty carries the phoneme replacement for that key.
//
// Nodes are uniquely owned by their parent while building. Once Encode has
// run the tree may be discarded; query-time lookups happen against the
// decoded LoadedTrie instead (see codec.go, loaded.go).
type Trie struct {
	root *trieNode
}

type trieNode struct {
	children map[rune]*trieNode
	value    *string // nil = absent, non-nil (possibly "") = present
}

func newTrieNode() *trieNode {
	return &trieNode{children: make(map[rune]*trieNode)}
}

// NewTrie returns an empty trie ready for Insert calls.
func NewTrie() *Trie {
	return &Trie{root: newTrieNode()}
}

// Insert walks from the root, creating a child for each code point in text
// not yet present, and stores value on the terminal node. If the terminal
// node already carries a value it is replaced (last-writer-wins) — callers
// that need dictionary-wins semantics across repeated inserts must
// deduplicate before calling Insert (see builder.go).
func (t *Trie) Insert(text string, value string) {
	cur := t.root
	for _, r := range text {
		child, ok := cur.children[r]
		if !ok {
			child = newTrieNode()
			cur.children[r] = child
		}
		cur = child
	}
	v := value
	cur.value = &v
}

// LookupLongest walks from root starting at byte offset start in text,
// consuming code points while a child exists, and remembers the deepest
// node visited that carries a value. It returns that value and the number
// of code points consumed to reach it. ok is false if no prefix of text at
// start carries a value.
func (t *Trie) LookupLongest(text string, start int) (value string, codepoints int, ok bool) {
	cur := t.root
	var bestValue string
	bestLen := 0
	found := false

	n := 0
	for _, r := range text[start:] {
		child, exists := cur.children[r]
		if !exists {
			break
		}
		cur = child
		n++
		if cur.value != nil {
			bestValue = *cur.value
			bestLen = n
			found = true
		}
	}

	return bestValue, bestLen, found
}
