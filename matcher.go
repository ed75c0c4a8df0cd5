package jpnphoneme

import "strings"

// trieLookup is satisfied by both *Trie (build-time) and *LoadedTrie
// (query-time), so Matcher works identically over either representation,
// per spec.md §9's "the two representations must yield identical
// lookup_longest behavior."
type trieLookup interface {
	LookupLongest(text string, start int) (value string, codepoints int, ok bool, err error)
}

// buildTrieAdapter lets *Trie satisfy trieLookup: LoadedTrie.LookupLongest
// already matches the interface directly (it can fail on a corrupt
// artifact), while Trie's build-time version returns no error since map
// lookups cannot fail, so it needs a thin wrapper.
type buildTrieAdapter struct{ t *Trie }

func (a buildTrieAdapter) LookupLongest(text string, start int) (string, int, bool, error) {
	v, n, ok := a.t.LookupLongest(text, start)
	return v, n, ok, nil
}

// Match records one span the converter replaced, in code-point terms per
// spec.md §9's "code-point vs byte cursors" rule.
type Match struct {
	Original       string
	Phoneme        string
	StartCodePoint int
}

// ConversionResult is the runtime's detailed output (spec.md §6).
type ConversionResult struct {
	Phonemes  string
	Matches   []Match
	Unmatched []rune
}

// Config is the matcher's one runtime switch (spec.md §9): whether to
// segment into words (space-joined phonemes) or feed raw text straight to
// the phoneme pass.
type Config struct {
	SegmentWords bool
}

// Matcher wraps a loaded trie with the word-segmentation and
// phoneme-conversion passes of spec.md §4.4.
type Matcher struct {
	trie trieLookup
	cfg  Config
}

// NewMatcher builds a Matcher over a query-time LoadedTrie.
func NewMatcher(lt *LoadedTrie, cfg Config) *Matcher {
	return &Matcher{trie: lt, cfg: cfg}
}

// NewMatcherFromTrie builds a Matcher directly over a build-time Trie,
// useful for testing the matcher passes without a round trip through the
// binary codec.
func NewMatcherFromTrie(t *Trie, cfg Config) *Matcher {
	return &Matcher{trie: buildTrieAdapter{t}, cfg: cfg}
}

var furiganaBrackets = map[rune]rune{
	'「': '」',
	'【': '】',
	'『': '』',
	'[': ']',
}

// furiganaSegment is one unit parse_furigana_hints-style scanning produces:
// either plain text to run through normal segmentation+conversion, or a
// base span paired with a pronunciation hint that is converted on its own
// and substituted directly.
type furiganaSegment struct {
	text string
	hint string // empty if this segment carries no override
}

// splitFurigana implements spec.md §4.4's furigana override scan: bracket
// pairs 「」【】『』[] mark a pronunciation hint for the text immediately
// preceding the bracket. Unclosed brackets degrade to literal text.
func splitFurigana(text string) []furiganaSegment {
	var segments []furiganaSegment
	runes := []rune(text)
	var plain []rune
	i := 0

	flushPlain := func() {
		if len(plain) > 0 {
			segments = append(segments, furiganaSegment{text: string(plain)})
			plain = nil
		}
	}

	for i < len(runes) {
		r := runes[i]
		closing, isOpen := furiganaBrackets[r]
		if !isOpen {
			plain = append(plain, r)
			i++
			continue
		}

		closeIdx := -1
		for j := i + 1; j < len(runes); j++ {
			if runes[j] == closing {
				closeIdx = j
				break
			}
		}
		if closeIdx < 0 {
			// Unclosed bracket: literal character, keep scanning.
			plain = append(plain, r)
			i++
			continue
		}

		base := string(plain)
		plain = nil
		hint := string(runes[i+1 : closeIdx])
		if base != "" {
			segments = append(segments, furiganaSegment{text: base, hint: hint})
		}
		i = closeIdx + 1
	}
	flushPlain()

	return segments
}

func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

// segmentWords implements spec.md §4.4's word segmentation pass: greedy
// longest-match word boundaries, with unmatched runs accumulated into a
// single grammar-run token, grounded on
// original_source/jpn_to_phoneme.py's WordSegmenter.segment.
func (m *Matcher) segmentWords(text string) ([]string, error) {
	runes := []rune(text)
	var words []string
	pos := 0

	byteOffsets := codePointByteOffsets(text, runes)

	for pos < len(runes) {
		if isWhitespace(runes[pos]) {
			pos++
			continue
		}

		_, matchLen, ok, err := m.trie.LookupLongest(text, byteOffsets[pos])
		if err != nil {
			return nil, err
		}
		if ok && matchLen > 0 {
			words = append(words, string(runes[pos:pos+matchLen]))
			pos += matchLen
			continue
		}

		start := pos
		for pos < len(runes) {
			if isWhitespace(runes[pos]) {
				break
			}
			_, lookaheadLen, lookaheadOK, err := m.trie.LookupLongest(text, byteOffsets[pos])
			if err != nil {
				return nil, err
			}
			if lookaheadOK && lookaheadLen > 0 {
				break
			}
			pos++
		}
		if pos > start {
			words = append(words, string(runes[start:pos]))
		}
	}

	return words, nil
}

func codePointByteOffsets(text string, runes []rune) []int {
	offsets := make([]int, len(runes)+1)
	b := 0
	for i, r := range runes {
		offsets[i] = b
		b += len(string(r))
	}
	offsets[len(runes)] = len(text)
	_ = text
	return offsets
}

// convertPass implements spec.md §4.4's phoneme conversion pass over one
// word (or raw text when segmentation is off): non-empty values replace
// their matched span, empty values are treated as no match, and anything
// left over copies through one code point at a time.
func (m *Matcher) convertPass(word string, codePointBase int) (string, []Match, []rune, error) {
	runes := []rune(word)
	offsets := codePointByteOffsets(word, runes)

	var out strings.Builder
	var matches []Match
	var unmatched []rune

	pos := 0
	for pos < len(runes) {
		value, matchLen, ok, err := m.trie.LookupLongest(word, offsets[pos])
		if err != nil {
			return "", nil, nil, err
		}
		if ok && matchLen > 0 && value != "" {
			out.WriteString(value)
			matches = append(matches, Match{
				Original:       string(runes[pos : pos+matchLen]),
				Phoneme:        value,
				StartCodePoint: codePointBase + pos,
			})
			pos += matchLen
			continue
		}

		out.WriteRune(runes[pos])
		unmatched = append(unmatched, runes[pos])
		pos++
	}

	return out.String(), matches, unmatched, nil
}

// Convert returns the phoneme string for text (spec.md §6's top-level
// entry point).
func (m *Matcher) Convert(text string) (string, error) {
	res, err := m.ConvertDetailed(text)
	if err != nil {
		return "", err
	}
	return res.Phonemes, nil
}

// ConvertDetailed is Convert plus match records and the unmatched
// code-point list (spec.md §6).
func (m *Matcher) ConvertDetailed(text string) (ConversionResult, error) {
	segments := splitFurigana(text)

	var phonemeParts []string
	var allMatches []Match
	var allUnmatched []rune
	codePointBase := 0

	for _, seg := range segments {
		if seg.hint != "" {
			phon, matches, unmatched, err := m.convertPass(seg.hint, codePointBase)
			if err != nil {
				return ConversionResult{}, err
			}
			if phon != "" {
				phonemeParts = append(phonemeParts, phon)
			}
			for _, mt := range matches {
				allMatches = append(allMatches, Match{Original: seg.text, Phoneme: mt.Phoneme, StartCodePoint: mt.StartCodePoint})
			}
			allUnmatched = append(allUnmatched, unmatched...)
			codePointBase += len([]rune(seg.text))
			continue
		}

		if !m.cfg.SegmentWords {
			phon, matches, unmatched, err := m.convertPass(seg.text, codePointBase)
			if err != nil {
				return ConversionResult{}, err
			}
			phonemeParts = append(phonemeParts, phon)
			allMatches = append(allMatches, matches...)
			allUnmatched = append(allUnmatched, unmatched...)
			codePointBase += len([]rune(seg.text))
			continue
		}

		words, err := m.segmentWords(seg.text)
		if err != nil {
			return ConversionResult{}, err
		}
		for _, w := range words {
			phon, matches, unmatched, err := m.convertPass(w, codePointBase)
			if err != nil {
				return ConversionResult{}, err
			}
			phonemeParts = append(phonemeParts, phon)
			allMatches = append(allMatches, matches...)
			allUnmatched = append(allUnmatched, unmatched...)
			codePointBase += len([]rune(w))
		}
	}

	return ConversionResult{
		Phonemes:  strings.Join(phonemeParts, " "),
		Matches:   allMatches,
		Unmatched: allUnmatched,
	}, nil
}
