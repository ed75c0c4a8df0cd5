package jpnphoneme

import (
	"sort"
	"strings"
)

// Entry is one raw dictionary record before normalization: text is never
// empty, phoneme is either empty (a word-only marker) or an IPA string.
type Entry struct {
	Text    string
	Phoneme string
}

// Warning describes a config-kind dictionary authoring problem Normalize
// found, not something the matcher needs to reject at query time:
// validation happens once at build time. An entry with a non-vocabulary
// phoneme character still ships in the artifact; an entry with an empty
// key is dropped.
type Warning struct {
	Text    string
	Phoneme string
	Reason  string
}

// ipaVocabulary is the fixed set of code points a phoneme value may contain:
// the six affricate ligatures, the five vowels, the moraic nasal, glottal
// stop, palatal approximant, three fricatives, the tap, the approximant, and
// the gemination marker.
var ipaVocabulary = func() *Set[rune] {
	s := NewSet[rune]()
	for _, r := range "ʥʨʦʣʧʤaiɯeoɴʔjɕçɸɾɰː" {
		s.Insert(r)
	}
	return s
}()

// ligatureSubs is the multi-character-to-ligature substitution table from
// spec.md §5, applied longest-match-first so no entry's replacement text
// can be partially re-matched by a shorter rule ("ts" must not fire inside
// an already-substituted sequence).
var ligatureSubs = []struct {
	from string
	to   string
}{
	{"dʑ", "ʥ"},
	{"tɕ", "ʨ"},
	{"dz", "ʣ"},
	{"tʃ", "ʧ"},
	{"dʒ", "ʤ"},
	{"ts", "ʦ"},
}

// punctuationToRemove is the fixed set of dictionary keys spec.md §5 says
// must never be present in a shipped dictionary — punctuation is meant to
// pass through the matcher unchanged via its single-code-point copy-through
// path, not be looked up.
var punctuationToRemove = func() *Set[string] {
	s := NewSet[string]()
	for _, p := range []string{
		"。", "、", "！", "？", "：", "；",
		"「", "」", "『", "』", "（", "）",
		"・", "　", "〜", "ゝ", "ゞ",
		".", ",", "!", "?", ":", ";", "-", "—", "…",
	} {
		s.Insert(p)
	}
	return s
}()

func applyLigatures(phoneme string) string {
	// ligatureSubs is already ordered longest-match-first, and no "to"
	// value is itself a "from" prefix of a later rule, so chaining
	// strings.ReplaceAll calls is safe.
	out := phoneme
	for _, sub := range ligatureSubs {
		out = strings.ReplaceAll(out, sub.from, sub.to)
	}
	return out
}

// Normalize runs the four-step pipeline spec.md §5 requires before any
// dictionary entry reaches the trie builder: drop entries whose text is
// punctuation, fold multi-character IPA sequences into ligatures, and
// validate the resulting phoneme against the fixed vocabulary. Entries that
// fail validation are returned alongside a Warning but are NOT dropped —
// spec.md §7 is explicit that the core ships them in the artifact anyway
// and only reports them to a side file.
func Normalize(entries []Entry) ([]Entry, []Warning) {
	out := make([]Entry, 0, len(entries))
	var warnings []Warning

	for _, e := range entries {
		if e.Text == "" {
			warnings = append(warnings, Warning{Text: e.Text, Phoneme: e.Phoneme, Reason: "empty dictionary key"})
			continue
		}
		if punctuationToRemove.Has(e.Text) {
			continue
		}

		phoneme := applyLigatures(e.Phoneme)
		if invalid := firstInvalidRune(phoneme); invalid != 0 {
			warnings = append(warnings, Warning{
				Text:    e.Text,
				Phoneme: phoneme,
				Reason:  "non-vocabulary character " + string(invalid) + " in phoneme value",
			})
		}

		out = append(out, Entry{Text: e.Text, Phoneme: phoneme})
	}

	sort.Slice(warnings, func(i, j int) bool { return warnings[i].Text < warnings[j].Text })
	return out, warnings
}

func firstInvalidRune(phoneme string) rune {
	for _, r := range phoneme {
		if !ipaVocabulary.Has(r) {
			return r
		}
	}
	return 0
}
