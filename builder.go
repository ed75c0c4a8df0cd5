package jpnphoneme

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"
)

const (
	ConjugatePhase_Classify = 1
	ConjugatePhase_Expand   = 2

	ConjugateEvent_BeginPhase    = 0
	ConjugateEvent_EndPhase      = 1
	ConjugateEvent_ProgressPhase = 2
)

// ConjugateUpdate reports progress during verb-paradigm expansion.
type ConjugateUpdate struct {
	Event int
	Phase int
	N     int
}

const (
	SerializePhase_Normalize = 1
	SerializePhase_Trie      = 2
	SerializePhase_Artifact  = 3

	SerializeEvent_BeginPhase    = 0
	SerializeEvent_EndPhase      = 1
	SerializeEvent_ProgressPhase = 2
)

// SerializeUpdate reports progress while assembling and writing the
// binary artifact.
type SerializeUpdate struct {
	Event int
	Phase int
	N     int
}

// Builder drives the offline pipeline of spec.md §2: load a raw dictionary
// and word list, expand verb paradigms, assemble one trie, and write the
// binary artifact plus a warnings side file.
type Builder struct {
	Verbose             bool
	NThreads            int
	ConjugateProgressCh chan<- ConjugateUpdate
	SerializeProgressCh chan<- SerializeUpdate

	entries  []Entry
	warnings []Warning
	words    *WordSet

	initOnce sync.Once
}

func (b *Builder) init() {
	b.initOnce.Do(func() {
		b.words = NewWordSet()
		if b.NThreads <= 0 {
			b.NThreads = 1
		}
	})
}

func (b *Builder) verbose(format string, a ...any) {
	if b.Verbose {
		fmt.Printf(format, a...)
	}
}

// LoadDictionary reads a JSON object mapping text -> phoneme (the builder's
// textual input dictionary, spec.md §6) from path.
func (b *Builder) LoadDictionary(path string) error {
	b.init()

	raw, err := os.ReadFile(path)
	if err != nil {
		return newErr(KindIO, "read dictionary %s: %w", path, err)
	}

	var dict map[string]string
	if err := json.Unmarshal(raw, &dict); err != nil {
		return newErr(KindFormat, "parse dictionary %s: %w", path, err)
	}

	entries := make([]Entry, 0, len(dict))
	for text, phoneme := range dict {
		entries = append(entries, Entry{Text: text, Phoneme: phoneme})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Text < entries[j].Text })

	// Normalize here, before ExpandVerbs ever sees an entry: Classify and
	// the paradigm tables assume the ligature alphabet (e.g. "ʦɯ" for the
	// つ column), so a source entry still spelled with the two-character
	// "ts" form (spec.md §9c) must be folded before it reaches the
	// conjugation engine, not just before serialization.
	normalized, warnings := Normalize(entries)

	b.entries = normalized
	b.warnings = warnings
	b.verbose("Loaded dictionary: %d entries\n", len(b.entries))
	return nil
}

// LoadWordList reads a one-word-per-line UTF-8 text file (spec.md §6's
// textual word list), blank lines ignored.
func (b *Builder) LoadWordList(path string) error {
	b.init()

	f, err := os.Open(path)
	if err != nil {
		return newErr(KindIO, "open word list %s: %w", path, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	n := 0
	for sc.Scan() {
		word := sc.Text()
		if word == "" {
			continue
		}
		b.words.Insert(word)
		n++
	}
	if err := sc.Err(); err != nil {
		return newErr(KindIO, "read word list %s: %w", path, err)
	}

	b.verbose("Loaded word list: %d entries\n", n)
	return nil
}

// ExpandVerbs classifies every loaded dictionary entry and merges its
// conjugation paradigm into the dictionary, with the dictionary winning any
// collision (spec.md §4.3's "Idempotence and conflicts" / §9 open question
// (a)). Classification and per-entry paradigm generation are sharded over
// NThreads goroutines; the merge itself happens single-threaded under the
// caller, which is the only point where dictionary-wins must be enforced.
func (b *Builder) ExpandVerbs() {
	b.init()

	type job struct {
		idx   int
		entry Entry
	}
	type result struct {
		idx   int
		forms map[string]string
	}

	jobs := make(chan job, b.NThreads)
	results := make(chan result, b.NThreads)

	var wg sync.WaitGroup
	wg.Add(b.NThreads)
	for range b.NThreads {
		go func() {
			defer wg.Done()
			for j := range jobs {
				rec, ok := Classify(j.entry.Text, j.entry.Phoneme)
				if !ok {
					results <- result{idx: j.idx, forms: nil}
					continue
				}
				results <- result{idx: j.idx, forms: Conjugate(rec)}
			}
		}()
	}

	go func() {
		for i, e := range b.entries {
			jobs <- job{idx: i, entry: e}
		}
		close(jobs)
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	existing := NewSet[string]()
	for _, e := range b.entries {
		existing.Insert(e.Text)
	}

	var generated []Entry
	n := 0
	for res := range results {
		n++
		b.conjugateUpdate(ConjugateUpdate{Event: ConjugateEvent_ProgressPhase, Phase: ConjugatePhase_Expand, N: 1})
		for text, phoneme := range res.forms {
			if existing.Has(text) {
				continue // dictionary wins
			}
			existing.Insert(text)
			generated = append(generated, Entry{Text: text, Phoneme: phoneme})
		}
	}

	sort.Slice(generated, func(i, j int) bool { return generated[i].Text < generated[j].Text })
	b.entries = append(b.entries, generated...)
	b.verbose("Expanded verbs: %d generated forms\n", len(generated))
}

// Build merges the normalized dictionary (already normalized by
// LoadDictionary, before ExpandVerbs ever ran) with the word list and
// assembles the single unified trie spec.md §2 describes. It returns the
// built trie plus any dictionary-authoring warnings collected at load time
// (spec.md §7).
func (b *Builder) Build() (*Trie, []Warning, error) {
	b.init()

	dedup := NewWordSet()
	for _, e := range b.entries {
		dedup.Insert(e.Text)
	}
	for _, w := range b.words.Flatten() {
		dedup.Insert(w)
	}

	phonemeOf := make(map[string]string, len(b.entries))
	for _, e := range b.entries {
		phonemeOf[e.Text] = e.Phoneme
	}

	t := NewTrie()
	for _, text := range dedup.Flatten() {
		phoneme, ok := phonemeOf[text]
		if !ok {
			phoneme = "" // word-list-only entry: boundary marker, no replacement
		}
		t.Insert(text, phoneme)
	}

	return t, b.warnings, nil
}

// Serialize runs Build, writes the binary artifact to artifactPath, and the
// warnings report to reportPath (skipped if reportPath is empty).
func (b *Builder) Serialize(artifactPath, reportPath string) error {
	t, warnings, err := b.Build()
	if err != nil {
		return err
	}
	b.serializeUpdate(SerializeUpdate{Event: SerializeEvent_EndPhase, Phase: SerializePhase_Normalize, N: len(warnings)})

	data, err := Encode(t)
	if err != nil {
		return err
	}
	b.serializeUpdate(SerializeUpdate{Event: SerializeEvent_EndPhase, Phase: SerializePhase_Trie, N: len(data)})

	if err := os.WriteFile(artifactPath, data, 0o644); err != nil {
		return newErr(KindIO, "write artifact %s: %w", artifactPath, err)
	}
	b.serializeUpdate(SerializeUpdate{Event: SerializeEvent_EndPhase, Phase: SerializePhase_Artifact, N: len(data)})

	if reportPath != "" && len(warnings) > 0 {
		if err := WriteReport(warnings, reportPath); err != nil {
			return err
		}
	}

	if b.SerializeProgressCh != nil {
		close(b.SerializeProgressCh)
	}

	return nil
}

func (b *Builder) conjugateUpdate(u ConjugateUpdate) {
	if b.ConjugateProgressCh != nil {
		b.ConjugateProgressCh <- u
	}
}

func (b *Builder) serializeUpdate(u SerializeUpdate) {
	if b.SerializeProgressCh != nil {
		b.SerializeProgressCh <- u
	}
}
