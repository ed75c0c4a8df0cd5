package jpnphoneme

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func writeTempDictionary(t *testing.T, dict map[string]string) string {
	t.Helper()
	raw, err := json.Marshal(dict)
	if err != nil {
		t.Fatalf("marshal dictionary: %s", err)
	}
	path := filepath.Join(t.TempDir(), "dictionary.json")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("write dictionary: %s", err)
	}
	return path
}

func TestBuilderLoadDictionary(t *testing.T) {
	path := writeTempDictionary(t, map[string]string{
		"猫": "neko",
		"犬": "inɯ",
	})

	var b Builder
	if err := b.LoadDictionary(path); err != nil {
		t.Fatalf("LoadDictionary: %s", err)
	}
	if len(b.entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(b.entries))
	}
}

func TestBuilderLoadWordListSkipsBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("猫\n\n犬\n"), 0o644); err != nil {
		t.Fatalf("write word list: %s", err)
	}

	var b Builder
	if err := b.LoadWordList(path); err != nil {
		t.Fatalf("LoadWordList: %s", err)
	}
	if got, want := b.words.Len(), 2; got != want {
		t.Fatalf("got %d words, want %d", got, want)
	}
}

func TestBuilderExpandVerbsDictionaryWins(t *testing.T) {
	path := writeTempDictionary(t, map[string]string{
		"書く":  "kakɯ",
		"書いた": "OVERRIDE", // a dictionary entry that collides with a generated form
	})

	var b Builder
	if err := b.LoadDictionary(path); err != nil {
		t.Fatalf("LoadDictionary: %s", err)
	}
	b.ExpandVerbs()

	var got string
	for _, e := range b.entries {
		if e.Text == "書いた" {
			got = e.Phoneme
		}
	}
	if got != "OVERRIDE" {
		t.Errorf("dictionary entry for 書いた = %q, want it to win over the generated kaita", got)
	}
}

func TestBuilderExpandVerbsGeneratesTeTaForms(t *testing.T) {
	path := writeTempDictionary(t, map[string]string{"書く": "kakɯ"})

	var b Builder
	if err := b.LoadDictionary(path); err != nil {
		t.Fatalf("LoadDictionary: %s", err)
	}
	b.ExpandVerbs()

	found := false
	for _, e := range b.entries {
		if e.Text == "書いた" && e.Phoneme == "kaita" {
			found = true
		}
	}
	if !found {
		t.Error("expected ExpandVerbs to generate 書いた/kaita from 書く")
	}
}

func TestBuilderExpandVerbsNormalizesBeforeClassifying(t *testing.T) {
	// The source entry spells the つ-column with the two-character "ts"
	// form spec.md §9c permits, not the ligature "ʦ". LoadDictionary must
	// fold it to the ligature before ExpandVerbs classifies it, or stem
	// stripping against "ʦɯ" misses and the generated past comes out
	// wrong ("matsɯtːa" instead of "matːa").
	path := writeTempDictionary(t, map[string]string{"待つ": "matsɯ"})

	var b Builder
	if err := b.LoadDictionary(path); err != nil {
		t.Fatalf("LoadDictionary: %s", err)
	}
	b.ExpandVerbs()

	var got string
	for _, e := range b.entries {
		if e.Text == "待った" {
			got = e.Phoneme
		}
	}
	if want := "matːa"; got != want {
		t.Errorf("generated 待った = %q, want %q", got, want)
	}
}

func TestBuilderSerializeRoundTrip(t *testing.T) {
	path := writeTempDictionary(t, map[string]string{"猫": "neko"})

	var b Builder
	if err := b.LoadDictionary(path); err != nil {
		t.Fatalf("LoadDictionary: %s", err)
	}
	b.ExpandVerbs()

	artifactPath := filepath.Join(t.TempDir(), "out.jpnt")
	reportPath := filepath.Join(t.TempDir(), "out.warnings.txt")
	if err := b.Serialize(artifactPath, reportPath); err != nil {
		t.Fatalf("Serialize: %s", err)
	}

	data, err := os.ReadFile(artifactPath)
	if err != nil {
		t.Fatalf("read artifact: %s", err)
	}

	lt, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %s", err)
	}
	value, n, ok, err := lt.LookupLongest("猫", 0)
	if err != nil {
		t.Fatalf("LookupLongest: %s", err)
	}
	if !ok || value != "neko" || n != 1 {
		t.Errorf("got (%q, %d, %v), want (neko, 1, true)", value, n, ok)
	}
}
