package jpnphoneme

import "testing"

func TestNormalizeDropsPunctuationAndEmptyKeys(t *testing.T) {
	entries := []Entry{
		{Text: "猫", Phoneme: "neko"},
		{Text: "。", Phoneme: "."},
		{Text: "", Phoneme: "x"},
	}

	out, warnings := Normalize(entries)

	if len(out) != 1 || out[0].Text != "猫" {
		t.Fatalf("got %+v, want only the 猫 entry to survive", out)
	}
	if len(warnings) != 1 || warnings[0].Reason != "empty dictionary key" {
		t.Fatalf("got warnings %+v, want one empty-key warning", warnings)
	}
}

func TestNormalizeAppliesLigaturesLongestMatchFirst(t *testing.T) {
	cases := []struct {
		Name string
		In   string
		Want string
	}{
		{"dz to affricate", "kodzɯ", "koʣɯ"},
		{"ts to affricate", "tsɯki", "ʦɯki"},
		{"dʑ to affricate", "hadʑime", "haʥime"},
		{"already-clean string is unchanged", "neko", "neko"},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			out, warnings := Normalize([]Entry{{Text: "x", Phoneme: tc.In}})
			if len(warnings) != 0 {
				t.Fatalf("unexpected warnings: %+v", warnings)
			}
			if got := out[0].Phoneme; got != tc.Want {
				t.Errorf("got %q, want %q", got, tc.Want)
			}
		})
	}
}

func TestNormalizeReportsButKeepsInvalidVocabulary(t *testing.T) {
	out, warnings := Normalize([]Entry{{Text: "猫", Phoneme: "nXko"}})

	if len(out) != 1 {
		t.Fatalf("invalid-vocabulary entries must still ship, got %d entries", len(out))
	}
	if out[0].Phoneme != "nXko" {
		t.Errorf("Normalize must not mutate an entry beyond ligature folding, got %q", out[0].Phoneme)
	}
	if len(warnings) != 1 {
		t.Fatalf("want exactly one warning, got %d", len(warnings))
	}
}
