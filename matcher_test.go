package jpnphoneme

import (
	"reflect"
	"testing"
)

func TestConvertDetailedFuriganaOverrideAndSegmentation(t *testing.T) {
	tr := NewTrie()
	tr.Insert("けんた", "keɴta")
	tr.Insert("は", "wa")
	tr.Insert("バカ", "baka")

	m := NewMatcherFromTrie(tr, Config{SegmentWords: true})

	res, err := m.ConvertDetailed("健太「けんた」はバカ")
	if err != nil {
		t.Fatalf("ConvertDetailed: %s", err)
	}

	if got, want := res.Phonemes, "keɴta wa baka"; got != want {
		t.Errorf("Phonemes = %q, want %q", got, want)
	}
	if len(res.Matches) != 3 {
		t.Fatalf("got %d matches, want 3: %+v", len(res.Matches), res.Matches)
	}
	if res.Matches[0].Original != "健太" || res.Matches[0].Phoneme != "keɴta" {
		t.Errorf("furigana match = %+v, want Original=健太 Phoneme=keɴta", res.Matches[0])
	}
}

func TestConvertDirectPassMixesUnmatchedAndMatchedRuns(t *testing.T) {
	tr := NewTrie()
	tr.Insert("世界", "sekai")

	m := NewMatcherFromTrie(tr, Config{SegmentWords: false})

	got, err := m.Convert("Hello、世界")
	if err != nil {
		t.Fatalf("Convert: %s", err)
	}
	if want := "Hello、sekai"; got != want {
		t.Errorf("Convert() = %q, want %q", got, want)
	}
}

func TestSplitFurigana(t *testing.T) {
	cases := []struct {
		Name string
		Text string
		Want []furiganaSegment
	}{
		{
			Name: "no brackets",
			Text: "猫",
			Want: []furiganaSegment{{text: "猫"}},
		},
		{
			Name: "single override",
			Text: "猫「ねこ」",
			Want: []furiganaSegment{{text: "猫", hint: "ねこ"}},
		},
		{
			Name: "unclosed bracket degrades to literal",
			Text: "猫「ねこ",
			Want: []furiganaSegment{{text: "猫「ねこ"}},
		},
		{
			Name: "square bracket variant",
			Text: "犬[いぬ]です",
			Want: []furiganaSegment{{text: "犬", hint: "いぬ"}, {text: "です"}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			got := splitFurigana(tc.Text)
			if !reflect.DeepEqual(got, tc.Want) {
				t.Errorf("splitFurigana(%q) = %+v, want %+v", tc.Text, got, tc.Want)
			}
		})
	}
}

func TestConvertDetailedReportsUnmatchedCodePoints(t *testing.T) {
	tr := NewTrie()
	tr.Insert("猫", "neko")

	m := NewMatcherFromTrie(tr, Config{SegmentWords: false})

	res, err := m.ConvertDetailed("猫?")
	if err != nil {
		t.Fatalf("ConvertDetailed: %s", err)
	}
	if len(res.Unmatched) != 1 || res.Unmatched[0] != '?' {
		t.Errorf("Unmatched = %v, want [?]", res.Unmatched)
	}
}

func TestSegmentWordsSkipsWhitespace(t *testing.T) {
	tr := NewTrie()
	tr.Insert("猫", "neko")
	tr.Insert("犬", "inɯ")

	m := NewMatcherFromTrie(tr, Config{SegmentWords: true})
	words, err := m.segmentWords("猫 犬")
	if err != nil {
		t.Fatalf("segmentWords: %s", err)
	}
	if want := []string{"猫", "犬"}; !reflect.DeepEqual(words, want) {
		t.Errorf("segmentWords() = %v, want %v", words, want)
	}
}
