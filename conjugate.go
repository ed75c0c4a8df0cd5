package jpnphoneme

import "strings"

// VerbClass tags a dictionary entry with the inflection family spec.md
// §4.3 uses to pick a paradigm table.
type VerbClass int

const (
	ClassIchidan VerbClass = iota + 1
	ClassGodanU
	ClassGodanK
	ClassGodanG
	ClassGodanS
	ClassGodanT
	ClassGodanN
	ClassGodanB
	ClassGodanM
	ClassGodanR
	ClassIku
	ClassAru
	ClassSuru
	ClassKuru
	ClassSuruCompound
	ClassKuruCompound
)

// VerbRecord is the classifier's output: enough to drive paradigm
// generation without re-inspecting the original entry.
type VerbRecord struct {
	Class VerbClass

	// Stem forms, valid for ichidan/godan classes (including iku).
	TextStem    string
	PhonemeStem string

	// Prefix forms, valid for the *_compound classes: everything before
	// the irregular tail する/来る/くる.
	TextPrefix    string
	PhonemePrefix string

	// KuruKana is set for ClassKuruCompound when the original text ended
	// in くる rather than 来る, selecting which tail table Conjugate uses.
	KuruKana bool
}

// godanExceptions is the closed list of る-ending verbs that look ichidan
// but conjugate godan (spec.md §4.3 step 7).
var godanExceptions = newStringSetFrom(
	"帰る", "切る", "走る", "入る", "要る", "知る", "蹴る",
	"滑る", "限る", "握る", "練る", "減る", "焦る", "覆る", "遮る", "捻る",
)

func newStringSetFrom(words ...string) *Set[string] {
	s := NewSet[string]()
	for _, w := range words {
		s.Insert(w)
	}
	return s
}

// godanColumn holds the five gojuuon-row kana/phoneme pairs for one godan
// consonant column, used to build every productive form by row selection.
type godanColumn struct {
	kanaA, kanaI, kanaU, kanaE, kanaO string
	phonA, phonI, phonU, phonE, phonO string

	teText, teP string // continuative suffix (て-form)
	taText, taP string // past suffix (た-form)
}

var godanColumns = map[VerbClass]godanColumn{
	ClassGodanU: {
		kanaA: "わ", kanaI: "い", kanaU: "う", kanaE: "え", kanaO: "お",
		phonA: "ɰa", phonI: "i", phonU: "ɯ", phonE: "e", phonO: "o",
		teText: "って", teP: "tːe", taText: "った", taP: "tːa",
	},
	ClassGodanK: {
		kanaA: "か", kanaI: "き", kanaU: "く", kanaE: "け", kanaO: "こ",
		phonA: "ka", phonI: "ki", phonU: "kɯ", phonE: "ke", phonO: "ko",
		teText: "いて", teP: "ite", taText: "いた", taP: "ita",
	},
	ClassGodanG: {
		kanaA: "が", kanaI: "ぎ", kanaU: "ぐ", kanaE: "げ", kanaO: "ご",
		phonA: "ga", phonI: "gi", phonU: "gɯ", phonE: "ge", phonO: "go",
		teText: "いで", teP: "ide", taText: "いだ", taP: "ida",
	},
	ClassGodanS: {
		kanaA: "さ", kanaI: "し", kanaU: "す", kanaE: "せ", kanaO: "そ",
		phonA: "sa", phonI: "ɕi", phonU: "sɯ", phonE: "se", phonO: "so",
		teText: "して", teP: "ɕite", taText: "した", taP: "ɕita",
	},
	ClassGodanT: {
		kanaA: "た", kanaI: "ち", kanaU: "つ", kanaE: "て", kanaO: "と",
		phonA: "ta", phonI: "ʨi", phonU: "ʦɯ", phonE: "te", phonO: "to",
		teText: "って", teP: "tːe", taText: "った", taP: "tːa",
	},
	ClassGodanN: {
		kanaA: "な", kanaI: "に", kanaU: "ぬ", kanaE: "ね", kanaO: "の",
		phonA: "na", phonI: "ni", phonU: "nɯ", phonE: "ne", phonO: "no",
		teText: "んで", teP: "ɴde", taText: "んだ", taP: "ɴda",
	},
	ClassGodanB: {
		kanaA: "ば", kanaI: "び", kanaU: "ぶ", kanaE: "べ", kanaO: "ぼ",
		phonA: "ba", phonI: "bi", phonU: "bɯ", phonE: "be", phonO: "bo",
		teText: "んで", teP: "ɴde", taText: "んだ", taP: "ɴda",
	},
	ClassGodanM: {
		kanaA: "ま", kanaI: "み", kanaU: "む", kanaE: "め", kanaO: "も",
		phonA: "ma", phonI: "mi", phonU: "mɯ", phonE: "me", phonO: "mo",
		teText: "んで", teP: "ɴde", taText: "んだ", taP: "ɴda",
	},
	ClassGodanR: {
		kanaA: "ら", kanaI: "り", kanaU: "る", kanaE: "れ", kanaO: "ろ",
		phonA: "ɾa", phonI: "ɾi", phonU: "ɾɯ", phonE: "ɾe", phonO: "ɾo",
		teText: "って", teP: "tːe", taText: "った", taP: "tːa",
	},
	// 行く/いく reuses the k column for every row except te/ta, which is
	// special-cased to the u/t/r-style geminated suffix (spec.md §4.3,
	// "行く is special-cased to itːe/itːa rather than the expected iite/iita").
	ClassIku: {
		kanaA: "か", kanaI: "き", kanaU: "く", kanaE: "け", kanaO: "こ",
		phonA: "ka", phonI: "ki", phonU: "kɯ", phonE: "ke", phonO: "ko",
		teText: "って", teP: "tːe", taText: "った", taP: "tːa",
	},
}

// Classify implements spec.md §4.3's nine-step classification. It returns
// ok=false for anything that is not a verb by these rules.
func Classify(text, phoneme string) (VerbRecord, bool) {
	switch text {
	case "する":
		return VerbRecord{Class: ClassSuru}, true
	case "来る", "くる":
		return VerbRecord{Class: ClassKuru}, true
	case "ある":
		return VerbRecord{Class: ClassAru, TextStem: "", PhonemeStem: ""}, true
	case "行く", "いく":
		return VerbRecord{
			Class:       ClassIku,
			TextStem:    strings.TrimSuffix(text, lastRune(text)),
			PhonemeStem: strings.TrimSuffix(phoneme, "kɯ"),
		}, true
	}

	runes := []rune(text)
	if len(runes) > 2 && strings.HasSuffix(text, "する") {
		prefixText := strings.TrimSuffix(text, "する")
		prefixPhon := strings.TrimSuffix(phoneme, "sɯɾɯ")
		return VerbRecord{Class: ClassSuruCompound, TextPrefix: prefixText, PhonemePrefix: prefixPhon}, true
	}
	if len(runes) > 2 && (strings.HasSuffix(text, "来る") || strings.HasSuffix(text, "くる")) {
		tail := lastTwoRunes(text)
		prefixText := strings.TrimSuffix(text, tail)
		prefixPhon := strings.TrimSuffix(phoneme, "kɯɾɯ")
		return VerbRecord{
			Class:         ClassKuruCompound,
			TextPrefix:    prefixText,
			PhonemePrefix: prefixPhon,
			KuruKana:      tail == "くる",
		}, true
	}

	// Non-る u-row endings are unambiguously godan by their final kana —
	// spec.md §4.3 steps 6-9 disambiguate only the る ending, which is
	// the one shape shared by both ichidan and godan_r dictionary forms.
	if class, phonSuffix, ok := godanColumnFromFinalKana(text); ok {
		return VerbRecord{
			Class:       class,
			TextStem:    strings.TrimSuffix(text, lastRune(text)),
			PhonemeStem: strings.TrimSuffix(phoneme, phonSuffix),
		}, true
	}

	if !strings.HasSuffix(text, "る") {
		return VerbRecord{}, false
	}

	if godanExceptions.Has(text) {
		return VerbRecord{
			Class:       ClassGodanR,
			TextStem:    strings.TrimSuffix(text, "る"),
			PhonemeStem: strings.TrimSuffix(phoneme, "ɾɯ"),
		}, true
	}

	if strings.HasSuffix(phoneme, "ɾɯ") {
		stemPhon := strings.TrimSuffix(phoneme, "ɾɯ")
		last := lastRune(stemPhon)
		if last == "i" || last == "e" {
			return VerbRecord{
				Class:       ClassIchidan,
				TextStem:    strings.TrimSuffix(text, "る"),
				PhonemeStem: stemPhon,
			}, true
		}
	}

	return VerbRecord{
		Class:       ClassGodanR,
		TextStem:    strings.TrimSuffix(text, "る"),
		PhonemeStem: strings.TrimSuffix(phoneme, "ɾɯ"),
	}, true
}

// godanColumnFromFinalKana maps a dictionary-form final kana to its godan
// column and the phoneme suffix to strip to reach the stem. る is
// deliberately absent: it is ambiguous between ichidan and godan_r and is
// resolved separately by the phonetic rule.
func godanColumnFromFinalKana(text string) (VerbClass, string, bool) {
	switch lastRune(text) {
	case "う":
		return ClassGodanU, "ɯ", true
	case "く":
		return ClassGodanK, "kɯ", true
	case "ぐ":
		return ClassGodanG, "gɯ", true
	case "す":
		return ClassGodanS, "sɯ", true
	case "つ":
		return ClassGodanT, "ʦɯ", true
	case "ぬ":
		return ClassGodanN, "nɯ", true
	case "ぶ":
		return ClassGodanB, "bɯ", true
	case "む":
		return ClassGodanM, "mɯ", true
	default:
		return 0, "", false
	}
}

func lastRune(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return ""
	}
	return string(r[len(r)-1])
}

func lastTwoRunes(s string) string {
	r := []rune(s)
	if len(r) < 2 {
		return s
	}
	return string(r[len(r)-2:])
}

// Conjugate returns every productive surface form for rec, keyed by the
// conjugated text with the conjugated phoneme as value. It does not check
// that rec is a verb: a record Classify rejected (the zero VerbRecord) falls
// through to the godan path and yields forms built from an empty column, so
// Classify's bool result is the caller's "is this a verb at all" gate.
func Conjugate(rec VerbRecord) map[string]string {
	switch rec.Class {
	case ClassIchidan:
		return conjugateIchidan(rec.TextStem, rec.PhonemeStem)
	case ClassAru:
		return conjugateAru()
	case ClassSuru:
		return conjugateSuru("", "")
	case ClassKuru:
		out := conjugateKuruKanji("", "")
		for k, v := range conjugateKuruKana("", "") {
			out[k] = v
		}
		return out
	case ClassSuruCompound:
		return conjugateSuru(rec.TextPrefix, rec.PhonemePrefix)
	case ClassKuruCompound:
		// The compound already committed to one surface (来る or くる);
		// only that tail variant needs generating.
		if rec.KuruKana {
			return conjugateKuruKana(rec.TextPrefix, rec.PhonemePrefix)
		}
		return conjugateKuruKanji(rec.TextPrefix, rec.PhonemePrefix)
	default:
		return conjugateGodan(rec.Class, rec.TextStem, rec.PhonemeStem)
	}
}

func conjugateIchidan(stemT, stemP string) map[string]string {
	out := make(map[string]string, 16)
	add := func(t, p string) { out[stemT+t] = stemP + p }

	add("た", "ta")
	add("て", "te")
	add("ない", "nai")
	add("なかった", "nakatːa")
	add("ます", "masɯ")
	add("ました", "maɕita")
	add("ません", "maseɴ")
	add("ませんでした", "maseɴdeɕita")
	add("れば", "ɾeba")
	add("よう", "joː")
	add("ろ", "ɾo")
	add("よ", "jo")
	add("られる", "ɾaɾeɾɯ") // potential and passive share this form
	add("させる", "saseɾɯ")
	add("たら", "taɾa")

	return out
}

func conjugateGodan(class VerbClass, stemT, stemP string) map[string]string {
	col := godanColumns[class]
	out := make(map[string]string, 15)
	add := func(t, p string) { out[stemT+t] = stemP + p }

	add(col.taText, col.taP)
	add(col.teText, col.teP)
	add(col.kanaA+"ない", col.phonA+"nai")
	add(col.kanaA+"なかった", col.phonA+"nakatːa")
	add(col.kanaI+"ます", col.phonI+"masɯ")
	add(col.kanaI+"ました", col.phonI+"maɕita")
	add(col.kanaI+"ません", col.phonI+"maseɴ")
	add(col.kanaI+"ませんでした", col.phonI+"maseɴdeɕita")
	add(col.kanaE+"ば", col.phonE+"ba")
	add(col.kanaO+"う", col.phonO+"ɯ")
	add(col.kanaE, col.phonE)
	add(col.kanaE+"る", col.phonE+"ɾɯ")
	add(col.kanaA+"れる", col.phonA+"ɾeɾɯ")
	add(col.kanaA+"せる", col.phonA+"seɾɯ")
	add(col.taText+"ら", col.taP+"ɾa")

	return out
}

// conjugateAru special-cases ある's suppletive negative (spec.md §4.3
// step 2): the negative and negative-past forms are the bare adjective
// ない/なかった with no あ-stem prefix, unlike every other godan_r verb.
func conjugateAru() map[string]string {
	out := conjugateGodan(ClassGodanR, "あ", "a")
	delete(out, "あらない")
	delete(out, "あらなかった")
	out["ない"] = "nai"
	out["なかった"] = "nakatːa"
	return out
}

type irregularForm struct {
	suffixText, suffixP string
}

var suruForms = []irregularForm{
	{"した", "ɕita"},
	{"して", "ɕite"},
	{"しない", "ɕinai"},
	{"しなかった", "ɕinakatːa"},
	{"します", "ɕimasɯ"},
	{"しました", "ɕimaɕita"},
	{"しません", "ɕimaseɴ"},
	{"しませんでした", "ɕimaseɴdeɕita"},
	{"すれば", "sɯɾeba"},
	{"しよう", "ɕijoː"},
	{"しろ", "ɕiɾo"},
	{"せよ", "sejo"},
	{"できる", "dekiɾɯ"}, // potential is suppletive
	{"される", "saɾeɾɯ"},
	{"させる", "saseɾɯ"},
	{"したら", "ɕitaɾa"},
}

func conjugateSuru(prefixT, prefixP string) map[string]string {
	out := make(map[string]string, len(suruForms))
	for _, f := range suruForms {
		out[prefixT+f.suffixText] = prefixP + f.suffixP
	}
	return out
}

var kuruKanjiForms = []irregularForm{
	{"来た", "kita"},
	{"来て", "kite"},
	{"来ない", "konai"},
	{"来なかった", "konakatːa"},
	{"来ます", "kimasɯ"},
	{"来ました", "kimaɕita"},
	{"来ません", "kimaseɴ"},
	{"来ませんでした", "kimaseɴdeɕita"},
	{"来れば", "kɯɾeba"},
	{"来よう", "kojoː"},
	{"来い", "koi"},
	{"来られる", "koɾaɾeɾɯ"},
	{"来させる", "kosaseɾɯ"},
	{"来たら", "kitaɾa"},
}

var kuruKanaForms = []irregularForm{
	{"きた", "kita"},
	{"きて", "kite"},
	{"こない", "konai"},
	{"こなかった", "konakatːa"},
	{"きます", "kimasɯ"},
	{"きました", "kimaɕita"},
	{"きません", "kimaseɴ"},
	{"きませんでした", "kimaseɴdeɕita"},
	{"くれば", "kɯɾeba"},
	{"こよう", "kojoː"},
	{"こい", "koi"},
	{"こられる", "koɾaɾeɾɯ"},
	{"こさせる", "kosaseɾɯ"},
	{"きたら", "kitaɾa"},
}

func conjugateKuruKanji(prefixT, prefixP string) map[string]string {
	out := make(map[string]string, len(kuruKanjiForms))
	for _, f := range kuruKanjiForms {
		out[prefixT+f.suffixText] = prefixP + f.suffixP
	}
	return out
}

func conjugateKuruKana(prefixT, prefixP string) map[string]string {
	out := make(map[string]string, len(kuruKanaForms))
	for _, f := range kuruKanaForms {
		out[prefixT+f.suffixText] = prefixP + f.suffixP
	}
	return out
}
