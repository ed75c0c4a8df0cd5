package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/chriskillpack/jpnphoneme"
)

var (
	flagArtifact = flag.String("artifact", "out.jpnt", "path to the binary phoneme artifact")
	flagSegment  = flag.Bool("segment", true, "run word segmentation before phoneme conversion")
	flagDetailed = flag.Bool("detailed", false, "print match records and unmatched code points")
)

func main() {
	flag.Parse()

	lt, closeFn, err := jpnphoneme.Load(*flagArtifact)
	if err != nil {
		log.Fatal(err)
	}
	defer closeFn()

	m := jpnphoneme.NewMatcher(lt, jpnphoneme.Config{SegmentWords: *flagSegment})

	args := flag.Args()
	if len(args) > 0 {
		for _, text := range args {
			if err := convertOne(m, text, *flagDetailed); err != nil {
				log.Fatal(err)
			}
		}
		return
	}

	// No arguments: interactive REPL over stdin, one line of text per
	// conversion, grounded on original_source/jpn_to_phoneme.py's main()
	// interactive mode.
	sc := bufio.NewScanner(os.Stdin)
	fmt.Println("Enter Japanese text (Ctrl-D to quit):")
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		if err := convertOne(m, line, *flagDetailed); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
}

func convertOne(m *jpnphoneme.Matcher, text string, detailed bool) error {
	if !detailed {
		phonemes, err := m.Convert(text)
		if err != nil {
			return err
		}
		fmt.Println(phonemes)
		return nil
	}

	res, err := m.ConvertDetailed(text)
	if err != nil {
		return err
	}
	fmt.Printf("%s\n", res.Phonemes)
	for _, mt := range res.Matches {
		fmt.Printf("  %q -> %q (pos %d)\n", mt.Original, mt.Phoneme, mt.StartCodePoint)
	}
	if len(res.Unmatched) > 0 {
		fmt.Printf("  unmatched: %q\n", string(res.Unmatched))
	}
	return nil
}
