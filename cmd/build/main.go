package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/chriskillpack/jpnphoneme"
	"github.com/schollz/progressbar/v3"
)

var (
	flagDictionary = flag.String("dict", "dictionary.json", "JSON text->phoneme dictionary")
	flagWordList   = flag.String("words", "", "optional one-word-per-line word list")
	flagOut        = flag.String("out", "out.jpnt", "path to write the binary artifact")
	flagReport     = flag.String("report", "out.warnings.txt", "path to write the dictionary warnings report (blank to skip)")
	flagThreads    = flag.Int("threads", 4, "goroutines used to expand verb conjugations")

	verboseOutput bool
)

func verbose(format string, a ...any) {
	if verboseOutput {
		fmt.Printf(format, a...)
	}
}

func main() {
	flag.BoolVar(&verboseOutput, "v", false, "Verbose output")
	flag.BoolVar(&verboseOutput, "verbose", false, "Verbose output")
	flag.Parse()

	if *flagThreads <= 0 || *flagThreads > 100 {
		log.Fatal("threads needs to be between 1 and 100")
	}

	b := jpnphoneme.Builder{Verbose: verboseOutput, NThreads: *flagThreads}

	if err := b.LoadDictionary(*flagDictionary); err != nil {
		log.Fatal(err)
	}
	if *flagWordList != "" {
		if err := b.LoadWordList(*flagWordList); err != nil {
			log.Fatal(err)
		}
	}

	conjugateCh := make(chan jpnphoneme.ConjugateUpdate)
	b.ConjugateProgressCh = conjugateCh

	bar := progressbar.NewOptions(
		-1,
		progressbar.OptionSetDescription("Expanding verb conjugations"),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionThrottle(50*time.Millisecond),
		progressbar.OptionShowCount(),
		progressbar.OptionOnCompletion(func() { fmt.Println() }),
	)
	done := make(chan struct{})
	go func() {
		for u := range conjugateCh {
			bar.Add(u.N)
		}
		bar.Finish()
		close(done)
	}()
	b.ExpandVerbs()
	close(conjugateCh)
	<-done

	serializeCh := make(chan jpnphoneme.SerializeUpdate)
	b.SerializeProgressCh = serializeCh
	go func() {
		for u := range serializeCh {
			verbose("serialize phase=%d event=%d n=%d\n", u.Phase, u.Event, u.N)
		}
	}()

	if err := b.Serialize(*flagOut, *flagReport); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Wrote artifact to %s\n", *flagOut)
}
