package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/chriskillpack/jpnphoneme"
)

var (
	flagArtifact = flag.String("artifact", "out.jpnt", "path to the binary phoneme artifact")
	flagPort     = flag.String("port", "8080", "port to listen on")
)

func main() {
	flag.Parse()

	lt, closeFn, err := jpnphoneme.Load(*flagArtifact)
	if err != nil {
		log.Fatal(err)
	}
	defer closeFn()

	srv := NewServer(lt, *flagPort)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %s", err)
		}
	}()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Error at server shutdown: %s", err)
		}
	}()
	wg.Wait()
}
