// timingdemo runs a synthetic patch-tracking workload with nested timed
// scopes and prints the hierarchical timing summary. With -serve it also
// exposes the live viewer and chart over HTTP while the workload runs.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/colorfulnotion/timetree/timing"
	"github.com/colorfulnotion/timetree/timingweb"
)

func main() {
	frames := flag.Int("frames", 25, "Number of synthetic frames to process")
	workers := flag.Int("workers", 4, "Concurrent workers per frame stage")
	serve := flag.String("serve", "", "Serve the live viewer on this address (e.g. :8080)")
	disableDetail := flag.Bool("coarse", false, "Disable the fine-grained inner scopes")
	flag.Parse()

	rec := timing.Default()

	if *serve != "" {
		srv := timingweb.NewServer(rec, time.Second)
		go func() {
			if err := srv.Start(*serve); err != nil {
				log.Fatalf("Viewer failed: %v", err)
			}
		}()
	}

	for i := 0; i < *frames; i++ {
		processFrame(rec, *workers, !*disableDetail)
	}

	rec.PrintSummary()
	fmt.Println()
	fmt.Println(rec.Tree().String())

	if *serve != "" {
		log.Printf("Workload done, viewer still running at %s (Ctrl+C to stop)", *serve)
		select {}
	}
}

func processFrame(rec *timing.Recorder, workers int, detail bool) {
	frame := rec.Begin("frame")
	defer frame.End()

	func() {
		s := rec.Begin("frame.patchify")
		defer s.End()
		busy(2 * time.Millisecond)
	}()

	update := rec.Begin("frame.update")
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s := rec.BeginIf("frame.update.corr", detail)
			busy(time.Duration(1+rand.Intn(3)) * time.Millisecond)
			s.End()
		}()
	}
	wg.Wait()
	update.End()
}

// busy spins for roughly d so the samples are nonzero without sleeping the
// scheduler away.
func busy(d time.Duration) {
	deadline := time.Now().Add(d)
	for time.Now().Before(deadline) {
	}
}
