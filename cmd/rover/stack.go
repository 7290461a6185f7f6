// cmd/rover/stack.go
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"discord-rover/internal/corpus"
	"discord-rover/internal/discover"
	"discord-rover/internal/index"
	"discord-rover/internal/query"
	"discord-rover/internal/search"
)

// stack is everything the offline commands need: the corpus with its index,
// the query processor on top of it and the discovery engine beside it.
type stack struct {
	corpus    *corpus.Corpus
	processor *query.Processor
	discover  *discover.Engine
}

// buildStack loads the corpus (ROVER_CORPUS path, or the embedded seed) and
// wires the engines. ROVER_SEED pins the discovery jitter for reproducible
// output; unset means a fresh seed per run.
func buildStack() (*stack, error) {
	var (
		c   *corpus.Corpus
		err error
	)
	if path := os.Getenv("ROVER_CORPUS"); path != "" {
		c, err = corpus.Load(path)
	} else {
		c, err = corpus.Default()
	}
	if err != nil {
		return nil, fmt.Errorf("loading corpus: %v", err)
	}

	ix := index.Build(c)
	engine := search.NewEngine(ix)

	return &stack{
		corpus:    c,
		processor: query.NewProcessor(engine),
		discover:  discover.NewEngine(c, discoverySeed()),
	}, nil
}

func discoverySeed() int64 {
	raw := os.Getenv("ROVER_SEED")
	if raw == "" {
		return time.Now().UnixNano()
	}
	seed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		log.Printf("Invalid ROVER_SEED %q, using current time: %v", raw, err)
		return time.Now().UnixNano()
	}
	return seed
}
