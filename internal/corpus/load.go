// internal/corpus/load.go
package corpus

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
)

//go:embed seed.json
var seedData []byte

// Default returns the embedded seed corpus. The seed is compiled in so the
// offline CLI and the tests need no external files.
func Default() (*Corpus, error) {
	return parse(seedData)
}

// Load reads a corpus from a JSON file conforming to the seed schema.
func Load(path string) (*Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read corpus file: %w", err)
	}
	return parse(data)
}

func parse(data []byte) (*Corpus, error) {
	var c Corpus
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse corpus: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// validate enforces the corpus invariants the engines rely on: unique
// community IDs across both catalogs, and unique message IDs per channel.
func (c *Corpus) validate() error {
	seen := make(map[int]string)
	for _, group := range [][]*Community{c.Communities, c.Discoverable} {
		for _, cm := range group {
			if prior, ok := seen[cm.ID]; ok {
				return fmt.Errorf("duplicate community id %d (%q and %q)", cm.ID, prior, cm.Name)
			}
			seen[cm.ID] = cm.Name
			for _, ch := range cm.TextChannels {
				ids := make(map[int]struct{}, len(ch.Messages))
				for _, m := range ch.Messages {
					if _, ok := ids[m.ID]; ok {
						return fmt.Errorf("duplicate message id %d in %s/%s", m.ID, cm.Name, ch.Name)
					}
					ids[m.ID] = struct{}{}
				}
			}
		}
	}
	return nil
}
