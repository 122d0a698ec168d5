package transfero

import (
	"bufio"
	"bytes"
	"strings"
	"sync"

	"github.com/rduo1009/vocab-tuister/data"
)

// EmbeddedSynonyms is the default SynonymProvider: a read-only handle over
// the tab-separated word/synonym-list database embedded at build time,
// parsed once via sync.Once the way the teacher's sibling repo
// jus1d-gomorphy lazily builds its shared Analyzer through Default() and
// sync.Once, and az-ai-labs's data package embeds its dictionaries with
// //go:embed.
//
// The database ships as plain "word<TAB>syn1,syn2,..." text rather than a
// gzip+gob blob or DAWG binary: those formats are written by running the
// Go toolchain to encode them, which this build does not do, so the
// architectural shape (embedded asset, lazily parsed into a read-only
// handle) is kept while the wire format is one that can be hand-authored
// reliably.
type EmbeddedSynonyms struct {
	once  sync.Once
	table map[string][]string
}

var defaultSynonyms = &EmbeddedSynonyms{}

// DefaultSynonyms returns the process-wide embedded synonym provider,
// lazily parsing data.Synonyms on first use.
func DefaultSynonyms() *EmbeddedSynonyms {
	defaultSynonyms.once.Do(defaultSynonyms.load)
	return defaultSynonyms
}

func (s *EmbeddedSynonyms) load() {
	s.table = make(map[string][]string)
	scanner := bufio.NewScanner(bytes.NewReader(data.Synonyms))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "\t", 2)
		if len(parts) != 2 {
			continue
		}
		word := strings.TrimSpace(parts[0])
		syns := strings.Split(parts[1], ",")
		for i, syn := range syns {
			syns[i] = strings.TrimSpace(syn)
		}
		s.table[word] = syns
	}
}

// Synonyms returns word's registered synonyms, or (nil, nil) if word is
// not in the database (a missing entry is not an error; spec.md §4.3).
func (s *EmbeddedSynonyms) Synonyms(word string) ([]string, error) {
	s.once.Do(s.load)
	return s.table[word], nil
}
