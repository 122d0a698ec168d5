package rogo

import (
	"math/rand/v2"
	"sync"

	"github.com/rduo1009/vocab-tuister/lego"
	"github.com/rduo1009/vocab-tuister/transfero"
)

// RNG wraps a math/rand/v2 PCG source behind a mutex: every /session call
// shares one Store and its RNG, and concurrent requests must still see a
// single, serialized draw sequence for VOCAB_TUISTER_RANDOM_SEED
// reproducibility (spec.md §9 P6) to hold.
type RNG struct {
	mu sync.Mutex
	r  *rand.Rand
}

func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1|1))}
}

func (g *RNG) intn(n int) int {
	if n <= 0 {
		return 0
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.r.IntN(n)
}

// session holds one client's uploaded vocab list and the candidate pool
// built from it, cached across /session calls so repeated sessions don't
// re-parse the vocab file.
type session struct {
	list *lego.VocabList
	pool []Candidate
}

// Store is the server's session state: one vocab list and candidate pool
// per client, guarded the way the teacher's dict.go guards its lazily
// built lexicon — a single RWMutex around the whole map rather than
// per-entry locks, since vocab uploads are rare relative to /session
// reads.
type Store struct {
	vocabMu  sync.RWMutex
	sessions map[string]*session

	rng *RNG

	Morph    transfero.EnglishMorph
	Synonyms transfero.SynonymProvider
}

// NewStore builds an empty Store whose RNG is seeded from seed, used as
// given; cmd/vocabtuister passes a clock-derived seed when
// VOCAB_TUISTER_RANDOM_SEED is unset.
func NewStore(seed int64, morph transfero.EnglishMorph, syn transfero.SynonymProvider) *Store {
	return &Store{
		sessions: make(map[string]*session),
		rng:      NewRNG(seed),
		Morph:    morph,
		Synonyms: syn,
	}
}

// SetVocab parses data as a vocab list and stores it (and its candidate
// pool) under clientID, replacing any previous upload for that client.
func (s *Store) SetVocab(clientID string, data []byte) error {
	list, err := lego.ReadList(data)
	if err != nil {
		return err
	}
	pool := BuildPool(list)

	s.vocabMu.Lock()
	defer s.vocabMu.Unlock()
	s.sessions[clientID] = &session{list: list, pool: pool}
	return nil
}

// ErrNoVocab reports a /session call for a client with no prior
// /send-vocab upload.
type ErrNoVocab struct{}

func (e *ErrNoVocab) Error() string { return "no vocab list has been uploaded for this client" }

// GenerateQuestions validates settings and samples questions against
// clientID's held vocab list.
func (s *Store) GenerateQuestions(clientID string, raw map[string]interface{}) ([]Question, error) {
	settings, err := ParseSettings(raw)
	if err != nil {
		return nil, err
	}

	s.vocabMu.RLock()
	sess, ok := s.sessions[clientID]
	s.vocabMu.RUnlock()
	if !ok {
		return nil, &ErrNoVocab{}
	}

	filtered := FilterPool(sess.pool, settings)
	return Sample(settings, filtered, s.Morph, s.Synonyms, s.rng)
}
