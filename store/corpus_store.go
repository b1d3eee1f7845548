package store

import (
	"sort"
	"sync"
	"time"

	"github.com/gcbaptista/go-stringdist/internal/encoder"
	internalErrors "github.com/gcbaptista/go-stringdist/internal/errors"
	"github.com/gcbaptista/go-stringdist/model"
)

// Corpus is one named string vector together with its canonical sequences.
// The sequences are encoded once at creation and shared read-only across
// every matrix computation that uses the corpus, so repeated comparisons
// never re-decode the same text.
type Corpus struct {
	Name      string
	Values    []string
	Sequences []model.Sequence
	CreatedAt time.Time
}

// CorpusStore holds named corpora behind an RWMutex. Lookups hand out the
// stored *Corpus directly; corpora are immutable after creation, so sharing
// is safe.
type CorpusStore struct {
	mu      sync.RWMutex
	corpora map[string]*Corpus
}

// NewCorpusStore creates an empty store.
func NewCorpusStore() *CorpusStore {
	return &CorpusStore{
		corpora: make(map[string]*Corpus),
	}
}

// Create encodes and stores a corpus under name.
func (s *CorpusStore) Create(name string, values []string) (*Corpus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.corpora[name]; exists {
		return nil, internalErrors.NewCorpusAlreadyExistsError(name)
	}

	corpus := &Corpus{
		Name:      name,
		Values:    values,
		Sequences: encoder.EncodeStrings(values),
		CreatedAt: time.Now(),
	}
	s.corpora[name] = corpus
	return corpus, nil
}

// Get retrieves a corpus by name.
func (s *CorpusStore) Get(name string) (*Corpus, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	corpus, exists := s.corpora[name]
	if !exists {
		return nil, internalErrors.NewCorpusNotFoundError(name)
	}
	return corpus, nil
}

// Delete removes a corpus by name.
func (s *CorpusStore) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.corpora[name]; !exists {
		return internalErrors.NewCorpusNotFoundError(name)
	}
	delete(s.corpora, name)
	return nil
}

// List returns all corpora sorted by name.
func (s *CorpusStore) List() []*Corpus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	corpora := make([]*Corpus, 0, len(s.corpora))
	for _, corpus := range s.corpora {
		corpora = append(corpora, corpus)
	}
	sort.Slice(corpora, func(i, j int) bool { return corpora[i].Name < corpora[j].Name })
	return corpora
}
