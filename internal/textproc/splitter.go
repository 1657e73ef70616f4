package textproc

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"speedread/internal/domain"
)

// DefaultCacheSize bounds each per-mode cache.
const DefaultCacheSize = 50000

type parts struct{ head, rest string }

// Splitter memoises word splits per mode.
type Splitter struct {
	syllable *lru.Cache[string, parts]
	bionic   *lru.Cache[string, parts]
}

// NewSplitter returns a Splitter whose caches hold up to size words each.
// A non-positive size selects DefaultCacheSize.
func NewSplitter(size int) (*Splitter, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	syl, err := lru.New[string, parts](size)
	if err != nil {
		return nil, err
	}
	bio, err := lru.New[string, parts](size)
	if err != nil {
		return nil, err
	}
	return &Splitter{syllable: syl, bionic: bio}, nil
}

// Split returns the emphasised head and the plain rest of word under mode.
func (s *Splitter) Split(word string, mode domain.Mode) (head, rest string) {
	cache, fn := s.syllable, FirstSyllable
	if mode == domain.ModeBionic {
		cache, fn = s.bionic, BionicSplit
	}
	if p, ok := cache.Get(word); ok {
		return p.head, p.rest
	}
	head, rest = fn(word)
	cache.Add(word, parts{head: head, rest: rest})
	return head, rest
}

// Len reports how many words are cached for mode.
func (s *Splitter) Len(mode domain.Mode) int {
	if mode == domain.ModeBionic {
		return s.bionic.Len()
	}
	return s.syllable.Len()
}
