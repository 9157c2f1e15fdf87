package client

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"
	"unicode/utf8"
)

const defaultSearchDelay = 500 * time.Millisecond

// ErrQueryTooShort is reported locally, before any request leaves.
var ErrQueryTooShort = errors.New("type at least 2 letters to search cities")

type SearchFunc func(ctx context.Context, query string) ([]City, error)

// SearchResult pairs the query that produced it with its outcome.
type SearchResult struct {
	Query  string
	Cities []City
	Err    error
}

// Searcher debounces keystrokes into city searches. Only the last query of
// a quiet window is dispatched, and each dispatch carries a sequence
// number: a response that is no longer the latest is dropped, so a slow
// answer for an old query can never overwrite a newer one.
type Searcher struct {
	search  SearchFunc
	delay   time.Duration
	results chan SearchResult
	done    chan struct{}

	mu     sync.Mutex
	timer  *time.Timer
	seq    uint64
	cancel context.CancelFunc
	closed bool
}

func NewSearcher(search SearchFunc, opts ...SearcherOption) *Searcher {
	s := &Searcher{
		search:  search,
		delay:   defaultSearchDelay,
		results: make(chan SearchResult, 8),
		done:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type SearcherOption func(*Searcher)

func WithSearchDelay(d time.Duration) SearcherOption {
	return func(s *Searcher) { s.delay = d }
}

// Results delivers at most one outcome per settled query.
func (s *Searcher) Results() <-chan SearchResult {
	return s.results
}

// Input registers a keystroke. The pending window restarts on every call.
func (s *Searcher) Input(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	if s.timer != nil {
		s.timer.Stop()
	}
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}

	s.seq++
	seq := s.seq
	s.timer = time.AfterFunc(s.delay, func() {
		s.dispatch(seq, query)
	})
}

func (s *Searcher) dispatch(seq uint64, query string) {
	trimmed := strings.TrimSpace(query)
	if utf8.RuneCountInString(trimmed) < 2 {
		s.deliver(seq, SearchResult{Query: query, Err: ErrQueryTooShort})
		return
	}

	s.mu.Lock()
	if s.closed || seq != s.seq {
		s.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.mu.Unlock()

	cities, err := s.search(ctx, trimmed)
	s.deliver(seq, SearchResult{Query: query, Cities: cities, Err: err})
}

func (s *Searcher) deliver(seq uint64, res SearchResult) {
	s.mu.Lock()
	stale := s.closed || seq != s.seq
	s.mu.Unlock()
	if stale {
		return
	}
	select {
	case s.results <- res:
	case <-s.done:
	}
}

// Close stops the pending timer and cancels in-flight work. Input calls
// after Close are ignored.
func (s *Searcher) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
	}
	if s.cancel != nil {
		s.cancel()
	}
	s.mu.Unlock()
	close(s.done)
}
