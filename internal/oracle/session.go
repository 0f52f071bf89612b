package oracle

import (
	"context"
	"fmt"
	"image"
	"log"
	"sync"

	"bamboo-weaver/internal/snapshot"
)

// Result carries the outcome of one interpretation request.
type Result struct {
	Interpretation Interpretation
	Err            error
}

// Session runs at most one interpretation at a time off the render loop.
type Session struct {
	interp Interpreter
	opts   snapshot.Options
	logger *log.Logger

	mu      sync.Mutex
	loading bool
}

// NewSession wraps interp. A nil logger falls back to log.Default.
func NewSession(interp Interpreter, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.Default()
	}
	return &Session{interp: interp, opts: snapshot.DefaultOptions(), logger: logger}
}

// Loading reports whether a request is in flight.
func (s *Session) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Start encodes img and requests an interpretation on a new goroutine. The
// returned channel receives exactly one Result. img must not be modified
// after the call. ErrBusy is returned while another request is running.
func (s *Session) Start(ctx context.Context, img image.Image) (<-chan Result, error) {
	s.mu.Lock()
	if s.loading {
		s.mu.Unlock()
		return nil, ErrBusy
	}
	s.loading = true
	s.mu.Unlock()

	out := make(chan Result, 1)
	go func() {
		var res Result
		defer func() {
			s.mu.Lock()
			s.loading = false
			s.mu.Unlock()
			out <- res
		}()
		res = s.run(ctx, img)
	}()
	return out, nil
}

func (s *Session) run(ctx context.Context, img image.Image) Result {
	if s.interp == nil {
		return Result{Err: ErrMissingAPIKey}
	}
	jpeg, err := snapshot.Export(img, s.opts)
	if err != nil {
		return Result{Err: fmt.Errorf("snapshot: %w", err)}
	}
	interp, err := s.interp.Interpret(ctx, jpeg)
	if err != nil {
		s.logger.Printf("interpretation failed: %v", err)
		return Result{Err: err}
	}
	s.logger.Printf("interpretation received: %q", interp.Title)
	return Result{Interpretation: interp}
}
