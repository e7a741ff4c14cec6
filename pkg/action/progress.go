package action

import (
	"context"
	"strings"
	"sync"
)

// ProgressSink receives ordered partial updates from a streaming handler.
// The handler appends lines; the caller owns the sink and decides how to
// render intermediate states. Sinks must tolerate calls after the consumer
// has gone away (the context carries cancellation).
type ProgressSink interface {
	Progress(ctx context.Context, line string)
}

// DiscardSink ignores all progress. Non-streaming invocations use it.
type DiscardSink struct{}

func (DiscardSink) Progress(context.Context, string) {}

// ChanSink forwards progress lines to a channel, dropping them once the
// context is cancelled so an abandoned handler cannot block.
type ChanSink struct {
	C chan string
}

// NewChanSink creates a sink with a small buffer; the audit transcript is a
// handful of lines.
func NewChanSink() *ChanSink {
	return &ChanSink{C: make(chan string, 16)}
}

func (s *ChanSink) Progress(ctx context.Context, line string) {
	select {
	case <-ctx.Done():
	case s.C <- line:
	}
}

// Close signals that no further progress will arrive.
func (s *ChanSink) Close() { close(s.C) }

// TranscriptSink accumulates progress lines into a growing transcript,
// reproducing the textbox semantics of the original progress display: each
// update is the full text so far, not a delta.
type TranscriptSink struct {
	mu    sync.Mutex
	lines []string
	next  ProgressSink
}

// NewTranscriptSink wraps next (may be nil) and forwards the accumulated
// transcript on every update.
func NewTranscriptSink(next ProgressSink) *TranscriptSink {
	return &TranscriptSink{next: next}
}

func (s *TranscriptSink) Progress(ctx context.Context, line string) {
	s.mu.Lock()
	s.lines = append(s.lines, line)
	text := strings.Join(s.lines, "\n")
	s.mu.Unlock()
	if s.next != nil {
		s.next.Progress(ctx, text)
	}
}

// Transcript returns the accumulated text.
func (s *TranscriptSink) Transcript() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return strings.Join(s.lines, "\n")
}

// Lines returns a copy of the individual progress lines.
func (s *TranscriptSink) Lines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.lines))
	copy(out, s.lines)
	return out
}
