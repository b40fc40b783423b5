package bench

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/google/uuid"
)

// Row is the result of one batch size.
type Row struct {
	RunID      uuid.UUID
	Points     int
	Runs       int
	Octree     Stat
	Linear     Stat
	SortLinear Stat
	MeanHops   float64
	Mismatches int
}

// Stat returns the statistics of method m.
func (r Row) Stat(m Method) Stat {
	switch m {
	case MethodLinear:
		return r.Linear
	case MethodSortLinear:
		return r.SortLinear
	}

	return r.Octree
}

// Sink receives finished rows.
type Sink interface {
	Write(ctx context.Context, r Row) error
	Close() error
}

// TSVSink appends one tab-separated line per row: points, then mean and
// standard deviation for octree, linear and sort+linear.
type TSVSink struct {
	mu     sync.Mutex
	w      io.Writer
	closer io.Closer
}

// NewTSVSink writes rows to w. Close does not close w.
func NewTSVSink(w io.Writer) *TSVSink {
	return &TSVSink{w: w}
}

// OpenTSVFile appends rows to the file at path, creating it if needed.
func OpenTSVFile(path string) (*TSVSink, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("bench: open tsv: %w", err)
	}

	return &TSVSink{w: f, closer: f}, nil
}

func (s *TSVSink) Write(_ context.Context, r Row) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.w == nil {
		return ErrClosed
	}
	_, err := fmt.Fprintln(s.w, FormatTSV(r))

	return err
}

func (s *TSVSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.w = nil
	if s.closer == nil {
		return nil
	}
	err := s.closer.Close()
	s.closer = nil

	return err
}

// FormatTSV renders r without a trailing newline.
func FormatTSV(r Row) string {
	return fmt.Sprintf("%d\t%f\t%f\t%f\t%f\t%f\t%f",
		r.Points,
		r.Octree.Mean, r.Octree.StdDev,
		r.Linear.Mean, r.Linear.StdDev,
		r.SortLinear.Mean, r.SortLinear.StdDev)
}
