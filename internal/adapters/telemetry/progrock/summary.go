package progrock

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/muesli/termenv"
	"github.com/vito/progrock"
)

const (
	colorGreen = "#12B76A"
	colorRed   = "#D93025"
	colorSlate = "#667085"

	iconDone    = "✓"
	iconFailed  = "✗"
	iconCached  = "•"
	iconPending = "…"
)

var _ progrock.Writer = (*Summary)(nil)

type vertexState struct {
	name     string
	internal bool
	done     bool
	cached   bool
	err      string
}

// Summary is a progrock.Writer that tracks vertex status and prints one line per
// visible vertex when closed.
type Summary struct {
	out *termenv.Output

	mu       sync.Mutex
	order    []string
	vertices map[string]*vertexState
	closed   bool
}

// NewSummary creates a Summary writing to w. Colours are disabled when NO_COLOR is set.
func NewSummary(w io.Writer) *Summary {
	profile := termenv.EnvColorProfile()
	if os.Getenv("NO_COLOR") != "" {
		profile = termenv.Ascii
	}
	return &Summary{
		out:      termenv.NewOutput(w, termenv.WithProfile(profile)),
		vertices: make(map[string]*vertexState),
	}
}

// WriteStatus folds the vertex updates into the summary.
func (s *Summary) WriteStatus(update *progrock.StatusUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, v := range update.Vertexes {
		st, ok := s.vertices[v.Id]
		if !ok {
			st = &vertexState{}
			s.vertices[v.Id] = st
			s.order = append(s.order, v.Id)
		}
		st.name = v.Name
		st.internal = v.Internal
		st.cached = st.cached || v.Cached
		if v.Completed != nil {
			st.done = true
		}
		if v.Error != nil {
			st.err = *v.Error
		}
	}
	return nil
}

// Close prints the summary. Later calls do nothing.
func (s *Summary) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	for _, id := range s.order {
		st := s.vertices[id]
		if st.internal {
			continue
		}
		if _, err := fmt.Fprintln(s.out, s.line(st)); err != nil {
			return err
		}
	}
	return nil
}

func (s *Summary) line(st *vertexState) string {
	switch {
	case st.err != "":
		return s.out.String(iconFailed).Foreground(s.out.Color(colorRed)).String() + " " + st.name + ": " + st.err
	case st.cached:
		return s.out.String(iconCached).Foreground(s.out.Color(colorSlate)).String() + " " + st.name + " (cached)"
	case st.done:
		return s.out.String(iconDone).Foreground(s.out.Color(colorGreen)).String() + " " + st.name
	default:
		return s.out.String(iconPending).Foreground(s.out.Color(colorSlate)).String() + " " + st.name
	}
}
