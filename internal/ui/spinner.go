// Package ui provides terminal UI helpers.
package ui

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/briandowns/spinner"
)

const (
	// FrameDelay is the interval between spinner frames.
	FrameDelay = 100 * time.Millisecond
	// Label precedes the rotating frame.
	Label = "Generating a command "
)

// Frames is the rotating sequence drawn by the spinner.
var Frames = []string{"|", "/", "-", `\`}

// Indicator is a cosmetic progress animation.
type Indicator interface {
	Start()
	// Stop halts the animation and clears its line. No frame may be
	// written once Stop has returned.
	Stop()
}

// Spinner wraps a terminal spinner for the generation wait.
type Spinner struct {
	mu      sync.Mutex
	s       *spinner.Spinner
	stopped bool
}

// NewSpinner creates a spinner that draws on w. Frames are only drawn
// when the process runs in a terminal.
func NewSpinner(w io.Writer) *Spinner {
	s := spinner.New(Frames, FrameDelay, spinner.WithWriter(w))
	s.Prefix = Label
	return &Spinner{s: s}
}

// Start begins the spinner animation.
func (sp *Spinner) Start() {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	if sp.stopped {
		return
	}
	sp.s.Start()
}

// Stop halts the spinner and returns the cursor to the start of a
// cleared line. Calling Stop more than once is a no-op.
func (sp *Spinner) Stop() {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	if sp.stopped {
		return
	}
	sp.stopped = true
	sp.s.Stop()
}

// Animate starts ind and stops it once ctx is done. The returned channel
// is closed after Stop has returned, so a caller that cancels ctx and then
// waits on the channel never races a late frame.
func Animate(ctx context.Context, ind Indicator) <-chan struct{} {
	done := make(chan struct{})
	ind.Start()
	go func() {
		defer close(done)
		<-ctx.Done()
		ind.Stop()
	}()
	return done
}
