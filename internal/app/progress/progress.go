// Package progress renders pipeline status snapshots as a terminal progress bar.
package progress

import (
	"context"
	"io"
	"os"
	"sync"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"github.com/AssemblyAI-Community/assemblyai-slack-bot/internal/app/model"
)

type Config struct {
	Enabled bool
	Writer  io.Writer
}

// BarReporter advances one bar step per snapshot. With progress disabled it
// only remembers the last snapshot.
type BarReporter struct {
	container *mpb.Progress
	bar       *mpb.Bar
	enabled   bool

	mu     sync.Mutex
	status string
	last   model.TranscriptMessage
}

// NewBarReporter creates a bar with one step per expected status.
func NewBarReporter(config Config, fileName string, steps int) *BarReporter {
	r := &BarReporter{status: "Starting"}
	if !config.Enabled {
		return r
	}

	writer := config.Writer
	if writer == nil {
		writer = os.Stderr
	}

	r.enabled = true
	// mpb skips rendering for non-terminal writers unless auto refresh is
	// forced, and --progress may point at a pipe.
	r.container = mpb.New(
		mpb.WithOutput(writer),
		mpb.WithRefreshRate(120*time.Millisecond),
		mpb.WithAutoRefresh(),
	)
	r.bar = r.container.AddBar(int64(steps),
		mpb.PrependDecorators(
			decor.Name(fileName+" ", decor.WC{W: len(fileName) + 1, C: decor.DindentRight}),
			decor.Any(func(decor.Statistics) string { return r.currentStatus() }, decor.WCSyncSpaceR),
		),
		mpb.AppendDecorators(
			decor.OnComplete(decor.Elapsed(decor.ET_STYLE_GO, decor.WCSyncSpace), " ✓ "),
		),
	)
	return r
}

func (r *BarReporter) currentStatus() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.status
}

// Report implements pipeline.Reporter
func (r *BarReporter) Report(_ context.Context, snapshot model.TranscriptMessage) error {
	r.mu.Lock()
	r.status = snapshot.Status
	r.last = snapshot
	r.mu.Unlock()

	if !r.enabled {
		return nil
	}
	switch snapshot.Status {
	case model.StatusCompleted:
		r.bar.SetTotal(r.bar.Current()+1, true)
	case model.StatusFailed:
		r.bar.Abort(false)
	default:
		r.bar.Increment()
	}
	return nil
}

// Last returns the most recent snapshot
func (r *BarReporter) Last() model.TranscriptMessage {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last
}

// Wait flushes the bar. Call it after the run returns.
func (r *BarReporter) Wait() {
	if r.enabled {
		r.container.Wait()
	}
}

// IsTTY reports whether writer is a terminal
func IsTTY(writer io.Writer) bool {
	if file, ok := writer.(*os.File); ok {
		stat, err := file.Stat()
		if err != nil {
			return false
		}
		return (stat.Mode() & os.ModeCharDevice) != 0
	}
	return false
}

// ShouldShowProgress enables the bar when forced or on a terminal
func ShouldShowProgress(forced bool) bool {
	if forced {
		return true
	}
	return IsTTY(os.Stderr)
}
