package main

import (
	"fmt"
	"io"
	"time"

	"github.com/schollz/progressbar/v3"
)

// entityProgress renders classification progress on w.
type entityProgress struct {
	w     io.Writer
	quiet bool
	bar   *progressbar.ProgressBar
}

func newEntityProgress(w io.Writer, quiet bool) *entityProgress {
	return &entityProgress{w: w, quiet: quiet}
}

// OnEntity matches scanner.Options.OnEntity. The bar is created on the
// first call, once the total is known.
func (p *entityProgress) OnEntity(done, total int, _ string) {
	if p.quiet {
		return
	}
	if p.bar == nil {
		p.bar = progressbar.NewOptions(total,
			progressbar.OptionSetWriter(p.w),
			progressbar.OptionSetDescription("Classifying components"),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionThrottle(65*time.Millisecond),
			progressbar.OptionShowElapsedTimeOnFinish(),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintln(p.w)
			}),
		)
	}
	_ = p.bar.Set(done)
}

// Finish completes the bar if one was started.
func (p *entityProgress) Finish() {
	if p.bar != nil {
		_ = p.bar.Finish()
	}
}
