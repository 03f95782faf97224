package display

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
)

const dayFormat = "January 2, 2006"

// Progress reports commit creation, one step per commit.
type Progress struct {
	bar *progressbar.ProgressBar
}

// NewProgress returns a progress bar for total commits written to w, or to
// stderr when w is nil.
func NewProgress(total int, w io.Writer) *Progress {
	if w == nil {
		w = os.Stderr
	}
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(20),
		progressbar.OptionSetDescription("[cyan]Generating your GitHub activity[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(w)
		}),
	)
	return &Progress{bar: bar}
}

// Describe shows the day currently being committed.
func (p *Progress) Describe(date time.Time) {
	p.bar.Describe(fmt.Sprintf("[cyan]Generating your GitHub activity... (%s)[reset]", date.Format(dayFormat)))
}

func (p *Progress) Step() {
	_ = p.bar.Add(1)
}

func (p *Progress) Finish() {
	_ = p.bar.Finish()
}
