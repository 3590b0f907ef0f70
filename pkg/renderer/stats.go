package renderer

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/olekukonko/tablewriter"
)

// RenderStats summarizes a completed render
type RenderStats struct {
	TotalPixels    int
	TotalSamples   int
	AverageSamples float64
	MinSamples     int
	MaxSamples     int
	FailedTiles    []int // IDs of tiles whose worker panicked
	Elapsed        time.Duration
}

// WriteSummary renders the stats as a table
func (s *RenderStats) WriteSummary(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Metric", "Value"})
	table.SetAutoFormatHeaders(false)

	failed := "none"
	if len(s.FailedTiles) > 0 {
		sort.Ints(s.FailedTiles)
		failed = fmt.Sprintf("%v", s.FailedTiles)
	}

	table.AppendBulk([][]string{
		{"Pixels", fmt.Sprintf("%d", s.TotalPixels)},
		{"Samples", fmt.Sprintf("%d", s.TotalSamples)},
		{"Samples/pixel (avg)", fmt.Sprintf("%.1f", s.AverageSamples)},
		{"Samples/pixel (min-max)", fmt.Sprintf("%d - %d", s.MinSamples, s.MaxSamples)},
		{"Failed tiles", failed},
		{"Wall time", s.Elapsed.Round(time.Millisecond).String()},
	})
	table.Render()
}
