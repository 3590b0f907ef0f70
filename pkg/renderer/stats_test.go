package renderer

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestRenderStats_WriteSummary(t *testing.T) {
	stats := RenderStats{
		TotalPixels:    64,
		TotalSamples:   256,
		AverageSamples: 4.0,
		MinSamples:     4,
		MaxSamples:     4,
		Elapsed:        1500 * time.Millisecond,
	}

	var buf bytes.Buffer
	stats.WriteSummary(&buf)

	out := buf.String()
	for _, want := range []string{"256", "4.0", "1.5s", "none"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected summary to contain %q, got:\n%s", want, out)
		}
	}
}

func TestRenderStats_WriteSummaryFailedTiles(t *testing.T) {
	stats := RenderStats{FailedTiles: []int{7, 2}}

	var buf bytes.Buffer
	stats.WriteSummary(&buf)

	// Tile IDs are sorted for stable output
	if !strings.Contains(buf.String(), "[2 7]") {
		t.Errorf("Expected sorted failed tile list, got:\n%s", buf.String())
	}
}
