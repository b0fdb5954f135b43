package analytics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCounters(t *testing.T) {
	out := parseCounters(map[string]string{
		"quote_submitted:certified-document:header": "12",
		"quote_submitted:transcription:footer":      "0",
		"mangled:field":                             "not-a-number",
		"negative:ok":                               "-3",
	})

	assert.Equal(t, map[string]int64{
		"quote_submitted:certified-document:header": 12,
		"quote_submitted:transcription:footer":      0,
		"negative:ok":                               -3,
	}, out)
	assert.NotContains(t, out, "mangled:field", "corrupt counters are dropped, not zeroed")
}

func TestNilTrackerIsANoOp(t *testing.T) {
	tracker := NewTracker(nil)
	tracker.Track(context.Background(), "quote_submitted", "transcription", "header")

	counters, err := tracker.Snapshot(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, counters)
}
