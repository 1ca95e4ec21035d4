package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/seancoady-ox/SWRS-SLab-HT2025/detect/features"
	"github.com/seancoady-ox/SWRS-SLab-HT2025/pipeline"
)

func sampleTable() *Table {
	nan := math.NaN()
	return NewTable([]pipeline.Summary{
		{Filename: "c.csv", Condition: pipeline.ClosedStim, Phase: pipeline.Phase90, RippleCount: 2, MeanFrequency: 151.25, MeanDuration: 55},
		{Filename: "b.csv", Condition: pipeline.NoStim, Phase: pipeline.Phase270, MeanFrequency: nan, MeanDuration: nan},
		{Filename: "a.csv", Condition: pipeline.NoStim, Phase: pipeline.Phase0, RippleCount: 1, MeanFrequency: 140, MeanDuration: 40},
		{Filename: "d.csv", Condition: pipeline.OpenStim, Phase: pipeline.Phase180, RippleCount: 3, MeanFrequency: 160, MeanDuration: 60},
	})
}

func TestNewTable_Order(t *testing.T) {
	tab := sampleTable()
	var names []string
	for _, r := range tab.Rows {
		names = append(names, r.Filename)
	}
	assert.Equal(t, []string{"a.csv", "b.csv", "d.csv", "c.csv"}, names)
	assert.Equal(t, []pipeline.Condition{pipeline.NoStim, pipeline.OpenStim, pipeline.ClosedStim}, tab.Conditions())
	assert.Len(t, tab.Group(pipeline.NoStim), 2)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sampleTable().WriteCSV(&buf))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, Columns, rows[0])
	assert.Equal(t, []string{"NoStim", "0", "40", "a.csv"}, rows[1][:4])
	assert.Equal(t, "NaN", rows[2][8])
	assert.Equal(t, "151.25", rows[4][8])
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sampleTable().WriteText(&buf, 2))

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// header, rule, 2 NoStim rows, blank, OpenStim, blank, ClosedStim
	require.Len(t, lines, 8)
	assert.True(t, strings.HasPrefix(lines[0], "Condition"))
	assert.Contains(t, out, "151.25")
	assert.Contains(t, out, "NaN")
	assert.Empty(t, strings.TrimSpace(lines[4]))
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sampleTable().WriteJSON(&buf))

	var rows []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rows))
	require.Len(t, rows, 4)
	assert.Equal(t, "NoStim", rows[0]["condition"])
	assert.Nil(t, rows[1]["mean_frequency"])
	assert.InDelta(t, 151.25, rows[3]["mean_frequency"], 1e-12)
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sampleTable().WriteYAML(&buf))

	var rows []map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &rows))
	require.Len(t, rows, 4)
	assert.Equal(t, "ClosedStim", rows[3]["condition"])
	assert.Equal(t, 90, rows[3]["phase"])
	f, ok := rows[1]["mean_frequency"].(float64)
	require.True(t, ok)
	assert.True(t, math.IsNaN(f))
}

func TestWrite_Formats(t *testing.T) {
	for _, name := range []string{"text", "table", "csv", "json", "yaml"} {
		f, err := ParseFormat(name)
		require.NoError(t, err)
		var buf bytes.Buffer
		require.NoError(t, sampleTable().Write(&buf, f, 3), name)
		assert.NotZero(t, buf.Len(), name)
	}
	_, err := ParseFormat("xml")
	require.Error(t, err)
}

func TestWriteEvents(t *testing.T) {
	events := features.Events{
		{Onset: 10, Offset: 50, Duration: 40, Frequency: 150, Ratio: 3},
		{Onset: 80, Offset: 120, Duration: 40, Frequency: math.NaN(), Ratio: 1},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteEvents(&buf, events, func(e features.Event) bool { return e.Ratio > 2 }))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, EventColumns, rows[0])
	assert.Equal(t, []string{"10", "50", "40", "150"}, rows[1][:4])
	assert.Equal(t, "true", rows[1][len(EventColumns)-1])
	assert.Equal(t, "NaN", rows[2][3])
	assert.Equal(t, "false", rows[2][len(EventColumns)-1])
}
