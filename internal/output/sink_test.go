package output

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nomen/internal/report"
)

func TestParseSink(t *testing.T) {
	if _, ok := ParseSink("json", false).(*JSONSink); !ok {
		t.Error("ParseSink(json) should return a JSONSink")
	}
	if _, ok := ParseSink("csv", false).(*CSVSink); !ok {
		t.Error("ParseSink(csv) should return a CSVSink")
	}
	if _, ok := ParseSink("console", true).(*ConsoleSink); !ok {
		t.Error("ParseSink(console) should return a ConsoleSink")
	}

	// Unknown output values fall back to the console sink.
	if _, ok := ParseSink("bogus", false).(*ConsoleSink); !ok {
		t.Error("ParseSink(bogus) should fall back to console")
	}
}

func TestConsoleSink_Counted(t *testing.T) {
	var buf bytes.Buffer
	sink := &ConsoleSink{Writer: &buf}

	entries := []report.Entry{
		{Word: "get", Count: 3, Counted: true},
		{Word: "set", Count: 1, Counted: true},
	}
	require.NoError(t, sink.Write(entries))

	out := buf.String()
	assert.Contains(t, out, "total 4 words, 2 unique")
	assert.Contains(t, out, "get")
	assert.Contains(t, out, "set")

	// Most frequent first.
	assert.Less(t, strings.Index(out, "get"), strings.Index(out, "set"))
}

func TestConsoleSink_UncountedRanksForDisplay(t *testing.T) {
	var buf bytes.Buffer
	sink := &ConsoleSink{Writer: &buf}

	entries := []report.Entry{
		{Word: "x"}, {Word: "y"}, {Word: "x"},
	}
	require.NoError(t, sink.Write(entries))

	out := buf.String()
	assert.Contains(t, out, "total 3 words, 2 unique")
	assert.Less(t, strings.Index(out, "x"), strings.Index(out, "y"),
		"unranked entries are counted for display, most common first")
}

func TestConsoleSink_Limit(t *testing.T) {
	var buf bytes.Buffer
	sink := &ConsoleSink{Writer: &buf, Limit: 1}

	entries := []report.Entry{
		{Word: "first", Count: 2, Counted: true},
		{Word: "second", Count: 1, Counted: true},
	}
	require.NoError(t, sink.Write(entries))

	out := buf.String()
	assert.Contains(t, out, "first")
	assert.NotContains(t, out, "second")
	assert.Contains(t, out, "total 3 words, 2 unique",
		"the summary still covers all entries")
}

func TestConsoleSink_Empty(t *testing.T) {
	var buf bytes.Buffer
	sink := &ConsoleSink{Writer: &buf}

	require.NoError(t, sink.Write(nil))
	assert.Contains(t, buf.String(), "total 0 words, 0 unique")
}

func TestJSONSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	sink := &JSONSink{Path: path}

	entries := []report.Entry{
		{Word: "run", Count: 2, Counted: true},
		{Word: "walk", Count: 1, Counted: true},
	}
	require.NoError(t, sink.Write(entries))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `[["run", 2], ["walk", 1]]`, string(data))
}

func TestJSONSink_Uncounted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	sink := &JSONSink{Path: path}

	require.NoError(t, sink.Write([]report.Entry{{Word: "run"}, {Word: "run"}}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `[["run", ""], ["run", ""]]`, string(data))
}

func TestJSONSink_BadPath(t *testing.T) {
	sink := &JSONSink{Path: filepath.Join(t.TempDir(), "missing", "report.json")}
	assert.Error(t, sink.Write(nil))
}

func TestCSVSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.csv")
	sink := &CSVSink{Path: path}

	entries := []report.Entry{
		{Word: "run", Count: 2, Counted: true},
		{Word: "walk"},
	}
	require.NoError(t, sink.Write(entries))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "run,2\nwalk,\n", string(data))
}
