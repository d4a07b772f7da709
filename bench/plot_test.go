package bench

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rskv-p/xtrie/pkg/x_trie"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plotByName(t *testing.T, name string) Plot {
	t.Helper()
	for _, p := range Plots() {
		if p.Name == name {
			return p
		}
	}
	t.Fatalf("no plot %q", name)
	return Plot{}
}

func TestPlotSweeps(t *testing.T) {
	wl := plotByName(t, "word_length_construction_time")
	assert.Equal(t, "plot_word_length_construction_time.csv", wl.File)
	assert.Equal(t, []string{"word_length", "variant", "construction_time_ns"}, wl.Header)
	require.Len(t, wl.Points, 8)
	for i, pt := range wl.Points {
		assert.Equal(t, 4*(i+1), pt.Spec.MinLen)
		assert.Equal(t, pt.Spec.MinLen, pt.Spec.MaxLen, "fixed length")
		assert.Equal(t, 200000, pt.Spec.NumWords)
		assert.Zero(t, pt.Spec.Inserts+pt.Spec.Contains+pt.Spec.Removes)
	}
	assert.Equal(t, 1, plotByName(t, "word_length_construction_size").Runs)

	mix := plotByName(t, "operation_mix")
	require.Len(t, mix.Points, 21)
	last := mix.Points[20].Spec
	assert.Equal(t, 300000, last.Contains)
	assert.Zero(t, last.Inserts+last.Removes)

	iso := plotByName(t, "operation_isolation")
	require.Len(t, iso.Points, 30)
	assert.Equal(t, []string{"Remove", "10000"}, iso.Points[10].Keys)
	assert.Equal(t, 10000, iso.Points[10].Spec.Removes)

	fill := plotByName(t, "fill_factor_contains")
	assert.Equal(t, "plot_fill_factor_contains.csv", fill.File)
	for _, pt := range fill.Points {
		assert.Equal(t, 100000, pt.Spec.Contains)
		assert.Zero(t, pt.Spec.Inserts+pt.Spec.Removes)
	}
}

func TestSelectPlots(t *testing.T) {
	def, err := SelectPlots("")
	require.NoError(t, err)
	require.Len(t, def, 2)
	assert.Equal(t, "word_length_construction_time", def[0].Name)
	assert.Equal(t, "word_length_construction_size", def[1].Name)

	all, err := SelectPlots("all")
	require.NoError(t, err)
	assert.Len(t, all, len(Plots()))

	some, err := SelectPlots("fill_factor, instance_size, fill_factor_insert")
	require.NoError(t, err)
	assert.Len(t, some, 4)

	_, err = SelectPlots("word_len")
	assert.ErrorIs(t, err, ErrUnknownPlot)
}

func TestPlotVariant(t *testing.T) {
	assert.Equal(t, "VectorTrie", PlotVariant(Result{Variant: x_trie.VariantListed}))
	assert.Equal(t, "ArrayTrie", PlotVariant(Result{Variant: x_trie.VariantIndexed}))
	assert.Equal(t, "HashTrie", PlotVariant(Result{Variant: x_trie.VariantHashed}))
}

func TestRunnerPlotWordLength(t *testing.T) {
	r := NewRunner(1, 3, zerolog.Nop())
	r.Scale = 0.001
	dir := t.TempDir()

	for _, p := range []Plot{plotByName(t, "word_length_construction_size"), plotByName(t, "word_length_construction_time")} {
		p.Runs = 1
		rows, err := r.Plot(context.Background(), p)
		require.NoError(t, err)
		require.Len(t, rows, 8*3)
		assert.Equal(t, []string{"4"}, rows[0].Keys)
		assert.Equal(t, x_trie.VariantHashed, rows[2].Variant)

		path, err := SavePlotCSV(dir, p, rows)
		require.NoError(t, err)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		require.Len(t, lines, 1+8*3)
		assert.Equal(t, strings.Join(p.Header, ","), lines[0])
		assert.True(t, strings.HasPrefix(lines[1], "4,VectorTrie,"), lines[1])
		assert.True(t, strings.HasPrefix(lines[24], "32,HashTrie,"), lines[24])
	}

	_, err := os.Stat(filepath.Join(dir, "plot_word_length_construction_time.csv"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "plot_word_length_construction_size.csv"))
	assert.NoError(t, err)
}

func TestWritePlotCSVIsolation(t *testing.T) {
	p := plotByName(t, "operation_isolation")
	p.Points = p.Points[:1]
	r := NewRunner(1, 1, zerolog.Nop())
	r.Scale = 0.001

	rows, err := r.Plot(context.Background(), p)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	var buf bytes.Buffer
	require.NoError(t, WritePlotCSV(&buf, p, rows))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, "operation_type,query_count,variant,construction_time_ns,query_time_ns,final_size", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "Insert,10000,VectorTrie,"), lines[1])
	assert.Len(t, strings.Split(lines[3], ","), 6)

	flat := p.Rows(rows)
	assert.Equal(t, "Insert 10000", flat[0].Param)
	assert.Equal(t, "operation_isolation", flat[0].Experiment)
}

func TestRunnerPlotCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewRunner(1, 1, zerolog.Nop()).Plot(ctx, plotByName(t, "instance_size"))
	assert.ErrorIs(t, err, context.Canceled)
}
