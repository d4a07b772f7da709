package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

// execute runs the command tree with a quiet config file in dir.
func execute(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	cfg := writeFile(t, dir, "xtrie.json", `{
		"log": {"level": "error", "to_console": false, "to_file": false},
		"bench": {"out_dir": "`+filepath.ToSlash(dir)+`", "dsn": "`+filepath.ToSlash(filepath.Join(dir, "bench.db"))+`"}
	}`)

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--config", cfg}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestRunWritesResults(t *testing.T) {
	dir := t.TempDir()
	words := writeFile(t, dir, "words.txt", "apple$\nbanana$\napp$\n")
	queries := writeFile(t, dir, "queries.txt", "apple$ c\nap$ c\napp$ d\napp$ c\ncherry$ i\ncherry$ c\n")
	result := filepath.Join(dir, "out.txt")

	for _, v := range []string{"1", "2", "3"} {
		out, err := execute(t, dir, "run", "--variant="+v, "-o", result, words, queries)
		require.NoError(t, err, v)
		assert.True(t, strings.HasPrefix(out, "RESULT trie_variant="), out)
		assert.Contains(t, out, "trie_construction_time=")
		assert.Contains(t, out, "query_time=")

		got, err := os.ReadFile(result)
		require.NoError(t, err)
		assert.Equal(t, "true\nfalse\ntrue\nfalse\ntrue\ntrue\n", string(got), v)
	}
}

func TestRunVariantNames(t *testing.T) {
	dir := t.TempDir()
	words := writeFile(t, dir, "words.txt", "a$\n")
	queries := writeFile(t, dir, "queries.txt", "a$ c\n")

	for sel, name := range map[string]string{"1": "vector_trie", "2": "array_trie", "3": "hash_trie", "hashed": "hash_trie"} {
		out, err := execute(t, dir, "run", "--variant="+sel, "-o", filepath.Join(dir, "r.txt"), words, queries)
		require.NoError(t, err, sel)
		assert.Contains(t, out, "RESULT trie_variant="+name+" ", sel)
	}

	_, err := execute(t, dir, "run", "--variant=9", words, queries)
	assert.Error(t, err)
}

func TestRunDefaultResultName(t *testing.T) {
	dir := t.TempDir()
	words := writeFile(t, dir, "small.txt", "x$\n")
	queries := writeFile(t, dir, "q.txt", "x$ c\n")

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(wd)

	_, err = execute(t, dir, "run", words, queries)
	require.NoError(t, err)
	got, err := os.ReadFile(filepath.Join(dir, "result_small.txt.txt"))
	require.NoError(t, err)
	assert.Equal(t, "true\n", string(got))
}

func TestRunFailures(t *testing.T) {
	dir := t.TempDir()
	queries := writeFile(t, dir, "queries.txt", "a$ c\n")

	dup := writeFile(t, dir, "dup.txt", "same$\nsame$\n")
	_, err := execute(t, dir, "run", "-o", filepath.Join(dir, "r.txt"), dup, queries)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already present")

	bad := writeFile(t, dir, "bad.txt", "not-ok$\n")
	_, err = execute(t, dir, "run", "-o", filepath.Join(dir, "r.txt"), bad, queries)
	assert.Error(t, err)

	words := writeFile(t, dir, "words.txt", "a$\n")
	malformed := writeFile(t, dir, "malformed.txt", "a$ c\nlonely\n")
	_, err = execute(t, dir, "run", "-o", filepath.Join(dir, "r.txt"), words, malformed)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")

	_, err = execute(t, dir, "run", filepath.Join(dir, "missing.txt"), queries)
	assert.Error(t, err)
}

func TestCheck(t *testing.T) {
	out, err := execute(t, t.TempDir(), "check", "--words", "50", "--queries", "400", "--max-len", "6", "--seed", "7")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "OK operations=450 words="), out)
}

func TestDump(t *testing.T) {
	dir := t.TempDir()
	words := writeFile(t, dir, "words.txt", "bb$\na$\nab$\n")

	out, err := execute(t, dir, "dump", "--words", "--variant", "listed", words)
	require.NoError(t, err)
	assert.Equal(t, "a\nab\nbb\n", out)

	out, err = execute(t, dir, "dump", words)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestBench(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, dir, "bench", "-e", "length", "--runs", "1", "--scale", "0.002", "--store")
	require.NoError(t, err)
	assert.Contains(t, out, "run_id=")

	data, err := os.ReadFile(filepath.Join(dir, "experiment_word_length_results.csv"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 1+3*3, "header plus one row per case and layout")
	assert.True(t, strings.HasPrefix(lines[0], "WordRange,"))

	_, err = os.Stat(filepath.Join(dir, "bench.db"))
	assert.NoError(t, err)

	_, err = execute(t, dir, "bench", "-e", "nope")
	assert.Error(t, err)

	_, err = execute(t, dir, "bench", "--scale", "2")
	assert.Error(t, err)
}

func TestBenchPlot(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, dir, "bench", "--plot", "--runs", "1", "--scale", "0.001", "--store")
	require.NoError(t, err)
	assert.Contains(t, out, "word_length_construction_time")

	for file, header := range map[string]string{
		"plot_word_length_construction_time.csv": "word_length,variant,construction_time_ns",
		"plot_word_length_construction_size.csv": "word_length,variant,construction_size",
	} {
		data, err := os.ReadFile(filepath.Join(dir, file))
		require.NoError(t, err, file)
		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		assert.Equal(t, header, lines[0])
		assert.Len(t, lines, 1+8*3)
		assert.True(t, strings.HasPrefix(lines[1], "4,VectorTrie,"), lines[1])
	}
	_, err = os.Stat(filepath.Join(dir, "experiment_word_length_results.csv"))
	assert.True(t, os.IsNotExist(err), "plot mode skips the experiments")

	_, err = execute(t, dir, "bench", "--plot=nope")
	assert.Error(t, err)
}

func TestQueryNeedsWord(t *testing.T) {
	_, err := execute(t, t.TempDir(), "query", "--nats", "nats://127.0.0.1:1", "contains")
	assert.Error(t, err)
}
