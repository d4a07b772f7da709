package query

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rskv-p/xtrie/pkg/x_trie"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestReadWords(t *testing.T) {
	in := "apple$\r\nbanana\n\n  \n$$$\ncherry7$ \n"
	words, err := ReadWords(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "banana", "cherry7"}, words)
}

func TestReadQueries(t *testing.T) {
	in := "apple$ i\r\nbanana c\n\n\"pear\" d\ncarrot insert\n"
	qs, err := ReadQueries(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []Query{
		{Word: "apple", Op: OpInsert},
		{Word: "banana", Op: OpContains},
		{Word: "pear", Op: OpRemove},
		{Word: "carrot", Op: OpInsert},
	}, qs)
}

func TestReadQueriesMalformed(t *testing.T) {
	tests := map[string]string{
		"missing op":  "ok i\nlonely\n",
		"unknown op":  "ok i\nword x\n",
		"extra field": "ok i\na b c\n",
		"empty word":  "ok i\n$ c\n",
		"bad quoting": "ok i\n\"open c\n",
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ReadQueries(strings.NewReader(in))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedQuery)
			assert.Contains(t, err.Error(), "line 2")
		})
	}
}

func TestParseLineKeepsWord(t *testing.T) {
	q, err := ParseLine("tree$ i")
	require.NoError(t, err)
	assert.Equal(t, Query{Word: "tree$", Op: OpInsert}, q)

	q, err = ParseLine(`"a b" c`)
	require.NoError(t, err)
	assert.Equal(t, "a b", q.Word)

	_, err = ParseLine("tree$")
	assert.ErrorIs(t, err, ErrMalformedQuery)
}

func TestParseOp(t *testing.T) {
	for in, want := range map[string]Op{"i": OpInsert, "C": OpContains, "d": OpRemove, "delete": OpRemove} {
		got, err := ParseOp(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := ParseOp("q")
	assert.ErrorIs(t, err, ErrUnknownOp)

	assert.Equal(t, "insert", OpInsert.String())
	assert.Equal(t, "remove", OpRemove.String())
	assert.Equal(t, "op('x')", Op('x').String())
}

func TestRunWritesResults(t *testing.T) {
	tr := x_trie.NewListed()
	_, err := tr.Insert("car")
	require.NoError(t, err)

	qs := []Query{
		{Word: "car", Op: OpContains},
		{Word: "cart", Op: OpInsert},
		{Word: "cart", Op: OpInsert},
		{Word: "car", Op: OpRemove},
		{Word: "car", Op: OpContains},
		{Word: "cart", Op: OpContains},
	}
	var out bytes.Buffer
	require.NoError(t, Run(tr, qs, &out))
	assert.Equal(t, "true\ntrue\nfalse\ntrue\nfalse\ntrue\n", out.String())
}

func TestRunStopsOnInvalidWord(t *testing.T) {
	tr := x_trie.NewHashed()
	var out bytes.Buffer
	err := Run(tr, []Query{{Word: "ok", Op: OpInsert}, {Word: "bad-word", Op: OpInsert}}, &out)
	require.Error(t, err)
	assert.ErrorIs(t, err, x_trie.ErrInvalidSymbol)
	assert.Contains(t, err.Error(), "query 2")
}

func TestRunWriteError(t *testing.T) {
	tr := x_trie.NewIndexed()
	err := Run(tr, []Query{{Word: "a", Op: OpInsert}}, failWriter{})
	assert.Error(t, err)
}

func TestApplyUnknownOp(t *testing.T) {
	_, err := Apply(x_trie.NewIndexed(), Query{Word: "a", Op: 'z'})
	assert.ErrorIs(t, err, ErrUnknownOp)
}
