// Package query reads word lists and query scripts and replays them
// against a trie.
package query

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/shlex"
	"github.com/rskv-p/xtrie/pkg/x_trie"
)

var (
	ErrMalformedQuery = errors.New("malformed query")
	ErrUnknownOp      = errors.New("unknown operation")
)

// Op is a single trie operation in a query script.
type Op byte

const (
	OpInsert   Op = 'i'
	OpContains Op = 'c'
	OpRemove   Op = 'd'
)

func (o Op) String() string {
	switch o {
	case OpInsert:
		return "insert"
	case OpContains:
		return "contains"
	case OpRemove:
		return "remove"
	}
	return fmt.Sprintf("op(%q)", byte(o))
}

// ParseOp accepts the script letters (i, c, d) and the long names.
func ParseOp(s string) (Op, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "i", "insert":
		return OpInsert, nil
	case "c", "contains":
		return OpContains, nil
	case "d", "remove", "delete":
		return OpRemove, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOp, s)
}

// Query is one line of a query script.
type Query struct {
	Word string
	Op   Op
}

// ReadWords reads one word per line. Trailing non-alphanumeric bytes are
// dropped and lines left empty are skipped.
func ReadWords(r io.Reader) ([]string, error) {
	var words []string
	sc := newScanner(r)
	for sc.Scan() {
		w := trimTail(sc.Text())
		if w == "" {
			continue
		}
		words = append(words, w)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read words: %w", err)
	}
	return words, nil
}

// ReadQueries reads `<word> <op>` lines. Blank lines are skipped and each
// word loses its trailing non-alphanumeric bytes, as in ReadWords.
func ReadQueries(r io.Reader) ([]Query, error) {
	var qs []Query
	sc := newScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := trimTail(sc.Text())
		if line == "" {
			continue
		}
		q, err := ParseLine(line)
		if err == nil {
			if q.Word = trimTail(q.Word); q.Word == "" {
				err = fmt.Errorf("%w: empty word", ErrMalformedQuery)
			}
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		qs = append(qs, q)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read queries: %w", err)
	}
	return qs, nil
}

// ParseLine parses a single `<word> <op>` line. The word is kept verbatim,
// terminator included.
func ParseLine(line string) (Query, error) {
	fields, err := shlex.Split(line)
	if err != nil {
		return Query{}, fmt.Errorf("%w: %v", ErrMalformedQuery, err)
	}
	if len(fields) != 2 {
		return Query{}, fmt.Errorf("%w: want <word> <op>, got %d fields", ErrMalformedQuery, len(fields))
	}
	op, err := ParseOp(fields[1])
	if err != nil {
		return Query{}, fmt.Errorf("%w: %w", ErrMalformedQuery, err)
	}
	return Query{Word: fields[0], Op: op}, nil
}

// Apply runs q against t.
func Apply(t x_trie.Trie, q Query) (bool, error) {
	switch q.Op {
	case OpInsert:
		return t.Insert(q.Word)
	case OpContains:
		return t.Contains(q.Word)
	case OpRemove:
		return t.Remove(q.Word)
	}
	return false, fmt.Errorf("%w: %s", ErrUnknownOp, q.Op)
}

// Run applies every query in order and writes one true/false line each.
func Run(t x_trie.Trie, qs []Query, w io.Writer) error {
	bw := bufio.NewWriter(w)
	for i, q := range qs {
		ok, err := Apply(t, q)
		if err != nil {
			return fmt.Errorf("query %d (%s %q): %w", i+1, q.Op, q.Word, err)
		}
		if ok {
			_, err = bw.WriteString("true\n")
		} else {
			_, err = bw.WriteString("false\n")
		}
		if err != nil {
			return err
		}
	}
	return bw.Flush()
}

func newScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	return sc
}

func trimTail(s string) string {
	end := len(s)
	for end > 0 && !isAlnum(s[end-1]) {
		end--
	}
	return s[:end]
}

func isAlnum(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z'
}
