package x_recover

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/nats-io/nats.go/micro"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	l := zerolog.New(&buf)
	SetLogger(&l)
	t.Cleanup(func() {
		SetLogger(nil)
		OnPanic = nil
	})
	return &buf
}

func TestSafe(t *testing.T) {
	buf := capture(t)

	var hooked string
	OnPanic = func(label string, _ any) { hooked = label }

	assert.True(t, Safe("boom", func() { panic("bad") }))
	assert.Equal(t, "boom", hooked)
	assert.Contains(t, buf.String(), `"label":"boom"`)
	assert.Contains(t, buf.String(), `"panic":"bad"`)
	assert.Contains(t, buf.String(), "stack")

	assert.False(t, Safe("calm", func() {}))
}

func TestGo(t *testing.T) {
	capture(t)
	done := make(chan string, 1)
	OnPanic = func(label string, _ any) { done <- label }

	Go("worker", func() { panic(errors.New("lost")) })
	assert.Equal(t, "worker", <-done)
}

func TestWrap(t *testing.T) {
	capture(t)

	err := Wrap("job", func(context.Context) error { panic("oops") })(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "panic recovered in job: oops")

	sentinel := errors.New("plain")
	err = Wrap("job", func(context.Context) error { return sentinel })(context.Background())
	assert.ErrorIs(t, err, sentinel)
}

type fakeRequest struct {
	micro.Request
	code, desc string
}

func (r *fakeRequest) Subject() string { return "trie.insert" }

func (r *fakeRequest) Error(code, description string, _ []byte, _ ...micro.RespondOpt) error {
	r.code, r.desc = code, description
	return nil
}

func TestHandler(t *testing.T) {
	buf := capture(t)

	req := &fakeRequest{}
	Handler("insert", micro.HandlerFunc(func(micro.Request) { panic("nil node") })).Handle(req)
	assert.Equal(t, "500", req.code)
	assert.Equal(t, "internal error", req.desc)
	assert.Contains(t, buf.String(), `"context":"trie.insert"`)

	req = &fakeRequest{}
	Handler("insert", micro.HandlerFunc(func(micro.Request) {})).Handle(req)
	assert.Empty(t, req.code)
}
