package pg

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompact(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"select 1":                       "select 1",
		"  select   1  ":                 " select 1 ",
		"SELECT\t*\nFROM\r\tproducts  p": "SELECT * FROM products p",
		"":                               "",
	}
	for in, want := range cases {
		assert.Equal(t, want, compact(in), in)
	}
}

type line struct {
	Level     string          `json:"level"`
	ElapsedMS float64         `json:"elapsed_ms"`
	Slow      bool            `json:"slow"`
	SQL       string          `json:"sql"`
	Args      json.RawMessage `json:"args"`
	Error     string          `json:"error"`
	Message   string          `json:"message"`
	Component string          `json:"component"`
}

func trace(t *testing.T, ev QueryEvent) line {
	t.Helper()
	var buf bytes.Buffer
	// root logger at error must not hide query lines
	Tracer(zerolog.New(&buf).Level(zerolog.ErrorLevel)).OnQuery(context.Background(), ev)

	var l line
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &l), buf.String())
	return l
}

func TestTracer_Levels(t *testing.T) {
	t.Parallel()

	ev := QueryEvent{
		SQL:       "SELECT id \n FROM  products\tWHERE price > $1",
		Args:      []any{10, "x"},
		ElapsedUS: 12345,
		Err:       errors.New("boom"),
	}
	l := trace(t, ev)
	assert.Equal(t, "info", l.Level)
	assert.Equal(t, "pg", l.Component)
	assert.Equal(t, "pg query", l.Message)
	assert.Equal(t, "SELECT id FROM products WHERE price > $1", l.SQL)
	assert.JSONEq(t, `[10,"x"]`, string(l.Args))
	assert.Equal(t, "boom", l.Error)
	assert.InDelta(t, 12.345, l.ElapsedMS, 0.0005)

	ev.Slow = true
	l = trace(t, ev)
	assert.Equal(t, "warn", l.Level)
	assert.True(t, l.Slow)
}

func TestTracer_RedactsPasswordArgs(t *testing.T) {
	t.Parallel()

	l := trace(t, QueryEvent{
		SQL:  "INSERT INTO users (email, password_hash) VALUES ($1, $2)",
		Args: []any{"a@b.c", "$2a$10$secret"},
	})
	assert.Equal(t, `"[redacted]"`, string(l.Args))
	assert.NotContains(t, string(l.Args), "secret")
}
