package pg

import (
	"context"
	"strings"

	"storefront/internal/platform/logger"

	"github.com/rs/zerolog"
)

// QueryEvent is one finished statement as seen by the sql adapter
type QueryEvent struct {
	SQL       string
	Args      any
	ElapsedUS int64
	Err       error
	Slow      bool
}

// QueryTracer receives every statement when SQL logging is on
type QueryTracer interface {
	OnQuery(ctx context.Context, ev QueryEvent)
}

// sensitive columns; statements touching them are logged without args
var sensitive = []string{"password_hash"}

// Tracer logs every query regardless of the process level, slow ones at warn
func Tracer(root logger.Logger) QueryTracer {
	ll := root.Level(zerolog.DebugLevel).With().Str("component", "pg").Logger()
	return &zlTracer{log: ll}
}

type zlTracer struct{ log logger.Logger }

func (z *zlTracer) OnQuery(_ context.Context, ev QueryEvent) {
	evt := z.log.Info()
	if ev.Slow {
		evt = z.log.Warn()
	}

	sql := compact(ev.SQL)
	if redacted(sql) {
		evt = evt.Str("args", "[redacted]")
	} else {
		evt = evt.Interface("args", ev.Args)
	}
	evt.Float64("elapsed_ms", float64(ev.ElapsedUS)/1000.0).
		Bool("slow", ev.Slow).
		Str("sql", sql).
		Err(ev.Err).
		Msg("pg query")
}

func redacted(sql string) bool {
	for _, s := range sensitive {
		if strings.Contains(sql, s) {
			return true
		}
	}
	return false
}

// compact squeezes runs of whitespace into one space
func compact(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	space := false
	for _, r := range s {
		if r == '\n' || r == '\t' || r == '\r' || r == ' ' {
			if !space {
				b.WriteByte(' ')
				space = true
			}
			continue
		}
		space = false
		b.WriteRune(r)
	}
	return b.String()
}
