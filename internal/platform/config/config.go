// Package config reads application configuration from environment variables
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"storefront/internal/platform/logger"

	"github.com/shopspring/decimal"
)

// Conf is a namespaced view over environment variables (e.g. "CORE_API_", "ORDERS_")
type Conf struct{ prefix string }

// New creates a root Conf (no prefix)
func New() Conf { return Conf{} }

// Prefix creates a child Conf with an additional prefix
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

func (c Conf) key(k string) string { return c.prefix + k }

func (c Conf) lookup(k string) string { return strings.TrimSpace(os.Getenv(c.key(k))) }

// mustParse fetches a required key and parses it, panicking through the logger on either failure
func mustParse[T any](c Conf, key, kind string, parse func(string) (T, error)) T {
	s := c.lookup(key)
	if s == "" {
		logger.Get().Panic().Str("key", c.key(key)).Msg("missing required env")
	}
	v, err := parse(s)
	if err != nil {
		logger.Get().Panic().Str("key", c.key(key)).Str("value", s).Msg("invalid " + kind + " value")
	}
	return v
}

// mayParse returns def when the key is blank or does not parse; the latter is logged
func mayParse[T any](c Conf, key, kind string, def T, parse func(string) (T, error)) T {
	s := c.lookup(key)
	if s == "" {
		return def
	}
	v, err := parse(s)
	if err != nil {
		logger.Get().Warn().Str("key", c.key(key)).Str("value", s).Msg("invalid " + kind + "; using default")
		return def
	}
	return v
}

func str(s string) (string, error) { return s, nil }

// MustString panics if the key is missing or empty
func (c Conf) MustString(key string) string { return mustParse(c, key, "string", str) }

// MustInt panics if the key is missing or not an int
func (c Conf) MustInt(key string) int { return mustParse(c, key, "int", strconv.Atoi) }

// MustDuration panics if the key is missing or not a duration such as 250ms or 72h
func (c Conf) MustDuration(key string) time.Duration {
	return mustParse(c, key, "duration", time.ParseDuration)
}

// MustPort returns a listen addr like ":4000" after checking the port is 1..65535
func (c Conf) MustPort(key string) string {
	p := mustParse(c, key, "port", strconv.Atoi)
	if p < 1 || p > 65535 {
		logger.Get().Panic().Str("key", c.key(key)).Int("value", p).Msg("invalid TCP port; expected 1..65535")
	}
	return ":" + strconv.Itoa(p)
}

// Require panics unless every key is present
func (c Conf) Require(keys ...string) {
	for _, k := range keys {
		c.MustString(k)
	}
}

// MayString returns the value or def if missing/empty
func (c Conf) MayString(key, def string) string { return mayParse(c, key, "string", def, str) }

// MayInt returns the value or def if missing or invalid
func (c Conf) MayInt(key string, def int) int { return mayParse(c, key, "int", def, strconv.Atoi) }

// MayBool returns the value or def if missing or invalid
func (c Conf) MayBool(key string, def bool) bool {
	return mayParse(c, key, "bool", def, strconv.ParseBool)
}

// MayDuration returns the value or def if missing or invalid
func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	return mayParse(c, key, "duration", def, time.ParseDuration)
}

// MayDecimal returns an exact decimal such as a money threshold, def if missing or invalid
func (c Conf) MayDecimal(key string, def decimal.Decimal) decimal.Decimal {
	return mayParse(c, key, "decimal", def, decimal.NewFromString)
}

// MayCSV splits a comma separated value, dropping blanks; def if nothing remains
func (c Conf) MayCSV(key string, def []string) []string {
	var out []string
	for _, p := range strings.Split(c.lookup(key), ",") {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

// MayEnum returns the value if it is one of allowed (case insensitive), def if empty; panics otherwise
func (c Conf) MayEnum(key, def string, allowed ...string) string {
	v := c.MayString(key, def)
	if v == "" {
		return v
	}
	for _, a := range allowed {
		if strings.EqualFold(v, a) {
			return v
		}
	}
	logger.Get().Panic().Str("key", c.key(key)).Str("value", v).Strs("allowed", allowed).Msg("invalid enum value")
	return ""
}
