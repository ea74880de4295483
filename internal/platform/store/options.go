package store

import (
	"storefront/internal/platform/logger"
)

// Option mutates Store during Open
type Option func(*Store) error

// WithLogger sets the logger used by subclients
func WithLogger(log logger.Logger) Option {
	return func(s *Store) error {
		s.Log = log
		return nil
	}
}

// WithPG injects an already built sql seam, used by tests and tools that share a pool
func WithPG(pg TxRunner) Option {
	return func(s *Store) error {
		s.PG = pg
		return nil
	}
}

// WithCH injects an already built clickhouse seam
func WithCH(ch Clickhouse) Option {
	return func(s *Store) error {
		s.CH = ch
		return nil
	}
}
