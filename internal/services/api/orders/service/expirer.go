package service

import (
	"context"
	"time"

	"storefront/internal/platform/logger"
)

// Run cancels unpaid orders older than the payment window until ctx is done
func (s *Svc) Run(ctx context.Context) error {
	log := logger.Named("orders-expirer")
	every := s.cfg.ExpireEvery
	if every <= 0 {
		every = 5 * time.Minute
	}
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	log.Info().Dur("every", every).Dur("payment_ttl", s.cfg.PaymentTTL).Msg("expirer started")
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			n, err := s.ExpireBefore(ctx, s.now().Add(-s.cfg.PaymentTTL))
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				log.Error().Err(err).Int("expired", n).Msg("expire waiting orders failed")
				continue
			}
			if n > 0 {
				log.Info().Int("expired", n).Msg("expired waiting orders")
			}
		}
	}
}
