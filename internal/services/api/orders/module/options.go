package module

import (
	"time"

	"storefront/internal/platform/config"
	"storefront/internal/services/api/orders/service"

	"github.com/shopspring/decimal"
)

// Options controls order payment expiry, locking and the per order total cap
type Options struct {
	PaymentTTL  time.Duration
	ExpireEvery time.Duration
	ExpireBatch int
	LockTimeout time.Duration
	MaxTotal    decimal.Decimal
}

// FromConfig reads with the ORDERS_ prefix
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("ORDERS_")
	return Options{
		PaymentTTL:  c.MayDuration("PAYMENT_TTL", 72*time.Hour),
		ExpireEvery: c.MayDuration("EXPIRE_EVERY", 5*time.Minute),
		ExpireBatch: c.MayInt("EXPIRE_BATCH", 100),
		LockTimeout: c.MayDuration("LOCK_TIMEOUT", 2*time.Second),
		MaxTotal:    c.MayDecimal("MAX_TOTAL", decimal.NewFromInt(1_000_000)),
	}
}

func (o Options) service() service.Config {
	return service.Config{
		PaymentTTL:  o.PaymentTTL,
		ExpireEvery: o.ExpireEvery,
		ExpireBatch: o.ExpireBatch,
		LockTimeout: o.LockTimeout,
		MaxTotal:    o.MaxTotal,
	}
}
