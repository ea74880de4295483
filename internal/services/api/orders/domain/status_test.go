package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	t.Parallel()

	all := []Status{StatusWaitingPayment, StatusPaid, StatusShipped, StatusDelivered, StatusCanceled}
	allowed := map[[2]Status]bool{
		{StatusWaitingPayment, StatusPaid}:     true,
		{StatusWaitingPayment, StatusCanceled}: true,
		{StatusPaid, StatusShipped}:            true,
		{StatusShipped, StatusDelivered}:       true,
	}
	for _, from := range all {
		for _, to := range all {
			assert.Equal(t, allowed[[2]Status{from, to}], CanTransition(from, to), "%s -> %s", from, to)
		}
	}

	assert.True(t, StatusDelivered.Final())
	assert.True(t, StatusCanceled.Final())
	assert.False(t, StatusPaid.Final())
}
