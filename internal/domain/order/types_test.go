//go:build unit

package order_test

import (
	"testing"

	"webmall/internal/domain/order"

	"github.com/stretchr/testify/assert"
)

func TestStatusTransitions(t *testing.T) {
	allowed := map[order.Status][]order.Status{
		order.StatusPending: {order.StatusPaid, order.StatusCancelled},
		order.StatusPaid:    {order.StatusShipped, order.StatusCancelled},
		order.StatusShipped: {order.StatusDelivered},
	}
	all := []order.Status{
		order.StatusPending, order.StatusPaid, order.StatusShipped,
		order.StatusDelivered, order.StatusCancelled,
	}

	for _, from := range all {
		for _, to := range all {
			want := false
			for _, a := range allowed[from] {
				if a == to {
					want = true
				}
			}
			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestNewStatus(t *testing.T) {
	_, err := order.NewStatus("paid")
	assert.NoError(t, err)
	_, err = order.NewStatus("refunded")
	assert.ErrorIs(t, err, order.ErrInvalidStatus)
}
