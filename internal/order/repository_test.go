package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddPrepends(t *testing.T) {
	s := NewService(NewInMemoryRepository(nil))

	s.AddOrder(Order{ID: "ORD-1111", Status: StatusPending})
	s.AddOrder(Order{ID: "ORD-2222", Status: StatusPending})

	list := s.List()
	require.Len(t, list, 2)
	assert.Equal(t, "ORD-2222", list[0].ID)
	assert.Equal(t, "ORD-1111", list[1].ID)
}

func TestUpdateOrderStatusAnyTransition(t *testing.T) {
	s := NewService(NewInMemoryRepository([]Order{{ID: "ORD-1000", Status: StatusDelivered}}))

	assert.True(t, s.UpdateOrderStatus("ORD-1000", StatusPending))
	o, err := s.GetByID("ORD-1000")
	require.NoError(t, err)
	assert.Equal(t, StatusPending, o.Status)
}

func TestUpdateOrderStatusUnknownIsNoop(t *testing.T) {
	s := NewService(NewInMemoryRepository([]Order{{ID: "ORD-1000", Status: StatusShipped}}))
	before := s.List()

	assert.False(t, s.UpdateOrderStatus("ORD-9999", StatusCancelled))
	assert.Equal(t, before, s.List())
}

func TestParseStatus(t *testing.T) {
	for _, st := range AllowedStatuses {
		got, err := ParseStatus(string(st))
		require.NoError(t, err)
		assert.Equal(t, st, got)
	}

	_, err := ParseStatus("Lost")
	assert.ErrorIs(t, err, ErrInvalidStatus)
	_, err = ParseStatus("pending")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestStats(t *testing.T) {
	s := NewService(NewInMemoryRepository([]Order{
		{ID: "ORD-1", Total: 380, Status: StatusPending},
		{ID: "ORD-2", Total: 125.5, Status: StatusShipped},
		{ID: "ORD-3", Total: 40, Status: StatusPending},
	}))

	assert.Equal(t, Stats{TotalSales: 545.5, PendingOrders: 2, ProductCount: 15}, s.Stats(15))
}
