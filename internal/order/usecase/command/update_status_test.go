package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cratespace/cratespace/internal/order/domain"
)

func TestUpdateStatus_LegalTransition(t *testing.T) {
	repo := newMockOrderRepo()
	handler := NewUpdateStatusHandler(repo)
	id := placeTestOrder(t, repo, domain.StatusPending)

	require.NoError(t, handler.Handle(context.Background(), UpdateStatusCommand{OrderID: id, Status: "Confirmed"}))
	require.NoError(t, handler.Handle(context.Background(), UpdateStatusCommand{OrderID: id, Status: "Shipped"}))
	require.NoError(t, handler.Handle(context.Background(), UpdateStatusCommand{OrderID: id, Status: "Delivered"}))

	order, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDelivered, order.Status)
}

func TestUpdateStatus_IllegalTransition(t *testing.T) {
	repo := newMockOrderRepo()
	handler := NewUpdateStatusHandler(repo)
	id := placeTestOrder(t, repo, domain.StatusPending)

	// Pending cannot jump straight to Shipped
	err := handler.Handle(context.Background(), UpdateStatusCommand{OrderID: id, Status: "Shipped"})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	order, findErr := repo.FindByID(context.Background(), id)
	require.NoError(t, findErr)
	assert.Equal(t, domain.StatusPending, order.Status)
}

func TestUpdateStatus_TerminalStatusFrozen(t *testing.T) {
	repo := newMockOrderRepo()
	handler := NewUpdateStatusHandler(repo)

	for _, terminal := range []domain.Status{domain.StatusDelivered, domain.StatusCancelled} {
		id := placeTestOrder(t, repo, terminal)
		err := handler.Handle(context.Background(), UpdateStatusCommand{OrderID: id, Status: "Pending"})
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	}
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	repo := newMockOrderRepo()
	handler := NewUpdateStatusHandler(repo)
	id := placeTestOrder(t, repo, domain.StatusPending)

	err := handler.Handle(context.Background(), UpdateStatusCommand{OrderID: id, Status: "Completed"})
	assert.ErrorIs(t, err, domain.ErrUnknownStatus)
}

func TestUpdateStatus_OrderNotFound(t *testing.T) {
	repo := newMockOrderRepo()
	handler := NewUpdateStatusHandler(repo)

	err := handler.Handle(context.Background(), UpdateStatusCommand{OrderID: 42, Status: "Confirmed"})
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}
