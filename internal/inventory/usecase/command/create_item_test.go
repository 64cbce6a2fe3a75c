package command

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cratespace/cratespace/internal/inventory/domain"
)

func TestCreateItem_Success(t *testing.T) {
	repo := newMockItemRepo()
	handler := NewCreateItemHandler(repo)

	item, err := handler.Handle(context.Background(), CreateItemCommand{Name: "Widget A", Quantity: 100, Price: 19.99})
	require.NoError(t, err)

	assert.NotZero(t, item.ID)
	assert.Equal(t, "Widget A", item.Name)
	assert.Equal(t, 100, item.Quantity)
	assert.InDelta(t, 19.99, item.Price, 0.001)
	assert.Equal(t, domain.DefaultMinimumQuantity, item.MinimumQuantity)
	assert.False(t, item.LastRestocked.IsZero())
}

func TestCreateItem_ExplicitMinimumQuantity(t *testing.T) {
	repo := newMockItemRepo()
	handler := NewCreateItemHandler(repo)
	minimum := 25

	item, err := handler.Handle(context.Background(), CreateItemCommand{Name: "Widget A", Quantity: 100, Price: 19.99, MinimumQuantity: &minimum})
	require.NoError(t, err)
	assert.Equal(t, 25, item.MinimumQuantity)
}

func TestCreateItem_Validation(t *testing.T) {
	handler := NewCreateItemHandler(newMockItemRepo())
	negative := -1

	cases := []struct {
		name string
		cmd  CreateItemCommand
	}{
		{"empty name", CreateItemCommand{Quantity: 1, Price: 1}},
		{"name too long", CreateItemCommand{Name: strings.Repeat("x", domain.MaxNameLength+1), Quantity: 1, Price: 1}},
		{"negative quantity", CreateItemCommand{Name: "Widget A", Quantity: -1, Price: 1}},
		{"negative price", CreateItemCommand{Name: "Widget A", Quantity: 1, Price: -0.01}},
		{"negative minimum quantity", CreateItemCommand{Name: "Widget A", Quantity: 1, Price: 1, MinimumQuantity: &negative}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := handler.Handle(context.Background(), tc.cmd)
			assert.Error(t, err)
		})
	}
}

func TestCreateItem_DuplicateName(t *testing.T) {
	repo := newMockItemRepo(domain.Item{Name: "Widget A", Quantity: 100, Price: 19.99})
	handler := NewCreateItemHandler(repo)

	_, err := handler.Handle(context.Background(), CreateItemCommand{Name: "Widget A", Quantity: 10, Price: 9.99})
	assert.ErrorIs(t, err, domain.ErrNameConflict)
}
