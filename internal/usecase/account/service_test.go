package account

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paydesk/transfer-service/internal/adapter/storage/memory"
	"github.com/paydesk/transfer-service/internal/domain"
)

func TestService_Open(t *testing.T) {
	svc := NewService(memory.NewStore())

	acc, err := svc.Open(context.Background(), OpenAccountInput{
		ID:             "acc-1",
		InitialBalance: decimal.NewFromInt(1000),
	})

	require.NoError(t, err)
	assert.Equal(t, "acc-1", acc.ID())
	assert.True(t, acc.Balance().Equal(decimal.NewFromInt(1000)))
}

func TestService_Open_Duplicate(t *testing.T) {
	svc := NewService(memory.NewStore())
	ctx := context.Background()

	_, err := svc.Open(ctx, OpenAccountInput{ID: "acc-1", InitialBalance: decimal.NewFromInt(100)})
	require.NoError(t, err)

	_, err = svc.Open(ctx, OpenAccountInput{ID: "acc-1", InitialBalance: decimal.Zero})
	assert.ErrorIs(t, err, domain.ErrDuplicateAccount)
}

func TestService_Open_Invalid(t *testing.T) {
	svc := NewService(memory.NewStore())
	ctx := context.Background()

	_, err := svc.Open(ctx, OpenAccountInput{ID: "", InitialBalance: decimal.NewFromInt(100)})
	assert.ErrorIs(t, err, domain.ErrEmptyAccountID)

	_, err = svc.Open(ctx, OpenAccountInput{ID: "acc-1", InitialBalance: decimal.NewFromInt(-10)})
	assert.ErrorIs(t, err, domain.ErrNegativeBalance)
}

func TestService_Get(t *testing.T) {
	svc := NewService(memory.NewStore())
	ctx := context.Background()

	created, err := svc.Open(ctx, OpenAccountInput{ID: "acc-1", InitialBalance: decimal.NewFromInt(100)})
	require.NoError(t, err)

	got, err := svc.Get(ctx, "acc-1")
	require.NoError(t, err)
	assert.Same(t, created, got)

	_, err = svc.Get(ctx, "ghost")
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}
