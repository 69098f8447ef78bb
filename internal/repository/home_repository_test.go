package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cablepay-be-svc/internal/models"
	"cablepay-be-svc/internal/testutil"
)

func newHome(homeID int) *models.Home {
	return &models.Home{
		HomeID:        homeID,
		CustomerName:  "Asha",
		Phone:         "9000000001",
		SetTopBoxID:   "STB-1",
		MonthlyAmount: 200,
	}
}

func TestHomeRepository_CreateHomeSeedsPayment(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewHomeRepository(db)
	payments := NewPaymentRepository(db)
	ctx := context.Background()

	seed := &models.Payment{Month: 10, Year: 2026, Status: models.PaymentStatusUnpaid}
	require.NoError(t, repo.CreateHome(ctx, newHome(202), seed))

	home, err := repo.GetHomeByHomeID(ctx, 202)
	require.NoError(t, err)
	assert.Equal(t, "Asha", home.CustomerName)

	payment, err := payments.FindPayment(ctx, 202, 10, 2026)
	require.NoError(t, err)
	require.NotNil(t, payment)
	assert.Equal(t, models.PaymentStatusUnpaid, payment.Status)
}

func TestHomeRepository_CreateDuplicateRollsBack(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewHomeRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.CreateHome(ctx, newHome(202), &models.Payment{Month: 10, Year: 2026, Status: models.PaymentStatusUnpaid}))

	dup := newHome(202)
	dup.CustomerName = "Someone Else"
	err := repo.CreateHome(ctx, dup, &models.Payment{Month: 10, Year: 2026, Status: models.PaymentStatusUnpaid})
	require.Error(t, err)
	assert.True(t, IsDuplicateKey(err))

	home, err := repo.GetHomeByHomeID(ctx, 202)
	require.NoError(t, err)
	assert.Equal(t, "Asha", home.CustomerName)
}

func TestHomeRepository_GetMissing(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewHomeRepository(db)

	_, err := repo.GetHomeByHomeID(context.Background(), 999)
	assert.True(t, IsNotFound(err))
}

func TestHomeRepository_ListOrdered(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewHomeRepository(db)
	ctx := context.Background()

	for _, id := range []int{303, 101, 202} {
		require.NoError(t, repo.CreateHome(ctx, newHome(id), nil))
	}

	homes, err := repo.ListHomes(ctx)
	require.NoError(t, err)
	require.Len(t, homes, 3)
	assert.Equal(t, []int{101, 202, 303}, []int{homes[0].HomeID, homes[1].HomeID, homes[2].HomeID})
}

func TestHomeRepository_UpdateHome(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewHomeRepository(db)
	ctx := context.Background()
	require.NoError(t, repo.CreateHome(ctx, newHome(101), nil))

	rows, err := repo.UpdateHome(ctx, 101, map[string]interface{}{"monthly_amount": int64(350), "phone": "9111111111"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	home, err := repo.GetHomeByHomeID(ctx, 101)
	require.NoError(t, err)
	assert.Equal(t, int64(350), home.MonthlyAmount)
	assert.Equal(t, "9111111111", home.Phone)

	rows, err = repo.UpdateHome(ctx, 999, map[string]interface{}{"phone": "1"})
	require.NoError(t, err)
	assert.Equal(t, int64(0), rows)
}

func TestHomeRepository_DeleteCascadesPayments(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewHomeRepository(db)
	payments := NewPaymentRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.CreateHome(ctx, newHome(101), &models.Payment{Month: 10, Year: 2026, Status: models.PaymentStatusUnpaid}))
	require.NoError(t, payments.CreatePayment(ctx, &models.Payment{HomeID: 101, Month: 11, Year: 2026, Status: models.PaymentStatusPaid}))
	require.NoError(t, repo.CreateHome(ctx, newHome(102), &models.Payment{Month: 10, Year: 2026, Status: models.PaymentStatusUnpaid}))

	deleted, err := repo.DeleteHome(ctx, 101)
	require.NoError(t, err)
	assert.True(t, deleted)

	for _, month := range []int{10, 11} {
		p, err := payments.FindPayment(ctx, 101, month, 2026)
		require.NoError(t, err)
		assert.Nil(t, p)
	}

	other, err := payments.FindPayment(ctx, 102, 10, 2026)
	require.NoError(t, err)
	assert.NotNil(t, other)

	deleted, err = repo.DeleteHome(ctx, 101)
	require.NoError(t, err)
	assert.False(t, deleted)
}
