package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"cablepay-be-svc/internal/models"
	"cablepay-be-svc/internal/repository"
	"cablepay-be-svc/internal/testutil"
	"cablepay-be-svc/pkg/logger"
)

// fakeClock is a settable Clock
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

type fixture struct {
	db          *gorm.DB
	clock       *fakeClock
	homeRepo    repository.HomeRepository
	paymentRepo repository.PaymentRepository
	payments    PaymentService
	billing     BillingService
	homes       HomeService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := testutil.NewTestDB(t)
	clock := &fakeClock{t: time.Date(2026, time.October, 18, 10, 30, 0, 0, time.UTC)}
	log := logger.Discard()

	homeRepo := repository.NewHomeRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	return &fixture{
		db:          db,
		clock:       clock,
		homeRepo:    homeRepo,
		paymentRepo: paymentRepo,
		payments:    NewPaymentService(paymentRepo, homeRepo, nil, log, clock.Now),
		billing:     NewBillingService(paymentRepo, log, clock.Now),
		homes:       NewHomeService(homeRepo, paymentRepo, log, clock.Now),
	}
}

func (f *fixture) createHome(t *testing.T, homeID int, amount int64) {
	t.Helper()
	_, err := f.homes.CreateHome(context.Background(), &CreateHomeRequest{
		HomeID:        homeID,
		CustomerName:  "Customer",
		Phone:         "9000000000",
		SetTopBoxID:   "STB",
		MonthlyAmount: amount,
	})
	require.NoError(t, err)
}

// insertHomeOnly stores a home without the seeded current-month record
func (f *fixture) insertHomeOnly(t *testing.T, homeID int, amount int64) {
	t.Helper()
	require.NoError(t, f.homeRepo.CreateHome(context.Background(), &models.Home{
		HomeID:        homeID,
		CustomerName:  "Customer",
		Phone:         "9000000000",
		SetTopBoxID:   "STB",
		MonthlyAmount: amount,
	}, nil))
}

func (f *fixture) countPayments(t *testing.T, homeID, month, year int) int64 {
	t.Helper()
	var count int64
	require.NoError(t, f.db.Model(&models.Payment{}).
		Where("home_id = ? AND month = ? AND year = ?", homeID, month, year).
		Count(&count).Error)
	return count
}
