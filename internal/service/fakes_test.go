package service

import (
	"context"
	"time"

	"cablepay-be-svc/internal/models"
)

type fakeHomeRepo struct {
	createHome func(ctx context.Context, home *models.Home, initial *models.Payment) error
	getHome    func(ctx context.Context, homeID int) (*models.Home, error)
	listHomes  func(ctx context.Context) ([]*models.Home, error)
	updateHome func(ctx context.Context, homeID int, fields map[string]interface{}) (int64, error)
	deleteHome func(ctx context.Context, homeID int) (bool, error)
}

func (f *fakeHomeRepo) CreateHome(ctx context.Context, home *models.Home, initial *models.Payment) error {
	return f.createHome(ctx, home, initial)
}

func (f *fakeHomeRepo) GetHomeByHomeID(ctx context.Context, homeID int) (*models.Home, error) {
	return f.getHome(ctx, homeID)
}

func (f *fakeHomeRepo) ListHomes(ctx context.Context) ([]*models.Home, error) {
	return f.listHomes(ctx)
}

func (f *fakeHomeRepo) UpdateHome(ctx context.Context, homeID int, fields map[string]interface{}) (int64, error) {
	return f.updateHome(ctx, homeID, fields)
}

func (f *fakeHomeRepo) DeleteHome(ctx context.Context, homeID int) (bool, error) {
	return f.deleteHome(ctx, homeID)
}

type fakePaymentRepo struct {
	findPayment   func(ctx context.Context, homeID, month, year int) (*models.Payment, error)
	createPayment func(ctx context.Context, payment *models.Payment) error
	updatePayment func(ctx context.Context, homeID, month, year int, fields map[string]interface{}) (int64, error)
	listByPeriod  func(ctx context.Context, month, year int) ([]*models.Payment, error)
	listByYear    func(ctx context.Context, year int) ([]*models.Payment, error)
	createMissing func(ctx context.Context, month, year int, now time.Time) (int64, error)
}

func (f *fakePaymentRepo) FindPayment(ctx context.Context, homeID, month, year int) (*models.Payment, error) {
	return f.findPayment(ctx, homeID, month, year)
}

func (f *fakePaymentRepo) CreatePayment(ctx context.Context, payment *models.Payment) error {
	return f.createPayment(ctx, payment)
}

func (f *fakePaymentRepo) UpdatePayment(ctx context.Context, homeID, month, year int, fields map[string]interface{}) (int64, error) {
	return f.updatePayment(ctx, homeID, month, year, fields)
}

func (f *fakePaymentRepo) ListPaymentsByPeriod(ctx context.Context, month, year int) ([]*models.Payment, error) {
	return f.listByPeriod(ctx, month, year)
}

func (f *fakePaymentRepo) ListPaymentsByYear(ctx context.Context, year int) ([]*models.Payment, error) {
	return f.listByYear(ctx, year)
}

func (f *fakePaymentRepo) CreateMissingPayments(ctx context.Context, month, year int, now time.Time) (int64, error) {
	return f.createMissing(ctx, month, year, now)
}
