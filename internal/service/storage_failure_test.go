package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"cablepay-be-svc/internal/models"
	"cablepay-be-svc/internal/repository"
	"cablepay-be-svc/pkg/logger"
)

var errDBDown = errors.New("connection refused")

func fixedClock() time.Time {
	return time.Date(2026, time.October, 18, 10, 30, 0, 0, time.UTC)
}

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestRunCycleInitCountsInsertedRows(t *testing.T) {
	db, mock := newMockDB(t)
	billing := NewBillingService(repository.NewPaymentRepository(db), logger.Discard(), fixedClock)

	mock.ExpectExec("INSERT INTO payments").
		WithArgs(10, 2026, models.PaymentStatusUnpaid, sqlmock.AnyArg(), sqlmock.AnyArg(), 10, 2026).
		WillReturnResult(sqlmock.NewResult(0, 3))

	res, err := billing.RunCycleInit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, res.Created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunCycleInitPropagatesStorageFailure(t *testing.T) {
	db, mock := newMockDB(t)
	billing := NewBillingService(repository.NewPaymentRepository(db), logger.Discard(), fixedClock)

	mock.ExpectExec("INSERT INTO payments").WillReturnError(errDBDown)

	_, err := billing.RunCycleInit(context.Background())
	assert.ErrorIs(t, err, ErrStorage)
	assert.ErrorIs(t, err, errDBDown)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkUnpaidPropagatesStorageFailure(t *testing.T) {
	db, mock := newMockDB(t)
	payments := NewPaymentService(repository.NewPaymentRepository(db), repository.NewHomeRepository(db), nil, logger.Discard(), fixedClock)

	mock.ExpectExec(`UPDATE "payments"`).WillReturnError(errDBDown)

	_, err := payments.MarkUnpaid(context.Background(), 101, 10, 2026)
	assert.ErrorIs(t, err, ErrStorage)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByPeriodPropagatesStorageFailure(t *testing.T) {
	db, mock := newMockDB(t)
	payments := NewPaymentService(repository.NewPaymentRepository(db), repository.NewHomeRepository(db), nil, logger.Discard(), fixedClock)

	mock.ExpectQuery(`SELECT \* FROM "homes"`).WillReturnError(errDBDown)

	_, err := payments.ListByPeriod(context.Background(), PaymentFilter{Month: 10, Year: 2026})
	assert.ErrorIs(t, err, ErrStorage)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkPaidFallsBackToUpdateOnDuplicateInsert(t *testing.T) {
	updates := 0
	var created *models.Payment
	paymentRepo := &fakePaymentRepo{
		updatePayment: func(_ context.Context, homeID, month, year int, fields map[string]interface{}) (int64, error) {
			updates++
			if updates == 1 {
				return 0, nil
			}
			assert.Equal(t, models.PaymentStatusPaid, fields["status"])
			return 1, nil
		},
		createPayment: func(_ context.Context, p *models.Payment) error {
			created = p
			return gorm.ErrDuplicatedKey
		},
		findPayment: func(_ context.Context, homeID, month, year int) (*models.Payment, error) {
			paid := fixedClock()
			return &models.Payment{ID: 7, HomeID: homeID, Month: month, Year: year,
				Status: models.PaymentStatusPaid, PaidDate: &paid, CollectedAmount: 200}, nil
		},
	}
	homeRepo := &fakeHomeRepo{
		getHome: func(_ context.Context, homeID int) (*models.Home, error) {
			return &models.Home{HomeID: homeID, MonthlyAmount: 200}, nil
		},
	}

	svc := NewPaymentService(paymentRepo, homeRepo, nil, logger.Discard(), fixedClock)
	res, err := svc.MarkPaid(context.Background(), 101, 10, 2026)
	require.NoError(t, err)

	assert.Equal(t, 2, updates)
	require.NotNil(t, created)
	assert.Equal(t, int64(200), created.CollectedAmount)
	assert.Equal(t, uint(7), res.ID)
	assert.Equal(t, int64(200), res.CollectedAmount)
}

func TestMarkPaidStorageFailures(t *testing.T) {
	homeRepo := &fakeHomeRepo{
		getHome: func(_ context.Context, homeID int) (*models.Home, error) {
			return &models.Home{HomeID: homeID, MonthlyAmount: 200}, nil
		},
	}

	t.Run("home lookup", func(t *testing.T) {
		failing := &fakeHomeRepo{
			getHome: func(context.Context, int) (*models.Home, error) { return nil, errDBDown },
		}
		svc := NewPaymentService(&fakePaymentRepo{}, failing, nil, logger.Discard(), fixedClock)
		_, err := svc.MarkPaid(context.Background(), 101, 10, 2026)
		assert.ErrorIs(t, err, ErrStorage)
	})

	t.Run("insert", func(t *testing.T) {
		paymentRepo := &fakePaymentRepo{
			updatePayment: func(context.Context, int, int, int, map[string]interface{}) (int64, error) { return 0, nil },
			createPayment: func(context.Context, *models.Payment) error { return errDBDown },
		}
		svc := NewPaymentService(paymentRepo, homeRepo, nil, logger.Discard(), fixedClock)
		_, err := svc.MarkPaid(context.Background(), 101, 10, 2026)
		assert.ErrorIs(t, err, ErrStorage)
		assert.ErrorIs(t, err, errDBDown)
	})

	t.Run("home not found", func(t *testing.T) {
		missing := &fakeHomeRepo{
			getHome: func(context.Context, int) (*models.Home, error) { return nil, gorm.ErrRecordNotFound },
		}
		svc := NewPaymentService(&fakePaymentRepo{}, missing, nil, logger.Discard(), fixedClock)
		_, err := svc.MarkPaid(context.Background(), 101, 10, 2026)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.False(t, errors.Is(err, ErrStorage))
	})
}

func TestHomeServiceStorageFailures(t *testing.T) {
	homeRepo := &fakeHomeRepo{
		createHome: func(context.Context, *models.Home, *models.Payment) error { return errDBDown },
		listHomes:  func(context.Context) ([]*models.Home, error) { return nil, errDBDown },
		deleteHome: func(context.Context, int) (bool, error) { return false, errDBDown },
	}
	svc := NewHomeService(homeRepo, &fakePaymentRepo{}, logger.Discard(), fixedClock)
	ctx := context.Background()

	_, err := svc.CreateHome(ctx, &CreateHomeRequest{HomeID: 1, CustomerName: "A", Phone: "1", SetTopBoxID: "S", MonthlyAmount: 1})
	assert.ErrorIs(t, err, ErrStorage)
	_, err = svc.ListHomes(ctx)
	assert.ErrorIs(t, err, ErrStorage)
	assert.ErrorIs(t, svc.DeleteHome(ctx, 1), ErrStorage)
}
