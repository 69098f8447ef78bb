package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cablepay-be-svc/internal/models"
)

func TestMarkPaidThenUnpaid(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.createHome(t, 101, 200)

	paid, err := f.payments.MarkPaid(ctx, 101, 10, 2026)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPaid, paid.Status)
	assert.Equal(t, int64(200), paid.CollectedAmount)
	require.NotNil(t, paid.PaidDate)
	assert.True(t, f.clock.Now().Equal(*paid.PaidDate))

	status, err := f.payments.GetStatus(ctx, 101, 10, 2026)
	require.NoError(t, err)
	assert.Equal(t, paid.Status, status.Status)
	assert.Equal(t, paid.CollectedAmount, status.CollectedAmount)
	require.NotNil(t, status.PaidDate)
	assert.True(t, paid.PaidDate.Equal(*status.PaidDate))

	unpaid, err := f.payments.MarkUnpaid(ctx, 101, 10, 2026)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusUnpaid, unpaid.Status)
	assert.Nil(t, unpaid.PaidDate)
	assert.Equal(t, int64(0), unpaid.CollectedAmount)

	assert.Equal(t, int64(1), f.countPayments(t, 101, 10, 2026))
}

func TestMarkPaidToggleRestampsPaidDate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.createHome(t, 101, 200)

	first, err := f.payments.MarkPaid(ctx, 101, 10, 2026)
	require.NoError(t, err)

	f.clock.Advance(time.Minute)
	_, err = f.payments.MarkUnpaid(ctx, 101, 10, 2026)
	require.NoError(t, err)

	f.clock.Advance(time.Minute)
	again, err := f.payments.MarkPaid(ctx, 101, 10, 2026)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPaid, again.Status)
	require.NotNil(t, again.PaidDate)
	assert.True(t, again.PaidDate.After(*first.PaidDate))

	f.clock.Advance(time.Minute)
	repeated, err := f.payments.MarkPaid(ctx, 101, 10, 2026)
	require.NoError(t, err)
	assert.True(t, repeated.PaidDate.After(*again.PaidDate))

	assert.Equal(t, int64(1), f.countPayments(t, 101, 10, 2026))
}

func TestMarkPaidCreatesRecordForOtherMonths(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.createHome(t, 101, 200)
	f.createHome(t, 102, 300)

	// future and past months have no record until paid
	for _, period := range [][2]int{{12, 2026}, {3, 2025}} {
		assert.Equal(t, int64(0), f.countPayments(t, 101, period[0], period[1]))
		res, err := f.payments.MarkPaid(ctx, 101, period[0], period[1])
		require.NoError(t, err)
		assert.Equal(t, models.PaymentStatusPaid, res.Status)
		assert.Equal(t, int64(1), f.countPayments(t, 101, period[0], period[1]))
	}

	// the current month is unaffected
	list, err := f.payments.ListByPeriod(ctx, PaymentFilter{Month: 10, Year: 2026})
	require.NoError(t, err)
	require.Len(t, list, 2)
	for _, item := range list {
		assert.Equal(t, models.PaymentStatusUnpaid, item.PaymentStatus)
	}
}

func TestMarkPaidUsesCurrentMonthlyAmount(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.createHome(t, 101, 200)

	_, err := f.homes.UpdateHome(ctx, 101, &UpdateHomeRequest{
		CustomerName: "Customer", Phone: "9000000000", SetTopBoxID: "STB", MonthlyAmount: 275,
	})
	require.NoError(t, err)

	res, err := f.payments.MarkPaid(ctx, 101, 10, 2026)
	require.NoError(t, err)
	assert.Equal(t, int64(275), res.CollectedAmount)
}

func TestMarkPaidUnknownHome(t *testing.T) {
	f := newFixture(t)

	_, err := f.payments.MarkPaid(context.Background(), 999, 10, 2026)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMarkUnpaidRequiresExistingRecord(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.createHome(t, 101, 200)

	_, err := f.payments.MarkUnpaid(ctx, 101, 11, 2026)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, int64(0), f.countPayments(t, 101, 11, 2026))

	// a home that does not exist has no record either
	_, err = f.payments.MarkUnpaid(ctx, 999, 10, 2026)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPaymentInputValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	cases := []struct {
		name          string
		homeID, month int
		year          int
	}{
		{"missing home", 0, 10, 2026},
		{"missing month", 101, 0, 2026},
		{"month out of range", 101, 13, 2026},
		{"missing year", 101, 10, 0},
		{"short year", 101, 10, 26},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.payments.MarkPaid(ctx, tc.homeID, tc.month, tc.year)
			assert.ErrorIs(t, err, ErrInvalidInput)
			_, err = f.payments.MarkUnpaid(ctx, tc.homeID, tc.month, tc.year)
			assert.ErrorIs(t, err, ErrInvalidInput)
			_, err = f.payments.GetStatus(ctx, tc.homeID, tc.month, tc.year)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	_, err := f.payments.ListByPeriod(ctx, PaymentFilter{Month: 0, Year: 2026})
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = f.payments.ListByPeriod(ctx, PaymentFilter{Month: 10, Year: 2026, Status: "pending"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetStatusDefaultsToUnpaid(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.createHome(t, 101, 200)

	for _, homeID := range []int{101, 999} {
		status, err := f.payments.GetStatus(ctx, homeID, 5, 2027)
		require.NoError(t, err)
		assert.Equal(t, homeID, status.HomeID)
		assert.Equal(t, models.PaymentStatusUnpaid, status.Status)
		assert.Nil(t, status.PaidDate)
		assert.Equal(t, int64(0), status.CollectedAmount)
	}
}

func TestGetStatusRecomputesCollectedAmount(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.createHome(t, 101, 200)

	_, err := f.payments.MarkPaid(ctx, 101, 10, 2026)
	require.NoError(t, err)

	// a drifted stored value is not reported
	require.NoError(t, f.db.Model(&models.Payment{}).
		Where("home_id = ? AND month = ? AND year = ?", 101, 10, 2026).
		Update("collected_amount", 1).Error)

	status, err := f.payments.GetStatus(ctx, 101, 10, 2026)
	require.NoError(t, err)
	assert.Equal(t, int64(200), status.CollectedAmount)
}

func TestListByPeriodDerivesBeforeFiltering(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.createHome(t, 103, 250)
	f.createHome(t, 101, 200)
	f.insertHomeOnly(t, 102, 300) // no record for the period

	_, err := f.payments.MarkPaid(ctx, 101, 10, 2026)
	require.NoError(t, err)

	all, err := f.payments.ListByPeriod(ctx, PaymentFilter{Month: 10, Year: 2026, Status: "all"})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []int{101, 102, 103}, []int{all[0].HomeID, all[1].HomeID, all[2].HomeID})
	assert.Equal(t, models.PaymentStatusPaid, all[0].PaymentStatus)
	assert.Equal(t, int64(200), all[0].CollectedAmount)
	assert.Equal(t, models.PaymentStatusUnpaid, all[1].PaymentStatus)
	assert.Nil(t, all[1].PaidDate)
	assert.Equal(t, int64(0), all[1].CollectedAmount)

	paid, err := f.payments.ListByPeriod(ctx, PaymentFilter{Month: 10, Year: 2026, Status: models.PaymentStatusPaid})
	require.NoError(t, err)
	require.Len(t, paid, 1)
	assert.Equal(t, 101, paid[0].HomeID)

	unpaid, err := f.payments.ListByPeriod(ctx, PaymentFilter{Month: 10, Year: 2026, Status: models.PaymentStatusUnpaid})
	require.NoError(t, err)
	require.Len(t, unpaid, 2)
	assert.Equal(t, 102, unpaid[0].HomeID)
	assert.Equal(t, 103, unpaid[1].HomeID)
	for _, item := range unpaid {
		assert.NotEqual(t, 101, item.HomeID)
	}
}

func TestListByPeriodDateRange(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.createHome(t, 101, 200)
	f.createHome(t, 102, 300)
	f.createHome(t, 103, 250)

	// 101 paid on the 18th, 102 on the 20th, 103 stays unpaid
	_, err := f.payments.MarkPaid(ctx, 101, 10, 2026)
	require.NoError(t, err)
	f.clock.Advance(48 * time.Hour)
	_, err = f.payments.MarkPaid(ctx, 102, 10, 2026)
	require.NoError(t, err)

	day := func(d int) *time.Time {
		v := time.Date(2026, time.October, d, 0, 0, 0, 0, time.UTC)
		return &v
	}

	cases := []struct {
		name     string
		from, to *time.Time
		want     []int
	}{
		{"inclusive range", day(18), day(20), []int{101, 102}},
		{"to is inclusive to the end of the day", nil, day(18), []int{101}},
		{"from alone is one day", day(20), nil, []int{102}},
		{"range without payments", day(1), day(17), []int{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			list, err := f.payments.ListByPeriod(ctx, PaymentFilter{
				Month: 10, Year: 2026, Status: models.PaymentStatusPaid, From: tc.from, To: tc.to,
			})
			require.NoError(t, err)
			got := []int{}
			for _, item := range list {
				got = append(got, item.HomeID)
			}
			assert.Equal(t, tc.want, got)
		})
	}

	_, err = f.payments.ListByPeriod(ctx, PaymentFilter{Month: 10, Year: 2026, From: day(20), To: day(18)})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
