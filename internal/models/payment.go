package models

import (
	"time"
)

// Payment statuses
const (
	PaymentStatusPaid   = "paid"
	PaymentStatusUnpaid = "unpaid"
)

// Payment represents the payments table: the billing state of one home for one calendar month.
// (home_id, month, year) is unique.
type Payment struct {
	ID              uint       `json:"id" gorm:"primarykey"`
	HomeID          int        `json:"home_id" gorm:"column:home_id;not null;uniqueIndex:idx_payments_home_period,priority:1"`
	Month           int        `json:"month" gorm:"column:month;not null;uniqueIndex:idx_payments_home_period,priority:2"`
	Year            int        `json:"year" gorm:"column:year;not null;uniqueIndex:idx_payments_home_period,priority:3"`
	Status          string     `json:"status" gorm:"column:status;not null;default:unpaid"`
	PaidDate        *time.Time `json:"paid_date" gorm:"column:paid_date"`
	CollectedAmount int64      `json:"collected_amount" gorm:"column:collected_amount;not null;default:0"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// TableName sets the insert table name for Payment
func (Payment) TableName() string {
	return "payments"
}

// IsPaid reports whether the record is in the paid state
func (p *Payment) IsPaid() bool {
	return p.Status == PaymentStatusPaid
}
