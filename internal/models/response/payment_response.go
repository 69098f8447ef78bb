package response

import "time"

// PaymentStatusResponse is the derived payment state of one home for one month.
// A home without a stored record is reported as unpaid with no paid date.
type PaymentStatusResponse struct {
	ID              uint       `json:"id,omitempty" example:"12"`
	HomeID          int        `json:"home_id" example:"101"`
	Month           int        `json:"month" example:"10"`
	Year            int        `json:"year" example:"2026"`
	Status          string     `json:"status" example:"paid"`
	PaidDate        *time.Time `json:"paid_date"`
	CollectedAmount int64      `json:"collected_amount" example:"200"`
}

// HomePaymentResponse merges a home with its derived payment state for a period
type HomePaymentResponse struct {
	HomeID          int        `json:"home_id" example:"101"`
	CustomerName    string     `json:"customer_name" example:"Ravi Kumar"`
	Phone           string     `json:"phone" example:"9876543210"`
	SetTopBoxID     string     `json:"set_top_box_id" example:"STB-0101"`
	MonthlyAmount   int64      `json:"monthly_amount" example:"200"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	PaymentStatus   string     `json:"payment_status" example:"unpaid"`
	PaidDate        *time.Time `json:"paid_date"`
	CollectedAmount int64      `json:"collected_amount" example:"0"`
}

// BillingCycleResponse reports the outcome of one billing cycle initialization
type BillingCycleResponse struct {
	Month   int `json:"month" example:"10"`
	Year    int `json:"year" example:"2026"`
	Created int `json:"created" example:"3"`
}
