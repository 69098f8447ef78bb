package models

import (
	"time"
)

// Home represents the homes table: one billable subscriber unit
type Home struct {
	ID            uint      `json:"-" gorm:"primarykey"`
	HomeID        int       `json:"home_id" gorm:"column:home_id;uniqueIndex;not null"`
	CustomerName  string    `json:"customer_name" gorm:"column:customer_name;not null"`
	Phone         string    `json:"phone" gorm:"column:phone;not null"`
	SetTopBoxID   string    `json:"set_top_box_id" gorm:"column:set_top_box_id;not null"`
	MonthlyAmount int64     `json:"monthly_amount" gorm:"column:monthly_amount;not null"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Payments []Payment `json:"-" gorm:"foreignKey:HomeID;references:HomeID;constraint:OnDelete:CASCADE"`
}

// TableName sets the insert table name for Home
func (Home) TableName() string {
	return "homes"
}
