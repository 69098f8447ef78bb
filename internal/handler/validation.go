package handler

import (
	"sync"

	"cablepay-be-svc/internal/models"
	"cablepay-be-svc/internal/service"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// registerValidators adds the custom tags used by request structs to gin's validator
func registerValidators() {
	registerOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			_ = v.RegisterValidation("payment_status", validatePaymentStatus)
		}
	})
}

// validatePaymentStatus accepts all, paid and unpaid
func validatePaymentStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case service.StatusFilterAll, models.PaymentStatusPaid, models.PaymentStatusUnpaid:
		return true
	}
	return false
}
