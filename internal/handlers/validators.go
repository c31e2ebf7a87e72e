package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/salonledger/salon_ledger_app/internal/core/domain"
)

// RegisterValidators installs custom binding validators. "hhmm" accepts
// wall-clock times like "09:30" and is used by transaction payloads.
func RegisterValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
			_, err := domain.MinutesOfDay(fl.Field().String())
			return err == nil
		})
	}
}
