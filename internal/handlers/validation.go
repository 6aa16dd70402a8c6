package handlers

import (
	"sync"

	"github.com/SscSPs/sales_notes_service/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerValidatorsOnce sync.Once

// salesNoteStatusValidator accepts only the lowercase status literals.
var salesNoteStatusValidator validator.Func = func(fl validator.FieldLevel) bool {
	status, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return domain.SalesNoteStatus(status).IsValid()
}

// RegisterValidators adds the custom binding tags used by the DTOs to gin's validator.
// Safe to call more than once.
func RegisterValidators() {
	registerValidatorsOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			_ = v.RegisterValidation("salesnotestatus", salesNoteStatusValidator)
		}
	})
}
