package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/Valeria-CPaz/app-agendamento/pkg/format"
)

// RegisterCustomRules adds the practice-specific validations (cpf check
// digits, Brazilian phone length) to gin's binding validator. Call once
// at startup.
func RegisterCustomRules() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}

	if err := v.RegisterValidation("cpf", validCPF); err != nil {
		return err
	}
	return v.RegisterValidation("brphone", validPhone)
}

func validCPF(fl validator.FieldLevel) bool {
	return format.IsValidCPF(fl.Field().String())
}

func validPhone(fl validator.FieldLevel) bool {
	return format.IsValidPhone(fl.Field().String())
}
