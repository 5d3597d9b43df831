package utils

import (
	"github.com/tenderly-care/tenderly-backend-sub002/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("consultation_type", validateConsultationType)
	validate.RegisterValidation("shift_type", validateShiftType)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateConsultationType(fl validator.FieldLevel) bool {
	value := constvars.ConsultationType(fl.Field().String())
	for _, known := range constvars.KnownConsultationTypes {
		if value == known {
			return true
		}
	}
	return false
}

func validateShiftType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == constvars.ShiftTypeMorning || value == constvars.ShiftTypeEvening || value == constvars.ShiftTypeCustom
}
