package utils

import (
	"main/model"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

func InitValidator() {
	Validate = validator.New()
	Validate.RegisterValidation("activities", ValidateActivitiesRule)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("activities", ValidateActivitiesRule)
	}
}

// ValidateActivitiesRule rejects activity sets with missing or extra keys
// before they ever reach the scoring calculator.
func ValidateActivitiesRule(fl validator.FieldLevel) bool {
	activities, ok := fl.Field().Interface().(model.Activities)
	if !ok {
		return false
	}
	return activities.Valid()
}
