package validator

import "github.com/go-playground/validator/v10"

var crimeCategories = map[string]struct{}{
	"ROBBERY":       {},
	"FRAUD":         {},
	"CYBERCRIME":    {},
	"SCAM":          {},
	"IMPERSONATION": {},
	"OTHER":         {},
}

func RegisterCustomValidations(validate *validator.Validate) {
	validate.RegisterValidation("lat", validateLat)
	validate.RegisterValidation("lng", validateLng)
	validate.RegisterValidation("crime_category", validateCrimeCategory)
}

func validateLat(fl validator.FieldLevel) bool {
	lat := fl.Field().Float()
	return lat >= -90.0 && lat <= 90.0
}

func validateLng(fl validator.FieldLevel) bool {
	lng := fl.Field().Float()
	return lng >= -180.0 && lng <= 180.0
}

func validateCrimeCategory(fl validator.FieldLevel) bool {
	_, ok := crimeCategories[fl.Field().String()]
	return ok
}
