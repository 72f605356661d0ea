package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	_ = v.RegisterValidation("currency", validateCurrency)
	_ = v.RegisterValidation("pettier", validatePetTier)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a field map without
// leaking internal struct names.
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "currency":
			errs[field] = "Invalid currency"
		case "pettier":
			errs[field] = "Invalid pet tier"
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "excludesall":
			errs[field] = "Contains invalid characters"
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

// ValidCurrencies defines the accepted currency names on the wire.
var ValidCurrencies = map[string]bool{
	"coins":         true,
	"pixie_pouches": true,
	"stardust":      true,
}

func validateCurrency(fl validator.FieldLevel) bool {
	currency := fl.Field().String()
	// Empty is handled by a 'required' tag when the field is mandatory
	if currency == "" {
		return true
	}
	return ValidCurrencies[strings.ToLower(currency)]
}

// ValidPetTiers defines the accepted pet tiers on the wire.
var ValidPetTiers = map[string]bool{
	"common":    true,
	"uncommon":  true,
	"rare":      true,
	"epic":      true,
	"legendary": true,
}

func validatePetTier(fl validator.FieldLevel) bool {
	tier := fl.Field().String()
	if tier == "" {
		return true
	}
	return ValidPetTiers[strings.ToLower(tier)]
}
