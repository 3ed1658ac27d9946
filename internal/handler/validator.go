package handler

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/domain"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

var (
	validate     *Validator
	validateOnce sync.Once
)

// InitValidator initializes the global validator with the catalog enum tags
func InitValidator() {
	v := validator.New()

	_ = v.RegisterValidation("item_type", validateItemType)
	_ = v.RegisterValidation("effect_type", validateEffectType)
	_ = v.RegisterValidation("action", validateAction)
	_ = v.RegisterValidation("role", validateRole)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	validateOnce.Do(func() {
		if validate == nil {
			InitValidator()
		}
	})
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map
// keyed by lower-cased field name
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
		case "item_type":
			errs[field] = "Must be one of equipment, consumable, currency, crafting_item"
		case "effect_type":
			errs[field] = "Must be one of none, hp, attack, defense"
		case "action":
			errs[field] = "Must be one of consume, equip, unequip, delete"
		case "role":
			errs[field] = "Must be admin or player"
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

func validateItemType(fl validator.FieldLevel) bool {
	_, err := domain.ParseItemType(fl.Field().String())
	return err == nil
}

// validateEffectType accepts an empty value, which means no effect
func validateEffectType(fl validator.FieldLevel) bool {
	_, err := domain.ParseEffectType(fl.Field().String())
	return err == nil
}

func validateAction(fl validator.FieldLevel) bool {
	_, err := domain.ParseAction(fl.Field().String())
	return err == nil
}

// validateRole accepts an empty value, which defaults to player
func validateRole(fl validator.FieldLevel) bool {
	role := fl.Field().String()
	return role == "" || domain.Role(role).Valid()
}
