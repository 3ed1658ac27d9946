package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks struct tags and cross-field rules
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
			}
			return fmt.Errorf("%s: %s", ErrMsgInvalidConfig, strings.Join(fields, ", "))
		}
		return fmt.Errorf("%s: %w", ErrMsgInvalidConfig, err)
	}

	if cfg.OTelEnabled && cfg.OTelEndpoint == "" {
		return fmt.Errorf("%s: %s", ErrMsgInvalidConfig, ErrMsgOTelNeedsEndpoint)
	}

	return nil
}

// Warnings returns non-fatal issues such as example secrets left in place
func Warnings(cfg *Config) []string {
	var warnings []string

	if cfg.DBPassword == ExampleDBPassword {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}

	if cfg.JWTSecret == ExampleJWTSecret {
		warnings = append(warnings, "JWT_SECRET appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}

	if cfg.ForceUnequipOnDelete {
		warnings = append(warnings, "FORCE_UNEQUIP_ON_DELETE is enabled - deleting an unequipped item will still reverse its bonus")
	}

	return warnings
}
