package config

import (
	"errors"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/virtbuild/guestprep/internal/utils"
)

// ValidateConfig validates the entire configuration and returns all validation errors
func (c *Config) ValidateConfig() error {
	var validationErrors ValidationErrors

	if c.General == nil {
		validationErrors = append(validationErrors, ValidationError{
			FieldPath: "general",
			Message:   "configuration must contain 'general' section",
		})
		return validationErrors
	}

	if err := validate.Struct(c.General); err != nil {
		validationErrors = append(validationErrors, convertValidatorErrors(err, "general")...)
	}

	if c.SSH != nil {
		if err := validate.Struct(c.SSH); err != nil {
			validationErrors = append(validationErrors, convertValidatorErrors(err, "ssh")...)
		}
		if c.SSH.PrivateKey != "" && !utils.Exists(c.SSH.PrivateKey) {
			validationErrors = append(validationErrors, ValidationError{
				FieldPath: "ssh.private_key",
				Message:   "private key file does not exist: " + c.SSH.PrivateKey,
			})
		}
	}

	if c.Fetch != nil {
		if err := validate.Struct(c.Fetch); err != nil {
			validationErrors = append(validationErrors, convertValidatorErrors(err, "fetch")...)
		}
	}

	if c.General.DataDir != "" {
		if fi, err := os.Stat(c.General.DataDir); err == nil && !fi.IsDir() {
			validationErrors = append(validationErrors, ValidationError{
				FieldPath: "general.data_dir",
				Message:   "data_dir exists but is not a directory: " + c.General.DataDir,
			})
		}
	}

	if len(validationErrors) > 0 {
		return validationErrors
	}

	return nil
}

// convertValidatorErrors converts go-playground/validator errors to our ValidationError format
func convertValidatorErrors(err error, fieldPrefix string) ValidationErrors {
	var validationErrors ValidationErrors

	var validatorErrs validator.ValidationErrors
	if errors.As(err, &validatorErrs) {
		for _, e := range validatorErrs {
			fieldPath := fieldPrefix
			if e.Field() != "" {
				// e.Field() returns the TOML tag name because we registered TagNameFunc
				if fieldPrefix != "" {
					fieldPath = fieldPrefix + "." + e.Field()
				} else {
					fieldPath = e.Field()
				}
			}

			validationErrors = append(validationErrors, ValidationError{
				FieldPath: fieldPath,
				Message:   getValidationMessage(e),
			})
		}
	}

	return validationErrors
}
