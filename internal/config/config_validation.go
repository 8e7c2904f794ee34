// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// validate checks that the final merged [StructuredConfig] satisfies the
// `validate` struct tags. Each failing field is reported wrapped in the
// sentinel error of its group.
//
// The backend URL itself is deliberately left unchecked.
func (cfg *StructuredConfig) validate() error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return fmt.Errorf("error validating config: %w", err)
	}

	var joined error
	for _, fieldErr := range validationErrs {
		joined = errors.Join(joined, fmt.Errorf("%w: %s failed on %q",
			groupError(fieldErr.StructNamespace()), fieldErr.Field(), fieldErr.Tag()))
	}

	return joined
}

func groupError(namespace string) error {
	switch {
	case strings.HasPrefix(namespace, "StructuredConfig.Server."):
		return ErrInvalidServerConfigs
	case strings.HasPrefix(namespace, "StructuredConfig.Log."):
		return ErrInvalidLogConfigs
	default:
		return ErrInvalidConfigs
	}
}
