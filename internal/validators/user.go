// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"

	"github.com/MKhiriev/go-vmind/models"
)

// UserValidator validates registration, login and profile input.
type UserValidator struct{}

func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegister(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegister(*value, fields...)

	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)

	case models.ProfileUpdate:
		return v.validateProfileUpdate(value, fields...)
	case *models.ProfileUpdate:
		return v.validateProfileUpdate(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateRegister(req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldUsername, FieldPassword, FieldPhone, FieldObjective, FieldPreferredLanguage}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if isBlank(req.Name) {
				return ErrEmptyName
			}
			if tooLong(req.Name, maxNameLength) {
				return ErrFieldTooLong
			}
		case FieldEmail:
			if !isValidEmail(req.Email) {
				return ErrInvalidEmail
			}
		case FieldUsername:
			if !isValidUsername(req.Username) {
				return ErrInvalidUsername
			}
		case FieldPassword:
			if len(req.Password) < minPasswordLength {
				return ErrInvalidPassword
			}
			if len(req.Password) > maxPasswordLength {
				return ErrFieldTooLong
			}
		case FieldPhone:
			if err := checkOptionalText(req.Phone, maxShortText); err != nil {
				return err
			}
		case FieldObjective:
			if err := checkOptionalText(req.Objective, maxShortText); err != nil {
				return err
			}
		case FieldPreferredLanguage:
			if err := checkOptionalText(req.PreferredLanguage, maxShortText); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateLogin only checks presence: wrong credentials are reported as such,
// not as a validation failure, so the password policy is not applied here.
func (v *UserValidator) validateLogin(req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldLoginPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if isBlank(req.Email) {
				return ErrInvalidEmail
			}
		case FieldLoginPassword:
			if req.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *UserValidator) validateProfileUpdate(update models.ProfileUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldAnyUpdate, FieldName, FieldPhone, FieldObjective, FieldPreferredLanguage}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if update.UserID == "" {
				return ErrInvalidUserID
			}
		case FieldAnyUpdate:
			if update.IsEmpty() {
				return ErrNoFieldsToUpdate
			}
		case FieldName:
			if update.Name != nil && isBlank(*update.Name) {
				return ErrEmptyName
			}
			if err := checkOptionalText(update.Name, maxNameLength); err != nil {
				return err
			}
		case FieldPhone:
			if err := checkOptionalText(update.Phone, maxShortText); err != nil {
				return err
			}
		case FieldObjective:
			if err := checkOptionalText(update.Objective, maxShortText); err != nil {
				return err
			}
		case FieldPreferredLanguage:
			if err := checkOptionalText(update.PreferredLanguage, maxShortText); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
