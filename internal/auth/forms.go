// Package auth implements the demo login, sign-up and password change flows.
package auth

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	validate = newValidator()

	// Same looseness as the sign-in page: something@something.something.
	emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)
)

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("loose_email", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	return v
}

// FieldErrors maps a form field name to its user-facing message.
type FieldErrors map[string]string

func (e FieldErrors) Empty() bool { return len(e) == 0 }

// First returns the message of the first failing field in order.
func (e FieldErrors) First(order ...string) string {
	for _, f := range order {
		if msg, ok := e[f]; ok {
			return msg
		}
	}
	return ""
}

const (
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldName            = "name"
	FieldConfirmPassword = "confirmPassword"
)

var loginFieldOrder = []string{FieldEmail, FieldPassword, FieldName, FieldConfirmPassword}

var loginMessages = map[string]map[string]string{
	FieldEmail: {
		"required":    "Email is required",
		"loose_email": "Email is invalid",
	},
	FieldPassword: {
		"required": "Password is required",
		"min":      "Password must be at least 6 characters",
	},
	FieldName: {
		"required": "Name is required",
	},
	FieldConfirmPassword: {
		"required": "Please confirm your password",
		"eqfield":  "Passwords do not match",
	},
}

// LoginForm is the sign-in and sign-up form. Name and ConfirmPassword are
// only checked on sign-up.
type LoginForm struct {
	Email           string
	Password        string
	Name            string
	ConfirmPassword string
}

type signInFields struct {
	Email    string `form:"email" validate:"required,loose_email"`
	Password string `form:"password" validate:"required,min=6"`
}

type signUpFields struct {
	Email           string `form:"email" validate:"required,loose_email"`
	Password        string `form:"password" validate:"required,min=6"`
	Name            string `form:"name" validate:"required"`
	ConfirmPassword string `form:"confirmPassword" validate:"required,eqfield=Password"`
}

// Validate checks the form and returns one message per failing field.
func (f LoginForm) Validate(signUp bool) FieldErrors {
	var err error
	if signUp {
		err = validate.Struct(signUpFields(f))
	} else {
		err = validate.Struct(signInFields{Email: f.Email, Password: f.Password})
	}
	return processValidationErrors(err, loginMessages)
}

// DemoForm is the form pre-filled with the demo credentials.
func DemoForm() LoginForm {
	return LoginForm{Email: DemoEmail, Password: DemoPassword}
}

const (
	msgPasswordFieldsRequired = "All password fields are required."
	msgPasswordTooShort       = "New password must be at least 6 characters."
	msgPasswordMismatch       = "New passwords do not match."
	msgPasswordUnchanged      = "New password cannot be the same as current password."
)

// PasswordChange is the profile screen's change password form.
type PasswordChange struct {
	Current string `form:"current" validate:"required"`
	New     string `form:"new" validate:"required,min=6,nefield=Current"`
	Confirm string `form:"confirm" validate:"required,eqfield=New"`
}

// Validate returns the first problem with the change, or "" when it can be
// submitted. Missing fields are reported before length, length before a
// mismatch and a mismatch before reuse of the current password.
func (p PasswordChange) Validate() string {
	err := validate.Struct(p)
	if err == nil {
		return ""
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	tags := make(map[string]string, len(verrs))
	for _, ve := range verrs {
		tags[ve.Field()] = ve.Tag()
		if ve.Tag() == "required" {
			return msgPasswordFieldsRequired
		}
	}
	switch {
	case tags["new"] == "min":
		return msgPasswordTooShort
	case tags["confirm"] == "eqfield":
		return msgPasswordMismatch
	case tags["new"] == "nefield":
		return msgPasswordUnchanged
	}
	return err.Error()
}

// processValidationErrors turns validator errors into messages keyed by
// field, looking each field and tag up in messages.
func processValidationErrors(err error, messages map[string]map[string]string) FieldErrors {
	out := FieldErrors{}
	if err == nil {
		return out
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["form"] = err.Error()
		return out
	}
	for _, ve := range verrs {
		msg, ok := messages[ve.Field()][ve.Tag()]
		if !ok {
			msg = ve.Error()
		}
		out[ve.Field()] = msg
	}
	return out
}
