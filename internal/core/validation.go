package core

import (
	"github.com/go-playground/validator/v10"
	"gwi.com/neon-marketplace/internal/store"
)

var validate = validator.New()

// Required fields mirror the form labels marked with an asterisk. Values are
// checked for presence only; email format and password strength are not.

type draftRequest struct {
	Name     string `validate:"required"`
	Price    string `validate:"required"`
	Category string `validate:"required"`
}

type registerRequest struct {
	Name     string `validate:"required"`
	Email    string `validate:"required"`
	Phone    string `validate:"required"`
	Password string `validate:"required"`
}

type loginRequest struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

func validateDraft(d store.ProductDraft) error {
	return validate.Struct(draftRequest{Name: d.Name, Price: d.Price, Category: d.Category})
}

func validateRegister(f store.AuthForm) error {
	return validate.Struct(registerRequest{Name: f.Name, Email: f.Email, Phone: f.Phone, Password: f.Password})
}

func validateLogin(f store.AuthForm) error {
	return validate.Struct(loginRequest{Email: f.Email, Password: f.Password})
}
