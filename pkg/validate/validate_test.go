package validate_test

import (
	"testing"

	"github.com/shashiranjanraj/vyapar/pkg/validate"
	"github.com/stretchr/testify/assert"
)

type registerForm struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type productForm struct {
	Name        string   `json:"name"        validate:"required"`
	Description string   `json:"description" validate:"nullable"`
	Price       *float64 `json:"price"       validate:"required,gte=0"`
	VendorID    uint     `json:"vendorId"    validate:"required"`
}

func ptr(f float64) *float64 { return &f }

func TestStructRequired(t *testing.T) {
	errs := validate.Struct(&registerForm{})
	assert.True(t, validate.HasErrors(errs))
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "password")
}

func TestStructEmail(t *testing.T) {
	tests := []struct {
		email string
		ok    bool
	}{
		{"a@x.com", true},
		{"user.name+tag@example.co.uk", true},
		{"not-an-email", false},
		{"@missing.local", false},
		{"trailing@dot.", false},
	}

	for _, tt := range tests {
		errs := validate.Struct(&registerForm{Email: tt.email, Password: "longenough"})
		if tt.ok {
			assert.False(t, validate.HasErrors(errs), "email %q should pass: %v", tt.email, errs)
		} else {
			assert.Contains(t, errs, "email", "email %q should fail", tt.email)
		}
	}
}

func TestStructMinLength(t *testing.T) {
	errs := validate.Struct(&registerForm{Email: "a@x.com", Password: "short"})
	assert.Contains(t, errs, "password")

	errs = validate.Struct(&registerForm{Email: "a@x.com", Password: "exactly6"})
	assert.NotContains(t, errs, "password")
}

func TestStructNumericBounds(t *testing.T) {
	errs := validate.Struct(&productForm{Name: "Paper", Price: ptr(-1), VendorID: 1})
	assert.Contains(t, errs, "price")

	errs = validate.Struct(&productForm{Name: "Paper", Price: ptr(4.99), VendorID: 1})
	assert.False(t, validate.HasErrors(errs), "unexpected errors: %v", errs)
}

func TestStructPointerRequired(t *testing.T) {
	// A nil pointer is absent; a pointer to zero is present and valid.
	errs := validate.Struct(&productForm{Name: "Paper", Price: nil, VendorID: 1})
	assert.Contains(t, errs, "price")

	errs = validate.Struct(&productForm{Name: "Paper", Price: ptr(0), VendorID: 1})
	assert.False(t, validate.HasErrors(errs), "zero price must pass: %v", errs)
}

func TestStructNullableSkipsEmpty(t *testing.T) {
	// Description carries only `nullable`; empty must not error.
	errs := validate.Struct(&productForm{Name: "Paper", Price: ptr(1), VendorID: 1, Description: ""})
	assert.NotContains(t, errs, "description")
}

func TestStructRequiredZeroNumber(t *testing.T) {
	// A required value-typed numeric field still rejects its zero value.
	errs := validate.Struct(&productForm{Name: "Paper", Price: ptr(1), VendorID: 0})
	assert.Contains(t, errs, "vendorId")
}
