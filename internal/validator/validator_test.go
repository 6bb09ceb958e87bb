package validator

import (
	"testing"

	"github.com/metinatakli/cinema-management-system/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowDateTag(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name  string
		date  string
		valid bool
	}{
		{name: "valid date", date: "2025-06-01", valid: true},
		{name: "leap day", date: "2024-02-29", valid: true},
		{name: "impossible calendar day", date: "2024-02-31", valid: false},
		{name: "wrong shape", date: "01-06-2025", valid: false},
		{name: "missing zero padding", date: "2025-6-1", valid: false},
		{name: "empty", date: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Var(tt.date, "showdate")

			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestShowClockTag(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name  string
		clock string
		valid bool
	}{
		{name: "valid time", clock: "19:00", valid: true},
		{name: "midnight", clock: "00:00", valid: true},
		{name: "out of range hour", clock: "25:00", valid: false},
		{name: "out of range minute", clock: "19:61", valid: false},
		{name: "missing zero padding", clock: "9:00", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Var(tt.clock, "showclock")

			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestNoSeparatorTag(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Var("Alice Smith", "nosep"))
	assert.Error(t, v.Var("Alice,Smith", "nosep"))
	assert.Error(t, v.Var("   ", "nosep"))
}

func TestCardTag(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Var("1111-2222-3333-4444", "card"))
	assert.Error(t, v.Var("1111222233334444", "card"))
	assert.Error(t, v.Var("1111-2222-3333-444", "card"))
	assert.Error(t, v.Var("abcd-efgh-ijkl-mnop", "card"))
}

func TestPaymentTag(t *testing.T) {
	v := NewValidator()

	type input struct {
		Payment domain.PaymentMethod `validate:"payment"`
	}

	assert.NoError(t, v.Struct(input{Payment: domain.PaymentCash}))
	assert.NoError(t, v.Struct(input{Payment: domain.PaymentCard}))
	assert.Error(t, v.Struct(input{Payment: "Cheque"}))
}

func TestToValidationError(t *testing.T) {
	v := NewValidator()

	type input struct {
		Title    string `validate:"required,nosep"`
		Duration int    `validate:"gt=0"`
	}

	err := ToValidationError(v.Struct(input{}))

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "is required", validationErr.Violations["Title"])
	assert.Equal(t, "must be greater than 0", validationErr.Violations["Duration"])
}

func TestToValidationErrorPassesThroughNil(t *testing.T) {
	assert.NoError(t, ToValidationError(nil))
}
