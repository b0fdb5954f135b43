package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type demoInput struct {
	FullName string   `validate:"required"`
	Email    string   `validate:"required,email"`
	Targets  []string `validate:"required,min=1"`
	Price    *float64 `validate:"omitempty,gte=0"`
	Currency *string  `validate:"omitempty,oneof=CAD USD EUR"`
}

func TestValidateStruct(t *testing.T) {
	t.Run("ValidInputYieldsNoErrors", func(t *testing.T) {
		errs := ValidateStruct(demoInput{
			FullName: "Jane Doe",
			Email:    "jane@x.com",
			Targets:  []string{"en"},
		})
		assert.Empty(t, errs)
	})

	t.Run("FieldNamesAreWireStyle", func(t *testing.T) {
		errs := ValidateStruct(demoInput{Email: "not-an-email", Targets: []string{}})
		assert.Contains(t, errs, "fullName")
		assert.Contains(t, errs, "email")
		assert.Contains(t, errs, "targets")
		assert.NotContains(t, errs, "FullName")
	})

	t.Run("MessagesNamePerTagConstraint", func(t *testing.T) {
		bad := -1.0
		gbp := "GBP"
		errs := ValidateStruct(demoInput{
			FullName: "Jane Doe",
			Email:    "jane@x.com",
			Targets:  []string{"en"},
			Price:    &bad,
			Currency: &gbp,
		})
		require.Contains(t, errs, "price")
		assert.Equal(t, "price must be at least 0", errs["price"])
		require.Contains(t, errs, "currency")
		assert.Equal(t, "currency must be one of CAD USD EUR", errs["currency"])
	})
}

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT("staff-1", "admin@cethos.example", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "staff-1", claims.StaffID)
	assert.Equal(t, "admin@cethos.example", claims.Email)
	assert.Equal(t, "admin", claims.Role)

	t.Run("TamperedTokenRejected", func(t *testing.T) {
		_, err := ParseJWT(token + "x")
		assert.Error(t, err)
	})

	t.Run("EmptyTokenRejected", func(t *testing.T) {
		_, err := ParseJWT("")
		assert.Error(t, err)
	})
}
