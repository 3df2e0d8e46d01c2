package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reviewInput struct {
	DestinationID string  `json:"destination_id" validate:"required"`
	Text          string  `json:"text" validate:"required,max=10"`
	Rating        float64 `json:"rating" validate:"required,min=1,max=5"`
}

type roleInput struct {
	Role string `json:"role" validate:"required,is-user-role"`
}

func TestValidatePasses(t *testing.T) {
	v := New()
	err := v.Validate(&reviewInput{DestinationID: "bromo", Text: "Bagus", Rating: 4.5})
	assert.NoError(t, err)
}

func TestValidateReportsJSONFieldNames(t *testing.T) {
	v := New()
	err := v.Validate(&reviewInput{Text: "Bagus", Rating: 3})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Errors, "destination_id")
	assert.Equal(t, "This field is required", vErr.Errors["destination_id"])
}

func TestValidateRatingBounds(t *testing.T) {
	v := New()

	err := v.Validate(&reviewInput{DestinationID: "bromo", Text: "Bagus", Rating: 6})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Errors, "rating")

	err = v.Validate(&reviewInput{DestinationID: "bromo", Text: "Bagus", Rating: 0.5})
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Errors, "rating")
}

func TestValidateUserRoleRule(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&roleInput{Role: "user"}))
	assert.NoError(t, v.Validate(&roleInput{Role: "admin"}))

	err := v.Validate(&roleInput{Role: "superuser"})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Must be a valid user role", vErr.Errors["role"])
}
