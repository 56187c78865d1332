package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPayload struct {
	Name      string  `validate:"required"`
	Quantity  float64 `validate:"required"`
	UnitPrice float64 `validate:"required"`
}

func TestValidateStruct_Valid(t *testing.T) {
	err := ValidateStruct(testPayload{Name: "Widget", Quantity: 3, UnitPrice: 2.5})
	assert.NoError(t, err)
}

func TestValidateStruct_RejectsZeroValues(t *testing.T) {
	cases := map[string]testPayload{
		"empty name":     {Name: "", Quantity: 3, UnitPrice: 2.5},
		"zero quantity":  {Name: "Widget", Quantity: 0, UnitPrice: 2.5},
		"zero unitPrice": {Name: "Widget", Quantity: 3, UnitPrice: 0},
		"all zero":       {},
	}

	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			err := ValidateStruct(payload)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "required")
		})
	}
}

func TestValidateStruct_MessageNamesField(t *testing.T) {
	err := ValidateStruct(testPayload{Quantity: 3, UnitPrice: 2.5})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name is required")
}
