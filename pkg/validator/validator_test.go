package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Name  string `validate:"required"`
	Level int    `validate:"required,min=1,max=5"`
}

func TestValidateStruct(t *testing.T) {
	assert.NoError(t, ValidateStruct(sample{Name: "a", Level: 3}))

	err := ValidateStruct(sample{Level: 9})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Field: Name, Tag: required")
	assert.Contains(t, err.Error(), "Field: Level, Tag: max, Param: 5")
}

func TestValidateStructNonStruct(t *testing.T) {
	assert.Error(t, ValidateStruct(42))
}
