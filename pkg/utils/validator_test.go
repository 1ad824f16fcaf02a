package utils

import (
	"encoding/json"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type sample struct {
	Kind string `validate:"required,oneof=login card note"`
	Name string `validate:"max=3"`
}

func TestFormatValidationError(t *testing.T) {
	v := validator.New()

	err := v.Struct(sample{Name: "toolong"})
	msg := FormatValidationError(err)
	assert.Contains(t, msg, "field 'Kind' is required")
	assert.Contains(t, msg, "field 'Name' must be at most 3")

	err = v.Struct(sample{Kind: "ssh"})
	assert.Equal(t, "field 'Kind' must be one of: login card note", FormatValidationError(err))

	var target struct {
		Limit int `json:"limit"`
	}
	err = json.Unmarshal([]byte(`{"limit":"x"}`), &target)
	assert.Equal(t, "field 'limit' should be int", FormatValidationError(err))

	err = json.Unmarshal([]byte(`{"limit":`+"\x00"+`}`), &target)
	assert.Equal(t, "invalid JSON format", FormatValidationError(err))

	assert.Empty(t, FormatValidationError(nil))
}
