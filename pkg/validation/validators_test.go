package validation_test

import (
	"testing"

	"go-medlink-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type nameField struct {
	Value string `validate:"valid_name"`
}

type phoneField struct {
	Value string `validate:"valid_phone"`
}

type emojiField struct {
	Value string `validate:"no_emoji"`
}

func newTestValidator() *validator.Validate {
	v := validator.New()
	validation.RegisterValidators(v)
	return v
}

func TestValidName(t *testing.T) {
	v := newTestValidator()

	valid := []string{
		"Dr. Sarah Chen",
		"Jean-Pierre O'Neill",
		"St. Mary's Hospital (Boston)",
		"Müller & Söhne",
		"",
	}
	for _, name := range valid {
		assert.NoError(t, v.Struct(nameField{Value: name}), "name %q", name)
	}

	invalid := []string{
		"<script>alert(1)</script>",
		"name; DROP TABLE profiles",
		"tab\there",
	}
	for _, name := range invalid {
		assert.Error(t, v.Struct(nameField{Value: name}), "name %q", name)
	}
}

func TestValidPhone(t *testing.T) {
	v := newTestValidator()

	assert.NoError(t, v.Struct(phoneField{Value: "+6281234567890"}))
	assert.NoError(t, v.Struct(phoneField{Value: "08123456789"}))
	assert.NoError(t, v.Struct(phoneField{Value: ""}))

	assert.Error(t, v.Struct(phoneField{Value: "12345"}))
	assert.Error(t, v.Struct(phoneField{Value: "phone-number"}))
	assert.Error(t, v.Struct(phoneField{Value: "+62 812 3456"}))
}

func TestNoEmoji(t *testing.T) {
	v := newTestValidator()

	assert.NoError(t, v.Struct(emojiField{Value: "Cardiologist at General Hospital"}))
	assert.Error(t, v.Struct(emojiField{Value: "Best doctor \U0001F600"}))
	assert.Error(t, v.Struct(emojiField{Value: "Top rated ⭐"}))
}
