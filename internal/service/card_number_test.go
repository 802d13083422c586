package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCardNumber(t *testing.T) {
	for i := 0; i < 100; i++ {
		number := GenerateCardNumber()
		assert.Len(t, number, 16)
		assert.True(t, ValidCardNumber(number))
		assert.NotEqual(t, byte('0'), number[0])
	}
}

func TestValidCardNumber(t *testing.T) {
	tests := []struct {
		name   string
		number string
		valid  bool
	}{
		{name: "valid 16 digits", number: "1234567890123456", valid: true},
		{name: "too short", number: "123456789012345", valid: false},
		{name: "too long", number: "12345678901234567", valid: false},
		{name: "letters", number: "12345678901234ab", valid: false},
		{name: "empty", number: "", valid: false},
		{name: "spaces", number: "1234 5678 9012 3456", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidCardNumber(tt.number))
		})
	}
}

func TestMaskCardNumber(t *testing.T) {
	assert.Equal(t, "****3456", MaskCardNumber("1234567890123456"))
	assert.Equal(t, "****", MaskCardNumber("123"))
	assert.Equal(t, "****", MaskCardNumber(""))
}
