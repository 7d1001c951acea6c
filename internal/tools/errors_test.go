package tools_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shaharia-lab/pushover-mcp/internal/tools"
)

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *tools.ValidationError
		expected string
	}{
		{
			name:     "with field",
			err:      &tools.ValidationError{Field: "message", Message: "must not be empty"},
			expected: `validation error for "message": must not be empty`,
		},
		{
			name:     "without field",
			err:      &tools.ValidationError{Message: "bad input"},
			expected: "bad input",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}
