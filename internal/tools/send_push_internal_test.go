package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendPushParams_Validate(t *testing.T) {
	tests := []struct {
		name      string
		params    SendPushParams
		wantField string
	}{
		{"valid normal", SendPushParams{Message: "hi"}, ""},
		{"valid lowest", SendPushParams{Message: "hi", Priority: -2}, ""},
		{"valid emergency", SendPushParams{Message: "hi", Priority: 2}, ""},
		{"empty message", SendPushParams{}, "message"},
		{"priority below lowest", SendPushParams{Message: "hi", Priority: -3}, "priority"},
		{"priority above emergency", SendPushParams{Message: "hi", Priority: 3}, "priority"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantField, vErr.Field)
		})
	}
}

func TestSendPushSchema_PriorityBounds(t *testing.T) {
	schema, err := sendPushSchema()
	require.NoError(t, err)

	priority := schema.Properties["priority"]
	require.NotNil(t, priority)
	require.NotNil(t, priority.Minimum)
	require.NotNil(t, priority.Maximum)
	assert.Equal(t, -2.0, *priority.Minimum)
	assert.Equal(t, 2.0, *priority.Maximum)
	assert.Equal(t, []string{"message"}, schema.Required)
}
