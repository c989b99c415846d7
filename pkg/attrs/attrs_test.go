package attrs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	attributes := []any{"employee_id", int64(7), "subject", "Ivanov Ivan", 42, "skipped", "dangling"}

	tests := []struct {
		name       string
		key        string
		wantString string
		wantInt    int64
	}{
		{name: "string value", key: "subject", wantString: "Ivanov Ivan"},
		{name: "int64 value", key: "employee_id", wantInt: 7},
		{name: "missing key", key: "reason"},
		{name: "dangling key has no value", key: "dangling"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantString, ExtractString(attributes, tt.key))
			assert.Equal(t, tt.wantInt, ExtractInt64(attributes, tt.key))
		})
	}
}
