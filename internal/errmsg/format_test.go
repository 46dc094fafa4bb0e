//nolint:goconst // test cases intentionally repeat strings for readability
package errmsg

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpConfigLoad,
			err:      nil,
			expected: "",
		},
		{
			name:     "config operation",
			op:       OpConfigLoad,
			err:      errors.New("file not found"),
			expected: "Failed to load config: file not found",
		},
		{
			name:     "state operation",
			op:       OpStateOpen,
			err:      errors.New("disk full"),
			expected: "Failed to open state database: disk full",
		},
		{
			name:     "watch operation",
			op:       OpConfigWatch,
			err:      errors.New("too many open files"),
			expected: "Failed to watch config: too many open files",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.op, tt.err)
			if result != tt.expected {
				t.Errorf("Format() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		context  string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpConfigReload,
			context:  "config.toml",
			err:      nil,
			expected: "",
		},
		{
			name:     "empty context falls back to Format",
			op:       OpConfigReload,
			context:  "",
			err:      errors.New("bad toml"),
			expected: "Failed to reload config: bad toml",
		},
		{
			name:     "context is quoted",
			op:       OpConfigReload,
			context:  "config.toml",
			err:      errors.New("bad toml"),
			expected: "Failed to reload config 'config.toml': bad toml",
		},
		{
			name:     "saved navigation",
			op:       OpStateLoad,
			context:  "state.db",
			err:      errors.New("database is locked"),
			expected: "Failed to restore navigation 'state.db': database is locked",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatWith(tt.op, tt.context, tt.err)
			if result != tt.expected {
				t.Errorf("FormatWith() = %q, want %q", result, tt.expected)
			}
		})
	}
}
