package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandEnv(t *testing.T) {
	t.Run("expands variables", func(t *testing.T) {
		t.Setenv("TEST_FW_TOKEN", "tok-123")
		out := ExpandEnv([]byte("token: {{.TEST_FW_TOKEN}}"))
		assert.Equal(t, "token: tok-123", string(out))
	})

	t.Run("missing variable expands to empty", func(t *testing.T) {
		out := ExpandEnv([]byte("token: '{{.TEST_FW_DEFINITELY_UNSET}}'"))
		assert.Equal(t, "token: ''", string(out))
	})

	t.Run("dollar signs untouched", func(t *testing.T) {
		in := []byte(`pattern: "^-----BEGIN.*KEY-----$"`)
		assert.Equal(t, in, ExpandEnv(in))
	})

	t.Run("malformed template passes through", func(t *testing.T) {
		in := []byte("value: {{.UNCLOSED")
		assert.Equal(t, in, ExpandEnv(in))
	})
}
