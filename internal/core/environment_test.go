package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnvironment(t *testing.T) {
	cases := map[string]Environment{
		"production":  Production,
		"PROD":        Production,
		" staging ":   Staging,
		"test":        Testing,
		"testing":     Testing,
		"development": Development,
		"":            Development,
		"qa":          Development,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseEnvironment(in), in)
	}
}

func TestEnvironmentDecode(t *testing.T) {
	var e Environment
	require.NoError(t, e.Decode("Production"))
	assert.True(t, e.IsProduction())
	assert.Equal(t, "production", e.String())
}
