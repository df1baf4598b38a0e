package plaintext

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatches_AlwaysTrue(t *testing.T) {
	normaliser := New()
	assert.True(t, normaliser.Matches("anything"))
	assert.True(t, normaliser.Matches("<p>even html</p>"))
}

func TestPriority_Fallback(t *testing.T) {
	assert.Equal(t, 5, New().Priority())
}

func TestNormalise_Passthrough(t *testing.T) {
	normaliser := New()

	payload := "Short note.\n\nWith a second paragraph."
	out, err := normaliser.Normalise(context.Background(), payload)
	require.NoError(t, err)
	assert.Equal(t, payload, out)
}
