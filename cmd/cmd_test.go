package cmd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAsOf(t *testing.T) {
	now := time.Date(2024, 3, 1, 23, 30, 0, 0, time.FixedZone("PST", -8*3600))

	got, err := parseAsOf("", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), got)

	got, err = parseAsOf("2024-02-29", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), got)

	_, err = parseAsOf("29/02/2024", now)
	assert.Error(t, err)
}

func TestCommandTree(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["serve"])
	assert.True(t, names["migrate"])
	assert.True(t, names["process-due"])
	assert.NotNil(t, processDueCmd.Flags().Lookup("as-of"))
}
