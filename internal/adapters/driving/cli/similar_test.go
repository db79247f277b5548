package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimilarCmd_Use(t *testing.T) {
	assert.Equal(t, "similar", similarCmd.Use)
}

func TestSimilarCmd_HasFlags(t *testing.T) {
	threshold := similarCmd.Flags().Lookup("threshold")
	require.NotNil(t, threshold)
	assert.Equal(t, "t", threshold.Shorthand)

	window := similarCmd.Flags().Lookup("window")
	require.NotNil(t, window)
	assert.Equal(t, "100", window.DefValue)
}

func TestSimilarCmd_ReportsPair(t *testing.T) {
	store, cleanup := setupTestServices(t)
	defer cleanup()

	body := strings.Repeat("the council approved the new housing development after months of public hearings ", 4)
	seedArticle(t, store, "https://a.example.com/housing", "Housing approved", "local", body)
	seedArticle(t, store, "https://b.example.com/housing", "Housing gets go-ahead", "local", body)
	seedArticle(t, store, "https://a.example.com/weather", "Storm warning", "weather",
		strings.Repeat("a severe storm front is expected to cross the region late on thursday evening ", 4))

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"similar"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "1 near-duplicate pair(s):")
	assert.Contains(t, out, "https://a.example.com/housing")
	assert.Contains(t, out, "https://b.example.com/housing")
	assert.NotContains(t, out, "Storm warning")
}

func TestSimilarCmd_NoPairs(t *testing.T) {
	store, cleanup := setupTestServices(t)
	defer cleanup()

	seedArticle(t, store, "a", "one", "", "completely different text about gardening tips for the spring season")
	seedArticle(t, store, "b", "two", "", "an unrelated report on quarterly earnings in the shipping industry")

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"similar"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No pairs at or above 0.80")
}

func TestSimilarCmd_InvalidThreshold(t *testing.T) {
	_, cleanup := setupTestServices(t)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"similar", "--threshold", "1.5"})
	defer func() {
		rootCmd.SetArgs(nil)
		similarThreshold = 0
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "threshold")
}
