package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectoryResolve(t *testing.T) {
	dir := Directory{
		"professional": "work@example.com",
		"personal":     "me@example.com",
		"educational":  "edu@example.com",
	}

	t.Run("exact match", func(t *testing.T) {
		assert.Equal(t, "me@example.com", dir.Resolve("personal"))
	})

	t.Run("case-insensitive match", func(t *testing.T) {
		assert.Equal(t, "edu@example.com", dir.Resolve("Educational"))
		assert.Equal(t, "work@example.com", dir.Resolve("PROFESSIONAL"))
	})

	t.Run("unknown category falls back to professional", func(t *testing.T) {
		assert.Equal(t, "work@example.com", dir.Resolve("spam"))
		assert.Equal(t, "work@example.com", dir.Resolve(""))
	})
}

func TestDirectoryResolveIsTotal(t *testing.T) {
	// Resolution never panics, whatever the input; an unconfigured entry
	// just resolves to empty
	dir := Directory{"professional": "work@example.com"}

	inputs := []string{"personal", "educational", "PERSONAL", "", "  personal  ", "💥", "professional"}
	for _, in := range inputs {
		assert.Equal(t, "work@example.com", dir.Resolve(in), in)
	}

	empty := Directory{}
	assert.Equal(t, "", empty.Resolve("personal"))
}

func TestDirectoryResolveEmptyEntryFallsBack(t *testing.T) {
	// A category configured to an empty string is unconfigured
	dir := Directory{
		"professional": "work@example.com",
		"personal":     "",
	}
	assert.Equal(t, "work@example.com", dir.Resolve("personal"))
}
