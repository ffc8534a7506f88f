package endpoints

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCandidates(t *testing.T) {
	t.Run("override before fallback with order-preserving dedup", func(t *testing.T) {
		got := Candidates("a, b ,a", []string{"c"})
		assert.Equal(t, []string{"a", "b", "c"}, got)
	})

	t.Run("empty override keeps deduped fallbacks", func(t *testing.T) {
		got := Candidates("", []string{"c", "c"})
		assert.Equal(t, []string{"c"}, got)
	})

	t.Run("semicolon delimiter", func(t *testing.T) {
		got := Candidates("a;b; c", nil)
		assert.Equal(t, []string{"a", "b", "c"}, got)
	})

	t.Run("mixed delimiters and empty pieces", func(t *testing.T) {
		got := Candidates(",a,;  ;b,", []string{"a"})
		assert.Equal(t, []string{"a", "b"}, got)
	})

	t.Run("fallback already in override is not repeated", func(t *testing.T) {
		got := Candidates("c", []string{"c", "d"})
		assert.Equal(t, []string{"c", "d"}, got)
	})

	t.Run("no candidates at all yields empty list", func(t *testing.T) {
		got := Candidates("", nil)
		assert.Empty(t, got)
	})
}
