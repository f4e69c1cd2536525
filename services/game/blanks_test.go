package game

import (
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
)

func TestBlanksMasksLetters(t *testing.T) {
	assert.Equal(t, "_ _ _ _ _", Blanks("hello", nil))
}

func TestBlanksKeepsNonLetters(t *testing.T) {
	assert.Equal(t, "_ _ _ _ _   _ _ _ _ _", Blanks("hello world", nil))
	assert.Equal(t, "_ _ _ - _ _", Blanks("tip-top", nil)[:11])
	assert.Equal(t, "_ ' _ _ _ _", Blanks("o'clock", nil)[:11])
}

func TestBlanksRevealsPositions(t *testing.T) {
	assert.Equal(t, "h _ _ _ o", Blanks("hello", []int{0, 4}))
	assert.Equal(t, "_ e _ _ _   w _ _ _ _", Blanks("hello world", []int{1, 6}))
}

func TestBlanksHandlesUnicodeLetters(t *testing.T) {
	// Rune positions, not byte positions.
	assert.Equal(t, "_ _ _", Blanks("süß", nil))
	assert.Equal(t, "s ü _", Blanks("süß", []int{0, 1}))
}

func TestBlanksProperties(t *testing.T) {
	words := []string{"hello", "tip-top", "Straßen-Bahn", "a"}
	for _, w := range words {
		runes := []rune(w)
		cells := strings.Split(Blanks(w, []int{0}), " ")
		assert.Len(t, cells, len(runes), w)
		for i, c := range runes {
			if i == 0 || !unicode.IsLetter(c) {
				assert.Equal(t, string(c), cells[i], w)
			} else {
				assert.Equal(t, "_", cells[i], w)
			}
		}
	}
}
