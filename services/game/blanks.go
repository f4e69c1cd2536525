package game

import (
	"strings"
	"unicode"
)

// Blanks renders the masked form of a secret word. Revealed rune positions and
// non-letter runes (spaces, hyphens, apostrophes) show as-is; every other
// letter is masked with an underscore. Cells are joined by single spaces, so a
// literal space inside the word widens to three characters on screen.
func Blanks(word string, revealed []int) string {
	shown := make(map[int]bool, len(revealed))
	for _, i := range revealed {
		shown[i] = true
	}
	runes := []rune(word)
	cells := make([]string, len(runes))
	for i, c := range runes {
		switch {
		case shown[i]:
			cells[i] = string(c)
		case unicode.IsLetter(c):
			cells[i] = "_"
		default:
			cells[i] = string(c)
		}
	}
	return strings.Join(cells, " ")
}
