package game

import (
	"bufio"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	game_constants "Parola/constants/game"
)

// Difficulty labels sent to clients with every word reveal.
const (
	DifficultyStandard  = "standard"
	DifficultyEasy      = "easy"
	DifficultyDifficult = "difficult"
	DifficultyCustom    = "custom"
)

// WordSource holds the three word pools, loaded once at startup and read-only
// afterwards, so rooms may share it without synchronization.
type WordSource struct {
	standard  []string
	easy      []string
	difficult []string
}

// LoadWordSource reads the newline-delimited wordlists from dir. The easy and
// difficult lists are optional and silently degrade to empty pools; a missing
// standard list only logs a warning.
func LoadWordSource(dir string) *WordSource {
	ws := &WordSource{}

	var err error
	ws.standard, err = readWordlist(filepath.Join(dir, game_constants.WordlistStandard))
	if err != nil {
		log.Printf("[WORDS-WARN] Could not load wordlist: %v", err)
	} else {
		log.Printf("[WORDS] Loaded %d words from %s", len(ws.standard), game_constants.WordlistStandard)
	}

	ws.easy, err = readWordlist(filepath.Join(dir, game_constants.WordlistEasy))
	if err == nil {
		log.Printf("[WORDS] Loaded %d words from %s", len(ws.easy), game_constants.WordlistEasy)
	}
	ws.difficult, err = readWordlist(filepath.Join(dir, game_constants.WordlistDifficult))
	if err == nil {
		log.Printf("[WORDS] Loaded %d words from %s", len(ws.difficult), game_constants.WordlistDifficult)
	}
	return ws
}

func readWordlist(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var words []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		w := strings.TrimSpace(sc.Text())
		if w != "" {
			words = append(words, w)
		}
	}
	return words, sc.Err()
}

// Empty reports whether every pool is empty.
func (ws *WordSource) Empty() bool {
	return len(ws.standard) == 0 && len(ws.easy) == 0 && len(ws.difficult) == 0
}

// Pick draws a word with the 90/5/5 pool weighting. It only fails when all
// three pools are empty.
func (ws *WordSource) Pick() (word, difficulty string, ok bool) {
	if ws.Empty() {
		return "", "", false
	}
	pool, label := ws.pool(rand.Float64())
	return pool[rand.Intn(len(pool))], label, true
}

type pool struct {
	words []string
	label string
}

// pool resolves the uniform draw r to a non-empty pool. An empty selection
// falls back to difficult, then standard, then easy, so a pick never fails
// while any pool has words.
func (ws *WordSource) pool(r float64) ([]string, string) {
	var chosen pool
	switch {
	case r < game_constants.STANDARD_POOL_CUTOFF:
		chosen = pool{ws.standard, DifficultyStandard}
	case r < game_constants.EASY_POOL_CUTOFF:
		chosen = pool{ws.easy, DifficultyEasy}
	default:
		chosen = pool{ws.difficult, DifficultyDifficult}
	}
	for _, c := range []pool{
		chosen,
		{ws.difficult, DifficultyDifficult},
		{ws.standard, DifficultyStandard},
		{ws.easy, DifficultyEasy},
	} {
		if len(c.words) > 0 {
			return c.words, c.label
		}
	}
	return nil, ""
}
