package game

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeWordlists(t *testing.T, standard, easy, difficult string) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"wordlist.txt":           standard,
		"wordlist-easy.txt":      easy,
		"wordlist-difficult.txt": difficult,
	}
	for name, content := range files {
		if content == "" {
			continue
		}
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func TestLoadWordSourceSkipsBlankLines(t *testing.T) {
	dir := writeWordlists(t, "house\n\n  garden  \n\nriver\n", "cat\n", "quarantine\n")
	ws := LoadWordSource(dir)

	assert.Equal(t, []string{"house", "garden", "river"}, ws.standard)
	assert.Equal(t, []string{"cat"}, ws.easy)
	assert.Equal(t, []string{"quarantine"}, ws.difficult)
	assert.False(t, ws.Empty())
}

func TestLoadWordSourceMissingFilesDegrade(t *testing.T) {
	ws := LoadWordSource(t.TempDir())
	assert.True(t, ws.Empty())

	_, _, ok := ws.Pick()
	assert.False(t, ok)
}

func TestPoolWeighting(t *testing.T) {
	dir := writeWordlists(t, "house\n", "cat\n", "quarantine\n")
	ws := LoadWordSource(dir)

	words, label := ws.pool(0.0)
	assert.Equal(t, DifficultyStandard, label)
	assert.Equal(t, []string{"house"}, words)

	_, label = ws.pool(0.89)
	assert.Equal(t, DifficultyStandard, label)

	_, label = ws.pool(0.90)
	assert.Equal(t, DifficultyEasy, label)

	_, label = ws.pool(0.949)
	assert.Equal(t, DifficultyEasy, label)

	_, label = ws.pool(0.95)
	assert.Equal(t, DifficultyDifficult, label)

	_, label = ws.pool(0.999)
	assert.Equal(t, DifficultyDifficult, label)
}

func TestPoolFallbackNeverFails(t *testing.T) {
	// Easy pool missing: the easy band falls back to difficult.
	ws := &WordSource{standard: []string{"house"}, difficult: []string{"quarantine"}}
	_, label := ws.pool(0.92)
	assert.Equal(t, DifficultyDifficult, label)

	// Only the standard pool exists.
	ws = &WordSource{standard: []string{"house"}}
	_, label = ws.pool(0.97)
	assert.Equal(t, DifficultyStandard, label)

	// Only the easy pool exists.
	ws = &WordSource{easy: []string{"cat"}}
	word, label, ok := ws.Pick()
	assert.True(t, ok)
	assert.Equal(t, DifficultyEasy, label)
	assert.Equal(t, "cat", word)
}

func TestPickDistribution(t *testing.T) {
	ws := &WordSource{
		standard:  []string{"house", "garden"},
		easy:      []string{"cat", "dog"},
		difficult: []string{"quarantine", "silhouette"},
	}

	const draws = 10000
	counts := map[string]int{}
	for i := 0; i < draws; i++ {
		word, label, ok := ws.Pick()
		require.True(t, ok)
		require.NotEmpty(t, word)
		counts[label]++
	}

	assert.InDelta(t, 0.90, float64(counts[DifficultyStandard])/draws, 0.02)
	assert.InDelta(t, 0.05, float64(counts[DifficultyEasy])/draws, 0.015)
	assert.InDelta(t, 0.05, float64(counts[DifficultyDifficult])/draws, 0.015)
}
