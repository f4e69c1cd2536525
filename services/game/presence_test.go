package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresenceSweeperRebroadcastsPlayerLists(t *testing.T) {
	rec := &recorder{}
	reg := NewRegistry(rec)
	room, err := reg.CreateRoom("conn-1", "Alice", "AB12")
	require.NoError(t, err)
	t.Cleanup(func() { reg.Remove(room.Code()) })

	sweeper := StartPresenceSweeper(reg, 10*time.Millisecond)

	assert.Eventually(t, func() bool {
		return rec.count("playerList") >= 2
	}, time.Second, 5*time.Millisecond)

	sweeper.Stop()
	after := rec.count("playerList")
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, rec.count("playerList"))
}

func TestPresenceSweeperWithNoRooms(t *testing.T) {
	reg := NewRegistry(&recorder{})
	sweeper := StartPresenceSweeper(reg, 5*time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	sweeper.Stop()
}
