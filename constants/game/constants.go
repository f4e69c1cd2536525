package game_constants

import "time"

const MaxPlayersPerRoom = 2
const RoomCodeLength = 4

// Round timing
const ROUND_SECONDS = 300  // 5 minute countdown per round
const EXTEND_SECONDS = 300 // granted by each extendTime request

const (
	TimerTick        = 1 * time.Second
	EndedRoomTTL     = 2 * time.Second // grace so clients can render the result
	PresenceInterval = 3 * time.Second
)

// Weighted random pool selection: r < 0.90 standard, r < 0.95 easy, else difficult
const (
	STANDARD_POOL_CUTOFF = 0.90
	EASY_POOL_CUTOFF     = 0.95
)

// Wordlist file names inside the wordlist directory
const (
	WordlistStandard  = "wordlist.txt"
	WordlistEasy      = "wordlist-easy.txt"
	WordlistDifficult = "wordlist-difficult.txt"
)
