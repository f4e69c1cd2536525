package game

import (
	"log"
	"math/rand"
	"regexp"
	"strings"
	"sync"
	"time"
	"unicode"

	game_constants "Parola/constants/game"

	"github.com/gin-gonic/gin"
)

type State string

const (
	StateLobby        State = "lobby"
	StateAwaitingWord State = "awaiting-word"
	StateInRound      State = "in-round"
	StateEnded        State = "ended"
)

type Role string

const (
	RoleGuesser   Role = "guesser"
	RoleExplainer Role = "explainer"
)

// Player is scoped to one room. ConnID is the transport's ephemeral
// connection identifier.
type Player struct {
	ConnID string
	Name   string
	Ingame bool
}

type ChatMessage struct {
	From string
	Text string
}

// Custom words may use locale letters, whitespace and hyphens.
var wordPattern = regexp.MustCompile(`^[\p{L}\s-]+$`)

var allowedAnswers = map[string]bool{"yes": true, "no": true, "maybe": true, "idk": true}

// removeAfter delays teardown of finished rooms so clients can render the
// final message. Tests shorten it.
var removeAfter = game_constants.EndedRoomTTL

// Room is one play session. All mutations run under mu; no two operations on
// the same room ever interleave. While holding mu a room only calls the
// map-level registry operations (track/untrack/detach), never Registry.Remove.
type Room struct {
	mu sync.Mutex

	code        string
	players     []*Player
	hostID      string
	state       State
	guesserID   string
	explainerID string

	word       string
	difficulty string
	revealed   []int
	hintUsed   bool
	seconds    int
	chat       []ChatMessage

	timerStop chan struct{}

	reg *Registry
	bc  Broadcaster
}

func (r *Room) Code() string { return r.code }

func (r *Room) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Players returns a snapshot of the current player list in join order.
func (r *Room) Players() []Player {
	r.mu.Lock()
	defer r.mu.Unlock()
	players := make([]Player, len(r.players))
	for i, p := range r.players {
		players[i] = *p
	}
	return players
}

func (r *Room) ChatLog() []ChatMessage {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]ChatMessage(nil), r.chat...)
}

// Join adds a player to the room. The gateway broadcasts the updated player
// list once the socket has joined the room channel, so the new member sees it
// too.
func (r *Room) Join(connID, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findByConn(connID) != nil {
		return ErrAlreadyJoined
	}
	if r.findByName(name) != nil {
		return ErrNameTaken
	}
	if len(r.players) >= game_constants.MaxPlayersPerRoom {
		return ErrRoomFull
	}
	r.players = append(r.players, &Player{ConnID: connID, Name: name})
	r.reg.track(connID, r.code)
	return nil
}

// Leave removes a player, explicit or disconnect-triggered. Departing hosts
// hand off to a non-ingame player when one exists, else the first remaining
// player. A room mid-game dropping below two players is aborted; an ended
// room just shrinks until its teardown timer fires. An empty room is removed
// immediately.
func (r *Room) Leave(connID string) {
	r.mu.Lock()
	idx := -1
	for i, p := range r.players {
		if p.ConnID == connID {
			idx = i
			break
		}
	}
	if idx == -1 {
		r.mu.Unlock()
		return
	}

	wasHost := r.hostID == connID
	r.players = append(r.players[:idx], r.players[idx+1:]...)
	if r.guesserID == connID {
		r.guesserID = ""
	}
	if r.explainerID == connID {
		r.explainerID = ""
	}
	r.reg.untrack(connID)

	if wasHost && len(r.players) > 0 {
		next := r.players[0]
		for _, p := range r.players {
			if !p.Ingame {
				next = p
				break
			}
		}
		r.hostID = next.ConnID
	}
	r.sendPlayerList()

	if r.state != StateLobby && r.state != StateEnded && len(r.players) < game_constants.MaxPlayersPerRoom {
		r.stopTimer()
		r.state = StateEnded
		r.bc.ToRoom(r.code, "gameAborted", gin.H{
			"reason":     "Not enough players. Game aborted.",
			"word":       orNil(r.word),
			"difficulty": orNil(r.difficulty),
		})
		r.mu.Unlock()
		r.reg.detach(r.code)
		log.Printf("[LEAVE] Room %s aborted, not enough players", r.code)
		return
	}

	if len(r.players) == 0 {
		r.mu.Unlock()
		r.reg.detach(r.code)
		return
	}
	r.mu.Unlock()
}

// AssignRole is host-only; anyone else is silently ignored. Assigning a role
// clears the target's opposite role, and with both players present the
// unassigned role auto-fills with the other player.
func (r *Room) AssignRole(actorID, targetName string, role Role) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if actorID != r.hostID {
		return false
	}
	target := r.findByName(targetName)
	if target == nil {
		return false
	}
	switch role {
	case RoleGuesser:
		r.guesserID = target.ConnID
		if r.explainerID == target.ConnID {
			r.explainerID = ""
		}
	case RoleExplainer:
		r.explainerID = target.ConnID
		if r.guesserID == target.ConnID {
			r.guesserID = ""
		}
	default:
		return false
	}
	if len(r.players) == game_constants.MaxPlayersPerRoom {
		for _, p := range r.players {
			if p.ConnID == target.ConnID {
				continue
			}
			if r.guesserID == "" {
				r.guesserID = p.ConnID
			}
			if r.explainerID == "" {
				r.explainerID = p.ConnID
			}
		}
	}
	r.sendPlayerList()
	return true
}

// Start moves the room into the word-selection phase. Host-only and silent
// for anyone else; missing roles are the one gating failure that is surfaced.
func (r *Room) Start(actorID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if actorID != r.hostID {
		return
	}
	if r.state != StateLobby {
		return
	}
	if len(r.players) != game_constants.MaxPlayersPerRoom {
		return
	}
	if r.guesserID == "" || r.explainerID == "" {
		r.bc.ToConn(actorID, "errorMessage", gin.H{"message": ErrRolesMissing.Error()})
		return
	}
	for _, p := range r.players {
		p.Ingame = true
	}
	r.state = StateAwaitingWord
	r.bc.ToConn(r.guesserID, "roundPreparing", gin.H{"role": string(RoleGuesser)})
	r.bc.ToConn(r.explainerID, "roundPreparing", gin.H{"role": string(RoleExplainer)})
	r.bc.ToConn(r.explainerID, "chooseWordMethod", nil)
	r.bc.ToConn(r.guesserID, "waitingForWord", nil)
	r.sendPlayerList()
	log.Printf("[START] Room %s awaiting word from explainer", r.code)
}

// ChooseCustomWord lets the explainer set the secret word and starts the
// round. Non-explainers are silently ignored (handled=false, no ack).
func (r *Room) ChooseCustomWord(actorID, raw string) (handled bool, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if actorID != r.explainerID {
		return false, nil
	}
	word := strings.TrimSpace(raw)
	if word == "" {
		return false, ErrEmptyWord
	}
	if !wordPattern.MatchString(word) {
		return false, ErrInvalidWord
	}
	r.word = word
	r.difficulty = DifficultyCustom
	r.revealed = nil
	r.hintUsed = false
	r.broadcastWordChosen(actorID)
	r.startRound()
	return true, nil
}

// ChooseRandomWord draws from the weighted pools and starts the round.
func (r *Room) ChooseRandomWord(actorID string, words *WordSource) (difficulty string, handled bool, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if actorID != r.explainerID {
		return "", false, nil
	}
	word, difficulty, ok := words.Pick()
	if !ok {
		return "", false, ErrNoWordsAvailable
	}
	r.word = word
	r.difficulty = difficulty
	r.revealed = nil
	r.hintUsed = false
	r.broadcastWordChosen(actorID)
	r.startRound()
	return difficulty, true, nil
}

// GiveHint reveals one random unrevealed letter. At most one hint per round;
// repeat calls, non-explainers and hint-before-word are all no-ops.
func (r *Room) GiveHint(actorID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if actorID != r.explainerID || r.hintUsed || r.word == "" {
		return false
	}
	runes := []rune(r.word)
	shown := make(map[int]bool, len(r.revealed))
	for _, i := range r.revealed {
		shown[i] = true
	}
	var unrevealed []int
	for i, c := range runes {
		if !unicode.IsLetter(c) || shown[i] {
			continue
		}
		unrevealed = append(unrevealed, i)
	}
	if len(unrevealed) == 0 {
		return false
	}
	idx := unrevealed[rand.Intn(len(unrevealed))]
	r.revealed = append(r.revealed, idx)
	r.hintUsed = true
	r.bc.ToRoom(r.code, "hintGiven", gin.H{
		"blanks": Blanks(r.word, r.revealed),
		"index":  idx,
		"letter": string(runes[idx]),
	})
	return true
}

// ExtendTime adds five minutes to a running round timer. Any room participant
// may call it.
func (r *Room) ExtendTime(actorID string) (int, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findByConn(actorID) == nil {
		return 0, false
	}
	if r.state != StateInRound || r.timerStop == nil {
		return 0, false
	}
	r.seconds += game_constants.EXTEND_SECONDS
	r.bc.ToRoom(r.code, "timerUpdate", gin.H{"seconds": r.seconds})
	return r.seconds, true
}

// SubmitChat appends a chat message and broadcasts it. A guesser message that
// matches the secret word (trimmed, case-insensitive) during a round wins the
// game.
func (r *Room) SubmitChat(actorID, text string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := r.findByConn(actorID)
	if p == nil {
		return false
	}
	msg := ChatMessage{From: p.Name, Text: text}
	r.chat = append(r.chat, msg)
	r.bc.ToRoom(r.code, "chatMessage", gin.H{"from": msg.From, "text": msg.Text})

	if actorID == r.guesserID && r.word != "" && r.state == StateInRound &&
		strings.EqualFold(strings.TrimSpace(text), strings.TrimSpace(r.word)) {
		r.stopTimer()
		r.bc.ToRoom(r.code, "gameWon", gin.H{
			"winner":     p.Name,
			"word":       r.word,
			"difficulty": r.difficulty,
		})
		r.state = StateEnded
		r.scheduleRemoval()
		log.Printf("[WIN] Room %s won by %s", r.code, p.Name)
	}
	return true
}

// ExplainerAnswer posts one of the fixed yes/no/maybe/idk answers to the chat.
func (r *Room) ExplainerAnswer(actorID, answer string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if actorID != r.explainerID || !allowedAnswers[answer] {
		return false
	}
	p := r.findByConn(actorID)
	if p == nil {
		return false
	}
	msg := ChatMessage{From: p.Name, Text: answer}
	r.chat = append(r.chat, msg)
	r.bc.ToRoom(r.code, "chatMessage", gin.H{"from": msg.From, "text": msg.Text})
	return true
}

// GiveUp aborts the round on behalf of any participant.
func (r *Room) GiveUp(actorID, reason string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := r.findByConn(actorID)
	if p == nil {
		return false
	}
	r.stopTimer()
	r.bc.ToRoom(r.code, "gameAborted", gin.H{
		"by":         p.Name,
		"reason":     reason,
		"word":       orNil(r.word),
		"difficulty": orNil(r.difficulty),
	})
	r.state = StateEnded
	r.scheduleRemoval()
	return true
}

// SendPlayerList broadcasts the current player snapshot; the presence sweeper
// calls it every few seconds as a resync against missed deliveries.
func (r *Room) SendPlayerList() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sendPlayerList()
}

// Shutdown cancels the round timer and marks the room ended. Called by the
// registry when a room is removed externally.
func (r *Room) Shutdown() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stopTimer()
	r.state = StateEnded
}

// --- internals, all called with r.mu held ---

func (r *Room) findByConn(connID string) *Player {
	for _, p := range r.players {
		if p.ConnID == connID {
			return p
		}
	}
	return nil
}

func (r *Room) findByName(name string) *Player {
	for _, p := range r.players {
		if p.Name == name {
			return p
		}
	}
	return nil
}

func (r *Room) sendPlayerList() {
	players := make([]gin.H, 0, len(r.players))
	for _, p := range r.players {
		var role interface{}
		switch p.ConnID {
		case r.guesserID:
			role = string(RoleGuesser)
		case r.explainerID:
			role = string(RoleExplainer)
		}
		players = append(players, gin.H{"name": p.Name, "ingame": p.Ingame, "role": role})
	}
	var hostName interface{}
	if h := r.findByConn(r.hostID); h != nil {
		hostName = h.Name
	}
	r.bc.ToRoom(r.code, "playerList", gin.H{"players": players, "hostName": hostName})
}

func (r *Room) broadcastWordChosen(actorID string) {
	by := ""
	if p := r.findByConn(actorID); p != nil {
		by = p.Name
	}
	r.bc.ToRoom(r.code, "wordChosen", gin.H{
		"by":         by,
		"blanks":     Blanks(r.word, r.revealed),
		"difficulty": r.difficulty,
	})
}

// startRound begins the active guessing phase and the countdown.
func (r *Room) startRound() {
	r.seconds = game_constants.ROUND_SECONDS
	r.state = StateInRound
	r.stopTimer()
	stop := make(chan struct{})
	r.timerStop = stop
	go r.countdown(stop)

	for _, p := range r.players {
		if !p.Ingame {
			continue
		}
		role := RoleExplainer
		if p.ConnID == r.guesserID {
			role = RoleGuesser
		}
		payload := gin.H{
			"role":        string(role),
			"blanks":      Blanks(r.word, r.revealed),
			"secondsLeft": r.seconds,
			"difficulty":  r.difficulty,
		}
		if role == RoleExplainer {
			payload["word"] = r.word
		}
		r.bc.ToConn(p.ConnID, "gameStarted", payload)
	}
	r.bc.ToRoom(r.code, "blanksUpdate", gin.H{"blanks": Blanks(r.word, r.revealed)})
	r.sendPlayerList()
	log.Printf("[ROUND] Room %s round started (difficulty=%s)", r.code, r.difficulty)
}

func (r *Room) countdown(stop chan struct{}) {
	ticker := time.NewTicker(game_constants.TimerTick)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if r.tick() {
				return
			}
		}
	}
}

// tick advances the countdown by one second and reports whether the countdown
// is over. A tick that raced a terminal transition finds the room no longer
// in-round and drops itself without side effects.
func (r *Room) tick() bool {
	r.mu.Lock()
	if r.state != StateInRound {
		r.mu.Unlock()
		return true
	}
	r.seconds--
	r.bc.ToRoom(r.code, "timerUpdate", gin.H{"seconds": r.seconds})
	if r.seconds > 0 {
		r.mu.Unlock()
		return false
	}
	r.stopTimer()
	r.bc.ToRoom(r.code, "timeUp", gin.H{"word": r.word, "difficulty": r.difficulty})
	r.state = StateEnded
	r.mu.Unlock()
	r.reg.detach(r.code)
	log.Printf("[TIMER] Room %s timed out", r.code)
	return true
}

func (r *Room) stopTimer() {
	if r.timerStop != nil {
		close(r.timerStop)
		r.timerStop = nil
	}
}

func (r *Room) scheduleRemoval() {
	code := r.code
	reg := r.reg
	time.AfterFunc(removeAfter, func() { reg.Remove(code) })
}

func orNil(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
