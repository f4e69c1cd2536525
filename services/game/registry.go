package game

import (
	"log"
	"math/rand"
	"regexp"
	"strings"
	"sync"

	game_constants "Parola/constants/game"
)

var codePattern = regexp.MustCompile(`^[A-Za-z0-9]+$`)

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Registry owns the code->Room map and a connection->code index for O(1)
// lookup of the room a connection currently plays in.
type Registry struct {
	mu    sync.RWMutex
	rooms map[string]*Room
	conns map[string]string
	bc    Broadcaster
}

func NewRegistry(bc Broadcaster) *Registry {
	return &Registry{
		rooms: make(map[string]*Room),
		conns: make(map[string]string),
		bc:    bc,
	}
}

// CreateRoom creates a room and joins the creator as its first player and
// host. A custom code is normalized to uppercase and must be unique among
// live rooms; otherwise a random 4-character base-36 code is generated,
// retrying on collision. A connection plays in at most one room, so a creator
// still seated elsewhere leaves that room first.
func (reg *Registry) CreateRoom(connID, name, customCode string) (*Room, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrNameRequired
	}
	if old, ok := reg.FindByConnection(connID); ok {
		old.Leave(connID)
	}

	reg.mu.Lock()
	var code string
	if customCode != "" {
		code = strings.ToUpper(customCode)
		if !codePattern.MatchString(code) {
			reg.mu.Unlock()
			return nil, ErrInvalidCode
		}
		if _, taken := reg.rooms[code]; taken {
			reg.mu.Unlock()
			return nil, ErrCodeTaken
		}
	} else {
		for {
			code = randomCode()
			if _, taken := reg.rooms[code]; !taken {
				break
			}
		}
	}

	room := &Room{
		code:   code,
		state:  StateLobby,
		hostID: connID,
		reg:    reg,
		bc:     reg.bc,
	}
	room.players = append(room.players, &Player{ConnID: connID, Name: name})
	reg.rooms[code] = room
	reg.conns[connID] = code
	reg.mu.Unlock()

	log.Printf("[CREATE] Room %s created by %s (%s)", code, name, connID)
	return room, nil
}

// Join validates the code, resolves the room and adds the player to it. A
// connection seated in a different room leaves it first; rejoining the same
// room fails with ErrAlreadyJoined.
func (reg *Registry) Join(code, connID, name string) (*Room, error) {
	if code == "" || strings.TrimSpace(name) == "" {
		return nil, ErrInvalidJoin
	}
	normalized := strings.ToUpper(code)
	if !codePattern.MatchString(normalized) {
		return nil, ErrInvalidCode
	}
	room, ok := reg.FindByCode(normalized)
	if !ok {
		return nil, ErrRoomNotFound
	}
	if old, ok := reg.FindByConnection(connID); ok && old != room {
		old.Leave(connID)
	}
	if err := room.Join(connID, name); err != nil {
		return nil, err
	}
	return room, nil
}

func (reg *Registry) FindByCode(code string) (*Room, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	room, ok := reg.rooms[strings.ToUpper(code)]
	return room, ok
}

func (reg *Registry) FindByConnection(connID string) (*Room, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	code, ok := reg.conns[connID]
	if !ok {
		return nil, false
	}
	room, ok := reg.rooms[code]
	return room, ok
}

// Rooms returns a snapshot of the live rooms, for the presence sweeper.
func (reg *Registry) Rooms() []*Room {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	rooms := make([]*Room, 0, len(reg.rooms))
	for _, room := range reg.rooms {
		rooms = append(rooms, room)
	}
	return rooms
}

// Remove deletes a room and cancels its timer. Idempotent.
func (reg *Registry) Remove(code string) {
	code = strings.ToUpper(code)
	reg.mu.RLock()
	room := reg.rooms[code]
	reg.mu.RUnlock()

	reg.detach(code)
	if room != nil {
		room.Shutdown()
	}
}

// detach drops the map entries only. Room methods call it while holding the
// room lock, so it must never lock a room itself.
func (reg *Registry) detach(code string) {
	reg.mu.Lock()
	delete(reg.rooms, code)
	for id, c := range reg.conns {
		if c == code {
			delete(reg.conns, id)
		}
	}
	reg.mu.Unlock()
}

func (reg *Registry) track(connID, code string) {
	reg.mu.Lock()
	reg.conns[connID] = code
	reg.mu.Unlock()
}

func (reg *Registry) untrack(connID string) {
	reg.mu.Lock()
	delete(reg.conns, connID)
	reg.mu.Unlock()
}

func randomCode() string {
	b := make([]byte, game_constants.RoomCodeLength)
	for i := range b {
		b[i] = codeAlphabet[rand.Intn(len(codeAlphabet))]
	}
	return string(b)
}
