// Package round holds the shared game state mutated by the coordinator and
// the players.
package round

import (
	"slices"
	"sync"

	"github.com/palemoky/musical-chairs/internal/types"
)

// Settlement is the state of a round once claims are closed.
type Settlement struct {
	Round   int
	Seats   int
	Seated  []int // claim order
	Missing []int // active ids without a seat, ascending
}

// State is the round state shared by the coordinator and all players.
//
// Only the coordinator changes the active set. Players only append claims.
type State struct {
	active   []int
	seats    int
	occupied []int
	round    int
	open     bool

	mu sync.Mutex
}

// NewState creates the state for players 1..players.
func NewState(players int) *State {
	active := make([]int, 0, players)
	for id := 1; id <= players; id++ {
		active = append(active, id)
	}
	return &State{active: active}
}

// BeginRound sizes the round at one seat fewer than active players, clears
// the previous claims and opens the new round for claiming.
func (s *State) BeginRound() types.RoundStart {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.round++
	s.seats = max(len(s.active)-1, 0)
	s.occupied = s.occupied[:0]
	s.open = true

	return types.RoundStart{
		Round:   s.round,
		Players: len(s.active),
		Seats:   s.seats,
	}
}

// RecordClaim records a seat taken by playerID during round. Claims for any
// other round, or arriving after settlement, are rejected.
func (s *State) RecordClaim(round, playerID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open || round != s.round {
		return false
	}
	s.occupied = append(s.occupied, playerID)
	return true
}

// Settle closes the current round to further claims and reports who sat and
// which active players did not.
func (s *State) Settle() Settlement {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.open = false

	seated := make(map[int]struct{}, len(s.occupied))
	for _, id := range s.occupied {
		seated[id] = struct{}{}
	}
	var missing []int
	for _, id := range s.active {
		if _, ok := seated[id]; !ok {
			missing = append(missing, id)
		}
	}
	slices.Sort(missing)

	return Settlement{
		Round:   s.round,
		Seats:   s.seats,
		Seated:  slices.Clone(s.occupied),
		Missing: missing,
	}
}

// Eliminate removes playerID from the active set. It reports whether the
// player was present; removing an absent id is a no-op.
func (s *State) Eliminate(playerID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.Index(s.active, playerID)
	if idx < 0 {
		return false
	}
	s.active = slices.Delete(s.active, idx, idx+1)
	return true
}

// ActiveCount 当前存活玩家数
func (s *State) ActiveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.active)
}

// Active returns a copy of the active ids in seating order.
func (s *State) Active() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.active)
}

func (s *State) IsActive(playerID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Contains(s.active, playerID)
}

// Seats returns the seat count of the current round.
func (s *State) Seats() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seats
}

func (s *State) Round() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.round
}

// Occupied returns a copy of this round's claims in claim order.
func (s *State) Occupied() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.occupied)
}
