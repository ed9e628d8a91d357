package types

import "github.com/google/uuid"

// Anomaly describes a settlement that did not eliminate exactly one player.
type Anomaly int

const (
	AnomalyNone Anomaly = iota
	// AnomalyNoElimination: every active player sat down. The round is replayed.
	AnomalyNoElimination
	// AnomalyMultipleEliminees: more than one active player missed a seat.
	// Only the lowest id is eliminated.
	AnomalyMultipleEliminees
)

func (a Anomaly) String() string {
	switch a {
	case AnomalyNone:
		return "none"
	case AnomalyNoElimination:
		return "no_elimination"
	case AnomalyMultipleEliminees:
		return "multiple_eliminees"
	default:
		return "unknown"
	}
}

// RoundStart is emitted when the music starts.
type RoundStart struct {
	GameID  uuid.UUID
	Round   int
	Players int
	Seats   int
}

// SeatClaim pairs a 1-based seat index with its occupant.
type SeatClaim struct {
	Seat     int
	PlayerID int
}

// RoundResult is emitted after settlement.
type RoundResult struct {
	GameID     uuid.UUID
	Round      int
	Seats      []SeatClaim
	Missing    []int // active players without a seat, ascending
	Eliminated int   // 0 when nobody was eliminated
	Anomaly    Anomaly
}

// GameResult is emitted once a single player remains.
type GameResult struct {
	GameID   uuid.UUID
	WinnerID int
	Rounds   int
}
