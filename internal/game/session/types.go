package session

// SeatPool is the permit pool players claim seats from. Every arming is
// bound to a round; claims for any other round fail.
type SeatPool interface {
	TryClaim(round int) bool
	Reset(round, capacity int)
	ReleaseAll(round, capacity int)
}

// PlayerState 玩家协程状态
type PlayerState int32

const (
	PlayerWaitingForStop PlayerState = iota
	PlayerClaiming
	PlayerWaitingForResume
	PlayerEliminated
	PlayerGameOver
)

func (s PlayerState) String() string {
	switch s {
	case PlayerWaitingForStop:
		return "waiting_for_stop"
	case PlayerClaiming:
		return "claiming"
	case PlayerWaitingForResume:
		return "waiting_for_resume"
	case PlayerEliminated:
		return "eliminated"
	case PlayerGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Done reports whether the player goroutine has exited.
func (s PlayerState) Done() bool {
	return s == PlayerEliminated || s == PlayerGameOver
}
