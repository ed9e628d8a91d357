package round

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState_BeginRound(t *testing.T) {
	t.Parallel()

	s := NewState(4)
	assert.Equal(t, []int{1, 2, 3, 4}, s.Active())

	start := s.BeginRound()
	assert.Equal(t, 1, start.Round)
	assert.Equal(t, 4, start.Players)
	assert.Equal(t, 3, start.Seats)
	assert.Equal(t, s.ActiveCount()-1, s.Seats())
}

func TestState_BeginRoundClearsClaims(t *testing.T) {
	t.Parallel()

	s := NewState(3)
	s.BeginRound()
	require.True(t, s.RecordClaim(1, 2))
	require.True(t, s.RecordClaim(1, 3))
	assert.Equal(t, []int{2, 3}, s.Occupied())

	s.Settle()
	s.Eliminate(1)

	start := s.BeginRound()
	assert.Equal(t, 2, start.Round)
	assert.Equal(t, 1, start.Seats)
	assert.Empty(t, s.Occupied())
}

func TestState_RecordClaimRejectsStaleRounds(t *testing.T) {
	t.Parallel()

	s := NewState(3)

	// No round open yet
	assert.False(t, s.RecordClaim(0, 1))

	s.BeginRound()
	assert.False(t, s.RecordClaim(2, 1))
	assert.True(t, s.RecordClaim(1, 1))

	s.Settle()
	// Straggler after settlement
	assert.False(t, s.RecordClaim(1, 2))

	s.BeginRound()
	assert.False(t, s.RecordClaim(1, 2))
	assert.Empty(t, s.Occupied())
}

func TestState_Settle(t *testing.T) {
	t.Parallel()

	s := NewState(4)
	s.BeginRound()
	s.RecordClaim(1, 3)
	s.RecordClaim(1, 1)
	s.RecordClaim(1, 4)

	st := s.Settle()
	assert.Equal(t, 1, st.Round)
	assert.Equal(t, 3, st.Seats)
	assert.Equal(t, []int{3, 1, 4}, st.Seated)
	assert.Equal(t, []int{2}, st.Missing)
	assert.LessOrEqual(t, len(st.Seated), st.Seats)
}

func TestState_SettleMissingSorted(t *testing.T) {
	t.Parallel()

	s := NewState(5)
	s.BeginRound()
	s.RecordClaim(1, 2)

	st := s.Settle()
	assert.Equal(t, []int{1, 3, 4, 5}, st.Missing)
}

func TestState_EliminateIsIdempotent(t *testing.T) {
	t.Parallel()

	s := NewState(3)
	assert.True(t, s.Eliminate(2))
	assert.False(t, s.Eliminate(2))
	assert.False(t, s.Eliminate(42))

	assert.Equal(t, []int{1, 3}, s.Active())
	assert.Equal(t, 2, s.ActiveCount())
	assert.False(t, s.IsActive(2))
	assert.True(t, s.IsActive(3))
}

func TestState_ConcurrentClaims(t *testing.T) {
	t.Parallel()

	const players = 32
	s := NewState(players)
	s.BeginRound()

	var wg sync.WaitGroup
	for id := 1; id <= players; id++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.RecordClaim(1, id)
		}()
	}
	wg.Wait()

	assert.Len(t, s.Occupied(), players)
	assert.Empty(t, s.Settle().Missing)
}
