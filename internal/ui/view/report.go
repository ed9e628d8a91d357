// Package view renders game events for the terminal.
package view

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/palemoky/musical-chairs/internal/types"
	"github.com/palemoky/musical-chairs/internal/ui/common"
)

// ConsoleReporter writes every event to out. Writes are serialized so
// events from different goroutines never interleave.
type ConsoleReporter struct {
	mu  sync.Mutex
	out io.Writer
}

func NewConsoleReporter(out io.Writer) *ConsoleReporter {
	return &ConsoleReporter{out: out}
}

func (r *ConsoleReporter) RoundStarted(ev types.RoundStart) {
	r.write(RenderRoundStart(ev))
}

func (r *ConsoleReporter) RoundSettled(ev types.RoundResult) {
	r.write(RenderRoundResult(ev))
}

func (r *ConsoleReporter) GameOver(ev types.GameResult) {
	r.write(RenderGameOver(ev))
}

func (r *ConsoleReporter) write(s string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, _ = io.WriteString(r.out, s+"\n")
}

// RenderWelcome renders the banner shown before the first round.
func RenderWelcome(players int) string {
	title := common.TitleStyle.Render("Musical Chairs")
	body := fmt.Sprintf("%s\n%d players, %d seats to start", title, players, players-1)
	return common.BoxStyle.Render(body)
}

func RenderRoundStart(ev types.RoundStart) string {
	var sb strings.Builder
	sb.WriteString(common.Divider + "\n")
	sb.WriteString(common.TitleStyle.Render(fmt.Sprintf("Round %d", ev.Round)))
	fmt.Fprintf(&sb, ": %d players, %d seats\n", ev.Players, ev.Seats)
	sb.WriteString(common.MusicIcon + " The music is playing...")
	return sb.String()
}

func RenderRoundResult(ev types.RoundResult) string {
	var sb strings.Builder
	sb.WriteString(common.StopIcon + " The music stopped!\n")
	for _, sc := range ev.Seats {
		sb.WriteString(common.SeatStyle.Render(fmt.Sprintf("%s [Seat %d]: P%d", common.ChairIcon, sc.Seat, sc.PlayerID)))
		sb.WriteString("\n")
	}

	switch ev.Anomaly {
	case types.AnomalyNoElimination:
		sb.WriteString(common.WarningStyle.Render(common.WarningIcon + " Everyone found a seat, replaying the round"))
	case types.AnomalyMultipleEliminees:
		sb.WriteString(common.WarningStyle.Render(fmt.Sprintf("%s Players %s missed a seat", common.WarningIcon, joinPlayers(ev.Missing))))
		sb.WriteString("\n")
		sb.WriteString(renderEliminated(ev.Eliminated))
	default:
		sb.WriteString(renderEliminated(ev.Eliminated))
	}
	return sb.String()
}

func renderEliminated(id int) string {
	return common.OutStyle.Render(fmt.Sprintf("%s P%d did not get a seat and is out!", common.OutIcon, id))
}

func RenderGameOver(ev types.GameResult) string {
	var sb strings.Builder
	sb.WriteString(common.Divider + "\n")
	sb.WriteString(common.WinnerStyle.Render(fmt.Sprintf("%s Winner: P%d after %d rounds! %s", common.WinnerIcon, ev.WinnerID, ev.Rounds, common.WinnerIcon)))
	sb.WriteString("\n" + common.DimStyle.Render(ev.GameID.String()))
	return sb.String()
}

func joinPlayers(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("P%d", id)
	}
	return strings.Join(parts, ", ")
}
