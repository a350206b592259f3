package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/gtobot/internal/game"
	"github.com/lox/gtobot/internal/policy"
	"github.com/lox/gtobot/internal/simulator"
	"github.com/lox/gtobot/internal/table"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12")).
			Width(14)

	foldStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	callStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	raiseStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
)

func actionStyle(k game.ActionKind) lipgloss.Style {
	switch k {
	case game.Raise:
		return raiseStyle
	case game.Call:
		return callStyle
	}
	return foldStyle
}

func row(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), value)
}

// renderDecision formats a decision and the signals behind it.
func renderDecision(d policy.Decision) string {
	s := d.Signals
	rows := []string{
		headerStyle.Render("Decision"),
		row("action", actionStyle(d.Action.Kind).Render(d.Action.String())),
		row("hand", fmt.Sprintf("%s (%.2f)", s.Hand, s.Strength)),
		row("board", s.Texture.String()),
		row("position", fmt.Sprintf("%s x%.2f", d.Context.Position, s.PositionMultiplier)),
		row("round", fmt.Sprintf("%d x%.2f", d.Context.Round, s.RoundMultiplier)),
		row("stack", fmt.Sprintf("%d (%.2f) x%.2f", d.Context.Stack, d.Context.StackRatio, s.StackMultiplier)),
		row("adjusted", fmt.Sprintf("%.3f", s.Adjusted())),
		row("pot odds", fmt.Sprintf("%.3f", s.PotOdds)),
	}
	if d.Reasoning != "" {
		rows = append(rows, "", d.Reasoning)
	}
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

var positionOrder = []table.Position{table.Early, table.Middle, table.Late, table.SmallBlind, table.BigBlind}

// renderReport formats a simulation summary.
func renderReport(r *simulator.Report, seed int64) string {
	st := r.Stats
	low, high := st.ConfidenceInterval95()

	rows := []string{
		headerStyle.Render(fmt.Sprintf("Simulation: %d tables, %d hands (seed %d)", r.Tables, r.Hands, seed)),
		row("result", fmt.Sprintf("%.4f bb/hand ± %.4f", st.Mean(), st.StdError())),
		row("95% CI", fmt.Sprintf("[%.4f, %.4f]", low, high)),
		row("median", fmt.Sprintf("%.3f bb", st.Median())),
		row("showdown", fmt.Sprintf("%d won, %.2f bb", st.ShowdownWins, st.ShowdownBB)),
		row("no showdown", fmt.Sprintf("%d won, %.2f bb", st.NonShowdownWins, st.NonShowdownBB)),
		row("max pot", fmt.Sprintf("%d", st.MaxPot)),
		row("rebuys", fmt.Sprintf("%d", r.Rebuys)),
		row("elapsed", r.Elapsed.String()),
		"",
		headerStyle.Render("Actions"),
	}
	for _, street := range []game.Street{game.Preflop, game.Flop, game.Turn, game.River} {
		counts := r.Actions[street]
		rows = append(rows, row(street.String(), fmt.Sprintf("%s %d  %s %d  %s %d",
			foldStyle.Render("fold"), counts[game.Fold],
			callStyle.Render("call"), counts[game.Call],
			raiseStyle.Render("raise"), counts[game.Raise])))
	}

	rows = append(rows, "", headerStyle.Render("Positions"))
	for _, pos := range positionOrder {
		ps, ok := st.Positions[pos]
		if !ok {
			continue
		}
		rows = append(rows, row(pos.String(), fmt.Sprintf("%d hands, %.3f bb/hand", ps.Hands, ps.Mean())))
	}
	return boxStyle.Render(strings.Join(rows, "\n"))
}
