package discord

import (
	"fmt"
	"sort"
	"strings"

	"github.com/KirkDiggler/pyramid/internal/engine"
	"github.com/KirkDiggler/pyramid/internal/models"
	"github.com/bwmarrin/discordgo"
)

// Button IDs
const (
	ButtonJoin   = "pyramid:join"
	ButtonStart  = "pyramid:start"
	ButtonReveal = "pyramid:reveal"
	ButtonDone   = "pyramid:done"
	ButtonStatus = "pyramid:status"
)

var suitSymbols = map[models.Suit]string{
	models.SuitHearts:   "♥",
	models.SuitDiamonds: "♦",
	models.SuitClubs:    "♣",
	models.SuitSpades:   "♠",
}

const hiddenCard = "🂠"

// cardLabel renders a card as rank and suit symbol, or a card back when hidden
func cardLabel(c models.Card) string {
	if c.Hidden {
		return hiddenCard
	}
	return string(c.Rank) + suitSymbols[c.Suit]
}

// pyramidRows renders the pyramid apex first, one line per row
func pyramidRows(pyramid []models.Card) []string {
	if len(pyramid) == 0 {
		return nil
	}

	var rows []string
	start := 0
	for size := 5; size >= 1 && start < len(pyramid); size-- {
		end := start + size
		if end > len(pyramid) {
			end = len(pyramid)
		}
		labels := make([]string, 0, size)
		for _, c := range pyramid[start:end] {
			labels = append(labels, fmt.Sprintf("%-3s", cardLabel(c)))
		}
		rows = append(rows, strings.Repeat("  ", 5-size)+strings.TrimRight(strings.Join(labels, " "), " "))
		start = end
	}

	// Base was built first
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}
	return rows
}

func playerName(state *models.GameState, id string) string {
	if p := state.Player(id); p != nil {
		return p.Name
	}
	return id
}

// renderTable describes a room for one viewer. The viewer's hand is included, so
// the reply is only ever shown to them.
func renderTable(state *models.GameState, viewerID, flavour string) *Reply {
	fields := []*discordgo.MessageEmbedField{
		{Name: "Room", Value: state.RoomID, Inline: true},
		{Name: "Phase", Value: string(state.CurrentPhase), Inline: true},
	}

	if state.CurrentPhase == models.PhaseDistribution {
		q := engine.Questions[state.CurrentQuestionIndex%engine.QuestionCount]
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("Question %d for %s", state.CurrentQuestionIndex+1, playerName(state, state.CurrentTurnPlayerID)),
			Value: fmt.Sprintf("%s (e.g. `%s`)", q.Prompt, q.Example),
		})
	}

	if state.ActiveCard != nil {
		value := cardLabel(*state.ActiveCard)
		if idx := state.PyramidIndex(state.ActiveCard.ID); idx >= 0 {
			value = fmt.Sprintf("%s · x%d · up to %d sips each", value, engine.SipMultiplier(idx), engine.SipCap(idx))
		}
		fields = append(fields, &discordgo.MessageEmbedField{Name: "Card in play", Value: value, Inline: true})
	}

	if rows := pyramidRows(state.Pyramid); len(rows) > 0 {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  "Pyramid",
			Value: "```\n" + strings.Join(rows, "\n") + "\n```",
		})
	}

	if state.CurrentPhase.IsPyramid() {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Row",
			Value:  fmt.Sprintf("%d · %d of %d revealed", state.CurrentPyramidRow, len(state.RevealedPyramidCards), engine.PyramidSize),
			Inline: true,
		})
	}

	var players []string
	for _, p := range state.Players {
		line := fmt.Sprintf("%s · %d cards · gave %d · took %d", p.Name, len(p.Hand), p.SipsGiven, p.SipsTaken)
		if p.IsHost {
			line = "👑 " + line
		}
		if state.HasConfirmed(p.ID) {
			line += " ✅"
		}
		if !p.IsConnected {
			line += " 💤"
		}
		players = append(players, line)
	}
	if len(players) > 0 {
		fields = append(fields, &discordgo.MessageEmbedField{Name: "Players", Value: strings.Join(players, "\n")})
	}

	if lines := allocationLines(state); len(lines) > 0 {
		fields = append(fields, &discordgo.MessageEmbedField{Name: "Sips on the table", Value: strings.Join(lines, "\n")})
	}

	if c := state.ActiveChallenge; c != nil {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  "Challenge!",
			Value: fmt.Sprintf("%s says %s is lying. %s, `/pyramid prove`!", playerName(state, c.ChallengerID), playerName(state, c.TargetID), playerName(state, c.TargetID)),
		})
	}

	if viewer := state.Player(viewerID); viewer != nil && len(viewer.Hand) > 0 {
		labels := make([]string, 0, len(viewer.Hand))
		for _, c := range viewer.Hand {
			face := c
			face.Hidden = false
			labels = append(labels, cardLabel(face))
		}
		fields = append(fields, &discordgo.MessageEmbedField{Name: "Your hand", Value: strings.Join(labels, " ")})
	}

	return &Reply{
		Title:       "Pyramid",
		Description: flavour,
		Fields:      fields,
		Buttons:     phaseButtons(state.CurrentPhase),
		Ephemeral:   true,
	}
}

// allocationLines lists allocations in dealing order
func allocationLines(state *models.GameState) []string {
	allocations := make([]*models.SipAllocation, 0, len(state.PendingAllocations))
	ids := make(map[*models.SipAllocation]string, len(state.PendingAllocations))
	for id, a := range state.PendingAllocations {
		allocations = append(allocations, a)
		ids[a] = id
	}
	sort.Slice(allocations, func(i, j int) bool {
		return allocations[i].Seq < allocations[j].Seq
	})

	lines := make([]string, 0, len(allocations))
	for _, a := range allocations {
		lines = append(lines, fmt.Sprintf("%s → %s · %d sips · %s · `%s`",
			playerName(state, a.FromPlayerID), playerName(state, a.ToPlayerID), a.Amount, a.Status, ids[a]))
	}
	return lines
}

func phaseButtons(phase models.Phase) []discordgo.MessageComponent {
	switch phase {
	case models.PhaseLobby:
		return []discordgo.MessageComponent{
			discordgo.Button{Label: "Join", Style: discordgo.SuccessButton, CustomID: ButtonJoin},
			discordgo.Button{Label: "Start", Style: discordgo.PrimaryButton, CustomID: ButtonStart},
		}
	case models.PhasePyramid, models.PhaseReveal:
		return []discordgo.MessageComponent{
			discordgo.Button{Label: "Reveal", Style: discordgo.PrimaryButton, CustomID: ButtonReveal},
		}
	case models.PhaseAllocate:
		return []discordgo.MessageComponent{
			discordgo.Button{Label: "Done giving", Style: discordgo.SuccessButton, CustomID: ButtonDone},
			discordgo.Button{Label: "Table", Style: discordgo.SecondaryButton, CustomID: ButtonStatus},
		}
	default:
		return []discordgo.MessageComponent{
			discordgo.Button{Label: "Table", Style: discordgo.SecondaryButton, CustomID: ButtonStatus},
		}
	}
}

// renderLeaderboard lists players by sips taken
func renderLeaderboard(board *models.Leaderboard) *Reply {
	lines := make([]string, 0, len(board.PlayerStats))
	for i, st := range board.PlayerStats {
		lines = append(lines, fmt.Sprintf("%d. %s · took %d · gave %d", i+1, st.PlayerName, st.SipsTaken, st.SipsGiven))
	}
	description := "Nobody has had a sip yet."
	if len(lines) > 0 {
		description = strings.Join(lines, "\n")
	}
	return &Reply{
		Title:       "Leaderboard · " + board.RoomID,
		Description: description,
	}
}
