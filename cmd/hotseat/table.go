package main

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/pyramid/internal/engine"
	"github.com/KirkDiggler/pyramid/internal/models"
	"github.com/pterm/pterm"
)

var suitSymbols = map[models.Suit]string{
	models.SuitHearts:   "♥",
	models.SuitDiamonds: "♦",
	models.SuitClubs:    "♣",
	models.SuitSpades:   "♠",
}

func cardLabel(c models.Card) string {
	if c.Hidden {
		return "##"
	}
	label := string(c.Rank) + suitSymbols[c.Suit]
	if c.Suit.Color() == models.ColorRed {
		return pterm.LightRed(label)
	}
	return label
}

func handLabel(hand []models.Card) string {
	labels := make([]string, 0, len(hand))
	for _, c := range hand {
		face := c
		face.Hidden = false
		labels = append(labels, cardLabel(face))
	}
	return strings.Join(labels, " ")
}

func playerName(state *models.GameState, id string) string {
	if p := state.Player(id); p != nil {
		return p.Name
	}
	return id
}

// pyramidLines renders the pyramid apex first
func pyramidLines(pyramid []models.Card) []string {
	var rows []string
	start := 0
	for size := 5; size >= 1 && start < len(pyramid); size-- {
		end := min(start+size, len(pyramid))
		labels := make([]string, 0, size)
		for _, c := range pyramid[start:end] {
			labels = append(labels, cardLabel(c))
		}
		rows = append([]string{strings.Repeat(" ", 5-size) + strings.Join(labels, " ")}, rows...)
		start = end
	}
	return rows
}

func printTable(state *models.GameState) {
	data := pterm.TableData{{"Player", "Cards", "Gave", "Took"}}
	for _, p := range state.Players {
		name := p.Name
		if p.ID == state.CurrentTurnPlayerID {
			name = "> " + name
		}
		if state.HasConfirmed(p.ID) {
			name += " (done)"
		}
		data = append(data, []string{name, fmt.Sprint(len(p.Hand)), fmt.Sprint(p.SipsGiven), fmt.Sprint(p.SipsTaken)})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(data).Render()

	if rows := pyramidLines(state.Pyramid); len(rows) > 0 {
		title := "Pyramid"
		if state.ActiveCard != nil {
			if idx := state.PyramidIndex(state.ActiveCard.ID); idx >= 0 {
				title = fmt.Sprintf("Pyramid · %s · x%d", cardLabel(*state.ActiveCard), engine.SipMultiplier(idx))
			}
		}
		pterm.DefaultBox.WithTitle(title).Println(strings.Join(rows, "\n"))
	}
}
