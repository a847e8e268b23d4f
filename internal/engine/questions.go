package engine

import (
	"strings"

	"github.com/KirkDiggler/pyramid/internal/models"
)

// QuestionCount is the number of phase 1 rounds
const QuestionCount = 5

// Question indexes
const (
	QuestionColor = iota
	QuestionHigherLower
	QuestionInOut
	QuestionSuit
	QuestionExact
)

// Question describes a phase 1 round for front-ends
type Question struct {
	Prompt  string
	Options []string

	// Example shows the expected answer format
	Example string
}

// Questions is indexed by the current question index
var Questions = [QuestionCount]Question{
	{Prompt: "Red or Black?", Options: []string{"red", "black"}, Example: "red"},
	{Prompt: "Higher or Lower than your first card?", Options: []string{"more", "less"}, Example: "more"},
	{Prompt: "In or Out of your first two cards?", Options: []string{"in", "out"}, Example: "in"},
	{Prompt: "Which suit?", Options: []string{"hearts", "diamonds", "clubs", "spades"}, Example: "spades"},
	{Prompt: "Exact card?", Example: "q-hearts"},
}

// EvaluateAnswer decides whether answer is right for card at questionIndex, judged
// against the answering player's own hand. It never touches game state.
func EvaluateAnswer(card models.Card, questionIndex int, hand []models.Card, answer string) bool {
	answer = strings.ToLower(strings.TrimSpace(answer))

	switch questionIndex {
	case QuestionColor:
		return answer == string(card.Color())

	case QuestionHigherLower:
		if len(hand) == 0 {
			return false
		}
		first := hand[0].Value
		switch answer {
		case "more", "higher":
			return card.Value > first
		case "less", "lower":
			return card.Value < first
		}
		return false

	case QuestionInOut:
		if len(hand) < 2 {
			return false
		}
		low, high := hand[0].Value, hand[1].Value
		if low > high {
			low, high = high, low
		}
		switch answer {
		case "in":
			return card.Value > low && card.Value < high
		case "out":
			return card.Value < low || card.Value > high
		}
		return false

	case QuestionSuit:
		suit, ok := models.ParseSuit(answer)
		return ok && suit == card.Suit

	case QuestionExact:
		parts := strings.Split(answer, "-")
		if len(parts) != 2 {
			return false
		}
		rank, ok := models.ParseRank(parts[0])
		if !ok {
			return false
		}
		suit, ok := models.ParseSuit(parts[1])
		if !ok {
			return false
		}
		return rank == card.Rank && suit == card.Suit
	}

	return false
}
