package models

import (
	"fmt"
	"strings"
)

// Suit is one of the four French suits
type Suit string

const (
	SuitHearts   Suit = "hearts"
	SuitDiamonds Suit = "diamonds"
	SuitClubs    Suit = "clubs"
	SuitSpades   Suit = "spades"
)

// Rank is the face of a card, "2" through "A"
type Rank string

const (
	RankTwo   Rank = "2"
	RankThree Rank = "3"
	RankFour  Rank = "4"
	RankFive  Rank = "5"
	RankSix   Rank = "6"
	RankSeven Rank = "7"
	RankEight Rank = "8"
	RankNine  Rank = "9"
	RankTen   Rank = "10"
	RankJack  Rank = "J"
	RankQueen Rank = "Q"
	RankKing  Rank = "K"
	RankAce   Rank = "A"
)

// Color is the colour of a suit
type Color string

const (
	ColorRed   Color = "red"
	ColorBlack Color = "black"
)

// Suits lists every suit in deck generation order
var Suits = []Suit{SuitHearts, SuitDiamonds, SuitClubs, SuitSpades}

// Ranks lists every rank from lowest to highest
var Ranks = []Rank{
	RankTwo, RankThree, RankFour, RankFive, RankSix, RankSeven, RankEight,
	RankNine, RankTen, RankJack, RankQueen, RankKing, RankAce,
}

// Value maps a rank onto 2..14. Unknown ranks are worth 0.
func (r Rank) Value() int {
	for i, rank := range Ranks {
		if rank == r {
			return i + 2
		}
	}
	return 0
}

// RankFromValue is the inverse of Rank.Value
func RankFromValue(value int) (Rank, bool) {
	if value < 2 || value > 14 {
		return "", false
	}
	return Ranks[value-2], true
}

// ParseRank reads a rank case-insensitively ("q", "Q", "10")
func ParseRank(s string) (Rank, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for _, rank := range Ranks {
		if string(rank) == s {
			return rank, true
		}
	}
	return "", false
}

// ParseSuit reads a suit case-insensitively
func ParseSuit(s string) (Suit, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, suit := range Suits {
		if string(suit) == s {
			return suit, true
		}
	}
	return "", false
}

// Color returns red for hearts and diamonds, black otherwise
func (s Suit) Color() Color {
	if s == SuitHearts || s == SuitDiamonds {
		return ColorRed
	}
	return ColorBlack
}

// Card is a single playing card. Only Hidden ever changes after creation.
type Card struct {
	// ID is unique within a room
	ID string `json:"id"`

	Suit  Suit `json:"suit"`
	Rank  Rank `json:"rank"`
	Value int  `json:"value"`

	// Hidden is true until the card is revealed face up
	Hidden bool `json:"hidden"`
}

// NewCard builds a hidden card with its value derived from the rank
func NewCard(id string, suit Suit, rank Rank) Card {
	return Card{
		ID:     id,
		Suit:   suit,
		Rank:   rank,
		Value:  rank.Value(),
		Hidden: true,
	}
}

// Color returns the colour of the card's suit
func (c Card) Color() Color {
	return c.Suit.Color()
}

func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}
