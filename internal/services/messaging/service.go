package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/KirkDiggler/pyramid/internal/engine"
	"github.com/KirkDiggler/pyramid/internal/models"
	"github.com/KirkDiggler/pyramid/internal/services/game"
)

// service implements the Service interface
type service struct {
	// Random number generator for selecting random messages
	mu   sync.Mutex
	rand *rand.Rand
}

// New creates a new messaging service
func New(cfg *Config) (*service, error) {
	seed := time.Now().UnixNano()
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	}

	return &service{
		rand: rand.New(rand.NewSource(seed)),
	}, nil
}

func (s *service) pick(messages []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return messages[s.rand.Intn(len(messages))]
}

// GetJoinRoomMessage returns a message for when a player joins a room
func (s *service) GetJoinRoomMessage(ctx context.Context, input *GetJoinRoomMessageInput) (*GetJoinRoomMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	tone := input.PreferredTone
	if tone == "" {
		tone = ToneFunny
	}

	var messages []string
	switch {
	case input.AlreadyJoined && input.Phase == models.PhaseLobby:
		messages = []string{
			fmt.Sprintf("You're already at the table, %s. Pour something while we wait.", input.PlayerName),
			"Patience, grasshopper! You're already in this room.",
			"Double-dipping, are we? You already have a seat!",
		}
	case input.AlreadyJoined:
		messages = []string{
			fmt.Sprintf("Welcome back, %s. Your cards missed you.", input.PlayerName),
			"Found your seat again! Try not to wander off this time.",
			"Did you lose the table... again? Here you go, bud.",
		}
	default:
		messages = []string{
			fmt.Sprintf("Welcome to the pyramid, %s! Hope your liver is warmed up.", input.PlayerName),
			fmt.Sprintf("Fresh meat! Er, I mean... welcome, %s!", input.PlayerName),
			fmt.Sprintf("A new challenger appears! %s takes a seat.", input.PlayerName),
			fmt.Sprintf("%s joined. Do you want drunk people? Because that's how you get drunk people!", input.PlayerName),
		}
	}

	return &GetJoinRoomMessageOutput{
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}

// GetPhaseMessage returns a dynamic message describing what the table is doing
func (s *service) GetPhaseMessage(ctx context.Context, input *GetPhaseMessageInput) (*GetPhaseMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var messages []string
	switch input.Phase {
	case models.PhaseLobby:
		messages = []string{
			"Gather 'round, brave souls! The pyramid awaits your courage (and your liver).",
			"A new pyramid is forming. Join now or forever hold your sobriety!",
		}
	case models.PhaseDistribution:
		prompt := ""
		if input.QuestionIndex >= 0 && input.QuestionIndex < len(engine.Questions) {
			prompt = engine.Questions[input.QuestionIndex].Prompt
		}
		messages = []string{
			fmt.Sprintf("Dealing hands. Question %d: %s", input.QuestionIndex+1, prompt),
			fmt.Sprintf("Guess right and you give, guess wrong and you drink. %s", prompt),
		}
	case models.PhasePyramid:
		messages = []string{
			"The pyramid is built. The host holds the next card.",
			"Fifteen cards, face down. Somebody's going to regret this.",
		}
	case models.PhaseReveal:
		messages = []string{
			"Waiting on the host to flip the next card.",
			"The next card is one flip away. Host, do the honours.",
		}
	case models.PhaseAllocate:
		messages = []string{
			fmt.Sprintf("Card's up at x%d! Hand out sips if you hold it. Or pretend you do.", input.Multiplier),
			fmt.Sprintf("x%d on the table. Liars welcome, but they drink double when caught.", input.Multiplier),
		}
	case models.PhaseResolve:
		messages = []string{
			"Time to pay up. Accept your sips or call the liar out.",
			"Drink or challenge. Choose wisely.",
		}
	case models.PhaseGameOver:
		messages = []string{
			"Game over! Time to pay your liquid debts.",
			"The pyramid has spoken, and it said 'drink up!'",
			"The final tally is in. Bottoms up to the unlucky ones!",
		}
	default:
		return &GetPhaseMessageOutput{
			Message: "Pyramid in progress. May the cards be in your favor!",
		}, nil
	}

	return &GetPhaseMessageOutput{
		Message: s.pick(messages),
	}, nil
}

// GetTurnResultMessage returns a message for a phase 1 answer
func (s *service) GetTurnResultMessage(ctx context.Context, input *GetTurnResultMessageInput) (*GetTurnResultMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var titles, messages []string
	if input.Correct {
		titles = []string{"Nailed it!", "Called it!", "DANGER ZONE!"}
		if input.IsPersonalMessage {
			messages = []string{
				fmt.Sprintf("It was the %s. You hand out a sip!", input.Card),
				fmt.Sprintf("The %s, just like you said. Choose your victim!", input.Card),
			}
		} else {
			messages = []string{
				fmt.Sprintf("%s called the %s and hands out a sip!", input.PlayerName, input.Card),
				fmt.Sprintf("The card gods favor %s today. Someone's about to get thirsty!", input.PlayerName),
			}
		}
	} else {
		titles = []string{"Nope!", "Sad trumpet :(", "PHRASING!"}
		if input.IsPersonalMessage {
			messages = []string{
				fmt.Sprintf("It was the %s. Drink up!", input.Card),
				fmt.Sprintf("The %s says you drink. Bottoms up!", input.Card),
			}
		} else {
			messages = []string{
				fmt.Sprintf("%s guessed wrong on the %s. Drink up!", input.PlayerName, input.Card),
				fmt.Sprintf("Oof! %s whiffed it. One sip, friend.", input.PlayerName),
			}
		}
	}

	return &GetTurnResultMessageOutput{
		Title:   s.pick(titles),
		Message: s.pick(messages),
	}, nil
}

// GetChallengeVerdictMessage returns a message for a settled challenge
func (s *service) GetChallengeVerdictMessage(ctx context.Context, input *GetChallengeVerdictMessageInput) (*GetChallengeVerdictMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.Truthful {
		return &GetChallengeVerdictMessageOutput{
			Title: "Honest as a priest",
			Message: s.pick([]string{
				fmt.Sprintf("%s had the card all along. %s drinks %d!", input.GiverName, input.ChallengerName, input.Penalty),
				fmt.Sprintf("Wrong call, %s. %s was telling the truth. Drink %d!", input.ChallengerName, input.GiverName, input.Penalty),
			}),
		}, nil
	}

	return &GetChallengeVerdictMessageOutput{
		Title: "Menteur!",
		Message: s.pick([]string{
			fmt.Sprintf("%s was bluffing! %d sips, liar.", input.GiverName, input.Penalty),
			fmt.Sprintf("Busted! %s caught %s lying. %s drinks %d!", input.ChallengerName, input.GiverName, input.GiverName, input.Penalty),
		}),
	}, nil
}

// GetErrorMessage returns a user-friendly error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil || input.Err == nil {
		return nil, errors.New("input and error cannot be nil")
	}

	tone := input.PreferredTone
	if tone == "" {
		tone = ToneSarcastic
	}

	title := "Hold up"
	var messages []string

	switch err := input.Err; {
	case errors.Is(err, engine.ErrNotYourTurn):
		messages = []string{
			"It's not your turn. Drink some water while you wait.",
			"Easy there! Someone else is on the hot seat.",
		}
	case errors.Is(err, engine.ErrNotHost), errors.Is(err, game.ErrNotHost):
		messages = []string{
			"Only the host gets to do that. Nice try though.",
			"You're not the boss of this pyramid.",
		}
	case errors.Is(err, engine.ErrInvalidPhase):
		messages = []string{
			"That move doesn't fit what the table is doing right now.",
			"Wrong time for that! Check the table status.",
		}
	case errors.Is(err, engine.ErrSipCapExceeded):
		title = "Greedy!"
		messages = []string{
			"That's more sips than this card allows. Even liars have limits.",
			"Whoa, you can't give that many for this card.",
		}
	case errors.Is(err, engine.ErrSelfAllocation):
		messages = []string{
			"You can't give sips to yourself. Just drink, nobody's judging.",
		}
	case errors.Is(err, engine.ErrAlreadyConfirmed):
		messages = []string{
			"You already said you're done. No take-backs.",
		}
	case errors.Is(err, engine.ErrRoomFull):
		messages = []string{
			"The table is full. Start your own pyramid!",
		}
	case errors.Is(err, engine.ErrChallengeActive):
		messages = []string{
			"One accusation at a time, detective.",
		}
	case errors.Is(err, engine.ErrNotRecipient), errors.Is(err, engine.ErrNotChallengeTarget):
		messages = []string{
			"That's not yours to answer.",
		}
	case errors.Is(err, game.ErrRoomNotFound), errors.Is(err, game.ErrNoRoomForChannel):
		title = "No table here"
		messages = []string{
			"I can't find that room. Did someone knock the table over?",
			"No pyramid here. Create one to get the party started.",
		}
	case errors.Is(err, game.ErrVersionConflict):
		title = "Too slow"
		messages = []string{
			"Someone beat you to it. Take another look and try again.",
		}
	default:
		title = "Oops"
		messages = []string{
			"Something went wrong. The cards are not smiling upon you.",
			"That didn't work. Try again, or have a drink and then try again.",
		}
	}

	return &GetErrorMessageOutput{
		Title:   title,
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}
