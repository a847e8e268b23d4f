package engine

import (
	"github.com/KirkDiggler/pyramid/internal/models"
)

// StartGame deals a fresh shuffled deck, turns over the first card and hands the
// turn to the first player to have joined.
func (e *Engine) StartGame(state *models.GameState, input *StartGameInput) (*Result, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}
	t, err := e.begin(state)
	if err != nil {
		return nil, err
	}
	s := t.state

	if s.CurrentPhase != models.PhaseLobby {
		return nil, ErrInvalidPhase
	}
	if len(s.Players) == 0 {
		return nil, ErrNoPlayers
	}
	if caller := s.Player(input.PlayerID); caller == nil {
		return nil, ErrPlayerNotFound
	} else if !caller.IsHost {
		return nil, ErrNotHost
	}

	s.Deck = e.dealer.Shuffle(e.dealer.Generate())
	s.Pyramid = []models.Card{}
	s.RevealedPyramidCards = []string{}
	s.CurrentPyramidRow = 5

	s.CurrentPhase = models.PhaseDistribution
	s.CurrentTurnPlayerID = s.Players[0].ID
	s.CurrentQuestionIndex = 0
	if !t.draw() {
		t.gameOver("The deck is empty, nothing to play with!")
		return t.commit(), nil
	}

	t.emit(models.EventTypeGameStart, "", 0, "The game begins! First card drawn.")
	return t.commit(), nil
}

// DrawCard turns over the next phase 1 card when none is in play. Drawing from an
// empty deck ends the game.
func (e *Engine) DrawCard(state *models.GameState, input *DrawCardInput) (*Result, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}
	t, err := e.begin(state)
	if err != nil {
		return nil, err
	}
	s := t.state

	if s.CurrentPhase != models.PhaseDistribution {
		return nil, ErrInvalidPhase
	}
	caller := s.Player(input.PlayerID)
	if caller == nil {
		return nil, ErrPlayerNotFound
	}
	if caller.ID != s.CurrentTurnPlayerID && !caller.IsHost {
		return nil, ErrNotYourTurn
	}
	if s.ActiveCard != nil {
		return nil, ErrCardAlreadyActive
	}

	if !t.draw() {
		t.gameOver("The deck ran dry! Game over.")
		return t.commit(), nil
	}
	t.emit(models.EventTypeCardDrawn, "", 0, "%s drew a card", caller.Name)

	return t.commit(), nil
}

// SubmitAnswer judges the turn holder's answer and settles the turn
func (e *Engine) SubmitAnswer(state *models.GameState, input *SubmitAnswerInput) (*Result, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}
	if err := checkTurn(state, input.PlayerID); err != nil {
		return nil, err
	}

	player := state.Player(input.PlayerID)
	correct := EvaluateAnswer(*state.ActiveCard, state.CurrentQuestionIndex, player.Hand, input.Answer)

	return e.ResolveTurn(state, &ResolveTurnInput{
		PlayerID: input.PlayerID,
		Correct:  correct,
	})
}

// ResolveTurn gives the active card to the turn holder, books one sip either way,
// and moves on to the next player, question or phase.
func (e *Engine) ResolveTurn(state *models.GameState, input *ResolveTurnInput) (*Result, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}
	if err := checkTurn(state, input.PlayerID); err != nil {
		return nil, err
	}
	t, err := e.begin(state)
	if err != nil {
		return nil, err
	}
	s := t.state
	t.result.Correct = input.Correct

	player := s.Player(input.PlayerID)
	player.Hand = append(player.Hand, *s.ActiveCard)
	s.ActiveCard = nil

	if input.Correct {
		player.SipsGiven++
		t.sip(player.ID, "", 1, models.SipReasonQuestionCorrect)
		t.emit(models.EventTypeSipDistribute, "", 1, "%s distributes 1 sip!", player.Name)
	} else {
		player.SipsTaken++
		t.sip("", player.ID, 1, models.SipReasonQuestionWrong)
		t.emit(models.EventTypeSipTake, player.ID, 1, "%s drinks 1 sip!", player.Name)
	}

	next := s.PlayerIndex(player.ID) + 1
	if next >= len(s.Players) {
		next = 0
		s.CurrentQuestionIndex++
	}

	if s.CurrentQuestionIndex >= QuestionCount {
		s.CurrentPhase = models.PhasePyramid
		s.CurrentTurnPlayerID = ""
		t.buildPyramid()
		return t.commit(), nil
	}

	s.CurrentTurnPlayerID = s.Players[next].ID
	if !t.draw() {
		t.gameOver("The deck ran dry! Game over.")
	}

	return t.commit(), nil
}

// checkTurn validates a phase 1 answer against the unmodified state
func checkTurn(state *models.GameState, playerID string) error {
	if state == nil {
		return ErrNilState
	}
	if state.CurrentPhase != models.PhaseDistribution {
		return ErrInvalidPhase
	}
	if state.Player(playerID) == nil {
		return ErrPlayerNotFound
	}
	if state.CurrentTurnPlayerID != playerID {
		return ErrNotYourTurn
	}
	if state.ActiveCard == nil {
		return ErrNoActiveCard
	}
	return nil
}

// draw pops the top of the deck face up into play
func (t *transition) draw() bool {
	s := t.state
	if len(s.Deck) == 0 {
		s.ActiveCard = nil
		return false
	}
	card := s.Deck[len(s.Deck)-1]
	s.Deck = s.Deck[:len(s.Deck)-1]
	card.Hidden = false
	s.ActiveCard = &card
	return true
}
