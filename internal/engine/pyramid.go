package engine

import (
	"sort"

	"github.com/KirkDiggler/pyramid/internal/models"
)

const (
	// PyramidSize is the number of cards in the five rows
	PyramidSize = 15

	// MaxMatchingCards is how many cards of one rank a player is assumed to hold at most
	MaxMatchingCards = 3
)

// SipMultiplier maps a pyramid index onto the sips each matching card is worth.
// Index 0-4 is the base row and 14 the apex.
func SipMultiplier(index int) int {
	switch {
	case index < 0 || index >= PyramidSize:
		return 0
	case index >= 14:
		return 5
	case index >= 12:
		return 4
	case index >= 9:
		return 3
	case index >= 5:
		return 2
	default:
		return 1
	}
}

// RowForIndex returns the row of a pyramid index, 5 for the base up to 1 for the apex
func RowForIndex(index int) int {
	m := SipMultiplier(index)
	if m == 0 {
		return 0
	}
	return 6 - m
}

// SipCap is the most sips one player may hand out for the card at index
func SipCap(index int) int {
	return SipMultiplier(index) * MaxMatchingCards
}

// InitializePyramid deals the pyramid when phase 1 has finished without one
func (e *Engine) InitializePyramid(state *models.GameState, input *InitializePyramidInput) (*Result, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}
	t, err := e.begin(state)
	if err != nil {
		return nil, err
	}
	s := t.state

	if s.CurrentPhase != models.PhasePyramid {
		return nil, ErrInvalidPhase
	}
	if err := requireHost(s, input.PlayerID); err != nil {
		return nil, err
	}
	if len(s.Pyramid) > 0 {
		return nil, ErrPyramidAlreadyBuilt
	}

	t.buildPyramid()
	return t.commit(), nil
}

// buildPyramid draws 15 cards face down. The first drawn fills index 0 of the base.
func (t *transition) buildPyramid() {
	s := t.state
	if len(s.Deck) < PyramidSize {
		t.gameOver("Not enough cards left to build the pyramid. Game over!")
		return
	}

	pyramid := make([]models.Card, 0, PyramidSize)
	for i := 0; i < PyramidSize; i++ {
		card := s.Deck[len(s.Deck)-1]
		s.Deck = s.Deck[:len(s.Deck)-1]
		card.Hidden = true
		pyramid = append(pyramid, card)
	}

	s.Pyramid = pyramid
	s.CurrentPyramidRow = 5
	s.RevealedPyramidCards = []string{}
	s.ActiveCard = nil
	t.emit(models.EventTypePhaseChange, "", 0, "PHASE 2: THE PYRAMID BEGINS!")
}

// RevealPyramidCard flips the next hidden card and opens a new allocation cycle.
// Cards turn over by pyramid index, so the base row comes first and the apex last.
func (e *Engine) RevealPyramidCard(state *models.GameState, input *RevealPyramidCardInput) (*Result, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}
	t, err := e.begin(state)
	if err != nil {
		return nil, err
	}
	s := t.state

	if s.CurrentPhase != models.PhasePyramid && s.CurrentPhase != models.PhaseReveal {
		return nil, ErrInvalidPhase
	}
	if err := requireHost(s, input.PlayerID); err != nil {
		return nil, err
	}

	index := -1
	for i, c := range s.Pyramid {
		if c.Hidden {
			index = i
			break
		}
	}
	if index < 0 {
		return nil, ErrPyramidExhausted
	}

	s.Pyramid[index].Hidden = false
	card := s.Pyramid[index]
	s.RevealedPyramidCards = append(s.RevealedPyramidCards, card.ID)
	s.ActiveCard = &card
	s.CurrentPyramidRow = RowForIndex(index)
	s.CurrentPhase = models.PhaseAllocate
	s.PendingAllocations = map[string]*models.SipAllocation{}
	s.ConfirmedTurnPlayers = []string{}
	s.ActiveChallenge = nil

	t.emit(models.EventTypePhaseChange, "", 0, "Revealed: %s of %s. Allocation Phase! Up to %d sips each.",
		card.Rank, card.Suit, SipCap(index))

	return t.commit(), nil
}

// AllocateSips records a pending claim that the caller holds the revealed rank
func (e *Engine) AllocateSips(state *models.GameState, input *AllocateSipsInput) (*Result, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}
	t, err := e.begin(state)
	if err != nil {
		return nil, err
	}
	s := t.state

	if s.CurrentPhase != models.PhaseAllocate {
		return nil, ErrInvalidPhase
	}
	if s.ActiveCard == nil {
		return nil, ErrNoActiveCard
	}
	if s.Player(input.PlayerID) == nil || s.Player(input.TargetPlayerID) == nil {
		return nil, ErrPlayerNotFound
	}
	if input.PlayerID == input.TargetPlayerID {
		return nil, ErrSelfAllocation
	}
	if input.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if s.HasConfirmed(input.PlayerID) {
		return nil, ErrAlreadyConfirmed
	}

	if Committed(s, input.PlayerID)+input.Amount > SipCap(s.PyramidIndex(s.ActiveCard.ID)) {
		return nil, ErrSipCapExceeded
	}

	id := e.uuid.NewUUID()
	s.PendingAllocations[id] = &models.SipAllocation{
		FromPlayerID: input.PlayerID,
		ToPlayerID:   input.TargetPlayerID,
		Amount:       input.Amount,
		UsingCardID:  input.UsingCardID,
		Status:       models.AllocationStatusPending,
		Seq:          len(s.PendingAllocations) + 1,
	}
	t.result.AllocationID = id

	return t.commit(), nil
}

// Committed sums what a giver has already allocated this cycle
func Committed(state *models.GameState, playerID string) int {
	total := 0
	for _, a := range state.PendingAllocations {
		if a.FromPlayerID == playerID {
			total += a.Amount
		}
	}
	return total
}

// ConfirmPhase2Turn marks the caller done allocating. Once every player has
// confirmed the cycle moves on to resolution.
func (e *Engine) ConfirmPhase2Turn(state *models.GameState, input *ConfirmPhase2TurnInput) (*Result, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}
	t, err := e.begin(state)
	if err != nil {
		return nil, err
	}
	s := t.state

	if s.CurrentPhase != models.PhaseAllocate {
		return nil, ErrInvalidPhase
	}
	if s.Player(input.PlayerID) == nil {
		return nil, ErrPlayerNotFound
	}
	if s.HasConfirmed(input.PlayerID) {
		return nil, ErrAlreadyConfirmed
	}

	s.ConfirmedTurnPlayers = append(s.ConfirmedTurnPlayers, input.PlayerID)
	for _, id := range s.PlayerIDs() {
		if !s.HasConfirmed(id) {
			return t.commit(), nil
		}
	}

	s.CurrentPhase = models.PhaseResolve
	t.emit(models.EventTypePhaseChange, "", 0, "Allocations complete! RESOLVE your sips!")
	t.settle()

	return t.commit(), nil
}

// RespondToAllocation lets a recipient drink up or call the giver a liar
func (e *Engine) RespondToAllocation(state *models.GameState, input *RespondToAllocationInput) (*Result, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}
	t, err := e.begin(state)
	if err != nil {
		return nil, err
	}
	s := t.state

	if s.CurrentPhase != models.PhaseResolve {
		return nil, ErrInvalidPhase
	}
	alloc, ok := s.PendingAllocations[input.AllocationID]
	if !ok {
		return nil, ErrAllocationNotFound
	}
	if alloc.ToPlayerID != input.PlayerID {
		return nil, ErrNotRecipient
	}
	if alloc.Status == models.AllocationStatusChallenged {
		return nil, ErrAllocationChallenged
	}
	recipient := s.Player(alloc.ToPlayerID)
	giver := s.Player(alloc.FromPlayerID)
	if recipient == nil || giver == nil {
		return nil, ErrPlayerNotFound
	}

	switch input.Action {
	case ResponseAccept:
		recipient.SipsTaken += alloc.Amount
		delete(s.PendingAllocations, input.AllocationID)
		t.sip(giver.ID, recipient.ID, alloc.Amount, models.SipReasonAllocationAccepted)
		t.emit(models.EventTypeSipTake, recipient.ID, alloc.Amount, "%s accepts and drinks %d sips!", recipient.Name, alloc.Amount)
		t.settle()

	case ResponseChallenge:
		if s.ActiveChallenge != nil {
			return nil, ErrChallengeActive
		}
		alloc.Status = models.AllocationStatusChallenged
		s.ActiveChallenge = &models.Challenge{
			ChallengerID: recipient.ID,
			TargetID:     giver.ID,
			AllocationID: input.AllocationID,
			Status:       models.ChallengeStatusActive,
		}
		t.emit(models.EventTypePhaseChange, giver.ID, 0, "%s calls MENTEUR on %s!", recipient.Name, giver.Name)

	default:
		return nil, ErrInvalidAction
	}

	return t.commit(), nil
}

// ResolveChallenge settles an accusation. The accused is truthful when their hand
// holds the revealed rank; the loser drinks double the allocation.
func (e *Engine) ResolveChallenge(state *models.GameState, input *ResolveChallengeInput) (*Result, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}
	t, err := e.begin(state)
	if err != nil {
		return nil, err
	}
	s := t.state

	challenge := s.ActiveChallenge
	if challenge == nil {
		return nil, ErrNoActiveChallenge
	}
	if s.ActiveCard == nil {
		return nil, ErrNoActiveCard
	}
	if input.PlayerID != challenge.TargetID {
		return nil, ErrNotChallengeTarget
	}
	alloc, ok := s.PendingAllocations[challenge.AllocationID]
	if !ok {
		return nil, ErrAllocationNotFound
	}
	giver := s.Player(challenge.TargetID)
	challenger := s.Player(challenge.ChallengerID)
	if giver == nil || challenger == nil {
		return nil, ErrPlayerNotFound
	}

	penalty := alloc.Amount * 2
	if e.truthful(giver, s.ActiveCard.Rank, input.CardID) {
		challenger.SipsTaken += penalty
		t.sip(giver.ID, challenger.ID, penalty, models.SipReasonChallengeLostChallenger)
		t.emit(models.EventTypeSipTake, challenger.ID, penalty, "%s HAD IT! %s drinks %d sips!", giver.Name, challenger.Name, penalty)
	} else {
		giver.SipsTaken += penalty
		t.sip(challenger.ID, giver.ID, penalty, models.SipReasonChallengeLostGiver)
		t.emit(models.EventTypeSipTake, giver.ID, penalty, "%s WAS LYING! %s drinks %d sips!", giver.Name, giver.Name, penalty)
	}

	delete(s.PendingAllocations, challenge.AllocationID)
	s.ActiveChallenge = nil
	t.settle()

	return t.commit(), nil
}

func (e *Engine) truthful(giver *models.Player, rank models.Rank, cardID string) bool {
	if !e.strict {
		return giver.HasRank(rank)
	}
	card, ok := giver.CardByID(cardID)
	return ok && card.Rank == rank
}

// settle closes a cycle once nothing is left to resolve, either handing the
// reveal back to the host or ending the game after the last card.
func (t *transition) settle() {
	s := t.state
	if s.CurrentPhase != models.PhaseResolve || len(s.PendingAllocations) > 0 || s.ActiveChallenge != nil {
		return
	}

	s.ActiveCard = nil
	if len(s.RevealedPyramidCards) >= len(s.Pyramid) {
		t.gameOver("The pyramid is done! Game over.")
		return
	}
	s.CurrentPhase = models.PhaseReveal
	t.emit(models.EventTypePhaseChange, "", 0, "All sips settled. Reveal the next card!")
}

// PendingFor lists the allocations waiting on a recipient in dealing order
func PendingFor(state *models.GameState, playerID string) []string {
	ids := make([]string, 0)
	for id, a := range state.PendingAllocations {
		if a.ToPlayerID == playerID {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool {
		return state.PendingAllocations[ids[i]].Seq < state.PendingAllocations[ids[j]].Seq
	})
	return ids
}

func requireHost(s *models.GameState, playerID string) error {
	player := s.Player(playerID)
	if player == nil {
		return ErrPlayerNotFound
	}
	if !player.IsHost {
		return ErrNotHost
	}
	return nil
}
