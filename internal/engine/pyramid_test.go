package engine

import (
	"fmt"

	"github.com/KirkDiggler/pyramid/internal/models"
)

// pyramidState seats Alice (host, holds a 7 and a K), Bob (holds a 2) and Cara
// (holds a 9) in front of a dealt pyramid. Index i holds rank Ranks[i%13].
func (s *EngineTestSuite) pyramidState() *models.GameState {
	state := models.NewGameState("ROOM")
	state.Players = []*models.Player{
		{ID: "p1", Name: "Alice", IsHost: true, IsConnected: true, Hand: []models.Card{
			card("h1", models.SuitSpades, models.RankSeven),
			card("h2", models.SuitClubs, models.RankKing),
		}},
		{ID: "p2", Name: "Bob", IsConnected: true, Hand: []models.Card{
			card("h3", models.SuitSpades, models.RankTwo),
		}},
		{ID: "p3", Name: "Cara", IsConnected: true, Hand: []models.Card{
			card("h4", models.SuitDiamonds, models.RankNine),
		}},
	}
	for i := 0; i < PyramidSize; i++ {
		state.Pyramid = append(state.Pyramid, models.NewCard(
			fmt.Sprintf("py-%02d", i), models.Suits[i/13], models.Ranks[i%13]))
	}
	state.CurrentPhase = models.PhasePyramid
	state.Version = 40
	state.EventSeq = 12
	return state
}

// allocating reveals every card up to index and opens its allocation cycle
func (s *EngineTestSuite) allocating(index int) *models.GameState {
	state := s.pyramidState()
	for i := 0; i <= index; i++ {
		state.Pyramid[i].Hidden = false
		state.RevealedPyramidCards = append(state.RevealedPyramidCards, state.Pyramid[i].ID)
	}
	active := state.Pyramid[index]
	state.ActiveCard = &active
	state.CurrentPyramidRow = RowForIndex(index)
	state.CurrentPhase = models.PhaseAllocate
	return state
}

func (s *EngineTestSuite) allocate(state *models.GameState, from, to string, amount int) (*models.GameState, string) {
	res, err := s.engine.AllocateSips(state, &AllocateSipsInput{
		PlayerID:       from,
		TargetPlayerID: to,
		Amount:         amount,
	})
	s.Require().NoError(err)
	s.Require().NotEmpty(res.AllocationID)
	return res.State, res.AllocationID
}

func (s *EngineTestSuite) confirmAll(state *models.GameState) *models.GameState {
	for _, id := range state.PlayerIDs() {
		res, err := s.engine.ConfirmPhase2Turn(state, &ConfirmPhase2TurnInput{PlayerID: id})
		s.Require().NoError(err)
		state = res.State
	}
	return state
}

func (s *EngineTestSuite) TestRevealStartsAtTheBase() {
	state := s.pyramidState()

	res, err := s.engine.RevealPyramidCard(state, &RevealPyramidCardInput{PlayerID: "p1"})
	s.Require().NoError(err)

	next := res.State
	s.Equal(models.PhaseAllocate, next.CurrentPhase)
	s.False(next.Pyramid[0].Hidden)
	s.True(next.Pyramid[1].Hidden)
	s.Equal([]string{"py-00"}, next.RevealedPyramidCards)
	s.Require().NotNil(next.ActiveCard)
	s.Equal("py-00", next.ActiveCard.ID)
	s.Equal(5, next.CurrentPyramidRow)
	s.Empty(next.PendingAllocations)
	s.Empty(next.ConfirmedTurnPlayers)
	s.Nil(next.ActiveChallenge)
	s.Equal(int64(41), next.Version)
	s.Equal(int64(13), next.LastEvent.ID)
	s.True(state.Pyramid[0].Hidden)
}

func (s *EngineTestSuite) TestRevealIsHostOnly() {
	state := s.pyramidState()

	_, err := s.engine.RevealPyramidCard(state, &RevealPyramidCardInput{PlayerID: "p2"})
	s.ErrorIs(err, ErrNotHost)

	alloc := s.allocating(3)
	_, err = s.engine.RevealPyramidCard(alloc, &RevealPyramidCardInput{PlayerID: "p1"})
	s.ErrorIs(err, ErrInvalidPhase)
}

func (s *EngineTestSuite) TestRevealMovesUpTheRows() {
	state := s.allocating(8)
	state.CurrentPhase = models.PhaseReveal
	state.ActiveCard = nil

	res, err := s.engine.RevealPyramidCard(state, &RevealPyramidCardInput{PlayerID: "p1"})
	s.Require().NoError(err)
	s.Equal("py-09", res.State.ActiveCard.ID)
	s.Equal(3, res.State.CurrentPyramidRow)
}

func (s *EngineTestSuite) TestInitializePyramidGuards() {
	state := s.pyramidState()
	_, err := s.engine.InitializePyramid(state, &InitializePyramidInput{PlayerID: "p1"})
	s.ErrorIs(err, ErrPyramidAlreadyBuilt)

	state.Pyramid = []models.Card{}
	for i := 0; i < 20; i++ {
		state.Deck = append(state.Deck, models.NewCard(fmt.Sprintf("d%d", i), models.SuitClubs, models.RankFive))
	}
	_, err = s.engine.InitializePyramid(state, &InitializePyramidInput{PlayerID: "p3"})
	s.ErrorIs(err, ErrNotHost)

	res, err := s.engine.InitializePyramid(state, &InitializePyramidInput{PlayerID: "p1"})
	s.Require().NoError(err)
	s.Require().Len(res.State.Pyramid, PyramidSize)
	s.Equal("d19", res.State.Pyramid[0].ID)
	s.Equal("d5", res.State.Pyramid[14].ID)
	s.Len(res.State.Deck, 5)
}

func (s *EngineTestSuite) TestAllocateCapAtRowThree() {
	state := s.allocating(9)

	for i := 0; i < 3; i++ {
		state, _ = s.allocate(state, "p1", "p2", 3)
	}
	s.Equal(9, Committed(state, "p1"))

	_, err := s.engine.AllocateSips(state, &AllocateSipsInput{PlayerID: "p1", TargetPlayerID: "p3", Amount: 1})
	s.ErrorIs(err, ErrSipCapExceeded)
	s.Len(state.PendingAllocations, 3)

	// other givers keep their own budget
	state, _ = s.allocate(state, "p3", "p1", 9)
	s.Equal(9, Committed(state, "p3"))
}

func (s *EngineTestSuite) TestAllocateCapAtApex() {
	state := s.allocating(14)

	state, _ = s.allocate(state, "p2", "p1", 10)
	state, _ = s.allocate(state, "p2", "p3", 5)

	_, err := s.engine.AllocateSips(state, &AllocateSipsInput{PlayerID: "p2", TargetPlayerID: "p1", Amount: 1})
	s.ErrorIs(err, ErrSipCapExceeded)
}

func (s *EngineTestSuite) TestAllocateValidation() {
	state := s.allocating(0)

	tests := []struct {
		input *AllocateSipsInput
		want  error
	}{
		{&AllocateSipsInput{PlayerID: "p1", TargetPlayerID: "p1", Amount: 1}, ErrSelfAllocation},
		{&AllocateSipsInput{PlayerID: "p1", TargetPlayerID: "p2", Amount: 0}, ErrInvalidAmount},
		{&AllocateSipsInput{PlayerID: "p1", TargetPlayerID: "p2", Amount: -2}, ErrInvalidAmount},
		{&AllocateSipsInput{PlayerID: "p1", TargetPlayerID: "ghost", Amount: 1}, ErrPlayerNotFound},
		{&AllocateSipsInput{PlayerID: "p1", TargetPlayerID: "p2", Amount: 4}, ErrSipCapExceeded},
	}
	for _, tt := range tests {
		_, err := s.engine.AllocateSips(state, tt.input)
		s.ErrorIs(err, tt.want)
	}

	state.CurrentPhase = models.PhaseResolve
	_, err := s.engine.AllocateSips(state, &AllocateSipsInput{PlayerID: "p1", TargetPlayerID: "p2", Amount: 1})
	s.ErrorIs(err, ErrInvalidPhase)
}

func (s *EngineTestSuite) TestAllocationRecord() {
	state := s.allocating(5)

	res, err := s.engine.AllocateSips(state, &AllocateSipsInput{
		PlayerID:       "p1",
		TargetPlayerID: "p2",
		Amount:         2,
		UsingCardID:    "h1",
	})
	s.Require().NoError(err)
	s.Empty(res.Events)

	alloc := res.State.PendingAllocations[res.AllocationID]
	s.Require().NotNil(alloc)
	s.Equal(models.SipAllocation{
		FromPlayerID: "p1",
		ToPlayerID:   "p2",
		Amount:       2,
		UsingCardID:  "h1",
		Status:       models.AllocationStatusPending,
		Seq:          1,
	}, *alloc)
	s.Empty(state.PendingAllocations)
}

func (s *EngineTestSuite) TestConfirmNeedsEveryPlayer() {
	state := s.allocating(2)
	state, _ = s.allocate(state, "p2", "p3", 1)

	res, err := s.engine.ConfirmPhase2Turn(state, &ConfirmPhase2TurnInput{PlayerID: "p1"})
	s.Require().NoError(err)
	s.Equal(models.PhaseAllocate, res.State.CurrentPhase)
	s.Empty(res.Events)

	_, err = s.engine.ConfirmPhase2Turn(res.State, &ConfirmPhase2TurnInput{PlayerID: "p1"})
	s.ErrorIs(err, ErrAlreadyConfirmed)

	_, err = s.engine.AllocateSips(res.State, &AllocateSipsInput{PlayerID: "p1", TargetPlayerID: "p2", Amount: 1})
	s.ErrorIs(err, ErrAlreadyConfirmed)

	res, err = s.engine.ConfirmPhase2Turn(res.State, &ConfirmPhase2TurnInput{PlayerID: "p2"})
	s.Require().NoError(err)
	s.Equal(models.PhaseAllocate, res.State.CurrentPhase)

	res, err = s.engine.ConfirmPhase2Turn(res.State, &ConfirmPhase2TurnInput{PlayerID: "p3"})
	s.Require().NoError(err)
	s.Equal(models.PhaseResolve, res.State.CurrentPhase)
	s.Require().Len(res.Events, 1)
	s.Equal(models.EventTypePhaseChange, res.Events[0].Type)
}

func (s *EngineTestSuite) TestConfirmWithNothingAllocatedSettles() {
	state := s.confirmAll(s.allocating(4))

	s.Equal(models.PhaseReveal, state.CurrentPhase)
	s.Nil(state.ActiveCard)

	res, err := s.engine.RevealPyramidCard(state, &RevealPyramidCardInput{PlayerID: "p1"})
	s.Require().NoError(err)
	s.Equal("py-05", res.State.ActiveCard.ID)
	s.Equal(4, res.State.CurrentPyramidRow)
}

func (s *EngineTestSuite) TestAcceptAllocation() {
	state := s.allocating(5)
	state, first := s.allocate(state, "p1", "p2", 2)
	state, second := s.allocate(state, "p1", "p3", 1)
	state = s.confirmAll(state)
	s.Require().Equal(models.PhaseResolve, state.CurrentPhase)

	_, err := s.engine.RespondToAllocation(state, &RespondToAllocationInput{PlayerID: "p3", AllocationID: first, Action: ResponseAccept})
	s.ErrorIs(err, ErrNotRecipient)

	_, err = s.engine.RespondToAllocation(state, &RespondToAllocationInput{PlayerID: "p2", AllocationID: first, Action: "SHRUG"})
	s.ErrorIs(err, ErrInvalidAction)

	res, err := s.engine.RespondToAllocation(state, &RespondToAllocationInput{PlayerID: "p2", AllocationID: first, Action: ResponseAccept})
	s.Require().NoError(err)
	state = res.State
	s.Equal(2, state.Player("p2").SipsTaken)
	s.Zero(state.Player("p1").SipsGiven)
	s.NotContains(state.PendingAllocations, first)
	s.Equal(models.PhaseResolve, state.CurrentPhase)
	s.Equal(models.EventTypeSipTake, state.LastEvent.Type)
	s.Equal([]models.SipTransfer{{FromPlayerID: "p1", ToPlayerID: "p2", Amount: 2, Reason: models.SipReasonAllocationAccepted}}, res.Sips)

	res, err = s.engine.RespondToAllocation(state, &RespondToAllocationInput{PlayerID: "p3", AllocationID: second, Action: ResponseAccept})
	s.Require().NoError(err)
	s.Equal(models.PhaseReveal, res.State.CurrentPhase)
	s.Require().Len(res.Events, 2)
	s.Equal(models.EventTypeSipTake, res.Events[0].Type)
	s.Equal(models.EventTypePhaseChange, res.Events[1].Type)

	_, err = s.engine.RespondToAllocation(res.State, &RespondToAllocationInput{PlayerID: "p3", AllocationID: second, Action: ResponseAccept})
	s.ErrorIs(err, ErrInvalidPhase)
}

func (s *EngineTestSuite) challenged(index int, from, to string, amount int) (*models.GameState, string) {
	state := s.allocating(index)
	state, id := s.allocate(state, from, to, amount)
	state = s.confirmAll(state)

	res, err := s.engine.RespondToAllocation(state, &RespondToAllocationInput{PlayerID: to, AllocationID: id, Action: ResponseChallenge})
	s.Require().NoError(err)
	return res.State, id
}

func (s *EngineTestSuite) TestChallengeOpens() {
	state, id := s.challenged(5, "p1", "p2", 2)

	s.Equal(models.PhaseResolve, state.CurrentPhase)
	s.Require().NotNil(state.ActiveChallenge)
	s.Equal(models.Challenge{
		ChallengerID: "p2",
		TargetID:     "p1",
		AllocationID: id,
		Status:       models.ChallengeStatusActive,
	}, *state.ActiveChallenge)
	s.Equal(models.AllocationStatusChallenged, state.PendingAllocations[id].Status)
	s.Equal(models.EventTypePhaseChange, state.LastEvent.Type)

	_, err := s.engine.RespondToAllocation(state, &RespondToAllocationInput{PlayerID: "p2", AllocationID: id, Action: ResponseAccept})
	s.ErrorIs(err, ErrAllocationChallenged)

	_, err = s.engine.ResolveChallenge(state, &ResolveChallengeInput{PlayerID: "p2", CardID: "h3"})
	s.ErrorIs(err, ErrNotChallengeTarget)
}

func (s *EngineTestSuite) TestSecondChallengeRejected() {
	state := s.allocating(5)
	state, first := s.allocate(state, "p1", "p2", 1)
	state, second := s.allocate(state, "p3", "p2", 1)
	state = s.confirmAll(state)

	res, err := s.engine.RespondToAllocation(state, &RespondToAllocationInput{PlayerID: "p2", AllocationID: first, Action: ResponseChallenge})
	s.Require().NoError(err)

	_, err = s.engine.RespondToAllocation(res.State, &RespondToAllocationInput{PlayerID: "p2", AllocationID: second, Action: ResponseChallenge})
	s.ErrorIs(err, ErrChallengeActive)

	res, err = s.engine.RespondToAllocation(res.State, &RespondToAllocationInput{PlayerID: "p2", AllocationID: second, Action: ResponseAccept})
	s.Require().NoError(err)
	s.Equal(models.PhaseResolve, res.State.CurrentPhase)
	s.NotNil(res.State.ActiveChallenge)
}

func (s *EngineTestSuite) TestChallengeTruthfulGiver() {
	state, id := s.challenged(5, "p1", "p2", 2)

	res, err := s.engine.ResolveChallenge(state, &ResolveChallengeInput{PlayerID: "p1", CardID: "whatever"})
	s.Require().NoError(err)

	next := res.State
	s.Equal(4, next.Player("p2").SipsTaken)
	s.Equal(0, next.Player("p1").SipsTaken)
	s.Zero(next.Player("p1").SipsGiven)
	s.Zero(next.Player("p2").SipsGiven)
	s.NotContains(next.PendingAllocations, id)
	s.Nil(next.ActiveChallenge)
	s.Equal(models.PhaseReveal, next.CurrentPhase)
	s.Equal([]models.SipTransfer{{FromPlayerID: "p1", ToPlayerID: "p2", Amount: 4, Reason: models.SipReasonChallengeLostChallenger}}, res.Sips)
	s.Equal(models.EventTypeSipTake, res.Events[0].Type)
	s.Equal("p2", res.Events[0].TargetPlayerID)
	s.Equal(4, res.Events[0].Amount)
}

func (s *EngineTestSuite) TestChallengeLyingGiver() {
	state, id := s.challenged(5, "p3", "p2", 3)

	res, err := s.engine.ResolveChallenge(state, &ResolveChallengeInput{PlayerID: "p3", CardID: "h4"})
	s.Require().NoError(err)

	next := res.State
	s.Equal(6, next.Player("p3").SipsTaken)
	s.Equal(0, next.Player("p2").SipsTaken)
	s.Zero(next.Player("p2").SipsGiven)
	s.Zero(next.Player("p3").SipsGiven)
	s.NotContains(next.PendingAllocations, id)
	s.Nil(next.ActiveChallenge)
	s.Equal([]models.SipTransfer{{FromPlayerID: "p2", ToPlayerID: "p3", Amount: 6, Reason: models.SipReasonChallengeLostGiver}}, res.Sips)
}

func (s *EngineTestSuite) TestStrictChallengeChecksShownCard() {
	strict, err := New(&Config{
		Dealer:                s.mockDealer,
		Clock:                 s.mockClock,
		UUIDGenerator:         s.mockUUID,
		StrictChallengeReveal: true,
	})
	s.Require().NoError(err)

	state, _ := s.challenged(5, "p1", "p2", 1)

	res, err := strict.ResolveChallenge(state, &ResolveChallengeInput{PlayerID: "p1", CardID: "h2"})
	s.Require().NoError(err)
	s.Equal(2, res.State.Player("p1").SipsTaken)

	res, err = strict.ResolveChallenge(state, &ResolveChallengeInput{PlayerID: "p1", CardID: "h1"})
	s.Require().NoError(err)
	s.Equal(2, res.State.Player("p2").SipsTaken)
}

func (s *EngineTestSuite) TestLastCardEndsTheGame() {
	state := s.allocating(14)
	state, id := s.allocate(state, "p1", "p2", 1)
	state = s.confirmAll(state)

	res, err := s.engine.RespondToAllocation(state, &RespondToAllocationInput{PlayerID: "p2", AllocationID: id, Action: ResponseAccept})
	s.Require().NoError(err)
	s.Equal(models.PhaseGameOver, res.State.CurrentPhase)
	s.Equal(models.EventTypeGameOver, res.State.LastEvent.Type)

	_, err = s.engine.RevealPyramidCard(res.State, &RevealPyramidCardInput{PlayerID: "p1"})
	s.ErrorIs(err, ErrInvalidPhase)
}

func (s *EngineTestSuite) TestPendingForOrdersBySeq() {
	state := s.allocating(14)
	state, a := s.allocate(state, "p1", "p2", 1)
	state, b := s.allocate(state, "p3", "p2", 1)
	state, _ = s.allocate(state, "p2", "p1", 1)

	s.Equal([]string{a, b}, PendingFor(state, "p2"))
	s.Empty(PendingFor(state, "nobody"))
}
