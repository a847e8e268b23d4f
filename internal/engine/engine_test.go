package engine

import (
	"fmt"
	"testing"
	"time"

	clockMocks "github.com/KirkDiggler/pyramid/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/pyramid/internal/common/uuid/mocks"
	"github.com/KirkDiggler/pyramid/internal/deck"
	deckMocks "github.com/KirkDiggler/pyramid/internal/deck/mocks"
	"github.com/KirkDiggler/pyramid/internal/models"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type EngineTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockDealer *deckMocks.MockDealer
	mockClock  *clockMocks.MockClock
	mockUUID   *uuidMocks.MockUUID
	engine     *Engine
	testNow    time.Time
	counter    int
}

func (s *EngineTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockDealer = deckMocks.NewMockDealer(s.ctrl)
	s.mockClock = clockMocks.NewMockClock(s.ctrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.ctrl)
	s.testNow = time.Date(2025, 4, 5, 20, 0, 0, 0, time.UTC)
	s.counter = 0

	s.mockClock.EXPECT().Now().Return(s.testNow).AnyTimes()
	s.mockUUID.EXPECT().NewUUID().DoAndReturn(func() string {
		s.counter++
		return fmt.Sprintf("id-%d", s.counter)
	}).AnyTimes()

	e, err := New(&Config{
		Dealer:        s.mockDealer,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)
	s.engine = e
}

func (s *EngineTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestEngineTestSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

// expectDeck makes the dealer hand out a full deck with top on top
func (s *EngineTestSuite) expectDeck(top ...models.Card) {
	s.mockDealer.EXPECT().Generate().DoAndReturn(func() []models.Card {
		return deck.Generate(s.mockUUID)
	})
	s.mockDealer.EXPECT().Shuffle(gomock.Any()).DoAndReturn(func(cards []models.Card) []models.Card {
		out := make([]models.Card, 0, len(cards))
		for _, c := range cards {
			stacked := false
			for _, t := range top {
				if c.Rank == t.Rank && c.Suit == t.Suit {
					stacked = true
				}
			}
			if !stacked {
				out = append(out, c)
			}
		}
		for i := len(top) - 1; i >= 0; i-- {
			for _, c := range cards {
				if c.Rank == top[i].Rank && c.Suit == top[i].Suit {
					out = append(out, c)
				}
			}
		}
		return out
	})
}

func (s *EngineTestSuite) lobby(names ...string) *models.GameState {
	state := models.NewGameState("ROOM")
	for i, name := range names {
		res, err := s.engine.AddPlayer(state, &AddPlayerInput{
			PlayerID: fmt.Sprintf("p%d", i+1),
			Name:     name,
		})
		s.Require().NoError(err)
		state = res.State
	}
	return state
}

func (s *EngineTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{Clock: s.mockClock, UUIDGenerator: s.mockUUID})
	s.ErrorIs(err, ErrNilDealer)

	_, err = New(&Config{Dealer: s.mockDealer, UUIDGenerator: s.mockUUID})
	s.ErrorIs(err, ErrNilClock)

	_, err = New(&Config{Dealer: s.mockDealer, Clock: s.mockClock})
	s.ErrorIs(err, ErrNilUUIDGenerator)

	s.Equal(DefaultMaxPlayers, s.engine.MaxPlayers())
}

func (s *EngineTestSuite) TestAddPlayer() {
	state := s.lobby("Alice", "Bob")

	s.Require().Len(state.Players, 2)
	s.True(state.Players[0].IsHost)
	s.False(state.Players[1].IsHost)
	s.True(state.Players[1].IsConnected)
	s.Equal(int64(2), state.Version)
	s.Equal(int64(2), state.EventSeq)
	s.Require().NotNil(state.LastEvent)
	s.Equal(models.EventTypePlayerJoined, state.LastEvent.Type)
	s.Equal("p2", state.LastEvent.TargetPlayerID)

	_, err := s.engine.AddPlayer(state, &AddPlayerInput{PlayerID: "p1", Name: "Again"})
	s.ErrorIs(err, ErrPlayerAlreadyJoined)

	_, err = s.engine.AddPlayer(state, &AddPlayerInput{PlayerID: "p9"})
	s.ErrorIs(err, ErrInvalidInput)
}

func (s *EngineTestSuite) TestAddPlayerRoomFull() {
	state := s.lobby("A", "B", "C", "D", "E", "F", "G")

	_, err := s.engine.AddPlayer(state, &AddPlayerInput{PlayerID: "p8", Name: "H"})
	s.ErrorIs(err, ErrRoomFull)
}

func (s *EngineTestSuite) TestSetPlayerConnected() {
	state := s.lobby("Alice")

	res, err := s.engine.SetPlayerConnected(state, &SetPlayerConnectedInput{PlayerID: "p1", Connected: false})
	s.Require().NoError(err)
	s.False(res.State.Players[0].IsConnected)
	s.True(state.Players[0].IsConnected)

	_, err = s.engine.SetPlayerConnected(state, &SetPlayerConnectedInput{PlayerID: "nobody"})
	s.ErrorIs(err, ErrPlayerNotFound)
}

func (s *EngineTestSuite) TestStartGameRequiresPlayersAndHost() {
	_, err := s.engine.StartGame(models.NewGameState("ROOM"), &StartGameInput{PlayerID: "p1"})
	s.ErrorIs(err, ErrNoPlayers)

	state := s.lobby("Alice", "Bob")
	_, err = s.engine.StartGame(state, &StartGameInput{PlayerID: "p2"})
	s.ErrorIs(err, ErrNotHost)

	_, err = s.engine.StartGame(nil, &StartGameInput{PlayerID: "p1"})
	s.ErrorIs(err, ErrNilState)
}

func (s *EngineTestSuite) TestThreePlayerOpeningTurn() {
	state := s.lobby("Alice", "Bob", "Cara")
	s.expectDeck(card("", models.SuitHearts, models.RankSeven))

	started, err := s.engine.StartGame(state, &StartGameInput{PlayerID: "p1"})
	s.Require().NoError(err)

	st := started.State
	s.Equal(models.PhaseDistribution, st.CurrentPhase)
	s.Equal("p1", st.CurrentTurnPlayerID)
	s.Equal(0, st.CurrentQuestionIndex)
	s.Require().NotNil(st.ActiveCard)
	s.Equal(models.RankSeven, st.ActiveCard.Rank)
	s.Equal(models.SuitHearts, st.ActiveCard.Suit)
	s.False(st.ActiveCard.Hidden)
	s.Len(st.Deck, 51)
	s.Equal(models.EventTypeGameStart, st.LastEvent.Type)
	s.Equal(models.PhaseLobby, state.CurrentPhase)

	answered, err := s.engine.SubmitAnswer(st, &SubmitAnswerInput{PlayerID: "p1", Answer: "red"})
	s.Require().NoError(err)
	s.True(answered.Correct)

	next := answered.State
	s.Equal(1, next.Players[0].SipsGiven)
	s.Equal(0, next.Players[0].SipsTaken)
	s.Require().Len(next.Players[0].Hand, 1)
	s.Equal(models.RankSeven, next.Players[0].Hand[0].Rank)
	s.Equal("p2", next.CurrentTurnPlayerID)
	s.Equal(0, next.CurrentQuestionIndex)
	s.Require().NotNil(next.ActiveCard)
	s.NotEqual(st.ActiveCard.ID, next.ActiveCard.ID)
	s.Len(next.Deck, 50)
	s.Equal(st.Version+1, next.Version)

	s.Require().Len(answered.Events, 1)
	s.Equal(models.EventTypeSipDistribute, answered.Events[0].Type)
	s.Equal(1, answered.Events[0].Amount)
	s.Equal([]models.SipTransfer{{FromPlayerID: "p1", Amount: 1, Reason: models.SipReasonQuestionCorrect}}, answered.Sips)

	// input untouched
	s.Empty(st.Players[0].Hand)
	s.Equal("p1", st.CurrentTurnPlayerID)
}

func (s *EngineTestSuite) TestWrongAnswerDrinks() {
	state := s.lobby("Alice", "Bob")
	s.expectDeck(card("", models.SuitClubs, models.RankTwo))

	started, err := s.engine.StartGame(state, &StartGameInput{PlayerID: "p1"})
	s.Require().NoError(err)

	res, err := s.engine.SubmitAnswer(started.State, &SubmitAnswerInput{PlayerID: "p1", Answer: "red"})
	s.Require().NoError(err)
	s.False(res.Correct)
	s.Equal(1, res.State.Players[0].SipsTaken)
	s.Equal(models.EventTypeSipTake, res.State.LastEvent.Type)
	s.Equal("p1", res.State.LastEvent.TargetPlayerID)
	s.Equal([]models.SipTransfer{{ToPlayerID: "p1", Amount: 1, Reason: models.SipReasonQuestionWrong}}, res.Sips)
}

func (s *EngineTestSuite) TestAnswerOutOfTurn() {
	state := s.lobby("Alice", "Bob")
	s.expectDeck()

	started, err := s.engine.StartGame(state, &StartGameInput{PlayerID: "p1"})
	s.Require().NoError(err)

	_, err = s.engine.SubmitAnswer(started.State, &SubmitAnswerInput{PlayerID: "p2", Answer: "red"})
	s.ErrorIs(err, ErrNotYourTurn)

	_, err = s.engine.ResolveTurn(started.State, &ResolveTurnInput{PlayerID: "ghost"})
	s.ErrorIs(err, ErrPlayerNotFound)

	_, err = s.engine.DrawCard(started.State, &DrawCardInput{PlayerID: "p1"})
	s.ErrorIs(err, ErrCardAlreadyActive)
}

func (s *EngineTestSuite) TestPhaseOneCyclesEveryQuestion() {
	state := s.lobby("Alice", "Bob")
	s.expectDeck()

	res, err := s.engine.StartGame(state, &StartGameInput{PlayerID: "p1"})
	s.Require().NoError(err)
	state = res.State

	for turn := 0; turn < 10; turn++ {
		s.Require().Equal(models.PhaseDistribution, state.CurrentPhase)
		s.Equal(turn/2, state.CurrentQuestionIndex, "turn %d", turn)
		s.Equal(fmt.Sprintf("p%d", turn%2+1), state.CurrentTurnPlayerID, "turn %d", turn)

		res, err = s.engine.ResolveTurn(state, &ResolveTurnInput{
			PlayerID: state.CurrentTurnPlayerID,
			Correct:  turn%3 == 0,
		})
		s.Require().NoError(err)
		state = res.State
	}

	s.Equal(models.PhasePyramid, state.CurrentPhase)
	s.Empty(state.CurrentTurnPlayerID)
	s.Nil(state.ActiveCard)
	s.Require().Len(state.Pyramid, PyramidSize)
	for _, c := range state.Pyramid {
		s.True(c.Hidden)
	}
	s.Len(state.Players[0].Hand, 5)
	s.Len(state.Players[1].Hand, 5)
	s.Len(state.Deck, 52-10-PyramidSize)
	s.Equal(deck.Size, state.CardsInPlay())
	s.Equal(5, state.CurrentPyramidRow)
	s.Equal(models.EventTypePhaseChange, state.LastEvent.Type)

	ids := map[string]bool{}
	for _, c := range state.Deck {
		ids[c.ID] = true
	}
	for _, c := range state.Pyramid {
		ids[c.ID] = true
	}
	for _, p := range state.Players {
		for _, c := range p.Hand {
			ids[c.ID] = true
		}
	}
	s.Len(ids, deck.Size)
}

func (s *EngineTestSuite) TestDeckRunsDry() {
	state := s.lobby("Alice", "Bob")
	state.CurrentPhase = models.PhaseDistribution
	state.CurrentTurnPlayerID = "p1"
	active := card("last", models.SuitSpades, models.RankAce)
	state.ActiveCard = &active

	res, err := s.engine.ResolveTurn(state, &ResolveTurnInput{PlayerID: "p1", Correct: true})
	s.Require().NoError(err)

	s.Equal(models.PhaseGameOver, res.State.CurrentPhase)
	s.Nil(res.State.ActiveCard)
	s.Empty(res.State.CurrentTurnPlayerID)
	s.Require().Len(res.Events, 2)
	s.Equal(models.EventTypeGameOver, res.Events[1].Type)
	s.Equal(res.Events[0].ID+1, res.Events[1].ID)
}

func (s *EngineTestSuite) TestDrawCardWhenNoneActive() {
	state := s.lobby("Alice", "Bob")
	state.CurrentPhase = models.PhaseDistribution
	state.CurrentTurnPlayerID = "p2"
	state.Deck = []models.Card{models.NewCard("d1", models.SuitClubs, models.RankFour)}

	res, err := s.engine.DrawCard(state, &DrawCardInput{PlayerID: "p1"})
	s.Require().NoError(err)
	s.Require().NotNil(res.State.ActiveCard)
	s.Equal("d1", res.State.ActiveCard.ID)
	s.False(res.State.ActiveCard.Hidden)
	s.Empty(res.State.Deck)
	s.Equal(models.EventTypeCardDrawn, res.State.LastEvent.Type)
	s.Len(state.Deck, 1)

	state.Deck = []models.Card{}
	res, err = s.engine.DrawCard(state, &DrawCardInput{PlayerID: "p2"})
	s.Require().NoError(err)
	s.Equal(models.PhaseGameOver, res.State.CurrentPhase)
}

func (s *EngineTestSuite) TestShortDeckEndsBeforePyramid() {
	state := s.lobby("Alice")
	state.CurrentPhase = models.PhaseDistribution
	state.CurrentTurnPlayerID = "p1"
	state.CurrentQuestionIndex = 4
	active := card("a", models.SuitHearts, models.RankTwo)
	state.ActiveCard = &active
	state.Deck = []models.Card{models.NewCard("d1", models.SuitClubs, models.RankFour)}

	res, err := s.engine.ResolveTurn(state, &ResolveTurnInput{PlayerID: "p1"})
	s.Require().NoError(err)
	s.Equal(models.PhaseGameOver, res.State.CurrentPhase)
	s.Empty(res.State.Pyramid)
}
