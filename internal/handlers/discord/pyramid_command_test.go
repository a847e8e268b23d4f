package discord

import (
	"context"
	"testing"

	"github.com/KirkDiggler/pyramid/internal/engine"
	"github.com/KirkDiggler/pyramid/internal/models"
	"github.com/KirkDiggler/pyramid/internal/services/game"
	gameMocks "github.com/KirkDiggler/pyramid/internal/services/game/mocks"
	"github.com/KirkDiggler/pyramid/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PyramidCommandTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockGameService *gameMocks.MockService
	command         *PyramidCommand
	ctx             context.Context
}

func (s *PyramidCommandTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockGameService = gameMocks.NewMockService(s.mockCtrl)
	s.ctx = context.Background()

	msgs, err := messaging.New(&messaging.Config{Seed: 42})
	s.Require().NoError(err)

	s.command = NewPyramidCommand(s.mockGameService, msgs)
}

func (s *PyramidCommandTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPyramidCommandSuite(t *testing.T) {
	suite.Run(t, new(PyramidCommandTestSuite))
}

func (s *PyramidCommandTestSuite) request(sub string, opts map[string]string) *Request {
	if opts == nil {
		opts = map[string]string{}
	}
	return &Request{
		ChannelID:  "chan-1",
		UserID:     "alice",
		Username:   "Alice",
		Subcommand: sub,
		Options:    opts,
	}
}

func (s *PyramidCommandTestSuite) expectChannelRoom(state *models.GameState) {
	s.mockGameService.EXPECT().
		GetRoomByChannel(s.ctx, &game.GetRoomByChannelInput{ChannelID: "chan-1"}).
		Return(&game.GetRoomOutput{State: state}, nil)
}

func lobby() *models.GameState {
	state := models.NewGameState("ABCD")
	state.Version = 1
	state.Players = []*models.Player{
		{ID: "alice", Name: "Alice", IsHost: true, IsConnected: true},
	}
	return state
}

// allocating has bob owing alice two allocations for the revealed 7♥
func allocating() *models.GameState {
	seven := models.NewCard("c-7h", models.SuitHearts, models.RankSeven)
	seven.Hidden = false

	state := models.NewGameState("ABCD")
	state.Version = 30
	state.CurrentPhase = models.PhaseAllocate
	state.Pyramid = []models.Card{seven}
	state.RevealedPyramidCards = []string{seven.ID}
	state.ActiveCard = &seven
	state.Players = []*models.Player{
		{ID: "alice", Name: "Alice", IsHost: true, IsConnected: true, Hand: []models.Card{
			models.NewCard("c-2s", models.SuitSpades, models.RankTwo),
			models.NewCard("c-7c", models.SuitClubs, models.RankSeven),
		}},
		{ID: "bob", Name: "Bob", IsConnected: true},
	}
	state.PendingAllocations = map[string]*models.SipAllocation{
		"a-2": {FromPlayerID: "bob", ToPlayerID: "alice", Amount: 3, Status: models.AllocationStatusPending, Seq: 2},
		"a-1": {FromPlayerID: "bob", ToPlayerID: "alice", Amount: 2, Status: models.AllocationStatusPending, Seq: 1},
	}
	return state
}

func (s *PyramidCommandTestSuite) TestCreateOpensRoom() {
	s.mockGameService.EXPECT().
		GetRoomByChannel(s.ctx, &game.GetRoomByChannelInput{ChannelID: "chan-1"}).
		Return(nil, game.ErrNoRoomForChannel)
	s.mockGameService.EXPECT().
		CreateRoom(s.ctx, &game.CreateRoomInput{PlayerID: "alice", PlayerName: "Alice", ChannelID: "chan-1"}).
		Return(&game.CreateRoomOutput{RoomCode: "ABCD", PlayerID: "alice", State: lobby()}, nil)

	reply := s.command.Execute(s.ctx, s.request("create", nil))

	s.False(reply.IsError)
	s.False(reply.Ephemeral)
	s.Equal("Room ABCD is open", reply.Title)
	s.Len(reply.Buttons, 2)
}

func (s *PyramidCommandTestSuite) TestCreateRefusesRunningRoom() {
	s.expectChannelRoom(lobby())

	reply := s.command.Execute(s.ctx, s.request("create", nil))

	s.True(reply.IsError)
	s.Equal("Table taken", reply.Title)
	s.Contains(reply.Description, "ABCD")
}

func (s *PyramidCommandTestSuite) TestJoinByCode() {
	joined := lobby()
	joined.Players = append(joined.Players, &models.Player{ID: "alice2", Name: "Alice"})
	s.mockGameService.EXPECT().
		JoinRoom(s.ctx, &game.JoinRoomInput{RoomCode: "WXYZ", PlayerID: "alice", PlayerName: "Alice"}).
		Return(&game.JoinRoomOutput{PlayerID: "alice", State: joined}, nil)

	reply := s.command.Execute(s.ctx, s.request("join", map[string]string{"code": " wxyz "}))

	s.False(reply.IsError)
	s.Equal("Room ABCD · 2 seated", reply.Title)
	s.Contains(reply.Description, "Alice")
}

func (s *PyramidCommandTestSuite) TestStatusFallsBackToPlayerRoom() {
	state := allocating()
	s.mockGameService.EXPECT().
		GetRoomByChannel(s.ctx, &game.GetRoomByChannelInput{ChannelID: "chan-1"}).
		Return(nil, game.ErrNoRoomForChannel)
	s.mockGameService.EXPECT().
		GetPlayerRoom(s.ctx, &game.GetPlayerRoomInput{PlayerID: "alice"}).
		Return(&game.GetRoomOutput{State: state}, nil)

	reply := s.command.Execute(s.ctx, s.request("status", nil))

	s.True(reply.Ephemeral)
	s.False(reply.IsError)
	var hand, row string
	for _, f := range reply.Fields {
		switch f.Name {
		case "Your hand":
			hand = f.Value
		case "Row":
			row = f.Value
		}
	}
	s.Equal("2♠ 7♣", hand)
	s.Equal("5 · 1 of 15 revealed", row)
}

func (s *PyramidCommandTestSuite) TestNoRoomAnywhere() {
	s.mockGameService.EXPECT().
		GetRoomByChannel(s.ctx, gomock.Any()).
		Return(nil, game.ErrNoRoomForChannel)
	s.mockGameService.EXPECT().
		GetPlayerRoom(s.ctx, gomock.Any()).
		Return(nil, game.ErrPlayerNotInRoom)

	reply := s.command.Execute(s.ctx, s.request("start", nil))

	s.True(reply.IsError)
	s.Equal("No table here", reply.Title)
}

func (s *PyramidCommandTestSuite) TestAnswerShowsTurnResult() {
	s.expectChannelRoom(lobby())

	after := lobby()
	after.CurrentPhase = models.PhaseDistribution
	after.CurrentTurnPlayerID = "alice"
	after.Players[0].Hand = []models.Card{models.NewCard("c-qh", models.SuitHearts, models.RankQueen)}

	s.mockGameService.EXPECT().
		SubmitAnswer(s.ctx, &game.SubmitAnswerInput{RoomCode: "ABCD", PlayerID: "alice", Answer: "red"}).
		Return(&game.ActionOutput{State: after, Correct: true}, nil)

	reply := s.command.Execute(s.ctx, s.request("answer", map[string]string{"guess": "red"}))

	s.False(reply.IsError)
	s.False(reply.Ephemeral)
	s.NotEqual("Pyramid", reply.Title)
	s.Contains(reply.Description, "Alice")
}

func (s *PyramidCommandTestSuite) TestRejectedActionShowsFriendlyError() {
	s.expectChannelRoom(lobby())
	s.mockGameService.EXPECT().
		StartGame(s.ctx, gomock.Any()).
		Return(nil, engine.ErrNotHost)

	reply := s.command.Execute(s.ctx, s.request("start", nil))

	s.True(reply.IsError)
	s.True(reply.Ephemeral)
	s.Equal("Hold up", reply.Title)
}

func (s *PyramidCommandTestSuite) TestGiveResolvesClaimedCard() {
	state := allocating()
	s.expectChannelRoom(state)

	after := allocating()
	after.PendingAllocations["a-3"] = &models.SipAllocation{FromPlayerID: "alice", ToPlayerID: "bob", Amount: 2, Status: models.AllocationStatusPending, Seq: 3}

	s.mockGameService.EXPECT().
		AllocateSips(s.ctx, &game.AllocateSipsInput{
			RoomCode:       "ABCD",
			PlayerID:       "alice",
			TargetPlayerID: "bob",
			Amount:         2,
			UsingCardID:    "c-7c",
		}).
		Return(&game.ActionOutput{State: after, AllocationID: "a-3"}, nil)

	reply := s.command.Execute(s.ctx, s.request("give", map[string]string{
		"player": "bob",
		"amount": "2",
		"card":   "7-Clubs",
	}))

	s.False(reply.IsError)
	s.Equal("Alice hands Bob 2 sips. (2 of 3 given)", reply.Description)
}

func (s *PyramidCommandTestSuite) TestGiveRejectsBadAmount() {
	reply := s.command.Execute(s.ctx, s.request("give", map[string]string{"player": "bob", "amount": "lots"}))

	s.True(reply.IsError)
}

func (s *PyramidCommandTestSuite) TestAcceptDrinksEverythingInOrder() {
	state := allocating()
	s.expectChannelRoom(state)

	gomock.InOrder(
		s.mockGameService.EXPECT().
			RespondToAllocation(s.ctx, &game.RespondToAllocationInput{RoomCode: "ABCD", PlayerID: "alice", AllocationID: "a-1", Action: engine.ResponseAccept}).
			Return(&game.ActionOutput{State: state}, nil),
		s.mockGameService.EXPECT().
			RespondToAllocation(s.ctx, &game.RespondToAllocationInput{RoomCode: "ABCD", PlayerID: "alice", AllocationID: "a-2", Action: engine.ResponseAccept}).
			Return(&game.ActionOutput{State: state}, nil),
	)

	reply := s.command.Execute(s.ctx, s.request("accept", nil))

	s.False(reply.IsError)
	s.Equal("Alice drinks 5 sips 🍺", reply.Description)
}

func (s *PyramidCommandTestSuite) TestAcceptNothingPending() {
	state := allocating()
	state.PendingAllocations = map[string]*models.SipAllocation{}
	s.expectChannelRoom(state)

	reply := s.command.Execute(s.ctx, s.request("accept", nil))

	s.True(reply.IsError)
}

func (s *PyramidCommandTestSuite) TestChallengeDefaultsToOldest() {
	state := allocating()
	s.expectChannelRoom(state)
	s.mockGameService.EXPECT().
		RespondToAllocation(s.ctx, &game.RespondToAllocationInput{RoomCode: "ABCD", PlayerID: "alice", AllocationID: "a-1", Action: engine.ResponseChallenge}).
		Return(&game.ActionOutput{State: state}, nil)

	reply := s.command.Execute(s.ctx, s.request("challenge", nil))

	s.False(reply.IsError)
	s.Equal("Menteur!", reply.Title)
}

func (s *PyramidCommandTestSuite) TestProvePicksMatchingCard() {
	state := allocating()
	state.CurrentPhase = models.PhaseResolve
	state.ActiveChallenge = &models.Challenge{ChallengerID: "bob", TargetID: "alice", AllocationID: "a-9", Status: models.ChallengeStatusActive}
	s.expectChannelRoom(state)

	s.mockGameService.EXPECT().
		ResolveChallenge(s.ctx, &game.ResolveChallengeInput{RoomCode: "ABCD", PlayerID: "alice", CardID: "c-7c"}).
		Return(&game.ActionOutput{
			State: allocating(),
			Sips:  []models.SipTransfer{{ToPlayerID: "bob", Amount: 4, Reason: models.SipReasonChallengeLostChallenger}},
		}, nil)

	reply := s.command.Execute(s.ctx, s.request("prove", nil))

	s.False(reply.IsError)
	s.Equal("Honest as a priest", reply.Title)
}

func (s *PyramidCommandTestSuite) TestProveWithoutChallenge() {
	s.expectChannelRoom(allocating())

	reply := s.command.Execute(s.ctx, s.request("prove", nil))

	s.True(reply.IsError)
}

func (s *PyramidCommandTestSuite) TestLeaderboard() {
	s.expectChannelRoom(allocating())
	s.mockGameService.EXPECT().
		GetLeaderboard(s.ctx, &game.GetLeaderboardInput{RoomCode: "ABCD"}).
		Return(&game.GetLeaderboardOutput{Leaderboard: &models.Leaderboard{
			RoomID: "ABCD",
			PlayerStats: []*models.PlayerStats{
				{PlayerID: "bob", PlayerName: "Bob", SipsTaken: 9, SipsGiven: 1},
				{PlayerID: "alice", PlayerName: "Alice", SipsTaken: 2, SipsGiven: 7},
			},
		}}, nil)

	reply := s.command.Execute(s.ctx, s.request("leaderboard", nil))

	s.False(reply.IsError)
	s.Contains(reply.Description, "1. Bob · took 9 · gave 1")
}

func (s *PyramidCommandTestSuite) TestClose() {
	s.expectChannelRoom(lobby())
	s.mockGameService.EXPECT().
		CloseRoom(s.ctx, &game.CloseRoomInput{RoomCode: "ABCD", PlayerID: "alice"}).
		Return(nil)

	reply := s.command.Execute(s.ctx, s.request("close", nil))

	s.False(reply.IsError)
	s.Equal("Table cleared", reply.Title)
}

func (s *PyramidCommandTestSuite) TestUnknownSubcommand() {
	reply := s.command.Execute(s.ctx, s.request("shuffle", nil))

	s.True(reply.IsError)
}

func (s *PyramidCommandTestSuite) TestRequestFromSlashCommand() {
	i := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Type:      discordgo.InteractionApplicationCommand,
		ChannelID: "chan-1",
		Member: &discordgo.Member{
			Nick: "Al",
			User: &discordgo.User{ID: "alice", Username: "alice_99"},
		},
		Data: discordgo.ApplicationCommandInteractionData{
			Name: "pyramid",
			Options: []*discordgo.ApplicationCommandInteractionDataOption{{
				Name: "give",
				Type: discordgo.ApplicationCommandOptionSubCommand,
				Options: []*discordgo.ApplicationCommandInteractionDataOption{
					{Name: "player", Type: discordgo.ApplicationCommandOptionUser, Value: "bob"},
					{Name: "amount", Type: discordgo.ApplicationCommandOptionInteger, Value: float64(3)},
				},
			}},
		},
	}}

	req := requestFromInteraction(i)

	s.Require().NotNil(req)
	s.Equal("give", req.Subcommand)
	s.Equal("Al", req.Username)
	s.Equal("bob", req.Options["player"])
	s.Equal("3", req.Options["amount"])
}

func (s *PyramidCommandTestSuite) TestRequestFromButton() {
	i := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Type:      discordgo.InteractionMessageComponent,
		ChannelID: "chan-1",
		User:      &discordgo.User{ID: "alice", Username: "alice_99"},
		Data:      discordgo.MessageComponentInteractionData{CustomID: ButtonReveal},
	}}

	req := requestFromInteraction(i)

	s.Require().NotNil(req)
	s.Equal("reveal", req.Subcommand)
	s.Equal("alice_99", req.Username)
	s.True(s.command.OwnsButton(ButtonReveal))
	s.False(s.command.OwnsButton("other:thing"))
}

func (s *PyramidCommandTestSuite) TestPyramidRowsApexFirst() {
	pyramid := make([]models.Card, 15)
	for i := range pyramid {
		pyramid[i] = models.NewCard("c", models.SuitHearts, models.RankTwo)
	}
	pyramid[14].Hidden = false

	rows := pyramidRows(pyramid)

	s.Require().Len(rows, 5)
	s.Equal("        2♥", rows[0])
}
