package discord

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/pyramid/internal/engine"
	"github.com/KirkDiggler/pyramid/internal/models"
	"github.com/KirkDiggler/pyramid/internal/services/game"
	"github.com/KirkDiggler/pyramid/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

const buttonPrefix = "pyramid:"

// PyramidCommand handles the /pyramid command
type PyramidCommand struct {
	BaseCommand
	gameService      game.Service
	messagingService messaging.Service
}

// NewPyramidCommand creates a new pyramid command handler
func NewPyramidCommand(gameService game.Service, messagingService messaging.Service) *PyramidCommand {
	return &PyramidCommand{
		BaseCommand: BaseCommand{
			Name:        "pyramid",
			Description: "Pyramid drinking card game",
			Options: []*discordgo.ApplicationCommandOption{
				subcommand("create", "Open a new pyramid in this channel"),
				subcommand("join", "Take a seat at the table",
					stringOption("code", "Room code, defaults to this channel's room", false)),
				subcommand("start", "Deal the cards (host only)"),
				subcommand("answer", "Answer the current question",
					stringOption("guess", "red/black, more/less, in/out, a suit, or rank-suit like q-hearts", true)),
				subcommand("reveal", "Flip the next pyramid card (host only)"),
				subcommand("give", "Hand out sips for the card in play",
					&discordgo.ApplicationCommandOption{
						Type:        discordgo.ApplicationCommandOptionUser,
						Name:        "player",
						Description: "Who drinks",
						Required:    true,
					},
					&discordgo.ApplicationCommandOption{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "amount",
						Description: "How many sips",
						Required:    true,
					},
					stringOption("card", "The matching card you claim to hold, like 7-hearts", false)),
				subcommand("done", "Finish giving sips for this card"),
				subcommand("accept", "Drink what you were given",
					stringOption("allocation", "Allocation id, defaults to all of them", false)),
				subcommand("challenge", "Call a giver a liar",
					stringOption("allocation", "Allocation id, defaults to the oldest", false)),
				subcommand("prove", "Show your card when challenged",
					stringOption("card", "The card to show, like 7-hearts", false)),
				subcommand("status", "Show the table and your hand"),
				subcommand("leaderboard", "Show who drank the most"),
				subcommand("close", "Close the room (host only)"),
			},
		},
		gameService:      gameService,
		messagingService: messagingService,
	}
}

func subcommand(name, description string, options ...*discordgo.ApplicationCommandOption) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionSubCommand,
		Name:        name,
		Description: description,
		Options:     options,
	}
}

func stringOption(name, description string, required bool) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        name,
		Description: description,
		Required:    required,
	}
}

// Handle processes a Discord interaction for the pyramid command
func (c *PyramidCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	req := requestFromInteraction(i)
	if req == nil {
		return nil
	}
	return Respond(s, i, c.Execute(context.Background(), req))
}

// OwnsButton reports whether a button custom id belongs to this command
func (c *PyramidCommand) OwnsButton(customID string) bool {
	return strings.HasPrefix(customID, buttonPrefix)
}

// requestFromInteraction reads a slash command or a button press
func requestFromInteraction(i *discordgo.InteractionCreate) *Request {
	user := i.User
	nick := ""
	if i.Member != nil {
		user = i.Member.User
		nick = i.Member.Nick
	}
	if user == nil {
		return nil
	}

	req := &Request{
		ChannelID: i.ChannelID,
		UserID:    user.ID,
		Username:  user.Username,
		Options:   map[string]string{},
	}
	if user.GlobalName != "" {
		req.Username = user.GlobalName
	}
	if nick != "" {
		req.Username = nick
	}

	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		data := i.ApplicationCommandData()
		if len(data.Options) == 0 {
			return nil
		}
		sub := data.Options[0]
		req.Subcommand = sub.Name
		for _, opt := range sub.Options {
			req.Options[opt.Name] = fmt.Sprint(opt.Value)
		}
	case discordgo.InteractionMessageComponent:
		req.Subcommand = strings.TrimPrefix(i.MessageComponentData().CustomID, buttonPrefix)
	default:
		return nil
	}

	return req
}

// Execute runs a request against the game and builds the reply
func (c *PyramidCommand) Execute(ctx context.Context, req *Request) *Reply {
	var (
		reply *Reply
		err   error
	)

	switch req.Subcommand {
	case "create":
		reply, err = c.create(ctx, req)
	case "join":
		reply, err = c.join(ctx, req)
	case "start":
		reply, err = c.start(ctx, req)
	case "answer":
		reply, err = c.answer(ctx, req)
	case "reveal":
		reply, err = c.reveal(ctx, req)
	case "give":
		reply, err = c.give(ctx, req)
	case "done":
		reply, err = c.done(ctx, req)
	case "accept":
		reply, err = c.accept(ctx, req)
	case "challenge":
		reply, err = c.challenge(ctx, req)
	case "prove":
		reply, err = c.prove(ctx, req)
	case "status":
		reply, err = c.status(ctx, req)
	case "leaderboard":
		reply, err = c.leaderboard(ctx, req)
	case "close":
		reply, err = c.close(ctx, req)
	default:
		return errorReply("Huh?", fmt.Sprintf("I don't know how to %q.", req.Subcommand))
	}

	if err != nil {
		return c.fail(ctx, req, err)
	}
	return reply
}

func (c *PyramidCommand) fail(ctx context.Context, req *Request, err error) *Reply {
	var engineErr engine.GameError
	var gameErr game.GameError
	if !errors.As(err, &engineErr) && !errors.As(err, &gameErr) {
		log.Error().Err(err).Str("subcommand", req.Subcommand).Str("channel", req.ChannelID).Msg("pyramid command failed")
	}

	out, msgErr := c.messagingService.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{
		Err: err,
	})
	if msgErr != nil {
		return errorReply("Oops", err.Error())
	}
	return errorReply(out.Title, out.Message)
}

// room finds the room for the channel, falling back to the caller's own room
func (c *PyramidCommand) room(ctx context.Context, req *Request) (*models.GameState, error) {
	out, err := c.gameService.GetRoomByChannel(ctx, &game.GetRoomByChannelInput{
		ChannelID: req.ChannelID,
	})
	if errors.Is(err, game.ErrNoRoomForChannel) {
		out, err = c.gameService.GetPlayerRoom(ctx, &game.GetPlayerRoomInput{
			PlayerID: req.UserID,
		})
		if errors.Is(err, game.ErrPlayerNotInRoom) {
			return nil, game.ErrNoRoomForChannel
		}
	}
	if err != nil {
		return nil, err
	}
	return out.State, nil
}

func (c *PyramidCommand) phaseMessage(ctx context.Context, state *models.GameState) string {
	input := &messaging.GetPhaseMessageInput{
		Phase:         state.CurrentPhase,
		QuestionIndex: state.CurrentQuestionIndex,
	}
	if state.ActiveCard != nil {
		input.Multiplier = engine.SipMultiplier(state.PyramidIndex(state.ActiveCard.ID))
	}
	out, err := c.messagingService.GetPhaseMessage(ctx, input)
	if err != nil {
		return ""
	}
	return out.Message
}

// table is the public view of a room
func (c *PyramidCommand) table(ctx context.Context, state *models.GameState, title string) *Reply {
	reply := renderTable(state, "", c.phaseMessage(ctx, state))
	reply.Ephemeral = false
	if title != "" {
		reply.Title = title
	}
	return reply
}

func (c *PyramidCommand) create(ctx context.Context, req *Request) (*Reply, error) {
	existing, err := c.gameService.GetRoomByChannel(ctx, &game.GetRoomByChannelInput{
		ChannelID: req.ChannelID,
	})
	if err == nil && existing.State.CurrentPhase != models.PhaseGameOver {
		return errorReply("Table taken", fmt.Sprintf("Room **%s** is still running here. The host can `/pyramid close` it.", existing.State.RoomID)), nil
	}
	if err != nil && !errors.Is(err, game.ErrNoRoomForChannel) {
		return nil, err
	}

	out, err := c.gameService.CreateRoom(ctx, &game.CreateRoomInput{
		PlayerID:   req.UserID,
		PlayerName: req.Username,
		ChannelID:  req.ChannelID,
	})
	if err != nil {
		return nil, err
	}

	return c.table(ctx, out.State, fmt.Sprintf("Room %s is open", out.RoomCode)), nil
}

func (c *PyramidCommand) join(ctx context.Context, req *Request) (*Reply, error) {
	code := strings.ToUpper(strings.TrimSpace(req.Options["code"]))
	if code == "" {
		state, err := c.room(ctx, req)
		if err != nil {
			return nil, err
		}
		code = state.RoomID
	}

	out, err := c.gameService.JoinRoom(ctx, &game.JoinRoomInput{
		RoomCode:   code,
		PlayerID:   req.UserID,
		PlayerName: req.Username,
	})
	if err != nil {
		return nil, err
	}

	msg, err := c.messagingService.GetJoinRoomMessage(ctx, &messaging.GetJoinRoomMessageInput{
		PlayerName:    req.Username,
		Phase:         out.State.CurrentPhase,
		AlreadyJoined: out.AlreadyJoined,
	})
	if err != nil {
		return nil, err
	}

	return &Reply{
		Title:       fmt.Sprintf("Room %s · %d seated", out.State.RoomID, len(out.State.Players)),
		Description: msg.Message,
		Buttons:     phaseButtons(out.State.CurrentPhase),
		Ephemeral:   out.AlreadyJoined,
	}, nil
}

func (c *PyramidCommand) start(ctx context.Context, req *Request) (*Reply, error) {
	state, err := c.room(ctx, req)
	if err != nil {
		return nil, err
	}

	out, err := c.gameService.StartGame(ctx, &game.StartGameInput{
		RoomCode: state.RoomID,
		PlayerID: req.UserID,
	})
	if err != nil {
		return nil, err
	}

	return c.table(ctx, out.State, "Cards are out!"), nil
}

func (c *PyramidCommand) answer(ctx context.Context, req *Request) (*Reply, error) {
	state, err := c.room(ctx, req)
	if err != nil {
		return nil, err
	}

	out, err := c.gameService.SubmitAnswer(ctx, &game.SubmitAnswerInput{
		RoomCode: state.RoomID,
		PlayerID: req.UserID,
		Answer:   req.Options["guess"],
	})
	if err != nil {
		return nil, err
	}

	reply := c.table(ctx, out.State, "")

	// The card just answered is the newest in the player's hand
	if p := out.State.Player(req.UserID); p != nil && len(p.Hand) > 0 {
		card := p.Hand[len(p.Hand)-1]
		card.Hidden = false
		msg, err := c.messagingService.GetTurnResultMessage(ctx, &messaging.GetTurnResultMessageInput{
			PlayerName: p.Name,
			Correct:    out.Correct,
			Card:       card,
		})
		if err == nil {
			reply.Title = msg.Title
			reply.Description = msg.Message
		}
	}

	return reply, nil
}

func (c *PyramidCommand) reveal(ctx context.Context, req *Request) (*Reply, error) {
	state, err := c.room(ctx, req)
	if err != nil {
		return nil, err
	}

	out, err := c.gameService.RevealPyramidCard(ctx, &game.RevealPyramidCardInput{
		RoomCode: state.RoomID,
		PlayerID: req.UserID,
	})
	if err != nil {
		return nil, err
	}

	title := "Card up!"
	if out.State.ActiveCard != nil {
		title = fmt.Sprintf("%s is up!", cardLabel(*out.State.ActiveCard))
	}
	return c.table(ctx, out.State, title), nil
}

func (c *PyramidCommand) give(ctx context.Context, req *Request) (*Reply, error) {
	amount, err := strconv.Atoi(req.Options["amount"])
	if err != nil {
		return nil, engine.ErrInvalidAmount
	}

	state, err := c.room(ctx, req)
	if err != nil {
		return nil, err
	}

	cardID := ""
	if ref := req.Options["card"]; ref != "" {
		if giver := state.Player(req.UserID); giver != nil {
			cardID = findCard(giver.Hand, ref)
		}
	}

	out, err := c.gameService.AllocateSips(ctx, &game.AllocateSipsInput{
		RoomCode:       state.RoomID,
		PlayerID:       req.UserID,
		TargetPlayerID: req.Options["player"],
		Amount:         amount,
		UsingCardID:    cardID,
	})
	if err != nil {
		return nil, err
	}

	description := fmt.Sprintf("%s hands %s %d sips.", req.Username, playerName(out.State, req.Options["player"]), amount)
	if out.State.ActiveCard != nil {
		idx := out.State.PyramidIndex(out.State.ActiveCard.ID)
		description += fmt.Sprintf(" (%d of %d given)", engine.Committed(out.State, req.UserID), engine.SipCap(idx))
	}

	return &Reply{
		Title:       "Drink up!",
		Description: description,
		Buttons:     phaseButtons(out.State.CurrentPhase),
	}, nil
}

func (c *PyramidCommand) done(ctx context.Context, req *Request) (*Reply, error) {
	state, err := c.room(ctx, req)
	if err != nil {
		return nil, err
	}

	out, err := c.gameService.ConfirmPhase2Turn(ctx, &game.ConfirmPhase2TurnInput{
		RoomCode: state.RoomID,
		PlayerID: req.UserID,
	})
	if err != nil {
		return nil, err
	}

	if out.State.CurrentPhase == models.PhaseAllocate {
		return &Reply{
			Title:       "Done giving",
			Description: fmt.Sprintf("%s is done. Waiting on %d more.", req.Username, len(out.State.Players)-len(out.State.ConfirmedTurnPlayers)),
		}, nil
	}
	return c.table(ctx, out.State, "Everyone's done giving"), nil
}

// pendingFor lists the allocations still waiting on the caller
func pendingFor(state *models.GameState, playerID string) []string {
	var ids []string
	for _, id := range engine.PendingFor(state, playerID) {
		if state.PendingAllocations[id].Status == models.AllocationStatusPending {
			ids = append(ids, id)
		}
	}
	return ids
}

func (c *PyramidCommand) accept(ctx context.Context, req *Request) (*Reply, error) {
	state, err := c.room(ctx, req)
	if err != nil {
		return nil, err
	}

	ids := pendingFor(state, req.UserID)
	if id := req.Options["allocation"]; id != "" {
		ids = []string{id}
	}
	if len(ids) == 0 {
		return nil, engine.ErrAllocationNotFound
	}

	total := 0
	var last *game.ActionOutput
	for _, id := range ids {
		amount := 0
		if a, ok := state.PendingAllocations[id]; ok {
			amount = a.Amount
		}
		out, err := c.gameService.RespondToAllocation(ctx, &game.RespondToAllocationInput{
			RoomCode:     state.RoomID,
			PlayerID:     req.UserID,
			AllocationID: id,
			Action:       engine.ResponseAccept,
		})
		if err != nil {
			if last == nil {
				return nil, err
			}
			break
		}
		total += amount
		last = out
	}

	reply := c.table(ctx, last.State, "Bottoms up")
	reply.Description = fmt.Sprintf("%s drinks %d sips 🍺", req.Username, total)
	return reply, nil
}

func (c *PyramidCommand) challenge(ctx context.Context, req *Request) (*Reply, error) {
	state, err := c.room(ctx, req)
	if err != nil {
		return nil, err
	}

	id := req.Options["allocation"]
	if id == "" {
		ids := pendingFor(state, req.UserID)
		if len(ids) == 0 {
			return nil, engine.ErrAllocationNotFound
		}
		id = ids[0]
	}

	out, err := c.gameService.RespondToAllocation(ctx, &game.RespondToAllocationInput{
		RoomCode:     state.RoomID,
		PlayerID:     req.UserID,
		AllocationID: id,
		Action:       engine.ResponseChallenge,
	})
	if err != nil {
		return nil, err
	}

	return c.table(ctx, out.State, "Menteur!"), nil
}

func (c *PyramidCommand) prove(ctx context.Context, req *Request) (*Reply, error) {
	state, err := c.room(ctx, req)
	if err != nil {
		return nil, err
	}
	if state.ActiveChallenge == nil {
		return nil, engine.ErrNoActiveChallenge
	}

	challengerName := playerName(state, state.ActiveChallenge.ChallengerID)

	cardID := ""
	if giver := state.Player(req.UserID); giver != nil {
		if ref := req.Options["card"]; ref != "" {
			cardID = findCard(giver.Hand, ref)
		} else if state.ActiveCard != nil {
			for _, card := range giver.Hand {
				if card.Rank == state.ActiveCard.Rank {
					cardID = card.ID
					break
				}
			}
		}
	}

	out, err := c.gameService.ResolveChallenge(ctx, &game.ResolveChallengeInput{
		RoomCode: state.RoomID,
		PlayerID: req.UserID,
		CardID:   cardID,
	})
	if err != nil {
		return nil, err
	}

	truthful := true
	penalty := 0
	for _, sip := range out.Sips {
		penalty = sip.Amount
		if sip.Reason == models.SipReasonChallengeLostGiver {
			truthful = false
		}
	}

	reply := c.table(ctx, out.State, "")
	msg, err := c.messagingService.GetChallengeVerdictMessage(ctx, &messaging.GetChallengeVerdictMessageInput{
		GiverName:      req.Username,
		ChallengerName: challengerName,
		Truthful:       truthful,
		Penalty:        penalty,
	})
	if err == nil {
		reply.Title = msg.Title
		reply.Description = msg.Message
	}
	return reply, nil
}

func (c *PyramidCommand) status(ctx context.Context, req *Request) (*Reply, error) {
	state, err := c.room(ctx, req)
	if err != nil {
		return nil, err
	}
	return renderTable(state, req.UserID, c.phaseMessage(ctx, state)), nil
}

func (c *PyramidCommand) leaderboard(ctx context.Context, req *Request) (*Reply, error) {
	state, err := c.room(ctx, req)
	if err != nil {
		return nil, err
	}

	out, err := c.gameService.GetLeaderboard(ctx, &game.GetLeaderboardInput{
		RoomCode: state.RoomID,
	})
	if err != nil {
		return nil, err
	}
	return renderLeaderboard(out.Leaderboard), nil
}

func (c *PyramidCommand) close(ctx context.Context, req *Request) (*Reply, error) {
	state, err := c.room(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := c.gameService.CloseRoom(ctx, &game.CloseRoomInput{
		RoomCode: state.RoomID,
		PlayerID: req.UserID,
	}); err != nil {
		return nil, err
	}

	return &Reply{
		Title:       "Table cleared",
		Description: fmt.Sprintf("Room %s is closed. Drink water.", state.RoomID),
	}, nil
}

// findCard resolves "rank-suit" or a card id against a hand
func findCard(hand []models.Card, ref string) string {
	ref = strings.TrimSpace(ref)
	if parts := strings.SplitN(ref, "-", 2); len(parts) == 2 {
		rank, okRank := models.ParseRank(parts[0])
		suit, okSuit := models.ParseSuit(parts[1])
		if okRank && okSuit {
			for _, card := range hand {
				if card.Rank == rank && card.Suit == suit {
					return card.ID
				}
			}
		}
	}
	return ref
}
