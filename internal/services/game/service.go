package game

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/KirkDiggler/pyramid/internal/common/clock"
	"github.com/KirkDiggler/pyramid/internal/common/uuid"
	"github.com/KirkDiggler/pyramid/internal/engine"
	"github.com/KirkDiggler/pyramid/internal/models"
	"github.com/KirkDiggler/pyramid/internal/repositories/player"
	"github.com/KirkDiggler/pyramid/internal/repositories/room"
	"github.com/KirkDiggler/pyramid/internal/repositories/sip_ledger"
	"github.com/KirkDiggler/pyramid/internal/roomsync"
	"github.com/rs/zerolog/log"
)

const (
	// Room codes skip I and O so they read unambiguously
	roomCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ"
	roomCodeLength   = 4

	maxRoomCodeAttempts    = 10
	defaultPublishAttempts = 3
)

// service implements the Service interface
type service struct {
	roomRepo        room.Repository
	playerRepo      player.Repository
	sipLedgerRepo   sip_ledger.Repository
	engine          *engine.Engine
	clock           clock.Clock
	uuid            uuid.UUID
	roomCode        func() string
	publishAttempts int
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.RoomRepo == nil {
		return nil, ErrNilRoomRepo
	}
	if cfg.PlayerRepo == nil {
		return nil, ErrNilPlayerRepo
	}
	if cfg.SipLedgerRepo == nil {
		return nil, ErrNilSipLedgerRepo
	}
	if cfg.Engine == nil {
		return nil, ErrNilEngine
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	roomCode := cfg.RoomCodeGenerator
	if roomCode == nil {
		roomCode = randomRoomCode
	}

	attempts := cfg.PublishAttempts
	if attempts <= 0 {
		attempts = defaultPublishAttempts
	}

	return &service{
		roomRepo:        cfg.RoomRepo,
		playerRepo:      cfg.PlayerRepo,
		sipLedgerRepo:   cfg.SipLedgerRepo,
		engine:          cfg.Engine,
		clock:           cfg.Clock,
		uuid:            cfg.UUIDGenerator,
		roomCode:        roomCode,
		publishAttempts: attempts,
	}, nil
}

// normalizeRoomCode maps a typed room code onto the stored form
func normalizeRoomCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func randomRoomCode() string {
	code := make([]byte, roomCodeLength)
	for i := range code {
		code[i] = roomCodeAlphabet[rand.Intn(len(roomCodeAlphabet))]
	}
	return string(code)
}

// CreateRoom opens a lobby with the caller seated as host
func (s *service) CreateRoom(ctx context.Context, input *CreateRoomInput) (*CreateRoomOutput, error) {
	if input == nil || strings.TrimSpace(input.PlayerName) == "" {
		return nil, ErrInvalidInput
	}

	playerID := input.PlayerID
	if playerID == "" {
		playerID = s.uuid.NewUUID()
	}
	name := strings.TrimSpace(input.PlayerName)

	for attempt := 0; attempt < maxRoomCodeAttempts; attempt++ {
		code := s.roomCode()

		lobby := models.NewGameState(code)
		lobby.CreatedAt = s.clock.Now()

		result, err := s.engine.AddPlayer(lobby, &engine.AddPlayerInput{
			PlayerID: playerID,
			Name:     name,
		})
		if err != nil {
			return nil, err
		}

		err = s.roomRepo.CreateRoom(ctx, &room.CreateRoomInput{
			State: result.State,
		})
		if errors.Is(err, room.ErrRoomExists) {
			log.Debug().Str("room", code).Msg("room code taken, trying another")
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to create room: %w", err)
		}

		s.record(ctx, code, result)
		s.seat(ctx, playerID, name, code)

		if input.ChannelID != "" {
			if err := s.LinkChannel(ctx, &LinkChannelInput{
				RoomCode:  code,
				ChannelID: input.ChannelID,
			}); err != nil {
				return nil, err
			}
		}

		log.Info().Str("room", code).Str("host", playerID).Msg("room created")

		return &CreateRoomOutput{
			RoomCode: code,
			PlayerID: playerID,
			State:    result.State,
		}, nil
	}

	return nil, ErrRoomCodesExhausted
}

// JoinRoom seats a player in a lobby. Joining twice is not an error.
func (s *service) JoinRoom(ctx context.Context, input *JoinRoomInput) (*JoinRoomOutput, error) {
	if input == nil || strings.TrimSpace(input.PlayerName) == "" {
		return nil, ErrInvalidInput
	}

	playerID := input.PlayerID
	if playerID == "" {
		playerID = s.uuid.NewUUID()
	}
	name := strings.TrimSpace(input.PlayerName)
	code := normalizeRoomCode(input.RoomCode)

	out, err := s.act(ctx, code, func(state *models.GameState) (*engine.Result, error) {
		return s.engine.AddPlayer(state, &engine.AddPlayerInput{
			PlayerID: playerID,
			Name:     name,
		})
	})
	if errors.Is(err, engine.ErrPlayerAlreadyJoined) {
		state, err := s.load(ctx, code)
		if err != nil {
			return nil, err
		}
		return &JoinRoomOutput{
			PlayerID:      playerID,
			State:         state,
			AlreadyJoined: true,
		}, nil
	}
	if err != nil {
		return nil, err
	}

	s.seat(ctx, playerID, name, code)

	return &JoinRoomOutput{
		PlayerID: playerID,
		State:    out.State,
	}, nil
}

// LinkChannel points a chat channel at an existing room
func (s *service) LinkChannel(ctx context.Context, input *LinkChannelInput) error {
	if input == nil || input.ChannelID == "" {
		return ErrInvalidInput
	}
	code := normalizeRoomCode(input.RoomCode)
	if code == "" {
		return ErrInvalidInput
	}

	if err := s.roomRepo.LinkChannel(ctx, &room.LinkChannelInput{
		ChannelID: input.ChannelID,
		RoomCode:  code,
	}); err != nil {
		return fmt.Errorf("failed to link channel: %w", err)
	}

	return nil
}

// SetConnected flags whether a player has a live client
func (s *service) SetConnected(ctx context.Context, input *SetConnectedInput) (*ActionOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}
	return s.act(ctx, input.RoomCode, func(state *models.GameState) (*engine.Result, error) {
		return s.engine.SetPlayerConnected(state, &engine.SetPlayerConnectedInput{
			PlayerID:  input.PlayerID,
			Connected: input.Connected,
		})
	})
}

// StartGame deals the deck and opens phase 1
func (s *service) StartGame(ctx context.Context, input *StartGameInput) (*ActionOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}
	return s.act(ctx, input.RoomCode, func(state *models.GameState) (*engine.Result, error) {
		return s.engine.StartGame(state, &engine.StartGameInput{
			PlayerID: input.PlayerID,
		})
	})
}

// DrawCard puts the next phase 1 card in play
func (s *service) DrawCard(ctx context.Context, input *DrawCardInput) (*ActionOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}
	return s.act(ctx, input.RoomCode, func(state *models.GameState) (*engine.Result, error) {
		return s.engine.DrawCard(state, &engine.DrawCardInput{
			PlayerID: input.PlayerID,
		})
	})
}

// SubmitAnswer evaluates a guess against the active card
func (s *service) SubmitAnswer(ctx context.Context, input *SubmitAnswerInput) (*ActionOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}
	return s.act(ctx, input.RoomCode, func(state *models.GameState) (*engine.Result, error) {
		return s.engine.SubmitAnswer(state, &engine.SubmitAnswerInput{
			PlayerID: input.PlayerID,
			Answer:   input.Answer,
		})
	})
}

// ResolveTurn settles the turn with a known verdict
func (s *service) ResolveTurn(ctx context.Context, input *ResolveTurnInput) (*ActionOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}
	return s.act(ctx, input.RoomCode, func(state *models.GameState) (*engine.Result, error) {
		return s.engine.ResolveTurn(state, &engine.ResolveTurnInput{
			PlayerID: input.PlayerID,
			Correct:  input.Correct,
		})
	})
}

// InitializePyramid deals the pyramid
func (s *service) InitializePyramid(ctx context.Context, input *InitializePyramidInput) (*ActionOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}
	return s.act(ctx, input.RoomCode, func(state *models.GameState) (*engine.Result, error) {
		return s.engine.InitializePyramid(state, &engine.InitializePyramidInput{
			PlayerID: input.PlayerID,
		})
	})
}

// RevealPyramidCard flips the next pyramid card
func (s *service) RevealPyramidCard(ctx context.Context, input *RevealPyramidCardInput) (*ActionOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}
	return s.act(ctx, input.RoomCode, func(state *models.GameState) (*engine.Result, error) {
		return s.engine.RevealPyramidCard(state, &engine.RevealPyramidCardInput{
			PlayerID: input.PlayerID,
		})
	})
}

// AllocateSips hands out sips for the revealed card
func (s *service) AllocateSips(ctx context.Context, input *AllocateSipsInput) (*ActionOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}
	return s.act(ctx, input.RoomCode, func(state *models.GameState) (*engine.Result, error) {
		return s.engine.AllocateSips(state, &engine.AllocateSipsInput{
			PlayerID:       input.PlayerID,
			TargetPlayerID: input.TargetPlayerID,
			Amount:         input.Amount,
			UsingCardID:    input.UsingCardID,
		})
	})
}

// ConfirmPhase2Turn declares the caller done allocating
func (s *service) ConfirmPhase2Turn(ctx context.Context, input *ConfirmPhase2TurnInput) (*ActionOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}
	return s.act(ctx, input.RoomCode, func(state *models.GameState) (*engine.Result, error) {
		return s.engine.ConfirmPhase2Turn(state, &engine.ConfirmPhase2TurnInput{
			PlayerID: input.PlayerID,
		})
	})
}

// RespondToAllocation accepts or challenges an allocation
func (s *service) RespondToAllocation(ctx context.Context, input *RespondToAllocationInput) (*ActionOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}
	return s.act(ctx, input.RoomCode, func(state *models.GameState) (*engine.Result, error) {
		return s.engine.RespondToAllocation(state, &engine.RespondToAllocationInput{
			PlayerID:     input.PlayerID,
			AllocationID: input.AllocationID,
			Action:       input.Action,
		})
	})
}

// ResolveChallenge settles the active challenge
func (s *service) ResolveChallenge(ctx context.Context, input *ResolveChallengeInput) (*ActionOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}
	return s.act(ctx, input.RoomCode, func(state *models.GameState) (*engine.Result, error) {
		return s.engine.ResolveChallenge(state, &engine.ResolveChallengeInput{
			PlayerID: input.PlayerID,
			CardID:   input.CardID,
		})
	})
}

// CloseRoom lets the host tear a room down along with its ledger
func (s *service) CloseRoom(ctx context.Context, input *CloseRoomInput) error {
	if input == nil {
		return ErrInvalidInput
	}
	code := normalizeRoomCode(input.RoomCode)

	state, err := s.load(ctx, code)
	if err != nil {
		return err
	}
	if host := state.Host(); host == nil || host.ID != input.PlayerID {
		return ErrNotHost
	}

	profiles, err := s.playerRepo.GetProfilesInRoom(ctx, &player.GetProfilesInRoomInput{
		RoomCode: code,
	})
	if err != nil {
		log.Warn().Err(err).Str("room", code).Msg("failed to list players of closing room")
	} else {
		for _, profile := range profiles.Profiles {
			if err := s.playerRepo.UpdateProfileRoom(ctx, &player.UpdateProfileRoomInput{
				PlayerID: profile.ID,
			}); err != nil {
				log.Warn().Err(err).Str("player", profile.ID).Msg("failed to clear player room")
			}
		}
	}

	if err := s.sipLedgerRepo.DeleteSipRecords(ctx, &sip_ledger.DeleteSipRecordsInput{
		RoomID: code,
	}); err != nil {
		return fmt.Errorf("failed to delete sip records: %w", err)
	}

	if err := s.roomRepo.DeleteRoom(ctx, &room.DeleteRoomInput{
		RoomCode: code,
	}); err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}

	log.Info().Str("room", code).Msg("room closed")
	return nil
}

// GetRoom returns the current document of a room
func (s *service) GetRoom(ctx context.Context, input *GetRoomInput) (*GetRoomOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}
	state, err := s.load(ctx, input.RoomCode)
	if err != nil {
		return nil, err
	}
	return &GetRoomOutput{State: state}, nil
}

// GetRoomByChannel returns the room linked to a chat channel
func (s *service) GetRoomByChannel(ctx context.Context, input *GetRoomByChannelInput) (*GetRoomOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, ErrInvalidInput
	}

	out, err := s.roomRepo.GetRoomByChannel(ctx, &room.GetRoomByChannelInput{
		ChannelID: input.ChannelID,
	})
	if err != nil {
		if errors.Is(err, room.ErrRoomNotFound) {
			return nil, ErrNoRoomForChannel
		}
		return nil, fmt.Errorf("failed to get room for channel: %w", err)
	}

	return &GetRoomOutput{State: out.State}, nil
}

// GetPlayerRoom returns the room recorded in a player's profile
func (s *service) GetPlayerRoom(ctx context.Context, input *GetPlayerRoomInput) (*GetRoomOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, ErrInvalidInput
	}

	profile, err := s.playerRepo.GetProfile(ctx, &player.GetProfileInput{
		PlayerID: input.PlayerID,
	})
	if err != nil {
		if errors.Is(err, player.ErrPlayerNotFound) {
			return nil, ErrPlayerNotInRoom
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	if profile.CurrentRoomCode == "" {
		return nil, ErrPlayerNotInRoom
	}

	return s.GetRoom(ctx, &GetRoomInput{RoomCode: profile.CurrentRoomCode})
}

// ListActiveRooms lists rooms that have not finished
func (s *service) ListActiveRooms(ctx context.Context) ([]string, error) {
	out, err := s.roomRepo.GetActiveRooms(ctx, &room.GetActiveRoomsInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to list active rooms: %w", err)
	}
	return out.RoomCodes, nil
}

// GetLeaderboard ranks players by sips taken using the counters on the document
func (s *service) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	state, err := s.load(ctx, input.RoomCode)
	if err != nil {
		return nil, err
	}

	stats := make([]*models.PlayerStats, 0, len(state.Players))
	for _, p := range state.Players {
		stats = append(stats, &models.PlayerStats{
			PlayerID:   p.ID,
			PlayerName: p.Name,
			SipsGiven:  p.SipsGiven,
			SipsTaken:  p.SipsTaken,
			CardsHeld:  len(p.Hand),
		})
	}

	// Ties keep join order
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].SipsTaken > stats[j].SipsTaken
	})

	return &GetLeaderboardOutput{
		Leaderboard: &models.Leaderboard{
			RoomID:      state.RoomID,
			PlayerStats: stats,
		},
	}, nil
}

// GetSipHistory returns the ledger of a room, or of a player when PlayerID is set
func (s *service) GetSipHistory(ctx context.Context, input *GetSipHistoryInput) (*GetSipHistoryOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	if input.PlayerID != "" {
		out, err := s.sipLedgerRepo.GetSipRecordsForPlayer(ctx, &sip_ledger.GetSipRecordsForPlayerInput{
			PlayerID: input.PlayerID,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to get player sips: %w", err)
		}
		return &GetSipHistoryOutput{Records: out.Records}, nil
	}

	code := normalizeRoomCode(input.RoomCode)
	if code == "" {
		return nil, ErrInvalidInput
	}

	records, err := s.sipLedgerRepo.GetSipRecordsForRoom(ctx, &sip_ledger.GetSipRecordsForRoomInput{
		RoomID: code,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get room sips: %w", err)
	}

	totals, err := s.sipLedgerRepo.GetRoomTotals(ctx, &sip_ledger.GetRoomTotalsInput{
		RoomID: code,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get room totals: %w", err)
	}

	return &GetSipHistoryOutput{
		Records: records.Records,
		Totals:  totals.Totals,
	}, nil
}

// GetEvents returns the room's event log
func (s *service) GetEvents(ctx context.Context, input *GetEventsInput) (*GetEventsOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}
	code := normalizeRoomCode(input.RoomCode)
	if code == "" {
		return nil, ErrInvalidInput
	}

	out, err := s.roomRepo.GetEvents(ctx, &room.GetEventsInput{
		RoomCode: code,
		AfterID:  input.AfterID,
		Limit:    input.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}

	return &GetEventsOutput{Events: out.Events}, nil
}

// Subscribe streams every published document of a room
func (s *service) Subscribe(ctx context.Context, input *SubscribeInput) (*room.Subscription, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}
	code := normalizeRoomCode(input.RoomCode)
	if code == "" {
		return nil, ErrInvalidInput
	}

	sub, err := s.roomRepo.Subscribe(ctx, &room.SubscribeInput{
		RoomCode: code,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe: %w", err)
	}
	return sub, nil
}

// act runs one engine action against the latest document and publishes the
// delta under the document's version. A conflicting writer causes a reload and
// a fresh evaluation, so the action only lands if it still holds.
func (s *service) act(ctx context.Context, code string, action func(*models.GameState) (*engine.Result, error)) (*ActionOutput, error) {
	code = normalizeRoomCode(code)
	for attempt := 1; ; attempt++ {
		current, err := s.load(ctx, code)
		if err != nil {
			return nil, err
		}

		result, err := action(current)
		if err != nil {
			log.Debug().Err(err).Str("room", code).Int64("version", current.Version).Msg("action rejected")
			return nil, err
		}

		delta, err := roomsync.Diff(current, result.State)
		if err != nil {
			return nil, fmt.Errorf("failed to diff room: %w", err)
		}

		_, err = s.roomRepo.Publish(ctx, &room.PublishInput{
			RoomCode:    code,
			BaseVersion: current.Version,
			Delta:       delta,
		})
		if errors.Is(err, room.ErrVersionConflict) {
			if attempt < s.publishAttempts {
				log.Debug().Str("room", code).Int("attempt", attempt).Msg("version conflict, retrying")
				continue
			}
			return nil, ErrVersionConflict
		}
		if err != nil {
			return nil, fmt.Errorf("failed to publish room: %w", err)
		}

		s.record(ctx, code, result)

		log.Debug().
			Str("room", code).
			Int64("version", result.State.Version).
			Str("phase", string(result.State.CurrentPhase)).
			Msg("action published")

		return &ActionOutput{
			State:        result.State,
			Events:       result.Events,
			Sips:         result.Sips,
			Correct:      result.Correct,
			AllocationID: result.AllocationID,
		}, nil
	}
}

func (s *service) load(ctx context.Context, code string) (*models.GameState, error) {
	code = normalizeRoomCode(code)
	if code == "" {
		return nil, ErrInvalidInput
	}

	out, err := s.roomRepo.GetRoom(ctx, &room.GetRoomInput{
		RoomCode: code,
	})
	if err != nil {
		if errors.Is(err, room.ErrRoomNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to get room: %w", err)
	}
	return out.State, nil
}

// record appends the action's events and sips. The document is already
// published, so failures here are logged rather than returned.
func (s *service) record(ctx context.Context, code string, result *engine.Result) {
	if len(result.Events) > 0 {
		if err := s.roomRepo.AppendEvents(ctx, &room.AppendEventsInput{
			RoomCode: code,
			Events:   result.Events,
		}); err != nil {
			log.Error().Err(err).Str("room", code).Msg("failed to append events")
		}
	}

	if len(result.Sips) > 0 {
		if _, err := s.sipLedgerRepo.CreateSipRecords(ctx, &sip_ledger.CreateSipRecordsInput{
			RoomID:    code,
			Transfers: result.Sips,
			Timestamp: result.State.UpdatedAt,
		}); err != nil {
			log.Error().Err(err).Str("room", code).Msg("failed to record sips")
		}
	}
}

// seat points a player's profile at the room they just joined
func (s *service) seat(ctx context.Context, playerID, name, code string) {
	profile, err := s.playerRepo.GetProfile(ctx, &player.GetProfileInput{
		PlayerID: playerID,
	})
	switch {
	case errors.Is(err, player.ErrPlayerNotFound):
		profile = &models.Profile{ID: playerID}
	case err != nil:
		log.Warn().Err(err).Str("player", playerID).Msg("failed to load profile")
		return
	case profile.CurrentRoomCode != "" && profile.CurrentRoomCode != code:
		if err := s.playerRepo.UpdateProfileRoom(ctx, &player.UpdateProfileRoomInput{
			PlayerID: playerID,
			RoomCode: code,
		}); err != nil {
			log.Warn().Err(err).Str("player", playerID).Msg("failed to move profile")
			return
		}
	}

	profile.Name = name
	profile.CurrentRoomCode = code
	profile.LastSeen = s.clock.Now()

	if err := s.playerRepo.SaveProfile(ctx, &player.SaveProfileInput{
		Profile: profile,
	}); err != nil {
		log.Warn().Err(err).Str("player", playerID).Msg("failed to save profile")
	}
}
