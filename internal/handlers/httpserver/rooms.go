package httpserver

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/KirkDiggler/pyramid/internal/engine"
	"github.com/KirkDiggler/pyramid/internal/models"
	"github.com/KirkDiggler/pyramid/internal/repositories/sip_ledger"
	"github.com/KirkDiggler/pyramid/internal/services/game"
	"github.com/go-chi/chi/v5"
)

type createRoomReq struct {
	Name string `json:"name"`
}

type joinRoomReq struct {
	Name string `json:"name"`

	// PlayerID rejoins with an existing seat
	PlayerID string `json:"playerId,omitempty"`
}

type seatRes struct {
	RoomCode      string            `json:"roomCode"`
	PlayerID      string            `json:"playerId"`
	Token         string            `json:"token"`
	AlreadyJoined bool              `json:"alreadyJoined,omitempty"`
	State         *models.GameState `json:"state"`
}

type actionRes struct {
	State        *models.GameState    `json:"state"`
	Events       []*models.Event      `json:"events,omitempty"`
	Sips         []models.SipTransfer `json:"sips,omitempty"`
	Correct      bool                 `json:"correct,omitempty"`
	AllocationID string               `json:"allocationId,omitempty"`
}

type sipHistoryRes struct {
	Records []*models.SipRecord           `json:"records"`
	Totals  map[string]*sip_ledger.Totals `json:"totals,omitempty"`
}

func roomCode(r *http.Request) string {
	return strings.ToUpper(chi.URLParam(r, "code"))
}

func (s *Server) handleListRooms(w http.ResponseWriter, r *http.Request) {
	codes, err := s.game.ListActiveRooms(r.Context())
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	if codes == nil {
		codes = []string{}
	}
	writeJSON(w, http.StatusOK, map[string][]string{"rooms": codes})
}

func (s *Server) handleCreateRoom(w http.ResponseWriter, r *http.Request) {
	var req createRoomReq
	if err := decode(r, &req); err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	out, err := s.game.CreateRoom(r.Context(), &game.CreateRoomInput{PlayerName: req.Name})
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	token, err := s.issueToken(out.RoomCode, out.PlayerID, req.Name)
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusCreated, seatRes{
		RoomCode: out.RoomCode,
		PlayerID: out.PlayerID,
		Token:    token,
		State:    out.State,
	})
}

func (s *Server) handleJoinRoom(w http.ResponseWriter, r *http.Request) {
	var req joinRoomReq
	if err := decode(r, &req); err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	// Rejoining under an existing id needs that player's token
	if req.PlayerID != "" {
		claims, err := s.claimsFor(r)
		if err != nil || claims.Subject != req.PlayerID {
			writeJSON(w, http.StatusUnauthorized, errorBody{Error: "unauthorized", Message: "rejoining needs your player token"})
			return
		}
	}

	out, err := s.game.JoinRoom(r.Context(), &game.JoinRoomInput{
		RoomCode:   roomCode(r),
		PlayerID:   req.PlayerID,
		PlayerName: req.Name,
	})
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	token, err := s.issueToken(out.State.RoomID, out.PlayerID, req.Name)
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	status := http.StatusCreated
	if out.AlreadyJoined {
		status = http.StatusOK
	}
	writeJSON(w, status, seatRes{
		RoomCode:      out.State.RoomID,
		PlayerID:      out.PlayerID,
		Token:         token,
		AlreadyJoined: out.AlreadyJoined,
		State:         out.State,
	})
}

func (s *Server) handleGetRoom(w http.ResponseWriter, r *http.Request) {
	out, err := s.game.GetRoom(r.Context(), &game.GetRoomInput{RoomCode: roomCode(r)})
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, out.State)
}

func (s *Server) handleGetEvents(w http.ResponseWriter, r *http.Request) {
	input := &game.GetEventsInput{RoomCode: roomCode(r)}
	if after := r.URL.Query().Get("after"); after != "" {
		id, err := strconv.ParseInt(after, 10, 64)
		if err != nil {
			s.writeError(r.Context(), w, game.ErrInvalidInput)
			return
		}
		input.AfterID = id
	}
	if limit := r.URL.Query().Get("limit"); limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil {
			s.writeError(r.Context(), w, game.ErrInvalidInput)
			return
		}
		input.Limit = n
	}

	out, err := s.game.GetEvents(r.Context(), input)
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	events := out.Events
	if events == nil {
		events = []*models.Event{}
	}
	writeJSON(w, http.StatusOK, map[string][]*models.Event{"events": events})
}

func (s *Server) handleGetLeaderboard(w http.ResponseWriter, r *http.Request) {
	out, err := s.game.GetLeaderboard(r.Context(), &game.GetLeaderboardInput{RoomCode: roomCode(r)})
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, out.Leaderboard)
}

func (s *Server) handleGetSipHistory(w http.ResponseWriter, r *http.Request) {
	out, err := s.game.GetSipHistory(r.Context(), &game.GetSipHistoryInput{
		RoomCode: roomCode(r),
		PlayerID: r.URL.Query().Get("player"),
	})
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	records := out.Records
	if records == nil {
		records = []*models.SipRecord{}
	}
	writeJSON(w, http.StatusOK, sipHistoryRes{Records: records, Totals: out.Totals})
}

func (s *Server) handleCloseRoom(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())
	if err := s.game.CloseRoom(r.Context(), &game.CloseRoomInput{
		RoomCode: roomCode(r),
		PlayerID: claims.Subject,
	}); err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// act runs an authenticated action and writes the published document
func (s *Server) act(w http.ResponseWriter, r *http.Request, run func(code, playerID string) (*game.ActionOutput, error)) {
	claims := claimsFrom(r.Context())
	out, err := run(roomCode(r), claims.Subject)
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, actionRes{
		State:        out.State,
		Events:       out.Events,
		Sips:         out.Sips,
		Correct:      out.Correct,
		AllocationID: out.AllocationID,
	})
}

func (s *Server) handleStart(w http.ResponseWriter, r *http.Request) {
	s.act(w, r, func(code, playerID string) (*game.ActionOutput, error) {
		return s.game.StartGame(r.Context(), &game.StartGameInput{RoomCode: code, PlayerID: playerID})
	})
}

func (s *Server) handleDraw(w http.ResponseWriter, r *http.Request) {
	s.act(w, r, func(code, playerID string) (*game.ActionOutput, error) {
		return s.game.DrawCard(r.Context(), &game.DrawCardInput{RoomCode: code, PlayerID: playerID})
	})
}

type answerReq struct {
	Answer string `json:"answer"`
}

func (s *Server) handleAnswer(w http.ResponseWriter, r *http.Request) {
	var req answerReq
	if err := decode(r, &req); err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	s.act(w, r, func(code, playerID string) (*game.ActionOutput, error) {
		return s.game.SubmitAnswer(r.Context(), &game.SubmitAnswerInput{RoomCode: code, PlayerID: playerID, Answer: req.Answer})
	})
}

// resolveTurnReq settles a phase 1 turn judged away from the server,
// e.g. a table playing with a physical deck
type resolveTurnReq struct {
	Correct bool `json:"correct"`
}

func (s *Server) handleResolveTurn(w http.ResponseWriter, r *http.Request) {
	var req resolveTurnReq
	if err := decode(r, &req); err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	s.act(w, r, func(code, playerID string) (*game.ActionOutput, error) {
		return s.game.ResolveTurn(r.Context(), &game.ResolveTurnInput{RoomCode: code, PlayerID: playerID, Correct: req.Correct})
	})
}

func (s *Server) handleInitializePyramid(w http.ResponseWriter, r *http.Request) {
	s.act(w, r, func(code, playerID string) (*game.ActionOutput, error) {
		return s.game.InitializePyramid(r.Context(), &game.InitializePyramidInput{RoomCode: code, PlayerID: playerID})
	})
}

func (s *Server) handleReveal(w http.ResponseWriter, r *http.Request) {
	s.act(w, r, func(code, playerID string) (*game.ActionOutput, error) {
		return s.game.RevealPyramidCard(r.Context(), &game.RevealPyramidCardInput{RoomCode: code, PlayerID: playerID})
	})
}

type allocateReq struct {
	TargetPlayerID string `json:"targetPlayerId"`
	Amount         int    `json:"amount"`
	UsingCardID    string `json:"usingCardId,omitempty"`
}

func (s *Server) handleAllocate(w http.ResponseWriter, r *http.Request) {
	var req allocateReq
	if err := decode(r, &req); err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	s.act(w, r, func(code, playerID string) (*game.ActionOutput, error) {
		return s.game.AllocateSips(r.Context(), &game.AllocateSipsInput{
			RoomCode:       code,
			PlayerID:       playerID,
			TargetPlayerID: req.TargetPlayerID,
			Amount:         req.Amount,
			UsingCardID:    req.UsingCardID,
		})
	})
}

func (s *Server) handleConfirm(w http.ResponseWriter, r *http.Request) {
	s.act(w, r, func(code, playerID string) (*game.ActionOutput, error) {
		return s.game.ConfirmPhase2Turn(r.Context(), &game.ConfirmPhase2TurnInput{RoomCode: code, PlayerID: playerID})
	})
}

type respondReq struct {
	AllocationID string                `json:"allocationId"`
	Action       engine.ResponseAction `json:"action"`
}

func (s *Server) handleRespond(w http.ResponseWriter, r *http.Request) {
	var req respondReq
	if err := decode(r, &req); err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	s.act(w, r, func(code, playerID string) (*game.ActionOutput, error) {
		return s.game.RespondToAllocation(r.Context(), &game.RespondToAllocationInput{
			RoomCode:     code,
			PlayerID:     playerID,
			AllocationID: req.AllocationID,
			Action:       engine.ResponseAction(strings.ToUpper(string(req.Action))),
		})
	})
}

type resolveChallengeReq struct {
	CardID string `json:"cardId"`
}

func (s *Server) handleResolveChallenge(w http.ResponseWriter, r *http.Request) {
	var req resolveChallengeReq
	if err := decode(r, &req); err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	s.act(w, r, func(code, playerID string) (*game.ActionOutput, error) {
		return s.game.ResolveChallenge(r.Context(), &game.ResolveChallengeInput{RoomCode: code, PlayerID: playerID, CardID: req.CardID})
	})
}
