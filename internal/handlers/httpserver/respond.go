package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/KirkDiggler/pyramid/internal/engine"
	"github.com/KirkDiggler/pyramid/internal/services/game"
	"github.com/KirkDiggler/pyramid/internal/services/messaging"
	"github.com/rs/zerolog/log"
)

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Title   string `json:"title,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Warn().Err(err).Msg("failed to write response")
	}
}

func decode(r *http.Request, into any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(into); err != nil {
		return game.ErrInvalidInput
	}
	return nil
}

// statusFor maps service and engine errors onto HTTP statuses
func statusFor(err error) int {
	var engineErr engine.GameError

	switch {
	case errors.Is(err, game.ErrRoomNotFound), errors.Is(err, game.ErrNoRoomForChannel), errors.Is(err, game.ErrPlayerNotInRoom):
		return http.StatusNotFound
	case errors.Is(err, game.ErrInvalidInput), errors.Is(err, engine.ErrInvalidInput),
		errors.Is(err, engine.ErrInvalidAmount), errors.Is(err, engine.ErrInvalidAction):
		return http.StatusBadRequest
	case errors.Is(err, game.ErrNotHost), errors.Is(err, engine.ErrNotHost),
		errors.Is(err, engine.ErrNotYourTurn), errors.Is(err, engine.ErrNotRecipient),
		errors.Is(err, engine.ErrNotChallengeTarget), errors.Is(err, engine.ErrPlayerNotFound):
		return http.StatusForbidden
	case errors.Is(err, game.ErrVersionConflict):
		return http.StatusConflict
	case errors.As(err, &engineErr):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// writeError answers with the error's status and a friendly message
func (s *Server) writeError(ctx context.Context, w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Msg("request failed")
	}

	body := errorBody{Error: err.Error()}
	if status == http.StatusInternalServerError {
		body.Error = "internal_error"
	}
	if out, msgErr := s.messages.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{Err: err}); msgErr == nil {
		body.Title = out.Title
		body.Message = out.Message
	}

	writeJSON(w, status, body)
}
