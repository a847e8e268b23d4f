package httpserver

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
)

// Claims bind a token to one player in one room. The subject is the player id.
type Claims struct {
	RoomCode string `json:"room"`
	Name     string `json:"name"`
	jwt.RegisteredClaims
}

type ctxClaimsKey struct{}

var errTokenRoom = errors.New("token is for another room")

// issueToken signs a player token for a room
func (s *Server) issueToken(roomCode, playerID, name string) (string, error) {
	now := s.clock.Now()
	claims := &Claims{
		RoomCode: roomCode,
		Name:     name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   playerID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// parseToken validates a token against the signing secret and the clock
func (s *Server) parseToken(raw string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(raw, claims,
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.clock.Now),
	)
	if err != nil {
		return nil, err
	}
	if claims.Subject == "" || claims.RoomCode == "" {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

// bearer reads the token from the Authorization header, or the token query
// parameter for websocket clients that cannot set headers
func bearer(r *http.Request) string {
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	return r.URL.Query().Get("token")
}

// claimsFor validates the request token for the room in the path
func (s *Server) claimsFor(r *http.Request) (*Claims, error) {
	claims, err := s.parseToken(bearer(r))
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(claims.RoomCode, chi.URLParam(r, "code")) {
		return nil, errTokenRoom
	}
	return claims, nil
}

// requireAuth rejects requests without a valid token for the room in the path
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := s.claimsFor(r)
		if errors.Is(err, errTokenRoom) {
			writeJSON(w, http.StatusForbidden, errorBody{Error: "forbidden", Message: err.Error()})
			return
		}
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, errorBody{Error: "unauthorized", Message: "a valid player token is required"})
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxClaimsKey{}, claims)))
	})
}

func claimsFrom(ctx context.Context) *Claims {
	claims, _ := ctx.Value(ctxClaimsKey{}).(*Claims)
	return claims
}
