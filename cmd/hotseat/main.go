// Command hotseat plays a pyramid on one terminal, passing the keyboard around.
package main

import (
	"os"

	"github.com/KirkDiggler/pyramid/internal/common/clock"
	"github.com/KirkDiggler/pyramid/internal/common/uuid"
	"github.com/KirkDiggler/pyramid/internal/config"
	"github.com/KirkDiggler/pyramid/internal/deck"
	"github.com/KirkDiggler/pyramid/internal/engine"
	"github.com/KirkDiggler/pyramid/internal/models"
	"github.com/KirkDiggler/pyramid/internal/services/messaging"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const localRoom = "LOCAL"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	cfg.SetupLogging()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	ids := uuid.New()
	eng, err := engine.New(&engine.Config{
		Dealer:                deck.New(&deck.Config{UUIDGenerator: ids}),
		Clock:                 clock.New(),
		UUIDGenerator:         ids,
		MaxPlayers:            cfg.MaxPlayers,
		StrictChallengeReveal: cfg.StrictChallengeReveal,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create engine")
	}

	msgs, err := messaging.New(&messaging.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create messaging service")
	}

	pterm.DefaultBigText.WithLetters(pterm.NewLettersFromString("PYRAMID")).Render()

	h := &hotseat{
		engine: eng,
		msgs:   msgs,
		ids:    ids,
		state:  models.NewGameState(localRoom),
	}

	if !h.seatPlayers() {
		pterm.Warning.Println("Nobody sat down. Maybe next time.")
		return
	}

	h.play()
	h.printLeaderboard()
}
