package deck

//go:generate mockgen -package=mocks -destination=mocks/mock_dealer.go github.com/KirkDiggler/pyramid/internal/deck Dealer

import (
	"math/rand"
	"sync"
	"time"

	"github.com/KirkDiggler/pyramid/internal/common/uuid"
	"github.com/KirkDiggler/pyramid/internal/models"
)

// Size is the number of cards in a full deck
const Size = 52

// Dealer builds and shuffles decks
type Dealer interface {
	// Generate returns all 52 suit and rank combinations with fresh ids, face down
	Generate() []models.Card

	// Shuffle returns a uniformly random permutation without touching its input
	Shuffle(cards []models.Card) []models.Card
}

// Config for the dealer
type Config struct {
	// Optional seed for testing
	Seed int64

	// UUIDGenerator mints card ids, defaults to google/uuid
	UUIDGenerator uuid.UUID
}

type dealer struct {
	mu     sync.Mutex
	random *rand.Rand
	uuid   uuid.UUID
}

// New creates a new dealer
func New(cfg *Config) *dealer {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	var ids uuid.UUID
	if cfg != nil && cfg.UUIDGenerator != nil {
		ids = cfg.UUIDGenerator
	} else {
		ids = uuid.New()
	}

	return &dealer{
		random: rand.New(rand.NewSource(seed)),
		uuid:   ids,
	}
}

// Generate returns a fresh, ordered deck
func (d *dealer) Generate() []models.Card {
	return Generate(d.uuid)
}

// Shuffle returns a shuffled copy of cards
func (d *dealer) Shuffle(cards []models.Card) []models.Card {
	d.mu.Lock()
	defer d.mu.Unlock()

	return Shuffle(cards, d.random.Intn)
}

// Generate builds all 52 cards in suit then rank order using ids for card ids
func Generate(ids uuid.UUID) []models.Card {
	cards := make([]models.Card, 0, Size)
	for _, suit := range models.Suits {
		for _, rank := range models.Ranks {
			cards = append(cards, models.NewCard(ids.NewUUID(), suit, rank))
		}
	}
	return cards
}

// Shuffle is a backward Fisher-Yates pass over a copy of cards. intn must return a
// uniform value in [0, n).
func Shuffle(cards []models.Card, intn func(n int) int) []models.Card {
	out := make([]models.Card, len(cards))
	copy(out, cards)
	for i := len(out) - 1; i > 0; i-- {
		j := intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
