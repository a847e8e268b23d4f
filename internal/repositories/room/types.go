package room

import (
	"github.com/KirkDiggler/pyramid/internal/models"
	"github.com/KirkDiggler/pyramid/internal/roomsync"
)

type CreateRoomInput struct {
	State *models.GameState
}

type GetRoomInput struct {
	RoomCode string
}

type GetRoomOutput struct {
	State    *models.GameState
	Snapshot roomsync.Snapshot
}

type GetRoomByChannelInput struct {
	ChannelID string
}

type LinkChannelInput struct {
	ChannelID string
	RoomCode  string
}

type PublishInput struct {
	RoomCode string

	// BaseVersion is the document version the delta was computed from
	BaseVersion int64

	// Delta must carry the next version
	Delta roomsync.Snapshot
}

type PublishOutput struct {
	// Snapshot is the merged document that was broadcast
	Snapshot roomsync.Snapshot
}

type SubscribeInput struct {
	RoomCode string
}

type AppendEventsInput struct {
	RoomCode string
	Events   []*models.Event
}

type GetEventsInput struct {
	RoomCode string

	// AfterID skips events up to and including this id
	AfterID int64

	// Limit keeps only the newest events, zero means all
	Limit int
}

type GetEventsOutput struct {
	Events []*models.Event
}

type GetActiveRoomsInput struct {
}

type GetActiveRoomsOutput struct {
	RoomCodes []string
}

type DeleteRoomInput struct {
	RoomCode string
}
