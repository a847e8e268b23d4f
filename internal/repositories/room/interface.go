package room

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/pyramid/internal/repositories/room Repository

import (
	"context"
)

// Repository is the shared document store every client of a room reads and writes
type Repository interface {
	// CreateRoom stores the initial document, failing if the code is taken
	CreateRoom(ctx context.Context, input *CreateRoomInput) error

	// GetRoom retrieves the current document of a room
	GetRoom(ctx context.Context, input *GetRoomInput) (*GetRoomOutput, error)

	// GetRoomByChannel retrieves the room linked to a chat channel
	GetRoomByChannel(ctx context.Context, input *GetRoomByChannelInput) (*GetRoomOutput, error)

	// LinkChannel points a chat channel at a room
	LinkChannel(ctx context.Context, input *LinkChannelInput) error

	// Publish merges a delta into the document if nobody wrote since BaseVersion and
	// broadcasts the merged document to subscribers
	Publish(ctx context.Context, input *PublishInput) (*PublishOutput, error)

	// Subscribe streams full documents for a room until the subscription is closed
	Subscribe(ctx context.Context, input *SubscribeInput) (*Subscription, error)

	// AppendEvents adds events to the room's ordered log
	AppendEvents(ctx context.Context, input *AppendEventsInput) error

	// GetEvents reads the room's log after a given event id
	GetEvents(ctx context.Context, input *GetEventsInput) (*GetEventsOutput, error)

	// GetActiveRooms lists rooms that have not finished
	GetActiveRooms(ctx context.Context, input *GetActiveRoomsInput) (*GetActiveRoomsOutput, error)

	// DeleteRoom removes a room and everything indexed on it
	DeleteRoom(ctx context.Context, input *DeleteRoomInput) error
}
