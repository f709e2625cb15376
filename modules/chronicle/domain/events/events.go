package events

import "github.com/hanlinworks/zhiguan/modules/chronicle/domain/position"

type PositionCreatedEvent struct {
	Position position.Position
}

type PositionUpdatedEvent struct {
	Position position.Position
}

type PositionDeletedEvent struct {
	PositionID int64
}
