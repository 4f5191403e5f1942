package checkout

import "time"

const PlacedEventName = "OrderPlacedEvent"

type PlacedEvent struct {
	DateTimeOccurred time.Time `json:"occurred_at"`
	Order            *Order    `json:"order"`
}

func NewPlacedEvent(o *Order) PlacedEvent {
	return PlacedEvent{
		DateTimeOccurred: time.Now(),
		Order:            o,
	}
}

func (e PlacedEvent) EventName() string {
	return PlacedEventName
}

func (e PlacedEvent) OccurredAt() time.Time {
	return e.DateTimeOccurred
}
