package product

import "time"

const CreatedEventName = "ProductCreatedEvent"

type CreatedEvent struct {
	DateTimeOccurred time.Time `json:"occurred_at"`
	Product          *Product  `json:"product"`
}

func NewCreatedEvent(p *Product) CreatedEvent {
	return CreatedEvent{
		DateTimeOccurred: time.Now(),
		Product:          p,
	}
}

func (e CreatedEvent) EventName() string {
	return CreatedEventName
}

func (e CreatedEvent) OccurredAt() time.Time {
	return e.DateTimeOccurred
}
