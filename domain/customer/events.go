package customer

import "time"

const (
	CreatedEventName        = "CustomerCreatedEvent"
	AddressChangedEventName = "AddressChangedEvent"
)

type CreatedEvent struct {
	DateTimeOccurred time.Time `json:"occurred_at"`
	Customer         *Customer `json:"customer"`
}

func NewCreatedEvent(c *Customer) CreatedEvent {
	return CreatedEvent{
		DateTimeOccurred: time.Now(),
		Customer:         c,
	}
}

func (e CreatedEvent) EventName() string {
	return CreatedEventName
}

func (e CreatedEvent) OccurredAt() time.Time {
	return e.DateTimeOccurred
}

// AddressChangedEvent carries the customer after the change, so handlers
// read the new address from it.
type AddressChangedEvent struct {
	DateTimeOccurred time.Time `json:"occurred_at"`
	Customer         *Customer `json:"customer"`
}

func NewAddressChangedEvent(c *Customer) AddressChangedEvent {
	return AddressChangedEvent{
		DateTimeOccurred: time.Now(),
		Customer:         c,
	}
}

func (e AddressChangedEvent) EventName() string {
	return AddressChangedEventName
}

func (e AddressChangedEvent) OccurredAt() time.Time {
	return e.DateTimeOccurred
}
