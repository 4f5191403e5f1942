package listeners

import (
	"context"

	"github.com/SeaCloudHub/storefront/domain"
	"github.com/SeaCloudHub/storefront/domain/customer"
	"go.uber.org/zap"
)

type CustomerCreatedLogListener struct {
	logger  *zap.SugaredLogger
	message string
}

func NewCustomerCreatedLogListener(logger *zap.SugaredLogger, message string) *CustomerCreatedLogListener {
	return &CustomerCreatedLogListener{logger: logger, message: message}
}

func (l *CustomerCreatedLogListener) Handle(_ context.Context, event domain.Event) error {
	customerCreatedEvent, ok := event.(customer.CreatedEvent)
	if !ok {
		return nil
	}

	l.logger.Infow(l.message,
		"event", event.EventName(),
		"customer_id", customerCreatedEvent.Customer.ID(),
		"customer_name", customerCreatedEvent.Customer.Name(),
	)

	return nil
}

type AddressChangedLogListener struct {
	logger *zap.SugaredLogger
}

func NewAddressChangedLogListener(logger *zap.SugaredLogger) *AddressChangedLogListener {
	return &AddressChangedLogListener{logger: logger}
}

func (l *AddressChangedLogListener) Handle(_ context.Context, event domain.Event) error {
	addressChangedEvent, ok := event.(customer.AddressChangedEvent)
	if !ok {
		return nil
	}

	c := addressChangedEvent.Customer
	l.logger.Infof("customer address changed: %s, %s changed to: %s", c.ID(), c.Name(), c.Address())

	return nil
}
