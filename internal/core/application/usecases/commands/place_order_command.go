package commands

import (
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/pkg/errs"
	"grocery/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand represents a customer checking out a cart against a
// business. Line items carry price snapshots captured at checkout; the
// idempotency key guards against duplicate submissions of the same checkout.
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	customerID     kernel.UUID
	businessID     kernel.UUID
	address        order.Address
	items          []order.LineItem
	method         order.Method
	idempotencyKey string

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place an order.
// An idempotency key is required so retried requests cannot double-order.
func NewPlaceOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	businessID kernel.UUID,
	address order.Address,
	items []order.LineItem,
	method order.Method,
	idempotencyKey string,
) (PlaceOrderCommand, error) {
	var err error
	if vErr := errors.Join(
		orderID.Validate(),
		customerID.Validate(),
		businessID.Validate(),
		address.Validate(),
		method.Validate(),
	); vErr != nil {
		err = errors.Join(err, vErr)
	}
	if len(items) == 0 {
		err = errors.Join(err, order.ErrLineItemsAreRequired)
	}
	for _, item := range items {
		if vErr := item.Validate(); vErr != nil {
			err = errors.Join(err, vErr)
		}
	}
	if idempotencyKey == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("idempotency key"))
	}
	if err != nil {
		return PlaceOrderCommand{}, err
	}

	copied := make([]order.LineItem, len(items))
	copy(copied, items)

	return PlaceOrderCommand{
		orderID:        orderID,
		customerID:     customerID,
		businessID:     businessID,
		address:        address,
		items:          copied,
		method:         method,
		idempotencyKey: idempotencyKey,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the identifier assigned to the new order.
func (c PlaceOrderCommand) OrderID() kernel.UUID { return c.orderID }

// CustomerID returns the purchasing user's identifier.
func (c PlaceOrderCommand) CustomerID() kernel.UUID { return c.customerID }

// BusinessID returns the fulfilling business's identifier.
func (c PlaceOrderCommand) BusinessID() kernel.UUID { return c.businessID }

// Address returns the delivery address snapshot.
func (c PlaceOrderCommand) Address() order.Address { return c.address }

// Items returns a copy of the checkout line items.
func (c PlaceOrderCommand) Items() []order.LineItem {
	items := make([]order.LineItem, len(c.items))
	copy(items, c.items)
	return items
}

// Method returns the chosen payment method.
func (c PlaceOrderCommand) Method() order.Method { return c.method }

// IdempotencyKey returns the client-supplied deduplication key.
func (c PlaceOrderCommand) IdempotencyKey() string { return c.idempotencyKey }
