package order

import (
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrLineItemsAreRequired is returned when attempting to create an order without items.
	ErrLineItemsAreRequired = errs.NewValueIsRequiredError("line items")

	// ErrPaymentNotAllowedForCash is returned when attaching a gateway payment to a cash order.
	ErrPaymentNotAllowedForCash = errors.New("cash orders cannot have a gateway payment")

	// ErrPaymentAlreadyAttached is returned when an order already carries a payment record.
	ErrPaymentAlreadyAttached = errors.New("order already has a payment attached")
)

// Order represents a customer's grocery order placed against a business.
// It is the aggregate root that manages the order lifecycle from checkout
// through rider assignment to delivery.
//
// Order follows these invariants:
//   - Must have valid customer and business references and a delivery address snapshot
//   - Must contain at least one line item; the total equals the sum of
//     line item subtotals using prices captured at order time
//   - Status transitions follow the defined transition table
//   - A rider may only be present in statuses that allow one
//   - A gateway payment is attached iff the payment method is not cash
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	id         kernel.UUID
	customerID kernel.UUID
	businessID kernel.UUID

	address Address
	items   []LineItem
	total   kernel.Money

	status  Status
	riderID *kernel.UUID

	method  Method
	payment *Payment

	// version supports optimistic concurrency control in persistence.
	version int

	isConstructed bool
}

// NewOrder creates a new Order in Pending status.
// The total is computed from the line item price snapshots; live catalog
// prices are never consulted.
//
// Example:
//
//	item, _ := order.NewLineItem(productID, "Whole milk 1L", price, 2)
//	o, err := order.NewOrder(orderID, customerID, businessID, address,
//	    []order.LineItem{item}, order.Cash)
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	businessID kernel.UUID,
	address Address,
	items []LineItem,
	method Method,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		customerID.Validate(),
		businessID.Validate(),
		address.Validate(),
		method.Validate(),
	); err != nil {
		return nil, err
	}

	if len(items) == 0 {
		return nil, ErrLineItemsAreRequired
	}

	total := kernel.ZeroMoney()
	for _, item := range items {
		subtotal, err := item.Subtotal()
		if err != nil {
			return nil, err
		}
		total, err = total.Add(subtotal)
		if err != nil {
			return nil, err
		}
	}

	copied := make([]LineItem, len(items))
	copy(copied, items)

	return &Order{
		id:            id,
		customerID:    customerID,
		businessID:    businessID,
		address:       address,
		items:         copied,
		total:         total,
		status:        Pending,
		method:        method,
		version:       1,
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
// The stored total is trusted as the price snapshot of record; status and
// rider consistency are re-validated.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	businessID kernel.UUID,
	address Address,
	items []LineItem,
	total kernel.Money,
	status Status,
	riderID *kernel.UUID,
	method Method,
	payment *Payment,
	version int,
) (*Order, error) {
	o, err := NewOrder(id, customerID, businessID, address, items, method)
	if err != nil {
		return nil, err
	}

	if err = errors.Join(
		total.Validate(),
		status.Validate(),
		status.ValidateCanHaveRider(riderID != nil),
	); err != nil {
		return nil, err
	}
	if riderID != nil {
		if err = riderID.Validate(); err != nil {
			return nil, err
		}
	}
	if payment != nil {
		if err = payment.Validate(); err != nil {
			return nil, err
		}
	}
	if version < 1 {
		return nil, errs.NewVersionIsInvalidErrorWithCause("order version")
	}

	o.total = total
	o.status = status
	o.riderID = riderID
	o.payment = payment
	o.version = version
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// CustomerID returns the purchasing user's identifier.
func (o *Order) CustomerID() kernel.UUID { return o.customerID }

// BusinessID returns the fulfilling business's identifier.
func (o *Order) BusinessID() kernel.UUID { return o.businessID }

// Address returns the delivery address snapshot.
func (o *Order) Address() Address { return o.address }

// Items returns a copy of the order's line items.
func (o *Order) Items() []LineItem {
	items := make([]LineItem, len(o.items))
	copy(items, o.items)
	return items
}

// Total returns the order total computed from price snapshots at order time.
func (o *Order) Total() kernel.Money { return o.total }

// Status returns the current status of the order.
func (o *Order) Status() Status { return o.status }

// Rider returns the assigned rider's ID. Nil if no rider is assigned.
func (o *Order) Rider() *kernel.UUID { return o.riderID }

// Method returns the payment method chosen at checkout.
func (o *Order) Method() Method { return o.method }

// Payment returns the attached gateway payment record.
// Nil for cash orders or before the intent is created.
func (o *Order) Payment() *Payment { return o.payment }

// Version returns the aggregate version used for optimistic concurrency.
func (o *Order) Version() int { return o.version }

// AttachPayment links the gateway payment record to the order.
//
// Business rules:
//   - Only non-cash orders carry a payment record
//   - At most one payment record per order
func (o *Order) AttachPayment(payment Payment) error {
	if err := payment.Validate(); err != nil {
		return err
	}
	if o.method == Cash {
		return ErrPaymentNotAllowedForCash
	}
	if o.payment != nil {
		return ErrPaymentAlreadyAttached
	}

	o.payment = &payment
	return nil
}

// AssignRider assigns the order to a rider and updates the status to Assigned.
//
// Business rules:
//   - The rider ID must be valid
//   - The order must be in Pending or Assigned status
//   - Reassignment is allowed (from Assigned to Assigned)
func (o *Order) AssignRider(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.riderID = &riderID
	return nil
}

// StartTransit marks the order as picked up by the assigned rider.
func (o *Order) StartTransit() error {
	newStatus, err := o.status.StartTransit()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Deliver marks the order as delivered to the customer.
// Delivered is a final state with no further transitions.
func (o *Order) Deliver() error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel cancels the order. Only Pending or Assigned orders can be cancelled.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// TransitionTo moves the order to the target status through the transition
// table. Transitions into Assigned require a rider to already be present;
// use AssignRider for the assignment itself.
func (o *Order) TransitionTo(target Status) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	if err = newStatus.ValidateCanHaveRider(o.riderID != nil); err != nil {
		return err
	}

	o.status = newStatus
	return nil
}
