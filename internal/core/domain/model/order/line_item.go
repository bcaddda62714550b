package order

import (
	"errors"
	"fmt"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/errs"
	"grocery/internal/pkg/guard"
)

// ErrLineItemIsNotConstructed is returned when using an improperly initialized LineItem.
var ErrLineItemIsNotConstructed = errors.New(
	"LineItem must be created via NewLineItem constructor")

// LineItem is an immutable (product, quantity, price-at-purchase) tuple captured
// when an order is placed. The unit price is a snapshot of the catalog price at
// order time and is never re-read from the live catalog.
type LineItem struct {
	productID kernel.UUID
	name      string
	unitPrice kernel.Money
	quantity  int

	guard guard.ConstructorGuard
}

// NewLineItem creates a validated line item.
// The product reference must be valid, the name non-empty, the unit price
// constructed, and the quantity positive.
func NewLineItem(productID kernel.UUID, name string, unitPrice kernel.Money, quantity int) (LineItem, error) {
	var err error
	if vErr := productID.Validate(); vErr != nil {
		err = errors.Join(err, vErr)
	}
	if name == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("product name"))
	}
	if vErr := unitPrice.Validate(); vErr != nil {
		err = errors.Join(err, vErr)
	}
	if quantity <= 0 {
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity)))
	}
	if err != nil {
		return LineItem{}, err
	}

	return LineItem{
		productID: productID,
		name:      name,
		unitPrice: unitPrice,
		quantity:  quantity,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// ProductID returns the referenced product's identifier.
func (li LineItem) ProductID() kernel.UUID {
	return li.productID
}

// Name returns the product name captured at order time.
func (li LineItem) Name() string {
	return li.name
}

// UnitPrice returns the price snapshot captured at order time.
func (li LineItem) UnitPrice() kernel.Money {
	return li.unitPrice
}

// Quantity returns the ordered quantity.
func (li LineItem) Quantity() int {
	return li.quantity
}

// Subtotal returns unit price multiplied by quantity.
func (li LineItem) Subtotal() (kernel.Money, error) {
	if err := li.Validate(); err != nil {
		return kernel.Money{}, err
	}
	return li.unitPrice.MulQty(li.quantity)
}

// Validate checks if the LineItem was properly constructed.
func (li LineItem) Validate() error {
	return li.guard.Validate(ErrLineItemIsNotConstructed)
}
