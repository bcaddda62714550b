// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. Orders span two tables: the order row itself and its
// line items, which are written once at checkout and never updated.
package orderrepo

import (
	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID `gorm:"type:uuid;index"`
	BusinessID uuid.UUID `gorm:"type:uuid;index"`

	Street string
	City   string
	Notes  string

	TotalCents int64

	Status  string     `gorm:"type:varchar(16);index"`
	RiderID *uuid.UUID `gorm:"type:uuid;index"`

	Method string `gorm:"type:varchar(8)"`

	PaymentID       *uuid.UUID `gorm:"type:uuid"`
	PaymentIntentID string
	PaymentStatus   string `gorm:"type:varchar(16)"`

	Version int

	Items []LineItemDTO `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO represents one order line with its price snapshot.
type LineItemDTO struct {
	ID             int64     `gorm:"primaryKey;autoIncrement"`
	OrderID        uuid.UUID `gorm:"type:uuid;index"`
	ProductID      uuid.UUID `gorm:"type:uuid"`
	Name           string
	UnitPriceCents int64
	Quantity       int
}

// TableName specifies the database table name for order line items.
func (LineItemDTO) TableName() string {
	return "order_line_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:         o.ID().Bytes(),
		CustomerID: o.CustomerID().Bytes(),
		BusinessID: o.BusinessID().Bytes(),
		Street:     o.Address().Street(),
		City:       o.Address().City(),
		Notes:      o.Address().Notes(),
		TotalCents: o.Total().Cents(),
		Status:     o.Status().String(),
		Method:     o.Method().String(),
		Version:    o.Version(),
	}

	if rider := o.Rider(); rider != nil {
		raw := rider.Bytes()
		dto.RiderID = &raw
	}
	if payment := o.Payment(); payment != nil {
		raw := payment.ID().Bytes()
		dto.PaymentID = &raw
		dto.PaymentIntentID = payment.IntentID()
		dto.PaymentStatus = payment.Status().String()
	}

	for _, item := range o.Items() {
		dto.Items = append(dto.Items, LineItemDTO{
			OrderID:        o.ID().Bytes(),
			ProductID:      item.ProductID().Bytes(),
			Name:           item.Name(),
			UnitPriceCents: item.UnitPrice().Cents(),
			Quantity:       item.Quantity(),
		})
	}

	return dto
}

// toDomain converts a database DTO to an order domain aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	businessID, err := kernel.UUIDFromBytes(dto.BusinessID[:])
	if err != nil {
		return nil, err
	}

	address, err := order.NewAddress(dto.Street, dto.City, dto.Notes)
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := toLineItem(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	total, err := kernel.NewMoney(dto.TotalCents)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var riderID *kernel.UUID
	if dto.RiderID != nil {
		rID, riderErr := kernel.UUIDFromBytes((*dto.RiderID)[:])
		if riderErr != nil {
			return nil, riderErr
		}
		riderID = &rID
	}

	method, err := order.MethodFromString(dto.Method)
	if err != nil {
		return nil, err
	}

	var payment *order.Payment
	if dto.PaymentID != nil {
		pID, payErr := kernel.UUIDFromBytes((*dto.PaymentID)[:])
		if payErr != nil {
			return nil, payErr
		}
		paymentStatus := order.PaymentPending
		if dto.PaymentStatus == order.PaymentConfirmed.String() {
			paymentStatus = order.PaymentConfirmed
		}
		p, payErr := order.RestorePayment(pID, dto.PaymentIntentID, paymentStatus)
		if payErr != nil {
			return nil, payErr
		}
		payment = &p
	}

	return order.RestoreOrder(id, customerID, businessID, address, items,
		total, status, riderID, method, payment, dto.Version)
}

func toLineItem(dto LineItemDTO) (order.LineItem, error) {
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return order.LineItem{}, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPriceCents)
	if err != nil {
		return order.LineItem{}, err
	}

	return order.NewLineItem(productID, dto.Name, unitPrice, dto.Quantity)
}
