// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"grocery/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ApplicationRepoFactory provides access to the application repository within a transaction.
	ApplicationRepoFactory interface {
		ApplicationRepository() ports.ApplicationRepository
	}

	// BusinessRepoFactory provides access to the business repository within a transaction.
	BusinessRepoFactory interface {
		BusinessRepository() ports.BusinessRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// PaymentMethodRepoFactory provides access to the payment method repository within a transaction.
	PaymentMethodRepoFactory interface {
		PaymentMethodRepository() ports.PaymentMethodRepository
	}

	// OutboxRepoFactory provides access to the notification outbox within a transaction.
	OutboxRepoFactory interface {
		OutboxRepository() ports.OutboxRepository
	}

	// ApplicationUoW manages transactions for application-only operations.
	// Used by submission and resubmission, which touch no other aggregate.
	ApplicationUoW interface {
		TxManager
		ApplicationRepoFactory
	}

	// ApplicationUoWFactory creates new application unit of work instances.
	ApplicationUoWFactory interface {
		Create() ApplicationUoW
	}

	// ReviewUoW manages transactions for the administrator review operations.
	// Approval spans the application, the created business and the outbox.
	ReviewUoW interface {
		TxManager
		ApplicationRepoFactory
		BusinessRepoFactory
		OutboxRepoFactory
	}

	// ReviewUoWFactory creates new review unit of work instances.
	ReviewUoWFactory interface {
		Create() ReviewUoW
	}

	// OrderUoW manages transactions for order operations.
	// Order writes and their notification messages commit together.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		OutboxRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// OutboxUoW provides outbox access for the relay pass.
	// The relay reads and stamps messages outside any transaction; a crash
	// between publish and stamp only causes a duplicate delivery.
	OutboxUoW interface {
		TxManager
		OutboxRepoFactory
	}

	// OutboxUoWFactory creates new outbox unit of work instances.
	OutboxUoWFactory interface {
		Create() OutboxUoW
	}

	// PaymentMethodUoW manages transactions for saved payment method operations.
	PaymentMethodUoW interface {
		TxManager
		PaymentMethodRepoFactory
	}

	// PaymentMethodUoWFactory creates new payment method unit of work instances.
	PaymentMethodUoWFactory interface {
		Create() PaymentMethodUoW
	}
)
