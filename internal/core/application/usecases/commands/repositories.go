// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"
	"errors"

	"retail/internal/core/ports"
)

// Shared field validation errors used by command constructors.
var (
	ErrOrderIDIsInvalid   = errors.New("order id must be greater than 0")
	ErrProductIDIsInvalid = errors.New("product id must be greater than 0")
	ErrStaffIDIsInvalid   = errors.New("staff id must be greater than 0")
	ErrQuantityIsInvalid  = errors.New("quantity must be greater than 0")
)

// Unit of Work interfaces provide transaction management for command
// handlers. Each handler depends only on the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ProductRepoFactory provides access to product persistence within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// OrderRepoFactory provides access to order header persistence within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// OrderLineRepoFactory provides access to order line persistence within a transaction.
	OrderLineRepoFactory interface {
		OrderLineRepository() ports.OrderLineRepository
	}

	// StaffRepoFactory provides access to staff attribution persistence within a transaction.
	StaffRepoFactory interface {
		StaffRepository() ports.StaffRepository
	}

	// DetailRepoFactory provides access to order detail persistence within a transaction.
	DetailRepoFactory interface {
		DetailRepository() ports.DetailRepository
	}

	// OrderUoW manages transactions for header-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// StockUoW manages transactions that pair order line changes with
	// stock movements. Both writes commit or roll back together.
	StockUoW interface {
		TxManager
		OrderRepoFactory
		OrderLineRepoFactory
		ProductRepoFactory
	}

	// StockUoWFactory creates new stock unit of work instances.
	StockUoWFactory interface {
		Create() StockUoW
	}

	// StaffUoW manages transactions for staff attribution.
	StaffUoW interface {
		TxManager
		OrderRepoFactory
		StaffRepoFactory
	}

	// StaffUoWFactory creates new staff unit of work instances.
	StaffUoWFactory interface {
		Create() StaffUoW
	}

	// DetailUoW manages transactions for collection and delivery details.
	DetailUoW interface {
		TxManager
		OrderRepoFactory
		DetailRepoFactory
	}

	// DetailUoWFactory creates new detail unit of work instances.
	DetailUoWFactory interface {
		Create() DetailUoW
	}
)
