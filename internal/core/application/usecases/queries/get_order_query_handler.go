package queries

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"

	"retail/internal/core/domain/model/kernel"
	"retail/internal/core/domain/model/order"
	"retail/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads one order and its lines from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order reads.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the two-phase read: the header row first, then the line
// rows ordered by product id. Returns ObjectNotFoundError when no header
// exists.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var (
		id        int64
		rawRef    uuid.UUID
		orderType int
		completed bool
		placedAt  time.Time
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			reference,
			order_type,
			completed,
			placed_at
		FROM orders
		WHERE id = ?
	`, query.OrderID()).Row()

	if err := row.Scan(&id, &rawRef, &orderType, &completed, &placedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderQueryResponse{},
				errs.NewObjectNotFoundError("order", strconv.FormatInt(query.OrderID(), 10))
		}
		return GetOrderQueryResponse{}, err
	}

	reference, err := kernel.ReferenceFromUUID(rawRef)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	response := GetOrderQueryResponse{
		ID:        id,
		Reference: reference,
		OrderType: order.Type(orderType).String(),
		Completed: completed,
		PlacedAt:  kernel.DateOf(placedAt),
		Lines:     make([]OrderLineResponse, 0),
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			quantity
		FROM order_lines
		WHERE order_id = ?
		ORDER BY product_id
	`, query.OrderID()).Rows()
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var line OrderLineResponse
		if err = rows.Scan(&line.ProductID, &line.Quantity); err != nil {
			return GetOrderQueryResponse{}, err
		}
		response.Lines = append(response.Lines, line)
	}

	if err = rows.Err(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	return response, nil
}
