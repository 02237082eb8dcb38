// Package http exposes the order engine over a REST surface.
// Handlers translate between wire DTOs and application commands and
// queries; all domain decisions stay behind the handlers.
package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"retail/internal/core/application/usecases/commands"
	"retail/internal/core/application/usecases/queries"
	"retail/internal/core/domain/model/kernel"
	"retail/internal/core/domain/model/order"
	"retail/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler         commands.CreateOrderCommandHandler
	addProductHandler          commands.AddProductCommandHandler
	cancelOrderHandler         commands.CancelOrderCommandHandler
	deleteOrderHandler         commands.DeleteOrderCommandHandler
	linkStaffHandler           commands.LinkStaffCommandHandler
	addCollectionDetailHandler commands.AddCollectionDetailCommandHandler
	addDeliveryDetailHandler   commands.AddDeliveryDetailCommandHandler

	// Query handlers
	getOrderHandler            queries.GetOrderQueryHandler
	getBiggestSellersHandler   queries.GetBiggestSellersQueryHandler
	getStaleCollectionsHandler queries.GetStaleCollectionsQueryHandler
	getStaffSalesHandler       queries.GetStaffSalesQueryHandler

	// Reference resolution for externally held order ids
	uowFactory commands.OrderUoWFactory

	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	addProductHandler commands.AddProductCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	linkStaffHandler commands.LinkStaffCommandHandler,
	addCollectionDetailHandler commands.AddCollectionDetailCommandHandler,
	addDeliveryDetailHandler commands.AddDeliveryDetailCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getBiggestSellersHandler queries.GetBiggestSellersQueryHandler,
	getStaleCollectionsHandler queries.GetStaleCollectionsQueryHandler,
	getStaffSalesHandler queries.GetStaffSalesQueryHandler,
	uowFactory commands.OrderUoWFactory,
	logger *slog.Logger,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		addProductHandler:          addProductHandler,
		cancelOrderHandler:         cancelOrderHandler,
		deleteOrderHandler:         deleteOrderHandler,
		linkStaffHandler:           linkStaffHandler,
		addCollectionDetailHandler: addCollectionDetailHandler,
		addDeliveryDetailHandler:   addDeliveryDetailHandler,
		getOrderHandler:            getOrderHandler,
		getBiggestSellersHandler:   getBiggestSellersHandler,
		getStaleCollectionsHandler: getStaleCollectionsHandler,
		getStaffSalesHandler:       getStaffSalesHandler,
		uowFactory:                 uowFactory,
		logger:                     logger.With("component", "http_server"),
	}
}

// RegisterRoutes attaches every handler to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	e.POST("/api/v1/orders", s.PlaceOrder)
	e.GET("/api/v1/orders/:id", s.GetOrder)
	e.GET("/api/v1/orders/by-reference/:reference", s.GetOrderByReference)
	e.POST("/api/v1/orders/:id/lines", s.AddProduct)
	e.POST("/api/v1/orders/:id/cancel", s.CancelOrder)
	e.DELETE("/api/v1/orders/:id", s.DeleteOrder)
	e.POST("/api/v1/orders/:id/staff", s.LinkStaff)
	e.POST("/api/v1/orders/:id/collection-detail", s.AddCollectionDetail)
	e.POST("/api/v1/orders/:id/delivery-detail", s.AddDeliveryDetail)

	e.GET("/api/v1/reports/biggest-sellers", s.GetBiggestSellers)
	e.GET("/api/v1/reports/stale-collections", s.GetStaleCollections)
	e.GET("/api/v1/reports/staff-sales", s.GetStaffSales)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// PlaceOrder handles POST /api/v1/orders. It runs the whole checkout:
// header creation, one line per requested product, an optional detail and
// an optional staff attribution. If any step after creation fails the
// order is cancelled, so an aborted checkout leaves no stock movement
// behind.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var body PlaceOrderRequest
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	orderType, err := order.TypeFromString(body.OrderType)
	if err != nil {
		return s.badRequest(ctx, "Invalid order type: "+body.OrderType)
	}

	placedAt, err := kernel.ParseDate(body.PlacedAt)
	if err != nil {
		return s.badRequest(ctx, "Invalid placement date: "+body.PlacedAt)
	}

	cmd, err := commands.NewCreateOrderCommand(orderType, placedAt)
	if err != nil {
		return s.badRequest(ctx, "Invalid order data: "+err.Error())
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	for _, line := range body.Lines {
		if lineErr := s.addLine(ctx, created.ID(), line); lineErr != nil {
			s.abandonOrder(ctx, created.ID())
			return s.writeError(ctx, lineErr)
		}
	}

	if body.CollectionDetail != nil {
		if detailErr := s.attachCollectionDetail(ctx, created.ID(), *body.CollectionDetail); detailErr != nil {
			s.abandonOrder(ctx, created.ID())
			return s.writeError(ctx, detailErr)
		}
	}

	if body.DeliveryDetail != nil {
		if detailErr := s.attachDeliveryDetail(ctx, created.ID(), *body.DeliveryDetail); detailErr != nil {
			s.abandonOrder(ctx, created.ID())
			return s.writeError(ctx, detailErr)
		}
	}

	if body.StaffID != nil {
		if staffErr := s.attachStaff(ctx, created.ID(), *body.StaffID); staffErr != nil {
			s.abandonOrder(ctx, created.ID())
			return s.writeError(ctx, staffErr)
		}
	}

	return ctx.JSON(http.StatusCreated, PlaceOrderResponse{
		ID:        created.ID(),
		Reference: created.Reference().String(),
		Completed: created.Completed(),
	})
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := orderIDParam(ctx)
	if err != nil {
		return s.badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(response))
}

// GetOrderByReference handles GET /api/v1/orders/by-reference/:reference.
// External callers hold the order reference, not the internal id; the
// reference resolves to the header first and the full read model follows.
func (s *Server) GetOrderByReference(ctx echo.Context) error {
	reference, err := kernel.ReferenceFromString(ctx.Param("reference"))
	if err != nil {
		return s.badRequest(ctx, "Invalid order reference")
	}

	header, err := s.uowFactory.Create().OrderRepository().
		GetByReference(ctx.Request().Context(), reference)
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(header.ID())
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(response))
}

// AddProduct handles POST /api/v1/orders/:id/lines.
func (s *Server) AddProduct(ctx echo.Context) error {
	id, err := orderIDParam(ctx)
	if err != nil {
		return s.badRequest(ctx, "Invalid order id")
	}

	var body OrderLineRequest
	if err = ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAddProductCommand(id, body.ProductID, body.Quantity)
	if err != nil {
		return s.badRequest(ctx, "Invalid line data: "+err.Error())
	}

	snapshot, err := s.addProductHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, ProductResponse{
		ID:          snapshot.ID(),
		Description: snapshot.Description(),
		Price:       snapshot.Price(),
		Stock:       snapshot.Stock(),
	})
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	id, err := orderIDParam(ctx)
	if err != nil {
		return s.badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewCancelOrderCommand(id)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteOrder handles DELETE /api/v1/orders/:id. Stock is not restored.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	id, err := orderIDParam(ctx)
	if err != nil {
		return s.badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// LinkStaff handles POST /api/v1/orders/:id/staff.
func (s *Server) LinkStaff(ctx echo.Context) error {
	id, err := orderIDParam(ctx)
	if err != nil {
		return s.badRequest(ctx, "Invalid order id")
	}

	var body LinkStaffRequest
	if err = ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	if err = s.attachStaff(ctx, id, body.StaffID); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// AddCollectionDetail handles POST /api/v1/orders/:id/collection-detail.
func (s *Server) AddCollectionDetail(ctx echo.Context) error {
	id, err := orderIDParam(ctx)
	if err != nil {
		return s.badRequest(ctx, "Invalid order id")
	}

	var body CollectionDetailRequest
	if err = ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	if err = s.attachCollectionDetail(ctx, id, body); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// AddDeliveryDetail handles POST /api/v1/orders/:id/delivery-detail.
func (s *Server) AddDeliveryDetail(ctx echo.Context) error {
	id, err := orderIDParam(ctx)
	if err != nil {
		return s.badRequest(ctx, "Invalid order id")
	}

	var body DeliveryDetailRequest
	if err = ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	if err = s.attachDeliveryDetail(ctx, id, body); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetBiggestSellers handles GET /api/v1/reports/biggest-sellers.
func (s *Server) GetBiggestSellers(ctx echo.Context) error {
	limit := 10
	if raw := ctx.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return s.badRequest(ctx, "Invalid limit")
		}
		limit = parsed
	}

	query, err := queries.NewGetBiggestSellersQuery(limit)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	sellers, err := s.getBiggestSellersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]BiggestSellerResponse, len(sellers))
	for i, seller := range sellers {
		response[i] = BiggestSellerResponse{
			ProductID:   seller.ProductID,
			Description: seller.Description,
			TotalSold:   seller.TotalSold,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetStaleCollections handles GET /api/v1/reports/stale-collections.
func (s *Server) GetStaleCollections(ctx echo.Context) error {
	olderThanDays := 7
	if raw := ctx.QueryParam("olderThanDays"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return s.badRequest(ctx, "Invalid olderThanDays")
		}
		olderThanDays = parsed
	}

	query, err := queries.NewGetStaleCollectionsQuery(olderThanDays)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	stale, err := s.getStaleCollectionsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]StaleCollectionResponse, len(stale))
	for i, candidate := range stale {
		response[i] = StaleCollectionResponse{
			OrderID:   candidate.OrderID,
			CollectOn: candidate.CollectOn.String(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetStaffSales handles GET /api/v1/reports/staff-sales.
func (s *Server) GetStaffSales(ctx echo.Context) error {
	sales, err := s.getStaffSalesHandler.Handle(ctx.Request().Context(), queries.NewGetStaffSalesQuery())
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]StaffSalesResponse, len(sales))
	for i, sale := range sales {
		response[i] = StaffSalesResponse{
			StaffID:    sale.StaffID,
			FirstName:  sale.FirstName,
			LastName:   sale.LastName,
			OrdersSold: sale.OrdersSold,
			TotalValue: sale.TotalValue,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) addLine(ctx echo.Context, orderID int64, line OrderLineRequest) error {
	cmd, err := commands.NewAddProductCommand(orderID, line.ProductID, line.Quantity)
	if err != nil {
		return err
	}

	_, err = s.addProductHandler.Handle(ctx.Request().Context(), cmd)
	return err
}

func (s *Server) attachStaff(ctx echo.Context, orderID, staffID int64) error {
	cmd, err := commands.NewLinkStaffCommand(staffID, orderID)
	if err != nil {
		return err
	}

	return s.linkStaffHandler.Handle(ctx.Request().Context(), cmd)
}

func (s *Server) attachCollectionDetail(ctx echo.Context, orderID int64, body CollectionDetailRequest) error {
	date, err := kernel.ParseDate(body.Date)
	if err != nil {
		return err
	}

	detail, err := order.NewCollectionDetail(body.FirstName, body.LastName, date)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAddCollectionDetailCommand(orderID, detail)
	if err != nil {
		return err
	}

	return s.addCollectionDetailHandler.Handle(ctx.Request().Context(), cmd)
}

func (s *Server) attachDeliveryDetail(ctx echo.Context, orderID int64, body DeliveryDetailRequest) error {
	date, err := kernel.ParseDate(body.Date)
	if err != nil {
		return err
	}

	detail, err := order.NewDeliveryDetail(
		body.FirstName, body.LastName, body.House, body.Street, body.City, date)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAddDeliveryDetailCommand(orderID, detail)
	if err != nil {
		return err
	}

	return s.addDeliveryDetailHandler.Handle(ctx.Request().Context(), cmd)
}

// abandonOrder cancels a partially placed order so an aborted checkout
// leaves no stock movement behind. Cancellation failures are logged; the
// stale collections sweep will not pick these up, so they surface for
// manual review.
func (s *Server) abandonOrder(ctx echo.Context, orderID int64) {
	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		s.logger.ErrorContext(ctx.Request().Context(),
			"Abandon after failed placement rejected", "orderId", orderID, "error", err)
		return
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		s.logger.ErrorContext(ctx.Request().Context(),
			"Abandon after failed placement failed", "orderId", orderID, "error", err)
	}
}

func orderIDParam(ctx echo.Context) (int64, error) {
	return strconv.ParseInt(ctx.Param("id"), 10, 64)
}

func (s *Server) badRequest(ctx echo.Context, message string) error {
	s.logger.WarnContext(ctx.Request().Context(), "Request rejected",
		"path", ctx.Path(), "reason", message)

	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// writeError maps application errors onto HTTP statuses. Recoverable
// causes (validation, not found, duplicate, state violation) log as
// warnings; anything else is a persistence failure and logs as an error.
func (s *Server) writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrObjectAlreadyExists), errors.Is(err, errs.ErrStateViolation):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		status = http.StatusBadRequest
	}

	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "Request failed",
			"path", ctx.Path(), "error", err)
	} else {
		s.logger.WarnContext(ctx.Request().Context(), "Request rejected",
			"path", ctx.Path(), "error", err)
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: err.Error(),
	})
}

func toOrderResponse(response queries.GetOrderQueryResponse) OrderResponse {
	lines := make([]OrderLineResponse, len(response.Lines))
	for i, line := range response.Lines {
		lines[i] = OrderLineResponse{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		}
	}

	return OrderResponse{
		ID:        response.ID,
		Reference: response.Reference.String(),
		OrderType: response.OrderType,
		Completed: response.Completed,
		PlacedAt:  response.PlacedAt.String(),
		Lines:     lines,
	}
}
