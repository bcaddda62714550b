// Package http exposes the REST API. Handlers translate requests into
// commands and queries and map domain errors onto HTTP status codes.
package http

import (
	"errors"
	"net/http"
	"time"

	"grocery/internal/core/application/usecases/commands"
	"grocery/internal/core/application/usecases/queries"
	"grocery/internal/core/domain/model/businessapp"
	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/core/domain/model/paymentmethod"
	"grocery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	submitApplicationHandler commands.SubmitApplicationCommandHandler
	approveHandler           commands.ApproveApplicationCommandHandler
	rejectHandler            commands.RejectApplicationCommandHandler
	resubmitHandler          commands.ResubmitApplicationCommandHandler
	placeOrderHandler        commands.PlaceOrderCommandHandler
	assignRiderHandler       commands.AssignRiderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	addPaymentMethodHandler  commands.AddPaymentMethodCommandHandler
	setDefaultMethodHandler  commands.SetDefaultPaymentMethodCommandHandler

	// Query handlers
	getApplicationHandler       queries.GetApplicationQueryHandler
	getApplicationsByStatus     queries.GetApplicationsByStatusQueryHandler
	getActiveOrdersQueryHandler queries.GetActiveOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	submitApplicationHandler commands.SubmitApplicationCommandHandler,
	approveHandler commands.ApproveApplicationCommandHandler,
	rejectHandler commands.RejectApplicationCommandHandler,
	resubmitHandler commands.ResubmitApplicationCommandHandler,
	placeOrderHandler commands.PlaceOrderCommandHandler,
	assignRiderHandler commands.AssignRiderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	addPaymentMethodHandler commands.AddPaymentMethodCommandHandler,
	setDefaultMethodHandler commands.SetDefaultPaymentMethodCommandHandler,
	getApplicationHandler queries.GetApplicationQueryHandler,
	getApplicationsByStatus queries.GetApplicationsByStatusQueryHandler,
	getActiveOrdersQueryHandler queries.GetActiveOrdersQueryHandler,
) *Server {
	return &Server{
		submitApplicationHandler:    submitApplicationHandler,
		approveHandler:              approveHandler,
		rejectHandler:               rejectHandler,
		resubmitHandler:             resubmitHandler,
		placeOrderHandler:           placeOrderHandler,
		assignRiderHandler:          assignRiderHandler,
		updateOrderStatusHandler:    updateOrderStatusHandler,
		addPaymentMethodHandler:     addPaymentMethodHandler,
		setDefaultMethodHandler:     setDefaultMethodHandler,
		getApplicationHandler:       getApplicationHandler,
		getApplicationsByStatus:     getApplicationsByStatus,
		getActiveOrdersQueryHandler: getActiveOrdersQueryHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")

	v1.POST("/applications", s.SubmitApplication)
	v1.GET("/applications", s.GetApplicationsByStatus)
	v1.GET("/applications/:id", s.GetApplication)
	v1.POST("/applications/:id/approve", s.ApproveApplication)
	v1.POST("/applications/:id/reject", s.RejectApplication)
	v1.POST("/applications/:id/resubmit", s.ResubmitApplication)

	v1.POST("/orders", s.PlaceOrder)
	v1.GET("/orders/active", s.GetActiveOrders)
	v1.POST("/orders/:id/assign", s.AssignRider)
	v1.POST("/orders/:id/status", s.UpdateOrderStatus)

	v1.POST("/payment-methods", s.AddPaymentMethod)
	v1.POST("/payment-methods/:id/default", s.SetDefaultPaymentMethod)
}

// Health reports process liveness.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// ErrorResponse is the uniform error body returned by all endpoints.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// IDResponse returns the identifier of a newly created resource.
type IDResponse struct {
	ID string `json:"id"`
}

// writeError maps command and query errors onto HTTP status codes.
// Not-found maps to 404, state conflicts and lost version races to 409,
// violated business rules to 422; anything unrecognized is a 500.
func writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrStateIsInvalid),
		errors.Is(err, errs.ErrVersionIsInvalid),
		errors.Is(err, commands.ErrDuplicateOrderRequest):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, commands.ErrUserIsNotRider),
		errors.Is(err, commands.ErrPaymentMethodOwnerMismatch),
		errors.Is(err, order.ErrPaymentNotAllowedForCash),
		errors.Is(err, order.ErrPaymentAlreadyAttached):
		status = http.StatusUnprocessableEntity
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// DocumentsRequest carries the uploaded document references of a submission.
type DocumentsRequest struct {
	License           string   `json:"license"`
	TaxCertificate    string   `json:"tax_certificate"`
	OwnerID           string   `json:"owner_id"`
	AddressProof      string   `json:"address_proof"`
	HealthCertificate string   `json:"health_certificate,omitempty"`
	StorefrontPhotos  []string `json:"storefront_photos"`
}

// SubmitApplicationRequest is the body of POST /api/v1/applications.
type SubmitApplicationRequest struct {
	ApplicantID string           `json:"applicant_id"`
	Name        string           `json:"name"`
	Email       string           `json:"email"`
	Phone       string           `json:"phone"`
	Address     string           `json:"address"`
	Logo        string           `json:"logo,omitempty"`
	Documents   DocumentsRequest `json:"documents"`
}

// SubmitApplication handles POST /api/v1/applications.
func (s *Server) SubmitApplication(ctx echo.Context) error {
	var req SubmitApplicationRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	applicantID, err := kernel.UUIDFromString(req.ApplicantID)
	if err != nil {
		return badRequest(ctx, "Invalid applicant ID")
	}

	info, err := businessapp.NewBusinessInfo(req.Name, req.Email, req.Phone, req.Address, req.Logo)
	if err != nil {
		return writeError(ctx, err)
	}

	docs, err := businessapp.NewDocuments(
		req.Documents.License,
		req.Documents.TaxCertificate,
		req.Documents.OwnerID,
		req.Documents.AddressProof,
		req.Documents.HealthCertificate,
		req.Documents.StorefrontPhotos,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	applicationID := kernel.NewUUID()
	cmd, err := commands.NewSubmitApplicationCommand(applicationID, applicantID, info, docs)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.submitApplicationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: applicationID.String()})
}

// ApplicationResponse is the read model returned for one application.
type ApplicationResponse struct {
	ID              string     `json:"id"`
	ApplicantID     string     `json:"applicant_id"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	Phone           string     `json:"phone"`
	Address         string     `json:"address"`
	Status          string     `json:"status"`
	RejectionReason string     `json:"rejection_reason,omitempty"`
	AdminNotes      string     `json:"admin_notes,omitempty"`
	SubmittedAt     time.Time  `json:"submitted_at"`
	ReviewedAt      *time.Time `json:"reviewed_at,omitempty"`
	ReviewerID      string     `json:"reviewer_id,omitempty"`
	BusinessID      string     `json:"business_id,omitempty"`
}

// GetApplication handles GET /api/v1/applications/:id.
func (s *Server) GetApplication(ctx echo.Context) error {
	applicationID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid application ID")
	}

	query, err := queries.NewGetApplicationQuery(applicationID)
	if err != nil {
		return writeError(ctx, err)
	}

	app, err := s.getApplicationHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	resp := ApplicationResponse{
		ID:              app.ID.String(),
		ApplicantID:     app.ApplicantID.String(),
		Name:            app.Name,
		Email:           app.Email,
		Phone:           app.Phone,
		Address:         app.Address,
		Status:          app.Status,
		RejectionReason: app.RejectionReason,
		AdminNotes:      app.AdminNotes,
		SubmittedAt:     app.SubmittedAt,
		ReviewedAt:      app.ReviewedAt,
	}
	if app.ReviewerID != nil {
		resp.ReviewerID = app.ReviewerID.String()
	}
	if app.BusinessID != nil {
		resp.BusinessID = app.BusinessID.String()
	}

	return ctx.JSON(http.StatusOK, resp)
}

// ApplicationSummaryResponse is one row of the review queue listing.
type ApplicationSummaryResponse struct {
	ID          string    `json:"id"`
	ApplicantID string    `json:"applicant_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// GetApplicationsByStatus handles GET /api/v1/applications?status=Pending.
func (s *Server) GetApplicationsByStatus(ctx echo.Context) error {
	status, err := businessapp.StatusFromString(ctx.QueryParam("status"))
	if err != nil {
		return badRequest(ctx, "Invalid status filter")
	}

	query, err := queries.NewGetApplicationsByStatusQuery(status)
	if err != nil {
		return writeError(ctx, err)
	}

	apps, err := s.getApplicationsByStatus.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]ApplicationSummaryResponse, len(apps))
	for i, app := range apps {
		response[i] = ApplicationSummaryResponse{
			ID:          app.ID.String(),
			ApplicantID: app.ApplicantID.String(),
			Name:        app.Name,
			Email:       app.Email,
			SubmittedAt: app.SubmittedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ReviewRequest is the body of the approve and reject endpoints.
// Reason is required only for rejection.
type ReviewRequest struct {
	ReviewerID string `json:"reviewer_id"`
	Reason     string `json:"reason,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

// ApproveApplication handles POST /api/v1/applications/:id/approve.
func (s *Server) ApproveApplication(ctx echo.Context) error {
	applicationID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid application ID")
	}

	var req ReviewRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	reviewerID, err := kernel.UUIDFromString(req.ReviewerID)
	if err != nil {
		return badRequest(ctx, "Invalid reviewer ID")
	}

	cmd, err := commands.NewApproveApplicationCommand(applicationID, reviewerID, req.Notes)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.approveHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// RejectApplication handles POST /api/v1/applications/:id/reject.
func (s *Server) RejectApplication(ctx echo.Context) error {
	applicationID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid application ID")
	}

	var req ReviewRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	reviewerID, err := kernel.UUIDFromString(req.ReviewerID)
	if err != nil {
		return badRequest(ctx, "Invalid reviewer ID")
	}

	cmd, err := commands.NewRejectApplicationCommand(applicationID, reviewerID, req.Reason, req.Notes)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.rejectHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// ResubmitApplicationRequest is the body of POST /api/v1/applications/:id/resubmit.
type ResubmitApplicationRequest struct {
	Name      string           `json:"name"`
	Email     string           `json:"email"`
	Phone     string           `json:"phone"`
	Address   string           `json:"address"`
	Logo      string           `json:"logo,omitempty"`
	Documents DocumentsRequest `json:"documents"`
}

// ResubmitApplication handles POST /api/v1/applications/:id/resubmit.
func (s *Server) ResubmitApplication(ctx echo.Context) error {
	applicationID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid application ID")
	}

	var req ResubmitApplicationRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	info, err := businessapp.NewBusinessInfo(req.Name, req.Email, req.Phone, req.Address, req.Logo)
	if err != nil {
		return writeError(ctx, err)
	}

	docs, err := businessapp.NewDocuments(
		req.Documents.License,
		req.Documents.TaxCertificate,
		req.Documents.OwnerID,
		req.Documents.AddressProof,
		req.Documents.HealthCertificate,
		req.Documents.StorefrontPhotos,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewResubmitApplicationCommand(applicationID, info, docs)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.resubmitHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// LineItemRequest is one cart line with its price snapshot in cents.
type LineItemRequest struct {
	ProductID      string `json:"product_id"`
	Name           string `json:"name"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	Quantity       int    `json:"quantity"`
}

// AddressRequest is the delivery address captured at checkout.
type AddressRequest struct {
	Street string `json:"street"`
	City   string `json:"city"`
	Notes  string `json:"notes,omitempty"`
}

// PlaceOrderRequest is the body of POST /api/v1/orders.
// The Idempotency-Key header is required alongside it.
type PlaceOrderRequest struct {
	CustomerID string            `json:"customer_id"`
	BusinessID string            `json:"business_id"`
	Address    AddressRequest    `json:"address"`
	Items      []LineItemRequest `json:"items"`
	Method     string            `json:"method"`
}

// PlaceOrder handles POST /api/v1/orders.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var req PlaceOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	idempotencyKey := ctx.Request().Header.Get("Idempotency-Key")
	if idempotencyKey == "" {
		return badRequest(ctx, "Idempotency-Key header is required")
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer ID")
	}
	businessID, err := kernel.UUIDFromString(req.BusinessID)
	if err != nil {
		return badRequest(ctx, "Invalid business ID")
	}

	address, err := order.NewAddress(req.Address.Street, req.Address.City, req.Address.Notes)
	if err != nil {
		return writeError(ctx, err)
	}

	method, err := order.MethodFromString(req.Method)
	if err != nil {
		return writeError(ctx, err)
	}

	items := make([]order.LineItem, 0, len(req.Items))
	for _, itemReq := range req.Items {
		productID, itemErr := kernel.UUIDFromString(itemReq.ProductID)
		if itemErr != nil {
			return badRequest(ctx, "Invalid product ID")
		}
		unitPrice, itemErr := kernel.NewMoney(itemReq.UnitPriceCents)
		if itemErr != nil {
			return writeError(ctx, itemErr)
		}
		item, itemErr := order.NewLineItem(productID, itemReq.Name, unitPrice, itemReq.Quantity)
		if itemErr != nil {
			return writeError(ctx, itemErr)
		}
		items = append(items, item)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(orderID, customerID, businessID,
		address, items, method, idempotencyKey)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: orderID.String()})
}

// ActiveOrderResponse is one in-flight order on the dispatch board.
type ActiveOrderResponse struct {
	ID         string `json:"id"`
	CustomerID string `json:"customer_id"`
	BusinessID string `json:"business_id"`
	Status     string `json:"status"`
	RiderID    string `json:"rider_id,omitempty"`
	TotalCents int64  `json:"total_cents"`
	Street     string `json:"street"`
	City       string `json:"city"`
}

// GetActiveOrders handles GET /api/v1/orders/active.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	query := queries.NewGetActiveOrdersQuery()

	orders, err := s.getActiveOrdersQueryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]ActiveOrderResponse, len(orders))
	for i, o := range orders {
		response[i] = ActiveOrderResponse{
			ID:         o.ID.String(),
			CustomerID: o.CustomerID.String(),
			BusinessID: o.BusinessID.String(),
			Status:     o.Status,
			TotalCents: o.TotalCents,
			Street:     o.Street,
			City:       o.City,
		}
		if o.RiderID != nil {
			response[i].RiderID = o.RiderID.String()
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AssignRiderRequest is the body of POST /api/v1/orders/:id/assign.
type AssignRiderRequest struct {
	RiderID string `json:"rider_id"`
}

// AssignRider handles POST /api/v1/orders/:id/assign.
func (s *Server) AssignRider(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var req AssignRiderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	riderID, err := kernel.UUIDFromString(req.RiderID)
	if err != nil {
		return badRequest(ctx, "Invalid rider ID")
	}

	cmd, err := commands.NewAssignRiderCommand(orderID, riderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.assignRiderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// UpdateOrderStatusRequest is the body of POST /api/v1/orders/:id/status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// UpdateOrderStatus handles POST /api/v1/orders/:id/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var req UpdateOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := order.StatusFromString(req.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, target)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// AddPaymentMethodRequest is the body of POST /api/v1/payment-methods.
// The CVV is used for gateway tokenization only and never stored.
type AddPaymentMethodRequest struct {
	OwnerID     string `json:"owner_id"`
	Number      string `json:"number"`
	HolderName  string `json:"holder_name"`
	ExpiryMonth int    `json:"expiry_month"`
	ExpiryYear  int    `json:"expiry_year"`
	CVV         string `json:"cvv"`
	DisplayName string `json:"display_name,omitempty"`
}

// AddPaymentMethod handles POST /api/v1/payment-methods.
func (s *Server) AddPaymentMethod(ctx echo.Context) error {
	var req AddPaymentMethodRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	ownerID, err := kernel.UUIDFromString(req.OwnerID)
	if err != nil {
		return badRequest(ctx, "Invalid owner ID")
	}

	card, err := paymentmethod.NewCardDetails(req.Number, req.HolderName,
		req.ExpiryMonth, req.ExpiryYear, req.CVV, time.Now().UTC())
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAddPaymentMethodCommand(ownerID, card, req.DisplayName)
	if err != nil {
		return writeError(ctx, err)
	}

	methodID, err := s.addPaymentMethodHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: methodID.String()})
}

// SetDefaultPaymentMethodRequest is the body of POST /api/v1/payment-methods/:id/default.
type SetDefaultPaymentMethodRequest struct {
	OwnerID string `json:"owner_id"`
}

// SetDefaultPaymentMethod handles POST /api/v1/payment-methods/:id/default.
func (s *Server) SetDefaultPaymentMethod(ctx echo.Context) error {
	methodID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid payment method ID")
	}

	var req SetDefaultPaymentMethodRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	ownerID, err := kernel.UUIDFromString(req.OwnerID)
	if err != nil {
		return badRequest(ctx, "Invalid owner ID")
	}

	cmd, err := commands.NewSetDefaultPaymentMethodCommand(ownerID, methodID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.setDefaultMethodHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}
