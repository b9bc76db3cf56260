package http

import (
	"errors"
	"net/http"

	"ecobazaar/internal/core/application/usecases/commands"
	"ecobazaar/internal/core/application/usecases/queries"
	"ecobazaar/internal/core/domain/model/kernel"
	"ecobazaar/internal/core/domain/model/order"
	"ecobazaar/internal/core/domain/model/product"
	"ecobazaar/internal/generated/servers"
	"ecobazaar/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases: commands
// mutate state, then the matching query rebuilds the view returned to the
// caller. Identity comes from the X-User-Email and X-User-Role headers set
// by the gateway in front of this service.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	cancelOrderHandler       commands.CancelOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler

	// Query handlers
	getBuyerOrdersHandler     queries.GetBuyerOrdersQueryHandler
	getBuyerOrderHandler      queries.GetBuyerOrderQueryHandler
	getSellerOrdersHandler    queries.GetSellerOrdersQueryHandler
	getSellerOrderHandler     queries.GetSellerOrderQueryHandler
	calculateFootprintHandler queries.CalculateFootprintQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	getBuyerOrdersHandler queries.GetBuyerOrdersQueryHandler,
	getBuyerOrderHandler queries.GetBuyerOrderQueryHandler,
	getSellerOrdersHandler queries.GetSellerOrdersQueryHandler,
	getSellerOrderHandler queries.GetSellerOrderQueryHandler,
	calculateFootprintHandler queries.CalculateFootprintQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:        createOrderHandler,
		cancelOrderHandler:        cancelOrderHandler,
		updateOrderStatusHandler:  updateOrderStatusHandler,
		getBuyerOrdersHandler:     getBuyerOrdersHandler,
		getBuyerOrderHandler:      getBuyerOrderHandler,
		getSellerOrdersHandler:    getSellerOrdersHandler,
		getSellerOrderHandler:     getSellerOrderHandler,
		calculateFootprintHandler: calculateFootprintHandler,
	}
}

// CreateOrder handles POST /api/v1/orders - places a new order for the
// calling buyer, reserving stock for every line.
func (s *Server) CreateOrder(ctx echo.Context, params servers.CreateOrderParams) error {
	var newOrder servers.NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	address, err := addressFromAPI(newOrder.ShippingAddress)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid shipping address: "+err.Error())
	}

	items := make([]commands.OrderItem, 0, len(newOrder.Items))
	for _, apiItem := range newOrder.Items {
		productID, idErr := kernel.UUIDFromBytes(apiItem.ProductId[:])
		if idErr != nil {
			return errorResponse(ctx, http.StatusBadRequest, "Invalid product id: "+idErr.Error())
		}

		item, itemErr := commands.NewOrderItem(productID, apiItem.Quantity)
		if itemErr != nil {
			return errorResponse(ctx, http.StatusBadRequest, "Invalid order item: "+itemErr.Error())
		}
		items = append(items, item)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, string(params.XUserEmail), address, items)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandErrorResponse(ctx, handleErr)
	}

	return s.respondWithBuyerOrder(ctx, orderID, http.StatusCreated)
}

// GetOrders handles GET /api/v1/orders - retrieves the calling buyer's
// orders, newest first.
func (s *Server) GetOrders(ctx echo.Context, params servers.GetOrdersParams) error {
	query, err := queries.NewGetBuyerOrdersQuery(string(params.XUserEmail))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid buyer email: "+err.Error())
	}

	views, err := s.getBuyerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to retrieve orders")
	}

	response := make([]servers.Order, len(views))
	for i, view := range views {
		response[i] = orderToAPI(view)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CancelOrder handles PATCH /api/v1/orders/{orderId}/cancel - cancels an
// order owned by the calling buyer and releases its reserved stock.
func (s *Server) CancelOrder(
	ctx echo.Context,
	orderId servers.OrderId,
	params servers.CancelOrderParams,
) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, string(params.XUserEmail))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid cancel request: "+err.Error())
	}

	if handleErr := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandErrorResponse(ctx, handleErr)
	}

	return s.respondWithBuyerOrder(ctx, orderID, http.StatusOK)
}

// GetSellerOrders handles GET /api/v1/seller/orders - retrieves the seller
// dashboard. With active=true (the default) only in-flight orders are
// returned, oldest first.
func (s *Server) GetSellerOrders(ctx echo.Context, params servers.GetSellerOrdersParams) error {
	if err := requireSellerRole(params.XUserRole); err != nil {
		return errorResponse(ctx, http.StatusForbidden, err.Error())
	}

	activeOnly := true
	if params.Active != nil {
		activeOnly = *params.Active
	}

	return s.respondWithSellerOrders(ctx, activeOnly)
}

// GetSellerOrderHistory handles GET /api/v1/seller/orders/history -
// retrieves every order ever placed, newest first.
func (s *Server) GetSellerOrderHistory(
	ctx echo.Context,
	params servers.GetSellerOrderHistoryParams,
) error {
	if err := requireSellerRole(params.XUserRole); err != nil {
		return errorResponse(ctx, http.StatusForbidden, err.Error())
	}

	return s.respondWithSellerOrders(ctx, false)
}

// UpdateOrderStatus handles PATCH /api/v1/seller/orders/{orderId}/status -
// advances an order to the requested lifecycle status.
func (s *Server) UpdateOrderStatus(
	ctx echo.Context,
	orderId servers.OrderId,
	params servers.UpdateOrderStatusParams,
) error {
	if err := requireSellerRole(params.XUserRole); err != nil {
		return errorResponse(ctx, http.StatusForbidden, err.Error())
	}

	var statusUpdate servers.StatusUpdate
	if err := ctx.Bind(&statusUpdate); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, string(statusUpdate.Status))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid status value: "+err.Error())
	}

	if handleErr := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandErrorResponse(ctx, handleErr)
	}

	query, err := queries.NewGetSellerOrderQuery(orderID)
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to retrieve order")
	}

	view, err := s.getSellerOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to retrieve order")
	}

	return ctx.JSON(http.StatusOK, orderToAPI(view))
}

// CalculateCarbonFootprint handles POST /api/v1/carbon/calculate - estimates
// a product's carbon footprint from its material, packaging and weight.
func (s *Server) CalculateCarbonFootprint(ctx echo.Context) error {
	var request servers.CarbonFootprintRequest
	if err := ctx.Bind(&request); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	region := ""
	if request.Region != nil {
		region = *request.Region
	}

	query, err := queries.NewCalculateFootprintQuery(
		request.Material, request.Packaging, request.WeightGrams, region)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid product attributes: "+err.Error())
	}

	result, err := s.calculateFootprintHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errorResponse(ctx, http.StatusNotFound, "Emission factor not found")
		}
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to calculate footprint")
	}

	return ctx.JSON(http.StatusOK, servers.CarbonFootprintResponse{
		FootprintKg: result.FootprintKg,
	})
}

func (s *Server) respondWithBuyerOrder(ctx echo.Context, orderID kernel.UUID, code int) error {
	query, err := queries.NewGetBuyerOrderQuery(orderID)
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to retrieve order")
	}

	view, err := s.getBuyerOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to retrieve order")
	}

	return ctx.JSON(code, orderToAPI(view))
}

func (s *Server) respondWithSellerOrders(ctx echo.Context, activeOnly bool) error {
	views, err := s.getSellerOrdersHandler.Handle(
		ctx.Request().Context(), queries.NewGetSellerOrdersQuery(activeOnly))
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to retrieve orders")
	}

	response := make([]servers.Order, len(views))
	for i, view := range views {
		response[i] = orderToAPI(view)
	}

	return ctx.JSON(http.StatusOK, response)
}

// requireSellerRole gates the seller endpoints. Admins may do everything a
// seller may.
func requireSellerRole(role servers.UserRole) error {
	if role == servers.UserRoleSELLER || role == servers.UserRoleADMIN {
		return nil
	}
	return errors.New("seller role required")
}

// commandErrorResponse maps domain and application errors from command
// handlers to HTTP status codes.
func commandErrorResponse(ctx echo.Context, err error) error {
	var transitionErr *order.InvalidTransitionError
	var stockErr *product.InsufficientStockError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorResponse(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, commands.ErrNotOrderOwner):
		return errorResponse(ctx, http.StatusForbidden, err.Error())
	case errors.As(err, &stockErr):
		return errorResponse(ctx, http.StatusConflict, err.Error())
	case errors.As(err, &transitionErr):
		return errorResponse(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, order.ErrInvalidStatusValue):
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	default:
		return errorResponse(ctx, http.StatusInternalServerError, "Internal server error")
	}
}

func errorResponse(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, servers.Error{
		Code:    code,
		Message: message,
	})
}

func addressFromAPI(apiAddress servers.Address) (order.Address, error) {
	address2 := ""
	if apiAddress.Address2 != nil {
		address2 = *apiAddress.Address2
	}
	state := ""
	if apiAddress.State != nil {
		state = *apiAddress.State
	}

	return order.NewAddress(
		apiAddress.FirstName,
		apiAddress.LastName,
		apiAddress.Address1,
		address2,
		apiAddress.City,
		state,
		apiAddress.Zip,
		apiAddress.Country,
	)
}

func addressToAPI(view queries.AddressView) servers.Address {
	apiAddress := servers.Address{
		FirstName: view.FirstName,
		LastName:  view.LastName,
		Address1:  view.Address1,
		City:      view.City,
		Zip:       view.Zip,
		Country:   view.Country,
	}
	if view.Address2 != "" {
		apiAddress.Address2 = &view.Address2
	}
	if view.State != "" {
		apiAddress.State = &view.State
	}
	return apiAddress
}

func orderToAPI(view queries.OrderView) servers.Order {
	lines := make([]servers.OrderLine, len(view.Lines))
	for i, line := range view.Lines {
		lines[i] = servers.OrderLine{
			ProductId: line.ProductID.Bytes(),
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice.AmountMinor(),
			Subtotal:  line.Subtotal.AmountMinor(),
		}
	}

	return servers.Order{
		Id:              view.ID.Bytes(),
		BuyerEmail:      servers.UserEmail(view.BuyerEmail),
		Status:          servers.OrderStatus(view.Status.String()),
		TotalPrice:      view.TotalPrice.AmountMinor(),
		CreatedAt:       view.CreatedAt,
		ShippingAddress: addressToAPI(view.Address),
		Lines:           lines,
	}
}
