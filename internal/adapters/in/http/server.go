// Package http exposes the fulfillment use cases over a JSON API built on echo.
package http

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

type (
	TransitionHandler interface {
		Handle(ctx context.Context, cmd commands.TransitionOrderCommand) (*order.Order, error)
	}
	AssignDriverHandler interface {
		Handle(ctx context.Context, cmd commands.AssignDriverCommand) (*order.Order, error)
	}
	UpdateViaCodeHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateOrderViaCodeCommand) (*order.Order, error)
	}
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
	}
	RegisterDriverHandler interface {
		Handle(ctx context.Context, cmd commands.RegisterDriverCommand) error
	}
	ResolveByCodeHandler interface {
		Handle(ctx context.Context, query queries.ResolveOrderByCodeQuery) (*order.Order, error)
	}
	CityDriversHandler interface {
		Handle(ctx context.Context, query queries.GetCityDriversQuery) ([]queries.GetCityDriversQueryResponse, error)
	}
	StalledAssignmentsHandler interface {
		Handle(
			ctx context.Context,
			query queries.GetStalledAssignmentsQuery,
		) ([]queries.GetStalledAssignmentsQueryResponse, error)
	}
)

// Handlers bundles the use cases the API dispatches to.
type Handlers struct {
	Transition         TransitionHandler
	AssignDriver       AssignDriverHandler
	UpdateViaCode      UpdateViaCodeHandler
	CreateOrder        CreateOrderHandler
	RegisterDriver     RegisterDriverHandler
	ResolveByCode      ResolveByCodeHandler
	CityDrivers        CityDriversHandler
	StalledAssignments StalledAssignmentsHandler
}

// Server maps HTTP requests onto commands and queries.
type Server struct {
	h   Handlers
	log *logrus.Entry
}

func NewServer(h Handlers, logger *logrus.Logger) *Server {
	return &Server{
		h:   h,
		log: logger.WithField("component", "http"),
	}
}

// Register mounts every route on e and installs the request validator.
func (s *Server) Register(e *echo.Echo) {
	e.Validator = NewRequestValidator()

	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")
	v1.POST("/orders/:kind", s.CreateOrder)
	v1.GET("/orders/stalled", s.GetStalledAssignments)
	v1.POST("/orders/:kind/:id/status", s.TransitionOrder)
	v1.POST("/orders/:kind/:id/driver", s.AssignDriver)
	v1.POST("/drivers", s.RegisterDriver)
	v1.GET("/cities/:city_id/drivers", s.GetCityDrivers)
	v1.GET("/driver/orders/:kind/:code", s.ResolveByCode)
	v1.PATCH("/driver/orders/:kind/:code", s.UpdateViaCode)
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.String(http.StatusOK, "Healthy")
}

// TransitionOrder handles POST /api/v1/orders/{kind}/{id}/status.
func (s *Server) TransitionOrder(c echo.Context) error {
	kind, id, err := orderAddress(c)
	if err != nil {
		return s.fail(c, err)
	}

	var req TransitionRequest
	if err = bindAndValidate(c, &req); err != nil {
		return s.fail(c, err)
	}

	target, err := parseStatus(req.Status)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewTransitionOrderCommand(kind, id, target)
	if err != nil {
		return s.fail(c, err)
	}
	if req.Notes != nil {
		cmd = cmd.WithNotes(strings.TrimSpace(*req.Notes))
	}

	o, err := s.h.Transition.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, NewOrderResponse(o))
}

// AssignDriver handles POST /api/v1/orders/{kind}/{id}/driver.
func (s *Server) AssignDriver(c echo.Context) error {
	kind, id, err := orderAddress(c)
	if err != nil {
		return s.fail(c, err)
	}

	var req AssignDriverRequest
	if err = bindAndValidate(c, &req); err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewAssignDriverCommand(kind, id, req.DriverID)
	if err != nil {
		return s.fail(c, err)
	}

	o, err := s.h.AssignDriver.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, NewOrderResponse(o))
}

// CreateOrder handles POST /api/v1/orders/{kind}.
func (s *Server) CreateOrder(c echo.Context) error {
	kind, err := order.ParseKind(c.Param("kind"))
	if err != nil {
		return s.fail(c, err)
	}

	var req CreateOrderRequest
	if err = bindAndValidate(c, &req); err != nil {
		return s.fail(c, err)
	}

	client, err := kernel.NewContact(req.Client.Name, req.Client.Address, req.Client.Location)
	if err != nil {
		return s.fail(c, err)
	}

	var vendor kernel.Contact
	if req.Vendor != nil {
		if vendor, err = kernel.NewContact(req.Vendor.Name, req.Vendor.Address, req.Vendor.Location); err != nil {
			return s.fail(c, err)
		}
	}

	cmd, err := commands.NewCreateOrderCommand(kind, req.ID, req.CityID, client, vendor)
	if err != nil {
		return s.fail(c, err)
	}

	o, err := s.h.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, CreatedOrderResponse{
		OrderResponse: NewOrderResponse(o),
		AccessCode:    o.AccessCode().String(),
	})
}

// RegisterDriver handles POST /api/v1/drivers.
func (s *Server) RegisterDriver(c echo.Context) error {
	var req RegisterDriverRequest
	if err := bindAndValidate(c, &req); err != nil {
		return s.fail(c, err)
	}

	contact, err := kernel.NewContact(req.Name, req.Address, "")
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewRegisterDriverCommand(req.ID, req.CityID, contact)
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.h.RegisterDriver.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	return c.NoContent(http.StatusCreated)
}

// GetCityDrivers handles GET /api/v1/cities/{city_id}/drivers.
func (s *Server) GetCityDrivers(c echo.Context) error {
	cityID, err := pathInt(c, "city_id")
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewGetCityDriversQuery(cityID)
	if err != nil {
		return s.fail(c, err)
	}

	drivers, err := s.h.CityDrivers.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	response := make([]DriverResponse, len(drivers))
	for i, d := range drivers {
		response[i] = DriverResponse{ID: d.ID, Name: d.Name}
	}

	return c.JSON(http.StatusOK, response)
}

// GetStalledAssignments handles GET /api/v1/orders/stalled.
func (s *Server) GetStalledAssignments(c echo.Context) error {
	stalled, err := s.h.StalledAssignments.Handle(c.Request().Context(), queries.NewGetStalledAssignmentsQuery())
	if err != nil {
		return s.fail(c, err)
	}

	response := make([]StalledAssignmentResponse, len(stalled))
	for i, st := range stalled {
		response[i] = StalledAssignmentResponse{
			Kind:      st.Kind.String(),
			OrderID:   st.OrderID,
			CityID:    st.CityID,
			DriverID:  st.DriverID,
			CreatedAt: st.CreatedAt,
		}
	}

	return c.JSON(http.StatusOK, response)
}

// ResolveByCode handles GET /api/v1/driver/orders/{kind}/{code}.
func (s *Server) ResolveByCode(c echo.Context) error {
	kind, err := order.ParseKind(c.Param("kind"))
	if err != nil {
		return s.fail(c, err)
	}

	code, err := queries.ParseAccessCode(c.Param("code"))
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewResolveOrderByCodeQuery(kind, code)
	if err != nil {
		return s.fail(c, err)
	}

	o, err := s.h.ResolveByCode.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, NewOrderResponse(o))
}

// UpdateViaCode handles PATCH /api/v1/driver/orders/{kind}/{code}.
func (s *Server) UpdateViaCode(c echo.Context) error {
	kind, err := order.ParseKind(c.Param("kind"))
	if err != nil {
		return s.fail(c, err)
	}

	var req UpdateViaCodeRequest
	if err = bindAndValidate(c, &req); err != nil {
		return s.fail(c, err)
	}

	target, err := parseStatus(req.Status)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewUpdateOrderViaCodeCommand(kind, c.Param("code"), target, req.Notes)
	if err != nil {
		return s.fail(c, err)
	}

	o, err := s.h.UpdateViaCode.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, NewOrderResponse(o))
}

func (s *Server) fail(c echo.Context, err error) error {
	status := statusFor(err)

	entry := s.log.WithError(err).WithFields(logrus.Fields{
		"method": c.Request().Method,
		"path":   c.Path(),
		"status": status,
	})

	message := err.Error()
	switch {
	case status >= http.StatusInternalServerError && status != http.StatusServiceUnavailable:
		entry.Error("request failed")
		message = http.StatusText(status)
	case status == http.StatusServiceUnavailable:
		entry.Warn("request failed")
	default:
		entry.Debug("request rejected")
	}

	return c.JSON(status, ErrorResponse{Code: status, Message: message})
}

func orderAddress(c echo.Context) (order.Kind, int64, error) {
	kind, err := order.ParseKind(c.Param("kind"))
	if err != nil {
		return order.UnknownKind, 0, err
	}
	id, err := pathInt(c, "id")
	if err != nil {
		return order.UnknownKind, 0, err
	}
	return kind, id, nil
}

func pathInt(c echo.Context, name string) (int64, error) {
	v, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return v, nil
}

func parseStatus(s string) (order.Status, error) {
	return order.ParseStatus(strings.ToLower(strings.TrimSpace(s)))
}
