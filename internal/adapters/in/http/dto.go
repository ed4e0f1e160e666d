package http

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

type TransitionRequest struct {
	Status string  `json:"status" validate:"required"`
	Notes  *string `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

type AssignDriverRequest struct {
	DriverID int64 `json:"driver_id" validate:"required,gt=0"`
}

type UpdateViaCodeRequest struct {
	Status string `json:"status" validate:"required"`
	Notes  string `json:"notes" validate:"max=2000"`
}

type ContactRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	Address  string `json:"address" validate:"required,max=200"`
	Location string `json:"location" validate:"max=500"`
}

type CreateOrderRequest struct {
	ID     int64           `json:"id" validate:"required,gt=0"`
	CityID int64           `json:"city_id" validate:"required,gt=0"`
	Client ContactRequest  `json:"client" validate:"required"`
	Vendor *ContactRequest `json:"vendor,omitempty" validate:"omitempty"`
}

type RegisterDriverRequest struct {
	ID      int64  `json:"id" validate:"required,gt=0"`
	CityID  int64  `json:"city_id" validate:"required,gt=0"`
	Name    string `json:"name" validate:"required,max=200"`
	Address string `json:"address" validate:"required,max=200"`
}

type ContactResponse struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	Location string `json:"location,omitempty"`
}

// OrderResponse is the public view of an order. The access code is never included.
type OrderResponse struct {
	ID        int64            `json:"id"`
	Kind      string           `json:"kind"`
	Status    string           `json:"status"`
	CityID    int64            `json:"city_id"`
	DriverID  *int64           `json:"driver_id,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	Notes     string           `json:"notes,omitempty"`
	Client    *ContactResponse `json:"client,omitempty"`
	Vendor    *ContactResponse `json:"vendor,omitempty"`
	Driver    *ContactResponse `json:"driver,omitempty"`
}

// CreatedOrderResponse is returned once, to the placement flow that created the order.
type CreatedOrderResponse struct {
	OrderResponse
	AccessCode string `json:"access_code"`
}

type DriverResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type StalledAssignmentResponse struct {
	Kind      string    `json:"kind"`
	OrderID   int64     `json:"order_id"`
	CityID    int64     `json:"city_id"`
	DriverID  int64     `json:"driver_id"`
	CreatedAt time.Time `json:"created_at"`
}

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewOrderResponse(o *order.Order) OrderResponse {
	return OrderResponse{
		ID:        o.ID(),
		Kind:      o.Kind().String(),
		Status:    o.Status().String(),
		CityID:    o.CityID(),
		DriverID:  o.DriverID(),
		CreatedAt: o.CreatedAt(),
		Notes:     o.Notes(),
		Client:    contactResponse(o.ContactOf(order.Client)),
		Vendor:    contactResponse(o.ContactOf(order.Vendor)),
		Driver:    contactResponse(o.ContactOf(order.Driver)),
	}
}

func contactResponse(c kernel.Contact) *ContactResponse {
	if !c.IsPresent() {
		return nil
	}
	return &ContactResponse{
		Name:     c.Name(),
		Address:  c.Address(),
		Location: c.Location(),
	}
}
