package queries

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// OrderByCodeReader is the part of ports.OrderRepository the resolver needs.
type OrderByCodeReader interface {
	GetByAccessCode(ctx context.Context, kind order.Kind, code kernel.AccessCode) (*order.Order, error)
}

// ResolveOrderByCodeQueryHandler authenticates a driver by access code.
// A code resolves only while now - createdAt <= order.AccessCodeTTL.
type ResolveOrderByCodeQueryHandler struct {
	orders OrderByCodeReader
	now    func() time.Time
}

// NewResolveOrderByCodeQueryHandler creates the resolver. now defaults to time.Now.
func NewResolveOrderByCodeQueryHandler(orders OrderByCodeReader, now func() time.Time) ResolveOrderByCodeQueryHandler {
	if now == nil {
		now = time.Now
	}
	return ResolveOrderByCodeQueryHandler{
		orders: orders,
		now:    now,
	}
}

// Handle returns the order, or ErrInvalidOrExpiredCode when the code is unknown or expired.
func (h ResolveOrderByCodeQueryHandler) Handle(ctx context.Context, query ResolveOrderByCodeQuery) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	o, err := h.orders.GetByAccessCode(ctx, query.Kind(), query.Code())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, ErrInvalidOrExpiredCode
	}
	if err != nil {
		return nil, err
	}

	if !o.AccessCodeValidAt(h.now()) {
		return nil, ErrInvalidOrExpiredCode
	}

	return o, nil
}
