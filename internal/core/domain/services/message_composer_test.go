package services_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
)

func TestMessageComposer_DriverAssignment(t *testing.T) {
	composer := services.NewMessageComposer("https://drivers.example.com/o/")

	t.Run("delivery goes from store to client", func(t *testing.T) {
		o := newOrder(t, order.Delivery, 5)

		msg := composer.DriverAssignment(o)

		assert.Contains(t, msg, "New delivery order #42")
		assert.Contains(t, msg, "Pick up: Corner Store, 12 Palm Street")
		assert.Contains(t, msg, "Drop off: Guest 301, Grand Hotel, room 301")
		assert.Contains(t, msg, "طلب جديد رقم 42")
		assert.Contains(t, msg, "https://drivers.example.com/o/delivery/"+o.AccessCode().String())
	})

	t.Run("service goes from client to vendor", func(t *testing.T) {
		o := newOrder(t, order.Service, 5)

		msg := composer.DriverAssignment(o)

		assert.Contains(t, msg, "Pick up: Guest 301, Grand Hotel, room 301")
		assert.Contains(t, msg, "Drop off: Corner Store, 12 Palm Street")
		assert.Contains(t, msg, "/service/"+o.AccessCode().String())
	})
}

func TestMessageComposer_StatusUpdate(t *testing.T) {
	composer := services.NewMessageComposer("https://drivers.example.com")

	tests := []struct {
		name        string
		kind        order.Kind
		status      order.Status
		stakeholder order.Stakeholder
		want        string
	}{
		{"vendor on pickup", order.Delivery, order.Pickup, order.Vendor, "a driver is coming to collect it"},
		{"client on pickup", order.Delivery, order.Pickup, order.Client, "a driver has been assigned"},
		{"client on way", order.Delivery, order.OnWay, order.Client, "on the way"},
		{"client in progress", order.Service, order.InProgress, order.Client, "with the service provider"},
		{"client completed", order.Service, order.Completed, order.Client, "complete"},
		{"driver canceled", order.Delivery, order.Canceled, order.Driver, "canceled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := newOrder(t, tt.kind, 5)

			msg := composer.StatusUpdate(o, tt.status, tt.stakeholder)

			assert.Contains(t, msg, "Order #42")
			assert.Contains(t, msg, "الطلب رقم 42")
			assert.Contains(t, msg, tt.want)
		})
	}
}
