package services_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/driver"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

var createdAt = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func mustContact(t *testing.T, name, address, location string) kernel.Contact {
	t.Helper()
	c, err := kernel.NewContact(name, address, location)
	require.NoError(t, err)
	return c
}

func newOrder(t *testing.T, kind order.Kind, cityID int64) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		42,
		kind,
		cityID,
		mustContact(t, "Guest 301", "chat:client", "Grand Hotel, room 301"),
		mustContact(t, "Corner Store", "chat:vendor", "12 Palm Street"),
		createdAt,
	)
	require.NoError(t, err)
	return o
}

func newDriver(t *testing.T, id, cityID int64) *driver.Driver {
	t.Helper()
	d, err := driver.NewDriver(id, cityID, mustContact(t, "Sam", "chat:driver", ""))
	require.NoError(t, err)
	return d
}
