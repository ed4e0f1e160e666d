// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// Delivery and service orders are stored in two tables with the same column layout.
package orderrepo

import (
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
)

const (
	deliveryOrdersTable = "delivery_orders"
	serviceOrdersTable  = "service_orders"
)

// OrderColumns is the column layout shared by both order tables.
type OrderColumns struct {
	ID         int64      `gorm:"primaryKey;autoIncrement:false"`
	Status     int        `gorm:"type:smallint;not null;index"`
	CityID     int64      `gorm:"not null;index"`
	DriverID   *int64     `gorm:"index"`
	AccessCode uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	CreatedAt  time.Time  `gorm:"not null"`
	Client     ContactDTO `gorm:"embedded;embeddedPrefix:client_"`
	Vendor     ContactDTO `gorm:"embedded;embeddedPrefix:vendor_"`
	Driver     ContactDTO `gorm:"embedded;embeddedPrefix:driver_"`
	Notes      string     `gorm:"type:text"`
}

// DeliveryOrderDTO maps delivery orders to the "delivery_orders" table.
type DeliveryOrderDTO struct {
	OrderColumns `gorm:"embedded"`
}

func (DeliveryOrderDTO) TableName() string {
	return deliveryOrdersTable
}

// ServiceOrderDTO maps service orders to the "service_orders" table.
type ServiceOrderDTO struct {
	OrderColumns `gorm:"embedded"`
}

func (ServiceOrderDTO) TableName() string {
	return serviceOrdersTable
}

// ContactDTO is a contact card embedded in the order row. An empty address means no contact.
type ContactDTO struct {
	Name     string `gorm:"type:varchar(128)"`
	Address  string `gorm:"type:varchar(255)"`
	Location string `gorm:"type:varchar(255)"`
}

// Models returns the GORM models of both order tables, for migrations.
func Models() []any {
	return []any{&DeliveryOrderDTO{}, &ServiceOrderDTO{}}
}

func tableFor(kind order.Kind) (string, error) {
	switch kind {
	case order.Delivery:
		return deliveryOrdersTable, nil
	case order.Service:
		return serviceOrdersTable, nil
	default:
		return "", fmt.Errorf("no table for %s orders", kind)
	}
}

// fromDomain converts an order aggregate to its row.
func fromDomain(o *order.Order) OrderColumns {
	s := o.Snapshot()
	return OrderColumns{
		ID:         s.ID,
		Status:     int(s.Status),
		CityID:     s.CityID,
		DriverID:   s.DriverID,
		AccessCode: s.AccessCode.UUID(),
		CreatedAt:  s.CreatedAt,
		Client:     contactFromDomain(s.Client),
		Vendor:     contactFromDomain(s.Vendor),
		Driver:     contactFromDomain(s.Driver),
		Notes:      s.Notes,
	}
}

// toDomain rebuilds the aggregate from a row of the kind's table.
func toDomain(kind order.Kind, dto OrderColumns) (*order.Order, error) {
	code, err := kernel.AccessCodeFromString(dto.AccessCode.String())
	if err != nil {
		return nil, err
	}

	client, err := contactToDomain(dto.Client)
	if err != nil {
		return nil, err
	}
	vendor, err := contactToDomain(dto.Vendor)
	if err != nil {
		return nil, err
	}
	driver, err := contactToDomain(dto.Driver)
	if err != nil {
		return nil, err
	}

	return order.Restore(order.Snapshot{
		ID:         dto.ID,
		Kind:       kind,
		Status:     order.Status(dto.Status),
		CityID:     dto.CityID,
		DriverID:   dto.DriverID,
		AccessCode: code,
		CreatedAt:  dto.CreatedAt,
		Client:     client,
		Vendor:     vendor,
		Driver:     driver,
		Notes:      dto.Notes,
	})
}

func contactFromDomain(c kernel.Contact) ContactDTO {
	if !c.IsPresent() {
		return ContactDTO{}
	}
	return ContactDTO{Name: c.Name(), Address: c.Address(), Location: c.Location()}
}

func contactToDomain(dto ContactDTO) (kernel.Contact, error) {
	if dto.Address == "" {
		return kernel.Contact{}, nil
	}
	return kernel.NewContact(dto.Name, dto.Address, dto.Location)
}
