// Package driverrepo provides data transfer objects and mapping functions for the driver directory.
package driverrepo

import (
	"fulfillment/internal/core/domain/model/driver"
	"fulfillment/internal/core/domain/model/kernel"
)

// DriverDTO represents the database structure of a driver directory entry.
type DriverDTO struct {
	ID      int64      `gorm:"primaryKey;autoIncrement:false"`
	CityID  int64      `gorm:"not null;index"`
	Contact ContactDTO `gorm:"embedded;embeddedPrefix:contact_"`
}

// TableName overrides GORM's default naming convention to use "drivers" instead of "driver_dtos".
func (DriverDTO) TableName() string {
	return "drivers"
}

// ContactDTO is the driver's embedded messaging contact.
type ContactDTO struct {
	Name     string `gorm:"type:varchar(128);not null"`
	Address  string `gorm:"type:varchar(255);not null"`
	Location string `gorm:"type:varchar(255)"`
}

func fromDomain(d *driver.Driver) DriverDTO {
	return DriverDTO{
		ID:     d.ID(),
		CityID: d.CityID(),
		Contact: ContactDTO{
			Name:     d.Contact().Name(),
			Address:  d.Contact().Address(),
			Location: d.Contact().Location(),
		},
	}
}

func toDomain(dto DriverDTO) (*driver.Driver, error) {
	contact, err := kernel.NewContact(dto.Contact.Name, dto.Contact.Address, dto.Contact.Location)
	if err != nil {
		return nil, err
	}
	return driver.NewDriver(dto.ID, dto.CityID, contact)
}
