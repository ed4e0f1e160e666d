package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetCityDriversQueryHandler reads the driver directory for one city.
//
// Example:
//
//	query, _ := NewGetCityDriversQuery(5)
//	drivers, err := handler.Handle(ctx, query)
type GetCityDriversQueryHandler struct {
	db *gorm.DB
}

func NewGetCityDriversQueryHandler(db *gorm.DB) GetCityDriversQueryHandler {
	return GetCityDriversQueryHandler{db: db}
}

// Handle returns the city's drivers sorted by name.
func (h GetCityDriversQueryHandler) Handle(
	ctx context.Context,
	query GetCityDriversQuery,
) ([]GetCityDriversQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	drivers := make([]GetCityDriversQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT 
			id, 
			contact_name 
		FROM drivers
		WHERE city_id = ?
		ORDER BY contact_name, id
	`, query.CityID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var d GetCityDriversQueryResponse
		if err = rows.Scan(&d.ID, &d.Name); err != nil {
			return nil, err
		}
		drivers = append(drivers, d)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return drivers, nil
}
