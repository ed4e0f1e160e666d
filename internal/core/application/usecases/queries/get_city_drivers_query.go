package queries

import (
	"errors"
	"fmt"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrGetCityDriversQueryIsNotConstructed = errors.New(
	"GetCityDriversQuery must be created via NewGetCityDriversQuery constructor",
)

// GetCityDriversQuery lists the drivers an order in cityID may be assigned to.
type GetCityDriversQuery struct {
	cityID int64

	guard guard.ConstructorGuard
}

func NewGetCityDriversQuery(cityID int64) (GetCityDriversQuery, error) {
	if cityID <= 0 {
		return GetCityDriversQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"cityID", fmt.Errorf("%d is not greater than 0", cityID),
		)
	}
	return GetCityDriversQuery{cityID: cityID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCityDriversQuery) Validate() error {
	return q.guard.Validate(ErrGetCityDriversQueryIsNotConstructed)
}

func (q GetCityDriversQuery) CityID() int64 {
	return q.cityID
}

// GetCityDriversQueryResponse is the operator-facing view of a driver.
type GetCityDriversQueryResponse struct {
	ID   int64
	Name string
}
