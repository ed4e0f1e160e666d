package queries_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAccessCode(t *testing.T) {
	code := kernel.NewAccessCode()

	parsed, err := queries.ParseAccessCode(code.String())
	require.NoError(t, err)
	assert.True(t, code.IsEqual(parsed))

	for _, bad := range []string{"", "abc", "00000000-0000-0000-0000-000000000000"} {
		_, err = queries.ParseAccessCode(bad)
		require.ErrorIs(t, err, queries.ErrInvalidOrExpiredCode, bad)
	}
}

func TestNewResolveOrderByCodeQuery(t *testing.T) {
	code := kernel.NewAccessCode()

	query, err := queries.NewResolveOrderByCodeQuery(order.Service, code)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, order.Service, query.Kind())
	assert.True(t, code.IsEqual(query.Code()))
}

func TestNewResolveOrderByCodeQuery_Invalid(t *testing.T) {
	_, err := queries.NewResolveOrderByCodeQuery(order.Delivery, kernel.AccessCode{})
	require.ErrorIs(t, err, queries.ErrInvalidOrExpiredCode)

	_, err = queries.NewResolveOrderByCodeQuery(order.Kind(0), kernel.NewAccessCode())
	require.Error(t, err)
}

func TestResolveOrderByCodeQuery_Validate_ZeroValue(t *testing.T) {
	var query queries.ResolveOrderByCodeQuery

	require.ErrorIs(t, query.Validate(), queries.ErrResolveOrderByCodeQueryIsNotConstructed)
}
