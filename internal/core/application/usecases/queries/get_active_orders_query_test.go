package queries_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetActiveOrdersQuery_Success(t *testing.T) {
	// Act
	query := queries.NewGetActiveOrdersQuery()

	// Assert
	assert.NotZero(t, query)
	require.NoError(t, query.Validate())
}

func TestGetActiveOrdersQuery_Validate_ZeroValue(t *testing.T) {
	// Arrange
	var query queries.GetActiveOrdersQuery // zero value, not constructed via constructor

	// Act
	err := query.Validate()

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, queries.ErrGetActiveOrdersQueryIsNotConstructed)
}
