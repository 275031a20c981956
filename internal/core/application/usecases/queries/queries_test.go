package queries_test

import (
	"testing"
	"time"

	"cargotrack/internal/core/application/usecases/queries"
	"cargotrack/internal/core/domain/model/employee"
	"cargotrack/internal/core/domain/model/kernel"
	"cargotrack/internal/core/domain/model/order"
	"cargotrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func queryTestActor(t *testing.T, role employee.Role, branchID *kernel.UUID) employee.Actor {
	t.Helper()
	actor, err := employee.NewActor(kernel.NewUUID(), role, branchID)
	require.NoError(t, err)
	return actor
}

func TestNewGetOrdersQuery_Valid(t *testing.T) {
	actor := queryTestActor(t, employee.Admin, nil)
	status := order.InTransit

	query, err := queries.NewGetOrdersQuery(actor, &status, "  lp123  ", 0, 0)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, "lp123", query.Search())
	assert.Equal(t, 50, query.Limit(), "zero limit falls back to the default page size")
}

func TestNewGetOrdersQuery_UnknownStatusFilter(t *testing.T) {
	actor := queryTestActor(t, employee.Admin, nil)
	status := order.Status("shipped")

	_, err := queries.NewGetOrdersQuery(actor, &status, "", 0, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrUnknownStatus)
}

func TestNewGetOrdersQuery_LimitOutOfRange(t *testing.T) {
	actor := queryTestActor(t, employee.Admin, nil)

	_, err := queries.NewGetOrdersQuery(actor, nil, "", 5000, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestGetOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrdersQueryIsNotConstructed)
}

func TestNewGetOrderByTrackNumberQuery_NormalizesTrackNumber(t *testing.T) {
	actor := queryTestActor(t, employee.ChinaWorker, nil)

	query, err := queries.NewGetOrderByTrackNumberQuery(actor, "  lp00123456cn ")
	require.NoError(t, err)
	assert.Equal(t, "LP00123456CN", query.TrackNumber().String())
}

func TestNewGetOrderByTrackNumberQuery_EmptyTrackNumber(t *testing.T) {
	actor := queryTestActor(t, employee.ChinaWorker, nil)

	_, err := queries.NewGetOrderByTrackNumberQuery(actor, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewGetAvailableActionsQuery_InvalidOrderID(t *testing.T) {
	actor := queryTestActor(t, employee.Admin, nil)

	_, err := queries.NewGetAvailableActionsQuery(actor, kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewGetBranchesQuery_Valid(t *testing.T) {
	query := queries.NewGetBranchesQuery()
	require.NoError(t, query.Validate())
}

func TestGetBranchesQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetBranchesQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetBranchesQueryIsNotConstructed)
}

func TestNewGetStuckOrdersQuery_Valid(t *testing.T) {
	query, err := queries.NewGetStuckOrdersQuery(48 * time.Hour)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, 48*time.Hour, query.Threshold())
}

func TestNewGetStuckOrdersQuery_NonPositiveThreshold(t *testing.T) {
	_, err := queries.NewGetStuckOrdersQuery(0)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewGetOrderStatisticsQuery_UnconstructedActor(t *testing.T) {
	_, err := queries.NewGetOrderStatisticsQuery(employee.Actor{})
	require.Error(t, err)
	assert.ErrorIs(t, err, employee.ErrActorIsNotConstructed)
}
