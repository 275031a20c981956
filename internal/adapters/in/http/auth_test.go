package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cargotrack/internal/core/domain/model/employee"
	"cargotrack/internal/core/domain/model/kernel"
)

func testEmployee(t *testing.T, role employee.Role, branchID *kernel.UUID) *employee.Employee {
	t.Helper()
	emp, err := employee.NewEmployee(kernel.NewUUID(), "Айгуль С.", "aigul", "$2a$10$hash", role, branchID)
	require.NoError(t, err)
	return emp
}

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("test-secret")
	emp := testEmployee(t, employee.Admin, nil)

	token, err := issuer.Issue(emp)
	require.NoError(t, err)

	actor, err := issuer.parseActor(token)
	require.NoError(t, err)
	assert.True(t, actor.ID().IsEqual(emp.ID()))
	assert.Equal(t, employee.Admin, actor.Role())
	assert.Nil(t, actor.BranchID())
}

func TestTokenIssuer_RoundTripKeepsBranch(t *testing.T) {
	issuer := NewTokenIssuer("test-secret")
	branchID := kernel.NewUUID()
	emp := testEmployee(t, employee.BranchWorker, &branchID)

	token, err := issuer.Issue(emp)
	require.NoError(t, err)

	actor, err := issuer.parseActor(token)
	require.NoError(t, err)
	require.NotNil(t, actor.BranchID())
	assert.True(t, actor.BranchID().IsEqual(branchID))
}

func TestTokenIssuer_RejectsWrongSecret(t *testing.T) {
	emp := testEmployee(t, employee.Admin, nil)

	token, err := NewTokenIssuer("secret-one").Issue(emp)
	require.NoError(t, err)

	_, err = NewTokenIssuer("secret-two").parseActor(token)
	assert.Error(t, err)
}

func TestTokenIssuer_RejectsGarbage(t *testing.T) {
	_, err := NewTokenIssuer("test-secret").parseActor("not-a-token")
	assert.Error(t, err)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	issuer := NewTokenIssuer("test-secret")
	handler := issuer.AuthMiddleware(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	err := handler(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestAuthMiddleware_StoresActor(t *testing.T) {
	issuer := NewTokenIssuer("test-secret")
	emp := testEmployee(t, employee.ChinaWorker, nil)
	token, err := issuer.Issue(emp)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := issuer.AuthMiddleware(func(c echo.Context) error {
		actor, err := actorFromContext(c)
		require.NoError(t, err)
		assert.Equal(t, employee.ChinaWorker, actor.Role())
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAdmin_RejectsWorker(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	actor, err := employee.NewActor(kernel.NewUUID(), employee.ChinaWorker, nil)
	require.NoError(t, err)
	c.Set(actorContextKey, actor)

	handler := RequireAdmin(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	err = handler(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusForbidden, httpErr.Code)
}
