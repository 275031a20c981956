// Package http is the inbound HTTP adapter. It translates echo requests
// into commands and queries and maps domain errors to status codes.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"cargotrack/internal/core/application/usecases/commands"
	"cargotrack/internal/core/application/usecases/queries"
	"cargotrack/internal/core/domain/model/employee"
	"cargotrack/internal/core/domain/model/kernel"
	"cargotrack/internal/core/domain/model/order"
	"cargotrack/internal/core/ports"
	"cargotrack/internal/pkg/errs"
)

const defaultStuckThreshold = 48 * time.Hour

// Handlers bundle the use case handlers the server exposes.
type Handlers struct {
	CreateOrder       commands.CreateOrderCommandHandler
	ChangeOrderStatus commands.ChangeOrderStatusCommandHandler
	CreateBranch      commands.CreateBranchCommandHandler
	RegisterEmployee  commands.RegisterEmployeeCommandHandler

	GetOrders           queries.GetOrdersQueryHandler
	GetOrderByTrack     queries.GetOrderByTrackNumberQueryHandler
	GetAvailableActions queries.GetAvailableActionsQueryHandler
	GetBranches         queries.GetBranchesQueryHandler
	GetEmployees        queries.GetEmployeesQueryHandler
	GetOrderStatistics  queries.GetOrderStatisticsQueryHandler
	GetStuckOrders      queries.GetStuckOrdersQueryHandler
}

// Server wires the use case handlers to HTTP routes.
type Server struct {
	tokenIssuer TokenIssuer
	employees   ports.EmployeeRepository
	handlers    Handlers
}

// NewServer creates the HTTP server facade.
func NewServer(tokenIssuer TokenIssuer, employees ports.EmployeeRepository, handlers Handlers) *Server {
	return &Server{
		tokenIssuer: tokenIssuer,
		employees:   employees,
		handlers:    handlers,
	}
}

// RegisterRoutes mounts all routes on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.health)

	api := e.Group("/api/v1")
	api.POST("/auth/login", s.login)

	authed := api.Group("", s.tokenIssuer.AuthMiddleware)
	authed.GET("/orders", s.listOrders)
	authed.POST("/orders", s.createOrder)
	authed.GET("/orders/stuck", s.listStuckOrders)
	authed.GET("/orders/track/:trackNumber", s.getOrderByTrackNumber)
	authed.POST("/orders/:id/status", s.changeOrderStatus)
	authed.GET("/orders/:id/actions", s.getAvailableActions)
	authed.GET("/branches", s.listBranches)
	authed.GET("/stats", s.getStatistics)

	admin := authed.Group("", RequireAdmin)
	admin.POST("/branches", s.createBranch)
	admin.GET("/employees", s.listEmployees)
	admin.POST("/employees", s.registerEmployee)
}

func (s *Server) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	emp, err := s.employees.GetByLogin(c.Request().Context(), req.Login)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid login or password")
		}
		return writeDomainError(c, err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash()), []byte(req.Password)); err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid login or password")
	}

	token, err := s.tokenIssuer.Issue(emp)
	if err != nil {
		return writeDomainError(c, err)
	}

	return c.JSON(http.StatusOK, loginResponse{
		Token:    token,
		Employee: toEmployeeResponse(emp),
	})
}

func (s *Server) createOrder(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	var req createOrderRequest
	if err = c.Bind(&req); err != nil {
		return err
	}
	if err = c.Validate(&req); err != nil {
		return err
	}

	branchID, err := optionalUUID(req.BranchID)
	if err != nil {
		return writeDomainError(c, err)
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), req.TrackNumber, branchID, req.ClientID, actor)
	if err != nil {
		return writeDomainError(c, err)
	}

	created, err := s.handlers.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeDomainError(c, err)
	}

	return c.JSON(http.StatusCreated, toCreatedOrderResponse(created))
}

func (s *Server) listOrders(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	var statusFilter *order.Status
	if raw := c.QueryParam("status"); raw != "" {
		status := order.Status(raw)
		statusFilter = &status
	}

	limit, err := intQueryParam(c, "limit", 0)
	if err != nil {
		return err
	}
	offset, err := intQueryParam(c, "offset", 0)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrdersQuery(actor, statusFilter, c.QueryParam("search"), limit, offset)
	if err != nil {
		return writeDomainError(c, err)
	}

	summaries, err := s.handlers.GetOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return writeDomainError(c, err)
	}

	resp := make([]orderSummaryResponse, 0, len(summaries))
	for _, summary := range summaries {
		resp = append(resp, toOrderSummaryResponse(summary))
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *Server) getOrderByTrackNumber(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderByTrackNumberQuery(actor, c.Param("trackNumber"))
	if err != nil {
		return writeDomainError(c, err)
	}

	detail, err := s.handlers.GetOrderByTrack.Handle(c.Request().Context(), query)
	if err != nil {
		return writeDomainError(c, err)
	}

	return c.JSON(http.StatusOK, toOrderDetailResponse(detail))
}

func (s *Server) changeOrderStatus(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return writeDomainError(c, err)
	}

	var req changeStatusRequest
	if err = c.Bind(&req); err != nil {
		return err
	}
	if err = c.Validate(&req); err != nil {
		return err
	}

	branchID, err := optionalUUID(req.BranchID)
	if err != nil {
		return writeDomainError(c, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, order.Status(req.Status), actor, req.Note, branchID)
	if err != nil {
		return writeDomainError(c, err)
	}

	updated, err := s.handlers.ChangeOrderStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeDomainError(c, err)
	}

	return c.JSON(http.StatusOK, toCreatedOrderResponse(updated))
}

func (s *Server) getAvailableActions(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return writeDomainError(c, err)
	}

	query, err := queries.NewGetAvailableActionsQuery(actor, orderID)
	if err != nil {
		return writeDomainError(c, err)
	}

	actions, err := s.handlers.GetAvailableActions.Handle(c.Request().Context(), query)
	if err != nil {
		return writeDomainError(c, err)
	}

	resp := availableActionsResponse{
		CurrentStatus:     actions.CurrentStatus.String(),
		StatusDisplayName: actions.StatusDisplayName,
		Actions:           make([]actionResponse, 0, len(actions.Actions)),
		CanFlagProblem:    actions.CanFlagProblem,
	}
	for _, action := range actions.Actions {
		resp.Actions = append(resp.Actions, actionResponse{
			Status:            action.Status.String(),
			StatusDisplayName: action.StatusDisplayName,
		})
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *Server) listBranches(c echo.Context) error {
	rows, err := s.handlers.GetBranches.Handle(c.Request().Context(), queries.NewGetBranchesQuery())
	if err != nil {
		return writeDomainError(c, err)
	}

	resp := make([]branchResponse, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, branchResponse{
			ID:      row.ID.String(),
			Name:    row.Name,
			City:    row.City,
			Address: row.Address,
			Phone:   row.Phone,
			Code:    row.Code,
		})
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *Server) createBranch(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	var req createBranchRequest
	if err = c.Bind(&req); err != nil {
		return err
	}
	if err = c.Validate(&req); err != nil {
		return err
	}

	cmd, err := commands.NewCreateBranchCommand(kernel.NewUUID(), req.Name, req.City, req.Address, req.Phone, req.Code, actor)
	if err != nil {
		return writeDomainError(c, err)
	}

	created, err := s.handlers.CreateBranch.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeDomainError(c, err)
	}

	return c.JSON(http.StatusCreated, branchResponse{
		ID:      created.ID().String(),
		Name:    created.Name(),
		City:    created.City(),
		Address: created.Address(),
		Phone:   created.Phone(),
		Code:    created.Code(),
	})
}

func (s *Server) listEmployees(c echo.Context) error {
	rows, err := s.handlers.GetEmployees.Handle(c.Request().Context(), queries.NewGetEmployeesQuery())
	if err != nil {
		return writeDomainError(c, err)
	}

	resp := make([]employeeResponse, 0, len(rows))
	for _, row := range rows {
		item := employeeResponse{
			ID:         row.ID.String(),
			Name:       row.Name,
			Login:      row.Login,
			Role:       string(row.Role),
			BranchName: row.BranchName,
		}
		if row.BranchID != nil {
			id := row.BranchID.String()
			item.BranchID = &id
		}
		resp = append(resp, item)
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *Server) registerEmployee(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	var req createEmployeeRequest
	if err = c.Bind(&req); err != nil {
		return err
	}
	if err = c.Validate(&req); err != nil {
		return err
	}

	branchID, err := optionalUUID(req.BranchID)
	if err != nil {
		return writeDomainError(c, err)
	}

	cmd, err := commands.NewRegisterEmployeeCommand(
		kernel.NewUUID(), req.Name, req.Login, req.Password, employee.Role(req.Role), branchID, actor)
	if err != nil {
		return writeDomainError(c, err)
	}

	created, err := s.handlers.RegisterEmployee.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeDomainError(c, err)
	}

	return c.JSON(http.StatusCreated, toEmployeeResponse(created))
}

func (s *Server) getStatistics(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderStatisticsQuery(actor)
	if err != nil {
		return writeDomainError(c, err)
	}

	stats, err := s.handlers.GetOrderStatistics.Handle(c.Request().Context(), query)
	if err != nil {
		return writeDomainError(c, err)
	}

	resp := statisticsResponse{
		Total:    stats.Total,
		ByStatus: make([]statusCountResponse, 0, len(stats.ByStatus)),
		ByBranch: make([]branchCountResponse, 0, len(stats.ByBranch)),
	}
	for _, count := range stats.ByStatus {
		resp.ByStatus = append(resp.ByStatus, statusCountResponse{
			Status:            count.Status.String(),
			StatusDisplayName: count.StatusDisplayName,
			Count:             count.Count,
		})
	}
	for _, count := range stats.ByBranch {
		resp.ByBranch = append(resp.ByBranch, branchCountResponse{
			BranchID:   count.BranchID.String(),
			BranchName: count.BranchName,
			Count:      count.Count,
		})
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *Server) listStuckOrders(c echo.Context) error {
	if _, err := actorFromContext(c); err != nil {
		return err
	}

	threshold := defaultStuckThreshold
	if raw := c.QueryParam("threshold_hours"); raw != "" {
		hours, err := strconv.Atoi(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "threshold_hours must be an integer")
		}
		threshold = time.Duration(hours) * time.Hour
	}

	query, err := queries.NewGetStuckOrdersQuery(threshold)
	if err != nil {
		return writeDomainError(c, err)
	}

	stuck, err := s.handlers.GetStuckOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return writeDomainError(c, err)
	}

	resp := make([]stuckOrderResponse, 0, len(stuck))
	for _, row := range stuck {
		resp = append(resp, stuckOrderResponse{
			orderSummaryResponse: toOrderSummaryResponse(row.OrderSummary),
			StuckForHours:        row.StuckFor.Hours(),
		})
	}
	return c.JSON(http.StatusOK, resp)
}

func toEmployeeResponse(emp *employee.Employee) employeeResponse {
	resp := employeeResponse{
		ID:    emp.ID().String(),
		Name:  emp.Name(),
		Login: emp.Login(),
		Role:  string(emp.Role()),
	}
	if emp.BranchID() != nil {
		id := emp.BranchID().String()
		resp.BranchID = &id
	}
	return resp
}

func optionalUUID(raw *string) (*kernel.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	id, err := kernel.UUIDFromString(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func intQueryParam(c echo.Context, name string, fallback int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" must be an integer")
	}
	return value, nil
}
