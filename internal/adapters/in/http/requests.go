package http

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// RequestValidator adapts go-playground/validator to echo's Validator hook.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates the request validator wired into echo.
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate implements echo.Validator.
func (v *RequestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

type loginRequest struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type createOrderRequest struct {
	TrackNumber string  `json:"track_number" validate:"required"`
	BranchID    *string `json:"branch_id" validate:"omitempty,uuid"`
	ClientID    *int64  `json:"client_id"`
}

type changeStatusRequest struct {
	Status   string  `json:"status" validate:"required"`
	Note     string  `json:"note"`
	BranchID *string `json:"branch_id" validate:"omitempty,uuid"`
}

type createBranchRequest struct {
	Name    string `json:"name" validate:"required"`
	City    string `json:"city" validate:"required"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Code    string `json:"code" validate:"required"`
}

type createEmployeeRequest struct {
	Name     string  `json:"name" validate:"required"`
	Login    string  `json:"login" validate:"required"`
	Password string  `json:"password" validate:"required,min=8,max=72"`
	Role     string  `json:"role" validate:"required,oneof=admin china_worker branch_worker"`
	BranchID *string `json:"branch_id" validate:"omitempty,uuid"`
}
