package http

import (
	"time"

	"cargotrack/internal/core/application/usecases/queries"
	"cargotrack/internal/core/domain/model/order"
)

type orderSummaryResponse struct {
	ID                string  `json:"id"`
	TrackNumber       string  `json:"track_number"`
	Status            string  `json:"status"`
	StatusDisplayName string  `json:"status_display_name"`
	BranchID          *string `json:"branch_id,omitempty"`
	BranchName        string  `json:"branch_name,omitempty"`
	ClientID          *int64  `json:"client_id,omitempty"`
	Version           int     `json:"version"`
	CreatedAt         string  `json:"created_at"`
	UpdatedAt         string  `json:"updated_at"`
}

type historyEntryResponse struct {
	Status            string `json:"status"`
	StatusDisplayName string `json:"status_display_name"`
	ChangedBy         string `json:"changed_by"`
	ChangedByName     string `json:"changed_by_name,omitempty"`
	Note              string `json:"note,omitempty"`
	ChangedAt         string `json:"changed_at"`
}

type orderDetailResponse struct {
	orderSummaryResponse
	CreatedBy *string                `json:"created_by,omitempty"`
	History   []historyEntryResponse `json:"history"`
}

type availableActionsResponse struct {
	CurrentStatus     string           `json:"current_status"`
	StatusDisplayName string           `json:"status_display_name"`
	Actions           []actionResponse `json:"actions"`
	CanFlagProblem    bool             `json:"can_flag_problem"`
}

type actionResponse struct {
	Status            string `json:"status"`
	StatusDisplayName string `json:"status_display_name"`
}

type branchResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Code    string `json:"code"`
}

type employeeResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Login      string  `json:"login"`
	Role       string  `json:"role"`
	BranchID   *string `json:"branch_id,omitempty"`
	BranchName string  `json:"branch_name,omitempty"`
}

type statisticsResponse struct {
	Total    int64                 `json:"total"`
	ByStatus []statusCountResponse `json:"by_status"`
	ByBranch []branchCountResponse `json:"by_branch"`
}

type statusCountResponse struct {
	Status            string `json:"status"`
	StatusDisplayName string `json:"status_display_name"`
	Count             int64  `json:"count"`
}

type branchCountResponse struct {
	BranchID   string `json:"branch_id"`
	BranchName string `json:"branch_name"`
	Count      int64  `json:"count"`
}

type stuckOrderResponse struct {
	orderSummaryResponse
	StuckForHours float64 `json:"stuck_for_hours"`
}

type loginResponse struct {
	Token    string           `json:"token"`
	Employee employeeResponse `json:"employee"`
}

type createdOrderResponse struct {
	ID          string `json:"id"`
	TrackNumber string `json:"track_number"`
	Status      string `json:"status"`
	Version     int    `json:"version"`
}

func toOrderSummaryResponse(summary queries.OrderSummary) orderSummaryResponse {
	resp := orderSummaryResponse{
		ID:                summary.ID.String(),
		TrackNumber:       summary.TrackNumber,
		Status:            summary.Status.String(),
		StatusDisplayName: summary.StatusDisplayName,
		BranchName:        summary.BranchName,
		ClientID:          summary.ClientID,
		Version:           summary.Version,
		CreatedAt:         summary.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:         summary.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if summary.BranchID != nil {
		id := summary.BranchID.String()
		resp.BranchID = &id
	}
	return resp
}

func toOrderDetailResponse(detail queries.OrderDetail) orderDetailResponse {
	resp := orderDetailResponse{
		orderSummaryResponse: toOrderSummaryResponse(detail.OrderSummary),
		History:              make([]historyEntryResponse, 0, len(detail.History)),
	}
	if detail.CreatedBy != nil {
		id := detail.CreatedBy.String()
		resp.CreatedBy = &id
	}
	for _, entry := range detail.History {
		resp.History = append(resp.History, historyEntryResponse{
			Status:            entry.Status.String(),
			StatusDisplayName: entry.StatusDisplayName,
			ChangedBy:         entry.ChangedBy.String(),
			ChangedByName:     entry.ChangedByName,
			Note:              entry.Note,
			ChangedAt:         entry.ChangedAt.UTC().Format(time.RFC3339),
		})
	}
	return resp
}

func toCreatedOrderResponse(ord *order.Order) createdOrderResponse {
	return createdOrderResponse{
		ID:          ord.ID().String(),
		TrackNumber: ord.TrackNumber().String(),
		Status:      ord.Status().String(),
		Version:     ord.Version(),
	}
}
