package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/verlof-hq/leave-backend-go/internal/domain/leave"
	"github.com/verlof-hq/leave-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
	ListByManager(w http.ResponseWriter, r *http.Request)
	GetBalance(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

// Create implements LeaveHandler.
func (h *LeaveHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq leave.CreateLeaveRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateLeave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	createResp, err := h.leaveService.CreateLeave(r.Context(), createReq)
	if err != nil {
		slog.Error("CreateLeave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request created", createResp)
}

// UpdateStatus implements LeaveHandler.
func (h *LeaveHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	leaveID := chi.URLParam(r, "leaveId")

	var updateReq leave.UpdateLeaveStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateLeaveStatus decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.leaveService.UpdateLeaveStatus(r.Context(), leaveID, updateReq)
	if err != nil {
		slog.Error("UpdateLeaveStatus service error", "error", err, "leave_id", leaveID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave status updated", updated)
}

// Delete implements LeaveHandler.
func (h *LeaveHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	leaveID := chi.URLParam(r, "leaveId")

	var deleteReq leave.DeleteLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&deleteReq); err != nil {
		slog.Error("DeleteLeave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := deleteReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.leaveService.DeleteLeave(r.Context(), leaveID, deleteReq.EmployeeID); err != nil {
		slog.Error("DeleteLeave service error", "error", err, "leave_id", leaveID)
		response.HandleError(w, err)
		return
	}

	response.NoContent(w)
}

// ListByEmployee implements LeaveHandler.
func (h *LeaveHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")

	leaves, err := h.leaveService.ListEmployeeLeaves(r.Context(), employeeID)
	if err != nil {
		slog.Error("ListEmployeeLeaves service error", "error", err, "employee_id", employeeID)
		response.HandleError(w, err)
		return
	}

	response.Success(w, leaves)
}

// ListByManager implements LeaveHandler.
func (h *LeaveHandlerImpl) ListByManager(w http.ResponseWriter, r *http.Request) {
	managerID := chi.URLParam(r, "managerId")

	leaves, err := h.leaveService.ListManagerLeaves(r.Context(), managerID)
	if err != nil {
		slog.Error("ListManagerLeaves service error", "error", err, "manager_id", managerID)
		response.HandleError(w, err)
		return
	}

	response.Success(w, leaves)
}

// GetBalance implements LeaveHandler. The year query parameter defaults to the
// current year.
func (h *LeaveHandlerImpl) GetBalance(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")

	year := time.Now().UTC().Year()
	if yearParam := r.URL.Query().Get("year"); yearParam != "" {
		parsed, err := strconv.Atoi(yearParam)
		if err != nil {
			response.BadRequest(w, "year must be a number", nil)
			return
		}
		year = parsed
	}

	balance, err := h.leaveService.GetBalance(r.Context(), employeeID, year)
	if err != nil {
		slog.Error("GetBalance service error", "error", err, "employee_id", employeeID, "year", year)
		response.HandleError(w, err)
		return
	}

	response.Success(w, balance)
}
