package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/bayanihr/payroll-backend-go/internal/domain/employee"
	"github.com/bayanihr/payroll-backend-go/internal/domain/payroll"
	"github.com/bayanihr/payroll-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PayrollHandler interface {
	Compute(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	MarkPaid(w http.ResponseWriter, r *http.Request)
	Periods(w http.ResponseWriter, r *http.Request)
	Payslip(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{
		payrollService: payrollService,
	}
}

// Compute implements PayrollHandler. Admins may compute for any employee;
// everyone else only for themselves.
func (h *payrollHandlerImpl) Compute(w http.ResponseWriter, r *http.Request) {
	callerID, role, err := claimsFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req payroll.ComputePayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if role != employee.RoleAdmin && req.EmployeeID != callerID {
		response.HandleError(w, employee.ErrUnauthorized)
		return
	}

	period, err := req.Period()
	if err != nil {
		response.BadRequest(w, "Invalid period dates", nil)
		return
	}

	item, err := h.payrollService.ComputeOrFetch(r.Context(), req.EmployeeID, period)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, item)
}

// Get implements PayrollHandler.
func (h *payrollHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	callerID, role, err := claimsFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	item, err := h.payrollService.GetItem(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if role != employee.RoleAdmin && item.EmployeeID != callerID {
		response.HandleError(w, employee.ErrUnauthorized)
		return
	}

	response.Success(w, item)
}

// ListMine implements PayrollHandler.
func (h *payrollHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	employeeID, _, err := claimsFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	items, err := h.payrollService.ListItems(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, items)
}

// MarkPaid implements PayrollHandler.
func (h *payrollHandlerImpl) MarkPaid(w http.ResponseWriter, r *http.Request) {
	item, err := h.payrollService.MarkPaid(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll item marked as paid", item)
}

// Periods implements PayrollHandler. Optional query parameter months controls
// how far back the listing goes (default 3).
func (h *payrollHandlerImpl) Periods(w http.ResponseWriter, r *http.Request) {
	months := 3
	if raw := r.URL.Query().Get("months"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 24 {
			response.BadRequest(w, "months must be an integer between 1 and 24", nil)
			return
		}
		months = parsed
	}

	periods := h.payrollService.RecentPeriods(r.Context(), time.Now(), months)
	response.Success(w, periods)
}

// Payslip implements PayrollHandler.
func (h *payrollHandlerImpl) Payslip(w http.ResponseWriter, r *http.Request) {
	callerID, role, err := claimsFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id := chi.URLParam(r, "id")

	item, err := h.payrollService.GetItem(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if role != employee.RoleAdmin && item.EmployeeID != callerID {
		response.HandleError(w, employee.ErrUnauthorized)
		return
	}

	pdf, err := h.payrollService.PayslipPDF(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="payslip-%s.pdf"`, id))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}
