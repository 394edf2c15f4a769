package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/shiftwise-hr/attendance-backend-go/internal/domain/payroll"
	"github.com/shiftwise-hr/attendance-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	MonthlySummary(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{
		payrollService: payrollService,
	}
}

// MonthlySummary implements PayrollHandler. Holidays arrive as a
// comma-separated list of day numbers, e.g. ?holidays=3,15.
func (h *payrollHandlerImpl) MonthlySummary(w http.ResponseWriter, r *http.Request) {
	req := payroll.SummaryRequest{
		EmployeeID: chi.URLParam(r, "employeeID"),
	}
	req.Year, _ = strconv.Atoi(r.URL.Query().Get("year"))
	req.Month, _ = strconv.Atoi(r.URL.Query().Get("month"))

	if raw := r.URL.Query().Get("holidays"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			day, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				response.BadRequest(w, "holidays must be a comma-separated list of day numbers", nil)
				return
			}
			req.Holidays = append(req.Holidays, day)
		}
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.payrollService.MonthlySummary(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
