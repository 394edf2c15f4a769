package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/shiftwise-hr/attendance-backend-go/internal/domain/shiftplan"
	"github.com/shiftwise-hr/attendance-backend-go/internal/handler/http/response"
)

type ShiftPlanHandler interface {
	ImportSheet(w http.ResponseWriter, r *http.Request)
	GetCalendar(w http.ResponseWriter, r *http.Request)
}

type shiftPlanHandlerImpl struct {
	shiftPlanService shiftplan.ShiftPlanService
}

func NewShiftPlanHandler(shiftPlanService shiftplan.ShiftPlanService) ShiftPlanHandler {
	return &shiftPlanHandlerImpl{
		shiftPlanService: shiftPlanService,
	}
}

// ImportSheet implements ShiftPlanHandler.
func (h *shiftPlanHandlerImpl) ImportSheet(w http.ResponseWriter, r *http.Request) {
	var req shiftplan.ImportSheetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.shiftPlanService.ImportSheet(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Sheet imported", result)
}

// GetCalendar implements ShiftPlanHandler.
func (h *shiftPlanHandlerImpl) GetCalendar(w http.ResponseWriter, r *http.Request) {
	year, _ := strconv.Atoi(r.URL.Query().Get("year"))
	month, _ := strconv.Atoi(r.URL.Query().Get("month"))
	if year < 2000 || year > 2100 || month < 1 || month > 12 {
		response.BadRequest(w, "year and month query parameters are required", nil)
		return
	}

	cal, err := h.shiftPlanService.GetCalendar(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	// Map keys flatten to a list for JSON.
	type entry struct {
		Name       string               `json:"name"`
		Date       string               `json:"date"`
		Assignment shiftplan.Assignment `json:"assignment"`
	}
	entries := make([]entry, 0, len(cal))
	for key, a := range cal {
		entries = append(entries, entry{Name: key.Name, Date: key.Date, Assignment: a})
	}

	response.Success(w, entries)
}
