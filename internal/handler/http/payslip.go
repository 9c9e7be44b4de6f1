package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/hriscore/payroll-engine-go/internal/domain/payslip"
	"github.com/hriscore/payroll-engine-go/internal/handler/http/response"
)

type PayslipHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type payslipHandlerImpl struct {
	payslipService payslip.PayslipService
}

func NewPayslipHandler(payslipService payslip.PayslipService) PayslipHandler {
	return &payslipHandlerImpl{payslipService: payslipService}
}

func (h *payslipHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	var req payslip.GeneratePayslipsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payslipService.GeneratePayslips(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payslips generated", result)
}

func (h *payslipHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payslip ID is required", nil)
		return
	}

	result, err := h.payslipService.GetPayslip(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, payslip.ToResponse(result))
}

func (h *payslipHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := payslip.Filter{
		Page:  1,
		Limit: 20,
	}

	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		if page, err := strconv.Atoi(pageStr); err == nil && page > 0 {
			filter.Page = page
		}
	}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 {
			filter.Limit = limit
		}
	}
	if employeeID := r.URL.Query().Get("employee_id"); employeeID != "" {
		filter.EmployeeID = &employeeID
	}
	if startStr := r.URL.Query().Get("period_start"); startStr != "" {
		start, err := time.Parse("2006-01-02", startStr)
		if err != nil {
			response.BadRequest(w, "Invalid period_start", nil)
			return
		}
		filter.PeriodStart = &start
	}
	if endStr := r.URL.Query().Get("period_end"); endStr != "" {
		end, err := time.Parse("2006-01-02", endStr)
		if err != nil {
			response.BadRequest(w, "Invalid period_end", nil)
			return
		}
		filter.PeriodEnd = &end
	}

	results, total, err := h.payslipService.ListPayslips(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	items := make([]payslip.PayslipResponse, 0, len(results))
	for _, result := range results {
		items = append(items, payslip.ToResponse(result))
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))
	response.SuccessWithMeta(w, items, &response.Meta{
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: total,
		TotalPages: totalPages,
	})
}
