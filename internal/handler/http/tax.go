package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hriscore/payroll-engine-go/internal/domain/tax"
	"github.com/hriscore/payroll-engine-go/internal/handler/http/response"
)

type TaxHandler interface {
	ListFilingStatuses(w http.ResponseWriter, r *http.Request)
	GetFilingStatus(w http.ResponseWriter, r *http.Request)
	ReplaceBrackets(w http.ResponseWriter, r *http.Request)
}

type taxHandlerImpl struct {
	taxService tax.TaxService
}

func NewTaxHandler(taxService tax.TaxService) TaxHandler {
	return &taxHandlerImpl{taxService: taxService}
}

func (h *taxHandlerImpl) ListFilingStatuses(w http.ResponseWriter, r *http.Request) {
	result, err := h.taxService.ListFilingStatuses(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *taxHandlerImpl) GetFilingStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Filing status ID is required", nil)
		return
	}

	result, err := h.taxService.GetFilingStatus(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *taxHandlerImpl) ReplaceBrackets(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Filing status ID is required", nil)
		return
	}

	var req tax.ReplaceBracketsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.FilingStatusID = id

	result, err := h.taxService.ReplaceBrackets(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
