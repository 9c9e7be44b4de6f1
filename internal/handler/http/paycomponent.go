package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hriscore/payroll-engine-go/internal/domain/paycomponent"
	"github.com/hriscore/payroll-engine-go/internal/handler/http/response"
)

type PayComponentHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type payComponentHandlerImpl struct {
	catalogService paycomponent.CatalogService
}

func NewPayComponentHandler(catalogService paycomponent.CatalogService) PayComponentHandler {
	return &payComponentHandlerImpl{catalogService: catalogService}
}

func (h *payComponentHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req paycomponent.CreatePayComponentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.catalogService.CreateComponent(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Pay component created", result)
}

func (h *payComponentHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Component ID is required", nil)
		return
	}

	result, err := h.catalogService.GetComponent(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payComponentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	kind := paycomponent.Kind(r.URL.Query().Get("kind"))
	if kind != paycomponent.KindAllowance && kind != paycomponent.KindDeduction {
		response.BadRequest(w, "kind must be 'allowance' or 'deduction'", nil)
		return
	}

	result, err := h.catalogService.ListComponents(r.Context(), kind)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payComponentHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Component ID is required", nil)
		return
	}

	var req paycomponent.CreatePayComponentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.catalogService.UpdateComponent(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payComponentHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Component ID is required", nil)
		return
	}

	if err := h.catalogService.DeleteComponent(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Pay component deleted successfully", nil)
}
