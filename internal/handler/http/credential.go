package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tapatrack/tapatrack-backend-go/internal/domain/credential"
	"github.com/tapatrack/tapatrack-backend-go/internal/handler/http/middleware"
	"github.com/tapatrack/tapatrack-backend-go/internal/handler/http/response"
)

type CredentialHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Deactivate(w http.ResponseWriter, r *http.Request)
	Activate(w http.ResponseWriter, r *http.Request)
}

type credentialHandlerImpl struct {
	credentialService credential.CredentialService
}

func NewCredentialHandler(credentialService credential.CredentialService) CredentialHandler {
	return &credentialHandlerImpl{
		credentialService: credentialService,
	}
}

// Get implements CredentialHandler.
func (h *credentialHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.credentialService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Deactivate implements CredentialHandler.
func (h *credentialHandlerImpl) Deactivate(w http.ResponseWriter, r *http.Request) {
	var req credential.DeactivateCredentialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = chi.URLParam(r, "id")
	req.AdminID = middleware.AdminID(r)

	result, err := h.credentialService.Deactivate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Credential deactivated", result)
}

// Activate implements CredentialHandler.
func (h *credentialHandlerImpl) Activate(w http.ResponseWriter, r *http.Request) {
	result, err := h.credentialService.Activate(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Credential activated", result)
}
