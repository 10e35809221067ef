package http

import (
	"encoding/json"
	"net/http"

	"github.com/tapatrack/tapatrack-backend-go/internal/domain/policy"
	"github.com/tapatrack/tapatrack-backend-go/internal/handler/http/response"
)

type PolicyHandler interface {
	Save(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
}

type policyHandlerImpl struct {
	policyService policy.TimePolicyService
}

func NewPolicyHandler(policyService policy.TimePolicyService) PolicyHandler {
	return &policyHandlerImpl{
		policyService: policyService,
	}
}

// Save implements PolicyHandler.
func (h *policyHandlerImpl) Save(w http.ResponseWriter, r *http.Request) {
	var req policy.SaveTimePolicyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.policyService.Save(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Time policy saved", result)
}

// Get implements PolicyHandler.
func (h *policyHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.policyService.Get(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
