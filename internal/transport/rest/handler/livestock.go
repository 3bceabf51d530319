package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"ternakku/internal/model"
	"ternakku/internal/service"
	"ternakku/internal/transport/rest/middleware"
)

// LivestockHandler handles livestock record endpoints
type LivestockHandler struct {
	livestockSvc *service.LivestockService
	validate     *validator.Validate
}

// NewLivestockHandler creates a new livestock handler
func NewLivestockHandler(livestockSvc *service.LivestockService) *LivestockHandler {
	return &LivestockHandler{
		livestockSvc: livestockSvc,
		validate:     validator.New(),
	}
}

// LivestockRequest is the request body for creating or updating a livestock record
type LivestockRequest struct {
	Kind      string `json:"kind" validate:"required"`
	Count     int    `json:"count" validate:"required,min=1"`
	Condition string `json:"condition"`
	Notes     string `json:"notes"`
}

// Create handles POST /v1/livestock
func (h *LivestockHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		writeError(w, http.StatusUnauthorized, "missing claims")
		return
	}

	var req LivestockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	rec := &model.Livestock{
		OwnerID:   claims.UserID,
		GroupID:   claims.GroupID,
		Kind:      req.Kind,
		Count:     req.Count,
		Condition: req.Condition,
		Notes:     req.Notes,
	}

	id, err := h.livestockSvc.Create(r.Context(), rec)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"livestockId": id})
}

// List handles GET /v1/livestock. Farmers see their own records,
// officers and admins see a group via ?groupId=.
func (h *LivestockHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		writeError(w, http.StatusUnauthorized, "missing claims")
		return
	}

	var (
		records []model.Livestock
		err     error
	)
	if claims.Role == model.RolePeternak {
		records, err = h.livestockSvc.ListByOwner(r.Context(), claims.UserID)
	} else if groupID := r.URL.Query().Get("groupId"); groupID != "" {
		records, err = h.livestockSvc.ListByGroup(r.Context(), groupID)
	} else {
		writeError(w, http.StatusBadRequest, "groupId query param required")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"records": records})
}

// Get handles GET /v1/livestock/{livestockId}
func (h *LivestockHandler) Get(w http.ResponseWriter, r *http.Request) {
	livestockID := mux.Vars(r)["livestockId"]

	rec, err := h.livestockSvc.GetByID(r.Context(), livestockID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if rec == nil {
		writeError(w, http.StatusNotFound, "livestock record not found")
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// Update handles PUT /v1/livestock/{livestockId}
func (h *LivestockHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		writeError(w, http.StatusUnauthorized, "missing claims")
		return
	}

	var req LivestockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	rec := &model.Livestock{
		ID:        mux.Vars(r)["livestockId"],
		Kind:      req.Kind,
		Count:     req.Count,
		Condition: req.Condition,
		Notes:     req.Notes,
	}

	if err := h.livestockSvc.Update(r.Context(), rec, callerID(claims)); err != nil {
		switch {
		case errors.Is(err, service.ErrLivestockNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrNotRecordOwner):
			writeError(w, http.StatusForbidden, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// Delete handles DELETE /v1/livestock/{livestockId}
func (h *LivestockHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		writeError(w, http.StatusUnauthorized, "missing claims")
		return
	}

	if err := h.livestockSvc.Delete(r.Context(), mux.Vars(r)["livestockId"], callerID(claims)); err != nil {
		switch {
		case errors.Is(err, service.ErrLivestockNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrNotRecordOwner):
			writeError(w, http.StatusForbidden, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// callerID returns the id used for the ownership check. Admins and
// officers bypass it.
func callerID(claims *model.UserClaims) string {
	if claims.Role == model.RolePeternak {
		return claims.UserID
	}
	return ""
}
