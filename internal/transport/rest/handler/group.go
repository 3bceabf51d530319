package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"ternakku/internal/model"
	"ternakku/internal/service"
)

// GroupHandler handles farmer group endpoints
type GroupHandler struct {
	groupSvc *service.GroupService
	validate *validator.Validate
}

// NewGroupHandler creates a new group handler
func NewGroupHandler(groupSvc *service.GroupService) *GroupHandler {
	return &GroupHandler{
		groupSvc: groupSvc,
		validate: validator.New(),
	}
}

// GroupRequest is the request body for creating or updating a group
type GroupRequest struct {
	Name      string   `json:"name" validate:"required,min=3"`
	Village   string   `json:"village"`
	OfficerID string   `json:"officerId"`
	MemberIDs []string `json:"memberIds"`
}

// Create handles POST /v1/groups
func (h *GroupHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req GroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	group := &model.Group{
		Name:      req.Name,
		Village:   req.Village,
		OfficerID: req.OfficerID,
		MemberIDs: req.MemberIDs,
	}

	id, err := h.groupSvc.Create(r.Context(), group)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"groupId": id})
}

// List handles GET /v1/groups
func (h *GroupHandler) List(w http.ResponseWriter, r *http.Request) {
	groups, err := h.groupSvc.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"groups": groups})
}

// Get handles GET /v1/groups/{groupId}
func (h *GroupHandler) Get(w http.ResponseWriter, r *http.Request) {
	groupID := mux.Vars(r)["groupId"]

	group, err := h.groupSvc.GetByID(r.Context(), groupID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if group == nil {
		writeError(w, http.StatusNotFound, "group not found")
		return
	}
	writeJSON(w, http.StatusOK, group)
}

// Members handles GET /v1/groups/{groupId}/members
func (h *GroupHandler) Members(w http.ResponseWriter, r *http.Request) {
	groupID := mux.Vars(r)["groupId"]

	members, err := h.groupSvc.Members(r.Context(), groupID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"members": members})
}

// Update handles PUT /v1/groups/{groupId}
func (h *GroupHandler) Update(w http.ResponseWriter, r *http.Request) {
	groupID := mux.Vars(r)["groupId"]

	var req GroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	group := &model.Group{
		ID:        groupID,
		Name:      req.Name,
		Village:   req.Village,
		OfficerID: req.OfficerID,
		MemberIDs: req.MemberIDs,
	}

	if err := h.groupSvc.Update(r.Context(), group); err != nil {
		if errors.Is(err, service.ErrGroupNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, group)
}

// Delete handles DELETE /v1/groups/{groupId}
func (h *GroupHandler) Delete(w http.ResponseWriter, r *http.Request) {
	groupID := mux.Vars(r)["groupId"]

	if err := h.groupSvc.Delete(r.Context(), groupID); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
