package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"ternakku/internal/model"
	"ternakku/internal/repository"
	"ternakku/internal/service"
	"ternakku/internal/transport/rest/middleware"
)

// SubmissionHandler handles questionnaire submission endpoints
type SubmissionHandler struct {
	submissionSvc *service.SubmissionService
	validate      *validator.Validate
}

// NewSubmissionHandler creates a new submission handler
func NewSubmissionHandler(submissionSvc *service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{
		submissionSvc: submissionSvc,
		validate:      validator.New(),
	}
}

// SubmissionRequest is the request body for submitting a filled
// questionnaire. New clients always send the object answer form; the
// numeric-array form only exists in old stored records.
type SubmissionRequest struct {
	Period  string              `json:"period" validate:"required,oneof=first-half second-half"`
	Year    int                 `json:"year"`
	Answers []model.AnswerEntry `json:"answers" validate:"required,min=1,dive"`
}

// Create handles POST /v1/submissions
func (h *SubmissionHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		writeError(w, http.StatusUnauthorized, "missing claims")
		return
	}

	var req SubmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sub := &model.Submission{
		RespondentID:   claims.UserID,
		RespondentName: claims.Name,
		GroupID:        claims.GroupID,
		Period:         req.Period,
		Year:           req.Year,
		Answers:        req.Answers,
	}

	id, err := h.submissionSvc.Create(r.Context(), sub)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateSubmission) {
			writeError(w, http.StatusConflict, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"submissionId": id})
}

// List handles GET /v1/submissions. Farmers are pinned to their own
// records; officers and admins can filter by groupId and year.
func (h *SubmissionHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		writeError(w, http.StatusUnauthorized, "missing claims")
		return
	}

	filter := repository.SubmissionFilter{
		GroupID: r.URL.Query().Get("groupId"),
	}
	if claims.Role == model.RolePeternak {
		filter.RespondentID = claims.UserID
		filter.GroupID = ""
	}
	if raw := r.URL.Query().Get("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid year")
			return
		}
		filter.Year = year
	}

	subs, err := h.submissionSvc.List(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"submissions": subs})
}

// Get handles GET /v1/submissions/{submissionId}
func (h *SubmissionHandler) Get(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		writeError(w, http.StatusUnauthorized, "missing claims")
		return
	}

	sub, err := h.submissionSvc.GetByID(r.Context(), mux.Vars(r)["submissionId"])
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if sub == nil {
		writeError(w, http.StatusNotFound, "submission not found")
		return
	}
	if claims.Role == model.RolePeternak && sub.RespondentID != claims.UserID {
		writeError(w, http.StatusForbidden, "not your submission")
		return
	}
	writeJSON(w, http.StatusOK, sub)
}
