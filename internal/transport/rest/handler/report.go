package handler

import (
	"net/http"
	"strconv"
	"time"

	"ternakku/internal/model"
	"ternakku/internal/scoring"
	"ternakku/internal/service"
	"ternakku/internal/transport/rest/middleware"
)

// ReportHandler handles evaluation report and dashboard endpoints
type ReportHandler struct {
	reportSvc *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportSvc *service.ReportService) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc}
}

// Leaderboard handles GET /v1/reports/leaderboard?period=first-half&year=2025
func (h *ReportHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get("period")
	if period == "" {
		writeError(w, http.StatusBadRequest, "period query param required")
		return
	}

	year := time.Now().Year()
	if raw := r.URL.Query().Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid year")
			return
		}
		year = parsed
	}

	groups, err := h.reportSvc.GroupLeaderboard(r.Context(), period, year)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"year":   year,
		"groups": groups,
	})
}

// Top handles GET /v1/reports/leaderboard/top?period=first-half&year=2025&limit=5,
// the ranked short-form view served from the leaderboard ZSET.
func (h *ReportHandler) Top(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get("period")
	if period == "" {
		writeError(w, http.StatusBadRequest, "period query param required")
		return
	}

	year := time.Now().Year()
	if raw := r.URL.Query().Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid year")
			return
		}
		year = parsed
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}

	entries, err := h.reportSvc.TopGroups(r.Context(), period, year, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"year":    year,
		"entries": entries,
	})
}

// Dashboard handles GET /v1/reports/dashboard. Farmers get their own
// trend; officers and admins can inspect one via ?respondentId=.
func (h *ReportHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		writeError(w, http.StatusUnauthorized, "missing claims")
		return
	}

	respondentID := claims.UserID
	if claims.Role != model.RolePeternak {
		if override := r.URL.Query().Get("respondentId"); override != "" {
			respondentID = override
		}
	}

	dash, err := h.reportSvc.Dashboard(r.Context(), respondentID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, dash)
}

// Tabular handles GET /v1/reports/table?month=Maret&year=2025&name=pak
func (h *ReportHandler) Tabular(w http.ResponseWriter, r *http.Request) {
	filter := scoring.Filter{
		Month: r.URL.Query().Get("month"),
		Year:  r.URL.Query().Get("year"),
		Name:  r.URL.Query().Get("name"),
	}

	rows, anomalies, err := h.reportSvc.TabularReport(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"rows":      rows,
		"anomalies": anomalies,
	})
}
