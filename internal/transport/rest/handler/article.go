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

// ArticleHandler handles article endpoints
type ArticleHandler struct {
	articleSvc *service.ArticleService
	validate   *validator.Validate
}

// NewArticleHandler creates a new article handler
func NewArticleHandler(articleSvc *service.ArticleService) *ArticleHandler {
	return &ArticleHandler{
		articleSvc: articleSvc,
		validate:   validator.New(),
	}
}

// ArticleRequest is the request body for creating or updating an article
type ArticleRequest struct {
	Title    string `json:"title" validate:"required,min=3"`
	Content  string `json:"content" validate:"required"`
	ImageURL string `json:"imageUrl"`
}

// Create handles POST /v1/articles
func (h *ArticleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req ArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	article := &model.Article{
		Title:    req.Title,
		Content:  req.Content,
		ImageURL: req.ImageURL,
	}
	if claims := middleware.GetClaims(r.Context()); claims != nil {
		article.AuthorID = claims.UserID
	}

	id, err := h.articleSvc.Create(r.Context(), article)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"articleId": id})
}

// List handles GET /v1/articles
func (h *ArticleHandler) List(w http.ResponseWriter, r *http.Request) {
	articles, err := h.articleSvc.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"articles": articles})
}

// Get handles GET /v1/articles/{articleId}
func (h *ArticleHandler) Get(w http.ResponseWriter, r *http.Request) {
	articleID := mux.Vars(r)["articleId"]

	article, err := h.articleSvc.GetByID(r.Context(), articleID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if article == nil {
		writeError(w, http.StatusNotFound, "article not found")
		return
	}
	writeJSON(w, http.StatusOK, article)
}

// Update handles PUT /v1/articles/{articleId}
func (h *ArticleHandler) Update(w http.ResponseWriter, r *http.Request) {
	articleID := mux.Vars(r)["articleId"]

	var req ArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	article := &model.Article{
		ID:       articleID,
		Title:    req.Title,
		Content:  req.Content,
		ImageURL: req.ImageURL,
	}

	if err := h.articleSvc.Update(r.Context(), article); err != nil {
		if errors.Is(err, service.ErrArticleNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, article)
}

// Delete handles DELETE /v1/articles/{articleId}
func (h *ArticleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	articleID := mux.Vars(r)["articleId"]

	if err := h.articleSvc.Delete(r.Context(), articleID); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
