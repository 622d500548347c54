package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wearcast/wearcast/internal/auth"
	"github.com/wearcast/wearcast/internal/handler/dto"
	"github.com/wearcast/wearcast/internal/model"
	"github.com/wearcast/wearcast/internal/service"
)

// ItemHandler handles HTTP requests for wearable items.
type ItemHandler struct {
	svc    *service.ItemService
	logger *slog.Logger
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(svc *service.ItemService, logger *slog.Logger) *ItemHandler {
	return &ItemHandler{
		svc:    svc,
		logger: logger,
	}
}

// List handles GET /api/v1/items. The feed is public.
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListItems(r.Context())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToItemListResponse(items))
}

// Get handles GET /api/v1/items/{itemId}. Single items are as public as
// the feed.
func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemId")

	item, err := h.svc.GetItem(r.Context(), itemID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToItemResponse(item))
}

// Create handles POST /api/v1/items.
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())
	if userID == "" {
		writeJSON(w, http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Authorization required",
			Code:  "unauthorized",
		})
		return
	}

	var req dto.CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  "bad_request",
		})
		return
	}

	item, err := h.svc.CreateItem(r.Context(), userID, service.CreateItemInput{
		Name:     req.Name,
		Weather:  model.Weather(req.Weather),
		ImageURL: req.ImageURL,
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	h.logger.Info("item_created", "item_id", item.ID, "owner_id", userID)

	writeJSON(w, http.StatusCreated, dto.ToItemResponse(item))
}

// Delete handles DELETE /api/v1/items/{itemId}.
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())
	if userID == "" {
		writeJSON(w, http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Authorization required",
			Code:  "unauthorized",
		})
		return
	}

	itemID := chi.URLParam(r, "itemId")

	if err := h.svc.DeleteItem(r.Context(), userID, itemID); err != nil {
		writeError(w, h.logger, err)
		return
	}

	h.logger.Info("item_deleted", "item_id", itemID, "owner_id", userID)

	writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "Item deleted"})
}

// Like handles PUT /api/v1/items/{itemId}/likes.
func (h *ItemHandler) Like(w http.ResponseWriter, r *http.Request) {
	h.mutateLikes(w, r, h.svc.LikeItem)
}

// Unlike handles DELETE /api/v1/items/{itemId}/likes.
func (h *ItemHandler) Unlike(w http.ResponseWriter, r *http.Request) {
	h.mutateLikes(w, r, h.svc.UnlikeItem)
}

func (h *ItemHandler) mutateLikes(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, callerID, itemID string) (*model.Item, error)) {
	userID := auth.UserIDFromContext(r.Context())
	if userID == "" {
		writeJSON(w, http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Authorization required",
			Code:  "unauthorized",
		})
		return
	}

	itemID := chi.URLParam(r, "itemId")

	item, err := op(r.Context(), userID, itemID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToItemResponse(item))
}
