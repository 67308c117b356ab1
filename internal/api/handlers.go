package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"gwi.com/neon-marketplace/internal/core"
	"gwi.com/neon-marketplace/internal/store"
)

// APIHandler composes the four independent stores behind one HTTP surface.
type APIHandler struct {
	catalog      *core.CatalogService
	interactions *core.InteractionService
	sessions     *core.SessionService
	chat         *core.ChatService
	log          *slog.Logger
}

func NewAPIHandler(catalog *core.CatalogService, interactions *core.InteractionService, sessions *core.SessionService, chat *core.ChatService, log *slog.Logger) *APIHandler {
	return &APIHandler{
		catalog:      catalog,
		interactions: interactions,
		sessions:     sessions,
		chat:         chat,
		log:          log,
	}
}

func productIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_product_id", err.Error())
		return 0, false
	}
	return id, true
}

// Catalog

type ProductListResponse struct {
	Query    string          `json:"query"`
	Count    int             `json:"count"`
	Products []store.Product `json:"products"`
}

func (h *APIHandler) ListProductsHandler(w http.ResponseWriter, r *http.Request) {
	query := h.catalog.Query()
	products := h.catalog.Visible()
	if q := r.URL.Query(); q.Has("q") {
		query = q.Get("q")
		products = h.catalog.Filter(query)
	}
	writeJSON(w, http.StatusOK, ProductListResponse{Query: query, Count: len(products), Products: products})
}

type SearchRequest struct {
	Query string `json:"query"`
}

func (h *APIHandler) SetSearchHandler(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if !decodeBody(w, r, &req) {
		return
	}
	h.catalog.SetQuery(req.Query)
	products := h.catalog.Visible()
	writeJSON(w, http.StatusOK, ProductListResponse{Query: req.Query, Count: len(products), Products: products})
}

func (h *APIHandler) GetDraftHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.Draft())
}

func (h *APIHandler) UpdateDraftHandler(w http.ResponseWriter, r *http.Request) {
	var draft store.ProductDraft
	if !decodeBody(w, r, &draft) {
		return
	}
	h.catalog.UpdateDraft(draft)
	writeJSON(w, http.StatusOK, draft)
}

func (h *APIHandler) CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	var draft store.ProductDraft
	if !decodeBody(w, r, &draft) {
		return
	}
	// The submitted body is what the form showed at submit time.
	h.catalog.UpdateDraft(draft)

	product, err := h.catalog.AddProduct(draft)
	switch {
	case errors.Is(err, core.ErrSessionRequired):
		writeError(w, http.StatusUnauthorized, "session_required", err.Error())
		return
	case errors.Is(err, core.ErrInvalidDraft):
		writeError(w, http.StatusUnprocessableEntity, "validation_error", err.Error())
		return
	case err != nil:
		h.log.Error("Failed to add product", "error", err, "request_id", RequestIDFromContext(r.Context()))
		writeError(w, http.StatusInternalServerError, "internal_error", "")
		return
	}
	writeJSON(w, http.StatusCreated, product)
}

// DeleteProductHandler only lets the seller remove their own listing.
func (h *APIHandler) DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())
	id, ok := productIDParam(w, r)
	if !ok {
		return
	}

	product, found := h.catalog.Get(id)
	if !found {
		writeError(w, http.StatusNotFound, "not_found", "")
		return
	}
	if product.SellerID != user.ID {
		writeError(w, http.StatusForbidden, "forbidden", "only the seller can delete this product")
		return
	}
	h.catalog.DeleteProduct(id)
	w.WriteHeader(http.StatusNoContent)
}

// Interactions

type FavoritesResponse struct {
	IDs      []int64         `json:"ids"`
	Products []store.Product `json:"products"`
}

func (h *APIHandler) ListFavoritesHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, FavoritesResponse{
		IDs:      h.interactions.Favorites(),
		Products: h.interactions.FavoriteProducts(),
	})
}

type ToggleFavoriteResponse struct {
	ProductID int64 `json:"product_id"`
	Favorite  bool  `json:"favorite"`
	Count     int   `json:"count"`
}

func (h *APIHandler) ToggleFavoriteHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := productIDParam(w, r)
	if !ok {
		return
	}
	fav := h.interactions.ToggleFavorite(id)
	writeJSON(w, http.StatusOK, ToggleFavoriteResponse{
		ProductID: id,
		Favorite:  fav,
		Count:     len(h.interactions.Favorites()),
	})
}

type CartResponse struct {
	Items []int64 `json:"items"`
	Count int     `json:"count"`
	Total float64 `json:"total"`
}

func (h *APIHandler) cartResponse() CartResponse {
	items := h.interactions.Cart()
	return CartResponse{Items: items, Count: len(items), Total: h.interactions.CartTotal()}
}

func (h *APIHandler) GetCartHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.cartResponse())
}

func (h *APIHandler) AddToCartHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := productIDParam(w, r)
	if !ok {
		return
	}
	h.interactions.AddToCart(id)
	writeJSON(w, http.StatusOK, h.cartResponse())
}

func (h *APIHandler) RecommendationsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.interactions.Recommendations())
}

// Session

type SessionResponse struct {
	State store.SessionState `json:"state"`
	User  *store.User        `json:"user"`
}

func (h *APIHandler) sessionResponse() SessionResponse {
	return SessionResponse{State: h.sessions.State(), User: h.sessions.Current()}
}

func (h *APIHandler) GetSessionHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.sessionResponse())
}

func (h *APIHandler) UpdateAuthFormHandler(w http.ResponseWriter, r *http.Request) {
	var form store.AuthForm
	if !decodeBody(w, r, &form) {
		return
	}
	h.sessions.UpdateForm(form)
	w.WriteHeader(http.StatusNoContent)
}

func (h *APIHandler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	h.authenticate(w, r, h.sessions.Register)
}

func (h *APIHandler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	h.authenticate(w, r, h.sessions.Login)
}

func (h *APIHandler) authenticate(w http.ResponseWriter, r *http.Request, submit func(store.AuthForm) (store.User, error)) {
	var form store.AuthForm
	if !decodeBody(w, r, &form) {
		return
	}
	h.sessions.UpdateForm(form)

	if _, err := submit(form); err != nil {
		if errors.Is(err, core.ErrInvalidForm) {
			writeError(w, http.StatusUnprocessableEntity, "validation_error", err.Error())
			return
		}
		h.log.Error("Authentication failed", "error", err, "request_id", RequestIDFromContext(r.Context()))
		writeError(w, http.StatusInternalServerError, "internal_error", "")
		return
	}
	writeJSON(w, http.StatusOK, h.sessionResponse())
}

func (h *APIHandler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	h.sessions.Logout()
	w.WriteHeader(http.StatusNoContent)
}

type ProfileResponse struct {
	User     store.User      `json:"user"`
	Products []store.Product `json:"products"`
}

func (h *APIHandler) ProfileHandler(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())
	writeJSON(w, http.StatusOK, ProfileResponse{User: user, Products: h.catalog.ProductsBySeller(user.ID)})
}

// Conversation

type ConversationResponse struct {
	Conversation store.Conversation `json:"conversation"`
	Compose      string             `json:"compose"`
	Pending      int                `json:"pending_replies"`
}

func (h *APIHandler) GetConversationHandler(w http.ResponseWriter, r *http.Request) {
	conv, ok := h.chat.Current()
	if !ok {
		writeError(w, http.StatusNotFound, "not_found", "no conversation has been opened")
		return
	}
	writeJSON(w, http.StatusOK, ConversationResponse{Conversation: conv, Compose: h.chat.Compose(), Pending: h.chat.PendingReplies()})
}

type OpenConversationRequest struct {
	ProductID int64 `json:"product_id"`
}

func (h *APIHandler) OpenConversationHandler(w http.ResponseWriter, r *http.Request) {
	var req OpenConversationRequest
	if !decodeBody(w, r, &req) {
		return
	}
	conv, err := h.chat.OpenConversationFor(req.ProductID)
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found", err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, ConversationResponse{Conversation: conv, Compose: h.chat.Compose(), Pending: h.chat.PendingReplies()})
}

func (h *APIHandler) CloseConversationHandler(w http.ResponseWriter, r *http.Request) {
	h.chat.Close()
	w.WriteHeader(http.StatusNoContent)
}

type ComposeRequest struct {
	Text string `json:"text"`
}

func (h *APIHandler) UpdateComposeHandler(w http.ResponseWriter, r *http.Request) {
	var req ComposeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	h.chat.UpdateCompose(req.Text)
	w.WriteHeader(http.StatusNoContent)
}

func (h *APIHandler) PostMessageHandler(w http.ResponseWriter, r *http.Request) {
	var req ComposeRequest
	if !decodeBody(w, r, &req) {
		return
	}

	msg, err := h.chat.Send(req.Text)
	switch {
	case errors.Is(err, core.ErrEmptyMessage):
		writeError(w, http.StatusUnprocessableEntity, "validation_error", err.Error())
		return
	case errors.Is(err, core.ErrNoConversation):
		writeError(w, http.StatusConflict, "no_conversation", err.Error())
		return
	case err != nil:
		h.log.Error("Failed to send message", "error", err, "request_id", RequestIDFromContext(r.Context()))
		writeError(w, http.StatusInternalServerError, "internal_error", "")
		return
	}
	writeJSON(w, http.StatusCreated, msg)
}
