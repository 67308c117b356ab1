package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewRouter(apiHandler *APIHandler) http.Handler {
	r := chi.NewRouter()

	r.Use(WithRequestID)
	r.Use(middleware.Logger)       // Basic request logging
	r.Use(middleware.Recoverer)    // Recover from panics
	r.Use(middleware.StripSlashes) // Ensure consistent path handling

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})

		// Catalog
		r.Get("/products", apiHandler.ListProductsHandler)
		r.Post("/products", apiHandler.CreateProductHandler)
		r.Put("/products/search", apiHandler.SetSearchHandler)
		r.Get("/products/draft", apiHandler.GetDraftHandler)
		r.Put("/products/draft", apiHandler.UpdateDraftHandler)

		// Favorites and cart
		r.Get("/favorites", apiHandler.ListFavoritesHandler)
		r.Post("/favorites/{productID}", apiHandler.ToggleFavoriteHandler)
		r.Get("/cart", apiHandler.GetCartHandler)
		r.Post("/cart/{productID}", apiHandler.AddToCartHandler)
		r.Get("/recommendations", apiHandler.RecommendationsHandler)

		// Session
		r.Get("/session", apiHandler.GetSessionHandler)
		r.Put("/session/form", apiHandler.UpdateAuthFormHandler)
		r.Post("/session/register", apiHandler.RegisterHandler)
		r.Post("/session/login", apiHandler.LoginHandler)
		r.Post("/session/logout", apiHandler.LogoutHandler)

		// Conversation
		r.Get("/conversation", apiHandler.GetConversationHandler)
		r.Post("/conversation", apiHandler.OpenConversationHandler)
		r.Delete("/conversation", apiHandler.CloseConversationHandler)
		r.Put("/conversation/compose", apiHandler.UpdateComposeHandler)
		r.Post("/conversation/messages", apiHandler.PostMessageHandler)

		// Owner-only routes
		r.Group(func(r chi.Router) {
			r.Use(apiHandler.RequireSession)

			r.Get("/profile", apiHandler.ProfileHandler)
			r.Delete("/products/{productID}", apiHandler.DeleteProductHandler)
		})
	})

	return r
}
