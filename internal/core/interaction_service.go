package core

import (
	"log/slog"

	"github.com/samber/lo"
	"gwi.com/neon-marketplace/internal/store"
)

type InteractionService struct {
	interactions *store.Interactions
	catalog      *store.Catalog
	log          *slog.Logger
	limit        int
}

func NewInteractionService(interactions *store.Interactions, catalog *store.Catalog, log *slog.Logger, limit int) *InteractionService {
	if limit <= 0 {
		limit = DefaultRecommendationLimit
	}
	return &InteractionService{
		interactions: interactions,
		catalog:      catalog,
		log:          log,
		limit:        limit,
	}
}

// ToggleFavorite reports whether id is a favorite after the toggle.
func (s *InteractionService) ToggleFavorite(id int64) bool {
	fav := s.interactions.ToggleFavorite(id)
	s.log.Debug("favorite toggled", "product_id", id, "favorite", fav)
	return fav
}

// AddToCart always appends, even for ids already in the cart.
func (s *InteractionService) AddToCart(id int64) int {
	n := s.interactions.AddToCart(id)
	s.log.Debug("added to cart", "product_id", id, "cart_size", n)
	return n
}

func (s *InteractionService) IsFavorite(id int64) bool { return s.interactions.IsFavorite(id) }

func (s *InteractionService) Favorites() []int64 { return s.interactions.Favorites() }

// FavoriteProducts resolves favorite ids that still exist in the catalog.
func (s *InteractionService) FavoriteProducts() []store.Product {
	favs := s.interactions.Favorites()
	return lo.Filter(s.catalog.All(), func(p store.Product, _ int) bool { return lo.Contains(favs, p.ID) })
}

func (s *InteractionService) Cart() []int64 { return s.interactions.Cart() }

func (s *InteractionService) CartTotal() float64 {
	return CartTotal(s.interactions.Cart(), s.catalog.All())
}

// Recommendations is recomputed on every call from the viewed set and the
// current catalog.
func (s *InteractionService) Recommendations() []store.Product {
	return Recommend(s.interactions.Viewed(), s.catalog.All(), s.limit)
}
