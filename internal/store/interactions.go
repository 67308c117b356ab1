package store

import (
	"sync"

	"github.com/samber/lo"
)

// Interactions holds favorite, cart and viewed membership for the single
// implicit session. Favorites and viewed are sets kept in insertion order;
// the cart is a plain list and may repeat ids.
type Interactions struct {
	mu        sync.RWMutex
	favorites []int64
	cart      []int64
	viewed    []int64
}

func NewInteractions() *Interactions {
	return &Interactions{}
}

// ToggleFavorite flips membership of id and reports whether it is now a favorite.
func (s *Interactions) ToggleFavorite(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if lo.Contains(s.favorites, id) {
		s.favorites = lo.Without(s.favorites, id)
		return false
	}
	s.favorites = append(s.favorites, id)
	return true
}

// AddToCart appends id to the cart and marks it viewed. Returns the new cart length.
func (s *Interactions) AddToCart(id int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = append(s.cart, id)
	if !lo.Contains(s.viewed, id) {
		s.viewed = append(s.viewed, id)
	}
	return len(s.cart)
}

func (s *Interactions) IsFavorite(id int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return lo.Contains(s.favorites, id)
}

func (s *Interactions) Favorites() []int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]int64{}, s.favorites...)
}

func (s *Interactions) Cart() []int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]int64{}, s.cart...)
}

func (s *Interactions) Viewed() []int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]int64{}, s.viewed...)
}
