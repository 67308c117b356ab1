package core

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/jonboulle/clockwork"
	"gwi.com/neon-marketplace/internal/store"
)

type CatalogService struct {
	catalog        *store.Catalog
	session        *store.Session
	ids            *store.Sequence
	clock          clockwork.Clock
	log            *slog.Logger
	requireSession bool
}

func NewCatalogService(catalog *store.Catalog, session *store.Session, clock clockwork.Clock, log *slog.Logger, requireSession bool) *CatalogService {
	return &CatalogService{
		catalog:        catalog,
		session:        session,
		ids:            store.NewSequence(0),
		clock:          clock,
		log:            log,
		requireSession: requireSession,
	}
}

// AddProduct lists a product from the draft. The seller comes from the
// current session when there is one, otherwise from draft.Seller.
// On success the held draft is reset.
func (s *CatalogService) AddProduct(draft store.ProductDraft) (store.Product, error) {
	if err := validateDraft(draft); err != nil {
		return store.Product{}, fmt.Errorf("%w: %v", ErrInvalidDraft, err)
	}

	price, err := parsePrice(draft.Price)
	if err != nil {
		return store.Product{}, fmt.Errorf("%w: %v", ErrInvalidDraft, err)
	}

	seller, sellerID := draft.Seller, int64(0)
	if user := s.session.Current(); user != nil {
		seller, sellerID = user.Name, user.ID
	} else if s.requireSession {
		return store.Product{}, ErrSessionRequired
	}
	if seller == "" {
		return store.Product{}, fmt.Errorf("%w: seller name is required", ErrInvalidDraft)
	}

	image := draft.Image
	if image == "" {
		image = store.DefaultProductImage
	}

	product := store.Product{
		ID:          s.ids.Next(),
		Name:        draft.Name,
		Price:       price,
		Image:       image,
		Category:    draft.Category,
		Description: draft.Description,
		Seller:      seller,
		SellerID:    sellerID,
		CreatedAt:   s.clock.Now(),
	}
	s.catalog.Prepend(product)
	s.catalog.ResetDraft()

	s.log.Info("product listed", "product_id", product.ID, "seller_id", sellerID, "category", product.Category)
	return product, nil
}

// DeleteProduct removes the product if present. Ownership is the caller's concern.
func (s *CatalogService) DeleteProduct(id int64) bool {
	deleted := s.catalog.Delete(id)
	if deleted {
		s.log.Info("product deleted", "product_id", id)
	}
	return deleted
}

func (s *CatalogService) Filter(query string) []store.Product { return s.catalog.Filter(query) }

// Visible is the catalog filtered by the active search query.
func (s *CatalogService) Visible() []store.Product { return s.catalog.Filter(s.catalog.Query()) }

func (s *CatalogService) SetQuery(q string) { s.catalog.SetQuery(q) }

func (s *CatalogService) Query() string { return s.catalog.Query() }

func (s *CatalogService) UpdateDraft(d store.ProductDraft) { s.catalog.SetDraft(d) }

func (s *CatalogService) Draft() store.ProductDraft { return s.catalog.Draft() }

func (s *CatalogService) Get(id int64) (store.Product, bool) { return s.catalog.Get(id) }

func (s *CatalogService) ProductsBySeller(userID int64) []store.Product {
	return s.catalog.BySeller(userID)
}

func parsePrice(raw string) (float64, error) {
	price, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("price %q is not a number", raw)
	}
	if math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return 0, fmt.Errorf("price %q must be a finite non-negative number", raw)
	}
	return price, nil
}
