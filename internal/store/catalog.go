package store

import (
	"strings"
	"sync"

	"github.com/samber/lo"
)

// Catalog holds the product list, the active search query and the
// add-product draft. Products are kept newest first.
type Catalog struct {
	mu       sync.RWMutex
	products []Product
	query    string
	draft    ProductDraft
}

func NewCatalog() *Catalog {
	return &Catalog{}
}

// Prepend puts p at the head of the list.
func (c *Catalog) Prepend(p Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.products = append([]Product{p}, c.products...)
}

// Delete removes the product with the given id and reports whether it existed.
func (c *Catalog) Delete(id int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	before := len(c.products)
	c.products = lo.Reject(c.products, func(p Product, _ int) bool { return p.ID == id })
	return len(c.products) != before
}

func (c *Catalog) Get(id int64) (Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return lo.Find(c.products, func(p Product) bool { return p.ID == id })
}

// All returns a copy of every product in catalog order.
func (c *Catalog) All() []Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]Product(nil), c.products...)
}

func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.products)
}

// Filter returns the products whose name or category contains query,
// ignoring case. An empty query matches everything.
func (c *Catalog) Filter(query string) []Product {
	return FilterProducts(c.All(), query)
}

// BySeller returns the products listed by the given user id.
func (c *Catalog) BySeller(sellerID int64) []Product {
	return lo.Filter(c.All(), func(p Product, _ int) bool { return p.SellerID == sellerID })
}

func (c *Catalog) SetQuery(q string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.query = q
}

func (c *Catalog) Query() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.query
}

func (c *Catalog) Draft() ProductDraft {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.draft
}

func (c *Catalog) SetDraft(d ProductDraft) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft = d
}

func (c *Catalog) ResetDraft() { c.SetDraft(ProductDraft{}) }

// FilterProducts is the pure form of Catalog.Filter.
func FilterProducts(products []Product, query string) []Product {
	q := strings.ToLower(query)
	return lo.Filter(products, func(p Product, _ int) bool {
		return strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Category), q)
	})
}
