package core

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gwi.com/neon-marketplace/internal/store"
)

func iphoneDraft() store.ProductDraft {
	return store.ProductDraft{Name: "iPhone 15", Price: "50000", Category: "Электроника", Seller: "Ivan"}
}

func TestCatalogService_AddProduct(t *testing.T) {
	t.Run("should list the product and reset the draft", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(false)
		f.catalogSvc.UpdateDraft(iphoneDraft())

		p, err := f.catalogSvc.AddProduct(f.catalogSvc.Draft())

		req.NoError(err)
		req.Equal(50000.0, p.Price)
		req.Equal("Ivan", p.Seller)
		req.Equal(int64(0), p.SellerID)
		req.Equal(store.DefaultProductImage, p.Image)
		req.Equal(epoch, p.CreatedAt)
		req.Len(f.catalogSvc.Filter(""), 1)
		req.Equal(store.ProductDraft{}, f.catalogSvc.Draft())
	})

	t.Run("should prepend and assign unique ids", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(false)
		seen := map[int64]bool{}

		for i := 0; i < 10; i++ {
			d := iphoneDraft()
			d.Name = fmt.Sprintf("item-%d", i)
			p, err := f.catalogSvc.AddProduct(d)
			req.NoError(err)
			req.False(seen[p.ID], "duplicate id %d", p.ID)
			seen[p.ID] = true
		}

		all := f.catalogSvc.Filter("")
		req.Equal("item-9", all[0].Name)
		req.Equal("item-0", all[9].Name)
	})

	t.Run("should take the seller from the session", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(false)
		f.session.SignIn(store.User{ID: 7, Name: "Мария"})
		d := iphoneDraft()
		d.Seller = ""

		p, err := f.catalogSvc.AddProduct(d)

		req.NoError(err)
		req.Equal("Мария", p.Seller)
		req.Equal(int64(7), p.SellerID)
	})

	t.Run("should keep a provided image", func(t *testing.T) {
		f := newFixture(false)
		d := iphoneDraft()
		d.Image = "https://example.com/a.jpg"

		p, err := f.catalogSvc.AddProduct(d)

		require.NoError(t, err)
		require.Equal(t, "https://example.com/a.jpg", p.Image)
	})
}

func TestCatalogService_AddProductRejectsIncompleteDrafts(t *testing.T) {
	cases := map[string]func(d *store.ProductDraft){
		"missing name":       func(d *store.ProductDraft) { d.Name = "" },
		"missing price":      func(d *store.ProductDraft) { d.Price = "" },
		"missing category":   func(d *store.ProductDraft) { d.Category = "" },
		"missing seller":     func(d *store.ProductDraft) { d.Seller = "" },
		"price not a number": func(d *store.ProductDraft) { d.Price = "дорого" },
		"negative price":     func(d *store.ProductDraft) { d.Price = "-1" },
		"infinite price":     func(d *store.ProductDraft) { d.Price = "Inf" },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			req := require.New(t)
			f := newFixture(false)
			d := iphoneDraft()
			mutate(&d)
			f.catalogSvc.UpdateDraft(d)

			_, err := f.catalogSvc.AddProduct(d)

			req.ErrorIs(err, ErrInvalidDraft)
			req.Empty(f.catalogSvc.Filter(""))
			req.Equal(d, f.catalogSvc.Draft(), "draft must survive a failed submit")
		})
	}
}

func TestCatalogService_RequireSession(t *testing.T) {
	req := require.New(t)
	f := newFixture(true)

	_, err := f.catalogSvc.AddProduct(iphoneDraft())
	req.ErrorIs(err, ErrSessionRequired)
	req.Empty(f.catalogSvc.Filter(""))

	f.session.SignIn(store.User{ID: 3, Name: "Ivan"})
	p, err := f.catalogSvc.AddProduct(iphoneDraft())
	req.NoError(err)
	req.Equal(int64(3), p.SellerID)
}

func TestCatalogService_FilterProperty(t *testing.T) {
	f := newFixture(false)
	names := []string{"iPhone 15", "Samsung Galaxy", "PlayStation 5", "Велосипед", "Phone case"}
	categories := []string{"Электроника", "Электроника", "Gaming", "Спорт", "Аксессуары"}
	for i := range names {
		_, err := f.catalogSvc.AddProduct(store.ProductDraft{Name: names[i], Price: "1", Category: categories[i], Seller: "s"})
		require.NoError(t, err)
	}

	for _, q := range []string{"", "phone", "PHONE", "электро", "gam", "o", "zzz", "ВЕЛО"} {
		got := productIDs(f.catalogSvc.Filter(q))
		var want []int64
		for _, p := range f.catalogSvc.Filter("") {
			lq := strings.ToLower(q)
			if strings.Contains(strings.ToLower(p.Name), lq) || strings.Contains(strings.ToLower(p.Category), lq) {
				want = append(want, p.ID)
			}
		}
		if want == nil {
			want = []int64{}
		}
		require.Equal(t, want, got, "query %q", q)
	}
}

func TestCatalogService_ActiveQuery(t *testing.T) {
	req := require.New(t)
	f := newFixture(false)
	_, _ = f.catalogSvc.AddProduct(iphoneDraft())
	d := iphoneDraft()
	d.Name, d.Category = "Велосипед", "Спорт"
	_, _ = f.catalogSvc.AddProduct(d)

	req.Len(f.catalogSvc.Visible(), 2)
	f.catalogSvc.SetQuery("спорт")
	req.Equal("спорт", f.catalogSvc.Query())
	req.Len(f.catalogSvc.Visible(), 1)
	req.Equal("Велосипед", f.catalogSvc.Visible()[0].Name)
}

func TestCatalogService_DeleteProduct(t *testing.T) {
	req := require.New(t)
	f := newFixture(false)
	f.session.SignIn(store.User{ID: 5, Name: "Ivan"})
	p, err := f.catalogSvc.AddProduct(iphoneDraft())
	req.NoError(err)
	req.Len(f.catalogSvc.ProductsBySeller(5), 1)

	req.False(f.catalogSvc.DeleteProduct(p.ID + 100))
	req.True(f.catalogSvc.DeleteProduct(p.ID))
	req.False(f.catalogSvc.DeleteProduct(p.ID))
	req.Empty(f.catalogSvc.ProductsBySeller(5))
}
