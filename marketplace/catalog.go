package marketplace

import (
	"errors"
	"sort"
	"strings"
)

const (
	DefaultLimit               = 20
	MaxLimit                   = 100
	DefaultRecommendationLimit = 6
	MaxRecommendationLimit     = 20
)

var ErrInvalidQuery = errors.New("invalid marketplace query")

type Item struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"original_price,omitempty"`
	Category      string   `json:"category"`
	Brand         string   `json:"brand"`
	Rating        float64  `json:"rating"`
	Reviews       int      `json:"reviews"`
	ImageURL      string   `json:"image_url"`
	InStock       bool     `json:"in_stock"`
	Features      []string `json:"features"`
}

type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type Query struct {
	Category string
	Search   string
	SortBy   string
	Limit    int
	Offset   int
}

type Page struct {
	Items  []Item `json:"items"`
	Total  int    `json:"total"`
	Limit  int    `json:"limit"`
	Offset int    `json:"offset"`
}

// Catalog is a read-only, in-memory product list.
type Catalog struct {
	items      []Item
	categories []Category
}

func New(items []Item, categories []Category) *Catalog {
	return &Catalog{items: items, categories: categories}
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return New(defaultItems(), defaultCategories())
}

// List filters, sorts and paginates the catalog.
func (c *Catalog) List(q Query) (Page, error) {
	if q.Limit < 0 || q.Limit > MaxLimit || q.Offset < 0 {
		return Page{}, ErrInvalidQuery
	}

	items := make([]Item, 0, len(c.items))
	search := strings.ToLower(strings.TrimSpace(q.Search))
	for _, item := range c.items {
		if q.Category != "" && q.Category != "all" && item.Category != q.Category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(item.Name), search) &&
			!strings.Contains(strings.ToLower(item.Description), search) &&
			!strings.Contains(strings.ToLower(item.Brand), search) {
			continue
		}
		items = append(items, item)
	}

	switch q.SortBy {
	case "price-low":
		sort.SliceStable(items, func(i, j int) bool { return items[i].Price < items[j].Price })
	case "price-high":
		sort.SliceStable(items, func(i, j int) bool { return items[i].Price > items[j].Price })
	case "rating":
		sort.SliceStable(items, func(i, j int) bool { return items[i].Rating > items[j].Rating })
	case "reviews":
		sort.SliceStable(items, func(i, j int) bool { return items[i].Reviews > items[j].Reviews })
	}

	total := len(items)
	start := min(q.Offset, total)
	end := min(start+q.Limit, total)

	return Page{
		Items:  items[start:end],
		Total:  total,
		Limit:  q.Limit,
		Offset: q.Offset,
	}, nil
}

func (c *Catalog) Get(id string) (Item, bool) {
	for _, item := range c.items {
		if item.ID == id {
			return item, true
		}
	}
	return Item{}, false
}

// Categories returns the category list with counts taken from the catalog.
func (c *Catalog) Categories() []Category {
	out := make([]Category, len(c.categories))
	for i, cat := range c.categories {
		if cat.ID == "all" {
			cat.Count = len(c.items)
		} else {
			cat.Count = 0
			for _, item := range c.items {
				if item.Category == cat.ID {
					cat.Count++
				}
			}
		}
		out[i] = cat
	}
	return out
}

// Recommendations returns the top-rated items.
func (c *Catalog) Recommendations(limit int) ([]Item, error) {
	if limit < 0 || limit > MaxRecommendationLimit {
		return nil, ErrInvalidQuery
	}
	items := make([]Item, len(c.items))
	copy(items, c.items)
	sort.SliceStable(items, func(i, j int) bool { return items[i].Rating > items[j].Rating })
	return items[:min(limit, len(items))], nil
}
