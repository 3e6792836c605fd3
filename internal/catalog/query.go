package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sort identifies one of the supported product orderings.
// Every ordering partitions in-stock products ahead of out-of-stock ones;
// the sort key only decides the order within each partition.
type Sort string

const (
	SortNone       Sort = ""
	SortFeatured   Sort = "featured"
	SortPriceAsc   Sort = "price-asc"
	SortPriceDesc  Sort = "price-desc"
	SortRatingDesc Sort = "rating-desc"
	SortNameAsc    Sort = "name-asc"
	SortNameDesc   Sort = "name-desc"
)

// Filter restricts the product set. All set fields must hold at once.
// Category is the single-category form kept for backward compatibility;
// when set it takes precedence over Categories.
type Filter struct {
	Search     string
	Category   string
	Categories []string
	MinPrice   *float64
	MaxPrice   *float64
	MinRating  *float64
}

// Page selects a 1-indexed slice of the filtered, sorted product set.
// Size must be positive.
type Page struct {
	Number int
	Size   int
}

// Result carries one page of products plus the pre-pagination totals.
type Result struct {
	Products   []Product
	TotalCount int
	TotalPages int
}

// Query filters, sorts and paginates products in that order.
// A nil page returns the whole filtered set. TotalPages is never below 1,
// and a page number past the end yields an empty slice rather than an error.
func Query(products []Product, filter Filter, sortBy Sort, page *Page) Result {
	filtered := make([]Product, 0, len(products))
	for _, p := range products {
		if matches(p, filter) {
			filtered = append(filtered, p)
		}
	}

	sortProducts(filtered, sortBy)

	totalCount := len(filtered)
	totalPages := 1
	if page != nil {
		totalPages = (totalCount + page.Size - 1) / page.Size
		if totalPages < 1 {
			totalPages = 1
		}
		start := (page.Number - 1) * page.Size
		if start < 0 {
			start = 0
		}
		if start > totalCount {
			start = totalCount
		}
		end := start + page.Size
		if end > totalCount {
			end = totalCount
		}
		filtered = filtered[start:end]
	}

	return Result{
		Products:   filtered,
		TotalCount: totalCount,
		TotalPages: totalPages,
	}
}

func matches(p Product, f Filter) bool {
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) &&
			!strings.Contains(strings.ToLower(p.Category), q) {
			return false
		}
	}

	if f.Category != "" {
		if p.Category != f.Category {
			return false
		}
	} else if len(f.Categories) > 0 {
		found := false
		for _, c := range f.Categories {
			if p.Category == c {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	if f.MinRating != nil && p.Rating < *f.MinRating {
		return false
	}
	return true
}

func sortProducts(ps []Product, sortBy Sort) {
	if sortBy == SortNone {
		return
	}

	var less func(a, b Product) bool
	switch sortBy {
	case SortFeatured, SortRatingDesc:
		less = func(a, b Product) bool { return a.Rating > b.Rating }
	case SortPriceAsc:
		less = func(a, b Product) bool { return a.Price < b.Price }
	case SortPriceDesc:
		less = func(a, b Product) bool { return a.Price > b.Price }
	case SortNameAsc:
		col := collate.New(language.English)
		less = func(a, b Product) bool { return col.CompareString(a.Name, b.Name) < 0 }
	case SortNameDesc:
		col := collate.New(language.English)
		less = func(a, b Product) bool { return col.CompareString(a.Name, b.Name) > 0 }
	default:
		// unknown key: keep filtered order
		return
	}

	sort.SliceStable(ps, func(i, j int) bool {
		a, b := ps[i], ps[j]
		if a.InStock() != b.InStock() {
			return a.InStock()
		}
		return less(a, b)
	})
}
