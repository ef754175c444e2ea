package services

import (
	"sort"

	"github.com/CameronCarlyon/LittleLemon/entity"
	"github.com/CameronCarlyon/LittleLemon/repository"
)

// FilterState narrows the visible menu; each flag set true is a conjunctive
// constraint, a false flag imposes none.
type FilterState struct {
	Vegetarian bool `json:"vegetarian"`
	Vegan      bool `json:"vegan"`
	GlutenFree bool `json:"glutenFree"`
}

func (f FilterState) Any() bool {
	return f.Vegetarian || f.Vegan || f.GlutenFree
}

func (f FilterState) matches(it entity.MenuItem) bool {
	if f.Vegetarian && !it.Vegetarian {
		return false
	}
	if f.Vegan && !it.Vegan {
		return false
	}
	if f.GlutenFree && !it.GlutenFree {
		return false
	}
	return true
}

// SortKey values match the sort dropdown options.
type SortKey string

const (
	SortDefault      SortKey = "default"
	SortCaloriesAsc  SortKey = "calories-low"
	SortCaloriesDesc SortKey = "calories-high"
	SortPriceAsc     SortKey = "price-low"
	SortPriceDesc    SortKey = "price-high"
	SortNameAsc      SortKey = "name"
)

// MenuService serves the fixed catalog from an in-memory snapshot loaded
// once at construction. Filtering and sorting never touch the snapshot.
type MenuService struct {
	categories []string
	itemsByCat map[string][]entity.MenuItem
}

func NewMenuService(repo *repository.MenuRepository) (*MenuService, error) {
	cats, err := repo.FindCategories()
	if err != nil {
		return nil, err
	}
	s := &MenuService{itemsByCat: make(map[string][]entity.MenuItem, len(cats))}
	for _, c := range cats {
		s.categories = append(s.categories, c.CategoryName)
		s.itemsByCat[c.CategoryName] = c.Items
	}
	return s, nil
}

// Categories returns every category in declared order, ignoring filters.
func (s *MenuService) Categories() []string {
	out := make([]string, len(s.categories))
	copy(out, s.categories)
	return out
}

// AvailableCategories drops categories that the filters empty out.
func (s *MenuService) AvailableCategories(f FilterState) []string {
	var out []string
	for _, name := range s.categories {
		for _, it := range s.itemsByCat[name] {
			if f.matches(it) {
				out = append(out, name)
				break
			}
		}
	}
	return out
}

// ResolveCategory keeps the current selection when it is still available,
// otherwise falls back to the first available category in declared order.
// Returns "" when the filters empty the whole catalog.
func (s *MenuService) ResolveCategory(current string, f FilterState) string {
	avail := s.AvailableCategories(f)
	for _, name := range avail {
		if name == current {
			return current
		}
	}
	if len(avail) > 0 {
		return avail[0]
	}
	return ""
}

// VisibleItems filters then sorts the category's items. Sorting is stable:
// ties keep their declared relative order.
func (s *MenuService) VisibleItems(category string, f FilterState, key SortKey) []entity.MenuItem {
	var out []entity.MenuItem
	for _, it := range s.itemsByCat[category] {
		if f.matches(it) {
			out = append(out, it)
		}
	}

	switch key {
	case SortCaloriesAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Calories < out[j].Calories })
	case SortCaloriesDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Calories > out[j].Calories })
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price.LessThan(out[j].Price) })
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price.GreaterThan(out[j].Price) })
	case SortNameAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].ItemName < out[j].ItemName })
	}
	return out
}
