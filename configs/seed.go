package configs

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/CameronCarlyon/LittleLemon/entity"
)

type seedItem struct {
	name        string
	description string
	price       string
	calories    int
	vegetarian  bool
	vegan       bool
	glutenFree  bool
}

type seedCategory struct {
	name  string
	items []seedItem
}

// Category order here is the declared order used for filter fallback.
var catalog = []seedCategory{
	{"Breakfast", []seedItem{
		{"Shakshuka Skillet", "Poached eggs in a rich spiced tomato and bell pepper sauce, served with warm pita.", "11.99", 420, true, false, false},
		{"Mediterranean Avocado Toast", "Sourdough toast topped with avocado, feta, cherry tomatoes, za’atar, and a drizzle of olive oil.", "9.99", 380, true, false, false},
		{"Honey & Almond Greek Yogurt Bowl", "Thick Greek yogurt topped with honey, almonds, fresh figs, and a sprinkle of cinnamon.", "8.99", 310, true, false, true},
		{"Spinach & Feta Omelette", "Fluffy eggs folded with fresh spinach, feta cheese, and herbs, served with a side of roasted potatoes.", "10.99", 450, true, false, true},
		{"Orange Blossom Pancakes", "Soft pancakes infused with orange blossom water, topped with pistachios, syrup, and fresh berries.", "9.99", 520, true, false, false},
	}},
	{"Lunch", []seedItem{
		{"Lemon Chicken Pita Wrap", "Grilled lemon-marinated chicken with tzatziki, lettuce, tomatoes, and onions, wrapped in warm pita.", "12.99", 570, false, false, false},
		{"Falafel & Hummus Bowl", "Crispy falafel served with creamy hummus, cucumber salad, pickled turnips, and warm pita.", "11.99", 590, true, true, false},
		{"Mediterranean Quinoa Salad", "Quinoa, chickpeas, roasted red peppers, cucumbers, olives, and feta, drizzled with lemon dressing.", "10.99", 430, true, false, true},
		{"Spiced Lamb Meatballs", "Tender lamb meatballs in a tomato and harissa sauce, served with fluffy couscous.", "13.99", 620, false, false, false},
		{"Grilled Halloumi & Fig Flatbread", "Warm flatbread topped with grilled halloumi cheese, fig jam, arugula, and balsamic glaze.", "12.99", 480, true, false, false},
	}},
	{"Mains", []seedItem{
		{"Lemon Herb Grilled Salmon", "Served with saffron rice, roasted vegetables, and a creamy tahini sauce.", "21.99", 650, false, false, true},
		{"Slow-Cooked Lamb Tagine", "Traditional Moroccan-style lamb stew with apricots, almonds, and warm spices, served with couscous.", "23.99", 720, false, false, false},
		{"Stuffed Eggplant with Spiced Couscous", "Roasted eggplant filled with spiced couscous, tomatoes, and pine nuts, topped with yogurt sauce.", "18.99", 590, true, false, false},
		{"Za’atar Crusted Chicken", "Juicy chicken breast coated in za’atar, served with garlic roasted potatoes and charred lemon.", "20.99", 610, false, false, true},
		{"Seafood Paella", "A fragrant blend of shrimp, mussels, and squid cooked with saffron-infused rice and fresh herbs.", "24.99", 740, false, false, true},
	}},
	{"Desserts", []seedItem{
		{"Pistachio Baklava", "Layers of crisp filo, chopped pistachios, and orange blossom syrup.", "6.99", 430, true, false, false},
		{"Lemon Olive Oil Cake", "Moist citrus cake with a lemon glaze and candied peel.", "7.99", 390, true, false, false},
		{"Date & Walnut Ma’amoul", "Shortbread pastries filled with spiced date and walnut paste.", "5.99", 310, true, false, false},
	}},
	{"A La Carte", []seedItem{
		{"Hummus", "Creamy chickpea dip with tahini, lemon, and olive oil, served with warm pita.", "5.99", 210, true, true, false},
		{"Tabbouleh", "Parsley and bulgur salad with tomato, mint, and lemon dressing.", "6.99", 160, true, true, false},
		{"Falafel", "Crispy chickpea fritters with a tahini dipping sauce.", "7.99", 320, true, true, false},
		{"Charred Halloumi Skewers", "Grilled halloumi with honey, chili flakes, and fresh oregano.", "8.99", 340, true, false, true},
	}},
	{"Specials", []seedItem{
		{"Chef’s Mezze Platter", "A rotating selection of dips, olives, pickles, and warm breads.", "14.99", 540, true, false, false},
		{"Harissa Grilled Prawns", "Jumbo prawns in a smoky harissa marinade with charred lemon.", "17.99", 410, false, false, true},
		{"Pomegranate Braised Short Rib", "Slow-braised beef short rib glazed with pomegranate molasses.", "25.99", 680, false, false, true},
	}},
	{"Drinks", []seedItem{
		{"Mint Lemonade", "Fresh-squeezed lemonade blended with mint and a touch of honey.", "4.99", 120, true, false, true},
		{"Pomegranate Iced Tea", "Black tea brewed with pomegranate juice over ice.", "4.49", 90, true, true, true},
		{"Turkish Coffee", "Finely ground coffee brewed in a copper cezve, served with lokum.", "3.99", 15, true, true, true},
		{"Mango Lassi", "Chilled yogurt drink blended with mango and cardamom.", "5.49", 230, true, false, true},
	}},
}

// SeedMenu loads the fixed catalog. It is idempotent so a reused DB file
// does not accumulate duplicates.
func SeedMenu(db *gorm.DB) error {
	for ci, sc := range catalog {
		cat := entity.MenuCategory{CategoryName: sc.name, SortOrder: ci}
		if err := db.Where("category_name = ?", sc.name).FirstOrCreate(&cat).Error; err != nil {
			return err
		}
		for ii, si := range sc.items {
			var count int64
			if err := db.Model(&entity.MenuItem{}).
				Where("item_name = ? AND menu_category_id = ?", si.name, cat.ID).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				continue
			}
			item := entity.MenuItem{
				ItemName:       si.name,
				Description:    si.description,
				Price:          decimal.RequireFromString(si.price),
				Calories:       si.calories,
				Vegetarian:     si.vegetarian,
				Vegan:          si.vegan,
				GlutenFree:     si.glutenFree,
				SortOrder:      ii,
				MenuCategoryID: cat.ID,
			}
			if err := db.Create(&item).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
