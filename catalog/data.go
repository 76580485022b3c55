package catalog

import "github.com/vasanthdommeti/Kiranna-Mart-Task/models"

func price(v float64) *float64 { return &v }

// Default returns the built-in storefront catalog.
func Default() *Catalog {
	return &Catalog{
		Categories: []models.Category{
			{ID: 1, Title: "Food", Icon: "food.png"},
			{ID: 2, Title: "Groceries", Icon: "groceries.png"},
			{ID: 3, Title: "Health & beauty", Icon: "health.png"},
			{ID: 4, Title: "Flowers", Icon: "flowers.png"},
			{ID: 5, Title: "Electronics", Icon: "electronics.png"},
		},
		Restaurants: []models.Restaurant{
			{ID: "1", Name: "Ebn 3my", Image: "Banner.png", Rating: "4.3", Reviews: "100+", ETA: "45 mins", Fee: "KWD 0.950", Keywords: []string{"arabic", "grill"}},
			{ID: "2", Name: "Madhbi Najd", Image: "Banner.png", Rating: "4.5", Reviews: "1,000+", ETA: "60 mins", Fee: "KWD 0.500", Keywords: []string{"rice", "chicken", "mandi"}},
			{ID: "3", Name: "Labnah And Zaatar", Image: "Banner.png", Rating: "4.3", Reviews: "500+", ETA: "45 mins", Fee: "KWD 0.500", IsPro: true, Keywords: []string{"breakfast", "saj", "manakish"}},
			{ID: "4", Name: "Shawarma House", Image: "Banner.png", Rating: "4.6", Reviews: "2,000+", ETA: "30 mins", Fee: "KWD 0.750", Keywords: []string{"shawarma", "kebab", "wrap"}},
			{ID: "5", Name: "Burger Boutique", Image: "Banner.png", Rating: "4.1", Reviews: "800+", ETA: "40 mins", Fee: "KWD 0.500", IsPro: true, Keywords: []string{"burger", "fries"}},
		},
		MenuItems: []models.Item{
			{ID: "ym-zaatar-saj", Name: "Zaatar Saj", Image: "Banner.png", Price: price(0.450), Section: "SAJ.", Description: "Fresh saj bread with zaatar and olive oil."},
			{ID: "ym-cheese-saj", Name: "Cheese Saj", Image: "Banner.png", Price: price(0.650), Section: "SAJ.", Description: "Akkawi cheese folded into crisp saj."},
			{ID: "ym-chicken-shawarma", Name: "Chicken Shawarma", Image: "Banner.png", Price: price(0.850), Section: "Shawarma & Kebab.", Description: "Marinated chicken, garlic sauce, pickles."},
			{ID: "ym-beef-kebab", Name: "Beef Kebab Plate", Image: "Banner.png", Price: price(1.950), Section: "Shawarma & Kebab.", Description: "Charcoal kebab with rice and grilled tomato."},
			{ID: "ym-mixed-grill", Name: "Mixed Grill", Image: "Banner.png", Price: price(2.750), Section: "Picks for you 🔥", Description: "Kebab, tikka and shish tawook for sharing."},
			{ID: "ym-hummus", Name: "Hummus Bowl", Image: "Banner.png", Price: price(0.500), Section: "Picks for you 🔥"},
			{ID: "ym-cheddar", Name: "Cheddar Sauce", Image: "Banner.png", Price: price(0.200), Section: "Add-ons"},
			{ID: "ym-garlic-dip", Name: "Garlic Dip", Image: "Banner.png", Price: price(0.150), Section: "Add-ons"},
		},
	}
}
