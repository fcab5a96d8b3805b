package seed

import "github.com/gramtop961/gilded-gaze-backend/internal/domain"

// StockedProduct pairs a demo product with its initial inventory quantity.
type StockedProduct struct {
	Product  domain.Product
	Quantity int
}

func DemoCollections() []domain.Collection {
	return []domain.Collection{
		{
			Handle:      "core",
			Title:       "The Gilded Gaze",
			Description: "Quiet luxury for timeless radiance",
			IsLimited:   false,
		},
		{
			Handle:      "celestial-gaze",
			Title:       "Celestial Gaze",
			Description: "Limited edition celestial hues",
			IsLimited:   true,
		},
	}
}

func DemoProducts() []StockedProduct {
	compareAt := func(v float64) *float64 { return &v }

	products := []StockedProduct{
		{
			Product: domain.Product{
				Title:            "The Classic Heirloom",
				Subtitle:         "Effortless elegance",
				Description:      "A refined cluster that enhances with subtle grace.",
				Price:            24.0,
				CollectionHandle: "core",
			},
			Quantity: 50,
		},
	}

	celestial := []struct {
		title    string
		subtitle string
	}{
		{"The Sapphire Serenity", "composure & poise"},
		{"The Amethyst Aura", "intuition & depth"},
		{"The Rose Gold Reverie", "warmth & allure"},
	}
	for _, c := range celestial {
		products = append(products, StockedProduct{
			Product: domain.Product{
				Title:            c.title,
				Subtitle:         c.subtitle,
				Description:      "Limited edition celestial-inspired clusters.",
				Price:            28.0,
				CompareAtPrice:   compareAt(32.0),
				CollectionHandle: "celestial-gaze",
				LimitedBadge:     "Limited Edition",
			},
			Quantity: 20,
		})
	}

	products = append(products, StockedProduct{
		Product: domain.Product{
			Title:            "The Celestial Kit",
			Subtitle:         "Complete limited edition set",
			Description:      "All three celestial styles in one heirloom-worthy ensemble.",
			Price:            72.0,
			CompareAtPrice:   compareAt(84.0),
			CollectionHandle: "celestial-gaze",
			LimitedBadge:     "Limited Edition",
			IsBundle:         true,
		},
		Quantity: 10,
	})

	return products
}
