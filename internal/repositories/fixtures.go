package repositories

// Fixtures are demo content for the offline places strategy. They are wired in
// through NewMockPlacesRepository so deployments can swap or drop them without
// touching the pipeline.

type Fixture struct {
	Name        string
	Street      string
	Rating      float64
	RatingCount int
	Types       []string
	Description string
}

type FixtureSet struct {
	Restaurants []Fixture
	Hotels      []Fixture
	Attractions []Fixture
	HiddenGems  []Fixture
	Images      map[string][]string
}

func DefaultFixtures() FixtureSet {
	return FixtureSet{
		Restaurants: []Fixture{
			{
				Name:        "The Local Bistro",
				Street:      "123 Main Street",
				Rating:      4.5,
				RatingCount: 324,
				Types:       []string{"restaurant", "food"},
				Description: "A cozy neighborhood restaurant serving fresh, locally-sourced cuisine.",
			},
			{
				Name:        "Pizza Corner",
				Street:      "456 Oak Avenue",
				Rating:      4.3,
				RatingCount: 187,
				Types:       []string{"restaurant", "food"},
				Description: "Authentic wood-fired pizza with fresh ingredients, a local favorite.",
			},
			{
				Name:        "Café Delights",
				Street:      "789 Elm Street",
				Rating:      4.7,
				RatingCount: 245,
				Types:       []string{"cafe", "food"},
				Description: "Artisanal coffee and fresh pastries in a warm, welcoming atmosphere.",
			},
		},
		Hotels: []Fixture{
			{
				Name:        "Grand Hotel",
				Street:      "100 Central Plaza",
				Rating:      4.4,
				RatingCount: 156,
				Types:       []string{"lodging", "hotel"},
				Description: "Luxury accommodations with world-class amenities.",
			},
			{
				Name:        "Boutique Inn",
				Street:      "250 Heritage Lane",
				Rating:      4.6,
				RatingCount: 89,
				Types:       []string{"lodging", "hotel"},
				Description: "Charming boutique hotel with personalized service and unique character.",
			},
		},
		Attractions: []Fixture{
			{
				Name:        "City Museum",
				Street:      "300 Culture Street",
				Rating:      4.2,
				RatingCount: 234,
				Types:       []string{"museum", "tourist_attraction"},
				Description: "Discover local history and culture through fascinating exhibits.",
			},
			{
				Name:        "Central Park",
				Street:      "400 Green Avenue",
				Rating:      4.5,
				RatingCount: 412,
				Types:       []string{"park", "tourist_attraction"},
				Description: "Beautiful green space perfect for relaxation and outdoor activities.",
			},
		},
		HiddenGems: []Fixture{
			{
				Name:        "Mama's Secret Kitchen",
				Street:      "12 Alley Lane",
				Rating:      4.8,
				RatingCount: 64,
				Types:       []string{"restaurant", "food"},
				Description: "Family-run spot the locals try to keep to themselves.",
			},
			{
				Name:        "The Backstreet Gallery",
				Street:      "7 Painter's Row",
				Rating:      4.6,
				RatingCount: 41,
				Types:       []string{"art_gallery", "tourist_attraction"},
				Description: "Tiny gallery of rotating local artists, free to wander.",
			},
		},
		Images: map[string][]string{
			"restaurant": {
				"https://images.unsplash.com/photo-1517248135467-4c7edcad34c4?w=1200&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1565299624946-b28f40a0ca4b?w=1200&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1554118811-1e0d58224f24?w=1200&auto=format&fit=crop",
			},
			"hotel": {
				"https://images.unsplash.com/photo-1566073771259-6a8506099945?w=1200&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1578683010236-d716f9a3f461?w=1200&auto=format&fit=crop",
			},
			"attraction": {
				"https://images.unsplash.com/photo-1595862804940-94ad0b0b54a4?w=1200&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1441974231531-c6227db76b6e?w=1200&auto=format&fit=crop",
			},
		},
	}
}
