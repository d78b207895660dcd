package domain

// SeedActivities returns a fresh copy of the activities every store starts with.
func SeedActivities() []Activity {
	return []Activity{
		{
			ID:             1,
			ImageName:      "images/clipart.jpeg",
			Name:           "Traditional German Food",
			Description:    "Enjoy authentic German cuisine including bratwurst, sauerkraut, pretzels, and schnitzel at various food stalls throughout the festival.",
			Category:       "Food & Dining",
			PriceRange:     "$8-15",
			Popularity:     "Very Popular",
			DietaryOptions: "Vegetarian options available",
		},
		{
			ID:             2,
			ImageName:      "images/fest.jpeg",
			Name:           "Beer Tent Experience",
			Description:    "Experience the iconic Oktoberfest beer tents with live music, traditional German beer, and festive atmosphere.",
			Category:       "Entertainment",
			PriceRange:     "$12-20",
			Popularity:     "Very Popular",
			DietaryOptions: DefaultDietaryOptions,
		},
		{
			ID:             3,
			ImageName:      "images/real_photo.jpeg",
			Name:           "Live Music & Dancing",
			Description:    "Dance to traditional German music performed by live bands in the beer tents and main stage areas.",
			Category:       "Entertainment",
			PriceRange:     "Free",
			Popularity:     "Popular",
			DietaryOptions: DefaultDietaryOptions,
		},
		{
			ID:             4,
			ImageName:      "images/ken.jpeg",
			Name:           "Picture Perfect Moments",
			Description:    "Capture picture perfect moments on thrilling carnival rides including the Ferris wheel, roller coasters, and traditional fair attractions.",
			Category:       "Attractions",
			PriceRange:     "$5-10 per ride",
			Popularity:     "Popular",
			DietaryOptions: DefaultDietaryOptions,
		},
		{
			ID:             5,
			ImageName:      "images/parade.jpg",
			Name:           "Traditional Veterans Parade",
			Description:    "Witness the spectacular traditional veterans parade featuring marching bands, traditional costumes, and horse-drawn carriages.",
			Category:       "Events",
			PriceRange:     "Free",
			Popularity:     "Very Popular",
			DietaryOptions: DefaultDietaryOptions,
		},
		{
			ID:             6,
			ImageName:      "images/threepeople.jpeg",
			Name:           "Generational Fun",
			Description:    "Experience generational fun as families show off their dirndl or lederhosen in the traditional costume contest with prizes for the best dressed.",
			Category:       "Events",
			PriceRange:     "Free to enter",
			Popularity:     "Moderate",
			DietaryOptions: DefaultDietaryOptions,
		},
		{
			ID:             7,
			ImageName:      "images/emil.jpg",
			Name:           "Long Lasting Family Traditions",
			Description:    "Participate in long lasting family traditions through traditional German games including stein holding contests, barrel rolling, and more.",
			Category:       "Activities",
			PriceRange:     "$3-8",
			Popularity:     "Moderate",
			DietaryOptions: DefaultDietaryOptions,
		},
		{
			ID:             8,
			ImageName:      "images/don.jpeg",
			Name:           "Live German Music",
			Description:    "Browse and purchase handmade crafts while enjoying live German music, traditional German souvenirs, and unique festival memorabilia.",
			Category:       "Entertainment",
			PriceRange:     "Varies",
			Popularity:     "Popular",
			DietaryOptions: DefaultDietaryOptions,
		},
		{
			ID:             9,
			ImageName:      "images/phil.jpeg",
			Name:           "Authentic German Beer",
			Description:    "Family-friendly activities including face painting, puppet shows, and kid-friendly rides, all while parents enjoy authentic German beer.",
			Category:       "Entertainment",
			PriceRange:     "$2-5",
			Popularity:     "Popular",
			DietaryOptions: DefaultDietaryOptions,
		},
		{
			ID:             10,
			ImageName:      "images/fireworks.jpeg",
			Name:           "Evening Fireworks",
			Description:    "End your day with a spectacular fireworks display lighting up the night sky over the festival grounds.",
			Category:       "Entertainment",
			PriceRange:     "Free",
			Popularity:     "Very Popular",
			DietaryOptions: DefaultDietaryOptions,
		},
	}
}
