package search

// ローカルフォールバックデータ。
// 全ての外部プロバイダーが失敗した場合でも検索は空にならない。
// フォールバックパスはネットワークに一切アクセスしない。

// fallbackCities は都市検索の最終フォールバック。
func fallbackCities() []City {
	return []City{
		{
			ID:          "FRA",
			Name:        "Paris",
			Country:     "France",
			Region:      "Europe",
			CostIndex:   85,
			Popularity:  95,
			Description: "The City of Light, known for art, fashion, and gastronomy.",
			Population:  2161000,
		},
		{
			ID:          "JPN",
			Name:        "Tokyo",
			Country:     "Japan",
			Region:      "Asia",
			CostIndex:   90,
			Popularity:  92,
			Description: "A bustling metropolis blending traditional temples with neon skyscrapers.",
			Population:  13960000,
		},
		{
			ID:          "NYC",
			Name:        "New York City",
			Country:     "United States",
			Region:      "Americas",
			CostIndex:   95,
			Popularity:  98,
			Description: "The global center of finance, culture, and entertainment.",
			Population:  8336000,
		},
	}
}

// curatedCities は首都以外の有名都市。
// REST Countriesは首都しか返さないため、ディスカバリー結果に常に加える。
func curatedCities() []City {
	return []City{
		{ID: "NYC", Name: "New York City", Country: "United States", Region: "Americas", CostIndex: 95, Popularity: 98, Description: "The city that never sleeps, a global hub of culture and finance.", Population: 8400000},
		{ID: "SYD", Name: "Sydney", Country: "Australia", Region: "Oceania", CostIndex: 85, Popularity: 94, Description: "Famous for its opera house, harbor, and beautiful beaches.", Population: 5312000},
		{ID: "BCN", Name: "Barcelona", Country: "Spain", Region: "Europe", CostIndex: 75, Popularity: 96, Description: "A city of Gaudí masterpieces, beaches, and vibrant street life.", Population: 1620000},
		{ID: "MUM", Name: "Mumbai", Country: "India", Region: "Asia", CostIndex: 50, Popularity: 92, Description: "The bustling heart of India, home to Bollywood and colonial history.", Population: 18410000},
		{ID: "RIO", Name: "Rio de Janeiro", Country: "Brazil", Region: "Americas", CostIndex: 60, Popularity: 93, Description: "Known for Christ the Redeemer, Carnival, and stunning coastlines.", Population: 6748000},
	}
}

// fallbackActivities はアクティビティ検索の最終フォールバック。
func fallbackActivities() []Activity {
	return []Activity{
		{ID: "1", Name: "Eiffel Tower Skip-the-Line Tour", City: "Paris", Category: "Sightseeing", Duration: "2-3 hours", Cost: 45, Description: "Skip the queues and enjoy panoramic views from the iconic Eiffel Tower", Rating: 4.8},
		{ID: "2", Name: "Seine River Dinner Cruise", City: "Paris", Category: "Romance", Duration: "2 hours", Cost: 85, Description: "Romantic evening cruise with 3-course dinner and live music", Rating: 4.7},
		{ID: "3", Name: "Tokyo Street Food Tour", City: "Tokyo", Category: "Food", Duration: "3 hours", Cost: 75, Description: "Taste authentic Japanese street food in hidden local spots", Rating: 4.9},
		{ID: "4", Name: "Mount Fuji Day Trip", City: "Tokyo", Category: "Adventure", Duration: "Full day", Cost: 120, Description: "Guided tour to Mount Fuji with lake cruise and traditional lunch", Rating: 4.8},
		{ID: "5", Name: "Broadway Show Premium Seats", City: "New York", Category: "Entertainment", Duration: "2.5 hours", Cost: 150, Description: "Best seats for top-rated Broadway musicals", Rating: 4.9},
		{ID: "6", Name: "Central Park Bike Tour", City: "New York", Category: "Adventure", Duration: "2 hours", Cost: 45, Description: "Explore Central Park iconic spots on a guided bike tour", Rating: 4.6},
		{ID: "7", Name: "Sagrada Familia Guided Tour", City: "Barcelona", Category: "Culture", Duration: "1.5 hours", Cost: 35, Description: "Expert-led tour of Gaudí masterpiece with skip-the-line access", Rating: 4.8},
		{ID: "8", Name: "Tapas & Wine Tasting", City: "Barcelona", Category: "Food", Duration: "3 hours", Cost: 65, Description: "Authentic tapas tour with local wine pairings", Rating: 4.7},
		{ID: "9", Name: "Desert Safari Adventure", City: "Dubai", Category: "Adventure", Duration: "6 hours", Cost: 95, Description: "Dune bashing, camel ride, BBQ dinner, and cultural show", Rating: 4.8},
		{ID: "10", Name: "Burj Khalifa At The Top", City: "Dubai", Category: "Sightseeing", Duration: "1.5 hours", Cost: 55, Description: "Visit the world tallest building observation deck", Rating: 4.9},
		{ID: "11", Name: "Colosseum & Roman Forum", City: "Rome", Category: "Culture", Duration: "3 hours", Cost: 60, Description: "Ancient Rome tour with expert archaeologist guide", Rating: 4.8},
		{ID: "12", Name: "Pasta Making Class", City: "Rome", Category: "Food", Duration: "3 hours", Cost: 70, Description: "Learn to make authentic Italian pasta from a local chef", Rating: 4.9},
		{ID: "13", Name: "Thames River Cruise", City: "London", Category: "Sightseeing", Duration: "1 hour", Cost: 25, Description: "See London landmarks from the river with audio guide", Rating: 4.5},
		{ID: "14", Name: "British Museum Tour", City: "London", Category: "Culture", Duration: "2.5 hours", Cost: 40, Description: "Highlights tour of world-famous artifacts and exhibitions", Rating: 4.7},
		{ID: "15", Name: "Sydney Opera House Tour", City: "Sydney", Category: "Culture", Duration: "1 hour", Cost: 35, Description: "Behind-the-scenes tour of the iconic opera house", Rating: 4.6},
	}
}
