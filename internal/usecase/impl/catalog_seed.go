package impl

import "tableplay/internal/domain/entity"

// seedRow keeps list fields in their comma-delimited source form.
type seedRow struct {
	key, name, cuisine string
	price              entity.PriceTier
	rating, distanceKm float64
	tags, badges       string
	menuHighlights     string
}

var catalogSeed = []seedRow{
	{
		key: "lp01", name: "Luna Plant Kitchen", cuisine: "Mediterranean",
		price: entity.PriceTierModerate, rating: 4.6, distanceKm: 1.1,
		tags:           "Vegan,Nut-Free,Halal",
		badges:         "No Peanut Oil,Allergy-trained Staff",
		menuHighlights: "Falafel Bowl,Hummus Trio,Za’atar Flatbread",
	},
	{
		key: "gg02", name: "Grill & Grain", cuisine: "American",
		price: entity.PriceTierModerate, rating: 4.3, distanceKm: 2.5,
		tags:           "High-Protein,Keto-Friendly,Gluten-Free",
		badges:         "Cross-contact Protocols",
		menuHighlights: "Chicken Bowl,Cauliflower Mash,Grass-fed Burger (lettuce wrap)",
	},
	{
		key: "sh03", name: "Soba House", cuisine: "Japanese",
		price: entity.PriceTierModerate, rating: 4.7, distanceKm: 3.2,
		tags:           "Dairy-Free,Pescatarian,Low-Sodium",
		badges:         "Soy Alternatives Available",
		menuHighlights: "Cold Soba,Salmon Don,Tofu Miso Soup",
	},
}

// seedRestaurants returns fresh entities so callers may fill in IDs.
func seedRestaurants() []*entity.Restaurant {
	restaurants := make([]*entity.Restaurant, 0, len(catalogSeed))
	for _, row := range catalogSeed {
		restaurants = append(restaurants, &entity.Restaurant{
			Key:            row.key,
			Name:           row.name,
			Cuisine:        row.cuisine,
			Price:          row.price,
			Rating:         row.rating,
			DistanceKm:     row.distanceKm,
			Tags:           entity.SplitList(row.tags),
			Badges:         entity.SplitList(row.badges),
			MenuHighlights: entity.SplitList(row.menuHighlights),
		})
	}

	return restaurants
}
