package catalog

import "apex-store/internal/model"

// Categories lists the storefront categories, "All" first.
var Categories = []string{"All", "Footwear", "Apparel", "Accessories", "Electronics"}

// Seed returns the fixed product list the catalogue starts from on every
// boot.
func Seed() []model.Product {
	return []model.Product{
		{
			ID:          1,
			Name:        "Apex Runner Elite",
			Price:       189,
			Category:    "Footwear",
			Image:       "https://picsum.photos/id/103/800/800",
			Description: "Engineered for speed. The Apex Runner Elite features our proprietary reactive foam technology.",
			Rating:      4.8,
			Reviews:     124,
			Features:    []string{"Reactive Foam", "Breathable Mesh", "Carbon Fiber Plate"},
		},
		{
			ID:          2,
			Name:        "Urban Minimalist Jacket",
			Price:       245,
			Category:    "Apparel",
			Image:       "https://picsum.photos/id/1059/800/800",
			Description: "Water-resistant, wind-proof, and effortlessly stylish. The perfect outer layer for the modern city.",
			Rating:      4.9,
			Reviews:     89,
			Features:    []string{"Gore-Tex Membrane", "Hidden Pockets", "Thermal Lining"},
		},
		{
			ID:          3,
			Name:        "Lumina Smart Watch",
			Price:       399,
			Category:    "Accessories",
			Image:       "https://picsum.photos/id/175/800/800",
			Description: "Track your life in high definition. Health monitoring meets luxury design.",
			Rating:      4.7,
			Reviews:     450,
			Features:    []string{"ECG Monitor", "Sapphire Glass", "7-Day Battery"},
		},
		{
			ID:          4,
			Name:        "Zenith Wireless Headphones",
			Price:       349,
			Category:    "Electronics",
			Image:       "https://picsum.photos/id/1/800/800",
			Description: "Immersive soundscapes with active noise cancellation. Silence the world.",
			Rating:      4.6,
			Reviews:     210,
			Features:    []string{"Active Noise Cancelling", "Transparency Mode", "30h Playtime"},
		},
		{
			ID:          5,
			Name:        "Terra Hiking Boot",
			Price:       220,
			Category:    "Footwear",
			Image:       "https://picsum.photos/id/1084/800/800",
			Description: "Conquer any terrain. Waterproof leather and rugged soles for the path less traveled.",
			Rating:      4.9,
			Reviews:     76,
			Features:    []string{"Vibram Sole", "Waterproof Leather", "Ankle Support"},
		},
		{
			ID:          6,
			Name:        "Canvas Weekender",
			Price:       150,
			Category:    "Accessories",
			Image:       "https://picsum.photos/id/1075/800/800",
			Description: "The perfect companion for short getaways. Durable canvas with leather accents.",
			Rating:      4.5,
			Reviews:     112,
			Features:    []string{"Organic Cotton", "Leather Straps", "Laptop Sleeve"},
		},
	}
}
