package career

// BuiltinPersonas returns the fixed persona catalog shown in the gallery.
// The slice is freshly allocated so callers can append generated personas
// without touching the catalog.
func BuiltinPersonas() (personas []Persona) {
	personas = []Persona{
		{
			Title:       "The Aspiring Musician",
			Tagline:     "Help them find a way to share their music with the world and build a fanbase.",
			Description: "Turning passion into a profession.",
			Image:       "https://images.unsplash.com/photo-1511379938547-c1f69419868d?q=80&w=500&auto=format&fit=crop",
			Icon:        "musician",
		},
		{
			Title:       "The Small Cafe Owner",
			Tagline:     "Help them attract more customers and manage their small business efficiently.",
			Description: "Brewing community one cup at a time.",
			Image:       "https://images.unsplash.com/photo-1559925393-8be0ec4767c8?q=80&w=500&auto=format&fit=crop",
			Icon:        "entrepreneur",
		},
		{
			Title:       "The First-Time Homeowner",
			Tagline:     "Help them navigate the complexities of maintaining a home and making smart financial decisions.",
			Description: "Building a life from the ground up.",
			Image:       "https://images.unsplash.com/photo-1568605114967-8130f3a36994?q=80&w=500&auto=format&fit=crop",
			Icon:        "briefcase",
		},
		{
			Title:       "The Indie Game Developer",
			Tagline:     "Help them build their dream game and find an audience in a crowded market.",
			Description: "Crafting interactive worlds alone.",
			Image:       "https://images.unsplash.com/photo-1555680202-c86f0e12f086?q=80&w=500&auto=format&fit=crop",
			Icon:        "videogame",
		},
		{
			Title:       "The Remote Worker",
			Tagline:     "Help them find work-life balance and stay connected with their team from anywhere.",
			Description: "Navigating the world of distributed teams.",
			Image:       "https://images.unsplash.com/photo-1499750310107-5fef28a66643?q=80&w=500&auto=format&fit=crop",
			Icon:        "sparkles",
		},
		{
			Title:       "The Fitness Enthusiast",
			Tagline:     "Help them optimize their training, nutrition, and recovery to reach peak performance.",
			Description: "Pushing the limits of physical potential.",
			Image:       "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?q=80&w=500&auto=format&fit=crop",
			Icon:        "sparkles",
		},
		{
			Title:       "The Aspiring Author",
			Tagline:     "Help them craft compelling stories and find a platform to publish their work.",
			Description: "Weaving words into worlds.",
			Image:       "https://images.unsplash.com/photo-1455390582262-044cdead277a?q=80&w=500&auto=format&fit=crop",
			Icon:        "quill",
		},
	}
	return personas
}
