package catalog

import "vidloop-backend/internal/models"

// Pools holds the fixed template data every generated catalog draws from.
// A Pools value is built once at startup and passed read-only into each
// Generator; nothing mutates it after construction.
type Pools struct {
	MainUser       *models.User
	Users          []*models.User
	Captions       map[models.Category][]string
	VideoURLs      []string
	SampleComments []models.Comment
	AudioTracks    []string
	EffectNames    []string
	SongTitles     []string
	Artists        []string
}

// DefaultPools builds the stock template pools.
func DefaultPools() *Pools {
	mainUser := &models.User{
		ID:         "user_main",
		Username:   "CodeNinja",
		Avatar:     "https://placehold.co/100x100/FFD700/000000.png?text=CN",
		Followers:  125000,
		Following:  150,
		TotalViews: 15_700_000,
		Uploads:    42,
		IsVerified: true,
	}

	users := []*models.User{
		mainUser,
		{ID: "user1", Username: "TechGoddess", Avatar: "https://placehold.co/100x100/A855F7/FFFFFF.png?text=TG", Followers: 50200, Following: 200, TotalViews: 5_200_000, Uploads: 87, IsVerified: true},
		{ID: "user2", Username: "DanceMachine", Avatar: "https://placehold.co/100x100/EC4899/FFFFFF.png?text=DM", Followers: 1_200_000, Following: 1200, TotalViews: 120_000_000, Uploads: 315, IsVerified: false},
		{ID: "user3", Username: "FunnyDude", Avatar: "https://placehold.co/100x100/F97316/FFFFFF.png?text=FD", Followers: 89000, Following: 50, TotalViews: 9_800_000, Uploads: 64, IsVerified: false},
		{ID: "user4", Username: "ArtisticSoul", Avatar: "https://placehold.co/100x100/22C55E/FFFFFF.png?text=AS", Followers: 250000, Following: 1, TotalViews: 28_000_000, Uploads: 129, IsVerified: true},
		{ID: "user5", Username: "TravelJunkie", Avatar: "https://placehold.co/100x100/3B82F6/FFFFFF.png?text=TJ", Followers: 450000, Following: 300, TotalViews: 45_000_000, Uploads: 203, IsVerified: true},
		{ID: "user6", Username: "FoodLover", Avatar: "https://placehold.co/100x100/EF4444/FFFFFF.png?text=FL", Followers: 75000, Following: 500, TotalViews: 8_000_000, Uploads: 58, IsVerified: false},
	}

	captions := map[models.Category][]string{
		models.CategoryFunny: {
			"This is peak comedy 😂", "I can't stop laughing!", "Wait for the end... 🤣",
			"Funny because it's true.", "My sense of humor is broken.",
		},
		models.CategoryRomance: {
			"Couple goals right here. ❤️", "This is what love looks like.", "My heart just melted.",
			"So sweet and romantic.", "Tag your special someone.",
		},
		models.CategoryLove: {
			"All you need is love.", "Spreading a little bit of love today.", "Love this moment.",
			"Love wins, always.", "This is pure love.",
		},
		models.CategorySad: {
			"Right in the feels... 😢", "It's okay to not be okay.", "This is heartbreaking.",
			"Sending virtual hugs.", "Sometimes, you just need a good cry.",
		},
		models.CategoryCartoon: {
			"Childhood memories unlocked!", "The best cartoons ever.", "Animation magic.",
			"Just a little throwback.", "Cartoons are not just for kids.",
		},
		models.CategoryTech: {
			"The future is now! 🤖", "Latest tech unboxing.", "This gadget is a game-changer.",
			"Coding my life away... 💻", "Tech tips you need to know.",
		},
	}

	videoURLs := []string{
		"http://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ForBiggerFun.mp4",
		"http://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ForBiggerBlazes.mp4",
		"http://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ForBiggerEscapes.mp4",
		"http://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ForBiggerJoyrides.mp4",
		"http://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ForBiggerMeltdowns.mp4",
		"http://commondatastorage.googleapis.com/gtv-videos-bucket/sample/SubaruOutbackOnStreetAndDirt.mp4",
		"http://commondatastorage.googleapis.com/gtv-videos-bucket/sample/TearsOfSteel.mp4",
	}

	sampleComments := []models.Comment{
		{ID: "comment1", User: users[2], Text: "This is hilarious! 😂", Timestamp: "2h ago"},
		{ID: "comment2", User: users[4], Text: "Wow, such amazing talent!", Timestamp: "1h ago"},
		{ID: "comment3", User: mainUser, Text: "Great content, keep it up!", Timestamp: "30m ago"},
		{ID: "comment4", User: users[5], Text: "I wish I was there!", Timestamp: "15m ago"},
	}

	audioTracks := []string{
		"Original Sound - CodeNinja",
		"Cosmic Drift - Vector Seven",
		"Neon Pulse - Scandroid",
		"Night Drive - The Midnight",
		"Ocean Bloom - Tycho",
		"City Lights - Bonobo",
		"Starlight - Lazerhawk",
		"Future Echo - Com Truise",
	}

	effectNames := []string{
		"Cyberpunk", "Glitch", "Retro", "Neon", "Vintage", "Lomo", "Dreamy", "Noir",
		"Stardust", "Cosmic", "Galaxy", "Nebula", "Aurora", "Solaris", "Lunar", "Chromatic",
		"Kaleido", "Prism", "Hologram", "Infrared", "X-Ray", "Pixelate", "ASCII", "Scanlines",
		"VHS", "8mm", "Cinematic", "Technicolor", "Sepia", "Monochrome", "Invert", "Solarize",
		"Pop Art", "Comic Book", "Watercolor", "Oil Painting", "Sketch", "Charcoal", "Blueprint", "Engrave",
		"Glow", "Bloom", "Shine", "Sparkle", "Lens Flare", "Light Leak", "Bokeh", "Vignette",
		"Duotone", "Tritone", "Gradient", "Colorama", "Thermal", "Psychedelic", "Trippy", "Warp",
		"Fisheye", "Mirror", "Fractal", "Mosaic", "Tiles", "Crosshatch", "Halftone", "Dot Matrix",
		"Glitter", "Confetti", "Bubbles", "Rain", "Snow", "Fire", "Smoke", "Fog",
		"Anaglyph", "3D", "Stereo", "Glitchwave", "Vaporwave", "Synthwave", "Retrowave", "Outrun",
		"Ghosting", "Motion Blur", "Zoom Blur", "Radial Blur", "Soft Focus", "Sharpen", "Clarity", "HDR",
		"Golden Hour", "Twilight", "Midnight", "Daydream", "Fantasy", "Mystic", "Enchanted", "Surreal",
	}

	songTitles := []string{
		"Cosmic Drift", "Neon Pulse", "Future Echo", "Retrograde", "Starlight", "Data Stream", "System Shock", "Grid Runner", "Night Drive",
		"Ocean Bloom", "Forest Lullaby", "Desert Mirage", "Mountain Hymn", "River Flow", "Island Dream", "City Lights", "Subway Groove", "Rooftop Jam",
		"First Kiss", "Last Dance", "Broken Heart", "Summer Fling", "Winter's Tale", "Autumn Leaves", "Spring Awakening", "Midnight Mood", "Sunrise Serenade",
	}

	artists := []string{
		"Vector Seven", "Scandroid", "Mega Drive", "Pylot", "Lazerhawk", "Com Truise", "Mitch Murder", "Waveshaper", "Timecop1983", "The Midnight",
		"Tycho", "Bonobo", "Emancipator", "ODESZA", "Lane 8", "Four Tet", "Caribou", "Boards of Canada", "Aphex Twin", "deadmau5",
	}

	return &Pools{
		MainUser:       mainUser,
		Users:          users,
		Captions:       captions,
		VideoURLs:      videoURLs,
		SampleComments: sampleComments,
		AudioTracks:    audioTracks,
		EffectNames:    effectNames,
		SongTitles:     songTitles,
		Artists:        artists,
	}
}

// UserByID looks up a pool user. Returns nil when the id is unknown.
func (p *Pools) UserByID(id string) *models.User {
	for _, u := range p.Users {
		if u.ID == id {
			return u
		}
	}
	return nil
}
