package catalog

import "github.com/vistream/discovery/pkg/models"

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

// SampleItems returns the embedded fixture catalog used when no external
// content store is configured.
func SampleItems() []models.CatalogItem {
	return []models.CatalogItem{
		{
			ID: "the-dark-knight", Title: "The Dark Knight", Type: models.ContentTypeMovie,
			Description: "Batman faces the Joker in a battle for Gotham's soul.",
			Genre:       "Action", Language: "en",
			ReleaseYear: intPtr(2008), Duration: floatPtr(152), Rating: floatPtr(9.0),
			Actors:    []string{"Christian Bale", "Heath Ledger"},
			Tags:      []string{"superhero", "crime", "dc"},
			Thumbnail: "/thumbs/the-dark-knight.jpg", PopularityScore: 0.96,
		},
		{
			ID: "inception", Title: "Inception", Type: models.ContentTypeMovie,
			Description: "A thief who steals secrets through dream-sharing takes one last job.",
			Genre:       "Sci-Fi", Language: "en",
			ReleaseYear: intPtr(2010), Duration: floatPtr(148), Rating: floatPtr(8.8),
			Actors:    []string{"Leonardo DiCaprio", "Joseph Gordon-Levitt"},
			Tags:      []string{"heist", "dreams", "mind-bending"},
			Thumbnail: "/thumbs/inception.jpg", PopularityScore: 0.93,
		},
		{
			ID: "the-godfather", Title: "The Godfather", Type: models.ContentTypeMovie,
			Description: "The aging patriarch of a crime dynasty transfers control to his son.",
			Genre:       "Drama", Language: "en",
			ReleaseYear: intPtr(1972), Duration: floatPtr(175), Rating: floatPtr(9.2),
			Actors:    []string{"Marlon Brando", "Al Pacino"},
			Tags:      []string{"mafia", "classic"},
			Thumbnail: "/thumbs/the-godfather.jpg", PopularityScore: 0.95,
		},
		{
			ID: "mad-max-fury-road", Title: "Mad Max: Fury Road", Type: models.ContentTypeMovie,
			Description: "In a post-apocalyptic wasteland, Max joins a rebel convoy on the run.",
			Genre:       "Action", Language: "en",
			ReleaseYear: intPtr(2015), Duration: floatPtr(120), Rating: floatPtr(8.1),
			Actors:    []string{"Tom Hardy", "Charlize Theron"},
			Tags:      []string{"post-apocalyptic", "chase"},
			Thumbnail: "/thumbs/mad-max-fury-road.jpg", PopularityScore: 0.88,
		},
		{
			ID: "raiders-of-the-lost-ark", Title: "Raiders of the Lost Ark", Type: models.ContentTypeMovie,
			Description: "Archaeologist Indiana Jones races the Nazis to find the Ark of the Covenant.",
			Genre:       "Adventure", Language: "en",
			ReleaseYear: intPtr(1981), Duration: floatPtr(115), Rating: floatPtr(8.4),
			Actors:    []string{"Harrison Ford", "Karen Allen"},
			Tags:      []string{"archaeology", "classic"},
			Thumbnail: "/thumbs/raiders-of-the-lost-ark.jpg", PopularityScore: 0.82,
		},
		{
			ID: "the-hangover", Title: "The Hangover", Type: models.ContentTypeMovie,
			Description: "Three groomsmen retrace a lost night in Las Vegas to find the groom.",
			Genre:       "Comedy", Language: "en",
			ReleaseYear: intPtr(2009), Duration: floatPtr(100), Rating: floatPtr(7.7),
			Actors:    []string{"Bradley Cooper", "Zach Galifianakis"},
			Tags:      []string{"party", "vegas"},
			Thumbnail: "/thumbs/the-hangover.jpg", PopularityScore: 0.78,
		},
		{
			ID: "la-la-land", Title: "La La Land", Type: models.ContentTypeMovie,
			Description: "A jazz pianist and an aspiring actress fall in love in Los Angeles.",
			Genre:       "Romance", Language: "en",
			ReleaseYear: intPtr(2016), Duration: floatPtr(128), Rating: floatPtr(8.0),
			Actors:    []string{"Ryan Gosling", "Emma Stone"},
			Tags:      []string{"musical", "love"},
			Thumbnail: "/thumbs/la-la-land.jpg", PopularityScore: 0.84,
		},
		{
			ID: "se7en", Title: "Se7en", Type: models.ContentTypeMovie,
			Description: "Two detectives hunt a serial killer who uses the seven deadly sins.",
			Genre:       "Thriller", Language: "en",
			ReleaseYear: intPtr(1995), Duration: floatPtr(127), Rating: floatPtr(8.6),
			Actors:    []string{"Brad Pitt", "Morgan Freeman"},
			Tags:      []string{"serial-killer", "dark"},
			Thumbnail: "/thumbs/se7en.jpg", PopularityScore: 0.86,
		},
		{
			ID: "the-conjuring", Title: "The Conjuring", Type: models.ContentTypeMovie,
			Description: "Paranormal investigators help a family terrorized by a dark presence.",
			Genre:       "Horror", Language: "en",
			ReleaseYear: intPtr(2013), Duration: floatPtr(112), Rating: floatPtr(7.5),
			Actors:    []string{"Vera Farmiga", "Patrick Wilson"},
			Tags:      []string{"haunting", "supernatural"},
			Thumbnail: "/thumbs/the-conjuring.jpg", PopularityScore: 0.76,
		},
		{
			ID: "knives-out", Title: "Knives Out", Type: models.ContentTypeMovie,
			Description: "A detective investigates the death of the patriarch of an eccentric family.",
			Genre:       "Mystery", Language: "en",
			ReleaseYear: intPtr(2019), Duration: floatPtr(130), Rating: floatPtr(7.9),
			Actors:    []string{"Daniel Craig", "Ana de Armas"},
			Tags:      []string{"whodunit", "ensemble"},
			Thumbnail: "/thumbs/knives-out.jpg", PopularityScore: 0.83,
		},
		{
			ID: "bohemian-rhapsody-queen", Title: "Bohemian Rhapsody", Type: models.ContentTypeMusic,
			Description: "Queen's six-minute operatic rock suite from A Night at the Opera.",
			Genre:       "Rock", Language: "en",
			ReleaseYear: intPtr(1975), Duration: floatPtr(5.9), Rating: floatPtr(9.5),
			Actors:    []string{"Queen"},
			Tags:      []string{"opera-rock", "classic"},
			Thumbnail: "/thumbs/bohemian-rhapsody.jpg", PopularityScore: 0.97,
		},
		{
			ID: "hotel-california", Title: "Hotel California", Type: models.ContentTypeMusic,
			Description: "The Eagles' haunting title track about excess and entrapment.",
			Genre:       "Rock", Language: "en",
			ReleaseYear: intPtr(1977), Duration: floatPtr(6.5), Rating: floatPtr(9.2),
			Actors:    []string{"Eagles"},
			Tags:      []string{"classic-rock", "guitar"},
			Thumbnail: "/thumbs/hotel-california.jpg", PopularityScore: 0.9,
		},
		{
			ID: "blinding-lights", Title: "Blinding Lights", Type: models.ContentTypeMusic,
			Description: "The Weeknd's synthwave-inflected chart record.",
			Genre:       "Pop", Language: "en",
			ReleaseYear: intPtr(2019), Duration: floatPtr(3.3), Rating: floatPtr(8.5),
			Actors:    []string{"The Weeknd"},
			Tags:      []string{"synthwave", "dance"},
			Thumbnail: "/thumbs/blinding-lights.jpg", PopularityScore: 0.94,
		},
		{
			ID: "take-five", Title: "Take Five", Type: models.ContentTypeMusic,
			Description: "The Dave Brubeck Quartet's cool jazz standard in 5/4 time.",
			Genre:       "Jazz", Language: "en",
			ReleaseYear: intPtr(1959), Duration: floatPtr(5.4), Rating: floatPtr(8.9),
			Actors:    []string{"The Dave Brubeck Quartet"},
			Tags:      []string{"cool-jazz", "saxophone"},
			Thumbnail: "/thumbs/take-five.jpg", PopularityScore: 0.7,
		},
		{
			ID: "one-more-time", Title: "One More Time", Type: models.ContentTypeMusic,
			Description: "Daft Punk's filtered French house anthem.",
			Genre:       "Electronic", Language: "fr",
			ReleaseYear: intPtr(2000), Duration: floatPtr(5.3), Rating: floatPtr(8.3),
			Actors:    []string{"Daft Punk"},
			Tags:      []string{"house", "dance"},
			Thumbnail: "/thumbs/one-more-time.jpg", PopularityScore: 0.81,
		},
		{
			ID: "lose-yourself", Title: "Lose Yourself", Type: models.ContentTypeMusic,
			Description: "Eminem's Oscar-winning single from 8 Mile.",
			Genre:       "Hip-Hop", Language: "en",
			ReleaseYear: intPtr(2002), Duration: floatPtr(5.4), Rating: floatPtr(8.8),
			Actors:    []string{"Eminem"},
			Tags:      []string{"motivational", "rap"},
			Thumbnail: "/thumbs/lose-yourself.jpg", PopularityScore: 0.89,
		},
		{
			ID: "clair-de-lune", Title: "Clair de Lune", Type: models.ContentTypeMusic,
			Description: "Debussy's impressionist piano movement from Suite bergamasque.",
			Genre:       "Classical", Language: "fr",
			ReleaseYear: intPtr(1905), Duration: floatPtr(5.0), Rating: floatPtr(9.0),
			Actors:    []string{"Claude Debussy"},
			Tags:      []string{"piano", "impressionist"},
			Thumbnail: "/thumbs/clair-de-lune.jpg", PopularityScore: 0.72,
		},
	}
}
