package model

// Genre groups board games.  Corresponds to a row in the `Genres` table.
type Genre struct {
	ID          uint64 // Genres.genreID
	Name        string // Genres.genreName
	Description string // Genres.genreDescription
}
