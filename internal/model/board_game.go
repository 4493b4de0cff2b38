package model

// BoardGame is a title the shop rents or sells.  Each game belongs to
// exactly one genre.
type BoardGame struct {
	ID         uint64  // BoardGames.boardGameID
	Name       string  // BoardGames.gameName
	GenreID    uint64  // BoardGames.genreID
	NumPlayers int     // BoardGames.numPlayer
	Price      float64 // BoardGames.gamePrice
}

// BoardGameRow is a listing row with the genre name resolved.
type BoardGameRow struct {
	ID         uint64
	Name       string
	NumPlayers int
	Price      float64
	GenreName  string
}
