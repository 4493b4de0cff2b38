package model

// Stock counts the copies of one board game on hand and out on rental.
type Stock struct {
	ID          uint64 // Stocks.stockID
	BoardGameID uint64 // Stocks.boardGameID
	NumItem     int    // Stocks.numItem
	NumRented   int    // Stocks.numRented
}

// StockRow is a listing row with the game name resolved.
type StockRow struct {
	ID        uint64
	GameName  string
	NumItem   int
	NumRented int
}
