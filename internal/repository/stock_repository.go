package repository

import (
	"context"
	"database/sql"

	"github.com/chrisbuild124/Full-Stack-SQL-Database-System/internal/database"
	"github.com/chrisbuild124/Full-Stack-SQL-Database-System/internal/model"
)

const (
	qListStocks = `SELECT Stocks.stockID, BoardGames.gameName, Stocks.numItem, Stocks.numRented
	               FROM Stocks
	               INNER JOIN BoardGames ON Stocks.boardGameID = BoardGames.boardGameID
	               ORDER BY Stocks.stockID`
	qStockOptions = `SELECT Stocks.stockID, CONCAT('#', Stocks.stockID, ' ', BoardGames.gameName)
	                 FROM Stocks
	                 INNER JOIN BoardGames ON Stocks.boardGameID = BoardGames.boardGameID
	                 ORDER BY Stocks.stockID`
	qInsertStock = `INSERT INTO Stocks (boardGameID, numItem, numRented) VALUES (?, ?, ?)`
	qUpdateStock = `UPDATE Stocks SET boardGameID = ?, numItem = ?, numRented = ? WHERE stockID = ?`
	qDeleteStock = `DELETE FROM Stocks WHERE stockID = ?`
)

// StockRepo encapsulates all statements on the Stocks table.
type StockRepo struct {
	db database.Executor
}

func NewStockRepo(db database.Executor) *StockRepo {
	return &StockRepo{db: db}
}

// List returns every stock row joined with its game name.
func (r *StockRepo) List(ctx context.Context) ([]model.StockRow, error) {
	return scanAll(ctx, r.db, "stocks.list", qListStocks, func(rows *sql.Rows, s *model.StockRow) error {
		return rows.Scan(&s.ID, &s.GameName, &s.NumItem, &s.NumRented)
	})
}

// Options returns stock ids labelled with the game for link forms.
func (r *StockRepo) Options(ctx context.Context) ([]model.Option, error) {
	return scanAll(ctx, r.db, "stocks.options", qStockOptions, scanOption)
}

func (r *StockRepo) Create(ctx context.Context, s *model.Stock) error {
	id, err := insert(ctx, r.db, "stocks.create", qInsertStock, s.BoardGameID, s.NumItem, s.NumRented)
	if err != nil {
		return err
	}
	s.ID = id
	return nil
}

func (r *StockRepo) Update(ctx context.Context, s model.Stock) error {
	return execOne(ctx, r.db, "stocks.update", qUpdateStock, s.BoardGameID, s.NumItem, s.NumRented, s.ID)
}

// Delete fails with a ConstraintError while link rows reference the stock.
func (r *StockRepo) Delete(ctx context.Context, id uint64) error {
	return execOne(ctx, r.db, "stocks.delete", qDeleteStock, id)
}
