package repository

import (
	"context"
	"database/sql"

	"github.com/chrisbuild124/Full-Stack-SQL-Database-System/internal/database"
	"github.com/chrisbuild124/Full-Stack-SQL-Database-System/internal/model"
)

const (
	qListBoardGames = `SELECT BoardGames.boardGameID, BoardGames.gameName, BoardGames.numPlayer,
	                          BoardGames.gamePrice, Genres.genreName
	                   FROM BoardGames
	                   INNER JOIN Genres ON BoardGames.genreID = Genres.genreID
	                   ORDER BY BoardGames.boardGameID`
	qBoardGameOptions = `SELECT boardGameID, gameName FROM BoardGames ORDER BY gameName`
	qInsertBoardGame  = `INSERT INTO BoardGames (gameName, genreID, numPlayer, gamePrice) VALUES (?, ?, ?, ?)`
	qUpdateBoardGame  = `UPDATE BoardGames SET gameName = ?, genreID = ?, numPlayer = ?, gamePrice = ?
	                     WHERE boardGameID = ?`
	qDeleteBoardGame = `DELETE FROM BoardGames WHERE boardGameID = ?`
)

// BoardGameRepo encapsulates all statements on the BoardGames table.
type BoardGameRepo struct {
	db database.Executor
}

func NewBoardGameRepo(db database.Executor) *BoardGameRepo {
	return &BoardGameRepo{db: db}
}

// List returns every game joined with its genre name.
func (r *BoardGameRepo) List(ctx context.Context) ([]model.BoardGameRow, error) {
	return scanAll(ctx, r.db, "board_games.list", qListBoardGames, func(rows *sql.Rows, b *model.BoardGameRow) error {
		return rows.Scan(&b.ID, &b.Name, &b.NumPlayers, &b.Price, &b.GenreName)
	})
}

// Options returns id/name pairs for the stock form.
func (r *BoardGameRepo) Options(ctx context.Context) ([]model.Option, error) {
	return scanAll(ctx, r.db, "board_games.options", qBoardGameOptions, scanOption)
}

// Create inserts b and sets b.ID.  A genreID that does not exist yields a
// ConstraintError.
func (r *BoardGameRepo) Create(ctx context.Context, b *model.BoardGame) error {
	id, err := insert(ctx, r.db, "board_games.create", qInsertBoardGame, b.Name, b.GenreID, b.NumPlayers, b.Price)
	if err != nil {
		return err
	}
	b.ID = id
	return nil
}

func (r *BoardGameRepo) Update(ctx context.Context, b model.BoardGame) error {
	return execOne(ctx, r.db, "board_games.update", qUpdateBoardGame, b.Name, b.GenreID, b.NumPlayers, b.Price, b.ID)
}

func (r *BoardGameRepo) Delete(ctx context.Context, id uint64) error {
	return execOne(ctx, r.db, "board_games.delete", qDeleteBoardGame, id)
}
