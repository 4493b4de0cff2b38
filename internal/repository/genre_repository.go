package repository

import (
	"context"
	"database/sql"

	"github.com/chrisbuild124/Full-Stack-SQL-Database-System/internal/database"
	"github.com/chrisbuild124/Full-Stack-SQL-Database-System/internal/model"
)

const (
	qListGenres   = `SELECT genreID, genreName, genreDescription FROM Genres ORDER BY genreID`
	qGenreOptions = `SELECT genreID, genreName FROM Genres ORDER BY genreName`
	qInsertGenre  = `INSERT INTO Genres (genreName, genreDescription) VALUES (?, ?)`
	qUpdateGenre  = `UPDATE Genres SET genreName = ?, genreDescription = ? WHERE genreID = ?`
	qDeleteGenre  = `DELETE FROM Genres WHERE genreID = ?`
)

// GenreRepo encapsulates all statements on the Genres table.
type GenreRepo struct {
	db database.Executor
}

func NewGenreRepo(db database.Executor) *GenreRepo {
	return &GenreRepo{db: db}
}

// List returns every genre ordered by id.
func (r *GenreRepo) List(ctx context.Context) ([]model.Genre, error) {
	return scanAll(ctx, r.db, "genres.list", qListGenres, func(rows *sql.Rows, g *model.Genre) error {
		return rows.Scan(&g.ID, &g.Name, &g.Description)
	})
}

// Options returns id/name pairs for the board game form.
func (r *GenreRepo) Options(ctx context.Context) ([]model.Option, error) {
	return scanAll(ctx, r.db, "genres.options", qGenreOptions, scanOption)
}

// Create inserts g and sets g.ID to the generated identifier.
func (r *GenreRepo) Create(ctx context.Context, g *model.Genre) error {
	id, err := insert(ctx, r.db, "genres.create", qInsertGenre, g.Name, g.Description)
	if err != nil {
		return err
	}
	g.ID = id
	return nil
}

// Update overwrites name and description of the genre with g.ID.
func (r *GenreRepo) Update(ctx context.Context, g model.Genre) error {
	return execOne(ctx, r.db, "genres.update", qUpdateGenre, g.Name, g.Description, g.ID)
}

// Delete removes the genre.  It fails with a ConstraintError while board
// games still reference it.
func (r *GenreRepo) Delete(ctx context.Context, id uint64) error {
	return execOne(ctx, r.db, "genres.delete", qDeleteGenre, id)
}
