package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/model"
)

// SQLiteFavoritesGateway keeps favorites in the favorites table, ordered by insertion id
type SQLiteFavoritesGateway struct {
	DB *sql.DB
}

var _ FavoritesGateway = (*SQLiteFavoritesGateway)(nil)

func NewSQLiteFavoritesGateway(db *sql.DB) *SQLiteFavoritesGateway {
	return &SQLiteFavoritesGateway{DB: db}
}

func (g *SQLiteFavoritesGateway) Load(ctx context.Context) ([]entity.Favorite, error) {
	rows, err := g.DB.QueryContext(ctx, `SELECT city, state FROM favorites ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query favorites: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var favorites []entity.Favorite
	for rows.Next() {
		var favorite entity.Favorite
		if err = rows.Scan(&favorite.City, &favorite.State); err != nil {
			return nil, fmt.Errorf("failed to scan favorite: %w", err)
		}
		favorites = append(favorites, favorite)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate favorites: %w", err)
	}

	return favorites, nil
}

func (g *SQLiteFavoritesGateway) Append(ctx context.Context, favorite entity.Favorite) error {
	_, err := g.DB.ExecContext(ctx, `INSERT INTO favorites (city, state) VALUES (?, ?)`, favorite.City, favorite.State)
	if err != nil {
		return fmt.Errorf("failed to insert favorite: %w", err)
	}
	return nil
}

// ReplaceAll deletes and reinserts every row inside one transaction
func (g *SQLiteFavoritesGateway) ReplaceAll(ctx context.Context, favorites []entity.Favorite) (err error) {
	tx, err := g.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM favorites`); err != nil {
		return fmt.Errorf("failed to clear favorites: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO favorites (city, state) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, favorite := range favorites {
		if _, err = stmt.ExecContext(ctx, favorite.City, favorite.State); err != nil {
			return fmt.Errorf("failed to insert favorite: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit favorites: %w", err)
	}
	return nil
}

func (g *SQLiteFavoritesGateway) Health() model.ComponentHealthStatus {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	err := g.DB.PingContext(ctx)

	if err != nil {
		return model.ComponentHealthStatus{
			Status: model.StatusDown,
			Details: map[string]string{
				"backend": "sqlite",
				"message": err.Error(),
			},
		}
	}

	return model.ComponentHealthStatus{
		Status: model.StatusUp,
		Details: map[string]string{
			"backend": "sqlite",
			"message": string(model.StatusUp),
		},
	}
}
