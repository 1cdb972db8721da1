package store

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/model"
)

// CSVFavoritesGateway keeps favorites in a flat file, one "city,state" record per line, no header and no escaping
type CSVFavoritesGateway struct {
	path string
}

var _ FavoritesGateway = (*CSVFavoritesGateway)(nil)

func NewCSVFavoritesGateway(path string) *CSVFavoritesGateway {
	return &CSVFavoritesGateway{path: path}
}

func (g *CSVFavoritesGateway) Path() string {
	return g.path
}

func (g *CSVFavoritesGateway) Load(ctx context.Context) ([]entity.Favorite, error) {
	file, err := os.Open(g.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open favorites file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var favorites []entity.Favorite
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		favorites = append(favorites, parseRecord(scanner.Text()))
	}
	if err = scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read favorites file: %w", err)
	}

	return favorites, nil
}

func (g *CSVFavoritesGateway) Append(ctx context.Context, favorite entity.Favorite) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(g.path), 0o755); err != nil {
		return fmt.Errorf("failed to create favorites directory: %w", err)
	}

	file, err := os.OpenFile(g.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open favorites file: %w", err)
	}

	if _, err = file.WriteString(formatRecord(favorite)); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to append favorite: %w", err)
	}
	return file.Close()
}

// ReplaceAll writes the records to a temp file in the same directory and renames it over the original
func (g *CSVFavoritesGateway) ReplaceAll(ctx context.Context, favorites []entity.Favorite) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(g.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create favorites directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".favorites-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp favorites file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	writer := bufio.NewWriter(tmp)
	for _, favorite := range favorites {
		if _, err = writer.WriteString(formatRecord(favorite)); err != nil {
			_ = tmp.Close()
			return fmt.Errorf("failed to write favorites: %w", err)
		}
	}
	if err = writer.Flush(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write favorites: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to sync favorites: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close favorites: %w", err)
	}
	if err = os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("failed to set favorites permissions: %w", err)
	}

	if err = os.Rename(tmpName, g.path); err != nil {
		return fmt.Errorf("failed to replace favorites file: %w", err)
	}
	return nil
}

func (g *CSVFavoritesGateway) Health() model.ComponentHealthStatus {
	details := map[string]string{"backend": "csv", "path": g.path}

	info, err := os.Stat(g.path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		details["message"] = "favorites file not created yet"
	case err != nil:
		details["message"] = err.Error()
		return model.ComponentHealthStatus{Status: model.StatusDown, Details: details}
	case info.IsDir():
		details["message"] = "favorites path is a directory"
		return model.ComponentHealthStatus{Status: model.StatusDown, Details: details}
	default:
		details["message"] = string(model.StatusUp)
	}

	return model.ComponentHealthStatus{Status: model.StatusUp, Details: details}
}

// parseRecord splits a line on commas; fields past the second are ignored and missing ones stay empty
func parseRecord(line string) entity.Favorite {
	fields := strings.Split(strings.TrimSuffix(line, "\r"), ",")

	var favorite entity.Favorite
	favorite.City = fields[0]
	if len(fields) > 1 {
		favorite.State = fields[1]
	}
	return favorite
}

func formatRecord(favorite entity.Favorite) string {
	return favorite.City + "," + favorite.State + "\n"
}
