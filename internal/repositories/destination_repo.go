package repositories

import (
	"database/sql"
	"fmt"
	"strconv"

	intconfig "travelmap/internal/config"
	"travelmap/internal/domain"
)

type DestinationRepository struct {
	DB *sql.DB
}

func (r DestinationRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// EnsureSchema creates the destinations table when it does not exist yet.
func (r DestinationRepository) EnsureSchema() error {
	_, err := r.db().Exec(`
		CREATE TABLE IF NOT EXISTS destinations (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			latitude DOUBLE NOT NULL,
			longitude DOUBLE NOT NULL,
			summary TEXT
		)
	`)
	if err != nil {
		return fmt.Errorf("ensure destinations schema: %w", err)
	}
	return nil
}

// Seed inserts the built-in curated list when the table is empty.
func (r DestinationRepository) Seed(seed []domain.Destination) error {
	var count int64
	if err := r.db().QueryRow(`SELECT COUNT(*) FROM destinations`).Scan(&count); err != nil {
		return fmt.Errorf("count destinations: %w", err)
	}
	if count > 0 {
		return nil
	}

	stmt, err := r.db().Prepare(`INSERT INTO destinations (name, latitude, longitude, summary) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare destination insert: %w", err)
	}
	defer stmt.Close()

	for _, d := range seed {
		if _, err := stmt.Exec(d.Name, d.Coordinates.Lat, d.Coordinates.Lon, d.Summary); err != nil {
			return fmt.Errorf("seed destination %q: %w", d.Name, err)
		}
	}
	return nil
}

// LoadAll returns every catalog row in id order.
func (r DestinationRepository) LoadAll() ([]domain.Destination, error) {
	rows, err := r.db().Query(`SELECT id, name, latitude, longitude, summary FROM destinations ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("load destinations: %w", err)
	}
	defer rows.Close()

	out := []domain.Destination{}
	for rows.Next() {
		var (
			id      int64
			name    string
			lat     float64
			lon     float64
			summary sql.NullString
		)
		if err := rows.Scan(&id, &name, &lat, &lon, &summary); err != nil {
			return nil, fmt.Errorf("scan destination: %w", err)
		}
		out = append(out, domain.Destination{
			ID:          strconv.FormatInt(id, 10),
			Name:        name,
			Coordinates: domain.Coordinates{Lat: lat, Lon: lon},
			Summary:     summary.String,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
