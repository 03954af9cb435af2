package database

import (
	"context"
	"fmt"
)

// idColumn is the auto-assigned integer primary key for each dialect.
func idColumn(driver string) string {
	switch driver {
	case DriverPostgres:
		return "id SERIAL PRIMARY KEY"
	case DriverMySQL:
		return "id INTEGER AUTO_INCREMENT PRIMARY KEY"
	default:
		return "id INTEGER PRIMARY KEY"
	}
}

func schemaStatements(driver string) []string {
	id := idColumn(driver)

	return []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS movies (
			%s,
			name TEXT NOT NULL,
			year_of_release INTEGER
		)`, id),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS actors (
			%s,
			name TEXT NOT NULL
		)`, id),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS technicians (
			%s,
			name TEXT NOT NULL
		)`, id),
		`CREATE TABLE IF NOT EXISTS movie_actor (
			movie_id INTEGER,
			actor_id INTEGER,
			FOREIGN KEY (movie_id) REFERENCES movies (id),
			FOREIGN KEY (actor_id) REFERENCES actors (id)
		)`,
		`CREATE TABLE IF NOT EXISTS movie_technician (
			movie_id INTEGER,
			technician_id INTEGER,
			FOREIGN KEY (movie_id) REFERENCES movies (id),
			FOREIGN KEY (technician_id) REFERENCES technicians (id)
		)`,
	}
}

// InitSchema creates the five tables if they do not exist. Existing data is
// never touched, so it is safe to call on every start.
func InitSchema(ctx context.Context, db *DB) error {
	return db.WithTx(ctx, func(ctx context.Context) error {
		for i, stmt := range schemaStatements(db.Driver()) {
			if _, err := db.Exec(ctx, stmt); err != nil {
				return fmt.Errorf("schema statement %d failed: %w", i+1, err)
			}
		}
		return nil
	})
}
