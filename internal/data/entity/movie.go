package entity

import "database/sql"

type Movie struct {
	Base
	Name          string        `db:"name"`
	YearOfRelease sql.NullInt64 `db:"year_of_release"`
}
