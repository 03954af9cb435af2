package entity

// Base is the auto-assigned integer primary key shared by movies, actors
// and technicians.
type Base struct {
	ID int64 `db:"id"`
}
