package entity

type Actor struct {
	Base
	Name string `db:"name"`
}
