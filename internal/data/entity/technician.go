package entity

type Technician struct {
	Base
	Name string `db:"name"`
}
