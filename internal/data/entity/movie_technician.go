package entity

type MovieTechnician struct {
	MovieID      int64 `db:"movie_id"`
	TechnicianID int64 `db:"technician_id"`
}
