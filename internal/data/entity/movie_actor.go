package entity

// MovieActor is a row of the movie_actor bridge table. The pair is not
// unique; the same actor can be linked to a movie more than once.
type MovieActor struct {
	MovieID int64 `db:"movie_id"`
	ActorID int64 `db:"actor_id"`
}
