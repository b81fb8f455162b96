package store

// Relation describes one many-to-many join table seen from its owning side.
type Relation struct {
	JoinTable   string
	OwnerKey    string
	TargetKey   string
	TargetTable string
}

var (
	MovieGenres    = Relation{JoinTable: "movie_genres", OwnerKey: "movie_id", TargetKey: "genre_id", TargetTable: "genres"}
	MovieActors    = Relation{JoinTable: "movie_actors", OwnerKey: "movie_id", TargetKey: "actor_id", TargetTable: "actors"}
	MovieDirectors = Relation{JoinTable: "movie_directors", OwnerKey: "movie_id", TargetKey: "director_id", TargetTable: "directors"}
)

// Inverse returns the same join table seen from the target side.
func (r Relation) Inverse(ownerTable string) Relation {
	return Relation{
		JoinTable:   r.JoinTable,
		OwnerKey:    r.TargetKey,
		TargetKey:   r.OwnerKey,
		TargetTable: ownerTable,
	}
}
