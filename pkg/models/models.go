package models

import "time"

type Genre struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Actor struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FirstName   string    `gorm:"not null" json:"first_name"`
	LastName    string    `gorm:"not null" json:"last_name"`
	Nationality string    `gorm:"not null" json:"nationality"`
	Image       string    `gorm:"not null" json:"image"`
	Birthday    time.Time `gorm:"not null" json:"birthday"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Director struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FirstName   string    `gorm:"not null" json:"first_name"`
	LastName    string    `gorm:"not null" json:"last_name"`
	Nationality string    `gorm:"not null" json:"nationality"`
	Image       string    `gorm:"not null" json:"image"`
	Birthday    time.Time `gorm:"not null" json:"birthday"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Movie is always served with its three relations expanded.
type Movie struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Image       string    `gorm:"not null" json:"image"`
	Synopsis    string    `gorm:"type:text;not null" json:"synopsis"`
	ReleaseYear int       `gorm:"not null" json:"release_year"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	Genres    []Genre    `gorm:"many2many:movie_genres;joinForeignKey:MovieID;joinReferences:GenreID" json:"genres"`
	Actors    []Actor    `gorm:"many2many:movie_actors;joinForeignKey:MovieID;joinReferences:ActorID" json:"actors"`
	Directors []Director `gorm:"many2many:movie_directors;joinForeignKey:MovieID;joinReferences:DirectorID" json:"directors"`
}

// Join rows carry nothing but the composite key of the two sides.

type MovieGenre struct {
	MovieID uint `gorm:"primaryKey"`
	GenreID uint `gorm:"primaryKey"`
}

func (MovieGenre) TableName() string {
	return "movie_genres"
}

type MovieActor struct {
	MovieID uint `gorm:"primaryKey"`
	ActorID uint `gorm:"primaryKey"`
}

func (MovieActor) TableName() string {
	return "movie_actors"
}

type MovieDirector struct {
	MovieID    uint `gorm:"primaryKey"`
	DirectorID uint `gorm:"primaryKey"`
}

func (MovieDirector) TableName() string {
	return "movie_directors"
}
