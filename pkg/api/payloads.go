package api

import (
	"net/http"

	"github.com/leminhohoho/movie-lens/api/pkg/models"
	"github.com/leminhohoho/movie-lens/api/pkg/service"
	"github.com/leminhohoho/movie-lens/api/pkg/utils"
)

type genreInput struct {
	Name string `json:"name"`
}

type movieInput struct {
	Name        string `json:"name"`
	Image       string `json:"image"`
	Synopsis    string `json:"synopsis"`
	ReleaseYear int    `json:"release_year"`
}

// personInput is the wire shape of actors and directors. Names arrive in
// camelCase and are stored as first_name/last_name.
type personInput struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Nationality string `json:"nationality"`
	Image       string `json:"image"`
	Birthday    string `json:"birthday"`
}

type actorSummary struct {
	ID        uint   `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type directorSummary struct {
	ID        uint   `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Image     string `json:"image"`
}

func decodeGenre(r *http.Request) (*models.Genre, error) {
	var in genreInput
	if err := readJSON(r, &in); err != nil {
		return nil, err
	}

	return &models.Genre{Name: in.Name}, nil
}

func decodeMovie(r *http.Request) (*models.Movie, error) {
	var in movieInput
	if err := readJSON(r, &in); err != nil {
		return nil, err
	}

	return &models.Movie{
		Name:        in.Name,
		Image:       in.Image,
		Synopsis:    in.Synopsis,
		ReleaseYear: in.ReleaseYear,
	}, nil
}

func decodeActor(r *http.Request) (*models.Actor, error) {
	return decodePerson(r)
}

func decodeDirector(r *http.Request) (*models.Director, error) {
	in, err := decodePerson(r)
	if err != nil {
		return nil, err
	}

	director := models.Director(*in)

	return &director, nil
}

// decodePerson translates a personInput into the storage shape. Actor and
// Director share it. An empty birthday is left zero so it counts as absent.
func decodePerson(r *http.Request) (*models.Actor, error) {
	var in personInput
	if err := readJSON(r, &in); err != nil {
		return nil, err
	}

	person := &models.Actor{
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Nationality: in.Nationality,
		Image:       in.Image,
	}

	if in.Birthday != "" {
		birthday, err := utils.ParseDate(in.Birthday)
		if err != nil {
			return nil, service.NewValidationError("Invalid birthday")
		}

		person.Birthday = birthday
	}

	return person, nil
}

func actorSummaries(actors []models.Actor) interface{} {
	out := make([]actorSummary, 0, len(actors))
	for _, a := range actors {
		out = append(out, actorSummary{ID: a.ID, FirstName: a.FirstName, LastName: a.LastName})
	}

	return out
}

func directorSummaries(directors []models.Director) interface{} {
	out := make([]directorSummary, 0, len(directors))
	for _, d := range directors {
		out = append(out, directorSummary{ID: d.ID, FirstName: d.FirstName, LastName: d.LastName, Image: d.Image})
	}

	return out
}
