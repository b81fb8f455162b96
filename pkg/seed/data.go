package seed

import (
	"time"

	"github.com/leminhohoho/movie-lens/api/pkg/models"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

var genres = []models.Genre{
	{Name: "Action"},
	{Name: "Drama"},
	{Name: "Sci-Fi"},
	{Name: "Thriller"},
	{Name: "Crime"},
	{Name: "Mystery"},
	{Name: "Horror"},
	{Name: "Adventure"},
	{Name: "Fantasy"},
	{Name: "Music"},
	{Name: "Comedy"},
	{Name: "Animation"},
}

var actors = []models.Actor{
	{
		FirstName:   "Ethan",
		LastName:    "Hawke",
		Nationality: "American",
		Image:       "https://media.themoviedb.org/t/p/w300_and_h450_bestv2/2LoTr6x0TEM7L5em4kSx1VmGDgG.jpg",
		Birthday:    date(1970, time.November, 6),
	},
	{
		FirstName:   "Mason",
		LastName:    "Thames",
		Nationality: "American",
		Image:       "https://media.themoviedb.org/t/p/w300_and_h450_bestv2/kPVWuKlDR0wkCSvv5iHLkaEQS0L.jpg",
		Birthday:    date(2007, time.July, 10),
	},
	{
		FirstName:   "Madeleine",
		LastName:    "McGraw",
		Nationality: "American",
		Image:       "https://via.placeholder.com/300x450/2a2a2a/ffffff?text=Madeleine+McGraw",
		Birthday:    date(2008, time.December, 22),
	},
	{
		FirstName:   "Richard",
		LastName:    "Rowden",
		Nationality: "British",
		Image:       "https://via.placeholder.com/300x450/2a2a2a/ffffff?text=Richard+Rowden",
		Birthday:    date(1970, time.January, 1),
	},
	{
		FirstName:   "Sean",
		LastName:    "Cronin",
		Nationality: "Irish",
		Image:       "https://via.placeholder.com/300x450/2a2a2a/ffffff?text=Sean+Cronin",
		Birthday:    date(1976, time.January, 1),
	},
	{
		FirstName:   "Arden",
		LastName:    "Cho",
		Nationality: "American",
		Image:       "https://via.placeholder.com/300x450/2a2a2a/ffffff?text=Arden+Cho",
		Birthday:    date(1985, time.August, 16),
	},
	{
		FirstName:   "Ken",
		LastName:    "Jeong",
		Nationality: "American",
		Image:       "https://via.placeholder.com/300x450/2a2a2a/ffffff?text=Ken+Jeong",
		Birthday:    date(1969, time.July, 13),
	},
}

var directors = []models.Director{
	{
		FirstName:   "Scott",
		LastName:    "Derrickson",
		Nationality: "American",
		Image:       "https://media.themoviedb.org/t/p/w300_and_h450_bestv2/caapCMfXLifC7XveUiY653xWBsZ.jpg",
		Birthday:    date(1966, time.July, 16),
	},
	{
		FirstName:   "Lars",
		LastName:    "Janssen",
		Nationality: "Dutch",
		Image:       "https://via.placeholder.com/300x450/1a1a1a/ffffff?text=Lars+Janssen",
		Birthday:    date(1980, time.January, 1),
	},
	{
		FirstName:   "Maggie",
		LastName:    "Kang",
		Nationality: "American",
		Image:       "https://via.placeholder.com/300x450/1a1a1a/ffffff?text=Maggie+Kang",
		Birthday:    date(1985, time.January, 1),
	},
	{
		FirstName:   "Chris",
		LastName:    "Appelhans",
		Nationality: "American",
		Image:       "https://via.placeholder.com/300x450/1a1a1a/ffffff?text=Chris+Appelhans",
		Birthday:    date(1975, time.January, 1),
	},
}

// movieEntry links a movie to genres by name and to people by "First Last".
type movieEntry struct {
	movie     models.Movie
	genres    []string
	actors    []string
	directors []string
}

var movies = []movieEntry{
	{
		movie: models.Movie{
			Name:        "Black Phone 2",
			Image:       "https://media.themoviedb.org/t/p/w300_and_h450_bestv2/xUWUODKPIilQoFUzjHM6wKJkP3Y.jpg",
			Synopsis:    "Four years after escaping The Grabber, Finney Blake is struggling with his life after captivity. When his sister Gwen begins receiving calls in her dreams from the black phone and seeing disturbing visions of three boys being stalked at a winter camp, the siblings become determined to solve the mystery and confront a killer who has grown more powerful in death and more significant to them than either could imagine.",
			ReleaseYear: 2025,
		},
		genres:    []string{"Horror", "Thriller"},
		actors:    []string{"Ethan Hawke", "Mason Thames", "Madeleine McGraw"},
		directors: []string{"Scott Derrickson"},
	},
	{
		movie: models.Movie{
			Name:        "Captain Hook: The Cursed Tides",
			Image:       "https://media.themoviedb.org/t/p/w300_and_h450_bestv2/bcP7FtskwsNp1ikpMQJzDPjofP5.jpg",
			Synopsis:    "In the aftermath of a devastating defeat by his archnemesis Admiral Smee, Captain Hook finds refuge in the coastal town of Eldritch Landing.",
			ReleaseYear: 2025,
		},
		genres:    []string{"Adventure", "Action", "Horror"},
		actors:    []string{"Richard Rowden", "Sean Cronin"},
		directors: []string{"Lars Janssen"},
	},
	{
		movie: models.Movie{
			Name:        "KPop Demon Hunters",
			Image:       "https://media.themoviedb.org/t/p/w300_and_h450_bestv2/zT7Lhw3BhJbMkRqm9Zlx2YGMsY0.jpg",
			Synopsis:    "When K-pop superstars Rumi, Mira and Zoey aren't selling out stadiums, they're using their secret powers to protect their fans from supernatural threats.",
			ReleaseYear: 2025,
		},
		genres:    []string{"Fantasy", "Music", "Comedy", "Animation"},
		actors:    []string{"Arden Cho", "Ken Jeong"},
		directors: []string{"Maggie Kang", "Chris Appelhans"},
	},
}
