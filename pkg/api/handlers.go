package api

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

func (a *API) root(w http.ResponseWriter, r *http.Request) {
	endpoints := envelope{
		"health":    "/health",
		"genres":    "/genres",
		"actors":    "/actors",
		"directors": "/directors",
		"movies":    "/movies",
		"metrics":   "/metrics",
	}

	if a.cfg.IsDevelopment() {
		endpoints["debug"] = "/debug"
	}

	a.writeJSON(w, http.StatusOK, envelope{
		"message":   "Movies API",
		"version":   version,
		"endpoints": endpoints,
	})
}

func (a *API) health(w http.ResponseWriter, r *http.Request) {
	a.writeJSON(w, http.StatusOK, envelope{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
	})
}

func (a *API) debug(w http.ResponseWriter, r *http.Request) {
	db := a.cfg.DatabaseConfig

	a.writeJSON(w, http.StatusOK, envelope{
		"env": envelope{
			"APP_ENV":          a.cfg.Env,
			"PORT":             a.cfg.ServerConfig.Port,
			"DB_DRIVER":        db.Driver,
			"DB_INIT":          db.Init,
			"DB_HOST":          db.Host,
			"DB_NAME":          db.Name,
			"DB_USER":          db.User,
			"HAS_DB_PASSWORD":  db.Password != "",
			"HAS_DATABASE_URL": db.DatabaseURL != "",
			"DB_READY":         a.store.Ready(),
		},
		"routes": a.routes,
	})
}

func (a *API) setMovieGenres(w http.ResponseWriter, r *http.Request) {
	setRelation(a, w, r, "genres", a.movies.SetGenres)
}

func (a *API) setMovieActors(w http.ResponseWriter, r *http.Request) {
	setRelation(a, w, r, "actors", a.movies.SetActors)
}

func (a *API) setMovieDirectors(w http.ResponseWriter, r *http.Request) {
	setRelation(a, w, r, "directors", a.movies.SetDirectors)
}

// setRelation replaces one association set of a movie from a JSON array of
// ids and answers with the related records. A body that is not an array
// reaches the service as nil and is rejected there.
func setRelation[R any](a *API, w http.ResponseWriter, r *http.Request, relation string, set func(context.Context, uint, []int64) ([]R, error)) {
	message := fmt.Sprintf("Error setting movie %s", relation)

	ids, err := readIDs(r)
	if err != nil {
		a.serviceError(w, r, err, message)
		return
	}

	id, ok := a.readIDParam(w, r, a.movies.Resource())
	if !ok {
		return
	}

	related, err := set(r.Context(), id, ids)
	if err != nil {
		a.serviceError(w, r, err, message)
		return
	}

	a.writeJSON(w, http.StatusOK, related)
}
