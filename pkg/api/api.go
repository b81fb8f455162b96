// Package api exposes the catalog services over HTTP.
package api

import (
	"log/slog"
	"net/http"
	"sort"

	"github.com/julienschmidt/httprouter"
	"github.com/leminhohoho/movie-lens/api/pkg/config"
	"github.com/leminhohoho/movie-lens/api/pkg/models"
	"github.com/leminhohoho/movie-lens/api/pkg/service"
	"github.com/leminhohoho/movie-lens/api/pkg/store"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
)

const version = "1.0.0"

type API struct {
	cfg    config.AppConfig
	logger *slog.Logger
	store  *store.Store

	genres    *service.GenreService
	actors    *service.ActorService
	directors *service.DirectorService
	movies    *service.MovieService

	metrics *metrics
	limiter *rate.Limiter
	routes  []route
}

type route struct {
	Method string `json:"method"`
	Path   string `json:"path"`
}

func New(cfg config.AppConfig, logger *slog.Logger, s *store.Store) *API {
	a := &API{
		cfg:       cfg,
		logger:    logger,
		store:     s,
		genres:    service.NewGenreService(s, logger),
		actors:    service.NewActorService(s, logger),
		directors: service.NewDirectorService(s, logger),
		movies:    service.NewMovieService(s, logger),
		metrics:   newMetrics(),
	}

	if cfg.ServerConfig.RateLimitRPS > 0 {
		a.limiter = rate.NewLimiter(rate.Limit(cfg.ServerConfig.RateLimitRPS), cfg.ServerConfig.RateLimitBurst)
	}

	return a
}

// Routes builds the router and wraps it in the middleware chain.
func (a *API) Routes() http.Handler {
	router := httprouter.New()
	router.NotFound = http.HandlerFunc(a.routeNotFound)
	router.MethodNotAllowed = http.HandlerFunc(a.methodNotAllowed)
	a.routes = a.routes[:0]

	a.handle(router, http.MethodGet, "/", a.root)
	a.handle(router, http.MethodGet, "/health", a.health)
	a.handle(router, http.MethodGet, "/metrics", promhttp.HandlerFor(a.metrics.registry, promhttp.HandlerOpts{}).ServeHTTP)

	if a.cfg.IsDevelopment() {
		a.handle(router, http.MethodGet, "/debug", a.debug)
	}

	registerResource(a, router, "/genres", &resourceHandlers[models.Genre]{
		api: a, svc: a.genres, name: "genre", decode: decodeGenre,
	})
	registerResource(a, router, "/actors", &resourceHandlers[models.Actor]{
		api: a, svc: a.actors, name: "actor", decode: decodeActor, summarize: actorSummaries,
	})
	registerResource(a, router, "/directors", &resourceHandlers[models.Director]{
		api: a, svc: a.directors, name: "director", decode: decodeDirector, summarize: directorSummaries,
	})
	registerResource(a, router, "/movies", &resourceHandlers[models.Movie]{
		api: a, svc: a.movies, name: "movie", decode: decodeMovie,
	})

	a.handle(router, http.MethodPost, "/movies/:id/genres", a.requireStore(a.setMovieGenres))
	a.handle(router, http.MethodPost, "/movies/:id/actors", a.requireStore(a.setMovieActors))
	a.handle(router, http.MethodPost, "/movies/:id/directors", a.requireStore(a.setMovieDirectors))

	sort.SliceStable(a.routes, func(i, j int) bool { return a.routes[i].Path < a.routes[j].Path })

	return a.recoverPanic(a.requestID(a.logRequest(a.cors(a.rateLimit(router)))))
}

// handle registers h and instruments it under its route pattern.
func (a *API) handle(router *httprouter.Router, method string, path string, h http.HandlerFunc) {
	router.Handler(method, path, a.instrument(method, path, h))
	a.routes = append(a.routes, route{Method: method, Path: path})
}
