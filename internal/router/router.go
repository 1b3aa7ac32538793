package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/mitumoni-k/HackVita3.0/docs"
	"github.com/mitumoni-k/HackVita3.0/internal/aiquiz"
	"github.com/mitumoni-k/HackVita3.0/internal/config"
	"github.com/mitumoni-k/HackVita3.0/internal/middlewares"
	"github.com/mitumoni-k/HackVita3.0/internal/studyhelp"
)

type RouterConfig struct {
	AIQuizHandler    *aiquiz.Handler
	StudyHelpHandler *studyhelp.Handler
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middlewares.RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/swagger/*", httpSwagger.WrapHandler)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		config.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	aiquiz.Routes(r, cfg.AIQuizHandler)
	studyhelp.Routes(r, cfg.StudyHelpHandler)

	return r
}
