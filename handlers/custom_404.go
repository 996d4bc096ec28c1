package handlers

import (
	"net/http"

	"github.com/markmals/workbench-docs/config"
	"github.com/rs/zerolog/log"
)

func custom404Handler(cfg *config.SiteConfig, t *templates) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := layoutContext(cfg)
		ctx.Set("pageTitle", "Not Found")
		ctx.Set("path", r.URL.Path)

		body, err := t.render(ctx, t.notFound)
		if err != nil {
			log.Logger.Error().Err(err).Msg("error rendering 404 page")
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(body))
	}
}
