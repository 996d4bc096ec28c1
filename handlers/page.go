package handlers

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/rs/zerolog/log"
)

type Page interface {
	Render(w http.ResponseWriter, r *http.Request, ps httprouter.Params) (string, error)
}

// servePage adapts a Page to an httprouter handle.
func servePage(p Page) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		body, err := p.Render(w, r, ps)
		if err != nil {
			log.Logger.Error().Err(err).Str("path", r.URL.Path).Msg("error rendering page")
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if _, err := w.Write([]byte(body)); err != nil {
			log.Logger.Warn().Err(err).Str("path", r.URL.Path).Msg("error writing response")
		}
	}
}
