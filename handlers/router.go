package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/markmals/workbench-docs/config"
	"github.com/markmals/workbench-docs/utils"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

type sidebarResponse struct {
	Path     string                  `json:"path"`
	Prefix   string                  `json:"prefix"`
	Sections []config.SidebarSection `json:"sections"`
}

// SetupRouter serves a read-only view of cfg. cfg is shared by every handler
// and must not be modified after this call. routes are extra content routes
// listed in the sitemap.
func SetupRouter(cfg *config.SiteConfig, origin string, routes []string) (*mux.Router, error) {
	t, err := loadTemplates()
	if err != nil {
		return nil, err
	}

	jsonDoc, err := config.EncodeJSON(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "error encoding config")
	}
	yamlDoc, err := config.EncodeYAML(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "error encoding config")
	}
	sitemap, err := utils.GenerateSitemapContent(origin, cfg, routes, time.Now())
	if err != nil {
		return nil, errors.Wrap(err, "error generating sitemap")
	}

	router := mux.NewRouter()
	router.NotFoundHandler = custom404Handler(cfg, t)
	router.Use(logRequests)

	router.HandleFunc("/config.json", writeDoc("application/json", jsonDoc)).Methods("GET")
	router.HandleFunc("/config.yaml", writeDoc("application/yaml", yamlDoc)).Methods("GET")
	router.HandleFunc("/sitemap.xml", writeDoc("application/xml", []byte(sitemap))).Methods("GET")
	router.HandleFunc("/sidebar", sidebarHandler(cfg)).Methods("GET").Queries("path", "{path}")
	router.PathPrefix("/preview/").Handler(newPreviewRouter(cfg, t))
	router.Handle("/", http.RedirectHandler("/preview/", http.StatusFound))

	return router, nil
}

func writeDoc(contentType string, body []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Write(body)
	}
}

func sidebarHandler(cfg *config.SiteConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		path := mux.Vars(r)["path"]
		prefix, sections, ok := cfg.SidebarFor(path)
		if !ok {
			http.Error(w, "no sidebar for "+path, http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(sidebarResponse{Path: path, Prefix: prefix, Sections: sections}); err != nil {
			log.Logger.Warn().Err(err).Msg("error writing sidebar response")
		}
	}
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Logger.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("took", time.Since(start)).
			Msg("request")
	})
}
