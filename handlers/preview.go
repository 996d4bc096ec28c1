package handlers

import (
	"html/template"
	"net/http"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/parser"
	"github.com/julienschmidt/httprouter"
	"github.com/markmals/workbench-docs/config"
	"github.com/microcosm-cc/bluemonday"
)

// PreviewPage shows what the generator will put around a page: head tags, the
// top nav and the sidebar selected for the page path.
type PreviewPage struct {
	cfg       *config.SiteConfig
	templates *templates
	policy    *bluemonday.Policy
}

func newPreviewPage(cfg *config.SiteConfig, t *templates) *PreviewPage {
	return &PreviewPage{cfg: cfg, templates: t, policy: bluemonday.UGCPolicy()}
}

func (p *PreviewPage) Render(w http.ResponseWriter, r *http.Request, ps httprouter.Params) (string, error) {
	page := p.pagePath(ps.ByName("page"))

	ctx := layoutContext(p.cfg)
	ctx.Set("page", page)
	ctx.Set("description", p.description())

	prefix, sections, ok := p.cfg.SidebarFor(page)
	if !ok {
		prefix, sections = "", nil
	}
	ctx.Set("sidebarPrefix", prefix)
	ctx.Set("sections", sections)

	return p.templates.render(ctx, p.templates.preview)
}

// pagePath accepts both site-root paths (/guide/) and paths that already
// carry the base (/workbench/guide/).
func (p *PreviewPage) pagePath(raw string) string {
	if raw == "" {
		raw = "/"
	}
	if !strings.HasPrefix(raw, "/") {
		raw = "/" + raw
	}
	base := p.cfg.BasePath
	if base != "/" && (strings.HasPrefix(raw, base) || raw+"/" == base) {
		raw = "/" + strings.TrimPrefix(strings.TrimPrefix(raw, strings.TrimSuffix(base, "/")), "/")
	}
	return raw
}

func (p *PreviewPage) description() template.HTML {
	extensions := parser.CommonExtensions | parser.AutoHeadingIDs
	out := markdown.ToHTML([]byte(p.cfg.Description), parser.NewWithExtensions(extensions), nil)
	return template.HTML(p.policy.SanitizeBytes(out))
}

func newPreviewRouter(cfg *config.SiteConfig, t *templates) *httprouter.Router {
	router := httprouter.New()
	router.GET("/preview/*page", servePage(newPreviewPage(cfg, t)))
	router.NotFound = custom404Handler(cfg, t)
	return router
}
