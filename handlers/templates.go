package handlers

import (
	"embed"
	"fmt"
	"html"
	"html/template"
	"strings"

	"github.com/gobuffalo/plush"
	"github.com/markmals/workbench-docs/config"
	"github.com/pkg/errors"
)

//go:embed templates
var templateFS embed.FS

type templates struct {
	base     *plush.Template
	preview  *plush.Template
	notFound *plush.Template
}

func loadTemplates() (*templates, error) {
	var t templates
	for name, dst := range map[string]**plush.Template{
		"templates/layouts/base.plush.html": &t.base,
		"templates/preview.plush.html":      &t.preview,
		"templates/404.plush.html":          &t.notFound,
	} {
		content, err := templateFS.ReadFile(name)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		tpl, err := plush.Parse(string(content))
		if err != nil {
			return nil, errors.Wrapf(err, "error parsing %s", name)
		}
		*dst = tpl
	}
	return &t, nil
}

// layoutContext seeds a plush context with everything the base layout needs.
func layoutContext(cfg *config.SiteConfig) *plush.Context {
	ctx := plush.NewContext()
	siteTitle := cfg.Theme.SiteTitle
	if siteTitle == "" {
		siteTitle = cfg.Title
	}
	ctx.Set("siteTitle", siteTitle)
	ctx.Set("pageTitle", cfg.Title)
	ctx.Set("head", cfg.Head)
	ctx.Set("nav", cfg.Theme.Nav)
	ctx.Set("home", cfg.BasePath)
	ctx.Set("logo", "")
	if cfg.Theme.Logo != "" {
		ctx.Set("logo", cfg.Resolve(cfg.Theme.Logo))
	}
	ctx.Set("footer", "")
	if f := cfg.Theme.Footer; f != nil {
		ctx.Set("footer", strings.TrimSpace(f.Message+" "+f.Copyright))
	}
	ctx.Set("headTag", func(tag config.HeadTag) template.HTML {
		return renderHeadTag(tag)
	})
	ctx.Set("navItem", func(item config.NavItem) template.HTML {
		return renderNavItem(cfg, item)
	})
	return ctx
}

func (t *templates) render(ctx *plush.Context, page *plush.Template) (string, error) {
	content, err := page.Exec(ctx)
	if err != nil {
		return "", errors.Wrap(err, "error executing page template")
	}
	ctx.Set("yield", template.HTML(content))
	out, err := t.base.Exec(ctx)
	if err != nil {
		return "", errors.Wrap(err, "error executing base layout")
	}
	return out, nil
}

func renderHeadTag(tag config.HeadTag) template.HTML {
	var sb strings.Builder
	sb.WriteString("<")
	sb.WriteString(html.EscapeString(string(tag.Kind)))
	for _, k := range tag.SortedAttrKeys() {
		fmt.Fprintf(&sb, ` %s="%s"`, html.EscapeString(k), html.EscapeString(tag.Attrs[k]))
	}
	sb.WriteString(">")
	return template.HTML(sb.String())
}

func renderNavItem(cfg *config.SiteConfig, item config.NavItem) template.HTML {
	var sb strings.Builder
	writeNavItem(&sb, cfg, item)
	return template.HTML(sb.String())
}

func writeNavItem(sb *strings.Builder, cfg *config.SiteConfig, item config.NavItem) {
	text := html.EscapeString(item.Text)
	if !item.IsGroup() {
		fmt.Fprintf(sb, `<li><a href="%s">%s</a></li>`, html.EscapeString(cfg.Resolve(item.Link)), text)
		return
	}
	fmt.Fprintf(sb, "<li>%s<ul>", text)
	for _, child := range item.Items {
		writeNavItem(sb, cfg, child)
	}
	sb.WriteString("</ul></li>")
}
