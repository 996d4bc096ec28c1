package utils

import (
	"encoding/xml"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/markmals/workbench-docs/config"
	"github.com/pkg/errors"
)

type Sitemap struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	Urls    []Url    `xml:"url"`
}

type Url struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

func GenerateSitemaps(outDir, origin string, cfg *config.SiteConfig, routes []string, now time.Time) error {
	xmlOutput, err := GenerateSitemapContent(origin, cfg, routes, now)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outDir, os.ModePerm); err != nil {
		return errors.WithStack(err)
	}
	xmlFile, err := os.Create(filepath.Join(outDir, "sitemap.xml"))
	if err != nil {
		return errors.WithStack(err)
	}
	defer xmlFile.Close()

	if _, err := xmlFile.Write([]byte(xml.Header)); err != nil {
		return errors.WithStack(err)
	}
	if _, err := xmlFile.Write([]byte(xmlOutput)); err != nil {
		return errors.WithStack(err)
	}
	return nil
}

// GenerateSitemapContent lists every internal nav and sidebar link plus any
// extra content routes, resolved against the base path and prefixed with
// origin. Anchors are dropped and each page appears once.
func GenerateSitemapContent(origin string, cfg *config.SiteConfig, routes []string, now time.Time) (string, error) {
	base, err := url.Parse(strings.TrimSuffix(origin, "/"))
	if err != nil || !base.IsAbs() {
		return "", errors.Errorf("sitemap origin must be an absolute URL, got %q", origin)
	}

	sitemap := Sitemap{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
	}

	lastMod := ""
	if cfg.LastUpdated {
		lastMod = now.Format("2006-01-02")
	}

	seen := make(map[string]bool)
	for _, link := range append(cfg.InternalLinks(), routes...) {
		page := pagePath(link, cfg.CleanUrls)
		if page == "" || seen[page] {
			continue
		}
		seen[page] = true
		sitemap.Urls = append(sitemap.Urls, Url{
			Loc:     base.String() + cfg.Resolve(page),
			LastMod: lastMod,
		})
	}

	xmlOutput, err := xml.MarshalIndent(sitemap, "", "  ")
	if err != nil {
		return "", errors.WithStack(err)
	}

	return string(xmlOutput), nil
}

func pagePath(link string, cleanUrls bool) string {
	if !config.IsRootRelative(link) {
		return ""
	}
	if i := strings.IndexAny(link, "?#"); i >= 0 {
		link = link[:i]
	}
	if link == "" {
		return ""
	}
	if cleanUrls {
		link = strings.TrimSuffix(link, ".html")
	} else if !strings.HasSuffix(link, "/") && !strings.HasSuffix(link, ".html") {
		link += ".html"
	}
	return link
}
