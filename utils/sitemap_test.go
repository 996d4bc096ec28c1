package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/markmals/workbench-docs/config"
)

var buildTime = time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

func TestGenerateSitemapContent(t *testing.T) {
	cfg := config.MustWorkbench()
	out, err := GenerateSitemapContent("https://markmals.github.io/", cfg, []string{"/guide/installation", "/guide/faq"}, buildTime)
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{
		"<loc>https://markmals.github.io/workbench/</loc>",
		"<loc>https://markmals.github.io/workbench/guide/installation</loc>",
		"<loc>https://markmals.github.io/workbench/commands/init</loc>",
		"<loc>https://markmals.github.io/workbench/guide/faq</loc>",
		"<lastmod>2026-10-17</lastmod>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("sitemap missing %s", want)
		}
	}
	if strings.Contains(out, "github.com/markmals/workbench/releases") {
		t.Error("external links must not be listed")
	}
	if strings.Count(out, "<loc>https://markmals.github.io/workbench/guide/installation</loc>") != 1 {
		t.Error("duplicate routes should be listed once")
	}
	if strings.Contains(out, "#global-flags") {
		t.Error("anchors should be dropped")
	}
}

func TestGenerateSitemapWithoutCleanUrls(t *testing.T) {
	cfg := config.MustWorkbench().Clone()
	cfg.CleanUrls = false
	cfg.LastUpdated = false
	out, err := GenerateSitemapContent("https://markmals.github.io", cfg, nil, buildTime)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "<loc>https://markmals.github.io/workbench/commands/init.html</loc>") {
		t.Errorf("expected .html routes:\n%s", out)
	}
	if strings.Contains(out, "<lastmod>") {
		t.Error("lastmod should be omitted when lastUpdated is off")
	}
}

func TestGenerateSitemapRejectsRelativeOrigin(t *testing.T) {
	if _, err := GenerateSitemapContent("markmals.github.io", config.MustWorkbench(), nil, buildTime); err == nil {
		t.Fatal("expected error for relative origin")
	}
}

func TestGenerateSitemaps(t *testing.T) {
	dir := t.TempDir()
	if err := GenerateSitemaps(dir, "https://markmals.github.io", config.MustWorkbench(), nil, buildTime); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "sitemap.xml"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "<?xml") {
		t.Errorf("missing xml header: %s", data[:20])
	}
}
