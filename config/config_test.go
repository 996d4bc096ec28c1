package config

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func mutate(t *testing.T, fn func(cfg *SiteConfig)) error {
	t.Helper()
	cfg := MustWorkbench().Clone()
	fn(cfg)
	return cfg.Validate()
}

func requirePath(t *testing.T, err error, path string) *ValidationError {
	t.Helper()
	if err == nil {
		t.Fatalf("expected validation error at %s, got nil", path)
	}
	var verr *ValidationErrors
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationErrors, got %T: %v", err, err)
	}
	for _, e := range verr.Errors() {
		if e.Path == path {
			return e
		}
	}
	t.Fatalf("no violation at %s in:\n%v", path, err)
	return nil
}

func TestWorkbenchIsValidAndDeterministic(t *testing.T) {
	a, err := Workbench()
	if err != nil {
		t.Fatalf("canonical config invalid: %v", err)
	}
	b, err := Workbench()
	if err != nil {
		t.Fatalf("canonical config invalid: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatal("two calls to Workbench returned different values")
	}
	if a == b {
		t.Fatal("Workbench must return a fresh value per call")
	}
}

func TestRootRelativeLinksResolveUnderBase(t *testing.T) {
	cfg := MustWorkbench()
	refs := cfg.Links()
	if len(refs) == 0 {
		t.Fatal("expected nav and sidebar links")
	}
	for _, ref := range refs {
		if !IsRootRelative(ref.Link) {
			continue
		}
		resolved := cfg.Resolve(ref.Link)
		if !strings.HasPrefix(resolved, cfg.BasePath) {
			t.Errorf("%s: %s resolved to %s outside %s", ref.Path, ref.Link, resolved, cfg.BasePath)
		}
	}
}

func TestResolveLink(t *testing.T) {
	tests := []struct {
		base, link, want string
	}{
		{"/workbench/", "/", "/workbench/"},
		{"/workbench/", "/guide/installation", "/workbench/guide/installation"},
		{"/workbench", "/guide/", "/workbench/guide/"},
		{"/", "/commands/init", "/commands/init"},
		{"/workbench/", "https://github.com/markmals/workbench", "https://github.com/markmals/workbench"},
		{"/workbench/", "//cdn.example.com/x.css", "//cdn.example.com/x.css"},
	}
	for _, tt := range tests {
		if got := ResolveLink(tt.base, tt.link); got != tt.want {
			t.Errorf("ResolveLink(%q, %q) = %q, want %q", tt.base, tt.link, got, tt.want)
		}
	}
}

func TestPreconnectPrecedesStylesheet(t *testing.T) {
	cfg := MustWorkbench()
	first := map[string]int{}
	for i, tag := range cfg.Head {
		if tag.Rel() == "preconnect" {
			if _, ok := first[tag.Host()]; !ok {
				first[tag.Host()] = i
			}
		}
	}
	for i, tag := range cfg.Head {
		if tag.Rel() != "stylesheet" {
			continue
		}
		if p, ok := first[tag.Host()]; ok && p > i {
			t.Errorf("stylesheet head[%d] loads before preconnect head[%d]", i, p)
		}
	}

	err := mutate(t, func(cfg *SiteConfig) {
		// Move the first preconnect after the stylesheets.
		pre := cfg.Head[1]
		cfg.Head = append(append([]HeadTag{}, cfg.Head[:1]...), cfg.Head[2:]...)
		cfg.Head = append(cfg.Head, pre)
	})
	e := requirePath(t, err, "head[10]")
	if !strings.Contains(e.Reason, "fonts.googleapis.com") {
		t.Errorf("reason should name the host, got %q", e.Reason)
	}
}

func TestHeadTagHost(t *testing.T) {
	tests := []struct {
		href string
		want string
	}{
		{"https://fonts.googleapis.com/css2", "fonts.googleapis.com"},
		{"https://FONTS.googleapis.com/css2", "fonts.googleapis.com"},
		{"https://fonts.googleapis.com:443/css2", "fonts.googleapis.com"},
		{"http://fonts.googleapis.com:80", "fonts.googleapis.com"},
		{"https://fonts.googleapis.com:8443/css2", "fonts.googleapis.com:8443"},
		{"/workbench/style.css", ""},
	}
	for _, tt := range tests {
		if got := Stylesheet(tt.href).Host(); got != tt.want {
			t.Errorf("Host(%q) = %q, want %q", tt.href, got, tt.want)
		}
	}
}

func TestPreconnectOrderingIgnoresHostCase(t *testing.T) {
	err := mutate(t, func(cfg *SiteConfig) {
		early := Stylesheet("https://FONTS.googleapis.com:443/css2?family=Inter&display=swap")
		cfg.Head = append([]HeadTag{cfg.Head[0], early}, cfg.Head[1:]...)
	})
	requirePath(t, err, "head[2]")
}

func TestBasePathValidation(t *testing.T) {
	tests := []struct {
		name  string
		base  string
		valid bool
	}{
		{"missing leading slash", "workbench", false},
		{"missing trailing slash", "/workbench", false},
		{"empty", "", false},
		{"root", "/", true},
		{"nested", "/docs/workbench/", true},
		{"double slash", "/docs//", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := mutate(t, func(cfg *SiteConfig) { cfg.BasePath = tt.base })
			if tt.valid {
				if err != nil {
					t.Fatalf("expected valid, got %v", err)
				}
				return
			}
			requirePath(t, err, "basePath")
		})
	}
}

func TestBasePathErrorIsValidationError(t *testing.T) {
	err := mutate(t, func(cfg *SiteConfig) { cfg.BasePath = "workbench" })
	var single *ValidationError
	if !errors.As(err, &single) {
		t.Fatalf("expected a *ValidationError in %v", err)
	}
	if single.Path != "basePath" {
		t.Errorf("path = %q, want basePath", single.Path)
	}
}

func TestUnknownSocialIcon(t *testing.T) {
	err := mutate(t, func(cfg *SiteConfig) {
		cfg.Theme.SocialLinks = append(cfg.Theme.SocialLinks, SocialLink{
			Icon: "bitbucket-unknown",
			Link: "https://bitbucket.org/workbench",
		})
	})
	e := requirePath(t, err, "themeConfig.socialLinks[1].icon")
	if !strings.Contains(e.Reason, "github") {
		t.Errorf("reason should list known icons, got %q", e.Reason)
	}
}

func TestSocialLinkMustBeAbsolute(t *testing.T) {
	err := mutate(t, func(cfg *SiteConfig) { cfg.Theme.SocialLinks[0].Link = "/github" })
	requirePath(t, err, "themeConfig.socialLinks[0].link")
}

func TestNavItemShape(t *testing.T) {
	tests := []struct {
		name string
		item NavItem
		path string
	}{
		{"link and items", NavItem{Text: "Both", Link: "/x", Items: []NavItem{NavLink("A", "/a")}}, "themeConfig.nav[4]"},
		{"neither", NavItem{Text: "Nothing"}, "themeConfig.nav[4]"},
		{"empty group", NavItem{Text: "Empty", Items: []NavItem{}}, "themeConfig.nav[4].items"},
		{"missing text", NavLink("", "/x"), "themeConfig.nav[4].text"},
		{"nested bad link", NavGroup("More", NavLink("Up", "/guide/../../etc")), "themeConfig.nav[4].items[0].link"},
		{"relative link", NavLink("Rel", "guide/"), "themeConfig.nav[4].link"},
		{"bad scheme", NavLink("FTP", "ftp://example.com"), "themeConfig.nav[4].link"},
		{"bad activeMatch", NavItem{Text: "Re", Link: "/re", ActiveMatch: "(["}, "themeConfig.nav[4].activeMatch"},
		{"link repeats base", NavLink("Dup", "/workbench/guide/"), "themeConfig.nav[4].link"},
		{"link is base", NavLink("Dup", "/workbench"), "themeConfig.nav[4].link"},
		{"nested link repeats base", NavGroup("More", NavLink("Dup", "/workbench/commands/")), "themeConfig.nav[4].items[0].link"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := mutate(t, func(cfg *SiteConfig) { cfg.Theme.Nav = append(cfg.Theme.Nav, tt.item) })
			requirePath(t, err, tt.path)
		})
	}
}

func TestSidebarValidation(t *testing.T) {
	err := mutate(t, func(cfg *SiteConfig) {
		cfg.Theme.Sidebar["/reference"] = []SidebarSection{Section("Reference", NavLink("API", "/reference/api"))}
	})
	e := requirePath(t, err, `themeConfig.sidebar["/reference"]`)
	if !strings.Contains(e.Reason, "not terminated with trailing slash") {
		t.Errorf("unexpected reason %q", e.Reason)
	}

	err = mutate(t, func(cfg *SiteConfig) {
		cfg.Theme.Sidebar["/guide/"][0].Items = nil
	})
	requirePath(t, err, `themeConfig.sidebar["/guide/"][0].items`)

	err = mutate(t, func(cfg *SiteConfig) {
		cfg.Theme.Sidebar["/commands/"][0].Text = ""
	})
	requirePath(t, err, `themeConfig.sidebar["/commands/"][0].text`)
}

func TestNewSidebarMapDuplicates(t *testing.T) {
	guide := Section("Guide", NavLink("Intro", "/guide/"))
	if _, err := NewSidebarMap(Sidebar("/guide/", guide), Sidebar("/guide/", guide)); err != nil {
		t.Fatalf("identical duplicate should be accepted: %v", err)
	}

	_, err := NewSidebarMap(
		Sidebar("/guide/", guide),
		Sidebar("/guide/", Section("Other", NavLink("Else", "/guide/else"))),
	)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if verr.Path != `themeConfig.sidebar["/guide/"]` {
		t.Errorf("path = %q", verr.Path)
	}
}

func TestMarkdownThemes(t *testing.T) {
	err := mutate(t, func(cfg *SiteConfig) { cfg.Markdown.Theme.Dark = "not-a-theme" })
	requirePath(t, err, "markdown.theme.dark")
}

func TestSearchProvider(t *testing.T) {
	err := mutate(t, func(cfg *SiteConfig) { cfg.Theme.Search.Provider = "elastic" })
	requirePath(t, err, "themeConfig.search.provider")

	err = mutate(t, func(cfg *SiteConfig) { cfg.Theme.Search.Provider = SearchAlgolia })
	requirePath(t, err, "themeConfig.search.options")

	err = mutate(t, func(cfg *SiteConfig) {
		cfg.Theme.Search = SearchConfig{
			Provider: SearchAlgolia,
			Algolia:  &AlgoliaOptions{AppID: "APP", APIKey: "key", IndexName: "workbench"},
		}
	})
	if err != nil {
		t.Fatalf("complete algolia config should validate: %v", err)
	}
}

func TestHeadTagShape(t *testing.T) {
	err := mutate(t, func(cfg *SiteConfig) {
		cfg.Head = append(cfg.Head, Meta(map[string]string{"content": "orphan"}))
	})
	requirePath(t, err, "head[11]")

	err = mutate(t, func(cfg *SiteConfig) {
		cfg.Head = append(cfg.Head, HeadTag{Kind: "script", Attrs: map[string]string{"src": "/x.js"}})
	})
	requirePath(t, err, "head[11].kind")
}

func TestEditLinkPattern(t *testing.T) {
	err := mutate(t, func(cfg *SiteConfig) { cfg.Theme.EditLink.Pattern = "https://github.com/markmals/workbench" })
	requirePath(t, err, "themeConfig.editLink.pattern")
}

func TestNewCopiesInput(t *testing.T) {
	src := *MustWorkbench()
	cfg, err := New(src)
	if err != nil {
		t.Fatal(err)
	}
	src.Theme.Nav[0].Text = "Changed"
	src.Head[0].Attrs["href"] = "/changed.png"
	if cfg.Theme.Nav[0].Text != "Home" {
		t.Error("nav shares storage with the input")
	}
	if cfg.Head[0].Href() == "/changed.png" {
		t.Error("head attributes share storage with the input")
	}
}

func TestErrorsCollectsEveryViolation(t *testing.T) {
	err := mutate(t, func(cfg *SiteConfig) {
		cfg.Title = ""
		cfg.BasePath = "workbench"
		cfg.Theme.SocialLinks[0].Icon = "myspace"
	})
	var verr *ValidationErrors
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationErrors, got %v", err)
	}
	for _, path := range []string{"title", "basePath", "themeConfig.socialLinks[0].icon"} {
		if !verr.Has(path) {
			t.Errorf("missing violation for %s", path)
		}
	}
}
