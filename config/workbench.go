package config

const (
	fontsCSSHost    = "https://fonts.googleapis.com"
	fontsStaticHost = "https://fonts.gstatic.com"
	repositoryURL   = "https://github.com/markmals/workbench"
)

// Workbench returns the one canonical configuration for the Workbench
// documentation site. It reads nothing from the environment, so two calls
// always produce equal values.
func Workbench() (*SiteConfig, error) {
	sidebar, err := NewSidebarMap(
		Sidebar("/guide/",
			Section("Introduction",
				NavLink("What is Workbench?", "/guide/"),
				NavLink("Installation", "/guide/installation"),
				NavLink("Getting Started", "/guide/getting-started"),
			),
			Section("Projects",
				NavLink("Project Kinds", "/guide/project-kinds"),
				NavLink("Features", "/guide/features"),
				NavLink("Configuration", "/guide/configuration"),
				NavLink("Archiving Projects", "/guide/archiving"),
			),
		),
		Sidebar("/commands/",
			Section("Commands",
				NavLink("Overview", "/commands/"),
				NavLink("wb init", "/commands/init"),
				NavLink("wb add", "/commands/add"),
				NavLink("wb rm", "/commands/rm"),
				NavLink("wb update", "/commands/update"),
				NavLink("wb archive", "/commands/archive"),
				NavLink("wb restore", "/commands/restore"),
				NavLink("wb version", "/commands/version"),
			),
			Section("Global Flags",
				NavLink("--cwd, --json, --verbose", "/commands/#global-flags"),
			),
		),
	)
	if err != nil {
		return nil, err
	}

	return New(SiteConfig{
		SiteMeta: SiteMeta{
			Title:       "Workbench",
			Description: "Documentation for the Workbench CLI",
			BasePath:    "/workbench/",
			LastUpdated: true,
			CleanUrls:   true,
		},
		Markdown: MarkdownOptions{
			Theme: SyntaxThemes{Dark: "github-dark", Light: "github-light"},
		},
		Head: []HeadTag{
			Icon("/workbench/workbench-icon.png", "image/png"),
			Preconnect(fontsCSSHost, false),
			Preconnect(fontsStaticHost, true),
			Stylesheet(fontsCSSHost + "/css2?family=Montserrat:ital,wght@0,600;0,700;0,800;0,900;1,600;1,700;1,800;1,900&display=swap"),
			Stylesheet(fontsCSSHost + "/css2?family=JetBrains+Mono:ital,wght@0,400;0,500;0,600;0,700;1,400;1,500;1,600;1,700&display=swap"),
			Stylesheet(fontsCSSHost + "/css2?family=Inter:wght@100;200;300;400;500;600;700;800;900&display=swap"),
			OpenGraph("og:type", "website"),
			OpenGraph("og:title", "Workbench"),
			OpenGraph("og:description", "Bootstrap, evolve, and archive projects from one CLI"),
			OpenGraph("og:image", "https://markmals.github.io/workbench/og-image.png"),
			NamedMeta("twitter:card", "summary_large_image"),
		},
		Theme: ThemeConfig{
			Logo:      "/workbench-icon.png",
			SiteTitle: "Workbench",
			Nav: []NavItem{
				NavLink("Home", "/"),
				{Text: "Guide", Link: "/guide/", ActiveMatch: "^/guide/"},
				{Text: "Commands", Link: "/commands/", ActiveMatch: "^/commands/"},
				NavGroup("Resources",
					NavLink("Configuration Reference", "/guide/configuration"),
					NavLink("Releases", repositoryURL+"/releases"),
				),
			},
			Sidebar: sidebar,
			SocialLinks: []SocialLink{
				{Icon: IconGitHub, Link: repositoryURL},
			},
			Search: SearchConfig{Provider: SearchLocal},
			EditLink: &EditLink{
				Pattern: repositoryURL + "/edit/main/docs/:path",
				Text:    "Edit this page on GitHub",
			},
			Footer: &Footer{
				Message:   "Built for the wb command line.",
				Copyright: "Copyright © Workbench contributors",
			},
		},
	})
}

// MustWorkbench is Workbench for package-level initialisation.
func MustWorkbench() *SiteConfig {
	cfg, err := Workbench()
	if err != nil {
		panic(err)
	}
	return cfg
}
