package config

// config/site.go

type SiteConfig struct {
	SiteMeta `yaml:",inline" msgpack:",inline"`
	Markdown MarkdownOptions `json:"markdown" yaml:"markdown" msgpack:"markdown"`
	Head     []HeadTag       `json:"head,omitempty" yaml:"head,omitempty" msgpack:"head"`
	Theme    ThemeConfig     `json:"themeConfig" yaml:"themeConfig" msgpack:"themeConfig"`
}

type SiteMeta struct {
	Title       string `json:"title" yaml:"title" msgpack:"title"`
	Description string `json:"description,omitempty" yaml:"description,omitempty" msgpack:"description"`
	BasePath    string `json:"base" yaml:"base" msgpack:"base"`
	LastUpdated bool   `json:"lastUpdated,omitempty" yaml:"lastUpdated,omitempty" msgpack:"lastUpdated"`
	CleanUrls   bool   `json:"cleanUrls,omitempty" yaml:"cleanUrls,omitempty" msgpack:"cleanUrls"`
}

type MarkdownOptions struct {
	Theme       SyntaxThemes `json:"theme" yaml:"theme" msgpack:"theme"`
	LineNumbers bool         `json:"lineNumbers,omitempty" yaml:"lineNumbers,omitempty" msgpack:"lineNumbers"`
}

type SyntaxThemes struct {
	Dark  string `json:"dark" yaml:"dark" msgpack:"dark"`
	Light string `json:"light" yaml:"light" msgpack:"light"`
}

type ThemeConfig struct {
	Logo        string       `json:"logo,omitempty" yaml:"logo,omitempty" msgpack:"logo"`
	SiteTitle   string       `json:"siteTitle,omitempty" yaml:"siteTitle,omitempty" msgpack:"siteTitle"`
	Nav         []NavItem    `json:"nav,omitempty" yaml:"nav,omitempty" msgpack:"nav"`
	Sidebar     SidebarMap   `json:"sidebar,omitempty" yaml:"sidebar,omitempty" msgpack:"sidebar"`
	SocialLinks []SocialLink `json:"socialLinks,omitempty" yaml:"socialLinks,omitempty" msgpack:"socialLinks"`
	Search      SearchConfig `json:"search" yaml:"search" msgpack:"search"`
	EditLink    *EditLink    `json:"editLink,omitempty" yaml:"editLink,omitempty" msgpack:"editLink"`
	Footer      *Footer      `json:"footer,omitempty" yaml:"footer,omitempty" msgpack:"footer"`
}

type SocialLink struct {
	Icon SocialIcon `json:"icon" yaml:"icon" msgpack:"icon"`
	Link string     `json:"link" yaml:"link" msgpack:"link"`
}

type SearchConfig struct {
	Provider SearchProvider  `json:"provider" yaml:"provider" msgpack:"provider"`
	Algolia  *AlgoliaOptions `json:"options,omitempty" yaml:"options,omitempty" msgpack:"options"`
}

type AlgoliaOptions struct {
	AppID     string `json:"appId" yaml:"appId" msgpack:"appId"`
	APIKey    string `json:"apiKey" yaml:"apiKey" msgpack:"apiKey"`
	IndexName string `json:"indexName" yaml:"indexName" msgpack:"indexName"`
}

// EditLink points readers at the source of the page they are on. Pattern
// must contain the :path placeholder.
type EditLink struct {
	Pattern string `json:"pattern" yaml:"pattern" msgpack:"pattern"`
	Text    string `json:"text,omitempty" yaml:"text,omitempty" msgpack:"text"`
}

type Footer struct {
	Message   string `json:"message,omitempty" yaml:"message,omitempty" msgpack:"message"`
	Copyright string `json:"copyright,omitempty" yaml:"copyright,omitempty" msgpack:"copyright"`
}
