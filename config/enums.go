package config

type SocialIcon string

const (
	IconDiscord   SocialIcon = "discord"
	IconFacebook  SocialIcon = "facebook"
	IconGitHub    SocialIcon = "github"
	IconInstagram SocialIcon = "instagram"
	IconLinkedIn  SocialIcon = "linkedin"
	IconMastodon  SocialIcon = "mastodon"
	IconNpm       SocialIcon = "npm"
	IconSlack     SocialIcon = "slack"
	IconTwitter   SocialIcon = "twitter"
	IconX         SocialIcon = "x"
	IconYouTube   SocialIcon = "youtube"
)

// KnownSocialIcons is the set of icon identifiers the default theme ships.
var KnownSocialIcons = []SocialIcon{
	IconDiscord,
	IconFacebook,
	IconGitHub,
	IconInstagram,
	IconLinkedIn,
	IconMastodon,
	IconNpm,
	IconSlack,
	IconTwitter,
	IconX,
	IconYouTube,
}

type SearchProvider string

const (
	SearchLocal   SearchProvider = "local"
	SearchAlgolia SearchProvider = "algolia"
)

var KnownSearchProviders = []SearchProvider{SearchLocal, SearchAlgolia}

// KnownSyntaxThemes lists the bundled highlighter themes that may be named in
// markdown.theme.
var KnownSyntaxThemes = []string{
	"dracula",
	"github-dark",
	"github-dark-dimmed",
	"github-light",
	"material-theme",
	"material-theme-darker",
	"material-theme-lighter",
	"min-dark",
	"min-light",
	"monokai",
	"nord",
	"one-dark-pro",
	"one-light",
	"slack-dark",
	"slack-ochin",
	"solarized-dark",
	"solarized-light",
	"vitesse-dark",
	"vitesse-light",
}
