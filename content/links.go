package content

import (
	"net/url"
	"path"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
	"github.com/gomarkdown/markdown/parser"
)

func newParser() *parser.Parser {
	return parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
}

// ExtractLinks returns the internal link targets of a Markdown body as
// root-relative routes. Relative targets are resolved against route; external
// links and same-page anchors are dropped.
func ExtractLinks(route string, body []byte) []string {
	doc := markdown.Parse(body, newParser())

	seen := make(map[string]bool)
	var links []string
	ast.WalkFunc(doc, func(node ast.Node, entering bool) ast.WalkStatus {
		if !entering {
			return ast.GoToNext
		}
		link, ok := node.(*ast.Link)
		if !ok {
			return ast.GoToNext
		}
		target, ok := normalize(route, string(link.Destination))
		if ok && !seen[target] {
			seen[target] = true
			links = append(links, target)
		}
		return ast.GoToNext
	})
	return links
}

func normalize(route, dest string) (string, bool) {
	dest = strings.TrimSpace(dest)
	if dest == "" || strings.HasPrefix(dest, "#") || strings.HasPrefix(dest, "//") {
		return "", false
	}
	u, err := url.Parse(dest)
	if err != nil || u.Scheme != "" {
		return "", false
	}

	p := u.Path
	if !strings.HasPrefix(p, "/") {
		dir := route
		if !strings.HasSuffix(dir, "/") {
			dir = path.Dir(dir) + "/"
		}
		trailing := strings.HasSuffix(p, "/")
		p = path.Join(dir, p)
		if trailing && p != "/" {
			p += "/"
		}
	}
	p = strings.TrimSuffix(p, ".md")
	p = strings.TrimSuffix(p, ".html")
	if strings.HasSuffix(p, "/index") {
		p = strings.TrimSuffix(p, "index")
	}
	return p, true
}
