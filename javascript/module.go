package javascript

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/markmals/workbench-docs/config"
	"github.com/pkg/errors"
)

const ModuleName = "config.mjs"

const moduleTemplate = `import { defineConfig } from "vitepress";

// Generated by wbdocs. Edit config/workbench.go instead.
export default defineConfig(%s satisfies Parameters<typeof defineConfig>[0]);
`

// BuildConfigModule renders cfg as the ES module the site generator imports.
// The TypeScript source is passed through esbuild so a malformed literal
// fails here instead of at site build time.
func BuildConfigModule(cfg *config.SiteConfig, minify bool) ([]byte, error) {
	literal, err := config.EncodeJSON(cfg)
	if err != nil {
		return nil, err
	}

	result := api.Transform(fmt.Sprintf(moduleTemplate, literal), api.TransformOptions{
		Loader:            api.LoaderTS,
		Format:            api.FormatESModule,
		Target:            api.ES2020,
		Sourcefile:        "config.mts",
		MinifyWhitespace:  minify,
		MinifySyntax:      minify,
		MinifyIdentifiers: minify,
		LegalComments:     api.LegalCommentsNone,
	})

	if len(result.Errors) > 0 {
		msgs := make([]string, 0, len(result.Errors))
		for _, m := range result.Errors {
			msgs = append(msgs, m.Text)
		}
		return nil, errors.Errorf("error transforming config module: %s", strings.Join(msgs, "; "))
	}

	return result.Code, nil
}

// EmitConfigModule writes the module into outDir and returns its path.
func EmitConfigModule(cfg *config.SiteConfig, outDir string, minify bool) (string, error) {
	code, err := BuildConfigModule(cfg, minify)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(outDir, os.ModePerm); err != nil {
		return "", errors.WithStack(err)
	}
	newPath := filepath.Join(outDir, ModuleName)
	if err := os.WriteFile(newPath, code, 0644); err != nil {
		return "", errors.Wrapf(err, "error writing %s", newPath)
	}

	return newPath, nil
}
