package main

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ishaan1911/portfolio/internal/config"
	"github.com/ishaan1911/portfolio/internal/content"
	"github.com/ishaan1911/portfolio/internal/render"
	"github.com/ishaan1911/portfolio/internal/server"
	"github.com/ishaan1911/portfolio/internal/view"
)

var (
	exportDir   string
	exportTheme string
	contentPath string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Write the portfolio as a static HTML page",
	Long: `Writes index.html and its stylesheet with every section revealed and no
live view behind it, for hosting as plain files.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		theme := view.Theme(exportTheme)
		if theme != view.ThemeLight && theme != view.ThemeDark {
			return errors.Errorf("invalid theme %q: want light or dark", exportTheme)
		}
		path, err := exportContentPath(contentPath, cfgFile)
		if err != nil {
			return err
		}
		m, err := loadContent(path)
		if err != nil {
			return err
		}
		return exportSite(exportDir, theme, m)
	},
}

// exportContentPath picks the content file for render: the --content flag
// wins, then content.path from config.
func exportContentPath(flag, cfgPath string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return "", err
	}
	return cfg.Content.Path, nil
}

func init() {
	renderCmd.Flags().StringVarP(&exportDir, "out", "o", "dist", "output directory")
	renderCmd.Flags().StringVar(&exportTheme, "theme", string(view.ThemeDark), "theme to render: light or dark")
	renderCmd.Flags().StringVar(&contentPath, "content", "", "portfolio YAML file (default is content.path from config, else the embedded portfolio)")
}

// exportSite renders a static snapshot of the page into dir.
func exportSite(dir string, theme view.Theme, m *content.Model) error {
	rd, err := render.New()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Join(dir, "static"), 0o755); err != nil {
		return errors.Wrap(err, "failed to create output directory")
	}

	f, err := os.Create(filepath.Join(dir, "index.html"))
	if err != nil {
		return errors.Wrap(err, "failed to create index.html")
	}
	defer f.Close()

	err = rd.Page(f, render.Page{
		Snapshot: view.Snapshot{
			Theme:    theme,
			Revealed: content.Sections(),
			Typing:   false,
		},
		Content: m,
		Assets:  "static",
	})
	if err != nil {
		return err
	}

	css, err := fs.ReadFile(server.Assets(), "portfolio.css")
	if err != nil {
		return errors.Wrap(err, "failed to read stylesheet")
	}
	if err := os.WriteFile(filepath.Join(dir, "static", "portfolio.css"), css, 0o644); err != nil {
		return errors.Wrap(err, "failed to write stylesheet")
	}

	slog.Info("rendered static portfolio", "dir", dir, "theme", theme)
	return f.Close()
}
