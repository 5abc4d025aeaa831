package config

import (
	"io/fs"
	"regexp"
	"strings"

	"github.com/AlexTLDR/little-lemon/static"
)

// ThemeConfig holds the light and dark theme names
// These are parsed from the embedded static/css/input.css
type ThemeConfig struct {
	Light string
	Dark  string
}

var themesPattern = regexp.MustCompile(`themes:\s*([a-zA-Z0-9-]+)\s+--default\s*,\s*([a-zA-Z0-9-]+)\s+--prefersdark`)

// GetThemes returns the current theme configuration by parsing static/css/input.css
// Falls back to lemonade (light) and forest (dark) if parsing fails
func GetThemes() ThemeConfig {
	return themesFrom(static.FS)
}

func themesFrom(fsys fs.FS) ThemeConfig {
	if content, err := fs.ReadFile(fsys, "css/input.css"); err == nil {
		if themes := parseThemesFromCSS(string(content)); themes != nil {
			return *themes
		}
	}

	return ThemeConfig{
		Light: "lemonade",
		Dark:  "forest",
	}
}

// parseThemesFromCSS extracts theme names from the DaisyUI plugin configuration
// Expected format: themes: themeName --default, themeName --prefersdark;
func parseThemesFromCSS(content string) *ThemeConfig {
	matches := themesPattern.FindStringSubmatch(content)
	if len(matches) == 3 {
		return &ThemeConfig{
			Light: strings.TrimSpace(matches[1]),
			Dark:  strings.TrimSpace(matches[2]),
		}
	}
	return nil
}
