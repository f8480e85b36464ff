package styles

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/scanclip/internal/domain/entity"
)

// sectionOrder is the order sections appear in config.toml.
var sectionOrder = []string{
	"Scan",
	"Camera",
	"Permission",
	"Clipboard",
	"Database",
	"Logging",
}

// ConfigSchemaRenderer renders configuration schema information.
type ConfigSchemaRenderer struct {
	theme *Theme
}

// NewConfigSchemaRenderer creates a new ConfigSchemaRenderer.
func NewConfigSchemaRenderer(theme *Theme) *ConfigSchemaRenderer {
	return &ConfigSchemaRenderer{theme: theme}
}

// Render renders the configuration schema in styled format.
func (r *ConfigSchemaRenderer) Render(keys []entity.ConfigKeyInfo) string {
	if len(keys) == 0 {
		return r.theme.Subtle.Render("No configuration keys found")
	}

	sections := groupBySection(keys)
	parts := []string{r.renderHeader(), ""}

	for _, section := range sectionOrder {
		if sectionKeys, ok := sections[section]; ok {
			parts = append(parts, r.renderSection(section, sectionKeys), "")
			delete(sections, section)
		}
	}

	// Sections without a fixed slot go last.
	for _, key := range keys {
		if sectionKeys, ok := sections[key.Section]; ok {
			parts = append(parts, r.renderSection(key.Section, sectionKeys), "")
			delete(sections, key.Section)
		}
	}

	return strings.Join(parts, "\n")
}

// RenderJSON renders the configuration schema as JSON.
func (*ConfigSchemaRenderer) RenderJSON(keys []entity.ConfigKeyInfo) (string, error) {
	data, err := json.MarshalIndent(keys, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal schema: %w", err)
	}
	return string(data), nil
}

func (r *ConfigSchemaRenderer) renderHeader() string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	return fmt.Sprintf("%s %s", iconStyle.Render(IconConfig), r.theme.Title.Render("Config Keys"))
}

func groupBySection(keys []entity.ConfigKeyInfo) map[string][]entity.ConfigKeyInfo {
	sections := make(map[string][]entity.ConfigKeyInfo)
	for _, key := range keys {
		sections[key.Section] = append(sections[key.Section], key)
	}
	return sections
}

func (r *ConfigSchemaRenderer) renderSection(name string, keys []entity.ConfigKeyInfo) string {
	lines := make([]string, 0, len(keys))
	for _, key := range keys {
		lines = append(lines, r.renderKey(key))
	}

	content := r.theme.Highlight.Render(name) + "\n" + strings.Join(lines, "\n")
	return r.theme.Box.PaddingTop(0).Render(content)
}

func (r *ConfigSchemaRenderer) renderKey(key entity.ConfigKeyInfo) string {
	keyStyle := r.theme.Normal.Bold(true)
	defaultStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	defaultValue := key.Default
	if defaultValue == "" {
		defaultValue = `""`
	}

	result := fmt.Sprintf("%s  %s  %s",
		keyStyle.Render(key.Key),
		r.theme.Subtle.Render(key.Type),
		defaultStyle.Render(defaultValue),
	)
	result += "\n  " + r.theme.Subtle.Render(key.Description)

	switch {
	case len(key.Values) > 0:
		result += "\n  " + r.theme.Normal.Render("Values: "+strings.Join(key.Values, ", "))
	case key.Range != "":
		result += "\n  " + r.theme.Normal.Render("Range: "+key.Range)
	}

	return result
}
