package config

import (
	"bytes"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

const configHeader = "#:schema ./" + schemaFileName + "\n# scanclip configuration. Environment variables SCANCLIP_<SECTION>_<KEY> override these values.\n\n"

var tableHeader = regexp.MustCompile(`^\s*\[([^\]]+)\]\s*$`)

// WriteConfigOrdered writes cfg as TOML with tables sorted by name, so the
// generated file is stable across releases.
func WriteConfigOrdered(cfg *Config, path string) error {
	content, err := MarshalOrdered(cfg)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, content, filePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// MarshalOrdered encodes cfg the way WriteConfigOrdered stores it.
func MarshalOrdered(cfg *Config) ([]byte, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)

	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}

	return []byte(configHeader + sortTOMLSections(buf.String())), nil
}

// sortTOMLSections reorders tables alphabetically. Keys before the first
// table stay on top.
func sortTOMLSections(content string) string {
	type table struct {
		name  string
		lines []string
	}

	var (
		top    []string
		tables []table
	)
	for _, line := range strings.Split(content, "\n") {
		if m := tableHeader.FindStringSubmatch(line); m != nil {
			tables = append(tables, table{name: m[1], lines: []string{line}})
			continue
		}
		if len(tables) == 0 {
			top = append(top, line)
			continue
		}
		last := &tables[len(tables)-1]
		last.lines = append(last.lines, line)
	}

	sort.SliceStable(tables, func(i, j int) bool {
		return tables[i].name < tables[j].name
	})

	blocks := make([]string, 0, len(tables)+1)
	if head := strings.TrimSpace(strings.Join(top, "\n")); head != "" {
		blocks = append(blocks, head)
	}
	for _, t := range tables {
		blocks = append(blocks, strings.TrimRight(strings.Join(t.lines, "\n"), "\n "))
	}

	if len(blocks) == 0 {
		return ""
	}
	return strings.Join(blocks, "\n\n") + "\n"
}
