package catalog

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const (
	previewTabWidth  = 4
	noDescription    = "No description available."
	maxDescribeLines = 64
)

// ReadPreview returns the script body split into display lines. Tabs are
// expanded and escape sequences stripped so the text is safe to draw.
func ReadPreview(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return []string{}, nil
	}
	lines := strings.Split(text, "\n")
	tab := strings.Repeat(" ", previewTabWidth)
	for i, line := range lines {
		lines[i] = strings.ReplaceAll(ansi.Strip(line), "\t", tab)
	}
	return lines, nil
}

// Description returns the description for the script at path. Entries from
// desc.toml win; otherwise the leading comment block of the script is used.
func (c *Catalog) Description(path string) (string, error) {
	if s, ok := c.Lookup(path); ok && s.Description != "" {
		return s.Description, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	if desc := leadingComment(data); desc != "" {
		return desc, nil
	}
	return noDescription, nil
}

func leadingComment(data []byte) string {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	var lines []string
	first := true
	for scanner.Scan() && len(lines) < maxDescribeLines {
		line := strings.TrimSpace(scanner.Text())
		if first {
			first = false
			if strings.HasPrefix(line, "#!") {
				continue
			}
		}
		if !strings.HasPrefix(line, "#") {
			if line == "" && len(lines) == 0 {
				continue
			}
			break
		}
		text := strings.TrimSpace(strings.TrimLeft(line, "#"))
		lines = append(lines, text)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
