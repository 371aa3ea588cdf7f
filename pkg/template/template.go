// Package template provides helpers for working with {{variable}}
// placeholders embedded in prompt content.
package template

import "regexp"

var variablePattern = regexp.MustCompile(`\{\{(\w+)\}\}`)

// Variables returns the placeholder names found in content, in order of
// first appearance. A placeholder that occurs more than once is reported
// once. Content with no placeholders yields an empty slice, never nil.
func Variables(content string) []string {
	matches := variablePattern.FindAllStringSubmatch(content, -1)

	names := make([]string, 0, len(matches))
	seen := make(map[string]struct{}, len(matches))

	for _, m := range matches {
		name := m[1]
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}

	return names
}
