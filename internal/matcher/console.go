package matcher

import (
	"regexp"
	"strings"

	"tcm/internal/domain"
)

// propertyMarker matches console markers of the form [[PROPERTY|key=value]]
var propertyMarker = regexp.MustCompile(`\[\[PROPERTY\|([^=\]]+)=([^\]]*)\]\]`)

// ParseProperties extracts all console property markers from lines.
// A key emitted more than once keeps its last value.
func ParseProperties(lines []string) map[string]string {
	props := make(map[string]string)
	for _, line := range lines {
		for _, m := range propertyMarker.FindAllStringSubmatch(line, -1) {
			props[strings.TrimSpace(m[1])] = strings.TrimSpace(m[2])
		}
	}
	return props
}

// LookupProperty returns the last value emitted for key
func LookupProperty(lines []string, key string) (string, bool) {
	var (
		value string
		found bool
	)
	for _, line := range lines {
		for _, m := range propertyMarker.FindAllStringSubmatch(line, -1) {
			if strings.TrimSpace(m[1]) == key {
				value, found = strings.TrimSpace(m[2]), true
			}
		}
	}
	return value, found
}

// FormatProperty renders a console property marker
func FormatProperty(key, value string) string {
	return "[[PROPERTY|" + key + "=" + value + "]]"
}

type propertyStrategy struct {
	key string
}

func newPropertyStrategy(key string) (*propertyStrategy, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, &ConfigurationError{Field: "property", Msg: "property key is required for the property strategy"}
	}
	if strings.ContainsAny(key, "=]|") {
		return nil, &ConfigurationError{Field: "property", Msg: "property key " + key + " contains a reserved character"}
	}
	return &propertyStrategy{key: key}, nil
}

func (s *propertyStrategy) caseID(result domain.TestResult) string {
	v, _ := LookupProperty(result.ConsoleOutput, s.key)
	return v
}
