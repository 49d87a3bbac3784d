package matcher

import (
	"strings"

	"golang.org/x/text/cases"

	"tcm/internal/domain"
)

type knownCase struct {
	key    string
	folded string
}

type nameStrategy struct {
	known []knownCase
}

func newNameStrategy(tcs []domain.TestCase) *nameStrategy {
	known := make([]knownCase, 0, len(tcs))
	for _, tc := range tcs {
		if strings.TrimSpace(tc.Name) == "" {
			continue
		}
		known = append(known, knownCase{key: tc.Key(), folded: simplifyName(tc.Name)})
	}
	return &nameStrategy{known: known}
}

func (s *nameStrategy) caseID(result domain.TestResult) string {
	for _, candidate := range nameCandidates(result) {
		folded := simplifyName(candidate)
		for _, k := range s.known {
			if k.folded == folded {
				return k.key
			}
		}
	}
	return ""
}

// nameCandidates orders the names to try: an explicit display name first, then the method name.
// Frameworks default the display name to the method name (JUnit adds "()"), which is not explicit.
func nameCandidates(result domain.TestResult) []string {
	var out []string
	display := strings.TrimSpace(result.DisplayName)
	if display != "" && display != result.Name && display != result.Name+"()" {
		out = append(out, display)
	}
	if result.Name != "" {
		out = append(out, result.Name)
	}
	return out
}

var separators = strings.NewReplacer(" ", "_", "-", "_")

// simplifyName case-folds s and treats space, dash and underscore as one separator.
// A new Caser is created per call since Casers are not safe for concurrent use.
func simplifyName(s string) string {
	return separators.Replace(cases.Fold().String(strings.TrimSpace(s)))
}
