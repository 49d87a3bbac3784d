package ui

import "tcm/internal/domain"

// Viewer displays a match report interactively
type Viewer interface {
	View(report *domain.MatchReport) error
}
