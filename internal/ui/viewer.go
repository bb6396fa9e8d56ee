package ui

import "beeftest/internal/domain"

// Viewer displays a saved run's failures
type Viewer interface {
	View(run *domain.RunRecord) error
}
