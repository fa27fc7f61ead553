package layout

import (
	"io"

	"github.com/cosmichound/multitimer/internal/core/model"
)

// Layout style indexes, cycled with the 't' key
const (
	StyleFull = iota
	StyleMinimal
	styleCount
)

// LayoutStrategy defines the interface for different layout rendering strategies
type LayoutStrategy interface {
	Render(w io.Writer, dash *model.Dashboard, param model.LayoutParam)
	GetName() string
}

// GetLayoutStrategy returns the appropriate layout strategy based on the style
func GetLayoutStrategy(layoutStyle int) LayoutStrategy {
	strategies := map[int]LayoutStrategy{
		StyleFull:    &FullLayoutStrategy{},
		StyleMinimal: &MinimalLayoutStrategy{},
	}

	if strategy, exists := strategies[layoutStyle]; exists {
		return strategy
	}

	// Default to full dashboard if invalid style
	return &FullLayoutStrategy{}
}

// NextStyle cycles to the following layout style
func NextStyle(layoutStyle int) int {
	return (layoutStyle + 1) % styleCount
}

// StyleFromName maps a config name onto a style index
func StyleFromName(name string) int {
	if name == "minimal" {
		return StyleMinimal
	}
	return StyleFull
}
