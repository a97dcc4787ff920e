package service

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-relations-map/models"
)

// Layout selects how the people list is presented and how search failures
// are reported.
type Layout string

const (
	// LayoutCompact shows at most [CompactOptionLimit] people per slot by
	// name only, and silently empties the list when a search fails.
	LayoutCompact Layout = "compact"

	// LayoutFull shows every returned person as "nombre (curso)" and
	// surfaces search failures as a message.
	LayoutFull Layout = "full"
)

// CompactOptionLimit is the number of options per slot in [LayoutCompact].
const CompactOptionLimit = 5

// ParseLayout parses a layout name, case-insensitively. An empty name selects
// [LayoutCompact].
func ParseLayout(name string) (Layout, error) {
	switch Layout(strings.ToLower(strings.TrimSpace(name))) {
	case "", LayoutCompact:
		return LayoutCompact, nil
	case LayoutFull:
		return LayoutFull, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownLayout, name)
	}
}

// Options returns the people offered in each selection slot. The slice is a
// prefix of people; order is never changed.
func (l Layout) Options(people []models.Person) []models.Person {
	if l == LayoutCompact && len(people) > CompactOptionLimit {
		return people[:CompactOptionLimit]
	}
	return people
}

// PersonLabel renders one option.
func (l Layout) PersonLabel(p models.Person) string {
	if l == LayoutCompact {
		return p.Nombre
	}
	return p.Label()
}

// SearchErrorPolicy returns the failure policy bound to the layout.
func (l Layout) SearchErrorPolicy() SearchErrorPolicy {
	if l == LayoutFull {
		return SurfaceSearchError
	}
	return ClearOnSearchError
}
