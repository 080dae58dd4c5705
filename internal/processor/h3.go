package processor

import (
	"github.com/woozymasta/randomgeojson/internal/geo"

	"github.com/uber/h3-go/v4"
)

const (
	// NoH3 disables H3 tagging.
	NoH3 = -1

	maxH3Resolution = 15
	h3Property      = "h3"
)

// cellOf returns the H3 cell containing the first position of g.
func cellOf(g geo.Geometry, resolution int) string {
	first := g.First()
	cell := h3.LatLngToCell(h3.NewLatLng(first.Lat(), first.Lon()), resolution)

	return cell.String()
}
