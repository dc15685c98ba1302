package routeguide

import (
	routeguidev1 "github.com/louisbranch/routeguide/api/gen/go/routeguide/v1"
	"github.com/louisbranch/routeguide/internal/routeguide/features"
	"github.com/louisbranch/routeguide/internal/routeguide/geo"
	"github.com/louisbranch/routeguide/internal/routeguide/notes"
)

// Proto conversion helpers. A nil proto point converts to the zero point;
// coordinate ranges are not validated.

func pointFromProto(p *routeguidev1.Point) geo.Point {
	return geo.Point{
		Latitude:  p.GetLatitude(),
		Longitude: p.GetLongitude(),
	}
}

func pointToProto(p geo.Point) *routeguidev1.Point {
	return &routeguidev1.Point{
		Latitude:  p.Latitude,
		Longitude: p.Longitude,
	}
}

func featureToProto(f features.Feature) *routeguidev1.Feature {
	return &routeguidev1.Feature{
		Name:     f.Name,
		Location: pointToProto(f.Location),
	}
}

func noteToProto(n notes.Note) *routeguidev1.RouteNote {
	return &routeguidev1.RouteNote{
		Location: pointToProto(n.Location),
		Message:  n.Message,
	}
}
