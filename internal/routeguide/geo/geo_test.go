package geo

import "testing"

func TestNormalize_CornerOrderIndependent(t *testing.T) {
	lo := Point{Latitude: 400000000, Longitude: -750000000}
	hi := Point{Latitude: 420000000, Longitude: -730000000}

	forward := Normalize(lo, hi)
	swapped := Normalize(hi, lo)
	if forward != swapped {
		t.Fatalf("Normalize(lo, hi) = %+v, Normalize(hi, lo) = %+v", forward, swapped)
	}
	want := Bounds{Left: -750000000, Right: -730000000, Top: 420000000, Bottom: 400000000}
	if forward != want {
		t.Fatalf("bounds = %+v, want %+v", forward, want)
	}
}

func TestNormalize_MixedAxes(t *testing.T) {
	// Corners that are not the min/min and max/max pair.
	a := Point{Latitude: 420000000, Longitude: -750000000}
	b := Point{Latitude: 400000000, Longitude: -730000000}

	got := Normalize(a, b)
	want := Bounds{Left: -750000000, Right: -730000000, Top: 420000000, Bottom: 400000000}
	if got != want {
		t.Fatalf("bounds = %+v, want %+v", got, want)
	}
}

func TestBoundsContains(t *testing.T) {
	bounds := Normalize(
		Point{Latitude: 0, Longitude: 0},
		Point{Latitude: 100, Longitude: 100},
	)

	testCases := []struct {
		name  string
		point Point
		want  bool
	}{
		{name: "interior", point: Point{Latitude: 50, Longitude: 50}, want: true},
		{name: "left edge", point: Point{Latitude: 50, Longitude: 0}, want: true},
		{name: "right edge", point: Point{Latitude: 50, Longitude: 100}, want: true},
		{name: "top edge", point: Point{Latitude: 100, Longitude: 50}, want: true},
		{name: "bottom edge", point: Point{Latitude: 0, Longitude: 50}, want: true},
		{name: "corner", point: Point{Latitude: 100, Longitude: 100}, want: true},
		{name: "west of bounds", point: Point{Latitude: 50, Longitude: -1}, want: false},
		{name: "east of bounds", point: Point{Latitude: 50, Longitude: 101}, want: false},
		{name: "south of bounds", point: Point{Latitude: -1, Longitude: 50}, want: false},
		{name: "north of bounds", point: Point{Latitude: 101, Longitude: 50}, want: false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := bounds.Contains(tc.point); got != tc.want {
				t.Fatalf("Contains(%+v) = %v, want %v", tc.point, got, tc.want)
			}
		})
	}
}

func TestDistance_KnownValues(t *testing.T) {
	testCases := []struct {
		name string
		a, b Point
		want int
	}{
		{
			name: "across the valley",
			a:    Point{Latitude: 407838351, Longitude: -746143763},
			b:    Point{Latitude: 408122808, Longitude: -743999179},
			want: 18327,
		},
		{
			name: "short hop",
			a:    Point{Latitude: 405002031, Longitude: -748407866},
			b:    Point{Latitude: 404999226, Longitude: -748386049},
			want: 187,
		},
		{
			name: "one degree of latitude",
			a:    Point{Latitude: 0, Longitude: 0},
			b:    Point{Latitude: 10000000, Longitude: 0},
			want: 111194,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Distance(tc.a, tc.b); got != tc.want {
				t.Fatalf("Distance = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestDistance_Symmetric(t *testing.T) {
	a := Point{Latitude: 409146138, Longitude: -746188906}
	b := Point{Latitude: 409642286, Longitude: -746017679}

	if Distance(a, b) != Distance(b, a) {
		t.Fatalf("Distance(a, b) = %d, Distance(b, a) = %d", Distance(a, b), Distance(b, a))
	}
}

func TestDistance_SamePointIsZero(t *testing.T) {
	p := Point{Latitude: 407838351, Longitude: -746143763}
	if got := Distance(p, p); got != 0 {
		t.Fatalf("Distance(p, p) = %d, want 0", got)
	}
}
