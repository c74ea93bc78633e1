package geo

import (
	"math"
	"strings"
	"testing"
)

func TestPointRoundTrip(t *testing.T) {
	wkbBytes, err := PointWKB(36.8219, -1.2921)
	if err != nil {
		t.Fatalf("PointWKB: %v", err)
	}

	lon, lat, err := Coordinates(wkbBytes)
	if err != nil {
		t.Fatalf("Coordinates: %v", err)
	}
	if math.Abs(lon-36.8219) > 1e-9 || math.Abs(lat-(-1.2921)) > 1e-9 {
		t.Errorf("round trip = (%v, %v), want (36.8219, -1.2921)", lon, lat)
	}
}

func TestGeoJSON(t *testing.T) {
	wkbBytes, err := PointWKB(36.8219, -1.2921)
	if err != nil {
		t.Fatalf("PointWKB: %v", err)
	}

	s, err := GeoJSON(wkbBytes)
	if err != nil {
		t.Fatalf("GeoJSON: %v", err)
	}
	if !strings.Contains(s, `"Point"`) || !strings.Contains(s, "36.8219") {
		t.Errorf("GeoJSON = %s", s)
	}
}

func TestEmptyBytes(t *testing.T) {
	if s, err := GeoJSON(nil); err != nil || s != "" {
		t.Errorf("GeoJSON(nil) = %q, %v", s, err)
	}
	if lon, lat, err := Coordinates(nil); err != nil || lon != 0 || lat != 0 {
		t.Errorf("Coordinates(nil) = %v, %v, %v", lon, lat, err)
	}
}
