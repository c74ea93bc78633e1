package geo

import (
	"encoding/binary"
	"errors"

	"github.com/twpayne/go-geom"
	gjson "github.com/twpayne/go-geom/encoding/geojson"
	"github.com/twpayne/go-geom/encoding/wkb"
)

var ErrNotAPoint = errors.New("geometry is not a point")

// PointWKB encodes a longitude/latitude pair as a WKB point (SRID 4326)
// for storage in the jobs.location geometry column.
func PointWKB(longitude, latitude float64) ([]byte, error) {
	p := geom.NewPointFlat(geom.XY, []float64{longitude, latitude})
	p.SetSRID(4326)
	return wkb.Marshal(p, binary.LittleEndian)
}

// Coordinates decodes a stored WKB point back into longitude/latitude.
func Coordinates(wkbBytes []byte) (longitude, latitude float64, err error) {
	if len(wkbBytes) == 0 {
		return 0, 0, nil
	}
	g, err := wkb.Unmarshal(wkbBytes)
	if err != nil {
		return 0, 0, err
	}
	p, ok := g.(*geom.Point)
	if !ok {
		return 0, 0, ErrNotAPoint
	}
	c := p.Coords()
	return c.X(), c.Y(), nil
}

// GeoJSON converts a stored WKB point into a GeoJSON string for API
// responses.
func GeoJSON(wkbBytes []byte) (string, error) {
	if len(wkbBytes) == 0 {
		return "", nil
	}
	g, err := wkb.Unmarshal(wkbBytes)
	if err != nil {
		return "", err
	}
	b, err := gjson.Marshal(g)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
