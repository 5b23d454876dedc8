package geom

import "testing"

func TestParseGeoJSONFeatureCollection(t *testing.T) {
	polys, err := ParseGeoJSONPolygons([]byte(`{
		"type": "FeatureCollection",
		"features": [
			{
				"type": "Feature",
				"id": "lake",
				"geometry": {
					"type": "Polygon",
					"coordinates": [[[0,0],[10,0],[10,10],[0,10],[0,0]]]
				}
			},
			{
				"type": "Feature",
				"properties": {"name": "park"},
				"geometry": {
					"type": "MultiPolygon",
					"coordinates": [
						[[[20,20],[30,20],[30,30],[20,30],[20,20]]],
						[[[40,40],[50,40],[50,50],[40,50],[40,40]]]
					]
				}
			}
		]
	}`))
	if err != nil {
		t.Fatalf("ParseGeoJSONPolygons: %v", err)
	}
	if len(polys) != 3 {
		t.Fatalf("got %d polygons, want 3", len(polys))
	}
	if polys[0].ID != "lake" {
		t.Errorf("id = %q, want lake", polys[0].ID)
	}
	if polys[1].ID != "park" {
		t.Errorf("properties.name fallback id = %q, want park", polys[1].ID)
	}
}

func TestParseGeoJSONPolygonWithHole(t *testing.T) {
	polys, err := ParseGeoJSONPolygons([]byte(`{
		"type": "Polygon",
		"coordinates": [
			[[0,0],[100,0],[100,100],[0,100],[0,0]],
			[[40,40],[60,40],[60,60],[40,60],[40,40]]
		]
	}`))
	if err != nil {
		t.Fatalf("ParseGeoJSONPolygons: %v", err)
	}
	if len(polys) != 1 || len(polys[0].Holes) != 1 {
		t.Fatalf("polys = %d, holes = %d", len(polys), len(polys[0].Holes))
	}
}

func TestParseGeoJSONNoPolygons(t *testing.T) {
	_, err := ParseGeoJSONPolygons([]byte(`{"type":"Point","coordinates":[1,2]}`))
	if err == nil {
		t.Error("point geometry produced polygons")
	}
}

func TestParseGeoJSONInvalid(t *testing.T) {
	if _, err := ParseGeoJSONPolygons([]byte("not json")); err == nil {
		t.Error("invalid JSON accepted")
	}
}
