package table

// GeoSource is implemented by values that expose a GeoJSON-like mapping,
// mirroring the __geo_interface__ convention from the Python geo ecosystem.
type GeoSource interface {
	// GeoInterface returns a GeoJSON-like mapping, typically a
	// FeatureCollection with a "features" list.
	GeoInterface() map[string]any
}

// HasGeoInterface reports whether value implements GeoSource.
func HasGeoInterface(value any) bool {
	_, ok := value.(GeoSource)
	return ok
}

// RecordsFromGeoInterface flattens a GeoSource into row records: one record
// per feature, holding the feature's properties plus a "geometry" key with
// the geometry's coordinates.
func RecordsFromGeoInterface(src GeoSource) []map[string]any {
	geo := src.GeoInterface()
	features, _ := geo["features"].([]any)

	records := make([]map[string]any, 0, len(features))
	for _, f := range features {
		feature, ok := f.(map[string]any)
		if !ok {
			continue
		}

		record := make(map[string]any)
		if props, ok := feature["properties"].(map[string]any); ok {
			for k, v := range props {
				record[k] = v
			}
		}
		if geometry, ok := feature["geometry"].(map[string]any); ok {
			record["geometry"] = geometry["coordinates"]
		}

		records = append(records, record)
	}

	return records
}
