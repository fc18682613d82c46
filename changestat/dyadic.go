package changestat

import (
	"math"

	"github.com/grafestim/ergmee/digraph"
)

const earthRadiusKm = 6371.0

// GeoDistance contributes the great-circle distance (km, haversine
// formula) between i and j's latitude/longitude, read from two
// continuous attribute columns: attrIndex is latitude, attrIndex2 is
// longitude. Missing either coordinate contributes 0.
func GeoDistance(g *digraph.Graph, i, j, latIndex, lonIndex int) float64 {
	lat1, lon1 := g.ContinuousAttrAt(latIndex, i), g.ContinuousAttrAt(lonIndex, i)
	lat2, lon2 := g.ContinuousAttrAt(latIndex, j), g.ContinuousAttrAt(lonIndex, j)
	if digraph.ContinuousNA(lat1) || digraph.ContinuousNA(lon1) ||
		digraph.ContinuousNA(lat2) || digraph.ContinuousNA(lon2) {
		return 0
	}

	phi1, phi2 := radians(lat1), radians(lat2)
	dPhi := radians(lat2 - lat1)
	dLambda := radians(lon2 - lon1)

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
