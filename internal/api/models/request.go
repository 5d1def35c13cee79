package models

// MarkersRequest represents the query parameters for the markers and markets
// endpoints. Both filters default to the "all" sentinel. Note that "all" only
// relaxes the neighborhood filter; the day filter is a literal membership
// test, so day=all returns an empty set.
type MarkersRequest struct {
	Day          string `form:"day"`
	Neighborhood string `form:"neighborhood"`
}
