package weather

import "go-weather/internal/domain/entity"

// QueryKind tells how a location is looked up
type QueryKind int

const (
	ByPostalCode QueryKind = iota
	ByCityRegion
)

func (k QueryKind) String() string {
	if k == ByCityRegion {
		return "city-region"
	}
	return "postal-code"
}

// LocationQuery is the single target derived from the user supplied fields
type LocationQuery struct {
	Kind       QueryKind
	PostalCode string
	City       string
	Region     string
}

// Value renders the query in the form the provider accepts in its q parameter
func (q LocationQuery) Value() string {
	if q.Kind == ByCityRegion {
		return q.City + "," + q.Region
	}
	return q.PostalCode
}

// NormalizeLocation picks the query for a search. The postal code wins whenever it is present;
// city and region are used only together. With nothing usable the (empty) postal code is sent
// and the provider reports the error.
func NormalizeLocation(postalCode, city, region string) LocationQuery {
	if postalCode == entity.UndefinedMarker {
		postalCode = ""
	}

	if postalCode == "" && city != "" && region != "" {
		return LocationQuery{Kind: ByCityRegion, City: city, Region: region}
	}
	return LocationQuery{Kind: ByPostalCode, PostalCode: postalCode}
}
