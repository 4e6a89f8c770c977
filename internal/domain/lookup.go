package domain

// LookupKind classifies the outcome of an encyclopedia lookup.
type LookupKind int

// Lookup outcomes.
const (
	LookupFound LookupKind = iota
	LookupNotFound
	LookupAmbiguous
)

// LookupResult is the outcome of an encyclopedia lookup.
// Summary is set only when Kind is LookupFound.
type LookupResult struct {
	Summary string
	Kind    LookupKind
}

// Found returns a successful lookup result.
func Found(summary string) LookupResult {
	return LookupResult{Kind: LookupFound, Summary: summary}
}

// NotFound returns a page-not-found lookup result.
func NotFound() LookupResult {
	return LookupResult{Kind: LookupNotFound}
}

// Ambiguous returns a disambiguation lookup result.
func Ambiguous() LookupResult {
	return LookupResult{Kind: LookupAmbiguous}
}

// WeatherReport holds the current weather conditions for a city.
// OK is false when the provider reported a non-success status code.
type WeatherReport struct {
	Description string
	Temperature float64 // degrees Celsius
	Humidity    int     // percent
	OK          bool
}

// NewsReport holds the top headlines response.
type NewsReport struct {
	Status   string
	Articles []Article
}

// Article is a single news headline.
type Article struct {
	Title  string
	Source string
}
