// Package catalog holds the static market configuration: tracked regions
// with their artist rosters, the audience city list, and the chart-country
// list. All lookups key on stable identifiers (geo or ISO country codes);
// flag glyphs and display names are display-only fields.
package catalog

import "github.com/michy-dev/africa-trends-live/internal/domain"

// ChartCountry identifies one streaming chart page. Code is the lowercase
// ISO code used in chart URLs and backup lookups.
type ChartCountry struct {
	Code string
	Name string
	Flag string
}

// Label renders the human-facing key used in the serialized snapshot.
func (c ChartCountry) Label() string {
	return c.Flag + " " + c.Name
}

// Catalog is the immutable set of tracked markets loaded at startup.
type Catalog struct {
	Regions        []domain.Region
	Cities         []domain.City
	ChartCountries []ChartCountry
}

// New builds a catalog, substituting defaults for any empty section.
func New(regions []domain.Region, cities []domain.City, countries []ChartCountry) *Catalog {
	cat := &Catalog{Regions: regions, Cities: cities, ChartCountries: countries}
	if len(cat.Regions) == 0 {
		cat.Regions = DefaultRegions()
	}
	if len(cat.Cities) == 0 {
		cat.Cities = DefaultCities()
	}
	if len(cat.ChartCountries) == 0 {
		cat.ChartCountries = DefaultChartCountries()
	}
	return cat
}

// Default returns the catalog with the built-in market set.
func Default() *Catalog {
	return New(nil, nil, nil)
}

// FlagForGeo resolves a region geo code to its flag glyph.
func (c *Catalog) FlagForGeo(geo string) string {
	for _, r := range c.Regions {
		if r.GeoCode == geo {
			return r.FlagGlyph
		}
	}
	return ""
}

// DefaultRegions lists the tracked markets and their artist rosters.
func DefaultRegions() []domain.Region {
	return []domain.Region{
		{
			ID:        "NIGERIA",
			Name:      "Nigeria",
			GeoCode:   "NG",
			FlagGlyph: "🇳🇬",
			Artists:   []string{"Wizkid", "Burna Boy", "Davido", "Asake", "Rema"},
		},
		{
			ID:        "SOUTH_AFRICA",
			Name:      "South Africa",
			GeoCode:   "ZA",
			FlagGlyph: "🇿🇦",
			Artists:   []string{"Tyla", "Kabza De Small", "Nasty C", "Focalistic"},
		},
		{
			ID:        "GHANA",
			Name:      "Ghana",
			GeoCode:   "GH",
			FlagGlyph: "🇬🇭",
			Artists:   []string{"Black Sherif", "Sarkodie", "Stonebwoy", "King Promise"},
		},
		{
			ID:        "KENYA",
			Name:      "Kenya",
			GeoCode:   "KE",
			FlagGlyph: "🇰🇪",
			Artists:   []string{"Sauti Sol", "Zuchu", "Diamond Platnumz", "Nviiri"},
		},
	}
}

// DefaultCities lists the audience city cards.
func DefaultCities() []domain.City {
	return []domain.City{
		{Name: "Lagos", Flag: "🇳🇬", TopArtist: "Wizkid", Searches: "2.4M"},
		{Name: "Johannesburg", Flag: "🇿🇦", TopArtist: "Kabza De Small", Searches: "1.8M"},
		{Name: "Nairobi", Flag: "🇰🇪", TopArtist: "Sauti Sol", Searches: "890K"},
		{Name: "Accra", Flag: "🇬🇭", TopArtist: "Black Sherif", Searches: "720K"},
	}
}

// DefaultChartCountries lists the streaming chart pages to scrape.
func DefaultChartCountries() []ChartCountry {
	return []ChartCountry{
		{Code: "ng", Name: "Nigeria", Flag: "🇳🇬"},
		{Code: "za", Name: "South Africa", Flag: "🇿🇦"},
		{Code: "ke", Name: "Kenya", Flag: "🇰🇪"},
		{Code: "gh", Name: "Ghana", Flag: "🇬🇭"},
	}
}
