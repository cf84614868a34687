package feed

// Profile describes the header layout of an offer feed. Column names are
// compared case-insensitively.
type Profile struct {
	Name        string
	IDCol       string // empty when ids are derived from URLCol
	URLCol      string
	TitleCol    string
	CategoryCol string // optional
}

// requiredCols returns the column names that must be present for this profile to match.
// The URL column is only required when it is the source of the id.
func (p Profile) requiredCols() []string {
	if p.IDCol == "" {
		return []string{p.URLCol, p.TitleCol}
	}

	return []string{p.IDCol, p.TitleCol}
}

// profiles is the ordered list of feed layouts tried during detection.
// Profiles with an id column come first so that feeds carrying both an id and a
// URL keep their own ids.
var profiles = []Profile{
	{
		Name:        "aerooffers",
		IDCol:       "id",
		URLCol:      "url",
		TitleCol:    "title",
		CategoryCol: "category",
	},
	{
		Name:        "de",
		IDCol:       "id",
		URLCol:      "url",
		TitleCol:    "titel",
		CategoryCol: "kategorie",
	},
	{
		Name:        "spider",
		URLCol:      "url",
		TitleCol:    "title",
		CategoryCol: "category",
	},
}
