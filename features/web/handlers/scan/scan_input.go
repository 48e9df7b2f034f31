package scan

// ScanInput is the JSON payload for POST /scan/url.
type ScanInput struct {
	URL string `json:"url" validate:"required"`
	// SkipFetch evaluates lexical and list features only.
	SkipFetch bool `json:"skip_fetch"`
}

// URLQueryInput binds GET /scan?url=... style requests.
type URLQueryInput struct {
	URL string `param:"url" query:"url" form:"url" json:"url" xml:"url" validate:"required"`
}
