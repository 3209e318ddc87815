package domain

// Span names and attribute keys emitted by the scanner.
const (
	// SpanScanRepository covers one repository from listing to its last row.
	SpanScanRepository = "scan.repository"

	// SpanResolveContributor covers one contributor's location and country lookup.
	SpanResolveContributor = "scan.contributor"

	// AttrRepository is the owner/name of the repository being scanned.
	AttrRepository = "gitgeo.repository"

	// AttrContributor is the login of the contributor being resolved.
	AttrContributor = "gitgeo.contributor"

	// AttrRows is the number of rows produced for a repository.
	AttrRows = "gitgeo.rows"

	// AttrCountry is the resolved country of a contributor.
	AttrCountry = "gitgeo.country"
)
