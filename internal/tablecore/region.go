package tablecore

import "github.com/google/uuid"

// IdentifiedRegion pairs a TableRegion with a stable identifier, used by
// the dispatcher to correlate log lines and debug-overlay filenames
// across a page's regions without relying on slice position (which
// shifts as DegenerateRegion results are discarded).
type IdentifiedRegion struct {
	ID     string
	Region TableRegion
}

// IdentifyRegions assigns a fresh UUID to each region found on a page.
func IdentifyRegions(regions []TableRegion) []IdentifiedRegion {
	out := make([]IdentifiedRegion, len(regions))
	for i, r := range regions {
		out[i] = IdentifiedRegion{ID: uuid.NewString(), Region: r}
	}
	return out
}
