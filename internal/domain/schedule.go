package domain

// Anchor names a milestone date within a cohort's schedule.
type Anchor string

const (
	AnchorPythonStart  Anchor = "python_start"
	AnchorBigdataStart Anchor = "bigdata_start"
	AnchorAIStart      Anchor = "ai_start"
	AnchorAIEnd        Anchor = "ai_end"
)

// Schedule maps a cohort's anchors to calendar dates (YYYY-MM-DD).
// Anchors are assumed monotonic in the order declared above.
type Schedule map[Anchor]string

// Start returns the program start date (the first anchor).
func (s Schedule) Start() string {
	return s[AnchorPythonStart]
}

// End returns the program end date (the last anchor).
func (s Schedule) End() string {
	return s[AnchorAIEnd]
}
