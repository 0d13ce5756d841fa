package domain

// Project is a funding or work opportunity, the query side of matching.
type Project struct {
	ID               int64
	OrganizationName string
	Description      string
	Qualifications   string
	StartDate        string
	EndDate          string
	FundingMin       float64
	FundingMax       float64
	DaysPerWeek      string
}
