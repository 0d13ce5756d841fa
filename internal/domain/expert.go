package domain

// Expert is a matchable person profile. The record store owns experts; the
// matching pipeline only reads them.
type Expert struct {
	ID               int64
	Name             string
	Biography        string
	Location         string
	Availability     string
	Email            string
	Phone            string
	DesiredWork      string
	HourlyRate       float64
	CVS3Key          string
	GoogleScholarURL string
	Publications     []Publication
}

// Publication is a value record owned by an expert. Deleting the expert
// deletes its publications.
type Publication struct {
	ID    int64
	Title string
	Year  int
	URL   string
}
