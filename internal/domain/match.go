package domain

// ExpertHit is a single k-NN result from the vector index.
type ExpertHit struct {
	ExpertID int64
	Score    float64
}

// Match is the result of ranking experts against a project. Experts are
// ordered by descending similarity; an empty list is a valid outcome.
type Match struct {
	Project Project
	Experts []Expert
}
