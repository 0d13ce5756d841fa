package chi

import (
	"github.com/kailas-cloud/expertmatch/internal/domain"
	healthuc "github.com/kailas-cloud/expertmatch/internal/usecase/health"
)

// Error codes returned in the "code" field of error responses.
const (
	codeBadRequest              = "bad_request"
	codeValidationFailed        = "validation_failed"
	codeExpertNotFound          = "expert_not_found"
	codeProjectNotFound         = "project_not_found"
	codeAlreadyExists           = "already_exists"
	codeMatchServiceUnavailable = "match_service_unavailable"
	codeEmbeddingProviderError  = "embedding_provider_error"
	codeInternalError           = "internal_error"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type publicationRequest struct {
	Title string `json:"title"`
	Year  int    `json:"year,omitempty"`
	URL   string `json:"url,omitempty"`
}

type publicationResponse struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Year  int    `json:"year,omitempty"`
	URL   string `json:"url,omitempty"`
}

type expertRequest struct {
	Name             string  `json:"name"`
	Biography        string  `json:"biography,omitempty"`
	Location         string  `json:"location,omitempty"`
	Availability     string  `json:"availability,omitempty"`
	Email            string  `json:"email"`
	Phone            string  `json:"phone,omitempty"`
	DesiredWork      string  `json:"desired_work,omitempty"`
	HourlyRate       float64 `json:"hourly_rate,omitempty"`
	CVS3Key          string  `json:"cv_s3_key,omitempty"`
	GoogleScholarURL string  `json:"google_scholar_url,omitempty"`
}

type expertResponse struct {
	ID               int64                 `json:"id"`
	Name             string                `json:"name"`
	Biography        string                `json:"biography,omitempty"`
	Location         string                `json:"location,omitempty"`
	Availability     string                `json:"availability,omitempty"`
	Email            string                `json:"email"`
	Phone            string                `json:"phone,omitempty"`
	DesiredWork      string                `json:"desired_work,omitempty"`
	HourlyRate       float64               `json:"hourly_rate,omitempty"`
	CVS3Key          string                `json:"cv_s3_key,omitempty"`
	GoogleScholarURL string                `json:"google_scholar_url,omitempty"`
	Publications     []publicationResponse `json:"publications"`
}

type projectRequest struct {
	OrganizationName string  `json:"organization_name"`
	Description      string  `json:"description"`
	Qualifications   string  `json:"qualifications,omitempty"`
	StartDate        string  `json:"start_date,omitempty"`
	EndDate          string  `json:"end_date,omitempty"`
	FundingMin       float64 `json:"funding_min,omitempty"`
	FundingMax       float64 `json:"funding_max,omitempty"`
	DaysPerWeek      string  `json:"days_per_week,omitempty"`
}

type projectResponse struct {
	ID               int64   `json:"id"`
	OrganizationName string  `json:"organization_name"`
	Description      string  `json:"description"`
	Qualifications   string  `json:"qualifications,omitempty"`
	StartDate        string  `json:"start_date,omitempty"`
	EndDate          string  `json:"end_date,omitempty"`
	FundingMin       float64 `json:"funding_min,omitempty"`
	FundingMax       float64 `json:"funding_max,omitempty"`
	DaysPerWeek      string  `json:"days_per_week,omitempty"`
}

type matchResponse struct {
	Project projectResponse  `json:"project"`
	Experts []expertResponse `json:"experts"`
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func expertFromRequest(req expertRequest) domain.Expert {
	return domain.Expert{
		Name:             req.Name,
		Biography:        req.Biography,
		Location:         req.Location,
		Availability:     req.Availability,
		Email:            req.Email,
		Phone:            req.Phone,
		DesiredWork:      req.DesiredWork,
		HourlyRate:       req.HourlyRate,
		CVS3Key:          req.CVS3Key,
		GoogleScholarURL: req.GoogleScholarURL,
	}
}

func expertToResponse(e domain.Expert) expertResponse {
	pubs := make([]publicationResponse, len(e.Publications))
	for i, p := range e.Publications {
		pubs[i] = publicationResponse{
			ID:    p.ID,
			Title: p.Title,
			Year:  p.Year,
			URL:   p.URL,
		}
	}
	return expertResponse{
		ID:               e.ID,
		Name:             e.Name,
		Biography:        e.Biography,
		Location:         e.Location,
		Availability:     e.Availability,
		Email:            e.Email,
		Phone:            e.Phone,
		DesiredWork:      e.DesiredWork,
		HourlyRate:       e.HourlyRate,
		CVS3Key:          e.CVS3Key,
		GoogleScholarURL: e.GoogleScholarURL,
		Publications:     pubs,
	}
}

func projectFromRequest(req projectRequest) domain.Project {
	return domain.Project{
		OrganizationName: req.OrganizationName,
		Description:      req.Description,
		Qualifications:   req.Qualifications,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		FundingMin:       req.FundingMin,
		FundingMax:       req.FundingMax,
		DaysPerWeek:      req.DaysPerWeek,
	}
}

func projectToResponse(p domain.Project) projectResponse {
	return projectResponse{
		ID:               p.ID,
		OrganizationName: p.OrganizationName,
		Description:      p.Description,
		Qualifications:   p.Qualifications,
		StartDate:        p.StartDate,
		EndDate:          p.EndDate,
		FundingMin:       p.FundingMin,
		FundingMax:       p.FundingMax,
		DaysPerWeek:      p.DaysPerWeek,
	}
}

func matchToResponse(m domain.Match) matchResponse {
	experts := make([]expertResponse, len(m.Experts))
	for i, e := range m.Experts {
		experts[i] = expertToResponse(e)
	}
	return matchResponse{
		Project: projectToResponse(m.Project),
		Experts: experts,
	}
}

func healthToResponse(report healthuc.Report) healthResponse {
	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}
	return healthResponse{
		Status: string(report.Status),
		Checks: checks,
	}
}
