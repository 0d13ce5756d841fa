package record

import "github.com/kailas-cloud/expertmatch/internal/domain"

type expertModel struct {
	ID               int64  `gorm:"primaryKey"`
	Name             string `gorm:"not null"`
	Biography        string
	Location         string
	Availability     string
	Email            string `gorm:"uniqueIndex;not null"`
	Phone            string
	DesiredWork      string
	HourlyRate       float64
	CVS3Key          string
	GoogleScholarURL string
	Publications     []publicationModel `gorm:"foreignKey:ExpertID;constraint:OnDelete:CASCADE"`
}

func (expertModel) TableName() string { return "experts" }

type publicationModel struct {
	ID       int64 `gorm:"primaryKey"`
	ExpertID int64 `gorm:"index;not null"`
	Title    string `gorm:"not null"`
	Year     int
	URL      string
}

func (publicationModel) TableName() string { return "publications" }

type projectModel struct {
	ID               int64  `gorm:"primaryKey"`
	OrganizationName string `gorm:"not null"`
	Description      string
	Qualifications   string
	StartDate        string
	EndDate          string
	FundingMin       float64
	FundingMax       float64
	DaysPerWeek      string
}

func (projectModel) TableName() string { return "projects" }

func expertToModel(e *domain.Expert) expertModel {
	pubs := make([]publicationModel, len(e.Publications))
	for i, p := range e.Publications {
		pubs[i] = publicationToModel(e.ID, &p)
	}
	return expertModel{
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

func expertFromModel(m *expertModel) domain.Expert {
	pubs := make([]domain.Publication, len(m.Publications))
	for i, p := range m.Publications {
		pubs[i] = domain.Publication{ID: p.ID, Title: p.Title, Year: p.Year, URL: p.URL}
	}
	return domain.Expert{
		ID:               m.ID,
		Name:             m.Name,
		Biography:        m.Biography,
		Location:         m.Location,
		Availability:     m.Availability,
		Email:            m.Email,
		Phone:            m.Phone,
		DesiredWork:      m.DesiredWork,
		HourlyRate:       m.HourlyRate,
		CVS3Key:          m.CVS3Key,
		GoogleScholarURL: m.GoogleScholarURL,
		Publications:     pubs,
	}
}

func publicationToModel(expertID int64, p *domain.Publication) publicationModel {
	return publicationModel{
		ID:       p.ID,
		ExpertID: expertID,
		Title:    p.Title,
		Year:     p.Year,
		URL:      p.URL,
	}
}

func projectToModel(p *domain.Project) projectModel {
	return projectModel{
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

func projectFromModel(m *projectModel) domain.Project {
	return domain.Project{
		ID:               m.ID,
		OrganizationName: m.OrganizationName,
		Description:      m.Description,
		Qualifications:   m.Qualifications,
		StartDate:        m.StartDate,
		EndDate:          m.EndDate,
		FundingMin:       m.FundingMin,
		FundingMax:       m.FundingMax,
		DaysPerWeek:      m.DaysPerWeek,
	}
}
