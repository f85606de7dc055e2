package job

import (
	"time"

	"github.com/google/uuid"
)

type Posting struct {
	ID         uuid.UUID
	ExternalID string

	Title       string
	Company     string
	Description string
	Location    string

	ContractType string
	Sector       string

	RequiredSkills  []string
	PreferredSkills []string

	ExperienceRequiredYears int
	EducationRequired       string

	SalaryMin int
	SalaryMax int

	RemoteWork bool
	IsActive   bool

	PostedAt  time.Time
	ExpiresAt *time.Time
}

// HasSalary reports whether the posting carries any salary information.
func (p Posting) HasSalary() bool {
	return p.SalaryMin > 0 || p.SalaryMax > 0
}
