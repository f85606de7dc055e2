package candidate

import (
	"github.com/google/uuid"
)

// Profile is the candidate-owned search profile. It is loaded once per
// scoring call and never mutated by the matching engine.
type Profile struct {
	UserID          uuid.UUID
	FirstName       string
	LastName        string
	DesiredPosition string
	Location        string
	ExperienceLevel string
	ExperienceYears int
	EducationLevel  string
	FieldOfStudy    string

	Skills []string

	PreferredSectors   []string
	PreferredLocations []string
	AcceptedContracts  []string

	SalaryExpectationMin int
	SalaryExpectationMax int
}

// PersonalityProfile holds the Big Five traits (each in [0,100]) plus the
// categorical questionnaire answers. A candidate may not have filled the
// questionnaire yet; callers pass nil in that case.
type PersonalityProfile struct {
	UserID uuid.UUID

	Openness          int
	Conscientiousness int
	Extraversion      int
	Agreeableness     int
	Neuroticism       int

	WorkStyle          string
	LearningStyle      string
	StressManagement   string
	CommunicationStyle string

	Motivations []string
	CareerGoals []string

	QuestionnaireCompleted bool
}
