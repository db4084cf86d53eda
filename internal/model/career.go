package model

// JobPosition mirrors a JobPositions item.  BranchName is a free-text copy,
// not a foreign key.
type JobPosition struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	MinSalary   float64 `json:"min_salary"`
	MaxSalary   float64 `json:"max_salary"`
	BranchName  string  `json:"branch_name"`
	JobType     string  `json:"job_type"`
	ImageURL    string  `json:"image_url,omitempty"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// JobPositionUpdate carries a partial job-position mutation.
type JobPositionUpdate struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	MinSalary   *float64 `json:"min_salary"`
	MaxSalary   *float64 `json:"max_salary"`
	BranchName  *string  `json:"branch_name"`
	JobType     *string  `json:"job_type"`
	ImageURL    *string  `json:"image_url"`
}

// Job application statuses accepted by the status route.
const (
	ApplicationPending     = "pending"
	ApplicationReviewing   = "reviewing"
	ApplicationShortlisted = "shortlisted"
	ApplicationRejected    = "rejected"
	ApplicationHired       = "hired"
)

// ValidApplicationStatus reports whether s is a known application status.
func ValidApplicationStatus(s string) bool {
	switch s {
	case ApplicationPending, ApplicationReviewing, ApplicationShortlisted,
		ApplicationRejected, ApplicationHired:
		return true
	}
	return false
}

// JobApplication mirrors a JobApplications item.
type JobApplication struct {
	ID               string `json:"id"`
	FullName         string `json:"full_name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Address          string `json:"address,omitempty"`
	JobPositionID    string `json:"job_position_id"`
	JobPositionTitle string `json:"job_position_title"`
	Experience       string `json:"experience,omitempty"`
	Skills           string `json:"skills,omitempty"`
	CoverLetter      string `json:"cover_letter,omitempty"`
	ResumeURL        string `json:"resume_url"`
	Status           string `json:"status"`
	CreatedAt        string `json:"created_at"`
	UpdatedAt        string `json:"updated_at"`
}
