package models

// User is the account profile returned by the backend. It is never edited
// locally, only re-fetched.
type User struct {
	ID        int    `json:"id"`
	Email     string `json:"email"`
	FullName  string `json:"full_name"`
	CreatedAt string `json:"created_at"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
}

type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Application is a tracked job application. Ids and timestamps are always
// server-assigned; the client never invents them. Date fields stay strings
// because the backend emits plain "2006-01-02" dates for applied/follow-up
// and ISO timestamps for the rest.
type Application struct {
	ID             int               `json:"id"`
	UserID         int               `json:"user_id"`
	CompanyName    string            `json:"company_name"`
	PositionTitle  string            `json:"position_title"`
	JobDescription string            `json:"job_description,omitempty"`
	Status         ApplicationStatus `json:"status"`
	AppliedDate    string            `json:"applied_date"`
	FollowUpDate   string            `json:"follow_up_date,omitempty"`
	Notes          string            `json:"notes,omitempty"`
	JobURL         string            `json:"job_url,omitempty"`
	SalaryRange    string            `json:"salary_range,omitempty"`
	Location       string            `json:"location,omitempty"`
	CreatedAt      string            `json:"created_at"`
	UpdatedAt      string            `json:"updated_at"`
}

type CreateApplicationRequest struct {
	CompanyName    string            `json:"company_name"`
	PositionTitle  string            `json:"position_title"`
	JobDescription string            `json:"job_description,omitempty"`
	Status         ApplicationStatus `json:"status"`
	AppliedDate    string            `json:"applied_date"`
	FollowUpDate   string            `json:"follow_up_date,omitempty"`
	Notes          string            `json:"notes,omitempty"`
	JobURL         string            `json:"job_url,omitempty"`
	SalaryRange    string            `json:"salary_range,omitempty"`
	Location       string            `json:"location,omitempty"`
}

// UpdateApplicationRequest carries only the fields being changed; nil fields
// are omitted from the PUT body so the backend keeps their current values.
type UpdateApplicationRequest struct {
	CompanyName    *string            `json:"company_name,omitempty"`
	PositionTitle  *string            `json:"position_title,omitempty"`
	JobDescription *string            `json:"job_description,omitempty"`
	Status         *ApplicationStatus `json:"status,omitempty"`
	AppliedDate    *string            `json:"applied_date,omitempty"`
	FollowUpDate   *string            `json:"follow_up_date,omitempty"`
	Notes          *string            `json:"notes,omitempty"`
	JobURL         *string            `json:"job_url,omitempty"`
	SalaryRange    *string            `json:"salary_range,omitempty"`
	Location       *string            `json:"location,omitempty"`
}

// ApplicationStats is a pure server-side aggregate, never derived locally.
// Withdrawn is a first-class count like the other statuses.
type ApplicationStats struct {
	Total     int `json:"total"`
	Applied   int `json:"applied"`
	Interview int `json:"interview"`
	Offer     int `json:"offer"`
	Rejected  int `json:"rejected"`
	Withdrawn int `json:"withdrawn"`
}

// Resume metadata. ExtractedText is populated asynchronously by the backend
// and may still be empty right after an upload.
type Resume struct {
	ID               int    `json:"id"`
	OriginalFilename string `json:"original_filename"`
	FilePath         string `json:"file_path"`
	ExtractedText    string `json:"extracted_text,omitempty"`
	UploadedAt       string `json:"uploaded_at"`
}

type AIMatchRequest struct {
	ApplicationID int `json:"application_id"`
	ResumeID      int `json:"resume_id"`
}

// AIAnalysis is the result of one match run. It is display-only on the
// client and never mutated or cached.
type AIAnalysis struct {
	ID             int      `json:"id"`
	UserID         int      `json:"user_id"`
	ApplicationID  int      `json:"application_id"`
	ResumeID       int      `json:"resume_id"`
	MatchScore     float64  `json:"match_score"`
	Strengths      []string `json:"strengths"`
	MissingSkills  []string `json:"missing_skills"`
	Recommendation string   `json:"recommendation"`
	CreatedAt      string   `json:"created_at"`
}

// MatchTier buckets a 0-100 match score into the display tier.
func MatchTier(score float64) string {
	switch {
	case score >= 75:
		return "Excellent Match!"
	case score >= 50:
		return "Good Match – Some Improvements Possible"
	default:
		return "Needs Tailoring"
	}
}
