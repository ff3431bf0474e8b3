package dto

type VacancyRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Requirements string `json:"requirements"`
	Salary       string `json:"salary"`
	Location     string `json:"location"`
}

type ApplyRequest struct {
	CoverLetter string `json:"cover_letter"`
}

type InviteRequest struct {
	ApplicantID string `json:"applicant_id"`
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status"`
}
