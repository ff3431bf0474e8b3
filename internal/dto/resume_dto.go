package dto

type ResumeRequest struct {
	Title          string `json:"title"`
	Experience     string `json:"experience"`
	Skills         string `json:"skills"`
	Education      string `json:"education"`
	AdditionalInfo string `json:"additional_info"`
}
