package dto

// SubmitBloodRequest carries the submitted form. volume_ml arrives as
// free-form text and is parsed into a number by the domain before any
// comparison against inventory.
type SubmitBloodRequest struct {
	BloodType   string `json:"blood_type" binding:"required"`
	Component   string `json:"component" binding:"required"`
	VolumeMl    string `json:"volume_ml" binding:"required"`
	DesiredDate string `json:"desired_date" binding:"required"`
	Notes       string `json:"notes"`
}
