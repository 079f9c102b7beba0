package dto

import "github.com/dkravch/studyplan/internal/app/models"

// MessageResponse is the body of confirmation responses and, with an error
// text, of every failure response.
type MessageResponse struct {
	Message string `json:"message" example:"Student deleted"`
}

// NewMessageResponse creates a message body.
func NewMessageResponse(message string) MessageResponse {
	return MessageResponse{Message: message}
}

// CreatedSubjectResponse is the body returned by the composite subject
// creation: the new subject together with its academic plan.
type CreatedSubjectResponse struct {
	Subject      *models.Subject      `json:"subject"`
	AcademicPlan *models.AcademicPlan `json:"academicPlan"`
}
