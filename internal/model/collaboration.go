package model

import "time"

// Collaboration request lifecycle. A request starts pending and moves to
// exactly one of the other states; RespondedAt records when that happened.
const (
	CollaborationStatusPending   = "pending"
	CollaborationStatusAccepted  = "accepted"
	CollaborationStatusDeclined  = "declined"
	CollaborationStatusCompleted = "completed"
)

// CollaborationRequest is a proposal from one creative to another for joint work.
type CollaborationRequest struct {
	ID                 int        `json:"id"`
	FromCreativeID     int        `json:"fromCreativeId"`
	ToCreativeID       int        `json:"toCreativeId"`
	ProjectTitle       string     `json:"projectTitle"`
	ProjectDescription string     `json:"projectDescription"`
	ProjectType        string     `json:"projectType"` // "joint_design", "flash_sheet", "custom_piece"
	BudgetRange        *string    `json:"budgetRange"`
	Timeline           *string    `json:"timeline"`
	Status             string     `json:"status"`
	CreatedAt          time.Time  `json:"createdAt"`
	RespondedAt        *time.Time `json:"respondedAt"`
}

// InsertCollaborationRequest is the client-supplied portion of a request.
type InsertCollaborationRequest struct {
	FromCreativeID     int     `json:"fromCreativeId" validate:"required"`
	ToCreativeID       int     `json:"toCreativeId" validate:"required"`
	ProjectTitle       string  `json:"projectTitle" validate:"required"`
	ProjectDescription string  `json:"projectDescription" validate:"required"`
	ProjectType        string  `json:"projectType" validate:"required"`
	BudgetRange        *string `json:"budgetRange"`
	Timeline           *string `json:"timeline"`
}

// NewCollaborationRequest builds a full request record from a create payload.
// Every request starts in the pending state with no response timestamp.
func NewCollaborationRequest(in InsertCollaborationRequest, id int, now time.Time) CollaborationRequest {
	return CollaborationRequest{
		ID:                 id,
		FromCreativeID:     in.FromCreativeID,
		ToCreativeID:       in.ToCreativeID,
		ProjectTitle:       in.ProjectTitle,
		ProjectDescription: in.ProjectDescription,
		ProjectType:        in.ProjectType,
		BudgetRange:        in.BudgetRange,
		Timeline:           in.Timeline,
		Status:             CollaborationStatusPending,
		CreatedAt:          now,
		RespondedAt:        nil,
	}
}
