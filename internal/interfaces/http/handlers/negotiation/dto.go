package negotiation

// ProposeScheduleRequest carries either a named time_slot or a start/end pair.
type ProposeScheduleRequest struct {
	ProposedDate string `json:"proposed_date" binding:"required,datetime=2006-01-02"`
	TimeSlot     string `json:"proposed_time_slot" binding:"omitempty,oneof=morning afternoon evening all_day"`
	StartTime    string `json:"start_time" binding:"omitempty,hhmm"`
	EndTime      string `json:"end_time" binding:"omitempty,hhmm"`
	Message      string `json:"proposal_message" binding:"max=1000"`
}

// RespondToProposalRequest answers a pending proposal.
type RespondToProposalRequest struct {
	Status          string `json:"status" binding:"required,oneof=accepted rejected"`
	ResponseMessage string `json:"response_message" binding:"max=1000"`
}

// Outcome maps the requested status onto the use case's answer.
func (r RespondToProposalRequest) Outcome() string {
	if r.Status == "accepted" {
		return "accept"
	}
	return "reject"
}
