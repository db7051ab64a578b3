package ticket

type CreateTicketRequest struct {
	Subject  string `json:"subject" binding:"required,max=200"`
	Body     string `json:"body" binding:"required,max=5000"`
	Category string `json:"category" binding:"required,oneof=booking installation payment account retail_partner other"`
	Priority string `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
}

type AddMessageRequest struct {
	Body string `json:"body" binding:"required,max=5000"`
}

type ReplyTicketRequest struct {
	Message   string `json:"message" binding:"required,max=5000"`
	NewStatus string `json:"new_status" binding:"omitempty,oneof=open in_progress closed"`
}

// SetStatusRequest sets the status and, when assigned_to is present, the
// assignee. assigned_to 0 clears the assignment.
type SetStatusRequest struct {
	Status     string `json:"status" binding:"required,oneof=open in_progress closed"`
	AssignedTo *uint  `json:"assigned_to"`
}
