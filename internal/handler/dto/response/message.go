package response

// MessageResponse is the body of every reservation and deletion outcome, success or not.
type MessageResponse struct {
	Mensaje string `json:"mensaje"`
}
