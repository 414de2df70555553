package sms

// SendSMSRequest is the payload for the SMS gateway send endpoint
type SendSMSRequest struct {
	To      string `json:"to"`
	From    string `json:"from,omitempty"`
	Message string `json:"message"`
}

// SendSMSResponse is the gateway's reply
type SendSMSResponse struct {
	Status    string `json:"status"`
	MessageID string `json:"message_id,omitempty"`
	Error     string `json:"error,omitempty"`
}
