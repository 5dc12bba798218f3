package api

// SendEmailRequest is the body of POST /send-email, forwarded to the
// transactional email provider.
type SendEmailRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// SendEmailResponse reports whether the provider accepted the message.
type SendEmailResponse struct {
	Success bool `json:"success"`
}
