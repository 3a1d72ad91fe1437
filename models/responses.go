package models

// LoginResponse is returned by the login and resend-OTP endpoints once
// credentials are accepted and a passcode has been issued.
//
// When the requested delivery channel is not configured the server falls
// back to demo mode: DemoMode is true and DemoOtp carries the passcode so
// that the client can display or auto-fill it. This is a deliberate
// convenience for running without mail/SMS credentials and weakens the
// second factor; deployments with a configured channel never set it.
type LoginResponse struct {
	UserID int64 `json:"userId"`

	// OtpMethod echoes the delivery channel the code was issued for.
	OtpMethod DeliveryMethod `json:"otpMethod"`

	// Destination is the masked contact the code was sent to,
	// e.g. "j***@example.com" or "******7890".
	Destination string `json:"destination"`

	DemoMode bool   `json:"demoMode"`
	DemoOtp  string `json:"demoOtp,omitempty"`
}

// VerifyResponse is returned after a successful OTP verification.
// The session token itself travels in an HttpOnly cookie, not the body.
type VerifyResponse struct {
	User User `json:"user"`
}

// ChatResponse is the assistant's reply to one user message.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// NewsItem is one market headline proxied from the configured feed.
type NewsItem struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url"`
	Source      string `json:"source,omitempty"`
	PublishedAt string `json:"publishedAt,omitempty"`
}
