package email

// Message is a plain outbound email.
type Message struct {
	To      []string
	Subject string
	Body    string
	HTML    bool
}

// Provider sends notification emails. Sending is always best-effort in
// this service: a failed email never fails the operation that
// triggered it.
type Provider interface {
	Send(msg *Message) error
	Close() error
}
