// Package queue defines the notification payloads exchanged over the
// message broker and the background consumer that turns them into emails.
package queue

// EmailQueueName is the durable queue carrying notification emails.
const EmailQueueName = "notify.email"

// Template names understood by the consumer.
const (
	TemplateRegistration       = "registration_email"
	TemplateFranchiseCreated   = "franchise_request_created"
	TemplateFranchiseStatus    = "franchise_status_updated"
	TemplateApplicationCreated = "job_application_confirmation"
	TemplateApplicationStatus  = "job_application_status"
	TemplateTestimonialThanks  = "testimonial_confirmation"
)

// EmailEvent is published after a store write that should notify someone.
// Context carries template variables; delivery is best-effort and a failed
// publish or send never fails the request that produced the event.
type EmailEvent struct {
	Recipient string            `json:"recipient"`
	Subject   string            `json:"subject"`
	Template  string            `json:"template"`
	Context   map[string]string `json:"context,omitempty"`
}
