package queue

import (
	"encoding/json"
	"strings"
	"testing"
)

type recorderMailer struct {
	to, subject, body string
	calls             int
	err               error
}

func (m *recorderMailer) Send(to, subject, htmlBody string) error {
	m.to, m.subject, m.body = to, subject, htmlBody
	m.calls++
	return m.err
}

func TestRenderEmailKnownTemplates(t *testing.T) {
	cases := []struct {
		template string
		ctx      map[string]string
		want     string
	}{
		{TemplateRegistration, map[string]string{"name": "Alex"}, "Welcome to Banjos, Alex!"},
		{TemplateFranchiseCreated, map[string]string{"name": "Sam", "location": "Austin"}, "Austin"},
		{TemplateFranchiseStatus, map[string]string{"name": "Sam", "status": "approved"}, "approved"},
		{TemplateApplicationCreated, map[string]string{"name": "Riley", "job_title": "Line Cook"}, "Line Cook"},
		{TemplateApplicationStatus, map[string]string{"name": "Riley", "job_title": "Line Cook", "status": "hired"}, "hired"},
		{TemplateTestimonialThanks, map[string]string{"name": "Pat"}, "Pat"},
	}
	for _, tc := range cases {
		body, err := RenderEmail(tc.template, tc.ctx)
		if err != nil {
			t.Errorf("%s: render: %v", tc.template, err)
			continue
		}
		if !strings.Contains(body, tc.want) {
			t.Errorf("%s: body missing %q:\n%s", tc.template, tc.want, body)
		}
	}
}

func TestRenderEmailUnknownTemplate(t *testing.T) {
	if _, err := RenderEmail("no_such_template", nil); err == nil {
		t.Error("unknown template rendered without error")
	}
}

func TestRenderEmailEscapesHTML(t *testing.T) {
	body, err := RenderEmail(TemplateRegistration, map[string]string{"name": "<script>x</script>"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(body, "<script>") {
		t.Error("template did not escape user input")
	}
}

func TestHandleEmailMessage(t *testing.T) {
	ev := EmailEvent{
		Recipient: "alex@x.com",
		Subject:   "Welcome",
		Template:  TemplateRegistration,
		Context:   map[string]string{"name": "Alex"},
	}
	body, _ := json.Marshal(ev)

	m := &recorderMailer{}
	if err := HandleEmailMessage(body, m); err != nil {
		t.Fatalf("handle: %v", err)
	}
	if m.calls != 1 || m.to != "alex@x.com" || m.subject != "Welcome" {
		t.Errorf("mailer called with %q/%q (%d calls)", m.to, m.subject, m.calls)
	}
	if !strings.Contains(m.body, "Alex") {
		t.Error("rendered body missing recipient name")
	}
}

func TestHandleEmailMessageRejectsBadInput(t *testing.T) {
	m := &recorderMailer{}

	if err := HandleEmailMessage([]byte("{not json"), m); err == nil {
		t.Error("invalid JSON accepted")
	}
	noRecipient, _ := json.Marshal(EmailEvent{Subject: "x", Template: TemplateRegistration})
	if err := HandleEmailMessage(noRecipient, m); err == nil {
		t.Error("event without recipient accepted")
	}
	badTemplate, _ := json.Marshal(EmailEvent{Recipient: "a@x.com", Template: "nope"})
	if err := HandleEmailMessage(badTemplate, m); err == nil {
		t.Error("unknown template accepted")
	}
	if m.calls != 0 {
		t.Errorf("mailer called %d times on bad input", m.calls)
	}
}
