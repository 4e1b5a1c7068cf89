package mail

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
)

// SubjectPrefix starts the subject of every contact notification.
const SubjectPrefix = "New Portfolio Message: "

// Message is an outgoing email.
type Message struct {
	From    string
	To      []string
	ReplyTo string
	Subject string
	HTML    string
	Text    string
}

var notificationTmpl = template.Must(template.New("notification").Parse(`<div style="font-family: sans-serif; font-size: 16px; color: #333;">
  <h2>New Message from your Portfolio Contact Form</h2>
  <p><strong>Name:</strong> {{.Name}}</p>
  <p><strong>Email:</strong> <a href="mailto:{{.Email}}">{{.Email}}</a></p>
  <p><strong>Subject:</strong> {{.Subject}}</p>
  <hr>
  <h3>Message:</h3>
  <p>{{range $i, $line := .Lines}}{{if $i}}<br>{{end}}{{$line}}{{end}}</p>
</div>
`))

// Notification renders req as an email to the owner at to. Replies go to the
// submitter.
func Notification(req ContactRequest, to, from string) (Message, error) {
	req = req.Trimmed()
	data := struct {
		ContactRequest
		Lines []string
	}{req, strings.Split(strings.ReplaceAll(req.Message, "\r\n", "\n"), "\n")}

	var buf bytes.Buffer
	if err := notificationTmpl.Execute(&buf, data); err != nil {
		return Message{}, fmt.Errorf("render notification: %w", err)
	}
	return Message{
		From:    from,
		To:      []string{to},
		ReplyTo: req.Email,
		Subject: SubjectPrefix + req.Subject,
		HTML:    buf.String(),
		Text: fmt.Sprintf("Name: %s\nEmail: %s\nSubject: %s\n\n%s\n",
			req.Name, req.Email, req.Subject, req.Message),
	}, nil
}
