package mail

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/smtp"
	"strings"
	"testing"
)

func validRequest() ContactRequest {
	return ContactRequest{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Subject: "Hello",
		Message: "Line one\nLine two",
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *ContactRequest)
		fields []string
	}{
		{"valid", func(r *ContactRequest) {}, nil},
		{"padded values are trimmed", func(r *ContactRequest) { r.Name = "  Jane  " }, nil},
		{"missing name", func(r *ContactRequest) { r.Name = "   " }, []string{"name"}},
		{"missing everything", func(r *ContactRequest) { *r = ContactRequest{} }, []string{"name", "email", "subject", "message"}},
		{"bad email", func(r *ContactRequest) { r.Email = "not-an-email" }, []string{"email"}},
		{"display name email", func(r *ContactRequest) { r.Email = "Jane <jane@example.com>" }, []string{"email"}},
		{"multiline subject", func(r *ContactRequest) { r.Subject = "a\nBcc: x@example.com" }, []string{"subject"}},
		{"long message", func(r *ContactRequest) { r.Message = strings.Repeat("x", MaxMessageLen+1) }, []string{"message"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validRequest()
			tt.mutate(&r)
			fe := r.Validate()
			if len(tt.fields) == 0 {
				if fe != nil {
					t.Fatalf("Validate = %v, want nil", fe)
				}
				return
			}
			if len(fe) != len(tt.fields) {
				t.Fatalf("Validate = %v, want fields %v", fe, tt.fields)
			}
			for _, f := range tt.fields {
				if _, ok := fe[f]; !ok {
					t.Errorf("missing error for %q in %v", f, fe)
				}
			}
		})
	}
}

func TestNotification(t *testing.T) {
	req := validRequest()
	req.Name = "<b>Jane</b>"
	msg, err := Notification(req, "owner@example.com", "Portfolio Contact <onboarding@resend.dev>")
	if err != nil {
		t.Fatalf("Notification failed: %v", err)
	}
	if msg.Subject != "New Portfolio Message: Hello" {
		t.Errorf("Subject = %q", msg.Subject)
	}
	if msg.ReplyTo != "jane@example.com" {
		t.Errorf("ReplyTo = %q", msg.ReplyTo)
	}
	if len(msg.To) != 1 || msg.To[0] != "owner@example.com" {
		t.Errorf("To = %v", msg.To)
	}
	if !strings.Contains(msg.HTML, "Line one<br>Line two") {
		t.Errorf("line breaks not converted:\n%s", msg.HTML)
	}
	if strings.Contains(msg.HTML, "<b>Jane</b>") {
		t.Errorf("name not escaped:\n%s", msg.HTML)
	}
	if !strings.Contains(msg.HTML, "&lt;b&gt;Jane&lt;/b&gt;") {
		t.Errorf("escaped name missing:\n%s", msg.HTML)
	}
}

func TestResendSender(t *testing.T) {
	var got resendRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/emails" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer re_test" {
			t.Errorf("Authorization = %q", r.Header.Get("Authorization"))
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"msg_123"}`))
	}))
	defer srv.Close()

	s := NewResendSender("re_test")
	s.BaseURL = srv.URL
	msg, _ := Notification(validRequest(), "owner@example.com", "from@example.com")
	id, err := s.Send(context.Background(), msg)
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if id != "msg_123" {
		t.Errorf("id = %q, want msg_123", id)
	}
	if got.ReplyTo != "jane@example.com" || got.Subject != msg.Subject || got.HTML == "" {
		t.Errorf("request body = %+v", got)
	}
}

func TestResendSenderFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"statusCode":422,"message":"invalid from"}`))
	}))
	defer srv.Close()

	s := NewResendSender("re_test")
	s.BaseURL = srv.URL
	_, err := s.Send(context.Background(), Message{To: []string{"a@example.com"}})
	if err == nil || !strings.Contains(err.Error(), "invalid from") {
		t.Errorf("err = %v, want provider message", err)
	}
}

func TestSendersNotConfigured(t *testing.T) {
	if _, err := NewResendSender("").Send(context.Background(), Message{}); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("resend err = %v", err)
	}
	if _, err := NewSMTPSender(SMTPConfig{}).Send(context.Background(), Message{}); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("smtp err = %v", err)
	}
}

func TestSMTPSender(t *testing.T) {
	s := NewSMTPSender(SMTPConfig{Host: "smtp.example.com", Port: "587", Username: "u", Password: "p"})
	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte
	s.send = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
		return nil
	}
	msg, _ := Notification(validRequest(), "owner@example.com", "Portfolio Contact <contact@example.com>")
	id, err := s.Send(context.Background(), msg)
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if id == "" {
		t.Error("expected a message id")
	}
	if gotAddr != "smtp.example.com:587" {
		t.Errorf("addr = %q", gotAddr)
	}
	if gotFrom != "contact@example.com" {
		t.Errorf("envelope from = %q", gotFrom)
	}
	if len(gotTo) != 1 || gotTo[0] != "owner@example.com" {
		t.Errorf("to = %v", gotTo)
	}
	raw := string(gotMsg)
	for _, want := range []string{
		"Reply-To: jane@example.com\r\n",
		"Subject: New Portfolio Message: Hello\r\n",
		"Content-Type: text/html; charset=UTF-8",
	} {
		if !strings.Contains(raw, want) {
			t.Errorf("message missing %q:\n%s", want, raw)
		}
	}
}
