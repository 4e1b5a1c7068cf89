// Package mail validates contact-form submissions and delivers them to the
// portfolio owner.
package mail

import (
	"fmt"
	"net/mail"
	"sort"
	"strings"
	"unicode/utf8"
)

const (
	MaxNameLen    = 200
	MaxEmailLen   = 320
	MaxSubjectLen = 300
	MaxMessageLen = 10000
)

// ContactRequest is a visitor's contact-form submission.
type ContactRequest struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Subject string `json:"subject" form:"subject"`
	Message string `json:"message" form:"message"`
}

// FieldErrors maps a request field to what is wrong with it.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+fe[k])
	}
	return "invalid contact request: " + strings.Join(parts, "; ")
}

// Trimmed returns r with surrounding whitespace removed from every field.
func (r ContactRequest) Trimmed() ContactRequest {
	return ContactRequest{
		Name:    strings.TrimSpace(r.Name),
		Email:   strings.TrimSpace(r.Email),
		Subject: strings.TrimSpace(r.Subject),
		Message: strings.TrimSpace(r.Message),
	}
}

// Validate reports every invalid field, or nil when the trimmed request is
// acceptable.
func (r ContactRequest) Validate() FieldErrors {
	r = r.Trimmed()
	fe := FieldErrors{}
	check := func(field, value string, max int) bool {
		switch {
		case value == "":
			fe[field] = "required"
			return false
		case utf8.RuneCountInString(value) > max:
			fe[field] = fmt.Sprintf("must be at most %d characters", max)
			return false
		}
		return true
	}
	check("name", r.Name, MaxNameLen)
	if check("email", r.Email, MaxEmailLen) {
		if addr, err := mail.ParseAddress(r.Email); err != nil || addr.Address != r.Email {
			fe["email"] = "must be a valid email address"
		}
	}
	if check("subject", r.Subject, MaxSubjectLen) && strings.ContainsAny(r.Subject, "\r\n") {
		fe["subject"] = "must be a single line"
	}
	check("message", r.Message, MaxMessageLen)
	if len(fe) == 0 {
		return nil
	}
	return fe
}
