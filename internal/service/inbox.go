// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/mail"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/mileusna/useragent"

	"github.com/gau7ab/folio-go/internal/geoip"
	"github.com/gau7ab/folio-go/internal/store"
)

// Field limits for contact submissions.
const (
	MaxNameLength    = 100
	MaxSubjectLength = 200
	MaxBodyLength    = 5000
)

// textSanitizer strips all HTML from contact form fields.
var textSanitizer = bluemonday.StrictPolicy()

// InboxService accepts contact form submissions and enriches them with
// request metadata before storing.
type InboxService struct {
	queries *store.Queries
	geo     *geoip.Lookup
}

// NewInboxService creates an inbox service.
func NewInboxService(queries *store.Queries, geo *geoip.Lookup) *InboxService {
	return &InboxService{queries: queries, geo: geo}
}

// Submission is a raw contact form submission.
type Submission struct {
	Name      string
	Email     string
	Subject   string
	Body      string
	IPAddress string
	UserAgent string
}

// ValidationError describes a rejected submission field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Submit validates, sanitizes, and stores a contact submission.
// Nothing is written when validation fails.
func (s *InboxService) Submit(ctx context.Context, sub Submission) (store.Message, error) {
	name := strings.TrimSpace(textSanitizer.Sanitize(sub.Name))
	email := strings.TrimSpace(sub.Email)
	subject := strings.TrimSpace(textSanitizer.Sanitize(sub.Subject))
	body := strings.TrimSpace(textSanitizer.Sanitize(sub.Body))

	if name == "" {
		return store.Message{}, &ValidationError{Field: "name", Reason: "required"}
	}
	if len(name) > MaxNameLength {
		return store.Message{}, &ValidationError{Field: "name", Reason: "too long"}
	}
	if email == "" {
		return store.Message{}, &ValidationError{Field: "email", Reason: "required"}
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return store.Message{}, &ValidationError{Field: "email", Reason: "invalid address"}
	}
	if len(subject) > MaxSubjectLength {
		return store.Message{}, &ValidationError{Field: "subject", Reason: "too long"}
	}
	if body == "" {
		return store.Message{}, &ValidationError{Field: "body", Reason: "required"}
	}
	if len(body) > MaxBodyLength {
		return store.Message{}, &ValidationError{Field: "body", Reason: "too long"}
	}

	ua := parseUserAgent(sub.UserAgent)
	ip := normalizeIP(sub.IPAddress)

	var country string
	if s.geo != nil {
		country = s.geo.LookupCountry(ip)
	}

	msg, err := s.queries.CreateMessage(ctx, store.CreateMessageParams{
		Name:      name,
		Email:     email,
		Subject:   subject,
		Body:      body,
		IPAddress: ip,
		Country:   country,
		Browser:   ua.Browser,
		OS:        ua.OS,
		Device:    ua.Device,
	})
	if err != nil {
		return store.Message{}, fmt.Errorf("storing message: %w", err)
	}

	slog.Info("contact message received",
		"category", store.EventCategoryContact,
		"id", msg.ID,
		"country", country,
	)

	return msg, nil
}

// parsedUA holds the fields extracted from a User-Agent header.
type parsedUA struct {
	Browser string
	OS      string
	Device  string
}

// parseUserAgent extracts browser, OS, and device type from a user agent string.
func parseUserAgent(uaString string) parsedUA {
	ua := useragent.Parse(uaString)

	result := parsedUA{
		Browser: ua.Name,
		OS:      ua.OS,
	}

	if result.Browser == "" {
		result.Browser = "Unknown"
	}
	if result.OS == "" {
		result.OS = "Unknown"
	}

	switch {
	case ua.Mobile:
		result.Device = "mobile"
	case ua.Tablet:
		result.Device = "tablet"
	case ua.Bot:
		result.Device = "bot"
	default:
		result.Device = "desktop"
	}

	return result
}

// normalizeIP strips a port from host:port forms so GeoIP sees a bare IP.
func normalizeIP(addr string) string {
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}
