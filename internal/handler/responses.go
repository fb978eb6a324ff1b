// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"encoding/json"
	"time"

	"github.com/gau7ab/folio-go/internal/store"
)

// AboutSectionResponse represents an about section in API responses.
type AboutSectionResponse struct {
	ID        int64     `json:"id"`
	Section   string    `json:"section"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Position  int64     `json:"position"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SkillResponse represents a skill in API responses.
type SkillResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Level     int64     `json:"level"`
	Position  int64     `json:"position"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ExperienceResponse represents a work history entry in API responses.
type ExperienceResponse struct {
	ID        int64     `json:"id"`
	Company   string    `json:"company"`
	Role      string    `json:"role"`
	Location  string    `json:"location"`
	StartDate string    `json:"start_date"`
	EndDate   *string   `json:"end_date,omitempty"`
	Summary   string    `json:"summary"`
	Position  int64     `json:"position"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EducationResponse represents an education entry in API responses.
type EducationResponse struct {
	ID          int64     `json:"id"`
	Institution string    `json:"institution"`
	Degree      string    `json:"degree"`
	Field       string    `json:"field"`
	StartYear   int64     `json:"start_year"`
	EndYear     *int64    `json:"end_year,omitempty"`
	Summary     string    `json:"summary"`
	Position    int64     `json:"position"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProjectResponse represents a project in API responses.
type ProjectResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Summary   string    `json:"summary"`
	Body      string    `json:"body"`
	Tech      []string  `json:"tech"`
	RepoURL   string    `json:"repo_url"`
	LiveURL   string    `json:"live_url"`
	Featured  bool      `json:"featured"`
	Position  int64     `json:"position"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AchievementResponse represents an achievement in API responses.
type AchievementResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Issuer    string    `json:"issuer"`
	AwardedOn string    `json:"awarded_on"`
	Summary   string    `json:"summary"`
	Position  int64     `json:"position"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TrekResponse represents a trek in API responses.
type TrekResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Region    string    `json:"region"`
	AltitudeM int64     `json:"altitude_m"`
	TrekkedOn string    `json:"trekked_on"`
	Body      string    `json:"body"`
	Position  int64     `json:"position"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TrekPhotoResponse represents a trek photo in API responses.
type TrekPhotoResponse struct {
	ID        int64      `json:"id"`
	TrekID    int64      `json:"trek_id"`
	FilePath  string     `json:"file_path"`
	ThumbPath string     `json:"thumb_path"`
	Caption   string     `json:"caption"`
	TakenAt   *time.Time `json:"taken_at,omitempty"`
	Width     int64      `json:"width"`
	Height    int64      `json:"height"`
	Position  int64      `json:"position"`
	CreatedAt time.Time  `json:"created_at"`
}

// MessageResponse represents a contact message in API responses.
type MessageResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	IPAddress string    `json:"ip_address"`
	Country   string    `json:"country"`
	Browser   string    `json:"browser"`
	OS        string    `json:"os"`
	Device    string    `json:"device"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// EventResponse represents an event log entry in API responses.
type EventResponse struct {
	ID        int64     `json:"id"`
	Level     string    `json:"level"`
	Category  string    `json:"category"`
	Message   string    `json:"message"`
	UserID    *int64    `json:"user_id,omitempty"`
	Metadata  string    `json:"metadata"`
	CreatedAt time.Time `json:"created_at"`
}

func toAboutSectionResponse(s store.AboutSection) AboutSectionResponse {
	return AboutSectionResponse{
		ID: s.ID, Section: s.Section, Title: s.Title, Body: s.Body,
		Position: s.Position, CreatedAt: s.CreatedAt, UpdatedAt: s.UpdatedAt,
	}
}

func toSkillResponse(s store.Skill) SkillResponse {
	return SkillResponse{
		ID: s.ID, Name: s.Name, Category: s.Category, Level: s.Level,
		Position: s.Position, CreatedAt: s.CreatedAt, UpdatedAt: s.UpdatedAt,
	}
}

func toExperienceResponse(e store.Experience) ExperienceResponse {
	resp := ExperienceResponse{
		ID: e.ID, Company: e.Company, Role: e.Role, Location: e.Location,
		StartDate: e.StartDate, Summary: e.Summary, Position: e.Position,
		CreatedAt: e.CreatedAt, UpdatedAt: e.UpdatedAt,
	}
	if e.EndDate.Valid {
		resp.EndDate = &e.EndDate.String
	}
	return resp
}

func toEducationResponse(e store.Education) EducationResponse {
	resp := EducationResponse{
		ID: e.ID, Institution: e.Institution, Degree: e.Degree, Field: e.Field,
		StartYear: e.StartYear, Summary: e.Summary, Position: e.Position,
		CreatedAt: e.CreatedAt, UpdatedAt: e.UpdatedAt,
	}
	if e.EndYear.Valid {
		resp.EndYear = &e.EndYear.Int64
	}
	return resp
}

func toProjectResponse(p store.Project) ProjectResponse {
	tech := []string{}
	if p.Tech != "" {
		if err := json.Unmarshal([]byte(p.Tech), &tech); err != nil {
			tech = []string{}
		}
	}
	return ProjectResponse{
		ID: p.ID, Title: p.Title, Slug: p.Slug, Summary: p.Summary, Body: p.Body,
		Tech: tech, RepoURL: p.RepoURL, LiveURL: p.LiveURL, Featured: p.Featured,
		Position: p.Position, CreatedAt: p.CreatedAt, UpdatedAt: p.UpdatedAt,
	}
}

func toAchievementResponse(a store.Achievement) AchievementResponse {
	return AchievementResponse{
		ID: a.ID, Title: a.Title, Issuer: a.Issuer, AwardedOn: a.AwardedOn,
		Summary: a.Summary, Position: a.Position, CreatedAt: a.CreatedAt, UpdatedAt: a.UpdatedAt,
	}
}

func toTrekResponse(t store.Trek) TrekResponse {
	return TrekResponse{
		ID: t.ID, Name: t.Name, Slug: t.Slug, Region: t.Region, AltitudeM: t.AltitudeM,
		TrekkedOn: t.TrekkedOn, Body: t.Body, Position: t.Position,
		CreatedAt: t.CreatedAt, UpdatedAt: t.UpdatedAt,
	}
}

func toTrekPhotoResponse(p store.TrekPhoto) TrekPhotoResponse {
	resp := TrekPhotoResponse{
		ID: p.ID, TrekID: p.TrekID, FilePath: p.FilePath, ThumbPath: p.ThumbPath,
		Caption: p.Caption, Width: p.Width, Height: p.Height,
		Position: p.Position, CreatedAt: p.CreatedAt,
	}
	if p.TakenAt.Valid {
		resp.TakenAt = &p.TakenAt.Time
	}
	return resp
}

func toMessageResponse(m store.Message) MessageResponse {
	return MessageResponse{
		ID: m.ID, Name: m.Name, Email: m.Email, Subject: m.Subject, Body: m.Body,
		IPAddress: m.IPAddress, Country: m.Country, Browser: m.Browser,
		OS: m.OS, Device: m.Device, IsRead: m.IsRead, CreatedAt: m.CreatedAt,
	}
}

func toEventResponse(e store.Event) EventResponse {
	resp := EventResponse{
		ID: e.ID, Level: e.Level, Category: e.Category, Message: e.Message,
		Metadata: e.Metadata, CreatedAt: e.CreatedAt,
	}
	if e.UserID.Valid {
		resp.UserID = &e.UserID.Int64
	}
	return resp
}
