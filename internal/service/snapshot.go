// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/gau7ab/folio-go/internal/store"
)

// Snapshot is the public aggregate view of the whole portfolio. It is what
// the frontend fetches in a single request.
type Snapshot struct {
	Meta         map[string]string `json:"meta"`
	About        []AboutView       `json:"about"`
	Skills       []SkillGroupView  `json:"skills"`
	Experience   []ExperienceView  `json:"experience"`
	Education    []EducationView   `json:"education"`
	Projects     []ProjectView     `json:"projects"`
	Achievements []AchievementView `json:"achievements"`
	Treks        []TrekView        `json:"treks"`
}

type AboutView struct {
	Section string `json:"section"`
	Title   string `json:"title"`
	HTML    string `json:"html"`
}

type SkillGroupView struct {
	Category string      `json:"category"`
	Items    []SkillView `json:"items"`
}

type SkillView struct {
	Name  string `json:"name"`
	Level int64  `json:"level"`
}

type ExperienceView struct {
	Company   string `json:"company"`
	Role      string `json:"role"`
	Location  string `json:"location,omitempty"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date,omitempty"`
	Summary   string `json:"summary,omitempty"`
}

type EducationView struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field,omitempty"`
	StartYear   int64  `json:"start_year,omitempty"`
	EndYear     int64  `json:"end_year,omitempty"`
	Summary     string `json:"summary,omitempty"`
}

type ProjectView struct {
	Title    string   `json:"title"`
	Slug     string   `json:"slug"`
	Summary  string   `json:"summary,omitempty"`
	HTML     string   `json:"html,omitempty"`
	Tech     []string `json:"tech"`
	RepoURL  string   `json:"repo_url,omitempty"`
	LiveURL  string   `json:"live_url,omitempty"`
	Featured bool     `json:"featured"`
}

type AchievementView struct {
	Title     string `json:"title"`
	Issuer    string `json:"issuer,omitempty"`
	AwardedOn string `json:"awarded_on,omitempty"`
	Summary   string `json:"summary,omitempty"`
}

type TrekView struct {
	Name      string          `json:"name"`
	Slug      string          `json:"slug"`
	Region    string          `json:"region,omitempty"`
	AltitudeM int64           `json:"altitude_m,omitempty"`
	TrekkedOn string          `json:"trekked_on,omitempty"`
	HTML      string          `json:"html,omitempty"`
	Photos    []TrekPhotoView `json:"photos"`
}

type TrekPhotoView struct {
	URL     string `json:"url"`
	Thumb   string `json:"thumb,omitempty"`
	Caption string `json:"caption,omitempty"`
	Width   int64  `json:"width,omitempty"`
	Height  int64  `json:"height,omitempty"`
}

// SnapshotService assembles the public portfolio snapshot.
type SnapshotService struct {
	queries *store.Queries
}

// NewSnapshotService creates a snapshot service.
func NewSnapshotService(queries *store.Queries) *SnapshotService {
	return &SnapshotService{queries: queries}
}

// Build assembles the snapshot from the store. Each section degrades to an
// empty list on a query failure, so a partially broken store still yields
// a servable snapshot.
func (s *SnapshotService) Build(ctx context.Context) Snapshot {
	return Snapshot{
		Meta:         map[string]string{},
		About:        s.buildAbout(ctx),
		Skills:       s.buildSkills(ctx),
		Experience:   s.buildExperience(ctx),
		Education:    s.buildEducation(ctx),
		Projects:     s.buildProjects(ctx),
		Achievements: s.buildAchievements(ctx),
		Treks:        s.buildTreks(ctx),
	}
}

func (s *SnapshotService) buildAbout(ctx context.Context) []AboutView {
	rows, err := s.queries.ListAboutSections(ctx)
	if err != nil {
		slog.Error("snapshot: listing about sections", "error", err)
		return []AboutView{}
	}

	views := make([]AboutView, 0, len(rows))
	for _, r := range rows {
		views = append(views, AboutView{
			Section: r.Section,
			Title:   r.Title,
			HTML:    RenderMarkdown(r.Body),
		})
	}
	return views
}

func (s *SnapshotService) buildSkills(ctx context.Context) []SkillGroupView {
	rows, err := s.queries.ListSkills(ctx)
	if err != nil {
		slog.Error("snapshot: listing skills", "error", err)
		return []SkillGroupView{}
	}

	// Rows come ordered by category then position, so grouping preserves
	// the configured order.
	groups := make([]SkillGroupView, 0)
	for _, r := range rows {
		if len(groups) == 0 || groups[len(groups)-1].Category != r.Category {
			groups = append(groups, SkillGroupView{Category: r.Category})
		}
		g := &groups[len(groups)-1]
		g.Items = append(g.Items, SkillView{Name: r.Name, Level: r.Level})
	}
	return groups
}

func (s *SnapshotService) buildExperience(ctx context.Context) []ExperienceView {
	rows, err := s.queries.ListExperience(ctx)
	if err != nil {
		slog.Error("snapshot: listing experience", "error", err)
		return []ExperienceView{}
	}

	views := make([]ExperienceView, 0, len(rows))
	for _, r := range rows {
		v := ExperienceView{
			Company:   r.Company,
			Role:      r.Role,
			Location:  r.Location,
			StartDate: r.StartDate,
			Summary:   r.Summary,
		}
		if r.EndDate.Valid {
			v.EndDate = r.EndDate.String
		}
		views = append(views, v)
	}
	return views
}

func (s *SnapshotService) buildEducation(ctx context.Context) []EducationView {
	rows, err := s.queries.ListEducation(ctx)
	if err != nil {
		slog.Error("snapshot: listing education", "error", err)
		return []EducationView{}
	}

	views := make([]EducationView, 0, len(rows))
	for _, r := range rows {
		v := EducationView{
			Institution: r.Institution,
			Degree:      r.Degree,
			Field:       r.Field,
			StartYear:   r.StartYear,
			Summary:     r.Summary,
		}
		if r.EndYear.Valid {
			v.EndYear = r.EndYear.Int64
		}
		views = append(views, v)
	}
	return views
}

func (s *SnapshotService) buildProjects(ctx context.Context) []ProjectView {
	rows, err := s.queries.ListProjects(ctx)
	if err != nil {
		slog.Error("snapshot: listing projects", "error", err)
		return []ProjectView{}
	}

	views := make([]ProjectView, 0, len(rows))
	for _, r := range rows {
		var tech []string
		if err := json.Unmarshal([]byte(r.Tech), &tech); err != nil || tech == nil {
			tech = []string{}
		}
		views = append(views, ProjectView{
			Title:    r.Title,
			Slug:     r.Slug,
			Summary:  r.Summary,
			HTML:     RenderMarkdown(r.Body),
			Tech:     tech,
			RepoURL:  r.RepoURL,
			LiveURL:  r.LiveURL,
			Featured: r.Featured,
		})
	}
	return views
}

func (s *SnapshotService) buildAchievements(ctx context.Context) []AchievementView {
	rows, err := s.queries.ListAchievements(ctx)
	if err != nil {
		slog.Error("snapshot: listing achievements", "error", err)
		return []AchievementView{}
	}

	views := make([]AchievementView, 0, len(rows))
	for _, r := range rows {
		views = append(views, AchievementView{
			Title:     r.Title,
			Issuer:    r.Issuer,
			AwardedOn: r.AwardedOn,
			Summary:   r.Summary,
		})
	}
	return views
}

func (s *SnapshotService) buildTreks(ctx context.Context) []TrekView {
	rows, err := s.queries.ListTreks(ctx)
	if err != nil {
		slog.Error("snapshot: listing treks", "error", err)
		return []TrekView{}
	}

	views := make([]TrekView, 0, len(rows))
	for _, r := range rows {
		v := TrekView{
			Name:      r.Name,
			Slug:      r.Slug,
			Region:    r.Region,
			AltitudeM: r.AltitudeM,
			TrekkedOn: r.TrekkedOn,
			HTML:      RenderMarkdown(r.Body),
			Photos:    []TrekPhotoView{},
		}

		photos, err := s.queries.ListTrekPhotos(ctx, r.ID)
		if err != nil {
			slog.Error("snapshot: listing trek photos", "trek", r.Slug, "error", err)
		}
		for _, p := range photos {
			v.Photos = append(v.Photos, TrekPhotoView{
				URL:     p.FilePath,
				Thumb:   p.ThumbPath,
				Caption: p.Caption,
				Width:   p.Width,
				Height:  p.Height,
			})
		}

		views = append(views, v)
	}
	return views
}
