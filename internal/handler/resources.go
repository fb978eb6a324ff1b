// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/gau7ab/folio-go/internal/cache"
	"github.com/gau7ab/folio-go/internal/store"
	"github.com/gau7ab/folio-go/internal/util"
)

// AboutSectionRequest is the request body for about section writes.
type AboutSectionRequest struct {
	Section  string `json:"section"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	Position int64  `json:"position"`
}

// SkillRequest is the request body for skill writes.
type SkillRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Level    int64  `json:"level"`
	Position int64  `json:"position"`
}

// ExperienceRequest is the request body for work history writes.
type ExperienceRequest struct {
	Company   string `json:"company"`
	Role      string `json:"role"`
	Location  string `json:"location"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Summary   string `json:"summary"`
	Position  int64  `json:"position"`
}

// EducationRequest is the request body for education writes.
type EducationRequest struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	StartYear   int64  `json:"start_year"`
	EndYear     int64  `json:"end_year"`
	Summary     string `json:"summary"`
	Position    int64  `json:"position"`
}

// ProjectRequest is the request body for project writes. An empty slug is
// derived from the title.
type ProjectRequest struct {
	Title    string   `json:"title"`
	Slug     string   `json:"slug"`
	Summary  string   `json:"summary"`
	Body     string   `json:"body"`
	Tech     []string `json:"tech"`
	RepoURL  string   `json:"repo_url"`
	LiveURL  string   `json:"live_url"`
	Featured bool     `json:"featured"`
	Position int64    `json:"position"`
}

// AchievementRequest is the request body for achievement writes.
type AchievementRequest struct {
	Title     string `json:"title"`
	Issuer    string `json:"issuer"`
	AwardedOn string `json:"awarded_on"`
	Summary   string `json:"summary"`
	Position  int64  `json:"position"`
}

// TrekRequest is the request body for trek writes. An empty slug is
// derived from the name.
type TrekRequest struct {
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	Region    string `json:"region"`
	AltitudeM int64  `json:"altitude_m"`
	TrekkedOn string `json:"trekked_on"`
	Body      string `json:"body"`
	Position  int64  `json:"position"`
}

// ContentResources holds the CRUD handlers for every portfolio content
// collection served under the admin API.
type ContentResources struct {
	About        *ResourceHandler[AboutSectionRequest, AboutSectionResponse]
	Skills       *ResourceHandler[SkillRequest, SkillResponse]
	Experience   *ResourceHandler[ExperienceRequest, ExperienceResponse]
	Education    *ResourceHandler[EducationRequest, EducationResponse]
	Projects     *ResourceHandler[ProjectRequest, ProjectResponse]
	Achievements *ResourceHandler[AchievementRequest, AchievementResponse]
	Treks        *ResourceHandler[TrekRequest, TrekResponse]
}

// NewContentResources wires every content collection to its store queries.
func NewContentResources(queries *store.Queries, cm *cache.Manager) *ContentResources {
	return &ContentResources{
		About:        NewResourceHandler("about", aboutOps(queries), cm),
		Skills:       NewResourceHandler("skills", skillOps(queries), cm),
		Experience:   NewResourceHandler("experience", experienceOps(queries), cm),
		Education:    NewResourceHandler("education", educationOps(queries), cm),
		Projects:     NewResourceHandler("projects", projectOps(queries), cm),
		Achievements: NewResourceHandler("achievements", achievementOps(queries), cm),
		Treks:        NewResourceHandler("treks", trekOps(queries), cm),
	}
}

// Mount registers all collection routes on the given admin router.
func (c *ContentResources) Mount(r chi.Router) {
	c.About.Mount(r)
	c.Skills.Mount(r)
	c.Experience.Mount(r)
	c.Education.Mount(r)
	c.Projects.Mount(r)
	c.Achievements.Mount(r)
	c.Treks.Mount(r)
}

// mapList adapts a store list query into one returning API responses.
func mapList[S, R any](list func(context.Context) ([]S, error), conv func(S) R) func(context.Context) ([]R, error) {
	return func(ctx context.Context) ([]R, error) {
		rows, err := list(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]R, 0, len(rows))
		for _, row := range rows {
			out = append(out, conv(row))
		}
		return out, nil
	}
}

func aboutOps(q *store.Queries) ResourceOps[AboutSectionRequest, AboutSectionResponse] {
	return ResourceOps[AboutSectionRequest, AboutSectionResponse]{
		List: mapList(q.ListAboutSections, toAboutSectionResponse),
		Create: func(ctx context.Context, p AboutSectionRequest) (AboutSectionResponse, error) {
			s, err := q.CreateAboutSection(ctx, store.CreateAboutSectionParams{
				Section: p.Section, Title: p.Title, Body: p.Body, Position: p.Position,
			})
			return toAboutSectionResponse(s), err
		},
		Update: func(ctx context.Context, id int64, p AboutSectionRequest) (int64, error) {
			return q.UpdateAboutSection(ctx, store.UpdateAboutSectionParams{
				ID: id, Section: p.Section, Title: p.Title, Body: p.Body, Position: p.Position,
			})
		},
		Delete: q.DeleteAboutSection,
		Validate: func(p *AboutSectionRequest) error {
			p.Section = strings.TrimSpace(p.Section)
			p.Title = strings.TrimSpace(p.Title)
			if p.Section == "" {
				return errors.New("section is required")
			}
			if p.Title == "" {
				return errors.New("title is required")
			}
			return nil
		},
	}
}

func skillOps(q *store.Queries) ResourceOps[SkillRequest, SkillResponse] {
	return ResourceOps[SkillRequest, SkillResponse]{
		List: mapList(q.ListSkills, toSkillResponse),
		Create: func(ctx context.Context, p SkillRequest) (SkillResponse, error) {
			s, err := q.CreateSkill(ctx, store.CreateSkillParams{
				Name: p.Name, Category: p.Category, Level: p.Level, Position: p.Position,
			})
			return toSkillResponse(s), err
		},
		Update: func(ctx context.Context, id int64, p SkillRequest) (int64, error) {
			return q.UpdateSkill(ctx, store.UpdateSkillParams{
				ID: id, Name: p.Name, Category: p.Category, Level: p.Level, Position: p.Position,
			})
		},
		Delete: q.DeleteSkill,
		Validate: func(p *SkillRequest) error {
			p.Name = strings.TrimSpace(p.Name)
			p.Category = strings.TrimSpace(p.Category)
			if p.Name == "" {
				return errors.New("name is required")
			}
			if p.Category == "" {
				return errors.New("category is required")
			}
			if p.Level < 0 || p.Level > 100 {
				return errors.New("level must be between 0 and 100")
			}
			return nil
		},
	}
}

func experienceOps(q *store.Queries) ResourceOps[ExperienceRequest, ExperienceResponse] {
	return ResourceOps[ExperienceRequest, ExperienceResponse]{
		List: mapList(q.ListExperience, toExperienceResponse),
		Create: func(ctx context.Context, p ExperienceRequest) (ExperienceResponse, error) {
			e, err := q.CreateExperience(ctx, store.CreateExperienceParams{
				Company: p.Company, Role: p.Role, Location: p.Location,
				StartDate: p.StartDate, EndDate: nullString(p.EndDate),
				Summary: p.Summary, Position: p.Position,
			})
			return toExperienceResponse(e), err
		},
		Update: func(ctx context.Context, id int64, p ExperienceRequest) (int64, error) {
			return q.UpdateExperience(ctx, store.UpdateExperienceParams{
				ID: id, Company: p.Company, Role: p.Role, Location: p.Location,
				StartDate: p.StartDate, EndDate: nullString(p.EndDate),
				Summary: p.Summary, Position: p.Position,
			})
		},
		Delete: q.DeleteExperience,
		Validate: func(p *ExperienceRequest) error {
			p.Company = strings.TrimSpace(p.Company)
			p.Role = strings.TrimSpace(p.Role)
			if p.Company == "" {
				return errors.New("company is required")
			}
			if p.Role == "" {
				return errors.New("role is required")
			}
			if strings.TrimSpace(p.StartDate) == "" {
				return errors.New("start_date is required")
			}
			return nil
		},
	}
}

func educationOps(q *store.Queries) ResourceOps[EducationRequest, EducationResponse] {
	return ResourceOps[EducationRequest, EducationResponse]{
		List: mapList(q.ListEducation, toEducationResponse),
		Create: func(ctx context.Context, p EducationRequest) (EducationResponse, error) {
			e, err := q.CreateEducation(ctx, store.CreateEducationParams{
				Institution: p.Institution, Degree: p.Degree, Field: p.Field,
				StartYear: p.StartYear, EndYear: nullInt64(p.EndYear),
				Summary: p.Summary, Position: p.Position,
			})
			return toEducationResponse(e), err
		},
		Update: func(ctx context.Context, id int64, p EducationRequest) (int64, error) {
			return q.UpdateEducation(ctx, store.UpdateEducationParams{
				ID: id, Institution: p.Institution, Degree: p.Degree, Field: p.Field,
				StartYear: p.StartYear, EndYear: nullInt64(p.EndYear),
				Summary: p.Summary, Position: p.Position,
			})
		},
		Delete: q.DeleteEducation,
		Validate: func(p *EducationRequest) error {
			p.Institution = strings.TrimSpace(p.Institution)
			p.Degree = strings.TrimSpace(p.Degree)
			if p.Institution == "" {
				return errors.New("institution is required")
			}
			if p.Degree == "" {
				return errors.New("degree is required")
			}
			if p.StartYear < 1900 {
				return errors.New("start_year is required")
			}
			return nil
		},
	}
}

func projectOps(q *store.Queries) ResourceOps[ProjectRequest, ProjectResponse] {
	return ResourceOps[ProjectRequest, ProjectResponse]{
		List: mapList(q.ListProjects, toProjectResponse),
		Create: func(ctx context.Context, p ProjectRequest) (ProjectResponse, error) {
			proj, err := q.CreateProject(ctx, store.CreateProjectParams{
				Title: p.Title, Slug: p.Slug, Summary: p.Summary, Body: p.Body,
				Tech: encodeTech(p.Tech), RepoURL: p.RepoURL, LiveURL: p.LiveURL,
				Featured: p.Featured, Position: p.Position,
			})
			return toProjectResponse(proj), err
		},
		Update: func(ctx context.Context, id int64, p ProjectRequest) (int64, error) {
			return q.UpdateProject(ctx, store.UpdateProjectParams{
				ID: id, Title: p.Title, Slug: p.Slug, Summary: p.Summary, Body: p.Body,
				Tech: encodeTech(p.Tech), RepoURL: p.RepoURL, LiveURL: p.LiveURL,
				Featured: p.Featured, Position: p.Position,
			})
		},
		Delete: q.DeleteProject,
		Validate: func(p *ProjectRequest) error {
			p.Title = strings.TrimSpace(p.Title)
			if p.Title == "" {
				return errors.New("title is required")
			}
			if p.Slug == "" {
				p.Slug = util.Slugify(p.Title)
			}
			if !util.IsValidSlug(p.Slug) {
				return errors.New("invalid slug")
			}
			return nil
		},
	}
}

func achievementOps(q *store.Queries) ResourceOps[AchievementRequest, AchievementResponse] {
	return ResourceOps[AchievementRequest, AchievementResponse]{
		List: mapList(q.ListAchievements, toAchievementResponse),
		Create: func(ctx context.Context, p AchievementRequest) (AchievementResponse, error) {
			a, err := q.CreateAchievement(ctx, store.CreateAchievementParams{
				Title: p.Title, Issuer: p.Issuer, AwardedOn: p.AwardedOn,
				Summary: p.Summary, Position: p.Position,
			})
			return toAchievementResponse(a), err
		},
		Update: func(ctx context.Context, id int64, p AchievementRequest) (int64, error) {
			return q.UpdateAchievement(ctx, store.UpdateAchievementParams{
				ID: id, Title: p.Title, Issuer: p.Issuer, AwardedOn: p.AwardedOn,
				Summary: p.Summary, Position: p.Position,
			})
		},
		Delete: q.DeleteAchievement,
		Validate: func(p *AchievementRequest) error {
			p.Title = strings.TrimSpace(p.Title)
			if p.Title == "" {
				return errors.New("title is required")
			}
			return nil
		},
	}
}

func trekOps(q *store.Queries) ResourceOps[TrekRequest, TrekResponse] {
	return ResourceOps[TrekRequest, TrekResponse]{
		List: mapList(q.ListTreks, toTrekResponse),
		Create: func(ctx context.Context, p TrekRequest) (TrekResponse, error) {
			t, err := q.CreateTrek(ctx, store.CreateTrekParams{
				Name: p.Name, Slug: p.Slug, Region: p.Region, AltitudeM: p.AltitudeM,
				TrekkedOn: p.TrekkedOn, Body: p.Body, Position: p.Position,
			})
			return toTrekResponse(t), err
		},
		Update: func(ctx context.Context, id int64, p TrekRequest) (int64, error) {
			return q.UpdateTrek(ctx, store.UpdateTrekParams{
				ID: id, Name: p.Name, Slug: p.Slug, Region: p.Region, AltitudeM: p.AltitudeM,
				TrekkedOn: p.TrekkedOn, Body: p.Body, Position: p.Position,
			})
		},
		Delete: q.DeleteTrek,
		Validate: func(p *TrekRequest) error {
			p.Name = strings.TrimSpace(p.Name)
			if p.Name == "" {
				return errors.New("name is required")
			}
			if p.Slug == "" {
				p.Slug = util.Slugify(p.Name)
			}
			if !util.IsValidSlug(p.Slug) {
				return errors.New("invalid slug")
			}
			if p.AltitudeM < 0 {
				return errors.New("altitude_m must not be negative")
			}
			return nil
		},
	}
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullInt64(n int64) sql.NullInt64 {
	if n == 0 {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: n, Valid: true}
}

// encodeTech stores the tech list as a JSON array, never null.
func encodeTech(tags []string) string {
	if tags == nil {
		tags = []string{}
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return "[]"
	}
	return string(b)
}
