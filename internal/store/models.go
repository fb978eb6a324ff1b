package store

import (
	"database/sql"
	"time"
)

// User is an admin account.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Name         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	LastLoginAt  sql.NullTime
}

// ConfigEntry is a key/value site setting.
type ConfigEntry struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

// AboutSection is one block of the about page.
type AboutSection struct {
	ID        int64
	Section   string
	Title     string
	Body      string
	Position  int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Skill is a single skill entry grouped by category.
type Skill struct {
	ID        int64
	Name      string
	Category  string
	Level     int64
	Position  int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Experience is one work history entry.
type Experience struct {
	ID        int64
	Company   string
	Role      string
	Location  string
	StartDate string
	EndDate   sql.NullString
	Summary   string
	Position  int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Education is one education history entry.
type Education struct {
	ID          int64
	Institution string
	Degree      string
	Field       string
	StartYear   int64
	EndYear     sql.NullInt64
	Summary     string
	Position    int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Project is a portfolio project. Tech holds a JSON array of tags.
type Project struct {
	ID        int64
	Title     string
	Slug      string
	Summary   string
	Body      string
	Tech      string
	RepoURL   string
	LiveURL   string
	Featured  bool
	Position  int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Achievement is an award or certification.
type Achievement struct {
	ID        int64
	Title     string
	Issuer    string
	AwardedOn string
	Summary   string
	Position  int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Trek is one trekking trip entry.
type Trek struct {
	ID        int64
	Name      string
	Slug      string
	Region    string
	AltitudeM int64
	TrekkedOn string
	Body      string
	Position  int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TrekPhoto is a processed photo attached to a trek.
type TrekPhoto struct {
	ID        int64
	TrekID    int64
	FilePath  string
	ThumbPath string
	Caption   string
	TakenAt   sql.NullTime
	Width     int64
	Height    int64
	Position  int64
	CreatedAt time.Time
}

// Message is a contact form submission.
type Message struct {
	ID        int64
	Name      string
	Email     string
	Subject   string
	Body      string
	IPAddress string
	Country   string
	Browser   string
	OS        string
	Device    string
	IsRead    bool
	CreatedAt time.Time
}

// Event is an application log entry persisted for the admin event log.
type Event struct {
	ID        int64
	Level     string
	Category  string
	Message   string
	UserID    sql.NullInt64
	Metadata  string
	CreatedAt time.Time
}
