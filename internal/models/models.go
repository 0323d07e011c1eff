package models

import (
	"time"
)

// ConfigDocID is the fixed identifier of the single configuration document.
const ConfigDocID = "appConfig"

// AgencyRecord holds the six free-text fields of one accreditation request.
type AgencyRecord struct {
	AgencyName string `gorm:"type:text" json:"agencyName"`
	AgentID    string `gorm:"type:text" json:"agentId"`
	Country    string `gorm:"type:text" json:"country"`
	Whatsapp   string `gorm:"type:text" json:"whatsapp"`
	AdminName  string `gorm:"type:text" json:"adminName"`
	AdminID    string `gorm:"type:text" json:"adminId"`
}

// FieldNames lists the record fields in form order. Validation, visibility
// and the error set are all keyed by these names.
var FieldNames = []string{"agencyName", "agentId", "country", "whatsapp", "adminName", "adminId"}

// Get returns the value of the named field, empty string for unknown names.
func (r AgencyRecord) Get(field string) string {
	switch field {
	case "agencyName":
		return r.AgencyName
	case "agentId":
		return r.AgentID
	case "country":
		return r.Country
	case "whatsapp":
		return r.Whatsapp
	case "adminName":
		return r.AdminName
	case "adminId":
		return r.AdminID
	}
	return ""
}

// Set assigns the named field and reports whether the name was known.
func (r *AgencyRecord) Set(field, value string) bool {
	switch field {
	case "agencyName":
		r.AgencyName = value
	case "agentId":
		r.AgentID = value
	case "country":
		r.Country = value
	case "whatsapp":
		r.Whatsapp = value
	case "adminName":
		r.AdminName = value
	case "adminId":
		r.AdminID = value
	default:
		return false
	}
	return true
}

// FieldVisibility controls which form fields are rendered and required.
// One boolean per AgencyRecord field, all true by default.
type FieldVisibility struct {
	AgencyName bool `json:"agencyName"`
	AgentID    bool `json:"agentId"`
	Country    bool `json:"country"`
	Whatsapp   bool `json:"whatsapp"`
	AdminName  bool `json:"adminName"`
	AdminID    bool `json:"adminId"`
}

func (v FieldVisibility) Visible(field string) bool {
	switch field {
	case "agencyName":
		return v.AgencyName
	case "agentId":
		return v.AgentID
	case "country":
		return v.Country
	case "whatsapp":
		return v.Whatsapp
	case "adminName":
		return v.AdminName
	case "adminId":
		return v.AdminID
	}
	return false
}

// AppConfig is the site-wide settings document. A deployment has exactly one
// row, keyed by ConfigDocID, replaced wholesale on every save.
type AppConfig struct {
	ID               string          `gorm:"primaryKey;type:varchar(64)" json:"-"`
	SiteTitle        string          `gorm:"type:text" json:"siteTitle"`
	SiteSubtitle     string          `gorm:"type:text" json:"siteSubtitle"`
	BannerImage      string          `gorm:"type:text" json:"bannerImage"`
	BackgroundImage  string          `gorm:"type:text" json:"backgroundImage"`
	LogoImage        *string         `gorm:"type:text" json:"logoImage"`
	ContactWhatsapp  string          `gorm:"type:varchar(50)" json:"contactWhatsapp"`
	ContactEmail     string          `gorm:"type:varchar(255)" json:"contactEmail"`
	AdminPassword    string          `gorm:"type:varchar(255)" json:"adminPassword"`
	CustomFooterText string          `gorm:"type:text" json:"customFooterText"`
	ShowFields       FieldVisibility `gorm:"embedded;embeddedPrefix:show_" json:"showFields"`
	UpdatedAt        time.Time       `gorm:"autoUpdateTime" json:"-"`
}

func (AppConfig) TableName() string {
	return "app_configs"
}

// Public returns a copy safe to serve on unauthenticated routes.
func (c AppConfig) Public() AppConfig {
	c.AdminPassword = ""
	return c
}

// DefaultConfig is the hardcoded configuration adopted (and seeded remotely)
// when no document exists yet.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		ID:               ConfigDocID,
		SiteTitle:        "طلب فتح وكالة جديدة",
		SiteSubtitle:     "بوابة الاعتماد الرسمية للوكلاء - قم بتعبئة البيانات للبدء",
		BannerImage:      "https://images.unsplash.com/photo-1557683316-973673baf926?q=80&w=2029&auto=format&fit=crop",
		BackgroundImage:  "",
		LogoImage:        nil,
		ContactWhatsapp:  "",
		ContactEmail:     "",
		AdminPassword:    "123456",
		CustomFooterText: "",
		ShowFields: FieldVisibility{
			AgencyName: true,
			AgentID:    true,
			Country:    true,
			Whatsapp:   true,
			AdminName:  true,
			AdminID:    true,
		},
	}
}

// Submission is one accepted accreditation request plus its generated letter.
// Submissions are write-once: no update or delete path exists anywhere.
type Submission struct {
	ID           string    `gorm:"primaryKey;type:varchar(64)" json:"id"`
	AgencyRecord `gorm:"embedded"`
	Letter       string    `gorm:"type:text" json:"letter"`
	Language     string    `gorm:"type:varchar(8)" json:"language"`
	Status       string    `gorm:"type:varchar(20);default:'pending'" json:"status"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (Submission) TableName() string {
	return "submissions"
}
