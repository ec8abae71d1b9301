// Package career defines the entities exchanged with the generative model:
// career cards, object lifecycles, personas, chat transcripts, and the full
// market report.
package career

import (
	"github.com/go-playground/validator/v10"
)

// RiskLevel grades automation risk and demand growth.
type RiskLevel string

// Risk level values returned by the model.
const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// Career represents a single career card. Discovery produces only the
// skeleton fields (id, title, emoji); hydration fills in the rest. A career
// with a non-empty Summary is considered hydrated.
type Career struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Emoji          string    `json:"emoji"`
	Summary        string    `json:"summary,omitempty"`
	AutomationRisk RiskLevel `json:"automationRisk,omitempty"`
	DemandGrowth   RiskLevel `json:"demandGrowth,omitempty"`
	IsEmerging     bool      `json:"isEmerging,omitempty"`
	WhoThisIsFor   []string  `json:"whoThisIsFor,omitempty"`
	RelatedCareers []string  `json:"relatedCareers,omitempty"`
}

// Hydrated reports whether the quick-look details have been filled in.
func (c *Career) Hydrated() (result bool) {
	result = c.Summary != ""
	return result
}

// QuickLook holds the hydration fields on their own, as returned by the
// quick-look call. Merging a QuickLook into a Career never touches the
// skeleton fields.
type QuickLook struct {
	Summary        string    `json:"summary"`
	AutomationRisk RiskLevel `json:"automationRisk"`
	DemandGrowth   RiskLevel `json:"demandGrowth"`
	IsEmerging     bool      `json:"isEmerging"`
	WhoThisIsFor   []string  `json:"whoThisIsFor"`
	RelatedCareers []string  `json:"relatedCareers"`
}

// Apply merges the quick-look details into a career in place.
func (q QuickLook) Apply(c *Career) {
	c.Summary = q.Summary
	c.AutomationRisk = q.AutomationRisk
	c.DemandGrowth = q.DemandGrowth
	c.IsEmerging = q.IsEmerging
	c.WhoThisIsFor = q.WhoThisIsFor
	c.RelatedCareers = q.RelatedCareers
}

// LifecycleStage represents one chronological stage in an object's life.
type LifecycleStage struct {
	StageName   string   `json:"stageName"`
	Emoji       string   `json:"emoji"`
	Description string   `json:"description"`
	Careers     []string `json:"careers"`
}

// UnpackedObject represents an object deconstructed into lifecycle stages.
// Stage order is chronological and preserved exactly as returned.
type UnpackedObject struct {
	ObjectName string           `json:"objectName"`
	Lifecycle  []LifecycleStage `json:"lifecycle"`
}

// Persona represents a character profile used to brainstorm problems.
// Icon names a presentation glyph, not data; built-in personas carry one and
// generated personas get a default.
type Persona struct {
	Title       string `json:"title"`
	Tagline     string `json:"tagline"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Icon        string `json:"icon"`
}

// PersonaDraft is the raw persona generation result before an image URL is
// attached.
type PersonaDraft struct {
	Title       string `json:"title"`
	Tagline     string `json:"tagline"`
	Description string `json:"description"`
	ImageQuery  string `json:"imageQuery"`
}

// Problem represents a single challenge a persona faces.
type Problem struct {
	ProblemTitle   string   `json:"problemTitle"`
	Description    string   `json:"description"`
	SolvingCareers []string `json:"solvingCareers"`
}

// PersonaProblemSet represents the problems generated for one persona.
type PersonaProblemSet struct {
	PersonaTitle string    `json:"personaTitle"`
	Problems     []Problem `json:"problems"`
}

// ChatRole identifies the author of a chat message.
type ChatRole string

// Chat roles.
const (
	RoleUser  ChatRole = "user"
	RoleModel ChatRole = "model"
)

// ChatMessage represents one entry in a chat transcript. The last model
// entry is filled progressively while a streamed response is arriving.
type ChatMessage struct {
	Role    ChatRole `json:"role"`
	Content string   `json:"content"`
}

// Astrology holds optional birth details for the astrological section of a
// report. It is only attached when all three fields were supplied.
type Astrology struct {
	DateOfBirth  string `json:"dateOfBirth" validate:"required"`
	TimeOfBirth  string `json:"timeOfBirth" validate:"required"`
	PlaceOfBirth string `json:"placeOfBirth" validate:"required"`
}

// PersonalizationData carries the user inputs that shape a report.
type PersonalizationData struct {
	Age            int        `json:"age" validate:"required,gt=0"`
	Country        string     `json:"country" validate:"required"`
	IsOpenToAbroad bool       `json:"isOpenToAbroad"`
	Astrology      *Astrology `json:"astrology,omitempty"`
}

// Validate checks the personalization inputs before any remote call is made.
func (p *PersonalizationData) Validate() (err error) {
	validate := validator.New()
	err = validate.Struct(p)
	return err
}

// HasAstrology reports whether a complete astrology block is present.
func (p *PersonalizationData) HasAstrology() (result bool) {
	result = p.Astrology != nil &&
		p.Astrology.DateOfBirth != "" &&
		p.Astrology.TimeOfBirth != "" &&
		p.Astrology.PlaceOfBirth != ""
	return result
}
