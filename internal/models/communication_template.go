package models

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ChannelEmail    = "email"
	ChannelSMS      = "sms"
	ChannelWhatsApp = "whatsapp"
)

var placeholderRegex = regexp.MustCompile(`\{\{\s*([a-zA-Z_][a-zA-Z0-9_]*)\s*\}\}`)

// MissingVariablesError lists the placeholders a render call had no value for.
type MissingVariablesError struct {
	Names []string
}

func (e *MissingVariablesError) Error() string {
	return "missing template variables: " + strings.Join(e.Names, ", ")
}

type CommunicationTemplate struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CommunityID *uuid.UUID     `gorm:"type:uuid;index" json:"communityId,omitempty"`
	Name        string         `gorm:"type:varchar(150);uniqueIndex:idx_communication_templates_name,where:deleted_at IS NULL;not null" json:"name"`
	Channel     string         `gorm:"type:varchar(20);not null" json:"channel"`
	Subject     string         `gorm:"type:varchar(255)" json:"subject,omitempty"`
	Body        string         `gorm:"type:text;not null" json:"body"`
	CreatedAt   time.Time      `gorm:"not null" json:"createdAt"`
	UpdatedAt   time.Time      `gorm:"not null" json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (t *CommunicationTemplate) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return t.Validate()
}

func (t *CommunicationTemplate) BeforeUpdate(tx *gorm.DB) error {
	return t.Validate()
}

func (t *CommunicationTemplate) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return errors.New("template name is required")
	}
	if !IsValidChannel(t.Channel) {
		return fmt.Errorf("invalid channel: %s", t.Channel)
	}
	if t.Channel == ChannelEmail && strings.TrimSpace(t.Subject) == "" {
		return errors.New("email templates require a subject")
	}
	if strings.TrimSpace(t.Body) == "" {
		return errors.New("template body is required")
	}
	return nil
}

// Placeholders returns the distinct placeholder names used in the subject and
// body, sorted.
func (t *CommunicationTemplate) Placeholders() []string {
	seen := make(map[string]struct{})
	for _, text := range []string{t.Subject, t.Body} {
		for _, match := range placeholderRegex.FindAllStringSubmatch(text, -1) {
			seen[match[1]] = struct{}{}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render substitutes {{name}} tokens in the subject and body. Every placeholder
// must have a value; unused variables are ignored.
func (t *CommunicationTemplate) Render(vars map[string]string) (subject, body string, err error) {
	var missing []string
	for _, name := range t.Placeholders() {
		if _, ok := vars[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return "", "", &MissingVariablesError{Names: missing}
	}

	replace := func(text string) string {
		return placeholderRegex.ReplaceAllStringFunc(text, func(token string) string {
			name := placeholderRegex.FindStringSubmatch(token)[1]
			return vars[name]
		})
	}
	return replace(t.Subject), replace(t.Body), nil
}

func (t *CommunicationTemplate) TableName() string {
	return "communication_templates"
}

func IsValidChannel(channel string) bool {
	switch channel {
	case ChannelEmail, ChannelSMS, ChannelWhatsApp:
		return true
	default:
		return false
	}
}
