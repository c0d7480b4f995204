package complaint

import (
	"fmt"
	"strings"
	"time"
)

// Complaint is the core persisted entity representing one anonymous
// submission. Name and email are optional; subject and body are required.
type Complaint struct {
	id            uint
	name          string
	email         string
	subject       string
	body          string
	isNew         bool
	attachmentURL *string
	createdAt     time.Time
}

func NewComplaint(name, email, subject, body string, attachmentURL *string) (*Complaint, error) {
	subject = strings.TrimSpace(subject)
	body = strings.TrimSpace(body)

	if len(subject) == 0 {
		return nil, fmt.Errorf("subject is required")
	}
	if len(subject) > 200 {
		return nil, fmt.Errorf("subject exceeds maximum length of 200 characters")
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("complaint text is required")
	}
	if len(body) > 10000 {
		return nil, fmt.Errorf("complaint text exceeds maximum length of 10000 characters")
	}

	return &Complaint{
		name:          strings.TrimSpace(name),
		email:         strings.TrimSpace(email),
		subject:       subject,
		body:          body,
		isNew:         true,
		attachmentURL: attachmentURL,
		createdAt:     time.Now().UTC(),
	}, nil
}

// ReconstructComplaint rebuilds an entity from persisted state.
func ReconstructComplaint(
	id uint,
	name, email, subject, body string,
	isNew bool,
	attachmentURL *string,
	createdAt time.Time,
) (*Complaint, error) {
	if id == 0 {
		return nil, fmt.Errorf("complaint ID cannot be zero")
	}
	if len(subject) == 0 {
		return nil, fmt.Errorf("subject is required")
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("complaint text is required")
	}

	return &Complaint{
		id:            id,
		name:          name,
		email:         email,
		subject:       subject,
		body:          body,
		isNew:         isNew,
		attachmentURL: attachmentURL,
		createdAt:     createdAt,
	}, nil
}

func (c *Complaint) ID() uint {
	return c.id
}

func (c *Complaint) Name() string {
	return c.name
}

func (c *Complaint) Email() string {
	return c.email
}

func (c *Complaint) Subject() string {
	return c.subject
}

func (c *Complaint) Body() string {
	return c.body
}

func (c *Complaint) IsNew() bool {
	return c.isNew
}

func (c *Complaint) AttachmentURL() *string {
	return c.attachmentURL
}

func (c *Complaint) HasAttachment() bool {
	return c.attachmentURL != nil && *c.attachmentURL != ""
}

func (c *Complaint) CreatedAt() time.Time {
	return c.createdAt
}

// MarkRead transitions the read-state flag. The transition is one-way:
// marking an already-read complaint is a no-op.
func (c *Complaint) MarkRead() {
	c.isNew = false
}

// SetID assigns the store-generated identity after creation.
func (c *Complaint) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("complaint ID already set")
	}
	if id == 0 {
		return fmt.Errorf("complaint ID cannot be zero")
	}
	c.id = id
	return nil
}

// MatchesFilter reports whether the free-text filter term matches the
// subject, email, name, or body, case-insensitively. An empty term
// matches everything.
func (c *Complaint) MatchesFilter(term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(c.subject), term) ||
		strings.Contains(strings.ToLower(c.email), term) ||
		strings.Contains(strings.ToLower(c.name), term) ||
		strings.Contains(strings.ToLower(c.body), term)
}

// Clone returns a copy of the complaint. The dashboard engine applies
// optimistic patches to copies so a rolled-back patch never leaks into a
// shared snapshot.
func (c *Complaint) Clone() *Complaint {
	clone := *c
	if c.attachmentURL != nil {
		url := *c.attachmentURL
		clone.attachmentURL = &url
	}
	return &clone
}
