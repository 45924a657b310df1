// Package builder assembles request payloads for posts and templates.
//
// Builders are mutable accumulators with chainable setters. Create returns
// an independent snapshot, so one builder can be reused as a template:
//
//	b := builder.NewPostBuilder().
//		SetSubject("Weekly report").
//		AddToMember("1234567890")
//
//	first := b.Create()
//	second := b.SetSubject("Weekly report (2)").Create()
//
// Snapshots encode to the wire format with encoding/json. Unset fields are
// omitted rather than sent as null.
//
// Builders are not safe for concurrent use.
package builder

import (
	"slices"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/iizs/godooray/pkg/models"
)

// Priorities accepted by the API.
const (
	PriorityHighest = "highest"
	PriorityHigh    = "high"
	PriorityNormal  = "normal"
	PriorityLow     = "low"
	PriorityLowest  = "lowest"
	PriorityNone    = "none"
)

var priorities = []any{
	PriorityHighest, PriorityHigh, PriorityNormal,
	PriorityLow, PriorityLowest, PriorityNone,
}

// WriteMember identifies an organization member recipient.
type WriteMember struct {
	OrganizationMemberID string `json:"organizationMemberId"`
}

// WriteEmailUser identifies an external email recipient.
type WriteEmailUser struct {
	EmailAddress string `json:"emailAddress"`
	Name         string `json:"name"`
}

// WritePostUser is a recipient in a request payload.
type WritePostUser struct {
	Type      string          `json:"type"`
	Member    *WriteMember    `json:"member,omitempty"`
	EmailUser *WriteEmailUser `json:"emailUser,omitempty"`
}

func (u WritePostUser) clone() WritePostUser {
	out := WritePostUser{Type: u.Type}
	if u.Member != nil {
		m := *u.Member
		out.Member = &m
	}
	if u.EmailUser != nil {
		e := *u.EmailUser
		out.EmailUser = &e
	}
	return out
}

// WritePostUsers lists the recipients of a post or template.
type WritePostUsers struct {
	To []WritePostUser `json:"to"`
	Cc []WritePostUser `json:"cc"`
}

func (u *WritePostUsers) clone() *WritePostUsers {
	if u == nil {
		return nil
	}
	return &WritePostUsers{To: cloneUsers(u.To), Cc: cloneUsers(u.Cc)}
}

func cloneUsers(users []WritePostUser) []WritePostUser {
	out := make([]WritePostUser, 0, len(users))
	for _, u := range users {
		out = append(out, u.clone())
	}
	return out
}

// WritePost is the payload for creating or updating a post.
type WritePost struct {
	Subject      *string          `json:"subject,omitempty"`
	Body         *models.PostBody `json:"body,omitempty"`
	Users        *WritePostUsers  `json:"users,omitempty"`
	DueDate      *time.Time       `json:"dueDate,omitempty"`
	DueDateFlag  *bool            `json:"dueDateFlag,omitempty"`
	MilestoneID  *string          `json:"milestoneId,omitempty"`
	TagIDs       []string         `json:"tagIds,omitempty"`
	Priority     *string          `json:"priority,omitempty"`
	Version      *string          `json:"version,omitempty"`
	ParentPostID *string          `json:"parentPostId,omitempty"`
}

// Validate checks the fields the API requires.
func (p *WritePost) Validate() error {
	return validation.ValidateStruct(p,
		validation.Field(&p.Subject, validation.Required),
		validation.Field(&p.Priority, validation.NilOrNotEmpty, validation.In(priorities...)),
	)
}

// Clone returns a deep copy of p.
func (p *WritePost) Clone() *WritePost {
	out := &WritePost{
		Subject:      cloneValue(p.Subject),
		Body:         cloneValue(p.Body),
		Users:        p.Users.clone(),
		DueDate:      cloneValue(p.DueDate),
		DueDateFlag:  cloneValue(p.DueDateFlag),
		MilestoneID:  cloneValue(p.MilestoneID),
		TagIDs:       slices.Clone(p.TagIDs),
		Priority:     cloneValue(p.Priority),
		Version:      cloneValue(p.Version),
		ParentPostID: cloneValue(p.ParentPostID),
	}
	return out
}

// WriteTemplate is the payload for creating or updating a template.
type WriteTemplate struct {
	TemplateName string           `json:"templateName"`
	Subject      *string          `json:"subject,omitempty"`
	Body         *models.PostBody `json:"body,omitempty"`
	Guide        *models.PostBody `json:"guide,omitempty"`
	Users        *WritePostUsers  `json:"users,omitempty"`
	DueDate      *time.Time       `json:"dueDate,omitempty"`
	DueDateFlag  *bool            `json:"dueDateFlag,omitempty"`
	MilestoneID  *string          `json:"milestoneId,omitempty"`
	TagIDs       []string         `json:"tagIds,omitempty"`
	Priority     *string          `json:"priority,omitempty"`
	IsDefault    *bool            `json:"isDefault,omitempty"`
}

// Validate checks the fields the API requires.
func (t *WriteTemplate) Validate() error {
	return validation.ValidateStruct(t,
		validation.Field(&t.TemplateName, validation.Required),
		validation.Field(&t.Priority, validation.NilOrNotEmpty, validation.In(priorities...)),
	)
}

// Clone returns a deep copy of t.
func (t *WriteTemplate) Clone() *WriteTemplate {
	return &WriteTemplate{
		TemplateName: t.TemplateName,
		Subject:      cloneValue(t.Subject),
		Body:         cloneValue(t.Body),
		Guide:        cloneValue(t.Guide),
		Users:        t.Users.clone(),
		DueDate:      cloneValue(t.DueDate),
		DueDateFlag:  cloneValue(t.DueDateFlag),
		MilestoneID:  cloneValue(t.MilestoneID),
		TagIDs:       slices.Clone(t.TagIDs),
		Priority:     cloneValue(t.Priority),
		IsDefault:    cloneValue(t.IsDefault),
	}
}

func cloneValue[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
