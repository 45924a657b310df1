package models

import (
	"time"

	"github.com/iizs/godooray/internal/decode"
)

// Project is a project (task board).
type Project struct {
	ID           string    `json:"id"`
	Code         string    `json:"code"`
	Description  *string   `json:"description,omitempty"`
	Scope        *string   `json:"scope,omitempty"`
	State        *string   `json:"state,omitempty"`
	Type         *string   `json:"type,omitempty"`
	Organization *Relation `json:"organization,omitempty"`
	Wiki         *Relation `json:"wiki,omitempty"`
	Drive        *Relation `json:"drive,omitempty"`
}

// DecodeProject decodes a Project. Only id and code are required.
func DecodeProject(obj map[string]any) (*Project, error) {
	r := decode.NewReader("Project", obj)
	p := &Project{
		ID:          r.String("id"),
		Code:        r.String("code"),
		Description: r.OptString("description"),
		Scope:       r.OptString("scope"),
		State:       r.OptString("state"),
		Type:        r.OptString("type"),
	}
	p.Organization, _ = decode.OptNested(r, "organization", DecodeRelation)
	p.Wiki, _ = decode.OptNested(r, "wiki", DecodeRelation)
	p.Drive, _ = decode.OptNested(r, "drive", DecodeRelation)
	return p, r.Err()
}

// ProjectRef is the short project reference embedded in other entities.
type ProjectRef struct {
	ID   string  `json:"id"`
	Code *string `json:"code,omitempty"`
}

// DecodeProjectRef decodes a ProjectRef.
func DecodeProjectRef(obj map[string]any) (*ProjectRef, error) {
	r := decode.NewReader("ProjectRef", obj)
	p := &ProjectRef{
		ID:   r.String("id"),
		Code: r.OptString("code"),
	}
	return p, r.Err()
}

// DisplayName is a localized name.
type DisplayName struct {
	Locale string `json:"locale"`
	Name   string `json:"name"`
}

func decodeDisplayName(obj map[string]any) (DisplayName, error) {
	r := decode.NewReader("DisplayName", obj)
	n := DisplayName{
		Locale: r.String("locale"),
		Name:   r.String("name"),
	}
	return n, r.Err()
}

// Workflow is a post state within a project. Class is one of backlog,
// registered, working or closed.
type Workflow struct {
	ID    string        `json:"id"`
	Name  string        `json:"name"`
	Class string        `json:"class"`
	Order *int          `json:"order,omitempty"`
	Names []DisplayName `json:"names"`
}

// DecodeWorkflow decodes a Workflow.
func DecodeWorkflow(obj map[string]any) (*Workflow, error) {
	r := decode.NewReader("Workflow", obj)
	w := &Workflow{
		ID:    r.String("id"),
		Name:  r.String("name"),
		Class: r.String("class"),
		Order: r.OptInt("order"),
		Names: decode.OptList(r, "names", decodeDisplayName),
	}
	return w, r.Err()
}

// EmailAddress is a project mailbox, or the external recipient of a post.
type EmailAddress struct {
	ID           *string `json:"id,omitempty"`
	Name         *string `json:"name,omitempty"`
	EmailAddress string  `json:"emailAddress"`
}

// DecodeEmailAddress decodes an EmailAddress.
func DecodeEmailAddress(obj map[string]any) (*EmailAddress, error) {
	r := decode.NewReader("EmailAddress", obj)
	e := &EmailAddress{
		ID:           r.OptString("id"),
		Name:         r.OptString("name"),
		EmailAddress: r.String("emailAddress"),
	}
	return e, r.Err()
}

// Tag is a project tag. Post listings return tags with the id only.
type Tag struct {
	ID    string  `json:"id"`
	Name  *string `json:"name,omitempty"`
	Color *string `json:"color,omitempty"`
}

// DecodeTag decodes a Tag.
func DecodeTag(obj map[string]any) (*Tag, error) {
	r := decode.NewReader("Tag", obj)
	t := &Tag{
		ID:    r.String("id"),
		Name:  r.OptString("name"),
		Color: r.OptString("color"),
	}
	return t, r.Err()
}

func decodeTagValue(obj map[string]any) (Tag, error) {
	t, err := DecodeTag(obj)
	if err != nil {
		return Tag{}, err
	}
	return *t, nil
}

// Milestone is a project milestone. Status is open or closed.
type Milestone struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Status    *string    `json:"status,omitempty"`
	StartedAt *time.Time `json:"startedAt,omitempty"`
	EndedAt   *time.Time `json:"endedAt,omitempty"`
	ClosedAt  *time.Time `json:"closedAt,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// DecodeMilestone decodes a Milestone.
func DecodeMilestone(obj map[string]any) (*Milestone, error) {
	r := decode.NewReader("Milestone", obj)
	m := &Milestone{
		ID:        r.String("id"),
		Name:      r.String("name"),
		Status:    r.OptString("status"),
		StartedAt: r.OptTime("startedAt"),
		EndedAt:   r.OptTime("endedAt"),
		ClosedAt:  r.OptTime("closedAt"),
		CreatedAt: r.OptTime("createdAt"),
		UpdatedAt: r.OptTime("updatedAt"),
	}
	return m, r.Err()
}

// ProjectMember is a member's role in a project.
type ProjectMember struct {
	OrganizationMemberID string  `json:"organizationMemberId"`
	Role                 *string `json:"role,omitempty"`
}

// DecodeProjectMember decodes a ProjectMember.
func DecodeProjectMember(obj map[string]any) (*ProjectMember, error) {
	r := decode.NewReader("ProjectMember", obj)
	m := &ProjectMember{
		OrganizationMemberID: r.String("organizationMemberId"),
		Role:                 r.OptString("role"),
	}
	return m, r.Err()
}

// MemberGroupMember is one entry of a member group.
type MemberGroupMember struct {
	OrganizationMemberID string  `json:"organizationMemberId"`
	Name                 *string `json:"name,omitempty"`
}

func decodeMemberGroupMember(obj map[string]any) (MemberGroupMember, error) {
	r := decode.NewReader("MemberGroupMember", obj)
	var m MemberGroupMember
	// Entries are either flat or wrapped in an organizationMember object.
	if inner := r.OptObject("organizationMember"); inner != nil {
		ir := decode.NewReader("MemberGroupMember", inner)
		m.OrganizationMemberID = ir.String("id")
		m.Name = ir.OptString("name")
		if err := ir.Err(); err != nil {
			r.Failf("organizationMember", "%v", err)
		}
	} else {
		m.OrganizationMemberID = r.String("organizationMemberId")
		m.Name = r.OptString("name")
	}
	return m, r.Err()
}

// MemberGroup is a named group of project members.
type MemberGroup struct {
	ID        string              `json:"id"`
	Code      *string             `json:"code,omitempty"`
	CreatedAt *time.Time          `json:"createdAt,omitempty"`
	UpdatedAt *time.Time          `json:"updatedAt,omitempty"`
	Project   *ProjectRef         `json:"project,omitempty"`
	Members   []MemberGroupMember `json:"members"`
}

// DecodeMemberGroup decodes a MemberGroup.
func DecodeMemberGroup(obj map[string]any) (*MemberGroup, error) {
	r := decode.NewReader("MemberGroup", obj)
	g := &MemberGroup{
		ID:        r.String("id"),
		Code:      r.OptString("code"),
		CreatedAt: r.OptTime("createdAt"),
		UpdatedAt: r.OptTime("updatedAt"),
		Members:   decode.OptList(r, "members", decodeMemberGroupMember),
	}
	g.Project, _ = decode.OptNested(r, "project", DecodeProjectRef)
	return g, r.Err()
}
