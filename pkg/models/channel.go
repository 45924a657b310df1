package models

import (
	"time"

	"github.com/iizs/godooray/internal/decode"
)

// OrganizationMember references a member of the organization.
type OrganizationMember struct {
	OrganizationMemberID string `json:"organizationMemberId"`
}

func decodeOrganizationMember(obj map[string]any) (OrganizationMember, error) {
	r := decode.NewReader("OrganizationMember", obj)
	m := OrganizationMember{OrganizationMemberID: r.String("organizationMemberId")}
	return m, r.Err()
}

// Participant is a member of a messenger channel.
type Participant struct {
	Type   string             `json:"type"`
	Member OrganizationMember `json:"member"`
}

func decodeParticipant(obj map[string]any) (Participant, error) {
	r := decode.NewReader("Participant", obj)
	p := Participant{
		Type:   r.String("type"),
		Member: decode.Nested(r, "member", decodeOrganizationMember),
	}
	return p, r.Err()
}

// ChannelUsers lists the participants of a channel.
type ChannelUsers struct {
	Participants []Participant `json:"participants"`
}

func decodeChannelUsers(obj map[string]any) (ChannelUsers, error) {
	r := decode.NewReader("ChannelUsers", obj)
	u := ChannelUsers{Participants: decode.List(r, "participants", decodeParticipant)}
	return u, r.Err()
}

// Me is the calling member's own participation in a channel.
type Me struct {
	Participant
	Role string `json:"role"`
}

func decodeMe(obj map[string]any) (Me, error) {
	r := decode.NewReader("Me", obj)
	me := Me{
		Participant: Participant{
			Type:   r.String("type"),
			Member: decode.Nested(r, "member", decodeOrganizationMember),
		},
		Role: r.String("role"),
	}
	return me, r.Err()
}

// Channel is a messenger channel.
type Channel struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Organization Relation     `json:"organization"`
	Type         string       `json:"type"`
	Users        ChannelUsers `json:"users"`
	Me           Me           `json:"me"`
	Capacity     int          `json:"capacity"`
	Status       string       `json:"status"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
	ArchivedAt   *time.Time   `json:"archivedAt,omitempty"`
	Displayed    bool         `json:"displayed"`
}

// DecodeChannel decodes a Channel. archivedAt may be absent or null.
func DecodeChannel(obj map[string]any) (*Channel, error) {
	r := decode.NewReader("Channel", obj)
	c := &Channel{
		ID:           r.String("id"),
		Title:        r.String("title"),
		Organization: decode.Nested(r, "organization", decodeRelationValue),
		Type:         r.String("type"),
		Users:        decode.Nested(r, "users", decodeChannelUsers),
		Me:           decode.Nested(r, "me", decodeMe),
		Capacity:     r.Int("capacity"),
		Status:       r.String("status"),
		CreatedAt:    r.Time("createdAt"),
		UpdatedAt:    r.Time("updatedAt"),
		ArchivedAt:   r.OptTime("archivedAt"),
		Displayed:    r.Bool("displayed"),
	}
	return c, r.Err()
}
