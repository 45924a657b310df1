// Package models holds the read-side Dooray entities and the decoders that
// build them from JSON objects.
//
// Decoders are pure functions over map[string]any. Required fields that are
// absent or null produce a doorayerr.MalformedResponseError naming every
// problem; optional scalars and sub-objects decode to nil; optional lists
// decode to empty slices.
package models

import (
	"github.com/iizs/godooray/internal/decode"
)

// Relation is a bare reference to another resource.
type Relation struct {
	ID string `json:"id"`
}

// DecodeRelation decodes a Relation.
func DecodeRelation(obj map[string]any) (*Relation, error) {
	r := decode.NewReader("Relation", obj)
	rel := &Relation{ID: r.String("id")}
	return rel, r.Err()
}

func decodeRelationValue(obj map[string]any) (Relation, error) {
	rel, err := DecodeRelation(obj)
	if err != nil {
		return Relation{}, err
	}
	return *rel, nil
}

// Member is an organization directory entry.
type Member struct {
	ID                   string  `json:"id"`
	Name                 string  `json:"name"`
	UserCode             *string `json:"userCode,omitempty"`
	ExternalEmailAddress *string `json:"externalEmailAddress,omitempty"`
}

// DecodeMember decodes a Member.
func DecodeMember(obj map[string]any) (*Member, error) {
	r := decode.NewReader("Member", obj)
	m := &Member{
		ID:                   r.String("id"),
		Name:                 r.String("name"),
		UserCode:             r.OptString("userCode"),
		ExternalEmailAddress: r.OptString("externalEmailAddress"),
	}
	return m, r.Err()
}

// IncomingHook is an incoming webhook registered in the organization.
type IncomingHook struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	ServiceType string     `json:"serviceType"`
	URL         string     `json:"url"`
	Projects    []Relation `json:"projects"`
}

// DecodeIncomingHook decodes an IncomingHook.
func DecodeIncomingHook(obj map[string]any) (*IncomingHook, error) {
	r := decode.NewReader("IncomingHook", obj)
	h := &IncomingHook{
		ID:          r.String("id"),
		Name:        r.String("name"),
		ServiceType: r.String("serviceType"),
		URL:         r.String("url"),
		Projects:    decode.OptList(r, "projects", decodeRelationValue),
	}
	return h, r.Err()
}
