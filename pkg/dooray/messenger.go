package dooray

import (
	"context"
	"net/http"
	"net/url"
	"slices"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/iizs/godooray/pkg/envelope"
	"github.com/iizs/godooray/pkg/models"
)

// Channel types and member id kinds accepted by CreateChannel.
const (
	ChannelTypePrivate = "private"
	ChannelTypeDirect  = "direct"

	IDTypeMemberID = "memberId"
	IDTypeEmail    = "email"
)

// DefaultChannelCapacity is used when CreateChannelInput.Capacity is zero.
const DefaultChannelCapacity = 100

// Messenger groups the messenger endpoints.
type Messenger struct {
	r *requester
}

// CreateChannelInput describes a channel to create.
type CreateChannelInput struct {
	Title     string
	MemberIDs []string
	IDType    string // memberId (default) or email
	Type      string // private (default) or direct
	Capacity  int    // default 100
}

// GetChannels lists every channel the caller belongs to. The listing is not
// paginated.
func (m *Messenger) GetChannels(ctx context.Context) (*envelope.ListResponse[*models.Channel], error) {
	return doList(ctx, m.r, "/messenger/v1/channels", nil, envelope.All(), models.DecodeChannel)
}

// SendDirectMessage sends text to one member.
func (m *Messenger) SendDirectMessage(ctx context.Context, memberID, text string) (*Ack, error) {
	if err := checkArgs("SendDirectMessage", validation.Errors{
		"memberId": required(memberID),
		"text":     required(text),
	}); err != nil {
		return nil, err
	}

	return doAck(ctx, m.r, http.MethodPost, "/messenger/v1/channels/direct-send", map[string]string{
		"text":                 text,
		"organizationMemberId": memberID,
	})
}

// SendChannelMessage posts text to a channel.
func (m *Messenger) SendChannelMessage(ctx context.Context, channelID, text string) (*Ack, error) {
	if err := checkArgs("SendChannelMessage", validation.Errors{
		"channelId": required(channelID),
		"text":      required(text),
	}); err != nil {
		return nil, err
	}

	return doAck(ctx, m.r, http.MethodPost, pathf("/messenger/v1/channels/%s/logs", channelID), map[string]string{
		"text": text,
	})
}

// SendChannelLog is an alias for SendChannelMessage.
func (m *Messenger) SendChannelLog(ctx context.Context, channelID, text string) (*Ack, error) {
	return m.SendChannelMessage(ctx, channelID, text)
}

// JoinChannel adds one or more members to a channel.
func (m *Messenger) JoinChannel(ctx context.Context, channelID string, memberIDs ...string) (*Ack, error) {
	return m.changeMembers(ctx, "JoinChannel", "join", channelID, memberIDs)
}

// LeaveChannel removes one or more members from a channel.
func (m *Messenger) LeaveChannel(ctx context.Context, channelID string, memberIDs ...string) (*Ack, error) {
	return m.changeMembers(ctx, "LeaveChannel", "leave", channelID, memberIDs)
}

func (m *Messenger) changeMembers(ctx context.Context, op, action, channelID string, memberIDs []string) (*Ack, error) {
	if err := checkArgs(op, validation.Errors{
		"channelId": required(channelID),
		"memberIds": memberIDList(memberIDs),
	}); err != nil {
		return nil, err
	}

	return doAck(ctx, m.r, http.MethodPost, pathf("/messenger/v1/channels/%s/members/", channelID)+action, map[string][]string{
		"memberIds": slices.Clone(memberIDs),
	})
}

// CreateChannel creates a channel and returns its id.
func (m *Messenger) CreateChannel(ctx context.Context, in CreateChannelInput) (*envelope.Response[*models.Relation], error) {
	if in.IDType == "" {
		in.IDType = IDTypeMemberID
	}
	if in.Type == "" {
		in.Type = ChannelTypePrivate
	}
	if in.Capacity == 0 {
		in.Capacity = DefaultChannelCapacity
	}

	if err := checkArgs("CreateChannel", validation.Errors{
		"title":     required(in.Title),
		"memberIds": memberIDList(in.MemberIDs),
		"idType":    validation.Validate(in.IDType, validation.In(IDTypeMemberID, IDTypeEmail)),
		"type":      validation.Validate(in.Type, validation.In(ChannelTypePrivate, ChannelTypeDirect)),
		"capacity":  validation.Validate(in.Capacity, validation.Min(1)),
	}); err != nil {
		return nil, err
	}

	body := map[string]any{
		"memberIds": slices.Clone(in.MemberIDs),
		"capacity":  in.Capacity,
		"type":      in.Type,
		"title":     in.Title,
	}
	query := url.Values{"idType": {in.IDType}}

	return doOne(ctx, m.r, http.MethodPost, "/messenger/v1/channels", query, body, models.DecodeRelation)
}

func memberIDList(ids []string) error {
	if len(ids) == 0 {
		return errNoMemberIDs
	}
	return validation.Validate(ids, validation.Each(validation.Required))
}
