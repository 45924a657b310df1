package dooray

import (
	"context"
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/iizs/godooray/pkg/envelope"
	"github.com/iizs/godooray/pkg/models"
)

// ===================================================================
// Directory
// ===================================================================

// GetMembers searches the organization directory.
//
// At least one filter must be set unless the client was configured with
// AllowUnfilteredMemberLookup, in which case an empty filter lists every
// member.
func (c *Client) GetMembers(ctx context.Context, filter MemberFilter, p envelope.Pagination) (*envelope.ListResponse[*models.Member], error) {
	errs := validation.Errors{"page": p.Validate()}
	if filter.IsZero() && !c.allowUnfilteredMemberLookup {
		errs["filter"] = errors.New("at least one of name, userCode, userCodeExact, idProviderUserId or externalEmailAddresses is required")
	}
	if err := checkArgs("GetMembers", errs); err != nil {
		return nil, err
	}

	query, err := queryFromFilter(filter)
	if err != nil {
		return nil, err
	}
	if filter.IsZero() {
		query.Set("name", "")
	}

	return doList(ctx, c.r, "/common/v1/members", query, p, models.DecodeMember)
}

// GetIncomingHook returns an incoming webhook by id. The id is the second
// path segment of the hook URL.
func (c *Client) GetIncomingHook(ctx context.Context, hookID string) (*envelope.Response[*models.IncomingHook], error) {
	if err := checkArgs("GetIncomingHook", validation.Errors{"hookId": required(hookID)}); err != nil {
		return nil, err
	}
	return doOne(ctx, c.r, http.MethodGet, pathf("/common/v1/incoming-hooks/%s", hookID), nil, nil, models.DecodeIncomingHook)
}
