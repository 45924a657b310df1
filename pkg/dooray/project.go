package dooray

import (
	"context"
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/iizs/godooray/pkg/doorayerr"
	"github.com/iizs/godooray/pkg/envelope"
	"github.com/iizs/godooray/pkg/models"
	"github.com/iizs/godooray/pkg/transport"
)

// Project scopes.
const (
	ScopePrivate = "private"
	ScopePublic  = "public"
)

// Project member roles.
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// Project hook events.
const (
	EventPostCreated         = "postCreated"
	EventPostCommentCreated  = "postCommentCreated"
	EventPostTagChanged      = "postTagChanged"
	EventPostDueDateChanged  = "postDueDateChanged"
	EventPostWorkflowChanged = "postWorkflowChanged"
)

var hookEvents = []any{
	EventPostCreated,
	EventPostCommentCreated,
	EventPostTagChanged,
	EventPostDueDateChanged,
	EventPostWorkflowChanged,
}

// Project groups the project endpoints.
type Project struct {
	r *requester
}

// ===================================================================
// Projects
// ===================================================================

// IsCreatable reports whether a project with code can be created. A
// rejection by the server is reported as false, not as an error.
func (p *Project) IsCreatable(ctx context.Context, code string) (bool, error) {
	if err := checkArgs("IsCreatable", validation.Errors{"code": required(code)}); err != nil {
		return false, err
	}

	_, err := doAck(ctx, p.r, http.MethodPost, "/project/v1/projects/is-creatable", map[string]string{
		"code": code,
	})
	if errors.Is(err, doorayerr.ErrBadStatus) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Create creates a project. scope defaults to private.
func (p *Project) Create(ctx context.Context, code, description, scope string) (*envelope.Response[*models.Relation], error) {
	if scope == "" {
		scope = ScopePrivate
	}
	if err := checkArgs("Create", validation.Errors{
		"code":  required(code),
		"scope": validation.Validate(scope, validation.In(ScopePrivate, ScopePublic)),
	}); err != nil {
		return nil, err
	}

	return doRelation(ctx, p.r, "/project/v1/projects", map[string]string{
		"code":        code,
		"description": description,
		"scope":       scope,
	})
}

// Get returns a project.
func (p *Project) Get(ctx context.Context, projectID string) (*envelope.Response[*models.Project], error) {
	if err := checkArgs("Get", validation.Errors{"projectId": required(projectID)}); err != nil {
		return nil, err
	}
	return doOne(ctx, p.r, http.MethodGet, pathf("/project/v1/projects/%s", projectID), nil, nil, models.DecodeProject)
}

// GetWorkflows lists the workflows of a project.
func (p *Project) GetWorkflows(ctx context.Context, projectID string) (*envelope.ListResponse[*models.Workflow], error) {
	if err := checkArgs("GetWorkflows", validation.Errors{"projectId": required(projectID)}); err != nil {
		return nil, err
	}
	return doList(ctx, p.r, pathf("/project/v1/projects/%s/workflows", projectID), nil, envelope.All(), models.DecodeWorkflow)
}

// ===================================================================
// Email addresses
// ===================================================================

// CreateEmailAddress registers a mailbox that turns incoming mail into
// posts.
func (p *Project) CreateEmailAddress(ctx context.Context, projectID, emailAddress, name string) (*envelope.Response[*models.Relation], error) {
	if err := checkArgs("CreateEmailAddress", validation.Errors{
		"projectId":    required(projectID),
		"emailAddress": required(emailAddress),
	}); err != nil {
		return nil, err
	}

	return doRelation(ctx, p.r, pathf("/project/v1/projects/%s/email-addresses", projectID), map[string]string{
		"emailAddress": emailAddress,
		"name":         name,
	})
}

// GetEmailAddress returns a project mailbox.
func (p *Project) GetEmailAddress(ctx context.Context, projectID, emailAddressID string) (*envelope.Response[*models.EmailAddress], error) {
	if err := checkArgs("GetEmailAddress", validation.Errors{
		"projectId":      required(projectID),
		"emailAddressId": required(emailAddressID),
	}); err != nil {
		return nil, err
	}
	path := pathf("/project/v1/projects/%s/email-addresses/%s", projectID, emailAddressID)
	return doOne(ctx, p.r, http.MethodGet, path, nil, nil, models.DecodeEmailAddress)
}

// ===================================================================
// Tags
// ===================================================================

// CreateTag creates a tag. color is six hex digits without a leading '#'.
func (p *Project) CreateTag(ctx context.Context, projectID, name, color string) (*envelope.Response[*models.Relation], error) {
	if err := checkArgs("CreateTag", validation.Errors{
		"projectId": required(projectID),
		"name":      required(name),
		"color":     validation.Validate(color, validation.Required, validation.Match(tagColor)),
	}); err != nil {
		return nil, err
	}

	return doRelation(ctx, p.r, pathf("/project/v1/projects/%s/tags", projectID), map[string]string{
		"name":  name,
		"color": color,
	})
}

// GetTag returns a tag.
func (p *Project) GetTag(ctx context.Context, projectID, tagID string) (*envelope.Response[*models.Tag], error) {
	if err := checkArgs("GetTag", validation.Errors{
		"projectId": required(projectID),
		"tagId":     required(tagID),
	}); err != nil {
		return nil, err
	}
	return doOne(ctx, p.r, http.MethodGet, pathf("/project/v1/projects/%s/tags/%s", projectID, tagID), nil, nil, models.DecodeTag)
}

// GetTags lists the tags of a project.
func (p *Project) GetTags(ctx context.Context, projectID string, page envelope.Pagination) (*envelope.ListResponse[*models.Tag], error) {
	if err := checkArgs("GetTags", validation.Errors{
		"projectId": required(projectID),
		"page":      page.Validate(),
	}); err != nil {
		return nil, err
	}
	return doList(ctx, p.r, pathf("/project/v1/projects/%s/tags", projectID), nil, page, models.DecodeTag)
}

// ===================================================================
// Hooks
// ===================================================================

// CreateHook registers an outgoing hook that receives the given post
// events.
func (p *Project) CreateHook(ctx context.Context, projectID, hookURL string, sendEvents []string) (*envelope.Response[*models.Relation], error) {
	if err := checkArgs("CreateHook", validation.Errors{
		"projectId":  required(projectID),
		"url":        validation.Validate(hookURL, validation.Required, transport.HTTPURL),
		"sendEvents": validation.Validate(sendEvents, validation.Required, validation.Each(validation.In(hookEvents...))),
	}); err != nil {
		return nil, err
	}

	return doRelation(ctx, p.r, pathf("/project/v1/projects/%s/hooks", projectID), map[string]any{
		"url":        hookURL,
		"sendEvents": sendEvents,
	})
}

// ===================================================================
// Members
// ===================================================================

// AddMember adds an organization member to a project. role defaults to
// member.
func (p *Project) AddMember(ctx context.Context, projectID, memberID, role string) (*envelope.Response[*models.ProjectMember], error) {
	if role == "" {
		role = RoleMember
	}
	if err := checkArgs("AddMember", validation.Errors{
		"projectId": required(projectID),
		"memberId":  required(memberID),
		"role":      validation.Validate(role, validation.In(RoleAdmin, RoleMember)),
	}); err != nil {
		return nil, err
	}

	body := map[string]string{
		"organizationMemberId": memberID,
		"role":                 role,
	}
	return doOne(ctx, p.r, http.MethodPost, pathf("/project/v1/projects/%s/members", projectID), nil, body, models.DecodeProjectMember)
}

// GetMember returns a project member and its role.
func (p *Project) GetMember(ctx context.Context, projectID, memberID string) (*envelope.Response[*models.ProjectMember], error) {
	if err := checkArgs("GetMember", validation.Errors{
		"projectId": required(projectID),
		"memberId":  required(memberID),
	}); err != nil {
		return nil, err
	}
	path := pathf("/project/v1/projects/%s/members/%s", projectID, memberID)
	return doOne(ctx, p.r, http.MethodGet, path, nil, nil, models.DecodeProjectMember)
}

// GetMemberGroups lists the member groups of a project.
func (p *Project) GetMemberGroups(ctx context.Context, projectID string, page envelope.Pagination) (*envelope.ListResponse[*models.MemberGroup], error) {
	if err := checkArgs("GetMemberGroups", validation.Errors{
		"projectId": required(projectID),
		"page":      page.Validate(),
	}); err != nil {
		return nil, err
	}
	return doList(ctx, p.r, pathf("/project/v1/projects/%s/member-groups", projectID), nil, page, models.DecodeMemberGroup)
}

// GetMemberGroup returns a member group with its members.
func (p *Project) GetMemberGroup(ctx context.Context, projectID, groupID string) (*envelope.Response[*models.MemberGroup], error) {
	if err := checkArgs("GetMemberGroup", validation.Errors{
		"projectId":     required(projectID),
		"memberGroupId": required(groupID),
	}); err != nil {
		return nil, err
	}
	path := pathf("/project/v1/projects/%s/member-groups/%s", projectID, groupID)
	return doOne(ctx, p.r, http.MethodGet, path, nil, nil, models.DecodeMemberGroup)
}
