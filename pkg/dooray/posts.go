package dooray

import (
	"context"
	"net/http"
	"net/url"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/iizs/godooray/pkg/builder"
	"github.com/iizs/godooray/pkg/envelope"
	"github.com/iizs/godooray/pkg/models"
)

// Post log orders.
const (
	LogOrderCreatedAt     = "createdAt"
	LogOrderCreatedAtDesc = "-createdAt"
)

// ===================================================================
// Posts
// ===================================================================

// CreatePost creates a post from a builder payload.
func (p *Project) CreatePost(ctx context.Context, projectID string, post *builder.WritePost) (*envelope.Response[*models.Relation], error) {
	if err := checkArgs("CreatePost", validation.Errors{
		"projectId": required(projectID),
		"post":      validation.Validate(post, validation.Required),
	}); err != nil {
		return nil, err
	}
	return doRelation(ctx, p.r, pathf("/project/v1/projects/%s/posts", projectID), post)
}

// GetPosts lists posts matching filter.
func (p *Project) GetPosts(ctx context.Context, projectID string, filter PostFilter, page envelope.Pagination) (*envelope.ListResponse[*models.Post], error) {
	if err := checkArgs("GetPosts", validation.Errors{
		"projectId": required(projectID),
		"page":      page.Validate(),
	}); err != nil {
		return nil, err
	}

	query, err := queryFromFilter(filter)
	if err != nil {
		return nil, err
	}
	return doList(ctx, p.r, pathf("/project/v1/projects/%s/posts", projectID), query, page, models.DecodePost)
}

// GetPost returns a post.
func (p *Project) GetPost(ctx context.Context, projectID, postID string) (*envelope.Response[*models.Post], error) {
	if err := checkArgs("GetPost", validation.Errors{
		"projectId": required(projectID),
		"postId":    required(postID),
	}); err != nil {
		return nil, err
	}
	path := pathf("/project/v1/projects/%s/posts/%s", projectID, postID)
	return doOne(ctx, p.r, http.MethodGet, path, nil, nil, models.DecodePost)
}

// UpdatePost replaces the editable fields of a post.
func (p *Project) UpdatePost(ctx context.Context, projectID, postID string, post *builder.WritePost) (*Ack, error) {
	if err := checkArgs("UpdatePost", validation.Errors{
		"projectId": required(projectID),
		"postId":    required(postID),
		"post":      validation.Validate(post, validation.Required),
	}); err != nil {
		return nil, err
	}
	path := pathf("/project/v1/projects/%s/posts/%s", projectID, postID)
	return doAck(ctx, p.r, http.MethodPut, path, post)
}

// SetPostWorkflowForMember moves one recipient's copy of a post to a
// workflow.
func (p *Project) SetPostWorkflowForMember(ctx context.Context, projectID, postID, memberID, workflowID string) (*Ack, error) {
	if err := checkArgs("SetPostWorkflowForMember", validation.Errors{
		"projectId":  required(projectID),
		"postId":     required(postID),
		"memberId":   required(memberID),
		"workflowId": required(workflowID),
	}); err != nil {
		return nil, err
	}
	path := pathf("/project/v1/projects/%s/posts/%s/to/%s", projectID, postID, memberID)
	return doAck(ctx, p.r, http.MethodPut, path, map[string]string{"workflowId": workflowID})
}

// SetPostWorkflow moves a post to a workflow for every recipient.
func (p *Project) SetPostWorkflow(ctx context.Context, projectID, postID, workflowID string) (*Ack, error) {
	if err := checkArgs("SetPostWorkflow", validation.Errors{
		"projectId":  required(projectID),
		"postId":     required(postID),
		"workflowId": required(workflowID),
	}); err != nil {
		return nil, err
	}
	path := pathf("/project/v1/projects/%s/posts/%s/set-workflow", projectID, postID)
	return doAck(ctx, p.r, http.MethodPost, path, map[string]string{"workflowId": workflowID})
}

// SetPostAsDone moves a post to the project's first closed workflow.
func (p *Project) SetPostAsDone(ctx context.Context, projectID, postID string) (*Ack, error) {
	if err := checkArgs("SetPostAsDone", validation.Errors{
		"projectId": required(projectID),
		"postId":    required(postID),
	}); err != nil {
		return nil, err
	}
	path := pathf("/project/v1/projects/%s/posts/%s/set-done", projectID, postID)
	return doAck(ctx, p.r, http.MethodPost, path, nil)
}

// ===================================================================
// Post logs
// ===================================================================

func logBody(content string) map[string]any {
	return map[string]any{
		"body": models.PostBody{MimeType: models.MimeTypeMarkdown, Content: content},
	}
}

// CreatePostLog adds a markdown comment to a post.
func (p *Project) CreatePostLog(ctx context.Context, projectID, postID, content string) (*envelope.Response[*models.Relation], error) {
	if err := checkArgs("CreatePostLog", validation.Errors{
		"projectId": required(projectID),
		"postId":    required(postID),
		"content":   required(content),
	}); err != nil {
		return nil, err
	}
	path := pathf("/project/v1/projects/%s/posts/%s/logs", projectID, postID)
	return doRelation(ctx, p.r, path, logBody(content))
}

// GetPostLogs lists the comments and events of a post. order is createdAt
// or -createdAt; empty leaves the server default.
func (p *Project) GetPostLogs(ctx context.Context, projectID, postID string, page envelope.Pagination, order string) (*envelope.ListResponse[*models.PostLog], error) {
	if err := checkArgs("GetPostLogs", validation.Errors{
		"projectId": required(projectID),
		"postId":    required(postID),
		"page":      page.Validate(),
		"order":     validation.Validate(order, validation.In(LogOrderCreatedAt, LogOrderCreatedAtDesc)),
	}); err != nil {
		return nil, err
	}

	query := url.Values{}
	if order != "" {
		query.Set("order", order)
	}
	path := pathf("/project/v1/projects/%s/posts/%s/logs", projectID, postID)
	return doList(ctx, p.r, path, query, page, models.DecodePostLog)
}

// GetPostLog returns a comment.
func (p *Project) GetPostLog(ctx context.Context, projectID, postID, logID string) (*envelope.Response[*models.PostLog], error) {
	if err := checkArgs("GetPostLog", validation.Errors{
		"projectId": required(projectID),
		"postId":    required(postID),
		"logId":     required(logID),
	}); err != nil {
		return nil, err
	}
	path := pathf("/project/v1/projects/%s/posts/%s/logs/%s", projectID, postID, logID)
	return doOne(ctx, p.r, http.MethodGet, path, nil, nil, models.DecodePostLog)
}

// UpdatePostLog replaces the content of a comment.
func (p *Project) UpdatePostLog(ctx context.Context, projectID, postID, logID, content string) (*Ack, error) {
	if err := checkArgs("UpdatePostLog", validation.Errors{
		"projectId": required(projectID),
		"postId":    required(postID),
		"logId":     required(logID),
		"content":   required(content),
	}); err != nil {
		return nil, err
	}
	path := pathf("/project/v1/projects/%s/posts/%s/logs/%s", projectID, postID, logID)
	return doAck(ctx, p.r, http.MethodPut, path, logBody(content))
}

// DeletePostLog deletes a comment.
func (p *Project) DeletePostLog(ctx context.Context, projectID, postID, logID string) (*Ack, error) {
	if err := checkArgs("DeletePostLog", validation.Errors{
		"projectId": required(projectID),
		"postId":    required(postID),
		"logId":     required(logID),
	}); err != nil {
		return nil, err
	}
	path := pathf("/project/v1/projects/%s/posts/%s/logs/%s", projectID, postID, logID)
	return doAck(ctx, p.r, http.MethodDelete, path, nil)
}
