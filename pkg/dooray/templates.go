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

// CreateTemplate creates a template from a builder payload.
func (p *Project) CreateTemplate(ctx context.Context, projectID string, tmpl *builder.WriteTemplate) (*envelope.Response[*models.Relation], error) {
	if err := checkArgs("CreateTemplate", validation.Errors{
		"projectId": required(projectID),
		"template":  validation.Validate(tmpl, validation.Required),
	}); err != nil {
		return nil, err
	}
	return doRelation(ctx, p.r, pathf("/project/v1/projects/%s/templates", projectID), tmpl)
}

// GetTemplates lists the templates of a project.
func (p *Project) GetTemplates(ctx context.Context, projectID string, page envelope.Pagination) (*envelope.ListResponse[*models.Template], error) {
	if err := checkArgs("GetTemplates", validation.Errors{
		"projectId": required(projectID),
		"page":      page.Validate(),
	}); err != nil {
		return nil, err
	}
	return doList(ctx, p.r, pathf("/project/v1/projects/%s/templates", projectID), nil, page, models.DecodeTemplate)
}

// GetTemplate returns a template. With interpolation set the server expands
// template macros such as dates and the requesting member's name.
func (p *Project) GetTemplate(ctx context.Context, projectID, templateID string, interpolation bool) (*envelope.Response[*models.Template], error) {
	if err := checkArgs("GetTemplate", validation.Errors{
		"projectId":  required(projectID),
		"templateId": required(templateID),
	}); err != nil {
		return nil, err
	}

	var query url.Values
	if interpolation {
		query = url.Values{"interpolation": {"true"}}
	}
	path := pathf("/project/v1/projects/%s/templates/%s", projectID, templateID)
	return doOne(ctx, p.r, http.MethodGet, path, query, nil, models.DecodeTemplate)
}

// UpdateTemplate replaces a template.
func (p *Project) UpdateTemplate(ctx context.Context, projectID, templateID string, tmpl *builder.WriteTemplate) (*Ack, error) {
	if err := checkArgs("UpdateTemplate", validation.Errors{
		"projectId":  required(projectID),
		"templateId": required(templateID),
		"template":   validation.Validate(tmpl, validation.Required),
	}); err != nil {
		return nil, err
	}
	path := pathf("/project/v1/projects/%s/templates/%s", projectID, templateID)
	return doAck(ctx, p.r, http.MethodPut, path, tmpl)
}

// DeleteTemplate deletes a template.
func (p *Project) DeleteTemplate(ctx context.Context, projectID, templateID string) (*Ack, error) {
	if err := checkArgs("DeleteTemplate", validation.Errors{
		"projectId":  required(projectID),
		"templateId": required(templateID),
	}); err != nil {
		return nil, err
	}
	path := pathf("/project/v1/projects/%s/templates/%s", projectID, templateID)
	return doAck(ctx, p.r, http.MethodDelete, path, nil)
}
