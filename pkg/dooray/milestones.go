package dooray

import (
	"context"
	"net/http"
	"net/url"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/iizs/godooray/pkg/envelope"
	"github.com/iizs/godooray/pkg/models"
)

// Milestone statuses.
const (
	MilestoneOpen   = "open"
	MilestoneClosed = "closed"
)

// milestoneDateLayout is the date form the milestone endpoints accept, for
// example 2026-01-01+09:00.
const milestoneDateLayout = "2006-01-02-07:00"

// MilestoneUpdate holds the fields sent by UpdateMilestone. Nil dates are
// left out of the request.
type MilestoneUpdate struct {
	Name      string
	Status    string
	StartedAt *time.Time
	EndedAt   *time.Time
}

func (u MilestoneUpdate) body() map[string]string {
	body := map[string]string{
		"name":   u.Name,
		"status": u.Status,
	}
	if u.StartedAt != nil {
		body["startedAt"] = u.StartedAt.Format(milestoneDateLayout)
	}
	if u.EndedAt != nil {
		body["endedAt"] = u.EndedAt.Format(milestoneDateLayout)
	}
	return body
}

func milestoneStatus(status string) error {
	return validation.Validate(status, validation.In(MilestoneOpen, MilestoneClosed))
}

// CreateMilestone creates a milestone spanning startedAt to endedAt. Only the
// date and zone offset of each time are sent.
func (p *Project) CreateMilestone(ctx context.Context, projectID, name string, startedAt, endedAt time.Time) (*envelope.Response[*models.Relation], error) {
	errs := validation.Errors{
		"projectId": required(projectID),
		"name":      required(name),
		"startedAt": required(startedAt),
		"endedAt":   required(endedAt),
	}
	if errs.Filter() == nil && endedAt.Before(startedAt) {
		errs["endedAt"] = validation.NewError("validation_milestone_range", "must not be before startedAt")
	}
	if err := checkArgs("CreateMilestone", errs); err != nil {
		return nil, err
	}

	return doRelation(ctx, p.r, pathf("/project/v1/projects/%s/milestones", projectID), map[string]string{
		"name":      name,
		"startedAt": startedAt.Format(milestoneDateLayout),
		"endedAt":   endedAt.Format(milestoneDateLayout),
	})
}

// GetMilestones lists milestones. An empty status lists both open and
// closed milestones.
func (p *Project) GetMilestones(ctx context.Context, projectID string, page envelope.Pagination, status string) (*envelope.ListResponse[*models.Milestone], error) {
	if err := checkArgs("GetMilestones", validation.Errors{
		"projectId": required(projectID),
		"page":      page.Validate(),
		"status":    milestoneStatus(status),
	}); err != nil {
		return nil, err
	}

	query := url.Values{}
	if status != "" {
		query.Set("status", status)
	}
	return doList(ctx, p.r, pathf("/project/v1/projects/%s/milestones", projectID), query, page, models.DecodeMilestone)
}

// GetMilestone returns a milestone.
func (p *Project) GetMilestone(ctx context.Context, projectID, milestoneID string) (*envelope.Response[*models.Milestone], error) {
	if err := checkArgs("GetMilestone", validation.Errors{
		"projectId":   required(projectID),
		"milestoneId": required(milestoneID),
	}); err != nil {
		return nil, err
	}
	path := pathf("/project/v1/projects/%s/milestones/%s", projectID, milestoneID)
	return doOne(ctx, p.r, http.MethodGet, path, nil, nil, models.DecodeMilestone)
}

// UpdateMilestone replaces a milestone's name and status, and its dates when
// set.
func (p *Project) UpdateMilestone(ctx context.Context, projectID, milestoneID string, update MilestoneUpdate) (*Ack, error) {
	if err := checkArgs("UpdateMilestone", validation.Errors{
		"projectId":   required(projectID),
		"milestoneId": required(milestoneID),
		"name":        required(update.Name),
		"status":      validation.Validate(update.Status, validation.Required, validation.In(MilestoneOpen, MilestoneClosed)),
	}); err != nil {
		return nil, err
	}
	path := pathf("/project/v1/projects/%s/milestones/%s", projectID, milestoneID)
	return doAck(ctx, p.r, http.MethodPut, path, update.body())
}

// DeleteMilestone deletes a milestone.
func (p *Project) DeleteMilestone(ctx context.Context, projectID, milestoneID string) (*Ack, error) {
	if err := checkArgs("DeleteMilestone", validation.Errors{
		"projectId":   required(projectID),
		"milestoneId": required(milestoneID),
	}); err != nil {
		return nil, err
	}
	path := pathf("/project/v1/projects/%s/milestones/%s", projectID, milestoneID)
	return doAck(ctx, p.r, http.MethodDelete, path, nil)
}
