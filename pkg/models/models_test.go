package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iizs/godooray/pkg/doorayerr"
)

func object(t *testing.T, s string) map[string]any {
	t.Helper()
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()
	var obj map[string]any
	require.NoError(t, dec.Decode(&obj))
	return obj
}

func TestDecodeMember(t *testing.T) {
	t.Run("optional fields absent", func(t *testing.T) {
		m, err := DecodeMember(object(t, `{"id": "1", "name": "Kim"}`))
		require.NoError(t, err)
		assert.Equal(t, "1", m.ID)
		assert.Equal(t, "Kim", m.Name)
		assert.Nil(t, m.UserCode)
		assert.Nil(t, m.ExternalEmailAddress)
	})

	t.Run("all fields", func(t *testing.T) {
		m, err := DecodeMember(object(t, `{
			"id": "1234567890",
			"name": "Test User",
			"userCode": "testuser",
			"externalEmailAddress": "test@example.com"
		}`))
		require.NoError(t, err)
		require.NotNil(t, m.UserCode)
		assert.Equal(t, "testuser", *m.UserCode)
		assert.Equal(t, "test@example.com", *m.ExternalEmailAddress)
	})

	t.Run("missing name", func(t *testing.T) {
		_, err := DecodeMember(object(t, `{"id": "1"}`))
		require.Error(t, err)
		assert.ErrorIs(t, err, doorayerr.ErrMalformedResponse)

		var malformed *doorayerr.MalformedResponseError
		require.ErrorAs(t, err, &malformed)
		assert.Equal(t, "Member", malformed.Entity)
		assert.Contains(t, err.Error(), "name: is required")
	})
}

func TestDecodeProject_OnlyIDAndCode(t *testing.T) {
	p, err := DecodeProject(object(t, `{"id": "p1", "code": "ABC"}`))
	require.NoError(t, err)

	assert.Equal(t, "p1", p.ID)
	assert.Equal(t, "ABC", p.Code)
	assert.Nil(t, p.Description)
	assert.Nil(t, p.Scope)
	assert.Nil(t, p.State)
	assert.Nil(t, p.Type)
	assert.Nil(t, p.Organization)
	assert.Nil(t, p.Wiki)
	assert.Nil(t, p.Drive)
}

func TestDecodeProject_Full(t *testing.T) {
	p, err := DecodeProject(object(t, `{
		"id": "9999999999",
		"code": "test-project",
		"description": "Test project",
		"scope": "private",
		"state": "active",
		"type": "public",
		"organization": {"id": "org-1"},
		"wiki": {"id": "wiki-1"},
		"drive": {"id": "drive-1"}
	}`))
	require.NoError(t, err)

	assert.Equal(t, "Test project", *p.Description)
	assert.Equal(t, "private", *p.Scope)
	assert.Equal(t, "org-1", p.Organization.ID)
	assert.Equal(t, "wiki-1", p.Wiki.ID)
	assert.Equal(t, "drive-1", p.Drive.ID)
}

func TestDecodeChannel(t *testing.T) {
	c, err := DecodeChannel(object(t, `{
		"id": "ch-1",
		"title": "Test Channel",
		"organization": {"id": "org-1"},
		"type": "private",
		"users": {"participants": [{"type": "member", "member": {"organizationMemberId": "1234567890"}}]},
		"me": {"type": "member", "member": {"organizationMemberId": "1234567890"}, "role": "admin"},
		"capacity": 100,
		"status": "normal",
		"createdAt": "2026-01-01T00:00:00Z",
		"updatedAt": "2026-01-01T00:00:00Z",
		"archivedAt": null,
		"displayed": true
	}`))
	require.NoError(t, err)

	assert.Equal(t, "ch-1", c.ID)
	assert.Equal(t, "org-1", c.Organization.ID)
	require.Len(t, c.Users.Participants, 1)
	assert.Equal(t, "1234567890", c.Users.Participants[0].Member.OrganizationMemberID)
	assert.Equal(t, "admin", c.Me.Role)
	assert.Equal(t, "member", c.Me.Type)
	assert.Equal(t, 100, c.Capacity)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), c.CreatedAt.UTC())
	assert.Nil(t, c.ArchivedAt)
	assert.True(t, c.Displayed)
}

func TestDecodeChannel_MissingNested(t *testing.T) {
	_, err := DecodeChannel(object(t, `{
		"id": "ch-1",
		"title": "Test Channel",
		"organization": {"id": "org-1"},
		"type": "private",
		"users": {"participants": [{"type": "member"}]},
		"me": {"type": "member", "member": {"organizationMemberId": "1"}, "role": "admin"},
		"capacity": 100,
		"status": "normal",
		"createdAt": "2026-01-01T00:00:00Z",
		"updatedAt": "2026-01-01T00:00:00Z",
		"displayed": true
	}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, doorayerr.ErrMalformedResponse)
	assert.Contains(t, err.Error(), "participants[0]")
	assert.Contains(t, err.Error(), "member: is required")
}

func TestDecodePostUser(t *testing.T) {
	t.Run("member", func(t *testing.T) {
		u, err := DecodePostUser(object(t, `{"type": "member", "member": {"organizationMemberId": "X"}}`))
		require.NoError(t, err)
		require.NotNil(t, u.Member)
		assert.Equal(t, "X", u.Member.OrganizationMemberID)
		assert.Nil(t, u.EmailUser)

		b, err := json.Marshal(u)
		require.NoError(t, err)
		assert.JSONEq(t, `{"type": "member", "member": {"organizationMemberId": "X"}}`, string(b))
	})

	t.Run("email user", func(t *testing.T) {
		u, err := DecodePostUser(object(t, `{"type": "emailUser", "emailUser": {"emailAddress": "a@b.c", "name": "A"}}`))
		require.NoError(t, err)
		assert.Nil(t, u.Member)
		require.NotNil(t, u.EmailUser)
		assert.Equal(t, "a@b.c", u.EmailUser.EmailAddress)
		assert.Equal(t, "A", *u.EmailUser.Name)

		b, err := json.Marshal(u)
		require.NoError(t, err)
		assert.JSONEq(t, `{"type": "emailUser", "emailUser": {"emailAddress": "a@b.c", "name": "A"}}`, string(b))
	})

	t.Run("encoding writes the active branch only", func(t *testing.T) {
		u := PostUser{
			Type:      PostUserMember,
			Member:    &ProjectMember{OrganizationMemberID: "X"},
			EmailUser: &EmailAddress{EmailAddress: "stale@b.c"},
		}
		b, err := json.Marshal(u)
		require.NoError(t, err)
		assert.NotContains(t, string(b), "emailUser")
	})

	t.Run("missing branch", func(t *testing.T) {
		_, err := DecodePostUser(object(t, `{"type": "member"}`))
		assert.ErrorIs(t, err, doorayerr.ErrMalformedResponse)
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := DecodePostUser(object(t, `{"type": "robot", "robot": {}}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown post user type "robot"`)
	})
}

func TestDecodePost(t *testing.T) {
	p, err := DecodePost(object(t, `{
		"id": "post-1",
		"number": 1,
		"subject": "Test Post",
		"body": {"mimeType": "text/x-markdown", "content": "body"},
		"users": {
			"to": [{"type": "member", "member": {"organizationMemberId": "1234567890"}}],
			"cc": []
		},
		"priority": "normal"
	}`))
	require.NoError(t, err)

	assert.Equal(t, "post-1", p.ID)
	assert.Equal(t, 1, p.Number)
	assert.Equal(t, "Test Post", p.Subject)
	assert.Equal(t, MimeTypeMarkdown, p.Body.MimeType)
	require.Len(t, p.Users.To, 1)
	assert.Equal(t, "1234567890", p.Users.To[0].Member.OrganizationMemberID)
	assert.Empty(t, p.Users.Cc)
	assert.Nil(t, p.Users.From)
	assert.Equal(t, "normal", *p.Priority)
	assert.Nil(t, p.Milestone)
	assert.NotNil(t, p.Tags)
	assert.Empty(t, p.Tags)
}

func TestDecodePost_NullMilestoneAndTags(t *testing.T) {
	p, err := DecodePost(object(t, `{
		"id": "post-2",
		"number": 2,
		"subject": "s",
		"milestone": null,
		"tags": [{"id": "tag-1"}, {"id": "tag-2", "name": "bug"}],
		"workflow": {"id": "wf-1", "name": "Working"},
		"workflowClass": "working",
		"dueDate": "2026-12-31T18:00:00+09:00"
	}`))
	require.NoError(t, err)

	assert.Nil(t, p.Milestone)
	require.Len(t, p.Tags, 2)
	assert.Nil(t, p.Tags[0].Name)
	assert.Equal(t, "bug", *p.Tags[1].Name)
	assert.Equal(t, "wf-1", p.Workflow.ID)
	assert.Equal(t, "working", *p.WorkflowClass)
	require.NotNil(t, p.DueDate)
	assert.Equal(t, time.Date(2026, 12, 31, 9, 0, 0, 0, time.UTC), p.DueDate.UTC())
}

func TestDecodePost_ParentDepthIsCapped(t *testing.T) {
	inner := `{"id": "root", "number": 0, "subject": "root"}`
	for i := 0; i < MaxParentDepth+3; i++ {
		inner = `{"id": "p", "number": 1, "subject": "s", "parent": ` + inner + `}`
	}

	p, err := DecodePost(object(t, inner))
	require.NoError(t, err)

	depth := 0
	for cur := p; cur.Parent != nil; cur = cur.Parent {
		depth++
	}
	assert.Equal(t, MaxParentDepth, depth)
}

func TestDecodePost_ParentErrorsSurface(t *testing.T) {
	_, err := DecodePost(object(t, `{"id": "p", "number": 1, "subject": "s", "parent": {"id": "q"}}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parent")
	assert.Contains(t, err.Error(), "number: is required")
}

func TestDecodeTemplate(t *testing.T) {
	tmpl, err := DecodeTemplate(object(t, `{
		"id": "tmpl-1",
		"project": {"id": "9999999999", "code": "test-project"},
		"templateName": "Bug Report",
		"subject": "Bug:",
		"body": {"mimeType": "text/x-markdown", "content": "## Steps"},
		"guide": {"mimeType": "text/x-markdown", "content": "Describe it"},
		"users": {"to": [], "cc": []},
		"priority": "high",
		"isDefault": false,
		"tags": []
	}`))
	require.NoError(t, err)

	assert.Equal(t, "Bug Report", tmpl.TemplateName)
	assert.False(t, tmpl.IsDefault)
	assert.Equal(t, "test-project", *tmpl.Project.Code)
	assert.Equal(t, "Describe it", tmpl.Guide.Content)
	assert.Empty(t, tmpl.Tags)

	_, err = DecodeTemplate(object(t, `{"id": "tmpl-1", "subject": "x", "isDefault": true}`))
	assert.ErrorIs(t, err, doorayerr.ErrMalformedResponse)
}

func TestDecodeWorkflow_OptionalOrderAndNames(t *testing.T) {
	w, err := DecodeWorkflow(object(t, `{"id": "wf-1", "name": "Registered", "class": "registered"}`))
	require.NoError(t, err)
	assert.Nil(t, w.Order)
	assert.Empty(t, w.Names)

	w, err = DecodeWorkflow(object(t, `{
		"id": "wf-2", "name": "Working", "class": "working", "order": 2,
		"names": [{"locale": "ko_KR", "name": "진행 중"}]
	}`))
	require.NoError(t, err)
	assert.Equal(t, 2, *w.Order)
	require.Len(t, w.Names, 1)
	assert.Equal(t, "ko_KR", w.Names[0].Locale)
}

func TestDecodeMilestone(t *testing.T) {
	m, err := DecodeMilestone(object(t, `{
		"id": "ms-1",
		"name": "v1.0",
		"status": "open",
		"startedAt": "2026-01-01T00:00:00Z",
		"endedAt": "2026-06-30T00:00:00Z"
	}`))
	require.NoError(t, err)
	assert.Equal(t, "open", *m.Status)
	assert.Equal(t, 2026, m.StartedAt.Year())
	assert.Equal(t, time.June, m.EndedAt.Month())
	assert.Nil(t, m.ClosedAt)
}

func TestDecodeMemberGroup(t *testing.T) {
	g, err := DecodeMemberGroup(object(t, `{
		"id": "g1",
		"code": "backend",
		"createdAt": "2026-01-01T00:00:00Z",
		"updatedAt": "2026-01-02T00:00:00Z",
		"project": {"id": "p1", "code": "ABC"},
		"members": [
			{"organizationMember": {"id": "m1", "name": "Kim"}},
			{"organizationMemberId": "m2"}
		]
	}`))
	require.NoError(t, err)

	assert.Equal(t, "backend", *g.Code)
	assert.Equal(t, "p1", g.Project.ID)
	require.Len(t, g.Members, 2)
	assert.Equal(t, "m1", g.Members[0].OrganizationMemberID)
	assert.Equal(t, "Kim", *g.Members[0].Name)
	assert.Equal(t, "m2", g.Members[1].OrganizationMemberID)
}

func TestDecodeIncomingHook(t *testing.T) {
	h, err := DecodeIncomingHook(object(t, `{
		"id": "hook-1",
		"name": "Test Hook",
		"serviceType": "messenger",
		"url": "https://hook.dooray.com/test",
		"projects": [{"id": "9999999999"}]
	}`))
	require.NoError(t, err)
	assert.Equal(t, "messenger", h.ServiceType)
	require.Len(t, h.Projects, 1)
	assert.Equal(t, "9999999999", h.Projects[0].ID)
}

func TestDecodePostLog(t *testing.T) {
	l, err := DecodePostLog(object(t, `{
		"id": "log-1",
		"post": {"id": "post-1"},
		"type": "comment",
		"subtype": "general",
		"createdAt": "2026-01-01T00:00:00Z",
		"creator": {"type": "member", "member": {"organizationMemberId": "1234567890"}},
		"body": {"mimeType": "text/x-markdown", "content": "comment"}
	}`))
	require.NoError(t, err)
	assert.Equal(t, "comment", l.Type)
	assert.Equal(t, "post-1", l.Post.ID)
	assert.Equal(t, "1234567890", l.Creator.Member.OrganizationMemberID)
	assert.Equal(t, "comment", l.Body.Content)
}

func TestDecodeSimpleEntities(t *testing.T) {
	tag, err := DecodeTag(object(t, `{"id": "tag-1", "name": "bug", "color": "ff0000"}`))
	require.NoError(t, err)
	assert.Equal(t, "ff0000", *tag.Color)

	addr, err := DecodeEmailAddress(object(t, `{"id": "e1", "name": "Support", "emailAddress": "support@example.com"}`))
	require.NoError(t, err)
	assert.Equal(t, "e1", *addr.ID)
	assert.Equal(t, "support@example.com", addr.EmailAddress)

	pm, err := DecodeProjectMember(object(t, `{"organizationMemberId": "m1", "role": "admin"}`))
	require.NoError(t, err)
	assert.Equal(t, "admin", *pm.Role)

	_, err = DecodeRelation(object(t, `{}`))
	assert.ErrorIs(t, err, doorayerr.ErrMalformedResponse)
}
