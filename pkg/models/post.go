package models

import (
	"encoding/json"
	"time"

	"github.com/iizs/godooray/internal/decode"
)

// MaxParentDepth caps how many Post.Parent levels are decoded. The post at
// the cap is returned without its own parent.
const MaxParentDepth = 8

// Post user types.
const (
	PostUserMember    = "member"
	PostUserEmailUser = "emailUser"
)

// Body mime types.
const (
	MimeTypeMarkdown = "text/x-markdown"
	MimeTypeHTML     = "text/html"
)

// PostBody is the content of a post, template or comment.
type PostBody struct {
	MimeType string `json:"mimeType"`
	Content  string `json:"content"`
}

// DecodePostBody decodes a PostBody.
func DecodePostBody(obj map[string]any) (*PostBody, error) {
	r := decode.NewReader("PostBody", obj)
	b := &PostBody{
		MimeType: r.String("mimeType"),
		Content:  r.String("content"),
	}
	return b, r.Err()
}

// PostUser is a sender or recipient of a post. Exactly one of Member and
// EmailUser is set, selected by Type.
type PostUser struct {
	Type      string
	Member    *ProjectMember
	EmailUser *EmailAddress
}

// MarshalJSON writes only the branch selected by Type.
func (u PostUser) MarshalJSON() ([]byte, error) {
	out := map[string]any{"type": u.Type}
	switch u.Type {
	case PostUserMember:
		out["member"] = u.Member
	case PostUserEmailUser:
		out["emailUser"] = u.EmailUser
	}
	return json.Marshal(out)
}

// DecodePostUser decodes a PostUser. An unknown type, or a type whose branch
// object is missing, is malformed.
func DecodePostUser(obj map[string]any) (*PostUser, error) {
	r := decode.NewReader("PostUser", obj)
	u := &PostUser{Type: r.String("type")}

	switch u.Type {
	case PostUserMember:
		u.Member = decode.Nested(r, "member", DecodeProjectMember)
	case PostUserEmailUser:
		u.EmailUser = decode.Nested(r, "emailUser", DecodeEmailAddress)
	default:
		if r.Has("type") {
			r.Failf("type", "unknown post user type %q", u.Type)
		}
	}
	return u, r.Err()
}

func decodePostUserValue(obj map[string]any) (PostUser, error) {
	u, err := DecodePostUser(obj)
	if err != nil {
		return PostUser{}, err
	}
	return *u, nil
}

// PostUsers holds the sender and recipients of a post.
type PostUsers struct {
	From *PostUser  `json:"from,omitempty"`
	To   []PostUser `json:"to"`
	Cc   []PostUser `json:"cc"`
}

// DecodePostUsers decodes a PostUsers.
func DecodePostUsers(obj map[string]any) (*PostUsers, error) {
	r := decode.NewReader("PostUsers", obj)
	u := &PostUsers{
		To: decode.OptList(r, "to", decodePostUserValue),
		Cc: decode.OptList(r, "cc", decodePostUserValue),
	}
	u.From, _ = decode.OptNested(r, "from", DecodePostUser)
	return u, r.Err()
}

// PostCommon holds the fields shared by posts and templates.
type PostCommon struct {
	Subject     string     `json:"subject"`
	Users       *PostUsers `json:"users,omitempty"`
	Body        *PostBody  `json:"body,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	DueDateFlag *bool      `json:"dueDateFlag,omitempty"`
	Priority    *string    `json:"priority,omitempty"`
}

func readPostCommon(r *decode.Reader) PostCommon {
	c := PostCommon{
		Subject:     r.String("subject"),
		DueDate:     r.OptTime("dueDate"),
		DueDateFlag: r.OptBool("dueDateFlag"),
		Priority:    r.OptString("priority"),
	}
	c.Users, _ = decode.OptNested(r, "users", DecodePostUsers)
	c.Body, _ = decode.OptNested(r, "body", DecodePostBody)
	return c
}

// NamedRef references a workflow or milestone by id, with its name when the
// server includes it.
type NamedRef struct {
	ID   string  `json:"id"`
	Name *string `json:"name,omitempty"`
}

// DecodeNamedRef decodes a NamedRef.
func DecodeNamedRef(obj map[string]any) (*NamedRef, error) {
	r := decode.NewReader("NamedRef", obj)
	n := &NamedRef{
		ID:   r.String("id"),
		Name: r.OptString("name"),
	}
	return n, r.Err()
}

// Post is a task in a project.
type Post struct {
	PostCommon

	ID            string      `json:"id"`
	Number        int         `json:"number"`
	Project       *ProjectRef `json:"project,omitempty"`
	TaskNumber    *string     `json:"taskNumber,omitempty"`
	Closed        *bool       `json:"closed,omitempty"`
	ClosedAt      *time.Time  `json:"closedAt,omitempty"`
	CreatedAt     *time.Time  `json:"createdAt,omitempty"`
	UpdatedAt     *time.Time  `json:"updatedAt,omitempty"`
	Parent        *Post       `json:"parent,omitempty"`
	WorkflowClass *string     `json:"workflowClass,omitempty"`
	Workflow      *NamedRef   `json:"workflow,omitempty"`
	Milestone     *NamedRef   `json:"milestone,omitempty"`
	Tags          []Tag       `json:"tags"`
}

// DecodePost decodes a Post, following parent links up to MaxParentDepth.
// A null milestone is treated as absent and missing tags decode to an empty
// list.
func DecodePost(obj map[string]any) (*Post, error) {
	return decodePost(obj, 0)
}

func decodePost(obj map[string]any, depth int) (*Post, error) {
	r := decode.NewReader("Post", obj)
	p := &Post{
		PostCommon:    readPostCommon(r),
		ID:            r.String("id"),
		Number:        r.Int("number"),
		TaskNumber:    r.OptString("taskNumber"),
		Closed:        r.OptBool("closed"),
		ClosedAt:      r.OptTime("closedAt"),
		CreatedAt:     r.OptTime("createdAt"),
		UpdatedAt:     r.OptTime("updatedAt"),
		WorkflowClass: r.OptString("workflowClass"),
		Tags:          decode.OptList(r, "tags", decodeTagValue),
	}
	p.Project, _ = decode.OptNested(r, "project", DecodeProjectRef)
	p.Workflow, _ = decode.OptNested(r, "workflow", DecodeNamedRef)
	p.Milestone, _ = decode.OptNested(r, "milestone", DecodeNamedRef)

	if depth < MaxParentDepth {
		p.Parent, _ = decode.OptNested(r, "parent", func(o map[string]any) (*Post, error) {
			return decodePost(o, depth+1)
		})
	}
	return p, r.Err()
}

// Template is a reusable post skeleton.
type Template struct {
	PostCommon

	ID           string      `json:"id"`
	TemplateName string      `json:"templateName"`
	IsDefault    bool        `json:"isDefault"`
	Project      *ProjectRef `json:"project,omitempty"`
	Guide        *PostBody   `json:"guide,omitempty"`
	Milestone    *NamedRef   `json:"milestone,omitempty"`
	Tags         []Tag       `json:"tags"`
}

// DecodeTemplate decodes a Template.
func DecodeTemplate(obj map[string]any) (*Template, error) {
	r := decode.NewReader("Template", obj)
	t := &Template{
		PostCommon:   readPostCommon(r),
		ID:           r.String("id"),
		TemplateName: r.String("templateName"),
		IsDefault:    r.Bool("isDefault"),
		Tags:         decode.OptList(r, "tags", decodeTagValue),
	}
	t.Project, _ = decode.OptNested(r, "project", DecodeProjectRef)
	t.Guide, _ = decode.OptNested(r, "guide", DecodePostBody)
	t.Milestone, _ = decode.OptNested(r, "milestone", DecodeNamedRef)
	return t, r.Err()
}

// PostLog is a comment or event on a post.
type PostLog struct {
	ID         string     `json:"id"`
	Type       string     `json:"type"`
	Subtype    *string    `json:"subtype,omitempty"`
	Post       *Relation  `json:"post,omitempty"`
	CreatedAt  *time.Time `json:"createdAt,omitempty"`
	ModifiedAt *time.Time `json:"modifiedAt,omitempty"`
	Creator    *PostUser  `json:"creator,omitempty"`
	Body       *PostBody  `json:"body,omitempty"`
}

// DecodePostLog decodes a PostLog.
func DecodePostLog(obj map[string]any) (*PostLog, error) {
	r := decode.NewReader("PostLog", obj)
	l := &PostLog{
		ID:         r.String("id"),
		Type:       r.String("type"),
		Subtype:    r.OptString("subtype"),
		CreatedAt:  r.OptTime("createdAt"),
		ModifiedAt: r.OptTime("modifiedAt"),
	}
	l.Post, _ = decode.OptNested(r, "post", DecodeRelation)
	l.Creator, _ = decode.OptNested(r, "creator", DecodePostUser)
	l.Body, _ = decode.OptNested(r, "body", DecodePostBody)
	return l, r.Err()
}
