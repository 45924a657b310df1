package builder

import (
	"time"

	"github.com/iizs/godooray/pkg/models"
)

// fields holds the state shared by PostBuilder and TemplateBuilder.
type fields struct {
	subject     *string
	body        *models.PostBody
	to          []WritePostUser
	cc          []WritePostUser
	dueDate     *time.Time
	dueDateFlag *bool
	milestoneID *string
	tagIDs      []string
	priority    *string
}

func (f *fields) users() *WritePostUsers {
	if len(f.to) == 0 && len(f.cc) == 0 {
		return nil
	}
	return &WritePostUsers{To: cloneUsers(f.to), Cc: cloneUsers(f.cc)}
}

func memberUser(memberID string) WritePostUser {
	return WritePostUser{
		Type:   models.PostUserMember,
		Member: &WriteMember{OrganizationMemberID: memberID},
	}
}

func emailUser(emailAddress, name string) WritePostUser {
	return WritePostUser{
		Type:      models.PostUserEmailUser,
		EmailUser: &WriteEmailUser{EmailAddress: emailAddress, Name: name},
	}
}

func markdown(content string) *models.PostBody {
	return &models.PostBody{MimeType: models.MimeTypeMarkdown, Content: content}
}

// PostBuilder accumulates the fields of a post.
type PostBuilder struct {
	fields

	version      *string
	parentPostID *string
}

// NewPostBuilder returns an empty PostBuilder.
func NewPostBuilder() *PostBuilder {
	return &PostBuilder{}
}

// SetSubject sets the subject.
func (b *PostBuilder) SetSubject(subject string) *PostBuilder {
	b.subject = &subject
	return b
}

// SetBody sets a markdown body.
func (b *PostBuilder) SetBody(content string) *PostBuilder {
	b.body = markdown(content)
	return b
}

// SetHTMLBody sets an HTML body.
func (b *PostBuilder) SetHTMLBody(content string) *PostBuilder {
	b.body = &models.PostBody{MimeType: models.MimeTypeHTML, Content: content}
	return b
}

// SetDueDate sets the due date.
func (b *PostBuilder) SetDueDate(dueDate time.Time) *PostBuilder {
	b.dueDate = &dueDate
	return b
}

// SetDueDateFlag sets whether the due date is enforced.
func (b *PostBuilder) SetDueDateFlag(flag bool) *PostBuilder {
	b.dueDateFlag = &flag
	return b
}

// SetMilestoneID attaches the post to a milestone.
func (b *PostBuilder) SetMilestoneID(milestoneID string) *PostBuilder {
	b.milestoneID = &milestoneID
	return b
}

// SetPriority sets the priority, one of the Priority* constants.
func (b *PostBuilder) SetPriority(priority string) *PostBuilder {
	b.priority = &priority
	return b
}

// SetVersion sets the version field.
func (b *PostBuilder) SetVersion(version string) *PostBuilder {
	b.version = &version
	return b
}

// SetParentPostID makes the post a subtask of postID.
func (b *PostBuilder) SetParentPostID(postID string) *PostBuilder {
	b.parentPostID = &postID
	return b
}

// AddTagID appends a tag.
func (b *PostBuilder) AddTagID(tagID string) *PostBuilder {
	b.tagIDs = append(b.tagIDs, tagID)
	return b
}

// AddToMember adds an organization member recipient.
func (b *PostBuilder) AddToMember(memberID string) *PostBuilder {
	b.to = append(b.to, memberUser(memberID))
	return b
}

// AddToEmailUser adds an external email recipient.
func (b *PostBuilder) AddToEmailUser(emailAddress, name string) *PostBuilder {
	b.to = append(b.to, emailUser(emailAddress, name))
	return b
}

// AddCcMember adds an organization member to cc.
func (b *PostBuilder) AddCcMember(memberID string) *PostBuilder {
	b.cc = append(b.cc, memberUser(memberID))
	return b
}

// AddCcEmailUser adds an external email address to cc.
func (b *PostBuilder) AddCcEmailUser(emailAddress, name string) *PostBuilder {
	b.cc = append(b.cc, emailUser(emailAddress, name))
	return b
}

// Create returns a snapshot of the builder. The snapshot shares no memory
// with the builder or with earlier snapshots.
func (b *PostBuilder) Create() *WritePost {
	p := &WritePost{
		Subject:      b.subject,
		Body:         b.body,
		Users:        b.users(),
		DueDate:      b.dueDate,
		DueDateFlag:  b.dueDateFlag,
		MilestoneID:  b.milestoneID,
		TagIDs:       b.tagIDs,
		Priority:     b.priority,
		Version:      b.version,
		ParentPostID: b.parentPostID,
	}
	return p.Clone()
}

// TemplateBuilder accumulates the fields of a template.
type TemplateBuilder struct {
	fields

	templateName string
	guide        *models.PostBody
	isDefault    *bool
}

// NewTemplateBuilder returns an empty TemplateBuilder.
func NewTemplateBuilder() *TemplateBuilder {
	return &TemplateBuilder{}
}

// SetTemplateName sets the name shown in the template picker.
func (b *TemplateBuilder) SetTemplateName(name string) *TemplateBuilder {
	b.templateName = name
	return b
}

// SetSubject sets the subject.
func (b *TemplateBuilder) SetSubject(subject string) *TemplateBuilder {
	b.subject = &subject
	return b
}

// SetBody sets a markdown body.
func (b *TemplateBuilder) SetBody(content string) *TemplateBuilder {
	b.body = markdown(content)
	return b
}

// SetGuide sets the markdown guide shown to authors using the template.
func (b *TemplateBuilder) SetGuide(content string) *TemplateBuilder {
	b.guide = markdown(content)
	return b
}

// SetIsDefault marks the template as the project default.
func (b *TemplateBuilder) SetIsDefault(isDefault bool) *TemplateBuilder {
	b.isDefault = &isDefault
	return b
}

// SetDueDate sets the due date.
func (b *TemplateBuilder) SetDueDate(dueDate time.Time) *TemplateBuilder {
	b.dueDate = &dueDate
	return b
}

// SetDueDateFlag sets whether the due date is enforced.
func (b *TemplateBuilder) SetDueDateFlag(flag bool) *TemplateBuilder {
	b.dueDateFlag = &flag
	return b
}

// SetMilestoneID attaches the post to a milestone.
func (b *TemplateBuilder) SetMilestoneID(milestoneID string) *TemplateBuilder {
	b.milestoneID = &milestoneID
	return b
}

// SetPriority sets the priority, one of the Priority* constants.
func (b *TemplateBuilder) SetPriority(priority string) *TemplateBuilder {
	b.priority = &priority
	return b
}

// AddTagID appends a tag.
func (b *TemplateBuilder) AddTagID(tagID string) *TemplateBuilder {
	b.tagIDs = append(b.tagIDs, tagID)
	return b
}

// AddToMember adds an organization member recipient.
func (b *TemplateBuilder) AddToMember(memberID string) *TemplateBuilder {
	b.to = append(b.to, memberUser(memberID))
	return b
}

// AddToEmailUser adds an external email recipient.
func (b *TemplateBuilder) AddToEmailUser(emailAddress, name string) *TemplateBuilder {
	b.to = append(b.to, emailUser(emailAddress, name))
	return b
}

// AddCcMember adds an organization member to cc.
func (b *TemplateBuilder) AddCcMember(memberID string) *TemplateBuilder {
	b.cc = append(b.cc, memberUser(memberID))
	return b
}

// AddCcEmailUser adds an external email address to cc.
func (b *TemplateBuilder) AddCcEmailUser(emailAddress, name string) *TemplateBuilder {
	b.cc = append(b.cc, emailUser(emailAddress, name))
	return b
}

// Create returns an independent snapshot of the builder.
func (b *TemplateBuilder) Create() *WriteTemplate {
	t := &WriteTemplate{
		TemplateName: b.templateName,
		Subject:      b.subject,
		Body:         b.body,
		Guide:        b.guide,
		Users:        b.users(),
		DueDate:      b.dueDate,
		DueDateFlag:  b.dueDateFlag,
		MilestoneID:  b.milestoneID,
		TagIDs:       b.tagIDs,
		Priority:     b.priority,
		IsDefault:    b.isDefault,
	}
	return t.Clone()
}
