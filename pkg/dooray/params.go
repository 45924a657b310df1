package dooray

import (
	"fmt"
	"net/url"
	"strings"
	"unicode"

	"github.com/iancoleman/strcase"
	"github.com/mitchellh/mapstructure"
)

// MemberFilter narrows a directory lookup. Empty fields are not sent.
type MemberFilter struct {
	Name          string
	UserCode      string
	UserCodeExact string

	IDProviderUserID string `mapstructure:"idProviderUserId"`

	// ExternalEmailAddresses are sent comma-joined.
	ExternalEmailAddresses []string
}

// IsZero reports whether no filter is set.
func (f MemberFilter) IsZero() bool {
	return f.Name == "" && f.UserCode == "" && f.UserCodeExact == "" &&
		f.IDProviderUserID == "" && len(f.ExternalEmailAddresses) == 0
}

// PostFilter narrows a post listing. Multi-valued filters are sent
// comma-joined; empty fields are not sent.
//
// CreatedAt, UpdatedAt and DueAt accept the API's range syntax, for example
// "today", "thisweek", "prev-7d", "next-3d" or
// "2021-01-01T00:00:00+09:00~2021-01-31T00:00:00+09:00".
type PostFilter struct {
	FromEmailAddress    string
	FromMemberIDs       []string `mapstructure:"fromMemberIds"`
	ToMemberIDs         []string `mapstructure:"toMemberIds"`
	CcMemberIDs         []string `mapstructure:"ccMemberIds"`
	TagIDs              []string `mapstructure:"tagIds"`
	ParentPostID        string   `mapstructure:"parentPostId"`
	PostWorkflowClasses []string
	PostWorkflowIDs     []string `mapstructure:"postWorkflowIds"`
	MilestoneIDs        []string `mapstructure:"milestoneIds"`
	CreatedAt           string
	UpdatedAt           string
	DueAt               string

	// Order is a field name, optionally prefixed with "-" for descending:
	// postDueAt, postUpdatedAt, createdAt.
	Order string
}

// queryFromFilter flattens a filter struct into query parameters. Keys come
// from mapstructure tags, or the lower camel case field name.
func queryFromFilter(filter any) (url.Values, error) {
	var fields map[string]any
	if err := mapstructure.Decode(filter, &fields); err != nil {
		return nil, fmt.Errorf("failed to read filter: %w", err)
	}

	q := url.Values{}
	for name, v := range fields {
		key := name
		if r := []rune(name); len(r) > 0 && unicode.IsUpper(r[0]) {
			key = strcase.ToLowerCamel(name)
		}

		switch vv := v.(type) {
		case string:
			if vv != "" {
				q.Set(key, vv)
			}
		case []string:
			if len(vv) > 0 {
				q.Set(key, strings.Join(vv, ","))
			}
		default:
			return nil, fmt.Errorf("unsupported filter field %q of type %T", name, v)
		}
	}
	return q, nil
}
