package dooray

import (
	"errors"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/iizs/godooray/pkg/doorayerr"
)

var (
	tagColor = regexp.MustCompile(`^[0-9a-fA-F]{6}$`)

	errNoMemberIDs = errors.New("at least one member id is required")
)

// checkArgs returns an InvalidArgumentError for operation when any entry of
// errs is non-nil.
func checkArgs(operation string, errs validation.Errors) error {
	if err := errs.Filter(); err != nil {
		return doorayerr.NewInvalidArgument(operation, err)
	}
	return nil
}

func required(v any) error {
	return validation.Validate(v, validation.Required)
}
