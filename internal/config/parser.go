package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	tferrors "github.com/retrowire/termframe/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseScreens loads a screens document from disk, validates it, and returns
// the resulting model.
func ParseScreens(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, tferrors.NewParseError(path, 0, err)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, tferrors.NewParseError(path, extractLine(err), err)
	}

	if err := ValidateDocument(&doc); err != nil {
		return nil, err
	}

	return &doc, nil
}

// ValidateDocument runs struct-level validation plus the cross-field rules
// the tag syntax cannot express: unique screen ids and frame geometry that
// leaves room for content.
func ValidateDocument(doc *Document) error {
	if err := validatorInstance().Struct(doc); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			first := fieldErrs[0]
			return tferrors.NewValidationError(
				first.Namespace(),
				fmt.Sprintf("failed %q constraint", first.Tag()),
				err,
			)
		}
		return err
	}

	seen := make(map[string]struct{}, len(doc.Screens))
	for i, screen := range doc.Screens {
		if _, dup := seen[screen.ID]; dup {
			return tferrors.NewValidationError(
				fmt.Sprintf("screens[%d].id", i),
				fmt.Sprintf("duplicate screen id %q", screen.ID),
				nil,
			)
		}
		seen[screen.ID] = struct{}{}

		if min := 2 + 2*screen.Padding + 1; screen.Width < min {
			return tferrors.NewValidationError(
				fmt.Sprintf("screens[%d].width", i),
				fmt.Sprintf("width %d leaves no room for content (minimum %d with padding %d)",
					screen.Width, min, screen.Padding),
				nil,
			)
		}
		if screen.Padding < 0 {
			return tferrors.NewValidationError(
				fmt.Sprintf("screens[%d].padding", i),
				"padding must not be negative",
				nil,
			)
		}
	}

	return nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
