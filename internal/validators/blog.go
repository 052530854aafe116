package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/asta/blog-keeper/internal/logger"
	"github.com/asta/blog-keeper/models"
	"github.com/go-playground/validator/v10"
)

// BlogValidator checks blog, query and login payloads against their
// `validate` struct tags. Field names in errors follow the JSON names.
type BlogValidator struct {
	validate *validator.Validate
}

// NewBlogValidator builds a [Validator] for the request payloads of the API.
func NewBlogValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)

	return &BlogValidator{validate: v}
}

func (v *BlogValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.PostBlogDTO, *models.PostBlogDTO,
		models.PutBlogDTO, *models.PutBlogDTO,
		models.BlogListQuery, *models.BlogListQuery,
		models.LoginDTO, *models.LoginDTO:
		return v.validateStruct(ctx, value, fields...)
	default:
		return ErrUnsupportedType
	}
}

// ValidateID rejects non-positive blog IDs.
func ValidateID(id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidBlogID, id)
	}
	return nil
}

func (v *BlogValidator) validateStruct(ctx context.Context, obj any, fields ...string) error {
	var err error
	if len(fields) == 0 {
		err = v.validate.StructCtx(ctx, obj)
	} else {
		if err = checkFields(obj, fields); err != nil {
			return err
		}
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	}

	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		logger.FromContext(ctx).Err(err).Str("func", "*BlogValidator.validateStruct").Msg("validator failed")
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return fmt.Errorf("%w: %s", ErrValidation, describe(validationErrors))
}

// checkFields reports fields that obj does not declare. Partial validation
// silently ignores unknown names, which would hide typos.
func checkFields(obj any, fields []string) error {
	t := reflect.TypeOf(obj)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	for _, f := range fields {
		if _, ok := t.FieldByName(f); !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}
	return nil
}

// describe renders violations as "field: tag" pairs, e.g.
// "title: required; tags[0]: max".
func describe(errs validator.ValidationErrors) string {
	parts := make([]string, 0, len(errs))
	for _, fe := range errs {
		part := fe.Field() + ": " + fe.Tag()
		if fe.Param() != "" {
			part += "=" + fe.Param()
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, "; ")
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" || name == "" {
		return field.Name
	}
	return name
}
