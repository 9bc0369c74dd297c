// Package validation checks prototype tables before they are loaded into a registry.
package validation

import (
	"bytes"
	stdErrors "errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/phpshell/protoreg/application/schema"
	"github.com/phpshell/protoreg/domain/entities"
	"github.com/phpshell/protoreg/domain/errors"
	"github.com/phpshell/protoreg/domain/ports"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// validate is a package-level singleton; building a validator is expensive.
var validate = newStructValidator()

func newStructValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation("symbolkey", func(fl validator.FieldLevel) bool {
		return strings.IndexFunc(fl.Field().String(), unicode.IsSpace) < 0
	})
	return v
}

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
)

// tableSchema compiles the table schema once and returns it.
func tableSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		raw, err := schema.TableSchema()
		if err != nil {
			compileErr = err
			return
		}

		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
		if err != nil {
			compileErr = &errors.SchemaError{Type: "Table", Err: fmt.Errorf("unmarshaling schema JSON: %w", err)}
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(schema.TableSchemaID, doc); err != nil {
			compileErr = &errors.SchemaError{Type: "Table", Err: fmt.Errorf("adding schema resource: %w", err)}
			return
		}
		compiledSchema, err = c.Compile(schema.TableSchemaID)
		if err != nil {
			compileErr = &errors.SchemaError{Type: "Table", Err: fmt.Errorf("compiling schema: %w", err)}
		}
	})
	return compiledSchema, compileErr
}

// validatorConfig holds configuration for the TableValidator.
type validatorConfig struct {
	lang language.Tag
}

func defaultValidatorConfig() validatorConfig {
	return validatorConfig{
		lang: language.English,
	}
}

// ValidatorOption configures a TableValidator.
type ValidatorOption func(*validatorConfig)

// WithLanguage sets the language used for schema violation messages.
func WithLanguage(tag language.Tag) ValidatorOption {
	return func(c *validatorConfig) {
		c.lang = tag
	}
}

// TableValidator validates tables against the generated table schema and
// the struct validation rules declared on the entities.
type TableValidator struct {
	schema  *jsonschema.Schema
	printer *message.Printer
}

// NewTableValidator creates a TableValidator. It fails only if the table
// schema itself cannot be compiled.
func NewTableValidator(opts ...ValidatorOption) (ports.TableValidator, error) {
	cfg := defaultValidatorConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	sch, err := tableSchema()
	if err != nil {
		return nil, err
	}
	return &TableValidator{
		schema:  sch,
		printer: message.NewPrinter(cfg.lang),
	}, nil
}

// ValidateJSON validates a raw JSON table document against the table schema.
// The error return is for malformed JSON; schema violations are reported in
// the ValidationResult.
func (v *TableValidator) ValidateJSON(raw []byte) (*entities.ValidationResult, error) {
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}

	err = v.schema.Validate(inst)
	if err == nil {
		return &entities.ValidationResult{Valid: true}, nil
	}

	var ve *jsonschema.ValidationError
	if !stdErrors.As(err, &ve) {
		return nil, fmt.Errorf("unexpected validation error type: %w", err)
	}

	return &entities.ValidationResult{
		Valid:  false,
		Errors: v.extractIssues(ve),
	}, nil
}

// ValidateTable runs the struct validation rules over a decoded table.
func (v *TableValidator) ValidateTable(table *entities.Table) *entities.ValidationResult {
	return ValidateRecords(table)
}

// ValidateRecords runs the struct validation rules over a decoded table.
// It needs no compiled schema and is used by every table parser.
func ValidateRecords(table *entities.Table) *entities.ValidationResult {
	result := &entities.ValidationResult{Valid: true}
	if table == nil {
		result.Valid = false
		result.Errors = append(result.Errors, entities.ValidationError{Message: "table is empty"})
		return result
	}

	err := validate.Struct(table)
	if err == nil {
		return result
	}

	result.Valid = false
	var fieldErrs validator.ValidationErrors
	if !stdErrors.As(err, &fieldErrs) {
		result.Errors = append(result.Errors, entities.ValidationError{Message: err.Error()})
		return result
	}

	for _, fe := range fieldErrs {
		result.Errors = append(result.Errors, entities.ValidationError{
			Field:   namespaceToPointer(fe.Namespace()),
			Message: fmt.Sprintf("failed on the '%s' rule", fe.Tag()),
			Keyword: fe.Tag(),
		})
	}
	return result
}

// namespaceToPointer turns a validator namespace such as
// "Table.prototypes[3].key" into a JSON pointer ("/prototypes/3/key").
func namespaceToPointer(ns string) string {
	_, rest, ok := strings.Cut(ns, ".")
	if !ok {
		return ""
	}
	rest = strings.NewReplacer("[", ".", "]", "").Replace(rest)
	return "/" + strings.ReplaceAll(rest, ".", "/")
}

// extractIssues walks the ValidationError tree and returns leaf-level issues.
func (v *TableValidator) extractIssues(ve *jsonschema.ValidationError) []entities.ValidationError {
	var issues []entities.ValidationError
	v.collectIssues(ve, &issues)

	if len(issues) == 0 {
		return []entities.ValidationError{{Message: ve.Error()}}
	}
	return deduplicateIssues(issues)
}

// collectIssues recursively walks the error tree to find leaf errors.
func (v *TableValidator) collectIssues(ve *jsonschema.ValidationError, issues *[]entities.ValidationError) {
	if len(ve.Causes) > 0 {
		for _, cause := range ve.Causes {
			v.collectIssues(cause, issues)
		}
		return
	}

	path := ""
	if len(ve.InstanceLocation) > 0 {
		path = "/" + strings.Join(ve.InstanceLocation, "/")
	}

	keyword := ""
	msg := ve.Error()
	if ve.ErrorKind != nil {
		if kwPath := ve.ErrorKind.KeywordPath(); len(kwPath) > 0 {
			keyword = kwPath[len(kwPath)-1]
		}
		msg = ve.ErrorKind.LocalizedString(v.printer)
	}

	// Container keywords only repeat what their causes say.
	if keyword == "allOf" || keyword == "$ref" {
		return
	}

	*issues = append(*issues, entities.ValidationError{
		Field:   path,
		Message: msg,
		Keyword: keyword,
	})
}

// deduplicateIssues removes duplicate issues (same path + keyword + message).
func deduplicateIssues(issues []entities.ValidationError) []entities.ValidationError {
	seen := make(map[string]bool)
	var result []entities.ValidationError
	for _, issue := range issues {
		key := issue.Field + "|" + issue.Keyword + "|" + issue.Message
		if !seen[key] {
			seen[key] = true
			result = append(result, issue)
		}
	}
	return result
}

// AsError converts a failed ValidationResult into a domain ValidationError.
// It returns nil for a valid result.
func AsError(source string, result *entities.ValidationResult) error {
	if result == nil || result.Valid {
		return nil
	}
	return &errors.ValidationError{Source: source, Issues: result.Errors}
}
