package validation

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log/slog"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "roomroster/internal/errors"
	"roomroster/pkg/contracts/domain"
)

const (
	msgNonNegative = "ID and room must be non-negative"
	msgNotBlank    = "Name cannot be empty"
)

// RecordValidator turns raw decoded JSON objects into typed records.
// Nothing downstream of it sees a raw map.
type RecordValidator struct {
	validate *validator.Validate
	logger   *slog.Logger
}

// NewRecordValidator creates a record validator with the custom rules used
// by the domain struct tags registered.
func NewRecordValidator(logger *slog.Logger) *RecordValidator {
	if logger == nil {
		logger = slog.Default()
	}

	v := validator.New()
	mustRegisterValidation(v, "nonnegative", isNonNegative)
	mustRegisterValidation(v, "notblank", isNotBlank)

	// Use JSON tag names in error messages
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &RecordValidator{
		validate: v,
		logger:   logger.With(slog.String("component", "record_validator")),
	}
}

// mustRegisterValidation panics if tag cannot be registered.
func mustRegisterValidation(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register validation %q: %v", tag, err))
	}
}

// ValidateStudent checks a raw student object and builds the record.
func (v *RecordValidator) ValidateStudent(raw map[string]any) (domain.Student, error) {
	if err := requireFields(raw, domain.StudentFields); err != nil {
		return domain.Student{}, err
	}
	id, err := intField(raw, "id")
	if err != nil {
		return domain.Student{}, err
	}
	name, err := stringField(raw, "name")
	if err != nil {
		return domain.Student{}, err
	}
	room, err := intField(raw, "room")
	if err != nil {
		return domain.Student{}, err
	}

	s := domain.Student{ID: id, Name: name, Room: room}
	if err := v.validateStruct(s); err != nil {
		return domain.Student{}, err
	}
	return s, nil
}

// ValidateRoom checks a raw room object and builds the record.
func (v *RecordValidator) ValidateRoom(raw map[string]any) (domain.Room, error) {
	if err := requireFields(raw, domain.RoomFields); err != nil {
		return domain.Room{}, err
	}
	id, err := intField(raw, "id")
	if err != nil {
		return domain.Room{}, err
	}
	name, err := stringField(raw, "name")
	if err != nil {
		return domain.Room{}, err
	}

	r := domain.Room{ID: id, Name: name}
	if err := v.validateStruct(r); err != nil {
		return domain.Room{}, err
	}
	return r, nil
}

// ValidateStudents validates a whole batch. The first invalid element fails
// the batch and no records are returned.
func (v *RecordValidator) ValidateStudents(raw []map[string]any) ([]domain.Student, error) {
	students := make([]domain.Student, 0, len(raw))
	for i, item := range raw {
		s, err := v.ValidateStudent(item)
		if err != nil {
			v.logger.Debug("Student record rejected",
				slog.Int("index", i),
				slog.String("error", err.Error()))
			return nil, batchError("student", i, err)
		}
		students = append(students, s)
	}
	return students, nil
}

// ValidateRooms validates a whole batch of rooms, all or nothing.
func (v *RecordValidator) ValidateRooms(raw []map[string]any) ([]domain.Room, error) {
	rooms := make([]domain.Room, 0, len(raw))
	for i, item := range raw {
		r, err := v.ValidateRoom(item)
		if err != nil {
			v.logger.Debug("Room record rejected",
				slog.Int("index", i),
				slog.String("error", err.Error()))
			return nil, batchError("room", i, err)
		}
		rooms = append(rooms, r)
	}
	return rooms, nil
}

func batchError(kind string, index int, cause error) error {
	appErr := apperrors.NewAppError(apperrors.ErrTypeValidation,
		fmt.Sprintf("data validation failed: %s record %d", kind, index), cause).
		WithContext(apperrors.ContextIndex, index)
	if field, ok := apperrors.ContextValue(cause, apperrors.ContextField); ok {
		appErr.WithContext(apperrors.ContextField, field)
	}
	return appErr
}

// validateStruct runs the tag rules and reports the first violation.
func (v *RecordValidator) validateStruct(record any) error {
	err := v.validate.Struct(record)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("validate %T: %w", record, err)
	}
	fe := fieldErrs[0]
	return apperrors.NewValidationError(fe.Field(), formatValidationError(fe))
}

// formatValidationError formats validation error messages
func formatValidationError(err validator.FieldError) string {
	switch err.Tag() {
	case "nonnegative":
		return msgNonNegative
	case "notblank":
		return msgNotBlank
	default:
		return fmt.Sprintf("%s failed %s validation", err.Field(), err.Tag())
	}
}

// Custom validators

func isNonNegative(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fl.Field().Int() >= 0
	default:
		return true
	}
}

func isNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// Raw field extraction

func requireFields(raw map[string]any, fields []string) error {
	for _, f := range fields {
		if _, ok := raw[f]; !ok {
			return apperrors.NewValidationError(f, fmt.Sprintf("%s required", f))
		}
	}
	return nil
}

func intField(raw map[string]any, field string) (int, error) {
	value := raw[field]
	var f float64
	switch n := value.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return checkIntRange(field, i)
		}
		parsed, err := n.Float64()
		if err != nil {
			return 0, typeError(field, "integer", value)
		}
		f = parsed
	case float64:
		f = n
	case int:
		return n, nil
	case int64:
		return checkIntRange(field, n)
	default:
		return 0, typeError(field, "integer", value)
	}

	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, apperrors.NewValidationError(field,
			fmt.Sprintf("%s: expected integer, got fractional number", field))
	}
	if f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, apperrors.NewValidationError(field,
			fmt.Sprintf("%s: integer %s out of range", field, formatNumber(value)))
	}
	return checkIntRange(field, int64(f))
}

func checkIntRange(field string, i int64) (int, error) {
	if int64(int(i)) != i {
		return 0, apperrors.NewValidationError(field,
			fmt.Sprintf("%s: integer %d out of range", field, i))
	}
	return int(i), nil
}

func formatNumber(v any) string {
	if n, ok := v.(json.Number); ok {
		return n.String()
	}
	return fmt.Sprintf("%v", v)
}

func stringField(raw map[string]any, field string) (string, error) {
	s, ok := raw[field].(string)
	if !ok {
		return "", typeError(field, "string", raw[field])
	}
	return s, nil
}

func typeError(field, expected string, actual any) error {
	return apperrors.NewValidationError(field,
		fmt.Sprintf("%s: expected %s, got %s", field, expected, JSONTypeName(actual)))
}

// JSONTypeName names the JSON type a decoded value came from.
func JSONTypeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case string:
		return "string"
	case json.Number, float64, int, int64:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
