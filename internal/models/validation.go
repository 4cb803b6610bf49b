package models

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
)

// Accepted layouts for timestamps supplied as strings
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// Validator turns decoded request payloads into normalized plantilla records.
// Missing creation timestamps default to the current time in loc, computed
// on every call.
type Validator struct {
	loc      *time.Location
	now      func() time.Time
	validate *validator.Validate
}

// NewValidator creates a validator bound to the configured timezone
func NewValidator(loc *time.Location) *Validator {
	if loc == nil {
		loc = time.UTC
	}

	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	return &Validator{
		loc:      loc,
		now:      time.Now,
		validate: validate,
	}
}

// WithClock replaces the wall clock used for default timestamps
func (v *Validator) WithClock(now func() time.Time) *Validator {
	v.now = now
	return v
}

// Location returns the timezone used for default timestamps
func (v *Validator) Location() *time.Location {
	return v.loc
}

// ValidateCreate validates a create payload and returns the record to insert
func (v *Validator) ValidateCreate(payload map[string]interface{}) (*Plantilla, error) {
	var req CreatePlantillaRequest
	if err := v.check(payload, &req); err != nil {
		return nil, err
	}
	return req.ToPlantilla(v.now().In(v.loc)), nil
}

// ValidateUpdate validates an update payload and returns the replacement record
func (v *Validator) ValidateUpdate(payload map[string]interface{}) (*Plantilla, error) {
	var req UpdatePlantillaRequest
	if err := v.check(payload, &req); err != nil {
		return nil, err
	}
	return req.ToPlantilla(v.now().In(v.loc)), nil
}

func (v *Validator) check(payload map[string]interface{}, out interface{}) error {
	if payload == nil {
		return &ValidationError{Message: "payload is required"}
	}

	if err := duplicateKeys(payload, ""); err != nil {
		return err
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			numberHook,
			v.timeHook,
			base64Hook,
		),
		Result: out,
	})
	if err != nil {
		return fmt.Errorf("failed to build payload decoder: %w", err)
	}

	if err := decoder.Decode(payload); err != nil {
		return decodeError(err)
	}

	if err := v.validate.Struct(out); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return &ValidationError{
				Field:   fieldPath(fe.Namespace()),
				Message: fmt.Sprintf("failed on the '%s' tag", fe.Tag()),
			}
		}
		return &ValidationError{Message: err.Error()}
	}

	return nil
}

func decodeError(err error) error {
	var mErr *mapstructure.Error
	if errors.As(err, &mErr) && len(mErr.Errors) > 0 {
		return &ValidationError{Message: mErr.Errors[0]}
	}
	return &ValidationError{Message: err.Error()}
}

// duplicateKeys rejects objects carrying the same key in two casings, such as
// "Activo" and "activo". Key matching is case-insensitive, so either could win.
func duplicateKeys(obj map[string]interface{}, prefix string) error {
	seen := make(map[string]string, len(obj))
	for key, value := range obj {
		folded := strings.ToLower(key)
		if other, ok := seen[folded]; ok {
			return &ValidationError{
				Field:   prefix + folded,
				Message: fmt.Sprintf("duplicate keys %q and %q", other, key),
			}
		}
		seen[folded] = key

		if nested, ok := value.(map[string]interface{}); ok {
			if err := duplicateKeys(nested, prefix+folded+"."); err != nil {
				return err
			}
		}
	}
	return nil
}

// fieldPath drops the root struct name from a validator namespace
func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

// numberHook converts json.Number into the target numeric kind. Integers must
// be integral; strings are never coerced.
func numberHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	num, ok := data.(json.Number)
	if !ok {
		if f, isFloat := data.(float64); isFloat && isIntKind(to.Kind()) {
			return integral(f)
		}
		return data, nil
	}

	switch {
	case isIntKind(to.Kind()):
		i, err := num.Int64()
		if err == nil {
			return i, nil
		}
		if errors.Is(err, strconv.ErrRange) {
			return nil, fmt.Errorf("integer %s out of range", num.String())
		}
		f, err := num.Float64()
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", num.String())
		}
		return integral(f)
	case to.Kind() == reflect.Float32 || to.Kind() == reflect.Float64:
		return num.Float64()
	case to.Kind() == reflect.String:
		return nil, fmt.Errorf("expected a string, got number %s", num.String())
	default:
		return data, nil
	}
}

func isIntKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func integral(f float64) (interface{}, error) {
	if f != math.Trunc(f) {
		return nil, fmt.Errorf("expected an integer, got %v", f)
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return nil, fmt.Errorf("integer %v out of range", f)
	}
	return int64(f), nil
}

func (v *Validator) timeHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if to != reflect.TypeOf(time.Time{}) {
		return data, nil
	}

	switch value := data.(type) {
	case string:
		for _, layout := range timeLayouts {
			if t, err := time.ParseInLocation(layout, value, v.loc); err == nil {
				return t, nil
			}
		}
		return nil, fmt.Errorf("invalid datetime %q", value)
	case time.Time:
		return value, nil
	default:
		return nil, fmt.Errorf("expected a datetime string, got %T", data)
	}
}

func base64Hook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if to != reflect.TypeOf([]byte(nil)) {
		return data, nil
	}

	s, ok := data.(string)
	if !ok {
		return data, nil
	}

	decoded, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid base64 data: %w", err)
	}
	return decoded, nil
}
