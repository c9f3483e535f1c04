package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// Checker is implemented by payloads with rules that struct tags cannot express.
// Check runs only after every field passed.
type Checker interface {
	Check() []string
}

var (
	isbn10RX = regexp.MustCompile(`^\d{9}[\dX]$`)
	isbn13RX = regexp.MustCompile(`^\d{13}$`)
)

func init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		panic("validation: gin validator engine is not go-playground/validator")
	}

	v.RegisterTagNameFunc(fieldName)

	if err := v.RegisterValidation("isbn", validateISBN); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
}

// fieldName reports fields by their wire name so messages match the payload keys.
func fieldName(f reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}

func validateISBN(fl validator.FieldLevel) bool {
	return IsISBN(fl.Field().String())
}

// IsISBN accepts ISBN-10 and ISBN-13 values, ignoring hyphens and spaces.
func IsISBN(s string) bool {
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, " ", "")

	switch len(s) {
	case 10:
		return isbn10RX.MatchString(s)
	case 13:
		return isbn13RX.MatchString(s)
	}
	return false
}

// DecodeAndValidate decodes one JSON object from r into dst, a pointer to a
// struct, and checks it against the binding rules declared on dst. It returns
// nil when the payload is valid, otherwise one message per violation ordered
// by field declaration, with unknown properties last.
//
// A body that is not a JSON object yields a single message. Otherwise every
// property is decoded on its own so a type mismatch in one field does not hide
// the problems of the others.
func DecodeAndValidate(r io.Reader, dst any) []string {
	var body []byte
	if r != nil {
		b, err := io.ReadAll(r)
		if err != nil {
			return []string{"request body could not be read"}
		}
		body = b
	}

	fieldErrs, msg := decodeObject(body, dst)
	if msg != "" {
		return []string{msg}
	}
	return StructWith(dst, fieldErrs)
}

// Struct validates an already populated value.
func Struct(v any) []string {
	return StructWith(v, nil)
}

// StructWith validates v and merges in fieldErrs, problems found while
// populating v keyed by wire field name. Rule violations of a field that
// already has an entry in fieldErrs are not reported.
func StructWith(v any, fieldErrs map[string]string) []string {
	byField := make(map[string][]string, len(fieldErrs))
	for name, msg := range fieldErrs {
		byField[name] = append(byField[name], msg)
	}

	if err := binding.Validator.ValidateStruct(v); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return []string{err.Error()}
		}
		for _, fe := range verrs {
			if _, failed := fieldErrs[fe.Field()]; failed {
				continue
			}
			byField[fe.Field()] = append(byField[fe.Field()], buildMessage(fe.Field(), fe))
		}
	}

	if len(byField) > 0 {
		return ordered(v, byField)
	}

	if c, ok := v.(Checker); ok {
		if msgs := c.Check(); len(msgs) > 0 {
			return msgs
		}
	}

	return nil
}

// ordered flattens byField following the declaration order of v's fields.
// Names that are not fields of v come last, sorted.
func ordered(v any, byField map[string][]string) []string {
	var msgs []string

	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			name := fieldName(t.Field(i))
			msgs = append(msgs, byField[name]...)
			delete(byField, name)
		}
	}

	rest := make([]string, 0, len(byField))
	for name := range byField {
		rest = append(rest, name)
	}
	sort.Strings(rest)
	for _, name := range rest {
		msgs = append(msgs, byField[name]...)
	}

	return msgs
}

func decodeObject(body []byte, dst any) (map[string]string, string) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, "request body must not be empty"
	}

	var raw map[string]json.RawMessage
	if err := binding.JSON.BindBody(body, &raw); err != nil {
		return nil, bodyMessage(err)
	}
	if !json.Valid(body) {
		return nil, "request body must only contain a single JSON object"
	}
	if raw == nil {
		return nil, "request body must be a JSON object"
	}

	rv := reflect.ValueOf(dst).Elem()
	rt := rv.Type()

	known := make(map[string]bool, rt.NumField())
	fieldErrs := make(map[string]string)

	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		name := fieldName(f)
		if !f.IsExported() || name == "" {
			continue
		}
		known[name] = true

		data, ok := raw[name]
		if !ok || bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
			continue
		}

		val, err := decodeValue(data, f.Type)
		if err != nil {
			fieldErrs[name] = fmt.Sprintf("%s must be of type %s", name, jsonTypeName(f.Type))
			continue
		}
		rv.Field(i).Set(val)
	}

	for name := range raw {
		if !known[name] {
			fieldErrs[name] = name + " is not allowed"
		}
	}

	return fieldErrs, ""
}

// decodeValue decodes data into a new value of type t. Integer fields also
// take JSON numbers written with a zero fraction, such as 264.0.
func decodeValue(data []byte, t reflect.Type) (reflect.Value, error) {
	ptr := reflect.New(t)
	err := binding.JSON.BindBody(data, ptr.Interface())
	if err == nil {
		return ptr.Elem(), nil
	}

	base := t
	for base.Kind() == reflect.Pointer {
		base = base.Elem()
	}

	switch base.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
	default:
		return reflect.Value{}, err
	}

	var f float64
	if ferr := binding.JSON.BindBody(data, &f); ferr != nil || f != math.Trunc(f) ||
		f < math.MinInt64 || f >= math.MaxInt64 {
		return reflect.Value{}, err
	}

	iv := reflect.New(base)
	if iv.Elem().OverflowInt(int64(f)) {
		return reflect.Value{}, err
	}
	iv.Elem().SetInt(int64(f))

	if t.Kind() == reflect.Pointer {
		return iv, nil
	}
	return iv.Elem(), nil
}

func bodyMessage(err error) string {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError

	switch {
	case errors.Is(err, io.ErrUnexpectedEOF):
		return "request body contains badly-formed JSON"
	case errors.As(err, &syntaxErr):
		return fmt.Sprintf("request body contains badly-formed JSON (at character %d)", syntaxErr.Offset)
	case errors.As(err, &typeErr):
		return "request body must be a JSON object"
	}

	return err.Error()
}

func jsonTypeName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Bool:
		return "boolean"
	case reflect.String:
		return "string"
	case reflect.Slice, reflect.Array:
		return "array"
	}
	return "object"
}

func buildMessage(field string, fe validator.FieldError) string {
	kind := fe.Kind()

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "notblank":
		return field + " must not be blank"
	case "isbn":
		return field + " must be a valid ISBN (10 or 13 digits)"
	case "url", "http_url":
		return field + " must be a valid URL"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", field, fe.Param())
	case "min":
		if kind == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if kind == reflect.String {
			return fmt.Sprintf("%s must not exceed %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must not exceed %s", field, fe.Param())
	}

	return field + " is invalid (" + fe.Tag() + ")"
}
