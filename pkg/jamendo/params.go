package jamendo

import (
	"encoding/json"
	"fmt"
	"math"
	"net/mail"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// Recognized parameter names.
const (
	ParamLimit        = "limit"
	ParamOffset       = "offset"
	ParamFormat       = "format"
	ParamClientID     = "client_id"
	ParamClientSecret = "client_secret"
	ParamDateBetween  = "datebetween"
	ParamRelation     = "relation"
	ParamAccessToken  = "access_token"
	ParamArtistID     = "artist_id"
	ParamTrackID      = "track_id"
	ParamCode         = "code"
	ParamGrantType    = "grant_type"
	ParamRefreshToken = "refresh_token"
	ParamRedirectURI  = "redirect_uri"
	ParamScope        = "scope"
	ParamState        = "state"
	ParamResponseType = "response_type"
)

// Default values injected by Normalize when the caller leaves them out.
const (
	DefaultLimit  = 10
	DefaultOffset = 0
	DefaultFormat = "json"
)

// RelationFan is the relation value the API uses for favorites.
const RelationFan = "fan"

// DateLayout is the date format expected by the datebetween parameter.
const DateLayout = "2006-01-02"

// dateStringLayouts are tried, in order, after net/mail's RFC 2822 parser.
var dateStringLayouts = []string{
	time.RFC3339,
	time.RFC1123Z,
	time.RFC1123,
	time.RFC850,
	time.ANSIC,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	DateLayout,
	"Jan 2 2006",
	"January 2, 2006",
}

// Params holds the query or form parameters for a single call.
//
// Values may be strings, numbers, bools, slices (joined with a single space),
// time.Time, DateRange or any fmt.Stringer. A nil value is treated as absent.
type Params map[string]any

// DateRange is a typed value for the datebetween parameter.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// String formats the range as the API's start_end date string. Both bounds
// are formatted in UTC.
func (r DateRange) String() string {
	return r.Start.UTC().Format(DateLayout) + "_" + r.End.UTC().Format(DateLayout)
}

// Clone returns a shallow copy of the params. A nil receiver yields an empty map.
func (p Params) Clone() Params {
	clone := make(Params, len(p))
	for key, value := range p {
		clone[key] = value
	}

	return clone
}

// With returns a copy of the params with key set to value.
func (p Params) With(key string, value any) Params {
	clone := p.Clone()
	clone[key] = value

	return clone
}

// Has reports whether key is present with a non-empty value.
func (p Params) Has(key string) bool {
	value, ok := p[key]
	if !ok || value == nil {
		return false
	}

	if str, isString := value.(string); isString {
		return str != ""
	}

	return true
}

// Normalize produces the canonical scalar-only form of the params expected by
// the API. Missing limit, offset, format and client_id keys receive their
// defaults, a two-element datebetween is rendered as "YYYY-MM-DD_YYYY-MM-DD"
// and every other sequence is joined with a single space. The receiver is
// never modified.
func (p Params) Normalize(clientID string) (url.Values, error) {
	merged := p.Clone()

	defaults := []struct {
		key   string
		value any
	}{
		{ParamLimit, DefaultLimit},
		{ParamOffset, DefaultOffset},
		{ParamFormat, DefaultFormat},
		{ParamClientID, clientID},
	}

	for _, def := range defaults {
		if merged[def.key] == nil {
			merged[def.key] = def.value
		}
	}

	if raw := merged[ParamDateBetween]; raw != nil {
		formatted, ok, err := formatDateBetween(raw)
		if err != nil {
			return nil, err
		}

		if ok {
			merged[ParamDateBetween] = formatted
		}
	}

	return merged.Flatten()
}

// Flatten converts every value to a single string without injecting any
// defaults. Nil values are dropped.
func (p Params) Flatten() (url.Values, error) {
	values := make(url.Values, len(p))

	for key, value := range p {
		if value == nil {
			continue
		}

		str, err := scalarString(key, value)
		if err != nil {
			return nil, err
		}

		values.Set(key, str)
	}

	return values, nil
}

func scalarString(key string, value any) (string, error) {
	switch typed := value.(type) {
	case string:
		return typed, nil
	case []byte:
		return string(typed), nil
	case time.Time:
		return typed.Format(DateLayout), nil
	case *time.Time:
		if typed == nil {
			return "", nil
		}

		return typed.Format(DateLayout), nil
	case DateRange:
		return typed.String(), nil
	case json.Number:
		return typed.String(), nil
	case fmt.Stringer:
		return typed.String(), nil
	}

	rv := reflect.ValueOf(value)

	switch rv.Kind() {
	case reflect.String:
		return rv.String(), nil
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), nil
	case reflect.Slice, reflect.Array:
		parts := make([]string, 0, rv.Len())

		for i := range rv.Len() {
			elem := rv.Index(i).Interface()
			if elem == nil {
				continue
			}

			part, err := scalarString(key, elem)
			if err != nil {
				return "", err
			}

			parts = append(parts, part)
		}

		return strings.Join(parts, " "), nil
	case reflect.Pointer:
		if rv.IsNil() {
			return "", nil
		}

		return scalarString(key, rv.Elem().Interface())
	default:
		return "", &ParameterError{Param: key, Err: fmt.Errorf("%w: %T", ErrUnsupportedParamType, value)}
	}
}

// formatDateBetween renders a two-element datebetween value. ok is false when
// the value is not a two-element sequence and must be left untouched.
func formatDateBetween(raw any) (string, bool, error) {
	switch typed := raw.(type) {
	case DateRange:
		return typed.String(), true, nil
	case *DateRange:
		if typed == nil {
			return "", false, nil
		}

		return typed.String(), true, nil
	case string, []byte:
		return "", false, nil
	}

	rv := reflect.ValueOf(raw)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return "", false, nil
	}

	if rv.Len() != 2 {
		return "", false, nil
	}

	var bounds [2]time.Time

	for i := range bounds {
		resolved, err := resolveDate(rv.Index(i).Interface())
		if err != nil {
			return "", false, &ParameterError{Param: ParamDateBetween, Err: err}
		}

		bounds[i] = resolved
	}

	return DateRange{Start: bounds[0], End: bounds[1]}.String(), true, nil
}

// maxMillisFloat is 2^63, the first float64 outside the int64 range.
const maxMillisFloat = float64(1 << 63)

// resolveDate accepts a time.Time, a millisecond epoch timestamp (numeric or
// an all-digit string) or a date string.
func resolveDate(value any) (time.Time, error) {
	switch typed := value.(type) {
	case time.Time:
		return typed, nil
	case *time.Time:
		if typed != nil {
			return *typed, nil
		}
	case json.Number:
		millis, err := typed.Int64()
		if err == nil {
			return time.UnixMilli(millis).UTC(), nil
		}
	case string:
		return parseDateString(typed)
	}

	rv := reflect.ValueOf(value)

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return time.UnixMilli(rv.Int()).UTC(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		millis := rv.Uint()
		if millis > math.MaxInt64 {
			return time.Time{}, fmt.Errorf("%w: timestamp out of range: %d", ErrInvalidDateBetween, millis)
		}

		return time.UnixMilli(int64(millis)).UTC(), nil
	case reflect.Float32, reflect.Float64:
		millis := rv.Float()
		if math.IsNaN(millis) || math.IsInf(millis, 0) || millis >= maxMillisFloat || millis < -maxMillisFloat {
			return time.Time{}, fmt.Errorf("%w: timestamp out of range: %v", ErrInvalidDateBetween, millis)
		}

		return time.UnixMilli(int64(millis)).UTC(), nil
	case reflect.String:
		return parseDateString(rv.String())
	}

	return time.Time{}, fmt.Errorf("%w: unsupported element %T", ErrInvalidDateBetween, value)
}

func parseDateString(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, fmt.Errorf("%w: empty date", ErrInvalidDateBetween)
	}

	millis, err := strconv.ParseInt(trimmed, 10, 64)
	if err == nil {
		return time.UnixMilli(millis).UTC(), nil
	}

	parsed, err := mail.ParseDate(trimmed)
	if err == nil {
		return parsed, nil
	}

	for _, layout := range dateStringLayouts {
		parsed, err := time.Parse(layout, trimmed)
		if err == nil {
			return parsed, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: cannot parse %q", ErrInvalidDateBetween, value)
}
