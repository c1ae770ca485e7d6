package jamendo_test

import (
	"math"
	"testing"
	"time"

	"github.com/fivetwenty-io/jamendo/pkg/jamendo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type genre string

func (g genre) String() string { return "genre:" + string(g) }

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestParams_Normalize(t *testing.T) {
	t.Parallel()

	t.Run("nil params receive every default", func(t *testing.T) {
		t.Parallel()

		var params jamendo.Params

		values, err := params.Normalize("cid")
		require.NoError(t, err)
		assert.Equal(t, "10", values.Get("limit"))
		assert.Equal(t, "0", values.Get("offset"))
		assert.Equal(t, "json", values.Get("format"))
		assert.Equal(t, "cid", values.Get("client_id"))
		assert.Len(t, values, 4)
	})

	t.Run("existing values are never overwritten", func(t *testing.T) {
		t.Parallel()

		values, err := jamendo.Params{
			"limit":     200,
			"offset":    "20",
			"format":    "jsonpretty",
			"client_id": "mine",
		}.Normalize("cid")
		require.NoError(t, err)
		assert.Equal(t, "200", values.Get("limit"))
		assert.Equal(t, "20", values.Get("offset"))
		assert.Equal(t, "jsonpretty", values.Get("format"))
		assert.Equal(t, "mine", values.Get("client_id"))
	})

	t.Run("nil value counts as absent", func(t *testing.T) {
		t.Parallel()

		values, err := jamendo.Params{"limit": nil, "name": nil}.Normalize("cid")
		require.NoError(t, err)
		assert.Equal(t, "10", values.Get("limit"))
		assert.False(t, values.Has("name"))
	})

	t.Run("sequences are joined with a space", func(t *testing.T) {
		t.Parallel()

		values, err := jamendo.Params{
			"tags":    []string{"rock", "pop"},
			"id":      []int{1, 2},
			"include": []any{"musicinfo", "stats", nil},
			"fuzzy":   [2]string{"a", "b"},
		}.Normalize("cid")
		require.NoError(t, err)
		assert.Equal(t, "rock pop", values.Get("tags"))
		assert.Equal(t, "1 2", values.Get("id"))
		assert.Equal(t, "musicinfo stats", values.Get("include"))
		assert.Equal(t, "a b", values.Get("fuzzy"))
	})

	t.Run("scalars", func(t *testing.T) {
		t.Parallel()

		values, err := jamendo.Params{
			"audiodlformat":     "flac",
			"vocalinstrumental": true,
			"speed":             1.5,
			"id":                uint(9),
			"genre":             genre("jazz"),
		}.Normalize("cid")
		require.NoError(t, err)
		assert.Equal(t, "flac", values.Get("audiodlformat"))
		assert.Equal(t, "true", values.Get("vocalinstrumental"))
		assert.Equal(t, "1.5", values.Get("speed"))
		assert.Equal(t, "9", values.Get("id"))
		assert.Equal(t, "genre:jazz", values.Get("genre"))
	})

	t.Run("unsupported values", func(t *testing.T) {
		t.Parallel()

		_, err := jamendo.Params{"filter": map[string]int{"a": 1}}.Normalize("cid")
		require.Error(t, err)
		require.ErrorIs(t, err, jamendo.ErrUnsupportedParamType)

		var paramErr *jamendo.ParameterError
		require.ErrorAs(t, err, &paramErr)
		assert.Equal(t, "filter", paramErr.Param)
	})

	t.Run("receiver is not modified", func(t *testing.T) {
		t.Parallel()

		params := jamendo.Params{"datebetween": []int64{1609459200000, 1612137600000}}

		_, err := params.Normalize("cid")
		require.NoError(t, err)
		assert.Len(t, params, 1)
		assert.Equal(t, []int64{1609459200000, 1612137600000}, params["datebetween"])
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestParams_NormalizeDateBetween(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{
			name:  "millisecond timestamps",
			value: []int64{1609459200000, 1612137600000},
			want:  "2021-01-01_2021-02-01",
		},
		{
			name:  "timestamps as any",
			value: []any{1609459200000, float64(1612051200000)},
			want:  "2021-01-01_2021-01-31",
		},
		{
			name:  "all-digit strings are timestamps",
			value: []string{"1609459200000", "1612051200000"},
			want:  "2021-01-01_2021-01-31",
		},
		{
			name: "time values",
			value: []time.Time{
				time.Date(2020, time.March, 5, 12, 0, 0, 0, time.UTC),
				time.Date(2020, time.April, 1, 0, 0, 0, 0, time.UTC),
			},
			want: "2020-03-05_2020-04-01",
		},
		{
			name:  "RFC 2822 strings",
			value: []string{"Fri, 01 Jan 2021 00:00:00 +0000", "Sun, 31 Jan 2021 10:00:00 +0000"},
			want:  "2021-01-01_2021-01-31",
		},
		{
			name:  "ISO dates",
			value: []string{"2021-01-01", "2021-01-31"},
			want:  "2021-01-01_2021-01-31",
		},
		{
			name:  "RFC 3339",
			value: []string{"2021-01-01T08:00:00Z", "2021-01-31T08:00:00Z"},
			want:  "2021-01-01_2021-01-31",
		},
		{
			name: "date range",
			value: jamendo.DateRange{
				Start: time.Date(2019, time.December, 24, 0, 0, 0, 0, time.UTC),
				End:   time.Date(2019, time.December, 31, 0, 0, 0, 0, time.UTC),
			},
			want: "2019-12-24_2019-12-31",
		},
		{
			name:  "preformatted string is kept",
			value: "2021-01-01_2021-01-31",
			want:  "2021-01-01_2021-01-31",
		},
		{
			name:  "other lengths are joined like any sequence",
			value: []string{"2021-01-01", "2021-01-02", "2021-01-03"},
			want:  "2021-01-01 2021-01-02 2021-01-03",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			values, err := jamendo.Params{"datebetween": tt.value}.Normalize("cid")
			require.NoError(t, err)
			assert.Equal(t, tt.want, values.Get("datebetween"))
		})
	}
}

func TestParams_NormalizeDateBetweenUTC(t *testing.T) {
	t.Parallel()

	est := time.FixedZone("EST", -5*60*60)

	tests := []struct {
		name  string
		value any
	}{
		{
			name:  "time values with offset",
			value: []time.Time{time.Date(2020, 12, 31, 23, 0, 0, 0, est), time.Date(2021, 1, 31, 20, 0, 0, 0, est)},
		},
		{
			name:  "mixed time and RFC 2822 string with offset",
			value: []any{time.Date(2020, 12, 31, 23, 0, 0, 0, est), "Sun, 31 Jan 2021 20:00:00 -0500"},
		},
		{
			name:  "typed range with offset",
			value: jamendo.DateRange{Start: time.Date(2020, 12, 31, 23, 0, 0, 0, est), End: time.Date(2021, 1, 31, 20, 0, 0, 0, est)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			values, err := jamendo.Params{"datebetween": tt.value}.Normalize("cid")
			require.NoError(t, err)
			assert.Equal(t, "2021-01-01_2021-02-01", values.Get("datebetween"))
		})
	}
}

func TestParams_NormalizeDateBetweenErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
	}{
		{name: "garbage strings", value: []string{"soon", "later"}},
		{name: "empty string", value: []string{"", "2021-01-01"}},
		{name: "unsupported element", value: []any{struct{}{}, "2021-01-01"}},
		{name: "NaN timestamp", value: []any{math.NaN(), 1.0}},
		{name: "infinite timestamp", value: []float64{math.Inf(1), 0}},
		{name: "negative infinite timestamp", value: []float64{0, math.Inf(-1)}},
		{name: "float beyond int64", value: []float64{1e19, 0}},
		{name: "uint beyond int64", value: []uint64{math.MaxUint64, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := jamendo.Params{"datebetween": tt.value}.Normalize("cid")
			require.Error(t, err)
			require.ErrorIs(t, err, jamendo.ErrInvalidDateBetween)
			assert.True(t, jamendo.IsParameterError(err))
		})
	}
}

func TestParams_Flatten(t *testing.T) {
	t.Parallel()

	values, err := jamendo.Params{"scope": []string{"music", "manage"}}.Flatten()
	require.NoError(t, err)
	assert.Equal(t, "music manage", values.Get("scope"))
	assert.False(t, values.Has("limit"))
	assert.False(t, values.Has("client_id"))
}

func TestParams_Helpers(t *testing.T) {
	t.Parallel()

	params := jamendo.Params{"name": "x", "empty": ""}

	assert.True(t, params.Has("name"))
	assert.False(t, params.Has("empty"))
	assert.False(t, params.Has("missing"))

	with := params.With("relation", jamendo.RelationFan)
	assert.Equal(t, "fan", with["relation"])
	assert.NotContains(t, params, "relation")

	var nilParams jamendo.Params
	assert.NotNil(t, nilParams.Clone())
	assert.Equal(t, "v", nilParams.With("k", "v")["k"])
}
