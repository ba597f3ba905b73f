package convert

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeIn(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "us date",
			value: "01/01/1999",
			want:  time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "iso date time",
			value: "2024-03-15 10:30:00",
			want:  time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			name:  "rfc3339",
			value: "2024-03-15T10:30:00Z",
			want:  time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			name:    "not a date",
			value:   "99/99/9999",
			wantErr: true,
		},
	}

	parse := TimeIn(time.UTC)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parse(tt.value)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTime)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %v, want %v", got, tt.want)
		})
	}

	got, err := parse("01/01/1999")
	require.NoError(t, err)
	assert.Equal(t, int64(915148800000), got.UnixMilli())
}

func TestTime(t *testing.T) {
	got, err := Time("2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, 2024, got.Year())
	assert.Equal(t, time.March, got.Month())
	assert.Equal(t, 15, got.Day())

	_, err = Time("99/99/9999")
	assert.ErrorIs(t, err, ErrInvalidTime)
}

func TestDate(t *testing.T) {
	parse := Date("02/01/2006")

	got, err := parse("25/12/2020")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2020, 12, 25, 0, 0, 0, 0, time.UTC), got)

	_, err = parse("12/25/2020")
	assert.ErrorIs(t, err, ErrInvalidTime)
}

func TestDuration(t *testing.T) {
	got, err := Duration("1h30m")
	require.NoError(t, err)
	assert.Equal(t, 90*time.Minute, got)

	_, err = Duration("90")
	assert.ErrorIs(t, err, ErrInvalidDuration)
}

func TestUUID(t *testing.T) {
	want := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

	got, err := UUID("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = UUID("not-a-uuid")
	assert.ErrorIs(t, err, ErrInvalidUUID)
}

func TestURL(t *testing.T) {
	got, err := URL("https://example.com:8443/path?q=1")
	require.NoError(t, err)
	assert.Equal(t, "example.com:8443", got.Host)
	assert.Equal(t, "/path", got.Path)

	for _, value := range []string{"relative/path", "/abs/path", "://broken"} {
		_, err := URL(value)
		assert.ErrorIs(t, err, ErrInvalidURL, value)
	}
}

func TestStringList(t *testing.T) {
	tests := []struct {
		name  string
		sep   string
		value string
		want  []string
	}{
		{name: "comma separated", sep: ",", value: "a,b,c", want: []string{"a", "b", "c"}},
		{name: "trims and drops empty", sep: ",", value: " a , ,b ,", want: []string{"a", "b"}},
		{name: "custom separator", sep: ":", value: "/usr/bin:/bin", want: []string{"/usr/bin", "/bin"}},
		{name: "empty input", sep: ",", value: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := StringList(tt.sep)(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
