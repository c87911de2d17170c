package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Clock
		wantErr bool
	}{
		{name: "morning", input: "09:00", want: Clock{Hour: 9, Minute: 0}},
		{name: "half past", input: "16:30", want: Clock{Hour: 16, Minute: 30}},
		{name: "midnight", input: "00:00", want: Clock{}},
		{name: "late evening", input: "23:59", want: Clock{Hour: 23, Minute: 59}},
		{name: "surrounding whitespace", input: " 10:15 ", want: Clock{Hour: 10, Minute: 15}},
		{name: "missing colon", input: "0900", wantErr: true},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "10:60", wantErr: true},
		{name: "negative hour", input: "-1:00", wantErr: true},
		{name: "garbage", input: "morning", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseClock(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClockDecimalHours(t *testing.T) {
	assert.InDelta(t, 16.5, MustClock("16:30").DecimalHours(), 1e-9)
	assert.InDelta(t, 9.0, MustClock("09:00").DecimalHours(), 1e-9)
	assert.InDelta(t, 10.25, MustClock("10:15").DecimalHours(), 1e-9)
}

func TestClockString(t *testing.T) {
	assert.Equal(t, "09:05", Clock{Hour: 9, Minute: 5}.String())
	assert.Equal(t, "00:00", Clock{}.String())
}

func TestMustClockPanics(t *testing.T) {
	assert.Panics(t, func() { MustClock("nope") })
}

func TestParseClockRange(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    ClockRange
		wantErr bool
	}{
		{
			name:  "office hours",
			input: "09:00-17:00",
			want:  ClockRange{Start: MustClock("09:00"), End: MustClock("17:00")},
		},
		{
			name:  "odd minutes",
			input: "08:30-12:45",
			want:  ClockRange{Start: MustClock("08:30"), End: MustClock("12:45")},
		},
		{name: "missing separator", input: "09:00", wantErr: true},
		{name: "bad start", input: "9am-17:00", wantErr: true},
		{name: "bad end", input: "09:00-5pm", wantErr: true},
		{name: "inverted", input: "17:00-09:00", wantErr: true},
		{name: "zero width", input: "09:00-09:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseClockRange(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClockRangeString(t *testing.T) {
	r := ClockRange{Start: MustClock("09:00"), End: MustClock("17:00")}
	assert.Equal(t, "09:00-17:00", r.String())
}
