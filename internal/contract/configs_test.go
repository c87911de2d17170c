package contract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/syncflow/syncflow/schema"
)

func validRawInput() ConfigRawInput {
	return ConfigRawInput{
		ResultLimit:       DefaultResultLimit,
		Workers:           4,
		DaysAhead:         DefaultDaysAhead,
		Duration:          0,
		WorkingHoursStr:   DefaultWorkingHours,
		PreferredTimesStr: DefaultPreferredTimes,
		TimezoneStr:       "UTC",
		Output:            "text",
		Color:             "no",
	}
}

func TestProcessAndValidateHappyPath(t *testing.T) {
	var cfg Config
	input := validRawInput()

	require.NoError(t, ProcessAndValidate(&cfg, &input))

	assert.Equal(t, DefaultResultLimit, cfg.ResultLimit)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, DefaultDaysAhead, cfg.DaysAhead)
	assert.Equal(t, time.UTC, cfg.Location)
	assert.Equal(t, "UTC", cfg.TimezoneName)
	assert.Equal(t, schema.TextOut, cfg.Output)
	assert.False(t, cfg.Color)

	require.Len(t, cfg.PreferredTimes, 6)
	assert.Equal(t, schema.MustClock("09:00"), cfg.PreferredTimes[0])
	assert.Equal(t, schema.MustClock("16:00"), cfg.PreferredTimes[5])
	assert.Equal(t, "09:00-17:00", cfg.WorkingHours.String())
}

func TestProcessAndValidateLocalTimezone(t *testing.T) {
	for _, tz := range []string{"", "local", "Local"} {
		var cfg Config
		input := validRawInput()
		input.TimezoneStr = tz

		require.NoError(t, ProcessAndValidate(&cfg, &input))
		assert.Equal(t, time.Local, cfg.Location)
		assert.Equal(t, "Local", cfg.TimezoneName)
	}
}

func TestProcessAndValidatePreferredTimesTrimming(t *testing.T) {
	var cfg Config
	input := validRawInput()
	input.PreferredTimesStr = " 09:30 , 13:00 ,,15:45 "

	require.NoError(t, ProcessAndValidate(&cfg, &input))
	require.Len(t, cfg.PreferredTimes, 3)
	assert.Equal(t, schema.MustClock("13:00"), cfg.PreferredTimes[1])
}

func TestProcessAndValidateOutputModes(t *testing.T) {
	for input, want := range map[string]schema.OutputMode{
		"text": schema.TextOut,
		"JSON": schema.JSONOut,
		"csv":  schema.CSVOut,
	} {
		var cfg Config
		raw := validRawInput()
		raw.Output = input

		require.NoError(t, ProcessAndValidate(&cfg, &raw))
		assert.Equal(t, want, cfg.Output)
	}
}

func TestProcessAndValidateErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ConfigRawInput)
		errStr string
	}{
		{
			name:   "zero limit",
			mutate: func(in *ConfigRawInput) { in.ResultLimit = 0 },
			errStr: "limit must be greater than 0",
		},
		{
			name:   "limit above ceiling",
			mutate: func(in *ConfigRawInput) { in.ResultLimit = MaxResultLimit + 1 },
			errStr: "limit must be greater than 0",
		},
		{
			name:   "zero workers",
			mutate: func(in *ConfigRawInput) { in.Workers = 0 },
			errStr: "workers must be greater than 0",
		},
		{
			name:   "days-ahead above ceiling",
			mutate: func(in *ConfigRawInput) { in.DaysAhead = MaxDaysAhead + 1 },
			errStr: "days-ahead must be between",
		},
		{
			name:   "negative duration",
			mutate: func(in *ConfigRawInput) { in.Duration = -30 },
			errStr: "duration cannot be negative",
		},
		{
			name:   "malformed working hours",
			mutate: func(in *ConfigRawInput) { in.WorkingHoursStr = "9-5" },
			errStr: "invalid working-hours",
		},
		{
			name:   "malformed preferred time",
			mutate: func(in *ConfigRawInput) { in.PreferredTimesStr = "09:00,noonish" },
			errStr: "invalid preferred-times",
		},
		{
			name:   "empty preferred times",
			mutate: func(in *ConfigRawInput) { in.PreferredTimesStr = " , ," },
			errStr: "preferred-times must contain at least one",
		},
		{
			name:   "unknown timezone",
			mutate: func(in *ConfigRawInput) { in.TimezoneStr = "Mars/Olympus" },
			errStr: "invalid timezone",
		},
		{
			name:   "unknown output mode",
			mutate: func(in *ConfigRawInput) { in.Output = "yaml" },
			errStr: "invalid output format",
		},
		{
			name: "attendees and ics-dir together",
			mutate: func(in *ConfigRawInput) {
				in.AttendeesFile = "team.json"
				in.ICSDir = "calendars"
			},
			errStr: "not both",
		},
		{
			name:   "bad color value",
			mutate: func(in *ConfigRawInput) { in.Color = "maybe" },
			errStr: "invalid color value",
		},
		{
			name:   "negative width",
			mutate: func(in *ConfigRawInput) { in.Width = -1 },
			errStr: "width cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg Config
			input := validRawInput()
			tt.mutate(&input)

			err := ProcessAndValidate(&cfg, &input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errStr)
		})
	}
}

func TestParseBoolString(t *testing.T) {
	truthy := []string{"yes", "YES", "true", "1", "on", " On "}
	for _, s := range truthy {
		got, err := parseBoolString(s)
		require.NoError(t, err, s)
		assert.True(t, got, s)
	}

	falsy := []string{"no", "False", "0", "off"}
	for _, s := range falsy {
		got, err := parseBoolString(s)
		require.NoError(t, err, s)
		assert.False(t, got, s)
	}

	_, err := parseBoolString("maybe")
	assert.Error(t, err)
}
