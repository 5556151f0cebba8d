package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCostUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected string
	}{
		{name: "number", payload: `{"cost": 1234.5}`, expected: "1234.5"},
		{name: "decimal string", payload: `{"cost": "45.99"}`, expected: "45.99"},
		{name: "padded string", payload: `{"cost": " 12.30 "}`, expected: "12.3"},
		{name: "null", payload: `{"cost": null}`, expected: "0"},
		{name: "missing", payload: `{}`, expected: "0"},
		{name: "empty string", payload: `{"cost": ""}`, expected: "0"},
		{name: "garbage", payload: `{"cost": "abc"}`, expected: "0"},
		{name: "trailing garbage", payload: `{"cost": "45.99abc"}`, expected: "0"},
		{name: "boolean", payload: `{"cost": true}`, expected: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var log FuelLog
			require.NoError(t, json.Unmarshal([]byte(tt.payload), &log))

			expected := decimal.RequireFromString(tt.expected)
			assert.True(t, expected.Equal(log.Cost.Amount()), "got %s", log.Cost.Amount())
		})
	}
}

func TestCostMarshalJSON(t *testing.T) {
	b, err := json.Marshal(NewCost(decimal.RequireFromString("1500")))
	require.NoError(t, err)
	assert.Equal(t, `"1500.00"`, string(b))
}

func TestDateUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		validate func(t *testing.T, d Date)
	}{
		{
			name:    "date only",
			payload: `"2024-03-15"`,
			validate: func(t *testing.T, d Date) {
				assert.True(t, d.InMonth(time.March, 2024))
				assert.Equal(t, "2024-03-15", d.String())
			},
		},
		{
			name:    "offset is not shifted into another month",
			payload: `"2024-03-31T23:30:00-08:00"`,
			validate: func(t *testing.T, d Date) {
				assert.True(t, d.InMonth(time.March, 2024))
				assert.False(t, d.InMonth(time.April, 2024))
			},
		},
		{
			name:    "naive datetime",
			payload: `"2024-02-01T08:00:00"`,
			validate: func(t *testing.T, d Date) {
				assert.True(t, d.InMonth(time.February, 2024))
			},
		},
		{
			name:    "null",
			payload: `null`,
			validate: func(t *testing.T, d Date) {
				assert.True(t, d.IsZero())
			},
		},
		{
			name:    "unparseable never matches a month",
			payload: `"next tuesday"`,
			validate: func(t *testing.T, d Date) {
				assert.True(t, d.IsZero())
				assert.False(t, d.InMonth(time.January, 1))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			require.NoError(t, json.Unmarshal([]byte(tt.payload), &d))
			tt.validate(t, d)
		})
	}
}

func TestDateMarshalJSON(t *testing.T) {
	b, err := json.Marshal(struct {
		Set  Date `json:"set"`
		Zero Date `json:"zero"`
	}{Set: NewDate(2024, time.March, 1)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"set":"2024-03-01","zero":null}`, string(b))
}

func TestLogSnapshotTotals(t *testing.T) {
	var nilSnapshot *LogSnapshot
	assert.Equal(t, LogTotals{}, nilSnapshot.Totals())

	s := &LogSnapshot{
		Vehicles:        []Vehicle{{ID: 1}},
		FuelLogs:        []FuelLog{{ID: 1}, {ID: 2}},
		MaintenanceLogs: []MaintenanceLog{{ID: 3}},
	}
	assert.Equal(t, LogTotals{Vehicles: 1, FuelLogs: 2, MaintenanceLogs: 1}, s.Totals())
}
