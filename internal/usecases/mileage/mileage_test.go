package mileage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/vehicle-insights-api/infrastructure/integrator/vehicleapi/mocks"
	"github.com/vfg2006/vehicle-insights-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func intPtr(i int) *int { return &i }

func TestValidateEntry(t *testing.T) {
	tests := []struct {
		name        string
		current     int
		newMileage  int
		valid       bool
		warning     bool
		messagePart string
	}{
		{name: "zero", current: 100, newMileage: 0, valid: false, messagePart: "positive"},
		{name: "negative", current: 100, newMileage: -5, valid: false, messagePart: "positive"},
		{name: "lower", current: 1000, newMileage: 900, valid: true, warning: true, messagePart: "lower than current vehicle mileage (1000)"},
		{name: "equal", current: 1000, newMileage: 1000, valid: true, messagePart: "matches"},
		{name: "higher", current: 1000, newMileage: 1500, valid: true, messagePart: "is valid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateEntry(tt.current, tt.newMileage)
			assert.Equal(t, tt.valid, result.Valid)
			assert.Equal(t, tt.warning, result.RequiresWarning)
			assert.Contains(t, result.Message, tt.messagePart)
		})
	}
}

func TestLatestFromLogs(t *testing.T) {
	assert.Equal(t, 0, LatestFromLogs(nil, nil))

	fuel := []domain.FuelLog{{OdometerReading: intPtr(42000)}, {}}
	maint := []domain.MaintenanceLog{{Mileage: intPtr(41000)}, {Mileage: intPtr(43500)}}
	assert.Equal(t, 43500, LatestFromLogs(fuel, maint))
}

func TestService_Validate(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	client.EXPECT().GetVehicle(gomock.Any(), "tok", 1).Return(&domain.Vehicle{ID: 1, CurrentMileage: 5000}, nil)
	client.EXPECT().GetVehicle(gomock.Any(), "tok", 2).Return(nil, domain.ErrVehicleNotFound)

	service := NewService(client)

	result, err := service.Validate(context.Background(), "tok", 1, 4800)
	require.NoError(t, err)
	assert.True(t, result.RequiresWarning)
	assert.Equal(t, 5000, result.CurrentMileage)

	// no upstream call for a non-positive reading
	result, err = service.Validate(context.Background(), "tok", 1, 0)
	require.NoError(t, err)
	assert.False(t, result.Valid)

	_, err = service.Validate(context.Background(), "tok", 2, 100)
	assert.ErrorIs(t, err, domain.ErrVehicleNotFound)
}
