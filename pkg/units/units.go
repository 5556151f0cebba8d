package units

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

type (
	DistanceUnit string
	VolumeUnit   string
)

const (
	Kilometers DistanceUnit = "km"
	Miles      DistanceUnit = "mi"

	Liters  VolumeUnit = "L"
	Gallons VolumeUnit = "gal"
)

const (
	kmToMiles    = 0.621371
	milesToKm    = 1.60934
	litersToGal  = 0.264172
	gallonsToLit = 3.78541

	DefaultDistancePrecision = 1
	DefaultVolumePrecision   = 2

	notAvailable = "N/A"
)

var ErrUnsupportedUnit = errors.New("unsupported unit conversion")

func (u DistanceUnit) Valid() bool {
	return u == Kilometers || u == Miles
}

func (u VolumeUnit) Valid() bool {
	return u == Liters || u == Gallons
}

// ParseDistanceUnit accepts km/mi in any case
func ParseDistanceUnit(s string) (DistanceUnit, error) {
	u := DistanceUnit(strings.ToLower(strings.TrimSpace(s)))
	if !u.Valid() {
		return "", fmt.Errorf("%w: distance unit %q", ErrUnsupportedUnit, s)
	}
	return u, nil
}

// ParseVolumeUnit accepts L/gal in any case
func ParseVolumeUnit(s string) (VolumeUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "l":
		return Liters, nil
	case "gal":
		return Gallons, nil
	}
	return "", fmt.Errorf("%w: volume unit %q", ErrUnsupportedUnit, s)
}

// DistanceUnitFromMileageType maps the user's mileage_type preference
func DistanceUnitFromMileageType(mileageType string) DistanceUnit {
	if strings.EqualFold(strings.TrimSpace(mileageType), "miles") {
		return Miles
	}
	return Kilometers
}

// ConvertDistance returns value unchanged with ErrUnsupportedUnit for an
// unknown pair.
func ConvertDistance(value float64, from, to DistanceUnit) (float64, error) {
	switch {
	case from == to && from.Valid():
		return value, nil
	case from == Kilometers && to == Miles:
		return value * kmToMiles, nil
	case from == Miles && to == Kilometers:
		return value * milesToKm, nil
	}
	return value, fmt.Errorf("%w: %s to %s", ErrUnsupportedUnit, from, to)
}

// ConvertVolume mirrors ConvertDistance for L and gal
func ConvertVolume(value float64, from, to VolumeUnit) (float64, error) {
	switch {
	case from == to && from.Valid():
		return value, nil
	case from == Liters && to == Gallons:
		return value * litersToGal, nil
	case from == Gallons && to == Liters:
		return value * gallonsToLit, nil
	}
	return value, fmt.Errorf("%w: %s to %s", ErrUnsupportedUnit, from, to)
}

func FormatDistance(value float64, unit DistanceUnit, precision int) string {
	return strconv.FormatFloat(value, 'f', precision, 64) + " " + string(unit)
}

func FormatVolume(value float64, unit VolumeUnit, precision int) string {
	return strconv.FormatFloat(value, 'f', precision, 64) + " " + string(unit)
}

// FormatFuelEfficiency renders distance per volume. Mixed pairs are
// normalised to km and L and keep the "km/L" label.
func FormatFuelEfficiency(distance, volume float64, distanceUnit DistanceUnit, volumeUnit VolumeUnit) string {
	if volume == 0 || !distanceUnit.Valid() || !volumeUnit.Valid() {
		return notAvailable
	}

	switch {
	case distanceUnit == Kilometers && volumeUnit == Liters:
		return fmt.Sprintf("%.2f km/L", distance/volume)
	case distanceUnit == Miles && volumeUnit == Gallons:
		return fmt.Sprintf("%.2f mpg", distance/volume)
	}

	km, _ := ConvertDistance(distance, distanceUnit, Kilometers)
	liters, _ := ConvertVolume(volume, volumeUnit, Liters)
	return fmt.Sprintf("%.2f km/L", km/liters)
}
