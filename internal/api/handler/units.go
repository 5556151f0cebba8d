package handler

import (
	"net/http"
	"strconv"

	"github.com/vfg2006/vehicle-insights-api/pkg/apiErrors"
	"github.com/vfg2006/vehicle-insights-api/pkg/log"
	"github.com/vfg2006/vehicle-insights-api/pkg/units"
	"github.com/vfg2006/vehicle-insights-api/pkg/utils"
)

type ConversionResponse struct {
	Kind      string  `json:"kind"`
	Value     float64 `json:"value"`
	From      string  `json:"from"`
	To        string  `json:"to"`
	Converted float64 `json:"converted"`
	Rounded   float64 `json:"rounded"`
	Formatted string  `json:"formatted"`
}

type EfficiencyResponse struct {
	Distance     float64 `json:"distance"`
	Volume       float64 `json:"volume"`
	DistanceUnit string  `json:"distance_unit"`
	VolumeUnit   string  `json:"volume_unit"`
	Efficiency   string  `json:"efficiency"`
}

func parseFloatParam(r *http.Request, name string) (float64, bool) {
	v, err := strconv.ParseFloat(r.URL.Query().Get(name), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ConvertUnits converts a distance (km/mi) or a volume (L/gal)
func ConvertUnits() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		query := r.URL.Query()

		value, ok := parseFloatParam(r, "value")
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "value must be a number", nil)
			return
		}

		resp := ConversionResponse{Kind: query.Get("kind"), Value: value, From: query.Get("from"), To: query.Get("to")}

		switch resp.Kind {
		case "distance":
			from, err := units.ParseDistanceUnit(resp.From)
			if err != nil {
				writeServiceError(w, logger, err)
				return
			}
			to, err := units.ParseDistanceUnit(resp.To)
			if err != nil {
				writeServiceError(w, logger, err)
				return
			}

			resp.Converted, err = units.ConvertDistance(value, from, to)
			if err != nil {
				writeServiceError(w, logger, err)
				return
			}
			resp.From, resp.To = string(from), string(to)
			resp.Formatted = units.FormatDistance(resp.Converted, to, units.DefaultDistancePrecision)
		case "volume":
			from, err := units.ParseVolumeUnit(resp.From)
			if err != nil {
				writeServiceError(w, logger, err)
				return
			}
			to, err := units.ParseVolumeUnit(resp.To)
			if err != nil {
				writeServiceError(w, logger, err)
				return
			}

			resp.Converted, err = units.ConvertVolume(value, from, to)
			if err != nil {
				writeServiceError(w, logger, err)
				return
			}
			resp.From, resp.To = string(from), string(to)
			resp.Formatted = units.FormatVolume(resp.Converted, to, units.DefaultVolumePrecision)
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "kind must be distance or volume", nil)
			return
		}

		resp.Rounded = utils.RoundWithTwoDecimalPlace(resp.Converted)
		writeJSON(w, logger, http.StatusOK, resp)
	})
}

// FuelEfficiency formats distance per volume. Unknown units yield "N/A".
func FuelEfficiency() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		query := r.URL.Query()

		distance, ok := parseFloatParam(r, "distance")
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "distance must be a number", nil)
			return
		}
		volume, ok := parseFloatParam(r, "volume")
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "volume must be a number", nil)
			return
		}

		distanceUnit := units.Kilometers
		if raw := query.Get("distance_unit"); raw != "" {
			distanceUnit = units.DistanceUnit(raw)
			if parsed, err := units.ParseDistanceUnit(raw); err == nil {
				distanceUnit = parsed
			}
		}
		volumeUnit := units.Liters
		if raw := query.Get("volume_unit"); raw != "" {
			volumeUnit = units.VolumeUnit(raw)
			if parsed, err := units.ParseVolumeUnit(raw); err == nil {
				volumeUnit = parsed
			}
		}

		writeJSON(w, logger, http.StatusOK, EfficiencyResponse{
			Distance:     distance,
			Volume:       volume,
			DistanceUnit: string(distanceUnit),
			VolumeUnit:   string(volumeUnit),
			Efficiency:   units.FormatFuelEfficiency(distance, volume, distanceUnit, volumeUnit),
		})
	})
}
