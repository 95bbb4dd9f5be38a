package handlers

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"scenic-seat-service/internal/api/dto"
	"scenic-seat-service/internal/domain"
	"scenic-seat-service/internal/platform/logging"
	"scenic-seat-service/internal/platform/metrics"
	"scenic-seat-service/internal/platform/validation"
	"scenic-seat-service/internal/ports"
	"scenic-seat-service/internal/services"
	"time"
)

// Accepted local_datetime layouts; the offset-less ones are read in the origin zone.
var localLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

type RecommendHandler struct {
	Cities    ports.CityRepository
	Ephemeris ports.SolarEphemeris
	Metrics   *metrics.Metrics
}

// Recommend validates the flight, resolves both cities and returns the window-side recommendation.
func (h *RecommendHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logging.Ctx(ctx)

	var req dto.RecommendationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.fail(w, r, http.StatusBadRequest, CodeValidation, "invalid json body: "+err.Error())
		return
	}
	if err := validation.Struct(req); err != nil {
		h.fail(w, r, http.StatusBadRequest, CodeValidation, err.Error())
		return
	}

	for _, end := range []struct{ role, name string }{
		{"origin", req.Origin.Name},
		{"destination", req.Destination.Name},
	} {
		if _, err := h.Cities.FindCity(ctx, end.name); err != nil {
			if errors.Is(err, domain.ErrCityNotFound) {
				h.fail(w, r, http.StatusBadRequest, CodeGeoError,
					fmt.Sprintf("%s city %q not found in database", end.role, end.name))
				return
			}
			log.Error().Err(err).Str("city", end.name).Msg("city lookup failed")
			h.fail(w, r, http.StatusInternalServerError, CodeInternal, "internal server error")
			return
		}
	}

	loc, err := time.LoadLocation(req.Origin.TZ)
	if err != nil {
		h.fail(w, r, http.StatusBadRequest, CodeValidation, "origin.tz must be an IANA timezone")
		return
	}

	departAt, err := parseLocalDatetime(req.LocalDatetime, loc)
	if err != nil {
		h.fail(w, r, http.StatusBadRequest, CodeValidation, err.Error())
		return
	}

	svcReq := services.RecommendRequest{
		Origin:      domain.GeoPoint{Lat: *req.Origin.Lat, Lon: *req.Origin.Lon}.Normalized(),
		Destination: domain.GeoPoint{Lat: *req.Destination.Lat, Lon: *req.Destination.Lon}.Normalized(),
		DepartAt:    departAt,
		Interest:    domain.Interest(req.Interest),
	}

	rec, err := services.Recommend(ctx, svcReq, h.Ephemeris)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSunUndefined):
			log.Info().Err(err).Str("origin", req.Origin.Name).Msg("sun phases undefined")
			h.fail(w, r, http.StatusBadRequest, CodePolarDay,
				"sun position or phases are undefined at this location and date (polar day or night)")
		case errors.Is(err, domain.ErrEphemerisUnavailable):
			log.Warn().Err(err).Str("origin", req.Origin.Name).Msg("sun position unavailable")
			h.fail(w, r, http.StatusBadRequest, CodeUndefinedSun, "sun position could not be computed")
		default:
			log.Error().Err(err).Msg("recommend failed")
			h.fail(w, r, http.StatusInternalServerError, CodeInternal, "internal server error")
		}
		return
	}

	if h.Metrics != nil {
		h.Metrics.ObserveRecommendation(string(rec.Departure.Side), string(rec.Stability), rec.MidpointSunFallback)
	}

	log.Info().
		Str("origin", req.Origin.Name).
		Str("destination", req.Destination.Name).
		Str("side", string(rec.Departure.Side)).
		Str("stability", string(rec.Stability)).
		Msg("recommendation built")

	writeJSON(w, r, http.StatusOK, toRecommendationResponse(rec))
}

func (h *RecommendHandler) fail(w http.ResponseWriter, r *http.Request, status int, code, msg string) {
	if h.Metrics != nil {
		h.Metrics.RecommendationFails.WithLabelValues(code).Inc()
	}
	WriteError(w, r, status, code, msg)
}

func parseLocalDatetime(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.In(loc), nil
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("local_datetime %q is not an ISO 8601 date-time", s)
}

func toRecommendationResponse(rec *domain.Recommendation) dto.RecommendationResponse {
	midRel := round1(rec.MidpointRelativeAngleDeg)
	return dto.RecommendationResponse{
		Side:             string(rec.Departure.Side),
		Confidence:       string(rec.Departure.Confidence),
		BearingDeg:       round1(rec.BearingDeg),
		SunAzimuthDeg:    round1(rec.SunAzimuthDeg),
		RelativeAngleDeg: round1(rec.Departure.RelativeAngle),
		GoldenHour:       rec.GoldenHour,
		PhaseTimes: dto.PhaseTimesResponse{
			CivilDawn: formatPhase(rec.PhaseTimes.CivilDawn),
			Sunrise:   formatPhase(rec.PhaseTimes.Sunrise),
			Sunset:    formatPhase(rec.PhaseTimes.Sunset),
			CivilDusk: formatPhase(rec.PhaseTimes.CivilDusk),
		},
		Midpoint: dto.MidpointResponse{
			Lat:              round1(rec.Midpoint.Lat),
			Lon:              round1(rec.Midpoint.Lon),
			SunAzimuthDeg:    round1(rec.MidpointSunAzimuthDeg),
			RelativeAngleDeg: &midRel,
		},
		Stability: string(rec.Stability),
		Notes:     rec.Notes,
	}
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

func formatPhase(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}
