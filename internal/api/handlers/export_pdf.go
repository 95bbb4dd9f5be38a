package handlers

import (
	"bytes"
	"encoding/base64"
	"errors"
	"net/http"
	"scenic-seat-service/internal/adapters/report"
	"scenic-seat-service/internal/api/dto"
	"scenic-seat-service/internal/platform/logging"
	"scenic-seat-service/internal/platform/validation"
	"strings"
	"time"
)

const reportFilename = "scenic_seat_recommendation.pdf"

type ReportHandler struct {
	// Defaults to time.Now.
	Now func() time.Time
}

// ExportPDF renders a previously returned recommendation as a downloadable PDF.
func (h *ReportHandler) ExportPDF(w http.ResponseWriter, r *http.Request) {
	log := logging.Ctx(r.Context())

	var req dto.ExportPdfRequest
	if err := decodeJSON(w, r, &req); err != nil {
		WriteError(w, r, http.StatusBadRequest, CodeValidation, "invalid json body: "+err.Error())
		return
	}
	if err := validation.Struct(req); err != nil {
		WriteError(w, r, http.StatusBadRequest, CodeValidation, err.Error())
		return
	}

	mapPNG, err := decodeMapImage(req.MapPNGBase64)
	if err != nil {
		WriteError(w, r, http.StatusBadRequest, CodeValidation, "map_png_base64 is not valid base64")
		return
	}

	now := time.Now
	if h.Now != nil {
		now = h.Now
	}

	var buf bytes.Buffer
	if err := report.Render(&buf, toSummary(req.Recommendation), mapPNG, now()); err != nil {
		if errors.Is(err, report.ErrInvalidImage) {
			WriteError(w, r, http.StatusBadRequest, CodeValidation, "map_png_base64 is not a PNG image")
			return
		}
		log.Error().Err(err).Msg("pdf render failed")
		WriteError(w, r, http.StatusInternalServerError, CodeInternal, "failed to generate PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+reportFilename+`"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Warn().Err(err).Msg("write pdf failed")
	}
}

// decodeMapImage accepts plain base64 or a data URL; empty input means no map.
func decodeMapImage(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if strings.HasPrefix(s, "data:") {
		if i := strings.IndexByte(s, ','); i >= 0 {
			s = s[i+1:]
		}
	}
	return base64.StdEncoding.DecodeString(s)
}

func toSummary(rec dto.RecommendationResponse) report.Summary {
	return report.Summary{
		Side:                     rec.Side,
		Confidence:               rec.Confidence,
		BearingDeg:               rec.BearingDeg,
		SunAzimuthDeg:            rec.SunAzimuthDeg,
		RelativeAngleDeg:         rec.RelativeAngleDeg,
		GoldenHour:               rec.GoldenHour,
		Stability:                rec.Stability,
		Notes:                    rec.Notes,
		CivilDawn:                rec.PhaseTimes.CivilDawn,
		Sunrise:                  rec.PhaseTimes.Sunrise,
		Sunset:                   rec.PhaseTimes.Sunset,
		CivilDusk:                rec.PhaseTimes.CivilDusk,
		MidpointLat:              rec.Midpoint.Lat,
		MidpointLon:              rec.Midpoint.Lon,
		MidpointSunAzimuthDeg:    rec.Midpoint.SunAzimuthDeg,
		MidpointRelativeAngleDeg: rec.Midpoint.RelativeAngleDeg,
	}
}
