package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/pedrogillet1/koda-api/internal/adapter"
	"github.com/pedrogillet1/koda-api/internal/api"
	"github.com/pedrogillet1/koda-api/internal/marker"
	"github.com/pedrogillet1/koda-api/internal/metrics"
	"github.com/pedrogillet1/koda-api/pkg/logger_i"
)

var logPH *logger_i.Logger

func decodeParseRequest(w http.ResponseWriter, r *http.Request) (api.ParseRequest, *marker.Parser, bool) {
	var requestData api.ParseRequest
	defer func(Body io.ReadCloser) {
		if err := Body.Close(); err != nil {
			logPH.Error("Couldn't close the parse request reader :", err)
		}
	}(r.Body)

	if err := json.NewDecoder(r.Body).Decode(&requestData); err != nil || requestData.Text == "" {
		logPH.Warn("Bad parse request", "error:", err)
		WriteErrorResponse(w, http.StatusBadRequest, "", "text is required")
		return requestData, nil, false
	}

	dialect, err := marker.DialectByName(requestData.Dialect)
	if err != nil {
		logPH.Warn("Unknown dialect requested", "dialect", requestData.Dialect)
		WriteErrorResponse(w, http.StatusBadRequest, "", err.Error())
		return requestData, nil, false
	}

	return requestData, marker.NewParser(dialect), true
}

// ParseHandler godoc
// @Summary      Parse marker text
// @Description  Synchronously segments a text buffer into plain-text runs and decoded markers.
// @Tags         Markers
// @Accept       json
// @Produce      json
// @Param        request  body      api.ParseRequest   true  "Text and optional dialect"
// @Success      200      {object}  api.ParseResponse  "Ordered segments plus per-kind counts"
// @Failure      400      {object}  api.JobResponse    "Missing text or unknown dialect"
// @Router       /parse [post]
func ParseHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		logPH.Warn("Invalid Context by request ", r.RemoteAddr)
		return
	}

	requestData, parser, ok := decodeParseRequest(w, r)
	if !ok {
		return
	}

	start := time.Now()
	segments := parser.Parse(requestData.Text)
	metrics.CaptureParseDuration(time.Since(start))
	countSegmentMetrics(segments)

	writeJsonResponse(w, http.StatusOK, api.ParseResponse{
		Segments: adapter.ToAPISegments(segments),
		Counts:   adapter.ToMarkerCounts(parser.CountMarkers(requestData.Text)),
	})
}

// StripHandler godoc
// @Summary      Strip markers from text
// @Description  Renders marker text to its plain-text copy/paste form.
// @Tags         Markers
// @Accept       json
// @Produce      json
// @Param        request  body      api.ParseRequest   true  "Text and optional dialect"
// @Success      200      {object}  api.StripResponse  "Plain text"
// @Failure      400      {object}  api.JobResponse    "Missing text or unknown dialect"
// @Router       /strip [post]
func StripHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		logPH.Warn("Invalid Context by request ", r.RemoteAddr)
		return
	}

	requestData, parser, ok := decodeParseRequest(w, r)
	if !ok {
		return
	}

	writeJsonResponse(w, http.StatusOK, api.StripResponse{
		Text: parser.StripMarkers(requestData.Text),
	})
}
