package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/pedrogillet1/koda-api/internal/adapter"
	"github.com/pedrogillet1/koda-api/internal/adapter/utils"
	"github.com/pedrogillet1/koda-api/internal/api"
	"github.com/pedrogillet1/koda-api/internal/config"
	"github.com/pedrogillet1/koda-api/internal/domain/sessionModel"
	"github.com/pedrogillet1/koda-api/internal/marker"
	"github.com/pedrogillet1/koda-api/internal/metrics"
	"github.com/pedrogillet1/koda-api/pkg/logger_i"
)

var logSH *logger_i.Logger

// CreateSessionHandler godoc
// @Summary      Create a streaming parse session
// @Description  Creates a streaming parse session whose held-back tail survives between chunk submissions.
// @Tags         Markers
// @Accept       json
// @Produce      json
// @Param        request  body      api.CreateSessionRequest  true  "Dialect and holdback window"
// @Success      201      {object}  api.SessionResponse       "Session id"
// @Failure      400      {object}  api.JobResponse           "Unknown dialect"
// @Router       /sessions [post]
func CreateSessionHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		logSH.Warn("Invalid Context by request ", r.RemoteAddr)
		return
	}

	var requestData api.CreateSessionRequest
	defer func(Body io.ReadCloser) {
		if err := Body.Close(); err != nil {
			logSH.Error("Couldn't close the session request reader :", err)
		}
	}(r.Body)
	// body is optional, defaults apply
	if err := json.NewDecoder(r.Body).Decode(&requestData); err != nil && err != io.EOF {
		logSH.Warn("Bad session request", "error:", err)
		WriteErrorResponse(w, http.StatusBadRequest, "", "Bad Request")
		return
	}

	dialect, err := marker.DialectByName(requestData.Dialect)
	if err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "", err.Error())
		return
	}

	holdback := requestData.HoldbackChars
	if holdback <= 0 {
		holdback = config.HoldbackChars
	}

	state := sessionModel.StreamState{
		Id:            utils.GetNewUUID(),
		Dialect:       dialect.Name,
		HoldbackChars: holdback,
		CreatedTime:   time.Now(),
	}
	if err := handlerInstance.service.SessionStore.SaveSession(r.Context(), state); err != nil {
		logSH.Error("Couldn't save session", "error", err)
		WriteErrorResponse(w, http.StatusInternalServerError, state.Id, "Storage error")
		return
	}

	logSH.Info("Created stream session", "sessionId", state.Id, "dialect", state.Dialect)
	writeJsonResponse(w, http.StatusCreated, api.SessionResponse{Id: state.Id})
}

// SessionChunkHandler godoc
// @Summary      Feed a chunk to a session
// @Description  Appends one stream chunk and returns the segments that became safe to emit.
// @Tags         Markers
// @Accept       json
// @Produce      json
// @Param        id       path      string            true  "Session ID"
// @Param        request  body      api.ChunkRequest  true  "Chunk text"
// @Success      200      {object}  api.ChunkResponse "Newly flushed segments"
// @Failure      404      {object}  api.JobResponse   "Unknown or expired session"
// @Router       /sessions/{id}/chunks [post]
func SessionChunkHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		logSH.Warn("Invalid Context by request ", r.RemoteAddr)
		return
	}

	state, session, ok := loadStreamSession(w, r)
	if !ok {
		return
	}

	var requestData api.ChunkRequest
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(&requestData); err != nil {
		logSH.Warn("Bad chunk request", "sessionId", state.Id, "error:", err)
		WriteErrorResponse(w, http.StatusBadRequest, state.Id, "Bad Request")
		return
	}

	start := time.Now()
	segments := session.Feed(requestData.Text)
	metrics.CaptureParseDuration(time.Since(start))
	countSegmentMetrics(segments)
	metrics.AddHeldBackBytes(len(session.HeldBack()) - len(state.HeldBack))

	state.HeldBack = session.HeldBack()
	if err := handlerInstance.service.SessionStore.SaveSession(r.Context(), state); err != nil {
		logSH.Error("Couldn't save session", "sessionId", state.Id, "error", err)
		WriteErrorResponse(w, http.StatusInternalServerError, state.Id, "Storage error")
		return
	}

	writeJsonResponse(w, http.StatusOK, api.ChunkResponse{
		Segments:      adapter.ToAPISegments(segments),
		HeldBackChars: len(state.HeldBack),
	})
}

// SessionFlushHandler godoc
// @Summary      Flush and close a session
// @Description  Ends the stream, returning any held-back tail as a final text segment, and deletes the session.
// @Tags         Markers
// @Produce      json
// @Param        id   path      string             true  "Session ID"
// @Success      200  {object}  api.FlushResponse  "Final segments"
// @Failure      404  {object}  api.JobResponse    "Unknown or expired session"
// @Router       /sessions/{id}/flush [post]
func SessionFlushHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		logSH.Warn("Invalid Context by request ", r.RemoteAddr)
		return
	}

	state, session, ok := loadStreamSession(w, r)
	if !ok {
		return
	}

	segments := session.Flush()
	metrics.AddHeldBackBytes(-len(state.HeldBack))
	handlerInstance.service.SessionStore.DeleteSession(r.Context(), state.Id)

	logSH.Info("Flushed stream session", "sessionId", state.Id)
	writeJsonResponse(w, http.StatusOK, api.FlushResponse{
		Segments: adapter.ToAPISegments(segments),
	})
}

func loadStreamSession(w http.ResponseWriter, r *http.Request) (sessionModel.StreamState, *marker.StreamSession, bool) {
	idString := utils.GetChiURLParam(r, "id")
	if idString == "" || handlerInstance == nil {
		WriteErrorResponse(w, http.StatusNotFound, idString, "Session not found")
		return sessionModel.StreamState{}, nil, false
	}

	state, isFound := handlerInstance.service.SessionStore.GetSession(r.Context(), idString)
	if !isFound {
		WriteErrorResponse(w, http.StatusNotFound, idString, "Session not found")
		return sessionModel.StreamState{}, nil, false
	}

	dialect, err := marker.DialectByName(state.Dialect)
	if err != nil {
		// stored sessions always carry a known dialect, treat drift as gone
		logSH.Error("Session has unknown dialect", "sessionId", state.Id, "dialect", state.Dialect)
		WriteErrorResponse(w, http.StatusNotFound, idString, "Session not found")
		return sessionModel.StreamState{}, nil, false
	}

	session := marker.NewStreamSession(marker.NewParser(dialect), state.HoldbackChars)
	session.RestoreHeldBack(state.HeldBack)
	return state, session, true
}
