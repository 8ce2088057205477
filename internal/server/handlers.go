package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/tartampluch/go-lifeclock/internal/config"
	"github.com/tartampluch/go-lifeclock/internal/dateutil"
	"github.com/tartampluch/go-lifeclock/internal/engine"
	"github.com/tartampluch/go-lifeclock/internal/feed"
	"github.com/tartampluch/go-lifeclock/internal/web"
)

// agePayload is the wire shape of one breakdown. Exactly one of TurningAge
// and the UntilNextBirthday/NextBirthdayDate pair is present, mirroring the
// engine's branch exclusivity with nulls.
type agePayload struct {
	Birthday          string            `json:"birthday"`
	CalculatedAt      string            `json:"calculatedAt"`
	IsBirthday        bool              `json:"isBirthday"`
	TurningAge        *int              `json:"turningAge"`
	SinceBirth        engine.Span       `json:"sinceBirth"`
	UntilNextBirthday *countdownPayload `json:"untilNextBirthday"`
	NextBirthdayDate  *string           `json:"nextBirthdayDate"`
}

type countdownPayload struct {
	Components engine.Countdown       `json:"components"`
	Totals     engine.CountdownTotals `json:"totals"`
}

type errorPayload struct {
	Error string `json:"error"`
}

func toPayload(res engine.Result) agePayload {
	p := agePayload{
		Birthday:     dateutil.Format(res.Birthday),
		CalculatedAt: res.CalculatedAt.Format(time.RFC3339),
		IsBirthday:   res.IsBirthday,
		SinceBirth:   res.SinceBirth,
	}
	if res.IsBirthday {
		age := res.TurningAge
		p.TurningAge = &age
		return p
	}
	date := dateutil.Format(res.Next.Date)
	p.UntilNextBirthday = &countdownPayload{
		Components: res.Next.Countdown,
		Totals:     res.Next.Totals,
	}
	p.NextBirthdayDate = &date
	return p
}

// birthFromRequest validates the birthday query parameter. A non-empty
// message means the request is rejected; each failure mode keeps its own
// message so callers can tell what to fix.
func (s *Server) birthFromRequest(r *http.Request) (time.Time, string) {
	raw := r.URL.Query().Get(config.QueryBirthday)
	if raw == "" {
		return time.Time{}, config.MsgInputMissing
	}

	birth, err := dateutil.Parse(raw, time.Local)
	switch {
	case err == nil:
	case errors.Is(err, dateutil.ErrCalendar):
		return time.Time{}, config.MsgInputCalendar
	default:
		return time.Time{}, config.MsgInputShape
	}

	if birth.After(s.clock.Now()) {
		return time.Time{}, config.MsgInputFuture
	}
	return birth, ""
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set(config.HeaderContentType, config.MimeJSON)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error(config.ErrWriteResp,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyError, err,
		)
	}
}

func writeInputError(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorPayload{Error: msg})
}

// handleIndex serves the embedded browser page.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set(config.HeaderContentType, config.MimeTextHTML)
	_, _ = w.Write(web.Index())
}

// handleAge is the JSON breakdown endpoint.
func (s *Server) handleAge(w http.ResponseWriter, r *http.Request) {
	birth, msg := s.birthFromRequest(r)
	if msg != "" {
		writeInputError(w, msg)
		return
	}

	res := engine.Compute(birth, s.clock.Now())
	writeJSON(w, http.StatusOK, toPayload(res))
}

// handleReport renders the plain-text report in the requested language.
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	birth, msg := s.birthFromRequest(r)
	if msg != "" {
		writeInputError(w, msg)
		return
	}

	lang := r.URL.Query().Get(config.QueryLang)
	renderer, ok := s.renderers[lang]
	if !ok {
		renderer = s.renderers[config.DefaultLanguage]
	}

	res := engine.Compute(birth, s.clock.Now())

	// Render into a buffer first so a renderer failure can still produce a
	// clean 500 instead of a torn body.
	var buf bytes.Buffer
	if err := renderer.Render(&buf, res); err != nil {
		slog.Error(config.ErrRenderReport,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyError, err,
		)
		http.Error(w, config.MsgInternalErr, http.StatusInternalServerError)
		return
	}

	w.Header().Set(config.HeaderContentType, config.MimeTextPlain)
	_, _ = w.Write(buf.Bytes())
}

// handleCalendar returns the subscribable iCalendar feed for a birthday.
func (s *Server) handleCalendar(w http.ResponseWriter, r *http.Request) {
	birth, msg := s.birthFromRequest(r)
	if msg != "" {
		writeInputError(w, msg)
		return
	}

	data, err := feed.Build(birth, s.clock.Now())
	if err != nil {
		slog.Error(config.ErrICalEncode,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyError, err,
		)
		http.Error(w, config.MsgInternalErr, http.StatusInternalServerError)
		return
	}

	w.Header().Set(config.HeaderContentType, config.MimeTextCalendar)
	_, _ = w.Write(data)
}

// handleHealth is the liveness probe.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
