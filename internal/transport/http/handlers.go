package httptransport

import (
	"net/http"

	"sitedoctor/internal/doctor"
	"sitedoctor/internal/flash"
	"sitedoctor/pkg/platform/httputil"
)

// noticePayload is the wire form of an advisory notice.
type noticePayload struct {
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Detail   string `json:"detail,omitempty"`
}

func toPayload(notices []doctor.Notice) []noticePayload {
	out := make([]noticePayload, 0, len(notices))
	for _, n := range notices {
		out = append(out, noticePayload{
			Severity: n.Severity.String(),
			Message:  n.Message,
			Detail:   n.Detail,
		})
	}
	return out
}

// pageResponse is the admin page envelope. Real page rendering lives in
// the CMS frontend; this layer serves the data, notices included.
type pageResponse struct {
	Route   string          `json:"route"`
	Notices []noticePayload `json:"notices"`
}

// handlePage serves an admin page envelope, draining any advisory
// notices flashed for the session.
func (h *Handler) handlePage(route string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var notices []doctor.Notice
		if sid := flash.SessionFromContext(ctx); sid != "" {
			popped, err := h.flash.Pop(ctx, sid)
			if err != nil {
				// Advisory data must never break a page; log and move on.
				h.logger.ErrorContext(ctx, "failed to pop flashed notices",
					"request_id", GetRequestID(ctx),
					"route", route,
					"error", err,
				)
			} else {
				notices = popped
			}
		}

		httputil.WriteJSON(w, http.StatusOK, pageResponse{
			Route:   route,
			Notices: toPayload(notices),
		})
	}
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
