package board

import (
	"context"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/a-h/templ"
	"github.com/louisbranch/capabilityboard/internal/services/board/app"
	"github.com/louisbranch/capabilityboard/internal/services/board/diagnostics"
	"github.com/louisbranch/capabilityboard/internal/services/board/gateway"
	"github.com/louisbranch/capabilityboard/internal/services/board/i18n"
	"github.com/louisbranch/capabilityboard/internal/services/board/notice"
	apperrors "github.com/louisbranch/capabilityboard/internal/services/board/platform/errors"
	"github.com/louisbranch/capabilityboard/internal/services/board/platform/httpx"
	"github.com/louisbranch/capabilityboard/internal/services/board/platform/requestmeta"
	"github.com/louisbranch/capabilityboard/internal/services/board/routepath"
	"github.com/louisbranch/capabilityboard/internal/services/board/templates"
)

// maxUIErrorRunes bounds reported browser error text.
const maxUIErrorRunes = 500

type handlers struct {
	service  *app.Service
	recorder diagnostics.Recorder
	limiter  *diagnostics.Limiter
	policy   requestmeta.SchemePolicy
}

func (h *handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	loc, lang := i18n.ResolveLocalizer(w, r)
	ctx := requestContext(r)
	email := r.URL.Query().Get(routepath.EmailParam)

	banner := &notice.Banner{}
	if flash, ok := notice.ReadFlash(w, r, h.policy); ok {
		banner.Notify(flash)
	}
	list := templates.ListView{Failed: true}
	if err := h.service.Load(ctx, banner); err == nil {
		list = h.service.List(email)
	}

	writeComponent(w, r, http.StatusOK, templates.Page(templates.PageView{
		Lang:   lang,
		Loc:    loc,
		Email:  email,
		Banner: bannerView(loc, banner),
		List:   list,
	}))
}

// handleCards re-renders the list for a new email from the cached
// snapshot without calling the capability API.
func (h *handlers) handleCards(w http.ResponseWriter, r *http.Request) {
	loc, _ := i18n.ResolveLocalizer(w, r)
	email := r.URL.Query().Get(routepath.EmailParam)
	cards, ok := h.service.Render(email)
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeComponent(w, r, http.StatusOK, templates.CapabilityList(loc, templates.ListView{Cards: cards, Email: email}))
}

func (h *handlers) handleAction(w http.ResponseWriter, r *http.Request) {
	loc, _ := i18n.ResolveLocalizer(w, r)
	action, ok := gateway.ParseAction(r.PathValue("action"))
	if !ok {
		writeAppError(w, loc, apperrors.EK(apperrors.KindNotFound, i18n.KeyActionUnknown, "unknown action"))
		return
	}
	if r.Method == http.MethodDelete && action != gateway.ActionUnregister {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	if requestmeta.CrossOrigin(r, h.policy) {
		writeAppError(w, loc, apperrors.EK(apperrors.KindForbidden, i18n.KeyActionCrossOrigin, "cross-origin request"))
		return
	}
	name := r.PathValue("capability")
	if name == "" {
		writeAppError(w, loc, apperrors.E(apperrors.KindInvalidInput, "capability is required"))
		return
	}

	email := strings.TrimSpace(r.FormValue(routepath.EmailParam))
	banner := &notice.Banner{}
	result := h.service.Submit(requestContext(r), name, action, email, banner)

	if !httpx.IsHTMXRequest(r) {
		if n, ok := banner.Current(); ok {
			notice.WriteFlash(w, r, n, h.policy)
		}
		httpx.WriteRedirect(w, r, routepath.WithEmail(routepath.Root, email))
		return
	}

	list := h.service.List(email)
	if result.LoadErr != nil {
		list = templates.ListView{Failed: true}
	}
	writeComponent(w, r, http.StatusOK, templates.Fragment(loc, list, bannerView(loc, banner)))
}

// handleUIError accepts a browser error report and answers with the
// banner that surfaces it.
func (h *handlers) handleUIError(w http.ResponseWriter, r *http.Request) {
	loc, _ := i18n.ResolveLocalizer(w, r)
	if requestmeta.CrossOrigin(r, h.policy) {
		writeAppError(w, loc, apperrors.EK(apperrors.KindForbidden, i18n.KeyActionCrossOrigin, "cross-origin request"))
		return
	}
	if !h.limiter.Allow() {
		writeAppError(w, loc, apperrors.EK(apperrors.KindTooManyRequests, i18n.KeyUIErrorRateLimited, "too many error reports"))
		return
	}

	message := truncateRunes(strings.TrimSpace(r.FormValue(routepath.MessageParam)), maxUIErrorRunes)
	if message == "" {
		message = loc.Sprintf(i18n.KeyUIErrorUnknown)
	}
	text := loc.Sprintf(i18n.KeyUIError, message)
	h.recorder.Record(requestContext(r), diagnostics.KindUIError, text)
	writeComponent(w, r, http.StatusOK, templates.BannerOOB(noticeView(loc, notice.ErrorText(text))))
}

func (h *handlers) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

// handlePanic surfaces a recovered handler panic as a UI error banner.
func (h *handlers) handlePanic(w http.ResponseWriter, r *http.Request, recovered any) {
	loc, lang := i18n.ResolveLocalizer(w, r)
	message := httpx.PanicMessage(recovered)
	if message == "" {
		message = loc.Sprintf(i18n.KeyUIErrorUnknown)
	}
	text := loc.Sprintf(i18n.KeyUIError, message)
	h.recorder.Record(requestContext(r), diagnostics.KindPanic, text)

	view := noticeView(loc, notice.ErrorText(text))
	if httpx.IsHTMXRequest(r) {
		writeComponent(w, r, http.StatusInternalServerError, templates.BannerOOB(view))
		return
	}
	email := ""
	if r != nil && r.URL != nil {
		email = r.URL.Query().Get(routepath.EmailParam)
	}
	writeComponent(w, r, http.StatusInternalServerError, templates.Page(templates.PageView{
		Lang:   lang,
		Loc:    loc,
		Email:  email,
		Banner: view,
		List:   h.service.List(email),
	}))
}

func requestContext(r *http.Request) context.Context {
	return diagnostics.WithRequestID(httpx.RequestContext(r), httpx.RequestIDFrom(r))
}

func writeComponent(w http.ResponseWriter, r *http.Request, status int, component templ.Component) {
	templ.Handler(component, templ.WithStatus(status)).ServeHTTP(w, r)
}

func writeAppError(w http.ResponseWriter, loc templates.Localizer, err error) {
	if key := apperrors.LocalizationKey(err); key != "" {
		err = apperrors.EK(apperrors.KindOf(err), key, templates.T(loc, key))
	}
	httpx.WriteError(w, err)
}

func bannerView(loc templates.Localizer, banner *notice.Banner) templates.BannerView {
	n, ok := banner.Current()
	if !ok {
		return templates.BannerView{}
	}
	return noticeView(loc, n)
}

func noticeView(loc templates.Localizer, n notice.Notice) templates.BannerView {
	text := n.Text
	if n.Key != "" {
		text = templates.T(loc, n.Key)
	}
	return templates.BannerView{
		Kind:        string(n.Kind),
		Text:        text,
		HideAfterMS: notice.AutoHide.Milliseconds(),
	}
}

func truncateRunes(value string, limit int) string {
	if utf8.RuneCountInString(value) <= limit {
		return value
	}
	runes := []rune(value)
	return string(runes[:limit])
}
