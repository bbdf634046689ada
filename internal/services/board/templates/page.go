package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/capabilityboard/internal/services/board/i18n"
	"github.com/louisbranch/capabilityboard/internal/services/board/routepath"
)

// EmailInputID is the DOM id of the email field.
const EmailInputID = "email"

// Page renders the full board document.
func Page(view PageView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		lang := strings.TrimSpace(view.Lang)
		if lang == "" {
			lang = "en"
		}
		title := T(view.Loc, i18n.KeyTitle)

		h.raw("<!DOCTYPE html><html")
		h.attr("lang", lang)
		h.raw(`><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		h.text(title)
		h.raw(`</title><link rel="stylesheet"`)
		h.attr("href", routepath.StaticStylesheet)
		h.raw(`></head><body><header class="page-header"><h1>`)
		h.text(title)
		h.raw(`</h1><p>`)
		h.text(T(view.Loc, i18n.KeyIntro))
		h.raw(`</p></header><main class="container">`)

		h.raw(`<section class="signup"><form class="email-form" method="get"`)
		h.attr("action", routepath.Root)
		h.raw(`><label`)
		h.attr("for", EmailInputID)
		h.raw(">")
		h.text(T(view.Loc, i18n.KeyEmailLabel))
		h.raw(`</label><input type="email" autocomplete="email"`)
		h.attr("id", EmailInputID)
		h.attr("name", routepath.EmailParam)
		h.attr("value", view.Email)
		h.attr("placeholder", T(view.Loc, i18n.KeyEmailPlaceholder))
		h.attr("data-cards-url", routepath.Cards)
		h.raw(`><noscript><button type="submit" class="btn btn--ghost">`)
		h.text(T(view.Loc, i18n.KeyRefresh))
		h.raw(`</button></noscript></form></section>`)

		h.component(ctx, Banner(view.Banner))

		h.raw(`<section class="capabilities"><h3>`)
		h.text(T(view.Loc, i18n.KeyHeading))
		h.raw(`</h3>`)
		list := view.List
		list.Email = view.Email
		h.component(ctx, ListRegion(view.Loc, list))
		h.raw(`</section></main><script defer`)
		h.attr("src", routepath.StaticScript)
		h.attr("data-ui-errors-url", routepath.UIErrors)
		h.raw(`></script></body></html>`)
		return h.err
	})
}

// Fragment renders a partial update: the banner out-of-band followed by
// the list content for the list region.
func Fragment(loc Localizer, list ListView, banner BannerView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.component(ctx, BannerOOB(banner))
		h.component(ctx, CapabilityList(loc, list))
		return h.err
	})
}
