package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// MessageID is the DOM id of the banner region.
const MessageID = "message"

// Banner renders the message region. Hidden banners keep the element so
// later swaps have a target.
func Banner(view BannerView) templ.Component {
	return banner(view, false)
}

// BannerOOB renders the message region as an out-of-band swap.
func BannerOOB(view BannerView) templ.Component {
	return banner(view, true)
}

func banner(view BannerView, oob bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		class := "message hidden"
		if view.Visible() {
			class = "message " + view.Kind
		}
		h.raw("<div")
		h.attr("id", MessageID)
		h.attr("class", class)
		h.attr("role", "status")
		h.attr("aria-live", "polite")
		if view.Visible() {
			h.attr("data-kind", view.Kind)
			if view.HideAfterMS > 0 {
				h.attr("data-hide-after-ms", strconv.FormatInt(view.HideAfterMS, 10))
			}
		}
		if oob {
			h.attr("hx-swap-oob", "true")
		}
		h.raw(">")
		h.text(view.Text)
		h.raw("</div>")
		return h.err
	})
}
