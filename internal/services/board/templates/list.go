package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/capabilityboard/internal/services/board/i18n"
	"github.com/louisbranch/capabilityboard/internal/services/board/routepath"
)

// ListID is the DOM id of the capabilities list region.
const ListID = "capabilities-list"

// ListRegion renders the list container with its current content.
func ListRegion(loc Localizer, view ListView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw("<div")
		h.attr("id", ListID)
		h.attr("class", "capabilities-list")
		h.raw(">")
		h.component(ctx, CapabilityList(loc, view))
		h.raw("</div>")
		return h.err
	})
}

// CapabilityList renders the cards in order, or the load failure text.
func CapabilityList(loc Localizer, view ListView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		if view.Failed {
			h.raw(`<p class="load-error">`)
			h.text(T(loc, i18n.KeyLoadFailedList))
			h.raw("</p>")
			return h.err
		}
		for _, card := range view.Cards {
			h.component(ctx, Card(loc, card, view.Email))
		}
		return h.err
	})
}

// Card renders one capability card.
func Card(loc Localizer, card CardView, email string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw(`<div class="capability-card"`)
		h.attr("data-capability", card.Name)
		h.raw(`><div class="card-header"><h4>`)
		h.text(card.Name)
		h.raw(`</h4><div class="card-actions">`)

		registerLabel := T(loc, i18n.KeyActionRegister)
		if card.Registered {
			registerLabel = T(loc, i18n.KeyActionRegistered)
		}
		writeActionForm(h, actionForm{
			path:       card.RegisterPath,
			method:     "POST",
			action:     routepath.ActionRegisterSegment,
			capability: card.Name,
			email:      email,
			class:      "btn btn--primary",
			label:      registerLabel,
			disabled:   card.Registered,
		})
		writeActionForm(h, actionForm{
			path:       card.UnregisterPath,
			method:     "DELETE",
			action:     routepath.ActionUnregisterSegment,
			capability: card.Name,
			email:      email,
			class:      "btn btn--ghost",
			label:      T(loc, i18n.KeyActionUnregister),
			disabled:   !card.Registered,
		})
		h.raw(`</div></div>`)

		h.raw(`<p class="description">`)
		h.text(card.Description)
		h.raw(`</p><div class="meta">`)
		writeMeta(h, T(loc, i18n.KeyCardPracticeArea), card.PracticeArea)
		writeMeta(h, T(loc, i18n.KeyCardCapacity), T(loc, i18n.KeyCardCapacityValue, formatCapacity(card.Capacity)))
		writeMeta(h, T(loc, i18n.KeyCardRegistered), T(loc, i18n.KeyCardRegisteredValue, card.ConsultantCount()))
		h.raw(`</div>`)

		h.raw(`<div class="card-grid"><div><h5>`)
		h.text(T(loc, i18n.KeyCardSkillLevels))
		h.raw(`</h5>`)
		writeChips(h, card.SkillLevels, "chip chip--level", T(loc, i18n.KeyCardSkillLevelsEmpty))
		h.raw(`</div><div><h5>`)
		h.text(T(loc, i18n.KeyCardCertifications))
		h.raw(`</h5>`)
		writeBullets(h, card.Certifications, T(loc, i18n.KeyCardCertsEmpty))
		h.raw(`</div></div>`)

		h.raw(`<div class="card-grid"><div><h5>`)
		h.text(T(loc, i18n.KeyCardVerticals))
		h.raw(`</h5>`)
		writeChips(h, card.IndustryVerticals, "chip chip--tag", T(loc, i18n.KeyCardVerticalsEmpty))
		h.raw(`</div><div><h5>`)
		h.text(T(loc, i18n.KeyCardConsultants))
		h.raw(`</h5>`)
		writeConsultants(h, card.Consultants, T(loc, i18n.KeyCardYou), T(loc, i18n.KeyCardConsultantsEmpty))
		h.raw(`</div></div></div>`)
		return h.err
	})
}

type actionForm struct {
	path       string
	method     string
	action     string
	capability string
	email      string
	class      string
	label      string
	disabled   bool
}

// writeActionForm renders a plain POST form so the board works without
// script; board.js submits it with data-method instead.
func writeActionForm(h *htmlWriter, f actionForm) {
	h.raw(`<form class="card-action" method="post"`)
	h.attr("action", f.path)
	h.attr("data-method", f.method)
	h.raw(`><input type="hidden"`)
	h.attr("name", routepath.EmailParam)
	h.attr("value", f.email)
	h.raw(`><button type="submit"`)
	h.attr("class", f.class)
	h.attr("data-action", f.action)
	h.attr("data-capability", f.capability)
	h.flag("disabled", f.disabled)
	h.raw(">")
	h.text(f.label)
	h.raw("</button></form>")
}

func writeMeta(h *htmlWriter, label string, value string) {
	h.raw(`<div><span class="meta-label">`)
	h.text(label)
	h.raw(`</span><span class="meta-value">`)
	h.text(value)
	h.raw(`</span></div>`)
}

func writeChips(h *htmlWriter, values []string, class string, empty string) {
	if len(values) == 0 {
		writeMuted(h, empty, false)
		return
	}
	h.raw(`<div class="chips">`)
	for _, value := range values {
		h.raw("<span")
		h.attr("class", class)
		h.raw(">")
		h.text(value)
		h.raw("</span>")
	}
	h.raw("</div>")
}

func writeBullets(h *htmlWriter, values []string, empty string) {
	if len(values) == 0 {
		writeMuted(h, empty, false)
		return
	}
	h.raw(`<ul class="bullets">`)
	for _, value := range values {
		h.raw("<li>")
		h.text(value)
		h.raw("</li>")
	}
	h.raw("</ul>")
}

func writeConsultants(h *htmlWriter, consultants []ConsultantView, youLabel string, empty string) {
	if len(consultants) == 0 {
		writeMuted(h, empty, true)
		return
	}
	h.raw(`<ul class="consultants-list">`)
	for _, consultant := range consultants {
		h.raw("<li>")
		h.text(consultant.Email)
		if consultant.IsYou {
			h.raw(` <span class="you">`)
			h.text(youLabel)
			h.raw("</span>")
		}
		h.raw("</li>")
	}
	h.raw("</ul>")
}

func writeMuted(h *htmlWriter, text string, emphasis bool) {
	h.raw(`<p class="muted">`)
	if emphasis {
		h.raw("<em>")
	}
	h.text(text)
	if emphasis {
		h.raw("</em>")
	}
	h.raw("</p>")
}
