// Package app holds the capability board behavior behind the HTTP handlers.
package app

import (
	"context"
	"strings"

	"github.com/louisbranch/capabilityboard/internal/services/board/capability"
	"github.com/louisbranch/capabilityboard/internal/services/board/diagnostics"
	"github.com/louisbranch/capabilityboard/internal/services/board/gateway"
	"github.com/louisbranch/capabilityboard/internal/services/board/i18n"
	"github.com/louisbranch/capabilityboard/internal/services/board/notice"
	"github.com/louisbranch/capabilityboard/internal/services/board/routepath"
	"github.com/louisbranch/capabilityboard/internal/services/board/templates"
)

// Gateway is the capability API surface the board needs.
type Gateway interface {
	ListCapabilities(ctx context.Context) (capability.Set, error)
	Mutate(ctx context.Context, action gateway.Action, name, email string) (string, error)
}

// Service loads, renders, and mutates the capability board.
type Service struct {
	gateway  Gateway
	snapshot *capability.SnapshotHolder
	recorder diagnostics.Recorder
}

// Option configures a Service.
type Option func(*Service)

// WithRecorder sets where terminal failures are reported.
func WithRecorder(recorder diagnostics.Recorder) Option {
	return func(s *Service) {
		if recorder != nil {
			s.recorder = recorder
		}
	}
}

// NewService builds a board service over gw.
func NewService(gw Gateway, opts ...Option) *Service {
	s := &Service{
		gateway:  gw,
		snapshot: &capability.SnapshotHolder{},
		recorder: diagnostics.Discard{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Load fetches the capability set and replaces the snapshot. On failure the
// snapshot is left untouched and banner shows the load error.
func (s *Service) Load(ctx context.Context, banner *notice.Banner) error {
	set, err := s.gateway.ListCapabilities(ctx)
	if err != nil {
		s.recorder.Record(ctx, diagnostics.KindLoadFailed, "error fetching capabilities: "+err.Error())
		banner.Notify(notice.Error(i18n.KeyLoadFailedNotice))
		return err
	}
	s.snapshot.Replace(set)
	return nil
}

// Render builds card views for email from the last snapshot. ok is false
// when nothing has been loaded yet.
func (s *Service) Render(email string) ([]templates.CardView, bool) {
	set, ok := s.snapshot.Current()
	if !ok {
		return nil, false
	}
	return CardViews(set, email), true
}

// List returns the list region for email: the cards from the last
// snapshot, or the load failure when there is none.
func (s *Service) List(email string) templates.ListView {
	cards, ok := s.Render(email)
	if !ok {
		return templates.ListView{Failed: true, Email: email}
	}
	return templates.ListView{Cards: cards, Email: email}
}

// SubmitResult reports what Submit did.
type SubmitResult struct {
	// Sent is true when the mutation request was issued.
	Sent bool
	// MutationErr is the mutation failure, if any.
	MutationErr error
	// Reloaded is true when a successful mutation triggered a load.
	Reloaded bool
	// LoadErr is the reload failure, if any.
	LoadErr error
}

// Submit registers or unregisters email for the named capability. A
// blank email only produces a notice. A successful mutation reloads the
// set exactly once; a failed one never reloads.
func (s *Service) Submit(ctx context.Context, name string, action gateway.Action, email string, banner *notice.Banner) SubmitResult {
	email = strings.TrimSpace(email)
	if email == "" {
		banner.Notify(notice.Info(i18n.KeyEmailRequired))
		return SubmitResult{}
	}

	message, err := s.gateway.Mutate(ctx, action, name, email)
	if err != nil {
		banner.Notify(mutationFailure(action, err))
		s.recorder.Record(ctx, diagnostics.KindMutationFailed, "error updating registration: "+err.Error())
		return SubmitResult{Sent: true, MutationErr: err}
	}

	if message == "" {
		banner.Notify(notice.Notice{Kind: notice.KindSuccess, Key: i18n.KeyActionSuccessFallback})
	} else {
		banner.Notify(notice.Success(message))
	}
	loadErr := s.Load(ctx, banner)
	return SubmitResult{Sent: true, Reloaded: true, LoadErr: loadErr}
}

func mutationFailure(action gateway.Action, err error) notice.Notice {
	if statusErr, ok := gateway.AsStatusError(err); ok {
		if statusErr.Detail != "" {
			return notice.ErrorText(statusErr.Detail)
		}
		return notice.Error(i18n.KeyActionErrorFallback)
	}
	if action == gateway.ActionRegister {
		return notice.Error(i18n.KeyActionFailRegister)
	}
	return notice.Error(i18n.KeyActionFailUnregister)
}

// CardViews builds one card per capability in snapshot order.
func CardViews(set capability.Set, email string) []templates.CardView {
	normalized := capability.NormalizeEmail(email)
	entries := set.Entries()
	cards := make([]templates.CardView, 0, len(entries))
	for _, entry := range entries {
		details := entry.Details
		consultants := make([]templates.ConsultantView, 0, len(details.Consultants))
		registered := false
		for _, consultant := range details.Consultants {
			isYou := capability.IsConsultant(consultant, normalized)
			registered = registered || isYou
			consultants = append(consultants, templates.ConsultantView{Email: consultant, IsYou: isYou})
		}
		cards = append(cards, templates.CardView{
			Name:              entry.Name,
			Description:       details.Description,
			PracticeArea:      details.PracticeArea,
			Capacity:          details.Capacity,
			SkillLevels:       details.SkillLevels,
			Certifications:    details.Certifications,
			IndustryVerticals: details.IndustryVerticals,
			Consultants:       consultants,
			Registered:        registered,
			RegisterPath:      routepath.CapabilityAction(entry.Name, string(gateway.ActionRegister)),
			UnregisterPath:    routepath.CapabilityAction(entry.Name, string(gateway.ActionUnregister)),
		})
	}
	return cards
}
