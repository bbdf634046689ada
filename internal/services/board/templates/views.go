package templates

// ConsultantView is one consultant row on a card.
type ConsultantView struct {
	Email string
	IsYou bool
}

// CardView carries one capability card.
type CardView struct {
	Name              string
	Description       string
	PracticeArea      string
	Capacity          float64
	SkillLevels       []string
	Certifications    []string
	IndustryVerticals []string
	Consultants       []ConsultantView
	Registered        bool
	RegisterPath      string
	UnregisterPath    string
}

// ConsultantCount is the number of registered consultants.
func (c CardView) ConsultantCount() int {
	return len(c.Consultants)
}

// ListView is the content of the capabilities list region.
type ListView struct {
	Failed bool
	Cards  []CardView
	Email  string
}

// BannerView is the single message region.
type BannerView struct {
	Kind        string
	Text        string
	HideAfterMS int64
}

// Visible reports whether the banner has a message to show.
func (b BannerView) Visible() bool {
	return b.Kind != ""
}

// PageView is the full board document.
type PageView struct {
	Lang   string
	Loc    Localizer
	Email  string
	Banner BannerView
	List   ListView
}
