package models

import "movie-discovery-web-ui/internal/notify"

// MovieSummary is the render-ready card for one movie. Invariant: PosterURL
// is always a non-empty absolute HTTP(S) URL; records that fail the check
// are dropped before rendering, never substituted with a placeholder.
type MovieSummary struct {
	ID            int      `json:"id"`
	Title         string   `json:"title"`
	PosterURL     string   `json:"poster_url"`
	RatingDisplay string   `json:"rating_display"`
	Year          *int     `json:"year,omitempty"`
	YearDisplay   string   `json:"year_display"`
	Genres        []string `json:"genres"`
	GenresDisplay string   `json:"genres_display"`
	Reason        string   `json:"reason,omitempty"`
}

// RankedMovie is a trending card with its 1-based position after filtering.
type RankedMovie struct {
	Rank int `json:"rank"`
	MovieSummary
}

// SentimentSummary is the audience sentiment block, present only when at
// least one review was counted.
type SentimentSummary struct {
	PositiveCount  int    `json:"positive_count"`
	NeutralCount   int    `json:"neutral_count"`
	NegativeCount  int    `json:"negative_count"`
	OverallLabel   string `json:"overall_label"`
	OverallDisplay string `json:"overall_display"`
}

// MovieDetail is the render-ready modal body. HasPoster false means the
// poster column is omitted from the layout entirely, not left blank.
type MovieDetail struct {
	ID            int               `json:"id"`
	Title         string            `json:"title"`
	PosterURL     string            `json:"poster_url,omitempty"`
	HasPoster     bool              `json:"has_poster"`
	BackdropURL   string            `json:"backdrop_url,omitempty"`
	RatingDisplay string            `json:"rating_display"`
	YearDisplay   string            `json:"year_display"`
	Overview      string            `json:"overview"`
	Director      string            `json:"director"`
	Cast          []string          `json:"cast"`
	CastDisplay   string            `json:"cast_display"`
	Runtime       int               `json:"runtime"`
	Language      string            `json:"language"`
	Genres        []string          `json:"genres"`
	Sentiment     *SentimentSummary `json:"sentiment,omitempty"`
	Similar       []MovieSummary    `json:"similar"`
}

// User is the client-held copy of the authenticated user, valid only for
// the current session lifetime.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// SessionView reports session and auth dialog state to the page shell.
type SessionView struct {
	LoggedIn bool   `json:"logged_in"`
	User     *User  `json:"user,omitempty"`
	AuthMode string `json:"auth_mode"`
}

// Region update states.
const (
	RegionContent = "content"
	RegionEmpty   = "empty"
	RegionError   = "error"
)

// Region names the shell knows how to render into.
const (
	RegionRecommendations = "recommendations"
	RegionMood            = "mood"
	RegionTrending        = "trending"
	RegionModal           = "modal"
)

// RegionUpdate is a wholesale replacement of one named region's content.
type RegionUpdate struct {
	State      string         `json:"state"`
	Title      string         `json:"title,omitempty"`
	Movies     []MovieSummary `json:"movies,omitempty"`
	Ranked     []RankedMovie  `json:"ranked,omitempty"`
	Detail     *MovieDetail   `json:"detail,omitempty"`
	Message    string         `json:"message,omitempty"`
	ActiveDays int            `json:"active_days,omitempty"`
}

// CheckItem is one checkbox in the preferences form.
type CheckItem struct {
	Value   string `json:"value"`
	Checked bool   `json:"checked"`
}

// PreferenceForm is the render-ready preferences dialog body.
type PreferenceForm struct {
	Genres    []CheckItem `json:"genres"`
	Languages []CheckItem `json:"languages"`
}

// ActionResult is the envelope every UI action returns: at most one region
// update plus the side effects the shell must apply.
type ActionResult struct {
	Region        string                `json:"region,omitempty"`
	Update        *RegionUpdate         `json:"update,omitempty"`
	Notifications []notify.Notification `json:"notifications,omitempty"`
	Session       *SessionView          `json:"session,omitempty"`
	Form          *PreferenceForm       `json:"form,omitempty"`
	OpenDialog    string                `json:"open_dialog,omitempty"`
	CloseDialog   string                `json:"close_dialog,omitempty"`
	ScrollTo      string                `json:"scroll_to,omitempty"`
	Refresh       []string              `json:"refresh,omitempty"`
	Stale         bool                  `json:"stale,omitempty"`
}
