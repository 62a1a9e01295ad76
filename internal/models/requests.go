package models

// SignupRequest is the signup form submission.
type SignupRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest is the login form submission.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// MoodRequest selects a mood for recommendations.
type MoodRequest struct {
	Mood string `json:"mood" validate:"required"`
}

// RateRequest submits a rating. Out-of-range values are rejected before any
// backend call is issued.
type RateRequest struct {
	MovieID int `json:"movie_id" validate:"required,gt=0"`
	Rating  int `json:"rating" validate:"required,gte=1,lte=10"`
}

// WatchHistoryRequest marks a movie as watched.
type WatchHistoryRequest struct {
	MovieID int `json:"movie_id" validate:"required,gt=0"`
}

// ShowAuthRequest opens the auth dialog in a given mode.
type ShowAuthRequest struct {
	Mode string `json:"mode" validate:"required,oneof=login signup"`
}

// PreferencesRequest is the preferences form submission.
type PreferencesRequest struct {
	Genres    []string `json:"genres"`
	Languages []string `json:"languages"`
}
