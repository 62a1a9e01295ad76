package models

// MovieRaw is a movie record as the backend API returns it. Everything
// except ID and Title is optional and defaulted during view mapping.
type MovieRaw struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Overview    string   `json:"overview"`
	Genres      []string `json:"genres"`
	ReleaseDate string   `json:"release_date"`
	Runtime     int      `json:"runtime"`
	Language    string   `json:"language"`
	PosterURL   string   `json:"poster_url"`
	BackdropURL string   `json:"backdrop_url"`
	Cast        []string `json:"cast"`
	Director    string   `json:"director"`
	AvgRating   float64  `json:"avg_rating"`
	Reason      string   `json:"reason"`
}

// SentimentRaw is the review sentiment block on the movie detail response.
type SentimentRaw struct {
	OverallSentiment string `json:"overall_sentiment"`
	PositiveCount    int    `json:"positive_count"`
	NeutralCount     int    `json:"neutral_count"`
	NegativeCount    int    `json:"negative_count"`
	TotalReviews     int    `json:"total_reviews"`
}

// UserRaw is the authenticated user as returned by the backend.
type UserRaw struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// PreferencesRaw is the stored preference set. The backend returns an empty
// object for users who never saved preferences.
type PreferencesRaw struct {
	FavoriteGenres     []string `json:"favorite_genres"`
	PreferredLanguages []string `json:"preferred_languages"`
}

// MovieDetailRaw is the combined movie detail response.
type MovieDetailRaw struct {
	Movie     MovieRaw      `json:"movie"`
	Sentiment *SentimentRaw `json:"sentiment"`
	Similar   []MovieRaw    `json:"similar_movies"`
}
