package models

// Mood is one entry in the mood grid.
type Mood struct {
	Name        string `json:"name"`
	Label       string `json:"label"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

// Moods is the fixed set of mood tags the backend accepts.
var Moods = []Mood{
	{Name: "happy", Label: "Happy", Icon: "😊", Description: "Feel-good movies to enhance your happiness"},
	{Name: "sad", Label: "Sad", Icon: "😢", Description: "Uplifting movies to brighten your mood"},
	{Name: "romantic", Label: "Romantic", Icon: "💕", Description: "Romantic movies for the heart"},
	{Name: "motivated", Label: "Motivated", Icon: "💪", Description: "Inspirational movies to fuel your motivation"},
	{Name: "thriller", Label: "Thriller", Icon: "😱", Description: "Edge-of-your-seat thrillers"},
	{Name: "scared", Label: "Scared", Icon: "👻", Description: "Horror movies for thrill seekers"},
	{Name: "adventurous", Label: "Adventurous", Icon: "🗺️", Description: "Epic adventures and action-packed movies"},
	{Name: "relaxed", Label: "Relaxed", Icon: "😌", Description: "Relaxing movies for a peaceful evening"},
	{Name: "nostalgic", Label: "Nostalgic", Icon: "🎞️", Description: "Classic movies that bring back memories"},
	{Name: "curious", Label: "Curious", Icon: "🤔", Description: "Mind-bending and thought-provoking films"},
	{Name: "energetic", Label: "Energetic", Icon: "⚡", Description: "High-energy movies to pump you up"},
	{Name: "thoughtful", Label: "Thoughtful", Icon: "🧠", Description: "Thought-provoking films for reflection"},
}

// ValidMoods indexes mood names for request validation.
var ValidMoods = func() map[string]bool {
	m := make(map[string]bool, len(Moods))
	for _, mood := range Moods {
		m[mood.Name] = true
	}
	return m
}()

// PreferenceGenres are the genre checkboxes offered in the preferences form.
var PreferenceGenres = []string{
	"Action", "Adventure", "Animation", "Comedy", "Crime", "Documentary",
	"Drama", "Family", "Fantasy", "Horror", "Mystery", "Romance",
	"Sci-Fi", "Thriller", "War", "Western",
}

// PreferenceLanguages are the language checkboxes offered in the form.
var PreferenceLanguages = []string{
	"English", "Spanish", "French", "German", "Italian", "Japanese",
	"Korean", "Chinese", "Hindi", "Arabic",
}
