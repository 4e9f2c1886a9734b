package domain

// Tipos de la API de Ethos (v1 search, v2 activities).

// ActivityKind identifica el tipo de actividad recibida por un perfil.
// Solo review y vouch llegan al pipeline de analisis.
const (
	ActivityKindReview = "review"
	ActivityKindVouch  = "vouch"
)

// ActorSummary resume al autor o sujeto de una actividad.
type ActorSummary struct {
	Userkey           string  `json:"userkey"`
	Avatar            string  `json:"avatar,omitempty"`
	Name              string  `json:"name,omitempty"`
	Username          string  `json:"username,omitempty"`
	Description       string  `json:"description,omitempty"`
	Score             float64 `json:"score"`
	ScoreXPMultiplier float64 `json:"scoreXpMultiplier"`
	ProfileID         int64   `json:"profileId"`
	PrimaryAddress    string  `json:"primaryAddress,omitempty"`
}

// ActivityData es el payload on-chain de la actividad.
// Score viene codificado como string ("positive", "negative", etc.)
// y Metadata es un blob JSON opaco que puede no ser JSON valido.
type ActivityData struct {
	ID              int64  `json:"id"`
	AuthorProfileID int64  `json:"authorProfileId"`
	Author          string `json:"author"`
	Subject         string `json:"subject"`
	Score           string `json:"score"`
	Comment         string `json:"comment"`
	Metadata        string `json:"metadata"`
	CreatedAt       int64  `json:"createdAt"`
	Archived        bool   `json:"archived"`
}

// ActivityVotes cuenta los votos de la actividad.
type ActivityVotes struct {
	Upvotes   int `json:"upvotes"`
	Downvotes int `json:"downvotes"`
}

// ReplySummary cuenta las respuestas de la actividad.
type ReplySummary struct {
	Count        int  `json:"count"`
	Participated bool `json:"participated"`
}

// Activity es una actividad recibida tal como la devuelve la API v2.
type Activity struct {
	Type            string        `json:"type"`
	Data            ActivityData  `json:"data"`
	Votes           ActivityVotes `json:"votes"`
	ReplySummary    ReplySummary  `json:"replySummary"`
	Timestamp       int64         `json:"timestamp"`
	Author          ActorSummary  `json:"author"`
	Subject         ActorSummary  `json:"subject"`
	LLMQualityScore float64       `json:"llmQualityScore"`
}

// ActivitiesPage es una pagina de actividades paginadas.
type ActivitiesPage struct {
	Values []Activity `json:"values"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

// SearchResult es un perfil devuelto por el search de la API v1.
type SearchResult struct {
	Userkey           string  `json:"userkey"`
	Avatar            string  `json:"avatar"`
	Name              string  `json:"name"`
	Username          string  `json:"username"`
	Description       string  `json:"description"`
	Score             float64 `json:"score"`
	ScoreXPMultiplier float64 `json:"scoreXpMultiplier"`
	ProfileID         int64   `json:"profileId"`
	PrimaryAddress    string  `json:"primaryAddress"`
}

// SearchResponse envuelve la respuesta del search upstream.
type SearchResponse struct {
	OK   bool `json:"ok"`
	Data struct {
		Values []SearchResult `json:"values"`
		Limit  int            `json:"limit"`
		Offset int            `json:"offset"`
		Total  int            `json:"total"`
	} `json:"data"`
}
