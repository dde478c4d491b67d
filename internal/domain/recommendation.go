package domain

import "time"

type RecommendationSentiment string

const (
	SentimentPositive RecommendationSentiment = "positive"
	SentimentNeutral  RecommendationSentiment = "neutral"
	SentimentNegative RecommendationSentiment = "negative"
)

func (s RecommendationSentiment) Valid() bool {
	switch s {
	case SentimentPositive, SentimentNeutral, SentimentNegative:
		return true
	}
	return false
}

// Recommendation is a peer endorsement attached to one application.
// Unique per (application, author); the applicant cannot author one.
type Recommendation struct {
	ID                 int64                   `json:"id"`
	ApplicationID      int64                   `json:"application_id"`
	UserID             int64                   `json:"user_id"`
	CharacterID        int64                   `json:"character_id"`
	CharacterName      string                  `json:"character_name"`
	RecommendationText string                  `json:"recommendation_text"`
	Sentiment          RecommendationSentiment `json:"sentiment"`
	CreatedAt          time.Time               `json:"created_at"`
	UpdatedAt          time.Time               `json:"updated_at"`
}
