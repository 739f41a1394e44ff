package storage

import "time"

// ============================================================================
// Catalog Types
// ============================================================================

// User represents a registered reader of the catalog
type User struct {
	ID          int       `json:"id"`
	Username    string    `json:"username"`
	Password    string    `json:"password"`
	DisplayName *string   `json:"displayName"`
	Email       string    `json:"email"`
	AvatarURL   *string   `json:"avatarUrl"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewUser holds the fields accepted when creating a user
type NewUser struct {
	Username    string
	Password    string
	DisplayName *string
	Email       string
	AvatarURL   *string
	Role        string
}

// Topic is a single catalog article
type Topic struct {
	ID                 int       `json:"id"`
	Title              string    `json:"title"`
	Century            int       `json:"century"` // 18, 19, 20 or 21 by convention
	ShortDescription   *string   `json:"shortDescription"`
	FirstMentionedYear *int      `json:"firstMentionedYear"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// NewTopic holds the fields accepted when creating a topic
type NewTopic struct {
	Title              string
	Century            int
	ShortDescription   *string
	FirstMentionedYear *int
}

// TopicPatch is a partial topic update. Nil fields keep their stored value.
type TopicPatch struct {
	Title              *string
	Century            *int
	ShortDescription   *string
	FirstMentionedYear *int
}

// TopicContent is the long-form body of a topic
type TopicContent struct {
	ID         int       `json:"id"`
	TopicID    int       `json:"topicId"`
	Content    string    `json:"content"`
	AIAnalysis *string   `json:"aiAnalysis"`
	FactCheck  *string   `json:"factCheck"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// NewTopicContent holds the fields accepted when creating topic content
type NewTopicContent struct {
	TopicID    int
	Content    string
	AIAnalysis *string
	FactCheck  *string
}

// TopicContentPatch is a partial content update. Nil fields keep their stored value.
type TopicContentPatch struct {
	TopicID    *int
	Content    *string
	AIAnalysis *string
	FactCheck  *string
}

// RelatedTopic is a directed edge from SourceTopicID to TargetTopicID
type RelatedTopic struct {
	ID            int       `json:"id"`
	SourceTopicID int       `json:"sourceTopicId"`
	TargetTopicID int       `json:"targetTopicId"`
	CreatedAt     time.Time `json:"createdAt"`
}

// GlossaryTerm is a hover definition shown in topic bodies
type GlossaryTerm struct {
	ID             int    `json:"id"`
	Term           string `json:"term"`
	Definition     string `json:"definition"`
	RelatedTopicID *int   `json:"relatedTopicId"`
}

// NewGlossaryTerm holds the fields accepted when creating a glossary term
type NewGlossaryTerm struct {
	Term           string
	Definition     string
	RelatedTopicID *int
}

// AiChat is one recorded question/answer exchange with an AI provider
type AiChat struct {
	ID        int       `json:"id"`
	UserID    int       `json:"userId"`
	TopicID   *int      `json:"topicId"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Provider  string    `json:"provider"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewAiChat holds the fields accepted when recording a chat
type NewAiChat struct {
	UserID   int
	TopicID  *int
	Question string
	Answer   string
	Provider string
}

// ExpertOpinion is a quoted expert view attached to a topic
type ExpertOpinion struct {
	ID          int       `json:"id"`
	TopicID     int       `json:"topicId"`
	ExpertName  string    `json:"expertName"`
	ExpertTitle string    `json:"expertTitle"`
	Opinion     string    `json:"opinion"`
	AvatarURL   *string   `json:"avatarUrl"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewExpertOpinion holds the fields accepted when creating an expert opinion
type NewExpertOpinion struct {
	TopicID     int
	ExpertName  string
	ExpertTitle string
	Opinion     string
	AvatarURL   *string
}

// Stats reports record counts per collection
type Stats struct {
	Users          int `json:"users"`
	Topics         int `json:"topics"`
	TopicContents  int `json:"topicContents"`
	RelatedTopics  int `json:"relatedTopics"`
	GlossaryTerms  int `json:"glossaryTerms"`
	AiChats        int `json:"aiChats"`
	ExpertOpinions int `json:"expertOpinions"`
}
