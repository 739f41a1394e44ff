package api

import (
	"time"

	"rabbithole/backend/internal/storage"
)

// Request bodies. Binding tags are checked by go-playground/validator via gin
// before any store mutator runs.

type createUserRequest struct {
	Username    string  `json:"username" binding:"required,min=3,max=64"`
	Password    string  `json:"password" binding:"required,min=6"`
	DisplayName *string `json:"displayName" binding:"omitempty,max=128"`
	Email       string  `json:"email" binding:"required,email"`
	AvatarURL   *string `json:"avatarUrl" binding:"omitempty"`
	Role        string  `json:"role" binding:"required"`
}

func (r createUserRequest) toStorage() storage.NewUser {
	return storage.NewUser{
		Username:    r.Username,
		Password:    r.Password,
		DisplayName: r.DisplayName,
		Email:       r.Email,
		AvatarURL:   r.AvatarURL,
		Role:        r.Role,
	}
}

type createTopicRequest struct {
	Title              string  `json:"title" binding:"required"`
	Century            int     `json:"century" binding:"required"`
	ShortDescription   *string `json:"shortDescription"`
	FirstMentionedYear *int    `json:"firstMentionedYear"`
}

func (r createTopicRequest) toStorage() storage.NewTopic {
	return storage.NewTopic{
		Title:              r.Title,
		Century:            r.Century,
		ShortDescription:   r.ShortDescription,
		FirstMentionedYear: r.FirstMentionedYear,
	}
}

// updateTopicRequest accepts any subset of the topic fields
type updateTopicRequest struct {
	Title              *string `json:"title" binding:"omitempty,min=1"`
	Century            *int    `json:"century"`
	ShortDescription   *string `json:"shortDescription"`
	FirstMentionedYear *int    `json:"firstMentionedYear"`
}

func (r updateTopicRequest) toStorage() storage.TopicPatch {
	return storage.TopicPatch{
		Title:              r.Title,
		Century:            r.Century,
		ShortDescription:   r.ShortDescription,
		FirstMentionedYear: r.FirstMentionedYear,
	}
}

type createTopicContentRequest struct {
	TopicID    int     `json:"topicId" binding:"required"`
	Content    string  `json:"content" binding:"required"`
	AIAnalysis *string `json:"aiAnalysis"`
	FactCheck  *string `json:"factCheck"`
}

func (r createTopicContentRequest) toStorage() storage.NewTopicContent {
	return storage.NewTopicContent{
		TopicID:    r.TopicID,
		Content:    r.Content,
		AIAnalysis: r.AIAnalysis,
		FactCheck:  r.FactCheck,
	}
}

type updateTopicContentRequest struct {
	TopicID    *int    `json:"topicId"`
	Content    *string `json:"content" binding:"omitempty,min=1"`
	AIAnalysis *string `json:"aiAnalysis"`
	FactCheck  *string `json:"factCheck"`
}

func (r updateTopicContentRequest) toStorage() storage.TopicContentPatch {
	return storage.TopicContentPatch{
		TopicID:    r.TopicID,
		Content:    r.Content,
		AIAnalysis: r.AIAnalysis,
		FactCheck:  r.FactCheck,
	}
}

type addRelatedTopicRequest struct {
	SourceTopicID int `json:"sourceTopicId" binding:"required"`
	TargetTopicID int `json:"targetTopicId" binding:"required"`
}

type createGlossaryTermRequest struct {
	Term           string `json:"term" binding:"required"`
	Definition     string `json:"definition" binding:"required"`
	RelatedTopicID *int   `json:"relatedTopicId"`
}

func (r createGlossaryTermRequest) toStorage() storage.NewGlossaryTerm {
	return storage.NewGlossaryTerm{
		Term:           r.Term,
		Definition:     r.Definition,
		RelatedTopicID: r.RelatedTopicID,
	}
}

type createAiChatRequest struct {
	UserID   int    `json:"userId" binding:"required"`
	TopicID  *int   `json:"topicId"`
	Question string `json:"question" binding:"required"`
	Answer   string `json:"answer" binding:"required"`
	Provider string `json:"provider" binding:"required"`
}

func (r createAiChatRequest) toStorage() storage.NewAiChat {
	return storage.NewAiChat{
		UserID:   r.UserID,
		TopicID:  r.TopicID,
		Question: r.Question,
		Answer:   r.Answer,
		Provider: r.Provider,
	}
}

type createExpertOpinionRequest struct {
	TopicID     int     `json:"topicId" binding:"required"`
	ExpertName  string  `json:"expertName" binding:"required"`
	ExpertTitle string  `json:"expertTitle" binding:"required"`
	Opinion     string  `json:"opinion" binding:"required"`
	AvatarURL   *string `json:"avatarUrl"`
}

func (r createExpertOpinionRequest) toStorage() storage.NewExpertOpinion {
	return storage.NewExpertOpinion{
		TopicID:     r.TopicID,
		ExpertName:  r.ExpertName,
		ExpertTitle: r.ExpertTitle,
		Opinion:     r.Opinion,
		AvatarURL:   r.AvatarURL,
	}
}

// askRequest is the chat proxy body
type askRequest struct {
	Question string `json:"question" binding:"required,max=4000"`
	UserID   *int   `json:"userId" binding:"omitempty,gt=0"`
	TopicID  *int   `json:"topicId" binding:"omitempty,gt=0"`
}

// userResponse is a User without its password
type userResponse struct {
	ID          int       `json:"id"`
	Username    string    `json:"username"`
	DisplayName *string   `json:"displayName"`
	Email       string    `json:"email"`
	AvatarURL   *string   `json:"avatarUrl"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"createdAt"`
}

func newUserResponse(u storage.User) userResponse {
	return userResponse{
		ID:          u.ID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		Email:       u.Email,
		AvatarURL:   u.AvatarURL,
		Role:        u.Role,
		CreatedAt:   u.CreatedAt,
	}
}
