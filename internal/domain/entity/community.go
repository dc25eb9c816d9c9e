package entity

import "time"

type Training struct {
	ID                  string    `json:"id" firestore:"-"`
	Description         string    `json:"description" firestore:"description,omitempty"`
	Category            string    `json:"category" firestore:"category,omitempty"`
	Date                time.Time `json:"date" firestore:"date,omitempty"`
	Organizer           string    `json:"organizer" firestore:"organizer,omitempty"`
	Location            string    `json:"location" firestore:"location,omitempty"`
	CurrentParticipants int       `json:"current_participants" firestore:"currentParticipants,omitempty"`
	MaxParticipants     int       `json:"max_participants" firestore:"maxParticipants,omitempty"`
}

// Registrant lives in trainings/{id}/registrants.
type Registrant struct {
	ID        string    `json:"id" firestore:"-"`
	UserName  string    `json:"user_name" firestore:"userName,omitempty"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt,omitempty"`
}

type Post struct {
	ID           string    `json:"id" firestore:"-"`
	AuthorName   string    `json:"author_name" firestore:"authorName,omitempty"`
	Category     string    `json:"category" firestore:"category,omitempty"`
	Content      string    `json:"content" firestore:"content,omitempty"`
	CommentCount int       `json:"comment_count" firestore:"commentCount,omitempty"`
	CreatedAt    time.Time `json:"created_at" firestore:"createdAt,omitempty"`
}

// Comment lives in posts/{id}/comments.
type Comment struct {
	ID         string    `json:"id" firestore:"-"`
	AuthorName string    `json:"author_name" firestore:"authorName,omitempty"`
	Content    string    `json:"content" firestore:"content,omitempty"`
	CreatedAt  time.Time `json:"created_at" firestore:"createdAt,omitempty"`
}
