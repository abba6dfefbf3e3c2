package models

import "time"

// Media is a metadata row pointing at an object uploaded to object storage.
// The object itself never passes through this service.
type Media struct {
	MediaID   string    `json:"mediaID" bson:"_id"`
	UserID    string    `json:"userID" bson:"user_id"`
	Type      string    `json:"type,omitempty" bson:"type,omitempty"`
	URL       string    `json:"url" bson:"url"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
}

// CreateMediaRequest defines the request body for recording a new media row
type CreateMediaRequest struct {
	MediaID string `json:"mediaID"`
	UserID  string `json:"userID"`
	Type    string `json:"type"`
	URL     string `json:"url"`
}

// CreateMediaResponse is the 201 body for a successful create.
type CreateMediaResponse struct {
	Message string `json:"message"`
	MediaID string `json:"mediaID"`
}
