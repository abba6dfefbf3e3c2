package models

import "time"

// Post represents a published entry stored in the posts collection. The
// caller supplies the id, which doubles as the Mongo primary key.
type Post struct {
	PostID    string    `json:"postID" bson:"_id"`
	UserID    string    `json:"userID" bson:"user_id"`
	Title     string    `json:"title" bson:"title"`
	Content   string    `json:"content,omitempty" bson:"content,omitempty"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updated_at"`
}

// CreatePostRequest defines the request body for creating a new post
type CreatePostRequest struct {
	PostID  string `json:"postID"`
	UserID  string `json:"userID"`
	Title   string `json:"title" validate:"required"`
	Content string `json:"content"`
}

// UpdatePostRequest defines the request body for updating an existing
// post. Pointer fields distinguish "leave unchanged" from "set to empty";
// only title and content are patchable.
type UpdatePostRequest struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}

// CreatePostResponse is the 201 body for a successful create.
type CreatePostResponse struct {
	Message string `json:"message"`
	PostID  string `json:"postID"`
	Title   string `json:"title"`
}

// UpdatePostResponse carries the post-update representation of all stored
// attributes.
type UpdatePostResponse struct {
	Message string `json:"message"`
	Post    *Post  `json:"post"`
}

// MessageResponse is the uniform body for plain success and failure
// messages. Details carries the upstream error text on 500s.
type MessageResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}
