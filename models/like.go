package models

import (
	"time"
)

// LikedPost records that a user liked a post. The composite primary key
// forbids liking the same post twice.
type LikedPost struct {
	UserID    string    `json:"userId" gorm:"column:user_id;primaryKey;size:191"`
	PostID    int       `json:"postId" gorm:"column:post_id;primaryKey;autoIncrement:false;index"`
	Post      *Post     `json:"-" gorm:"foreignKey:PostID;references:ID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `json:"createdAt"`
}

func (LikedPost) TableName() string {
	return "liked_posts"
}

type UnlikeResult struct {
	DeletedCount int64 `json:"deletedCount"`
}

type SuccessResult struct {
	Success bool `json:"success"`
}

type MessageResult struct {
	Message string `json:"message"`
}
