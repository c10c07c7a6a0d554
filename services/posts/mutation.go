package posts

import (
	"context"
	"errors"

	"blog-backend/models"
	"blog-backend/store"
	"blog-backend/utils"
)

func requireCaller(callerID string) error {
	if callerID == "" {
		return utils.NewUnauthenticatedError("User not authenticated")
	}
	return nil
}

// LikePost records that callerID likes postID. Liking twice, or liking a
// post that does not exist, is a conflict.
func (s *Service) LikePost(ctx context.Context, callerID string, postID int) (*models.LikedPost, error) {
	if err := requireCaller(callerID); err != nil {
		return nil, err
	}

	like := &models.LikedPost{UserID: callerID, PostID: postID}
	err := s.store.CreateLike(ctx, like)
	switch {
	case errors.Is(err, store.ErrDuplicate):
		return nil, utils.NewConflictError("Post already liked", err)
	case errors.Is(err, store.ErrMissingReference):
		return nil, utils.NewConflictError("Post does not exist", err)
	case err != nil:
		return nil, utils.NewInternalError("Error adding like", err)
	}

	utils.LogSuccessWithUser(callerID, "Post liked")
	return like, nil
}

// UnlikePost removes the like if there is one. Removing nothing is fine.
func (s *Service) UnlikePost(ctx context.Context, callerID string, postID int) (*models.UnlikeResult, error) {
	if err := requireCaller(callerID); err != nil {
		return nil, err
	}

	n, err := s.store.DeleteLike(ctx, callerID, postID)
	if err != nil {
		return nil, utils.NewInternalError("Error removing like", err)
	}
	return &models.UnlikeResult{DeletedCount: n}, nil
}

func (s *Service) UnlikeAllPosts(ctx context.Context, callerID string) (*models.SuccessResult, error) {
	if err := requireCaller(callerID); err != nil {
		return nil, err
	}

	n, err := s.store.DeleteAllLikes(ctx, callerID)
	if err != nil {
		return nil, utils.NewInternalError("Error removing likes", err)
	}
	if n > 0 {
		utils.LogSuccessWithUser(callerID, "All likes removed")
	}
	return &models.SuccessResult{Success: true}, nil
}

func (s *Service) MyLikedPosts(ctx context.Context, callerID string) ([]models.Post, error) {
	if err := requireCaller(callerID); err != nil {
		return nil, err
	}

	posts, err := s.store.LikedPosts(ctx, callerID)
	if err != nil {
		return nil, utils.NewInternalError("Error retrieving liked posts", err)
	}
	return posts, nil
}
