package posts

import (
	"context"
	"errors"
	"math"

	"blog-backend/models"
	"blog-backend/store"
	"blog-backend/utils"
)

// GetAll returns one page of posts ordered by id, filtered by a
// case-insensitive substring of title or body. Counts cover the filtered
// set. isLiked is only ever true when callerID is set.
func (s *Service) GetAll(ctx context.Context, in models.GetAllInput, callerID string) (*models.PostsPage, error) {
	page, pageSize := DefaultPage, DefaultPageSize
	if in.Page != nil {
		page = *in.Page
	}
	if in.PageSize != nil {
		pageSize = *in.PageSize
	}
	if page < 1 {
		return nil, utils.NewValidationError("page must be greater than or equal to 1", nil)
	}
	if pageSize < 1 {
		return nil, utils.NewValidationError("pageSize must be greater than 0", nil)
	}

	posts, total, err := s.store.ListPosts(ctx, store.ListQuery{
		Offset: pageOffset(page, pageSize),
		Limit:  pageSize,
		Filter: in.Filter,
	})
	if err != nil {
		return nil, utils.NewInternalError("Error retrieving posts", err)
	}

	liked := map[int]bool{}
	if callerID != "" && len(posts) > 0 {
		ids := make([]int, len(posts))
		for i, p := range posts {
			ids[i] = p.ID
		}
		if liked, err = s.store.LikedPostIDs(ctx, callerID, ids); err != nil {
			return nil, utils.NewInternalError("Error retrieving likes", err)
		}
	}

	annotated := make([]models.PostWithLike, len(posts))
	for i, p := range posts {
		annotated[i] = models.PostWithLike{Post: p, IsLiked: liked[p.ID]}
	}

	return &models.PostsPage{
		Posts: annotated,
		Pagination: models.Pagination{
			Page:            page,
			PageSize:        pageSize,
			TotalPostsCount: total,
			TotalPages:      totalPages(total, pageSize),
		},
	}, nil
}

func (s *Service) GetByID(ctx context.Context, id int) (*models.Post, error) {
	if id < 1 {
		return nil, utils.NewValidationError("id must be greater than 0", nil)
	}
	post, err := s.store.GetPost(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, utils.NewNotFoundError("Post not found")
	}
	if err != nil {
		return nil, utils.NewInternalError("Error retrieving post", err)
	}
	return post, nil
}

// pageOffset is (page-1)*pageSize, saturated at math.MaxInt so that far
// pages resolve to an empty window.
func pageOffset(page, pageSize int) int {
	if page-1 > math.MaxInt/pageSize {
		return math.MaxInt
	}
	return (page - 1) * pageSize
}

func totalPages(total int64, pageSize int) int {
	size := int64(pageSize)
	pages := total / size
	if total%size != 0 {
		pages++
	}
	return int(pages)
}
