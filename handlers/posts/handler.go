package posts

import (
	"context"
	"net/http"
	"time"

	"blog-backend/middleware"
	"blog-backend/models"
	"blog-backend/services/posts"
	"blog-backend/utils"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc           *posts.Service
	ingestTimeout time.Duration
}

func New(svc *posts.Service, ingestTimeout time.Duration) *Handler {
	return &Handler{svc: svc, ingestTimeout: ingestTimeout}
}

// GetAll lists posts
// @Summary List posts
// @Description Paginated list of posts ordered by id, optionally filtered on title or body. isLiked reflects the caller's likes.
// @Tags posts
// @Produce json
// @Param input query string false "JSON input: {\"page\":1,\"pageSize\":20,\"filter\":\"text\"}"
// @Security BearerAuth
// @Success 200 {object} utils.Response{data=models.PostsPage}
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /api/trpc/posts.getAll [get]
func (h *Handler) GetAll(c *gin.Context) {
	var input models.GetAllInput
	if !utils.BindInput(c, &input) {
		return
	}

	page, err := h.svc.GetAll(c.Request.Context(), input, middleware.CallerID(c))
	if err != nil {
		utils.SendAppError(c, err)
		return
	}
	utils.SendSuccess(c, http.StatusOK, "Posts retrieved successfully", page)
}

// GetByID returns a single post
// @Summary Get a post
// @Tags posts
// @Produce json
// @Param input query string true "JSON input: {\"id\":1}"
// @Success 200 {object} utils.Response{data=models.Post}
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /api/trpc/posts.getById [get]
func (h *Handler) GetByID(c *gin.Context) {
	var input models.GetByIDInput
	if !utils.BindInput(c, &input) {
		return
	}

	post, err := h.svc.GetByID(c.Request.Context(), input.ID)
	if err != nil {
		utils.SendAppError(c, err)
		return
	}
	utils.SendSuccess(c, http.StatusOK, "Post retrieved successfully", post)
}

// LikePost
// @Summary Like a post
// @Tags likes
// @Accept json
// @Produce json
// @Param input body models.PostIDInput true "Post to like"
// @Security BearerAuth
// @Success 200 {object} utils.Response{data=models.LikedPost}
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Failure 409 {object} utils.Response "Post already liked or does not exist"
// @Router /api/trpc/posts.likePost [post]
func (h *Handler) LikePost(c *gin.Context) {
	var input models.PostIDInput
	if !utils.BindInput(c, &input) {
		return
	}

	like, err := h.svc.LikePost(c.Request.Context(), middleware.CallerID(c), input.PostID)
	if err != nil {
		utils.SendAppError(c, err)
		return
	}
	utils.SendSuccess(c, http.StatusOK, "Post liked successfully", like)
}

// UnlikePost
// @Summary Remove a like
// @Description deletedCount is 0 when the post was not liked.
// @Tags likes
// @Accept json
// @Produce json
// @Param input body models.PostIDInput true "Post to unlike"
// @Security BearerAuth
// @Success 200 {object} utils.Response{data=models.UnlikeResult}
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Router /api/trpc/posts.unlikePost [post]
func (h *Handler) UnlikePost(c *gin.Context) {
	var input models.PostIDInput
	if !utils.BindInput(c, &input) {
		return
	}

	res, err := h.svc.UnlikePost(c.Request.Context(), middleware.CallerID(c), input.PostID)
	if err != nil {
		utils.SendAppError(c, err)
		return
	}
	utils.SendSuccess(c, http.StatusOK, "Post unliked successfully", res)
}

// UnlikeAllPosts
// @Summary Remove every like of the caller
// @Tags likes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.Response{data=models.SuccessResult}
// @Failure 401 {object} utils.Response
// @Router /api/trpc/posts.unlikeAllPosts [post]
func (h *Handler) UnlikeAllPosts(c *gin.Context) {
	res, err := h.svc.UnlikeAllPosts(c.Request.Context(), middleware.CallerID(c))
	if err != nil {
		utils.SendAppError(c, err)
		return
	}
	utils.SendSuccess(c, http.StatusOK, "All posts unliked successfully", res)
}

// MyLikedPosts
// @Summary Posts liked by the caller
// @Tags likes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.Response{data=[]models.Post}
// @Failure 401 {object} utils.Response
// @Router /api/trpc/posts.myLikedPosts [get]
func (h *Handler) MyLikedPosts(c *gin.Context) {
	liked, err := h.svc.MyLikedPosts(c.Request.Context(), middleware.CallerID(c))
	if err != nil {
		utils.SendAppError(c, err)
		return
	}
	utils.SendSuccess(c, http.StatusOK, "Liked posts retrieved successfully", liked)
}

// FetchAndStore runs the ingestion task
// @Summary Ingest posts from the upstream source
// @Tags ingestion
// @Produce json
// @Success 200 {object} utils.Response{data=models.MessageResult}
// @Failure 400 {object} utils.Response "Upstream returned malformed records"
// @Failure 500 {object} utils.Response
// @Router /api/trpc/posts.fetchAndStore [get]
func (h *Handler) FetchAndStore(c *gin.Context) {
	res, err := h.runIngestion(c)
	if err != nil {
		utils.SendAppError(c, err)
		return
	}
	utils.SendSuccess(c, http.StatusOK, res.Message, res)
}

// FetchAndStoreREST is the plain ingestion trigger used by the seed command.
// @Summary Ingest posts (plain REST)
// @Tags ingestion
// @Produce json
// @Success 200 {object} models.MessageResult
// @Failure 400 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /api/posts/fetchAndStore [get]
func (h *Handler) FetchAndStoreREST(c *gin.Context) {
	res, err := h.runIngestion(c)
	if err != nil {
		utils.SendAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) runIngestion(c *gin.Context) (*models.MessageResult, error) {
	ctx := c.Request.Context()
	if h.ingestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.ingestTimeout)
		defer cancel()
	}
	return h.svc.FetchAndStore(ctx)
}
