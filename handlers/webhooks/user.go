package webhooks

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"blog-backend/models"
	"blog-backend/store"
	"blog-backend/utils"

	"github.com/gin-gonic/gin"
	svix "github.com/svix/svix-webhooks/go"
	"gorm.io/datatypes"
)

const maxBodyBytes = int64(65536)

const (
	EventUserCreated = "user.created"
	EventUserUpdated = "user.updated"
)

type event struct {
	Type string                     `json:"type"`
	Data map[string]json.RawMessage `json:"data"`
}

type Handler struct {
	users  store.UserStore
	secret string
}

// New builds the identity webhook handler. An empty secret makes every
// delivery fail with 500 until the service is configured.
func New(users store.UserStore, secret string) *Handler {
	return &Handler{users: users, secret: secret}
}

// UserWebhook mirrors identity-provider accounts
// @Summary Identity provider webhook
// @Description Verifies the svix signature and upserts the user on user.created and user.updated. Other events are ignored.
// @Tags webhooks
// @Accept json
// @Produce json
// @Param svix-id header string true "Message id"
// @Param svix-timestamp header string true "Unix timestamp"
// @Param svix-signature header string true "Signature"
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /api/webhooks/user [post]
func (h *Handler) UserWebhook(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)

	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, utils.KindValidation, "Unable to read request body")
		return
	}

	if h.secret == "" {
		utils.LogError(nil, "Webhook secret is not configured")
		utils.SendError(c, http.StatusInternalServerError, utils.KindInternal, "Internal server error")
		return
	}

	wh, err := svix.NewWebhook(h.secret)
	if err != nil {
		utils.LogError(err, "Invalid webhook secret")
		utils.SendError(c, http.StatusInternalServerError, utils.KindInternal, "Internal server error")
		return
	}
	if err := wh.Verify(payload, c.Request.Header); err != nil {
		utils.SendError(c, http.StatusBadRequest, utils.KindValidation, "Webhook signature verification failed")
		return
	}

	var evt event
	if err := json.Unmarshal(payload, &evt); err != nil {
		utils.SendError(c, http.StatusBadRequest, utils.KindValidation, "Invalid event payload")
		return
	}

	switch evt.Type {
	case EventUserCreated, EventUserUpdated:
		h.upsertUser(c, evt)
	default:
		utils.SendSuccess(c, http.StatusOK, "Event ignored", nil)
	}
}

func (h *Handler) upsertUser(c *gin.Context, evt event) {
	raw, ok := evt.Data["id"]
	if !ok {
		utils.SendError(c, http.StatusBadRequest, utils.KindValidation, "Event data has no user id")
		return
	}
	var id string
	if err := json.Unmarshal(raw, &id); err != nil {
		utils.SendError(c, http.StatusBadRequest, utils.KindValidation, "Invalid user id: "+err.Error())
		return
	}
	if id == "" {
		utils.SendError(c, http.StatusBadRequest, utils.KindValidation, "Event data has no user id")
		return
	}

	attributes := make(map[string]json.RawMessage, len(evt.Data))
	for k, v := range evt.Data {
		if k != "id" {
			attributes[k] = v
		}
	}
	encoded, err := json.Marshal(attributes)
	if err != nil {
		utils.SendAppError(c, utils.NewInternalError("Encoding user attributes", err))
		return
	}

	ctx := c.Request.Context()
	// user.updated may be delivered before user.created
	_, err = h.users.GetUser(ctx, id)
	known := err == nil
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		utils.SendAppError(c, utils.NewInternalError("Looking up user "+id, err))
		return
	}

	user := &models.User{ExternalID: id, Attributes: datatypes.JSON(encoded)}
	if err := h.users.UpsertUser(ctx, user); err != nil {
		utils.SendAppError(c, utils.NewInternalError("Upserting user "+id, err))
		return
	}

	message := "User created"
	if known {
		message = "User updated"
	}
	utils.LogSuccessWithUser(id, message+" from "+evt.Type)
	utils.SendSuccess(c, http.StatusOK, message, nil)
}
