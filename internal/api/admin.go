package api

import (
	"net/http"
	"strconv"

	"accreditation-gateway/internal/admin"
	"accreditation-gateway/internal/configstore"
	"accreditation-gateway/internal/i18n"
	"accreditation-gateway/internal/models"
	"accreditation-gateway/internal/submissions"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AdminHandler struct {
	state    *configstore.State
	saver    *configstore.Saver
	sessions *admin.Manager
	recorder *submissions.Recorder
	log      *zap.Logger
}

func NewAdminHandler(state *configstore.State, saver *configstore.Saver, sessions *admin.Manager, rec *submissions.Recorder, log *zap.Logger) *AdminHandler {
	return &AdminHandler{state: state, saver: saver, sessions: sessions, recorder: rec, log: log}
}

// RequireAuth gates the editor routes on an authenticated session token.
func (h *AdminHandler) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !h.sessions.Valid(c.GetHeader("X-Admin-Token")) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}

type LoginRequest struct {
	Password string `json:"password" binding:"required"`
	Language string `json:"language"`
}

// Login checks the shared secret against the loaded configuration. Failure
// surfaces the localized wrong-password message; retries are unlimited.
func (h *AdminHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, ok := h.sessions.Login(req.Password)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": i18n.T(requestLanguage(req.Language), "wrongPassword"),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// GetConfig returns the full document, admin password included, for the
// editor surface.
func (h *AdminHandler) GetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, h.state.Snapshot())
}

// UpdateConfig replaces the in-memory snapshot immediately and schedules the
// debounced persist. A save failure never rolls the snapshot back.
func (h *AdminHandler) UpdateConfig(c *gin.Context) {
	var cfg models.AppConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.state.Replace(cfg)
	h.saver.Schedule(cfg)
	c.JSON(http.StatusOK, gin.H{"status": "Config updated"})
}

// ListRequests returns the newest submissions. Read-only: the collection is
// append-only and exposes no update or delete.
func (h *AdminHandler) ListRequests(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	subs, err := h.recorder.List(c.Request.Context(), limit)
	if err != nil {
		h.log.Error("failed to list submissions", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list requests"})
		return
	}
	c.JSON(http.StatusOK, subs)
}
