package api

import (
	"context"
	"net/http"

	"accreditation-gateway/internal/configstore"
	"accreditation-gateway/internal/countries"
	"accreditation-gateway/internal/form"
	"accreditation-gateway/internal/i18n"
	"accreditation-gateway/internal/links"
	"accreditation-gateway/internal/models"
	"accreditation-gateway/internal/submissions"
	"accreditation-gateway/internal/ws"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PortalHandler struct {
	state     *configstore.State
	generator form.LetterGenerator
	recorder  *submissions.Recorder
	hub       *ws.Hub
	log       *zap.Logger
	degraded  bool
}

// NewPortalHandler serves the public portal surface. degraded marks a session
// that is running on the in-memory default because both the remote store and
// the fallback cache were unavailable at load time.
func NewPortalHandler(state *configstore.State, gen form.LetterGenerator, rec *submissions.Recorder, hub *ws.Hub, log *zap.Logger, degraded bool) *PortalHandler {
	return &PortalHandler{state: state, generator: gen, recorder: rec, hub: hub, log: log, degraded: degraded}
}

func requestLanguage(raw string) i18n.Language {
	lang := i18n.Language(raw)
	if !i18n.Supported(lang) {
		return i18n.DefaultLanguage
	}
	return lang
}

// GetPortal returns everything the form needs to become interactive: the
// sanitized configuration, the language bundle and the country directory.
func (h *PortalHandler) GetPortal(c *gin.Context) {
	lang := requestLanguage(c.Query("lang"))
	cfg := h.state.Snapshot()

	c.JSON(http.StatusOK, gin.H{
		"config":       cfg.Public(),
		"language":     lang,
		"translations": i18n.For(lang),
		"countries":    countries.All(),
		"degraded":     h.degraded,
	})
}

func (h *PortalHandler) GetCountries(c *gin.Context) {
	c.JSON(http.StatusOK, countries.All())
}

func (h *PortalHandler) GetTranslations(c *gin.Context) {
	lang := i18n.Language(c.Param("lang"))
	if !i18n.Supported(lang) {
		c.JSON(http.StatusNotFound, gin.H{"error": "unsupported language"})
		return
	}
	c.JSON(http.StatusOK, i18n.For(lang))
}

type SubmitRequest struct {
	Language   string `json:"language"`
	AgencyName string `json:"agencyName"`
	AgentID    string `json:"agentId"`
	Country    string `json:"country"`
	Whatsapp   string `json:"whatsapp"`
	AdminName  string `json:"adminName"`
	AdminID    string `json:"adminId"`
}

// notifyingRecorder pushes each persisted submission to the dashboard hub.
type notifyingRecorder struct {
	rec *submissions.Recorder
	hub *ws.Hub
}

func (n notifyingRecorder) Persist(ctx context.Context, record models.AgencyRecord, letter string, lang i18n.Language) (*models.Submission, error) {
	sub, err := n.rec.Persist(ctx, record, letter, lang)
	if err == nil && n.hub != nil {
		go n.hub.NotifySubmission(*sub)
	}
	return sub, err
}

// Submit runs one request through the form lifecycle: validate against the
// loaded visibility map, draft the letter, append the submission and hand the
// result back with the prebuilt outbound links.
func (h *PortalHandler) Submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lang := requestLanguage(req.Language)
	cfg := h.state.Snapshot()

	ctrl := form.NewController(cfg.ShowFields, lang, h.generator, notifyingRecorder{rec: h.recorder, hub: h.hub}, h.log)
	ctrl.SetField("agencyName", req.AgencyName)
	ctrl.SetField("agentId", req.AgentID)
	ctrl.SetField("country", req.Country)
	ctrl.SetField("whatsapp", req.Whatsapp)
	ctrl.SetField("adminName", req.AdminName)
	ctrl.SetField("adminId", req.AdminID)

	letter, err := ctrl.Submit(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": ctrl.Errors()})
		return
	}

	record := ctrl.Record()
	c.JSON(http.StatusOK, gin.H{
		"letter": letter,
		"record": record,
		"links": gin.H{
			"whatsapp": links.WhatsApp(cfg, lang, record, letter),
			"email":    links.Email(cfg, lang, record, letter),
		},
	})
}
