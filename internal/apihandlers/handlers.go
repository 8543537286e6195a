package apihandlers

import (
	"errors"
	"net/http"

	"commitlens/internal/app"
	"commitlens/internal/services"
	"commitlens/pkg/classifier"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type APIHandler struct {
	App *app.App
}

func NewAPIHandler(app *app.App) *APIHandler {
	return &APIHandler{App: app}
}

// RootHandler serves the API banner with the endpoint map.
func (h *APIHandler) RootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Commit Message Classifier API",
		"version": services.APIVersion,
		"endpoints": gin.H{
			"/classify":       "POST - Classify a single commit message",
			"/classify/batch": "POST - Classify multiple commit messages",
			"/types":          "GET - Get all commit types and their descriptions",
		},
	})
}

func (h *APIHandler) ClassifyHandler(c *gin.Context) {
	req, err := parseClassifyRequest(c)
	if err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	result, err := h.App.ClassificationService.ClassifyMessage(c.Request.Context(), req.Message)
	if err != nil {
		if errors.Is(err, classifier.ErrEmptyMessage) {
			BadRequest(c, "Empty commit message")
			return
		}
		// Don't leak internals to the caller; the log has the detail.
		log.Errorf("ClassifyHandler: classification failed: %v", err)
		Internal(c, "Classification failed")
		return
	}

	log.WithFields(log.Fields{
		"type":       result.Type,
		"confidence": result.Confidence,
	}).Debug("Classified commit message")

	c.JSON(http.StatusOK, result)
}

// parseClassifyRequest parses and validates the classify request body.
func parseClassifyRequest(c *gin.Context) (ClassifyRequest, error) {
	var req ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *APIHandler) BatchClassifyHandler(c *gin.Context) {
	var req BatchClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	batch, err := h.App.ClassificationService.ClassifyBatch(c.Request.Context(), req.Messages)
	if err != nil {
		log.Errorf("BatchClassifyHandler: batch classification failed: %v", err)
		Internal(c, "Batch classification failed")
		return
	}

	log.WithField("total", batch.Total).Debug("Classified commit message batch")

	c.JSON(http.StatusOK, batch)
}

// TypesHandler lists every commit type with its description, keywords, and an
// example message, keyed by type id.
func (h *APIHandler) TypesHandler(c *gin.Context) {
	infos := h.App.ClassificationService.Types()

	resp := make(map[string]gin.H, len(infos))
	for _, info := range infos {
		resp[info.ID] = gin.H{
			"description": info.Description,
			"keywords":    info.Keywords,
			"example":     info.Example,
		}
	}
	c.JSON(http.StatusOK, resp)
}

func (h *APIHandler) StatsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.App.ClassificationService.Stats())
}

// ClassifyRequest represents the JSON body for single classification
type ClassifyRequest struct {
	Message string `json:"message"`
}

// BatchClassifyRequest represents the JSON body for batch classification
type BatchClassifyRequest struct {
	Messages []string `json:"messages"`
}
