package services

import (
	"context"
	"fmt"
	"time"

	"commitlens/internal/models"
	"commitlens/pkg/classifier"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// APIVersion is reported by the banner and stats endpoints.
const APIVersion = "1.0.0"

// ClassificationService wraps the pure classifier engine and attaches the
// request-scoped extras the engine must not know about: result ids, echoed
// messages, and wall-clock timestamps.
type ClassificationService struct{}

func NewClassificationService() *ClassificationService {
	return &ClassificationService{}
}

// ClassifyMessage classifies a single commit message and derives style
// suggestions for it. Returns classifier.ErrEmptyMessage when the message is
// blank after trimming.
func (s *ClassificationService) ClassifyMessage(ctx context.Context, message string) (*models.ClassificationResult, error) {
	res, err := classifier.Classify(message)
	if err != nil {
		return nil, fmt.Errorf("classify message: %w", err)
	}

	var scope *string
	if res.Scope != "" {
		scope = &res.Scope
	}

	return &models.ClassificationResult{
		ID:          uuid.New(),
		Message:     message,
		Type:        res.Category,
		Scope:       scope,
		Description: res.Description,
		Confidence:  res.Confidence,
		Timestamp:   time.Now().Format(time.RFC3339),
		Suggestions: classifier.Suggestions(message, res),
	}, nil
}

// ClassifyBatch classifies each message independently, preserving input
// order. A failing item is recorded as a per-item error and never aborts the
// remaining items.
func (s *ClassificationService) ClassifyBatch(ctx context.Context, messages []string) (*models.BatchResult, error) {
	results := make([]models.BatchItemResult, 0, len(messages))

	for _, msg := range messages {
		result, err := s.ClassifyMessage(ctx, msg)
		if err != nil {
			log.WithField("message", msg).Warnf("Batch item failed: %v", err)
			results = append(results, models.BatchItemResult{
				Message: msg,
				Error:   err.Error(),
			})
			continue
		}
		results = append(results, models.BatchItemResult{
			Message: msg,
			Result:  result,
		})
	}

	return &models.BatchResult{
		Results: results,
		Total:   len(results),
	}, nil
}

// Types projects the rule table for display, in declaration order.
func (s *ClassificationService) Types() []models.CategoryInfo {
	defs := classifier.Categories()
	infos := make([]models.CategoryInfo, 0, len(defs))
	for _, def := range defs {
		infos = append(infos, models.CategoryInfo{
			ID:          def.ID,
			Description: def.Description,
			Keywords:    def.Keywords,
			Example:     fmt.Sprintf("%s: example commit message", def.ID),
		})
	}
	return infos
}

// Stats reports the size and ids of the rule table.
func (s *ClassificationService) Stats() models.Stats {
	defs := classifier.Categories()
	ids := make([]string, 0, len(defs))
	for _, def := range defs {
		ids = append(ids, def.ID)
	}
	return models.Stats{
		TotalCommitTypes: len(defs),
		SupportedTypes:   ids,
		APIVersion:       APIVersion,
	}
}
