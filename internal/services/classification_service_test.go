package services_test

import (
	"context"
	"testing"
	"time"

	"commitlens/internal/services"
	"commitlens/pkg/classifier"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassificationService_ClassifyMessage(t *testing.T) {
	svc := services.NewClassificationService()

	result, err := svc.ClassifyMessage(context.Background(), "feat(auth): add login")
	require.NoError(t, err)

	assert.Equal(t, "feat", result.Type)
	require.NotNil(t, result.Scope)
	assert.Equal(t, "auth", *result.Scope)
	assert.Equal(t, "add login", result.Description)
	assert.Equal(t, 0.95, result.Confidence)
	assert.Equal(t, "feat(auth): add login", result.Message)
	assert.Empty(t, result.Suggestions)

	// Serving-layer extras: a fresh id and a parseable RFC 3339 timestamp.
	assert.NotEqual(t, uuid.Nil, result.ID)
	_, err = time.Parse(time.RFC3339, result.Timestamp)
	assert.NoError(t, err)
}

func TestClassificationService_ClassifyMessage_NoScope(t *testing.T) {
	svc := services.NewClassificationService()

	result, err := svc.ClassifyMessage(context.Background(), "docs: update README")
	require.NoError(t, err)

	assert.Equal(t, "docs", result.Type)
	assert.Nil(t, result.Scope)
}

func TestClassificationService_ClassifyMessage_Empty(t *testing.T) {
	svc := services.NewClassificationService()

	_, err := svc.ClassifyMessage(context.Background(), "   ")
	assert.ErrorIs(t, err, classifier.ErrEmptyMessage)
}

func TestClassificationService_ClassifyBatch(t *testing.T) {
	svc := services.NewClassificationService()

	messages := []string{"feat: add login", "   ", "fixed the bug"}
	batch, err := svc.ClassifyBatch(context.Background(), messages)
	require.NoError(t, err)

	// One record per input, same order, total matches length.
	require.Len(t, batch.Results, 3)
	assert.Equal(t, 3, batch.Total)

	first := batch.Results[0]
	assert.Equal(t, "feat: add login", first.Message)
	require.NotNil(t, first.Result)
	assert.Equal(t, "feat", first.Result.Type)
	assert.Empty(t, first.Error)

	// The blank message fails on its own without aborting its siblings.
	second := batch.Results[1]
	assert.Equal(t, "   ", second.Message)
	assert.Nil(t, second.Result)
	assert.NotEmpty(t, second.Error)

	third := batch.Results[2]
	require.NotNil(t, third.Result)
	assert.Equal(t, "fix", third.Result.Type)
}

func TestClassificationService_ClassifyBatch_Empty(t *testing.T) {
	svc := services.NewClassificationService()

	batch, err := svc.ClassifyBatch(context.Background(), nil)
	require.NoError(t, err)

	assert.Empty(t, batch.Results)
	assert.Equal(t, 0, batch.Total)
}

func TestClassificationService_Types(t *testing.T) {
	svc := services.NewClassificationService()

	infos := svc.Types()
	require.Len(t, infos, 11)

	assert.Equal(t, "feat", infos[0].ID)
	assert.Equal(t, "A new feature", infos[0].Description)
	assert.Equal(t, "feat: example commit message", infos[0].Example)
	assert.Equal(t, "revert", infos[len(infos)-1].ID)
}

func TestClassificationService_Stats(t *testing.T) {
	svc := services.NewClassificationService()

	stats := svc.Stats()
	assert.Equal(t, 11, stats.TotalCommitTypes)
	require.Len(t, stats.SupportedTypes, 11)
	assert.Equal(t, "feat", stats.SupportedTypes[0])
	assert.Equal(t, services.APIVersion, stats.APIVersion)
}
