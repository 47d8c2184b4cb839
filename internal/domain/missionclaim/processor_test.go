package missionclaim

import (
	"context"
	"testing"

	"github.com/missionforge/backend/internal/entity"
	"github.com/missionforge/backend/pkg/logger"
	"github.com/missionforge/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func testContext() context.Context {
	return xcontext.WithLogger(context.Background(), logger.NewLogger(logger.SILENCE))
}

func Test_linkProcessor(t *testing.T) {
	ctx := testContext()

	processor, err := NewProcessor(ctx, entity.SubmissionLink,
		map[string]any{"link": "https://example.com/proof"})
	require.NoError(t, err)
	require.Equal(t, entity.Map{"link": "https://example.com/proof"}, processor.Content())

	_, err = NewProcessor(ctx, entity.SubmissionLink, map[string]any{})
	require.Error(t, err)

	_, err = NewProcessor(ctx, entity.SubmissionLink, map[string]any{"link": "not a url"})
	require.Error(t, err)

	_, err = NewProcessor(ctx, entity.SubmissionLink, map[string]any{"link": "relative/path"})
	require.Error(t, err)
}

func Test_textProcessor(t *testing.T) {
	ctx := testContext()

	processor, err := NewProcessor(ctx, entity.SubmissionText,
		map[string]any{"text": "I finished the task"})
	require.NoError(t, err)
	require.Equal(t, entity.Map{"text": "I finished the task"}, processor.Content())

	_, err = NewProcessor(ctx, entity.SubmissionText, map[string]any{"text": "   "})
	require.Error(t, err)
}

func Test_fileProcessor(t *testing.T) {
	ctx := testContext()

	processor, err := NewProcessor(ctx, entity.SubmissionFile,
		map[string]any{"file_url": "https://cdn.example.com/report.pdf", "name": "report.pdf"})
	require.NoError(t, err)
	require.Equal(t, entity.Map{
		"file_url": "https://cdn.example.com/report.pdf",
		"name":     "report.pdf",
	}, processor.Content())

	_, err = NewProcessor(ctx, entity.SubmissionFile, map[string]any{"name": "report.pdf"})
	require.Error(t, err)
}

func Test_socialProofProcessor(t *testing.T) {
	ctx := testContext()

	processor, err := NewProcessor(ctx, entity.SubmissionSocialProof,
		map[string]any{"platform": "twitter", "handle": "@someone"})
	require.NoError(t, err)
	require.Equal(t, entity.Map{"platform": "twitter", "handle": "@someone"}, processor.Content())

	_, err = NewProcessor(ctx, entity.SubmissionSocialProof, map[string]any{"platform": "twitter"})
	require.Error(t, err)

	_, err = NewProcessor(ctx, entity.SubmissionSocialProof, map[string]any{"handle": "@someone"})
	require.Error(t, err)
}

func Test_unknownType(t *testing.T) {
	_, err := NewProcessor(testContext(), entity.SubmissionType("unknown"), map[string]any{})
	require.Error(t, err)
}

func Test_contentIsNormalized(t *testing.T) {
	// Fields outside the type's schema are dropped from the stored content.
	processor, err := NewProcessor(testContext(), entity.SubmissionText,
		map[string]any{"text": "done", "unexpected": "field"})
	require.NoError(t, err)
	require.Equal(t, entity.Map{"text": "done"}, processor.Content())
}
