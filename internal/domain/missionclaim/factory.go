package missionclaim

import (
	"context"

	"github.com/missionforge/backend/internal/entity"
	"github.com/missionforge/backend/pkg/errorx"
)

// Processor validates the content payload of a submission and returns it in
// normalized form, so only the fields the type defines are ever stored.
type Processor interface {
	Content() entity.Map
}

// NewProcessor builds the processor matching the submission type and parses
// the raw payload through it. A payload that does not satisfy the type's
// rules is rejected before anything touches the database.
func NewProcessor(ctx context.Context, submissionType entity.SubmissionType, content map[string]any) (Processor, error) {
	switch submissionType {
	case entity.SubmissionLink:
		return newLinkProcessor(ctx, content)

	case entity.SubmissionText:
		return newTextProcessor(ctx, content)

	case entity.SubmissionFile:
		return newFileProcessor(ctx, content)

	case entity.SubmissionSocialProof:
		return newSocialProofProcessor(ctx, content)

	default:
		return nil, errorx.New(errorx.BadRequest, "Invalid submission type %s", submissionType)
	}
}
