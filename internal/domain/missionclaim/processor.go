package missionclaim

import (
	"context"
	"net/url"
	"strings"

	"github.com/fatih/structs"
	"github.com/missionforge/backend/internal/entity"
	"github.com/missionforge/backend/pkg/errorx"
	"github.com/missionforge/backend/pkg/xcontext"
	"github.com/mitchellh/mapstructure"
)

// linkProcessor accepts a single absolute URL the participant claims proves
// task completion.
type linkProcessor struct {
	Link string `mapstructure:"link" structs:"link"`
}

func newLinkProcessor(ctx context.Context, content map[string]any) (*linkProcessor, error) {
	processor := linkProcessor{}
	err := mapstructure.Decode(content, &processor)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot decode link content: %v", err)
		return nil, errorx.New(errorx.BadRequest, "Invalid submission content")
	}

	if processor.Link == "" {
		return nil, errorx.New(errorx.BadRequest, "Link is required")
	}

	if _, err := url.ParseRequestURI(processor.Link); err != nil {
		return nil, errorx.New(errorx.BadRequest, "Link must be an absolute URL")
	}

	return &processor, nil
}

func (p *linkProcessor) Content() entity.Map {
	return structs.Map(p)
}

// textProcessor accepts free-form text for the reviewer to judge.
type textProcessor struct {
	Text string `mapstructure:"text" structs:"text"`
}

func newTextProcessor(ctx context.Context, content map[string]any) (*textProcessor, error) {
	processor := textProcessor{}
	err := mapstructure.Decode(content, &processor)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot decode text content: %v", err)
		return nil, errorx.New(errorx.BadRequest, "Invalid submission content")
	}

	if strings.TrimSpace(processor.Text) == "" {
		return nil, errorx.New(errorx.BadRequest, "Text cannot be empty")
	}

	return &processor, nil
}

func (p *textProcessor) Content() entity.Map {
	return structs.Map(p)
}

// fileProcessor accepts the URL of an already uploaded file. The upload
// itself happens out of band, the workflow only keeps the pointer.
type fileProcessor struct {
	FileURL string `mapstructure:"file_url" structs:"file_url"`
	Name    string `mapstructure:"name" structs:"name"`
}

func newFileProcessor(ctx context.Context, content map[string]any) (*fileProcessor, error) {
	processor := fileProcessor{}
	err := mapstructure.Decode(content, &processor)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot decode file content: %v", err)
		return nil, errorx.New(errorx.BadRequest, "Invalid submission content")
	}

	if processor.FileURL == "" {
		return nil, errorx.New(errorx.BadRequest, "File url is required")
	}

	if _, err := url.ParseRequestURI(processor.FileURL); err != nil {
		return nil, errorx.New(errorx.BadRequest, "File url must be an absolute URL")
	}

	return &processor, nil
}

func (p *fileProcessor) Content() entity.Map {
	return structs.Map(p)
}

// socialProofProcessor accepts a platform name plus the handle or post that
// demonstrates the social action.
type socialProofProcessor struct {
	Platform string `mapstructure:"platform" structs:"platform"`
	Handle   string `mapstructure:"handle" structs:"handle"`
}

func newSocialProofProcessor(ctx context.Context, content map[string]any) (*socialProofProcessor, error) {
	processor := socialProofProcessor{}
	err := mapstructure.Decode(content, &processor)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot decode social proof content: %v", err)
		return nil, errorx.New(errorx.BadRequest, "Invalid submission content")
	}

	if processor.Platform == "" {
		return nil, errorx.New(errorx.BadRequest, "Platform is required")
	}

	if processor.Handle == "" {
		return nil, errorx.New(errorx.BadRequest, "Handle is required")
	}

	return &processor, nil
}

func (p *socialProofProcessor) Content() entity.Map {
	return structs.Map(p)
}
