package search

import (
	"context"
	"errors"
	"path"

	"github.com/blevesearch/bleve/v2"
	"github.com/missionforge/backend/pkg/logger"
	"github.com/missionforge/backend/pkg/xcontext"
	"github.com/puzpuzpuz/xsync"
)

const missionDoc = "mission"

type MissionData struct {
	Title       string
	Description string
}

// Index is the full-text search surface of the server. Everything behind it
// is local bleve indexes, one per document kind, opened lazily.
type Index interface {
	IndexMission(ctx context.Context, id string, data MissionData) error
	DeleteMission(ctx context.Context, id string) error
	SearchMission(ctx context.Context, query string, offset, limit int) ([]string, error)
	Close()
}

type bleveIndex struct {
	logger   logger.Logger
	indexDir string
	indexes  *xsync.MapOf[string, bleve.Index]
}

func NewBleveIndex(ctx context.Context) *bleveIndex {
	return &bleveIndex{
		logger:   xcontext.Logger(ctx),
		indexDir: xcontext.Configs(ctx).Search.IndexDir,
		indexes:  xsync.NewMapOf[bleve.Index](),
	}
}

func (i *bleveIndex) IndexMission(ctx context.Context, id string, data MissionData) error {
	return i.index(missionDoc, id, data)
}

func (i *bleveIndex) DeleteMission(ctx context.Context, id string) error {
	index, err := i.getIndexByDocument(missionDoc)
	if err != nil {
		return err
	}

	return index.Delete(id)
}

func (i *bleveIndex) SearchMission(ctx context.Context, query string, offset, limit int) ([]string, error) {
	index, err := i.getIndexByDocument(missionDoc)
	if err != nil {
		return nil, err
	}

	req := bleve.NewSearchRequestOptions(bleve.NewMatchQuery(query), limit, offset, false)
	searchResults, err := index.Search(req)
	if err != nil {
		return nil, err
	}

	ids := []string{}
	for _, match := range searchResults.Hits {
		ids = append(ids, match.ID)
	}

	return ids, nil
}

func (i *bleveIndex) Close() {
	i.logger.Infof("Closing all indexers...")

	i.indexes.Range(func(document string, index bleve.Index) bool {
		if err := index.Close(); err != nil {
			i.logger.Errorf("Cannot close indexer %s: %v", document, err)
		}

		return true
	})

	i.logger.Infof("Closing all indexers...done")
}

func (i *bleveIndex) index(document, id string, data any) error {
	index, err := i.getIndexByDocument(document)
	if err != nil {
		return err
	}

	record, err := index.Document(id)
	if err != nil {
		return err
	}

	// Delete if the record existed.
	if record != nil {
		if err := index.Delete(id); err != nil {
			return err
		}
	}

	return index.Index(id, data)
}

func (i *bleveIndex) getIndexByDocument(document string) (bleve.Index, error) {
	index, ok := i.indexes.Load(document)
	if !ok {
		i.logger.Infof("A new document index is added: %s", document)

		var err error
		indexPath := path.Join(i.indexDir, document)
		index, err = bleve.New(indexPath, bleve.NewIndexMapping())
		if err != nil {
			if !errors.Is(err, bleve.ErrorIndexPathExists) {
				return nil, err
			}

			index, err = bleve.Open(indexPath)
			if err != nil {
				return nil, err
			}
		}

		i.indexes.Store(document, index)
	}

	return index, nil
}
