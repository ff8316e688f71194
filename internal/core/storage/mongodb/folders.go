package mongodb

import (
	"context"

	"github.com/fakturo-lab/fakturo/internal/core/storage"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FolderAdapter implements storage.FolderStore over the shared connection.
type FolderAdapter struct {
	a *Adapter
}

// Folders returns the folder store backed by this adapter.
func (a *Adapter) Folders() *FolderAdapter {
	return &FolderAdapter{a: a}
}

// Find returns folders, newest first, capped at limit.
func (s *FolderAdapter) Find(ctx context.Context, limit int) ([]storage.Folder, error) {
	col, err := s.a.collection(ctx, colFolders)
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit)).
		SetMaxTime(queryMaxTime)

	cursor, err := col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, s.a.fail("find folders", err)
	}
	defer cursor.Close(ctx)

	var docs []folderDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, s.a.fail("decode folders", err)
	}

	folders := make([]storage.Folder, 0, len(docs))
	for _, doc := range docs {
		folders = append(folders, doc.toDomain())
	}
	return folders, nil
}
