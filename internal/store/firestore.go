package store

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type firestoreStore struct{ client *firestore.Client }

// NewFirestoreStore wraps a Firestore client as a DocumentStore.
// Concurrent writers are resolved by Firestore's own last-write-wins
// per-document semantics; no coordination happens here.
func NewFirestoreStore(client *firestore.Client) DocumentStore {
	return &firestoreStore{client: client}
}

func (s *firestoreStore) Set(ctx context.Context, path string, data map[string]interface{}) error {
	_, err := s.client.Doc(path).Set(ctx, data, firestore.MergeAll)
	return err
}

func (s *firestoreStore) Get(ctx context.Context, path string) (map[string]interface{}, error) {
	snap, err := s.client.Doc(path).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return snap.Data(), nil
}
