// Package store abstracts the document database behind the minimal surface
// this backend needs: upsert-with-merge keyed by a slash-separated document
// path, e.g. "settings/main" or "floors/piso1/tables/m3".
package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no document exists at the path.
var ErrNotFound = errors.New("document not found")

// DocumentStore is a collection/document keyed store with upsert-merge
// semantics: Set creates the document or merges the given fields into it.
type DocumentStore interface {
	Set(ctx context.Context, path string, data map[string]interface{}) error
	Get(ctx context.Context, path string) (map[string]interface{}, error)
}
