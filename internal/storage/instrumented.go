package storage

import (
	"context"
	"io"

	"github.com/rtaweb/backend/internal/metrics"
)

// instrumented counts every call against the wrapped provider.
type instrumented struct {
	provider string
	next     Storage
}

// Instrument wraps s so each Save/Delete is recorded under provider.
func Instrument(provider string, s Storage) Storage {
	return &instrumented{provider: provider, next: s}
}

func (i *instrumented) Save(ctx context.Context, key string, data io.Reader, contentType string) (string, error) {
	url, err := i.next.Save(ctx, key, data, contentType)
	metrics.ObserveStorage(i.provider, "save", err)
	return url, err
}

func (i *instrumented) Delete(ctx context.Context, key string) error {
	err := i.next.Delete(ctx, key)
	metrics.ObserveStorage(i.provider, "delete", err)
	return err
}
