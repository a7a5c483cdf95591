package service

import (
	"context"
	"fmt"

	"github.com/c-pro/geche"
	"github.com/herrerafreebnoapriv-debug/mop-ios/internal/adapter"
	"github.com/herrerafreebnoapriv-debug/mop-ios/internal/logger"
	"github.com/herrerafreebnoapriv-debug/mop-ios/models"
)

// resourceEntry is one row of the resource table. state, refs and handle
// change only under the table lock; handle and err are final once done is
// closed.
type resourceEntry struct {
	state  models.ResourceState
	refs   int
	handle *models.ResourceHandle
	err    error
	done   chan struct{}
}

type clientResourceService struct {
	auth    Authorizer
	adapter adapter.ServerAdapter
	logger  *logger.Logger

	table *geche.Locker[string, *resourceEntry]
}

// NewClientResourceService creates an empty resource loader.
func NewClientResourceService(auth Authorizer, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientResourceService {
	return &clientResourceService{
		auth:    auth,
		adapter: serverAdapter,
		logger:  logger,
		table:   geche.NewLocker[string, *resourceEntry](geche.NewMapCache[string, *resourceEntry]()),
	}
}

func (r *clientResourceService) Acquire(ctx context.Context, id, ref string) (*models.ResourceHandle, error) {
	tx := r.table.Lock()
	entry, err := tx.Get(id)
	if err != nil {
		entry = &resourceEntry{state: models.ResourceLoading, done: make(chan struct{})}
		tx.Set(id, entry)
		go r.fetch(logger.FromContext(ctx).WithContext(context.Background()), id, ref, entry)
	}
	entry.refs++

	if entry.state == models.ResourceCached {
		handle := entry.handle
		tx.Unlock()
		return handle, nil
	}
	tx.Unlock()

	select {
	case <-entry.done:
	case <-ctx.Done():
		r.drop(id, entry)
		return nil, ctx.Err()
	}

	if entry.err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrResourceFetchFailed, id, entry.err)
	}
	return entry.handle, nil
}

// fetch runs detached from the caller that started it; the outcome goes to
// every waiter of entry.
func (r *clientResourceService) fetch(ctx context.Context, id, ref string, entry *resourceEntry) {
	var (
		data     []byte
		mimeType string
	)
	err := r.auth.AuthorizedDo(ctx, func(ctx context.Context) error {
		var err error
		data, mimeType, err = r.adapter.FetchResource(ctx, ref)
		return err
	})

	tx := r.table.Lock()
	defer tx.Unlock()
	defer close(entry.done)

	current, getErr := tx.Get(id)
	owned := getErr == nil && current == entry

	if err != nil {
		r.logger.Warn().Err(err).Str("resource_id", id).Msg("resource fetch failed")
		entry.err = err
		entry.state = models.ResourceAbsent
		if owned {
			_ = tx.Del(id)
		}
		return
	}

	entry.handle = &models.ResourceHandle{ID: id, Data: data, MimeType: mimeType}
	entry.state = models.ResourceCached

	if owned && entry.refs == 0 {
		// every waiter gave up before the bytes arrived
		entry.state = models.ResourceAbsent
		entry.handle = nil
		_ = tx.Del(id)
	}
}

func (r *clientResourceService) Release(id string) {
	tx := r.table.Lock()
	defer tx.Unlock()

	entry, err := tx.Get(id)
	if err != nil {
		return
	}
	r.releaseLocked(tx, id, entry)
}

// drop releases the reference of a waiter that stopped waiting for entry.
func (r *clientResourceService) drop(id string, entry *resourceEntry) {
	tx := r.table.Lock()
	defer tx.Unlock()

	current, err := tx.Get(id)
	if err != nil || current != entry {
		return
	}
	r.releaseLocked(tx, id, entry)
}

func (r *clientResourceService) releaseLocked(tx *geche.Tx[string, *resourceEntry], id string, entry *resourceEntry) {
	if entry.refs > 0 {
		entry.refs--
	}
	if entry.refs > 0 || entry.state != models.ResourceCached {
		return
	}

	entry.handle.Data = nil
	entry.handle = nil
	entry.state = models.ResourceAbsent
	_ = tx.Del(id)
}

func (r *clientResourceService) With(ctx context.Context, id, ref string, fn func(h *models.ResourceHandle) error) error {
	handle, err := r.Acquire(ctx, id, ref)
	if err != nil {
		return err
	}
	defer r.Release(id)

	return fn(handle)
}

func (r *clientResourceService) State(id string) models.ResourceState {
	tx := r.table.RLock()
	defer tx.Unlock()

	entry, err := tx.Get(id)
	if err != nil {
		return models.ResourceAbsent
	}
	return entry.state
}

func (r *clientResourceService) Purge() {
	tx := r.table.Lock()
	defer tx.Unlock()

	for id := range tx.Snapshot() {
		_ = tx.Del(id)
	}
}
