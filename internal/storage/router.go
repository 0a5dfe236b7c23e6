package storage

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/and161185/ijazah-ledger/internal/errs"
)

// Router sends uploads to the pinning service when one is configured and
// falls back to the local directory.
type Router struct {
	local  Store
	pinned Store
	log    *zap.Logger
}

// NewRouter builds a router. pinned may be nil.
func NewRouter(local, pinned Store, log *zap.Logger) *Router {
	if log == nil {
		log = zap.NewNop()
	}
	return &Router{local: local, pinned: pinned, log: log}
}

// Name reports the preferred backend.
func (r *Router) Name() string {
	if r.pinned != nil {
		return r.pinned.Name()
	}
	return r.local.Name()
}

// Put stores data, preferring the pinning service.
func (r *Router) Put(ctx context.Context, data []byte, filename string) (string, error) {
	if r.pinned != nil {
		cid, err := r.pinned.Put(ctx, data, filename)
		if err == nil {
			return cid, nil
		}
		r.log.Warn("pinned upload failed, using local store", zap.String("filename", filename), zap.Error(err))
	}
	return r.local.Put(ctx, data, filename)
}

// Get resolves pinned identifiers remotely first, then locally.
func (r *Router) Get(ctx context.Context, cid string) (Object, error) {
	var pinnedErr error
	if IsPinnedCID(cid) && r.pinned != nil {
		obj, err := r.pinned.Get(ctx, cid)
		if err == nil {
			return obj, nil
		}
		r.log.Warn("pinned download failed, trying local store", zap.String("cid", cid), zap.Error(err))
		pinnedErr = err
	}
	if checkLocalCID(cid) != nil {
		if pinnedErr != nil {
			return Object{}, pinnedErr
		}
		if IsPinnedCID(cid) {
			return Object{}, errs.ErrNotFound
		}
	}
	obj, err := r.local.Get(ctx, cid)
	if err != nil && pinnedErr != nil && errors.Is(err, errs.ErrNotFound) && !errors.Is(pinnedErr, errs.ErrNotFound) {
		return Object{}, pinnedErr
	}
	return obj, err
}
