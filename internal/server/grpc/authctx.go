package grpcserver

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
)

type ctxKey string

const callerKey ctxKey = "ijz.caller"

// WithCaller stores the authenticated wallet address in context.
func WithCaller(ctx context.Context, addr common.Address) context.Context {
	return context.WithValue(ctx, callerKey, addr)
}

// CallerFromCtx fetches the wallet address from context.
func CallerFromCtx(ctx context.Context) (common.Address, bool) {
	v := ctx.Value(callerKey)
	if v == nil {
		return common.Address{}, false
	}
	a, ok := v.(common.Address)
	return a, ok
}
