// Package hooks provides default hook implementations.
package hooks

import (
	"context"

	"github.com/arloliu/xcbalance/types"
)

// NopHooks implements Hooks with no-op callbacks.
//
// This is the default implementation used when no custom hooks are provided,
// eliminating the need for nil checks throughout the codebase.
type NopHooks struct{}

// Compile-time assertions that NopHooks implements hook callbacks.
var (
	_ func(context.Context, types.Summary) error = (*NopHooks)(nil).OnBuildComplete
	_ func(context.Context, error) error         = (*NopHooks)(nil).OnError
)

// NewNop creates a new no-op hooks implementation.
func NewNop() types.Hooks {
	h := &NopHooks{}
	return types.Hooks{
		OnBuildComplete: h.OnBuildComplete,
		OnError:         h.OnError,
	}
}

// Fill returns a copy of hooks where every nil callback is replaced by a no-op.
func Fill(hooks *types.Hooks) types.Hooks {
	filled := NewNop()
	if hooks == nil {
		return filled
	}
	if hooks.OnBuildComplete != nil {
		filled.OnBuildComplete = hooks.OnBuildComplete
	}
	if hooks.OnError != nil {
		filled.OnError = hooks.OnError
	}

	return filled
}

// OnBuildComplete is a no-op implementation.
func (h *NopHooks) OnBuildComplete(ctx context.Context, summary types.Summary) error {
	return nil
}

// OnError is a no-op implementation.
func (h *NopHooks) OnError(ctx context.Context, err error) error {
	return nil
}
