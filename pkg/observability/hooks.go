// Package observability provides hooks for logging and metrics.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers register hooks at startup
// to receive events about tower operations and script execution.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetTowerHooks(&myTowerHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Tower().OnOperation("pushCup", t.Height(), err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Tower Hooks
// =============================================================================

// TowerHooks receives events from tower operations.
type TowerHooks interface {
	// OnOperation records one attempted tower operation. height is the tower
	// height after the attempt; err is nil on success.
	OnOperation(op string, height int, err error)

	// OnRedraw records a layout push to a visible canvas.
	OnRedraw(cups int)
}

// =============================================================================
// Script Hooks
// =============================================================================

// ScriptHooks receives events from command script execution.
type ScriptHooks interface {
	OnScriptStart(ctx context.Context, name string, commands int)
	OnScriptComplete(ctx context.Context, name string, executed, failed int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopTowerHooks is a no-op implementation of TowerHooks.
type NoopTowerHooks struct{}

func (NoopTowerHooks) OnOperation(string, int, error) {}
func (NoopTowerHooks) OnRedraw(int)                   {}

// NoopScriptHooks is a no-op implementation of ScriptHooks.
type NoopScriptHooks struct{}

func (NoopScriptHooks) OnScriptStart(context.Context, string, int) {}
func (NoopScriptHooks) OnScriptComplete(context.Context, string, int, int, time.Duration, error) {
}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	towerHooks  TowerHooks  = NoopTowerHooks{}
	scriptHooks ScriptHooks = NoopScriptHooks{}
	hooksMu     sync.RWMutex
)

// SetTowerHooks registers custom tower hooks.
// This should be called once at application startup before any tower is built.
func SetTowerHooks(h TowerHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		towerHooks = h
	}
}

// SetScriptHooks registers custom script hooks.
func SetScriptHooks(h ScriptHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		scriptHooks = h
	}
}

// Tower returns the registered tower hooks.
func Tower() TowerHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return towerHooks
}

// Script returns the registered script hooks.
func Script() ScriptHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return scriptHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	towerHooks = NoopTowerHooks{}
	scriptHooks = NoopScriptHooks{}
}
