package backend

import (
	"sort"
	"sync"

	"github.com/samber/lo"

	"github.com/c2fo/ftpsession/types"
)

var mmu sync.RWMutex
var m map[string]types.Dialer

// Register a new transport dialer in backend map under a URI scheme, ie "ftp", "ftps"
func Register(scheme string, d types.Dialer) {
	mmu.Lock()
	m[scheme] = d
	mmu.Unlock()
}

// Unregister unregisters a dialer from backend map
func Unregister(scheme string) {
	mmu.Lock()
	delete(m, scheme)
	mmu.Unlock()
}

// UnregisterAll unregisters all dialers from backend map
func UnregisterAll() {
	// mainly for tests
	mmu.Lock()
	m = make(map[string]types.Dialer)
	mmu.Unlock()
}

// Backend returns the dialer registered for scheme, or nil
func Backend(scheme string) types.Dialer {
	mmu.RLock()
	defer mmu.RUnlock()
	return m[scheme]
}

// RegisteredBackends returns a sorted array of registered schemes
func RegisteredBackends() []string {
	mmu.RLock()
	f := lo.Keys(m)
	mmu.RUnlock()
	sort.Strings(f)
	return f
}

func init() {
	m = make(map[string]types.Dialer)
}
