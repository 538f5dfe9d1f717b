package strategy

import (
	"fmt"
	"slices"
	"strings"

	"github.com/puzpuzpuz/xsync/v4"

	"github.com/arloliu/xcbalance/types"
)

// Factory creates a strategy instance.
type Factory func() types.DistributionStrategy

// NameDefault is the strategy used when none is configured.
const NameDefault = NameLeastLoaded

var registry = xsync.NewMap[string, Factory]()

// aliases map accepted configuration spellings to canonical names.
var aliases = map[string]string{
	"default":    NameDefault,
	"replicated": NameDefault,
	"":           NameDefault,
}

func init() {
	Register(NameLeastLoaded, func() types.DistributionStrategy { return NewLeastLoaded() })
	Register(NameFillIn, func() types.DistributionStrategy { return NewFillIn() })
	Register(NameRoundRobin, func() types.DistributionStrategy { return NewRoundRobin() })
	Register(NameAffinity, func() types.DistributionStrategy { return NewAffinity() })
}

// Register makes a strategy selectable by name. Names are case-insensitive;
// registering an existing name replaces it.
//
// Parameters:
//   - name: Strategy name (e.g., "replicated-custom")
//   - factory: Constructor invoked on every Lookup
func Register(name string, factory Factory) {
	registry.Store(strings.ToLower(strings.TrimSpace(name)), factory)
}

// Canonical returns the canonical registry spelling of a configured name.
func Canonical(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if alias, ok := aliases[n]; ok {
		return alias
	}

	return n
}

// Lookup resolves a configured strategy name to a new strategy instance.
//
// Names are case-insensitive; "default" and "replicated" select the default
// strategy.
//
// Returns:
//   - types.DistributionStrategy: New strategy instance
//   - error: types.ErrUnknownStrategy (wrapped) for an unregistered name
func Lookup(name string) (types.DistributionStrategy, error) {
	factory, ok := registry.Load(Canonical(name))
	if !ok {
		return nil, fmt.Errorf("%w: %s", types.ErrUnknownStrategy, strings.ToUpper(name))
	}

	return factory(), nil
}

// Names returns the registered strategy names in ascending order.
func Names() []string {
	names := make([]string, 0, registry.Size())
	registry.Range(func(name string, _ Factory) bool {
		names = append(names, name)
		return true
	})
	slices.Sort(names)

	return names
}
