package compiler

import (
	"github.com/typedsettings/typedsettings/pkg/schema"
)

// ResolveTier selects the effective property map of an entry for the
// requested tier.
//
// The dev tier passes through verbatim when it is the requested tier or when
// the requested tier is not defined for the entry. Otherwise the requested
// tier is merged with dev: its own values win for every key it defines, and
// keys unique to dev are pulled in. A tier can therefore partially override
// dev without restating every key. Fails with a MissingTier error when the
// entry has no dev tier at all.
func ResolveTier(tiers map[string]*schema.PropertyMap, tier string) (*schema.PropertyMap, error) {
	dev, ok := tiers[schema.TierDev]
	if !ok {
		return nil, schema.NewMissingTierError("")
	}

	if tier == schema.TierDev || tier == "" {
		return dev, nil
	}
	requested, ok := tiers[tier]
	if !ok {
		return dev, nil
	}

	// Same key sets means nothing to merge.
	missing := keysOnlyIn(dev, requested)
	extra := keysOnlyIn(requested, dev)
	if len(missing) == 0 && len(extra) == 0 {
		return requested, nil
	}

	merged := requested.Clone()
	for _, key := range missing {
		value, _ := dev.Get(key)
		merged.Set(key, schema.CloneValue(value))
	}
	return merged, nil
}

// keysOnlyIn returns the keys of a that b does not define, in a's order.
func keysOnlyIn(a, b *schema.PropertyMap) []string {
	var keys []string
	for _, key := range a.Keys() {
		if _, ok := b.Get(key); !ok {
			keys = append(keys, key)
		}
	}
	return keys
}
