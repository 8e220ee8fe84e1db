package mnk

import (
	"fmt"

	"github.com/NamelessFaceless/xivanalysis/internal/data"
	"github.com/NamelessFaceless/xivanalysis/internal/module"
	"github.com/NamelessFaceless/xivanalysis/internal/modules/core"
	"github.com/NamelessFaceless/xivanalysis/internal/policy"
)

// CooldownsOverride rebinds the cooldowns handle to the Monk ordering: the
// three Fists stances merged into one row, then the damage and utility
// cooldowns.
func CooldownsOverride(tables *policy.Tables) (module.Descriptor, error) {
	order, ok := tables.CooldownOrder(data.Monk.Key)
	if !ok {
		return module.Descriptor{}, fmt.Errorf("no cooldown ordering for %s", data.Monk.Name)
	}
	return core.CooldownsDescriptor(order), nil
}
