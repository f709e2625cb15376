package modules

import (
	"github.com/hanlinworks/zhiguan/modules/catalog"
	"github.com/hanlinworks/zhiguan/modules/chronicle"
	"github.com/hanlinworks/zhiguan/pkg/application"
)

// BuiltInModules is ordered: catalog comes last because its frontend
// controller claims a catch-all route prefix.
var BuiltInModules = []application.Module{
	chronicle.NewModule(),
	catalog.NewModule(),
}

func Load(app application.Application, mods ...application.Module) error {
	for _, module := range mods {
		if err := module.Register(app); err != nil {
			return err
		}
	}
	return nil
}
