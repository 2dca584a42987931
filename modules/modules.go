package modules

import (
	"github.com/blumenos/gridadmin/modules/billing"
	"github.com/blumenos/gridadmin/modules/grid"
	"github.com/blumenos/gridadmin/modules/hrm"
	"github.com/blumenos/gridadmin/modules/vendors"
	"github.com/blumenos/gridadmin/pkg/application"
)

// BuiltInModules lists every module the server loads, in registration order.
func BuiltInModules() []application.Module {
	return []application.Module{
		grid.NewModule(),
		hrm.NewModule(),
		vendors.NewModule(),
		billing.NewModule(),
	}
}
