package bfconfigs

import (
	"github.com/reusee/taibf/cmds"
	"github.com/reusee/taibf/configs"
)

// Trace logs every live instruction at debug level.
type Trace bool

var _ configs.Configurable = Trace(false)

func (t Trace) ConfigExpr() string {
	return "trace"
}

var traceFlag = cmds.Switch("-trace", "log every instruction at debug level")

func (Module) Trace(
	loader configs.Loader,
) Trace {
	return Trace(*traceFlag || configs.First[bool](loader, "trace"))
}
