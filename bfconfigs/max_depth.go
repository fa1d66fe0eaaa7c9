package bfconfigs

import (
	"github.com/reusee/taibf/cmds"
	"github.com/reusee/taibf/configs"
	"github.com/reusee/taibf/vars"
)

// MaxDepth bounds how deeply loop replays may nest. 0 is unlimited.
type MaxDepth int

var _ configs.Configurable = MaxDepth(0)

func (m MaxDepth) ConfigExpr() string {
	return "max_depth"
}

var maxDepthFlag = cmds.Var[int]("-max-depth", "limit nested loop replays")

func (Module) MaxDepth(
	loader configs.Loader,
) MaxDepth {
	return MaxDepth(vars.FirstNonZero(
		*maxDepthFlag,
		configs.First[int](loader, "max_depth"),
	))
}
