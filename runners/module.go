package runners

import (
	"github.com/reusee/dscope"
	"github.com/reusee/taibf/bfvm"
	"github.com/reusee/taibf/debugs"
	"github.com/reusee/taibf/logs"
	"github.com/reusee/taibf/sources"
)

type Module struct {
	dscope.Module
	Logs    logs.Module
	VM      bfvm.Module
	Sources sources.Module
	Debugs  debugs.Module
}
