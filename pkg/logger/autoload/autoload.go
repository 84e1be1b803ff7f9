// Package autoload initialises the global logger from LOG_* environment
// variables when imported.
package autoload

import (
	configx "github.com/tanpawarit/global-support-collab/pkg/config"
	logx "github.com/tanpawarit/global-support-collab/pkg/logger"
)

func init() {
	logx.Init(*configx.MustNew[logx.Config]("LOG"))
}
