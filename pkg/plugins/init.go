// Package plugins wires the built-in algorithm set into the registry.
// Each scheme lives in its own subpackage and self-registers through
// its Register function; RegisterAll is the discovery entry point,
// called once at startup and again inside every worker subprocess.
package plugins

import (
	m01wf01 "github.com/electric-power/algo-service/pkg/plugins/m01/wf01"
	scmwf01 "github.com/electric-power/algo-service/pkg/plugins/scm/wf01"
	scmwf02 "github.com/electric-power/algo-service/pkg/plugins/scm/wf02"
	scmwf03 "github.com/electric-power/algo-service/pkg/plugins/scm/wf03"
	stmwf01 "github.com/electric-power/algo-service/pkg/plugins/stm/wf01"
	stmwf02 "github.com/electric-power/algo-service/pkg/plugins/stm/wf02"
	stmwf03 "github.com/electric-power/algo-service/pkg/plugins/stm/wf03"
)

// RegisterAll registers every built-in algorithm exactly once.
func RegisterAll() {
	scmwf01.Register()
	scmwf02.Register()
	scmwf03.Register()
	stmwf01.Register()
	stmwf02.Register()
	stmwf03.Register()
	m01wf01.Register()
}
