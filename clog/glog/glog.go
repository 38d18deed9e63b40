// Package glog routes clog output through github.com/golang/glog.
// Importing it for side effects installs the logger.
package glog

import (
	"fmt"

	"github.com/golang/glog"

	"github.com/cayleygraph/owlrdf/clog"
)

func init() {
	clog.SetLogger(Logger{})
}

// Logger forwards clog calls to glog, keeping the caller's file and line.
type Logger struct{}

func (Logger) Infof(format string, args ...interface{}) {
	glog.InfoDepth(3, fmt.Sprintf(format, args...))
}
func (Logger) Warningf(format string, args ...interface{}) {
	glog.WarningDepth(3, fmt.Sprintf(format, args...))
}
func (Logger) Errorf(format string, args ...interface{}) {
	glog.ErrorDepth(3, fmt.Sprintf(format, args...))
}
func (Logger) Fatalf(format string, args ...interface{}) {
	glog.FatalDepth(3, fmt.Sprintf(format, args...))
}

func (Logger) V(level int) bool {
	return bool(glog.V(glog.Level(level)))
}

func (Logger) SetV(v int) {
	glog.Warningf("changing log level is not supported; run command with '-v %d' flag", v)
}
