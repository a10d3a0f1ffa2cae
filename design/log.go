package design

import "github.com/sirupsen/logrus"

// log is the package-wide structured logger. Builder code logs at Trace
// for context push/pop, at Debug for union-find
// grouping decisions, and at Error immediately before every fail-stop
// return.
var log = logrus.New()

func init() {
	log.SetLevel(logrus.WarnLevel)
}

// SetLogLevel lets a host program turn up chipgo's internal tracing, e.g.
// design.SetLogLevel(logrus.TraceLevel) while debugging a snippet-grouping
// decision.
func SetLogLevel(level logrus.Level) {
	log.SetLevel(level)
}
