package testing

import (
	"fmt"
	"strings"
	"testing"

	"github.com/arloliu/xcbalance/types"
)

// NewTestLogger returns a logger that writes through t.Logf, so output only
// shows for failing tests or with -v.
func NewTestLogger(t *testing.T) types.Logger {
	return &testLogger{t: t}
}

// NewRankLogger is NewTestLogger with every line tagged by rank, for
// in-process multi-rank jobs.
func NewRankLogger(t *testing.T, rank int) types.Logger {
	return &testLogger{t: t, prefix: fmt.Sprintf("[rank %d] ", rank)}
}

type testLogger struct {
	t      *testing.T
	prefix string
}

var _ types.Logger = (*testLogger)(nil)

func (l *testLogger) Debug(msg string, keysAndValues ...any) { l.log("DEBUG", msg, keysAndValues) }
func (l *testLogger) Info(msg string, keysAndValues ...any)  { l.log("INFO", msg, keysAndValues) }
func (l *testLogger) Warn(msg string, keysAndValues ...any)  { l.log("WARN", msg, keysAndValues) }
func (l *testLogger) Error(msg string, keysAndValues ...any) { l.log("ERROR", msg, keysAndValues) }

func (l *testLogger) Fatal(msg string, keysAndValues ...any) {
	l.t.Helper()
	l.t.Fatalf("%sFATAL %s%s", l.prefix, msg, formatFields(keysAndValues))
}

func (l *testLogger) log(level, msg string, keysAndValues []any) {
	l.t.Helper()
	l.t.Logf("%s%s %s%s", l.prefix, level, msg, formatFields(keysAndValues))
}

// formatFields renders key-value pairs as " k=v"; a dangling key gets "<missing>".
func formatFields(keysAndValues []any) string {
	var sb strings.Builder
	for i := 0; i < len(keysAndValues); i += 2 {
		sb.WriteByte(' ')
		fmt.Fprint(&sb, keysAndValues[i])
		sb.WriteByte('=')
		if i+1 < len(keysAndValues) {
			fmt.Fprint(&sb, keysAndValues[i+1])
		} else {
			sb.WriteString("<missing>")
		}
	}

	return sb.String()
}
