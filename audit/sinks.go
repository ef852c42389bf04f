package audit

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

// ConsoleSink writes one structured line per record via logrus, mirroring
// the teacher's convention of routing operational output through the
// structured logger rather than raw fmt.Fprintln.
type ConsoleSink struct {
	counting
	log *logrus.Logger
}

// NewConsoleSink builds a sink writing to w (os.Stdout if w is nil).
func NewConsoleSink(w io.Writer) *ConsoleSink {
	l := logrus.New()
	if w != nil {
		l.SetOutput(w)
	} else {
		l.SetOutput(os.Stdout)
	}
	l.SetFormatter(&logrus.JSONFormatter{})
	return &ConsoleSink{log: l}
}

func (s *ConsoleSink) LogEvent(_ context.Context, record Record) error {
	fields := logrus.Fields{
		"event":        record.Event.String(),
		"operation_id": record.OperationID,
		"principal":    record.Principal,
		"decision":     record.Decision,
		"policy":       record.PolicyName,
		"timestamp":    record.Timestamp,
	}
	if record.SessionID != nil {
		fields["session_id"] = *record.SessionID
	}
	for k, v := range record.Metadata {
		fields["meta_"+k] = v
	}
	s.log.WithFields(fields).Info("audit event")
	return nil
}

func (s *ConsoleSink) Flush(_ context.Context) error { return nil }

// NullSink discards every record unless built with keep set to true (see
// NewNullSink). Useful for tests and for deployments that
// compose their own out-of-process audit forwarding.
type NullSink struct {
	counting
	mu      sync.Mutex
	records []Record
	keep    bool
}

// NewNullSink builds a discarding sink. If keep is true, records are
// retained in memory for test assertions (NewNullSink(true).Records()).
func NewNullSink(keep bool) *NullSink {
	return &NullSink{keep: keep}
}

func (s *NullSink) LogEvent(_ context.Context, record Record) error {
	if !s.keep {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, record)
	return nil
}

func (s *NullSink) Flush(_ context.Context) error { return nil }

// Records returns the retained records, if keep was set at construction.
func (s *NullSink) Records() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// FailingSink always fails LogEvent/Flush. Used to exercise the "audit
// failure never denies an operation" invariant in tests.
type FailingSink struct {
	counting
	Err error
}

func (s *FailingSink) LogEvent(_ context.Context, _ Record) error {
	s.bump()
	if s.Err != nil {
		return s.Err
	}
	return fmt.Errorf("audit sink unavailable")
}

func (s *FailingSink) Flush(_ context.Context) error {
	return s.LogEvent(context.Background(), Record{})
}
