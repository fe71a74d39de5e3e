// Package logging provides structured logging for rowkit.
//
// This package wraps Go's log/slog to provide JSON-formatted logs with
// persistent context attributes. Sections and managers accept a [Logger] so
// that contract violations and structural edits can be traced after the fact
// without the data model printing anything on its own.
//
// # Thread Safety
//
// [Logger] is safe for concurrent use. Child loggers created via With*
// methods share the underlying writer.
//
// # Basic Usage
//
//	logger, err := logging.NewLogger("/tmp/rowkit.log", "INFO")
//	if err != nil {
//	    return err
//	}
//	defer logger.Close()
//
//	logger.Info("table loaded", "sections", 3)
//
// # Context Propagation
//
//	sectionLogger := logger.WithSection(s.ID())
//	opLogger := sectionLogger.WithOperation("insert")
//	opLogger.Warn("index out of bounds", "index", 9, "count", 4)
//
// Output:
//
//	{"time":"...","level":"WARN","msg":"index out of bounds","section_id":"...","op":"insert","index":9,"count":4}
//
// # Testing
//
// Use [NopLogger] to discard output, or [NewLoggerWithWriter] with a
// bytes.Buffer to assert on entries.
//
// # Configuration
//
//	logging:
//	  enabled: true
//	  level: info
//	  file: ""      # empty writes to stderr
package logging
