package usecase

import "context"

const maxReportedTables = 10

// DiagnosticsReport describes the state of the optional storage
// capability. Statuses are human-readable strings, never errors.
type DiagnosticsReport struct {
	Database         string
	ConnectionStatus string
	Tables           []string
}

// Diagnostics probes the fetch log, best-effort. Probe errors are
// rendered into the report instead of being returned.
func (s *Service) Diagnostics(ctx context.Context) DiagnosticsReport {
	rep := DiagnosticsReport{
		Database:         "not available",
		ConnectionStatus: "not connected",
	}
	if s.store == nil {
		return rep
	}

	if err := s.store.Ping(ctx); err != nil {
		rep.Database = "error: " + truncate(err.Error(), 50)
		return rep
	}
	rep.Database = "connected"
	rep.ConnectionStatus = "connected"

	tables, err := s.store.Tables(ctx)
	if err != nil {
		rep.Database = "connected but error: " + truncate(err.Error(), 50)
		return rep
	}
	if len(tables) > maxReportedTables {
		tables = tables[:maxReportedTables]
	}
	rep.Tables = tables
	return rep
}
