package attendance

import "context"

// AttendanceService defines business logic for attendance recording.
type AttendanceService interface {
	// RecordScan resolves the scanned code, runs the per-day state
	// machine, classifies the event against the active policy and
	// appends it to the log
	RecordScan(ctx context.Context, req RecordScanRequest) (ScanResponse, error)

	// ListDay retrieves all events recorded on one date ("YYYY-MM-DD";
	// empty means today)
	ListDay(ctx context.Context, date string) ([]TimeEventResponse, error)
}
