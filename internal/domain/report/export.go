package report

// ExportService renders a generated attendance report into downloadable
// document formats. The aggregator itself stays format-free.
type ExportService interface {
	// ToExcel renders the report as an .xlsx workbook
	ToExcel(rep AttendanceReport) ([]byte, error)

	// ToPDF renders the report as a PDF document
	ToPDF(rep AttendanceReport) ([]byte, error)
}
