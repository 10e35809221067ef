package http

import (
	"fmt"
	"net/http"

	"github.com/tapatrack/tapatrack-backend-go/internal/domain/report"
	"github.com/tapatrack/tapatrack-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
	ExportExcel(w http.ResponseWriter, r *http.Request)
	ExportPDF(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
	exportService report.ExportService
}

func NewReportHandler(reportService report.ReportService, exportService report.ExportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
		exportService: exportService,
	}
}

func reportRequestFromQuery(r *http.Request) report.AttendanceReportRequest {
	req := report.AttendanceReportRequest{
		DateFrom: r.URL.Query().Get("date_from"),
		DateTo:   r.URL.Query().Get("date_to"),
	}

	if employeeID := r.URL.Query().Get("employee_id"); employeeID != "" {
		req.EmployeeID = &employeeID
	}

	return req
}

// Generate implements ReportHandler.
func (h *reportHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.Generate(r.Context(), reportRequestFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ExportExcel implements ReportHandler.
func (h *reportHandlerImpl) ExportExcel(w http.ResponseWriter, r *http.Request) {
	req := reportRequestFromQuery(r)

	rep, err := h.reportService.Generate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	body, err := h.exportService.ToExcel(rep)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filename := fmt.Sprintf("attendance_report_%s_%s.xlsx", req.DateFrom, req.DateTo)
	response.Attachment(w, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", filename, body)
}

// ExportPDF implements ReportHandler.
func (h *reportHandlerImpl) ExportPDF(w http.ResponseWriter, r *http.Request) {
	req := reportRequestFromQuery(r)

	rep, err := h.reportService.Generate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	body, err := h.exportService.ToPDF(rep)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filename := fmt.Sprintf("attendance_report_%s_%s.pdf", req.DateFrom, req.DateTo)
	response.Attachment(w, "application/pdf", filename, body)
}
