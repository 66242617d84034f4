package response

import (
	"hotel-booking/internal/usecase/commands"
)

type RoomFailureResponse struct {
	Line   int    `json:"line,omitempty"`
	Number string `json:"number,omitempty"`
	Reason string `json:"reason"`
}

type IngestReportResponse struct {
	Added   []string              `json:"added"`
	Skipped []string              `json:"skipped"`
	Failed  []RoomFailureResponse `json:"failed"`
}

func FromIngestReport(report *commands.IngestReport) *IngestReportResponse {
	resp := &IngestReportResponse{
		Added:   report.Added,
		Skipped: report.Skipped,
		Failed:  make([]RoomFailureResponse, len(report.Failed)),
	}
	if resp.Added == nil {
		resp.Added = []string{}
	}
	if resp.Skipped == nil {
		resp.Skipped = []string{}
	}
	for i, f := range report.Failed {
		resp.Failed[i] = RoomFailureResponse{
			Line:   f.Line,
			Number: f.Number,
			Reason: f.Reason,
		}
	}
	return resp
}
