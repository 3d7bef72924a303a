// Package dto provides HTTP response data transfer objects and RFC 9457
// Problem Details error responses for the inbound HTTP adapter layer.
package dto

import "github.com/jsamuelsen11/partner-report/internal/domain/report"

// RelationshipResponse is one company's line of the report.
type RelationshipResponse struct {
	Company string `json:"company"`
	Partner string `json:"partner,omitempty"`
	Count   int    `json:"count"`
	Line    string `json:"line"`
}

// ReportResponse is the JSON rendering of a relationship report.
type ReportResponse struct {
	Relationships []RelationshipResponse `json:"relationships"`
	Count         int                    `json:"count"`
}

// ToReportResponse converts a domain report to its JSON response DTO.
func ToReportResponse(rep *report.Report) ReportResponse {
	items := make([]RelationshipResponse, len(rep.Relationships))
	for i, rel := range rep.Relationships {
		items[i] = RelationshipResponse{
			Company: rel.Company,
			Partner: rel.Partner,
			Count:   rel.Count,
			Line:    rel.String(),
		}
	}
	return ReportResponse{
		Relationships: items,
		Count:         len(items),
	}
}
