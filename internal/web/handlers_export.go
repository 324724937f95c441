package web

import (
	"encoding/csv"
	"fmt"
	"net/http"
)

func (s *Server) handleAPIExportDetails(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "json"
	}

	table := s.engine.Details(r.URL.Query()["fighter"]...)

	switch format {
	case "json":
		w.Header().Set("Content-Disposition", "attachment; filename=fighter-details.json")
		s.writeJSON(w, http.StatusOK, buildAPIDetails(table))
	case "csv":
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", "attachment; filename=fighter-details.csv")

		cw := csv.NewWriter(w)
		header := append([]string{"name"}, table.Columns...)
		_ = cw.Write(header)
		for _, row := range table.Rows {
			_ = cw.Write(append([]string{row.Name}, row.Cells...))
		}
		cw.Flush()
		if err := cw.Error(); err != nil {
			s.logger.Error("failed to write details csv", "error", err)
		}
	default:
		http.Error(w, fmt.Sprintf("unsupported format: %s", format), http.StatusBadRequest)
	}
}
