package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/dmitrijs2005/edgesync/internal/api"
	"github.com/dmitrijs2005/edgesync/internal/server/models"
)

// printJSON writes v indented; used for --format json.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printCapture(w io.Writer, r *api.CaptureResponse) {
	verb := "captured"
	if r.IsDuplicate {
		verb = "duplicate of"
	}
	fmt.Fprintf(w, "%s record %d: %s %s %s\n", verb, r.RecordID, r.TerminalID, r.AmountTotal.StringFixed(models.AmountPlaces), r.Currency)
}

func printHeartbeat(w io.Writer, r *api.HeartbeatResponse) {
	fmt.Fprintf(w, "%s is %s (central link up: %t) at %s\n", r.TerminalID, r.Status, r.CentralLinkUp, r.ServerTime.Format(time.RFC3339))
}

func printSync(w io.Writer, r *api.SyncResponse) {
	fmt.Fprintf(w, "%s: pushed %d, duplicates %d, pending %d\n", r.TerminalID, r.Pushed, r.Duplicates, r.PendingAfter)
}

func printOverview(w io.Writer, o *api.OverviewResponse) {
	fmt.Fprintf(w, "terminals: %d (online %d, offline %d)\n", o.TotalTerminals, o.Online, o.Offline)
	fmt.Fprintf(w, "pending sync: %d\n", o.PendingSyncCount)
	fmt.Fprintf(w, "central: %d records, %s\n", o.CentralRecordCount, o.CentralTotalAmount.StringFixed(models.AmountPlaces))
}

func printTerminalStats(w io.Writer, stats []*models.TerminalStats) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TERMINAL\tSTATUS\tLINK\tEDGE\tEDGE AMOUNT\tCENTRAL\tCENTRAL AMOUNT\tPENDING")
	for _, s := range stats {
		link := "down"
		if s.CentralLinkUp {
			link = "up"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%d\t%s\t%d\n",
			s.TerminalID, s.Status, link,
			s.EdgeCount, s.EdgeAmount.StringFixed(models.AmountPlaces),
			s.CentralCount, s.CentralAmount.StringFixed(models.AmountPlaces),
			s.PendingCount)
	}
	return tw.Flush()
}
