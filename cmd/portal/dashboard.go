package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hms/portal/internal/domain/appointments"
	"github.com/hms/portal/internal/domain/dashboard"
	"github.com/hms/portal/internal/domain/reports"
	"github.com/hms/portal/internal/platform/auth"
)

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the doctor's daily summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			if err := rt.require(auth.CapAppointmentsView); err != nil {
				return err
			}
			if err := rt.require(auth.CapReportsView); err != nil {
				return err
			}

			svc := dashboard.NewService(
				appointments.NewRESTRepository(rt.client, rt.session),
				reports.NewRESTRepository(rt.client, rt.session),
				rt.logger)
			summary, err := svc.Load(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n\n", summary.Date.Format("Monday, 2 January 2006"))

			fmt.Fprintf(out, "Today's appointments (%d):\n", len(summary.TodaysAppointments))
			w := table(out)
			for _, a := range summary.TodaysAppointments {
				fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n",
					a.Time,
					personName(a.Patient.FirstName, a.Patient.LastName),
					a.Reason, a.Status)
			}
			w.Flush()

			fmt.Fprintf(out, "\nPending reports: %d\n", summary.PendingReports)
			w = table(out)
			for _, r := range summary.RecentReports {
				fmt.Fprintf(w, "  %s\t%s\t%s\n", r.Type, r.Title,
					personName(r.Patient.FirstName, r.Patient.LastName))
			}
			return w.Flush()
		},
	}
}
