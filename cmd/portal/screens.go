package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/hms/portal/internal/domain/appointments"
	"github.com/hms/portal/internal/domain/caretasks"
	"github.com/hms/portal/internal/domain/equipment"
	"github.com/hms/portal/internal/domain/prescriptions"
	"github.com/hms/portal/internal/domain/reports"
	"github.com/hms/portal/internal/domain/users"
	"github.com/hms/portal/internal/listview"
	"github.com/hms/portal/internal/platform/auth"
)

// listFlags are the filter flags shared by every list command.
type listFlags struct {
	search string
	status string
	date   string
	actor  string
	page   int
}

func addListFlags(cmd *cobra.Command, f *listFlags) {
	cmd.Flags().StringVar(&f.search, "search", "", "free-text filter")
	cmd.Flags().StringVar(&f.status, "status", "", "status filter ('all' matches everything)")
	cmd.Flags().StringVar(&f.date, "date", "", "date filter (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.actor, "actor", "", "patient or doctor id filter")
	cmd.Flags().IntVar(&f.page, "page", 1, "page to fetch")
}

func applyListFlags[T, D any](v *listview.View[T, D], f listFlags) {
	v.SetSearch(f.search)
	v.SetStatus(f.status)
	v.SetDate(f.date)
	v.SetActor(f.actor)
	v.SetPage(f.page)
}

func printFooter[T, D any](out io.Writer, v *listview.View[T, D]) {
	page := v.Page()
	fmt.Fprintf(out, "page %d/%d (%d total)\n", page.Page, page.TotalPages, page.Total)
}

// confirmFlag turns --yes into the destructive-action guard.
func confirmFlag(yes bool) func() bool {
	return func() bool { return yes }
}

func deletionMessage(err error) error {
	if errors.Is(err, listview.ErrNotConfirmed) {
		return fmt.Errorf("refusing to delete without --yes")
	}
	return err
}

func table(out io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
}

func personName(first, last string) string {
	return strings.TrimSpace(first + " " + last)
}

// -- Appointments --

func appointmentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "appointments",
		Short: "Manage appointments",
	}

	var lf listFlags
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List appointments",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			if err := rt.require(auth.CapAppointmentsView); err != nil {
				return err
			}

			v := appointments.NewView(
				appointments.NewRESTRepository(rt.client, rt.session),
				rt.cfg.PageSize, rt.logger)
			applyListFlags(v, lf)
			if err := v.Fetch(cmd.Context()); err != nil {
				return err
			}

			w := table(cmd.OutOrStdout())
			fmt.Fprintln(w, "ID\tPATIENT\tDOCTOR\tDATE\tTIME\tREASON\tSTATUS")
			for _, a := range v.Visible() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					a.ID,
					personName(a.Patient.FirstName, a.Patient.LastName),
					personName(a.Doctor.FirstName, a.Doctor.LastName),
					a.Date.Format(listview.DateLayout), a.Time, a.Reason, a.Status)
			}
			w.Flush()
			printFooter(cmd.OutOrStdout(), v)
			return nil
		},
	}
	addListFlags(listCmd, &lf)
	cmd.AddCommand(listCmd)

	var draft appointments.Draft
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Book an appointment",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			if err := rt.require(auth.CapAppointmentsManage); err != nil {
				return err
			}

			v := appointments.NewView(
				appointments.NewRESTRepository(rt.client, rt.session),
				rt.cfg.PageSize, rt.logger)
			if err := v.Create(cmd.Context(), draft); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "appointment booked")
			return nil
		},
	}
	createCmd.Flags().StringVar(&draft.PatientID, "patient", "", "patient id")
	createCmd.Flags().StringVar(&draft.DoctorID, "doctor", "", "doctor id")
	createCmd.Flags().StringVar(&draft.Date, "date", "", "date (YYYY-MM-DD)")
	createCmd.Flags().StringVar(&draft.Time, "time", "", "time (HH:MM)")
	createCmd.Flags().StringVar(&draft.Reason, "reason", "", "visit reason")
	createCmd.Flags().StringVar(&draft.Notes, "notes", "", "notes")
	cmd.AddCommand(createCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "set-status <id> <status>",
		Short: "Change an appointment's status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			if err := rt.require(auth.CapAppointmentsManage); err != nil {
				return err
			}
			if !appointments.ValidStatus(args[1]) {
				return fmt.Errorf("unknown status %q (one of: %s)",
					args[1], strings.Join(appointments.Statuses(), ", "))
			}

			v := appointments.NewView(
				appointments.NewRESTRepository(rt.client, rt.session),
				rt.cfg.PageSize, rt.logger)
			return v.UpdateStatus(cmd.Context(), args[0], args[1])
		},
	})

	var yes bool
	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Cancel and remove an appointment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			if err := rt.require(auth.CapAppointmentsManage); err != nil {
				return err
			}

			v := appointments.NewView(
				appointments.NewRESTRepository(rt.client, rt.session),
				rt.cfg.PageSize, rt.logger)
			return deletionMessage(v.Remove(cmd.Context(), args[0], confirmFlag(yes)))
		},
	}
	deleteCmd.Flags().BoolVar(&yes, "yes", false, "confirm the deletion")
	cmd.AddCommand(deleteCmd)

	return cmd
}

// -- Care tasks --

func careTasksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "care-tasks",
		Short: "Manage nursing care tasks",
	}

	var lf listFlags
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List care tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			if err := rt.require(auth.CapCareTasksView); err != nil {
				return err
			}

			v := caretasks.NewView(
				caretasks.NewRESTRepository(rt.client, rt.session),
				rt.cfg.PageSize, rt.logger)
			applyListFlags(v, lf)
			if err := v.Fetch(cmd.Context()); err != nil {
				return err
			}

			w := table(cmd.OutOrStdout())
			fmt.Fprintln(w, "ID\tPATIENT\tTITLE\tPRIORITY\tDUE\tSTATUS")
			for _, t := range v.Visible() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					t.ID,
					personName(t.Patient.FirstName, t.Patient.LastName),
					t.Title, t.Priority,
					t.DueDate.Format(listview.DateLayout), t.Status)
			}
			w.Flush()
			printFooter(cmd.OutOrStdout(), v)
			return nil
		},
	}
	addListFlags(listCmd, &lf)
	cmd.AddCommand(listCmd)

	var draft caretasks.Draft
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Add a care task",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			if err := rt.require(auth.CapCareTasksManage); err != nil {
				return err
			}

			v := caretasks.NewView(
				caretasks.NewRESTRepository(rt.client, rt.session),
				rt.cfg.PageSize, rt.logger)
			if err := v.Create(cmd.Context(), draft); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "care task added")
			return nil
		},
	}
	createCmd.Flags().StringVar(&draft.PatientID, "patient", "", "patient id")
	createCmd.Flags().StringVar(&draft.Title, "title", "", "task title")
	createCmd.Flags().StringVar(&draft.Description, "description", "", "details")
	createCmd.Flags().StringVar(&draft.Priority, "priority", "", "low, medium or high")
	createCmd.Flags().StringVar(&draft.DueDate, "due", "", "due date (YYYY-MM-DD)")
	cmd.AddCommand(createCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "set-status <id> <status>",
		Short: "Change a care task's status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			if err := rt.require(auth.CapCareTasksManage); err != nil {
				return err
			}
			if !caretasks.ValidStatus(args[1]) {
				return fmt.Errorf("unknown status %q (one of: %s)",
					args[1], strings.Join(caretasks.Statuses(), ", "))
			}

			v := caretasks.NewView(
				caretasks.NewRESTRepository(rt.client, rt.session),
				rt.cfg.PageSize, rt.logger)
			return v.UpdateStatus(cmd.Context(), args[0], args[1])
		},
	})

	var yes bool
	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a care task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			if err := rt.require(auth.CapCareTasksManage); err != nil {
				return err
			}

			v := caretasks.NewView(
				caretasks.NewRESTRepository(rt.client, rt.session),
				rt.cfg.PageSize, rt.logger)
			return deletionMessage(v.Remove(cmd.Context(), args[0], confirmFlag(yes)))
		},
	}
	deleteCmd.Flags().BoolVar(&yes, "yes", false, "confirm the deletion")
	cmd.AddCommand(deleteCmd)

	return cmd
}

// -- Medical reports --

func reportsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reports",
		Short: "Manage medical reports",
	}

	var lf listFlags
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List medical reports",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			if err := rt.require(auth.CapReportsView); err != nil {
				return err
			}

			v := reports.NewView(
				reports.NewRESTRepository(rt.client, rt.session),
				rt.cfg.PageSize, rt.logger)
			applyListFlags(v, lf)
			if err := v.Fetch(cmd.Context()); err != nil {
				return err
			}

			w := table(cmd.OutOrStdout())
			fmt.Fprintln(w, "ID\tPATIENT\tTYPE\tTITLE\tDATE\tSTATUS")
			for _, r := range v.Visible() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					r.ID,
					personName(r.Patient.FirstName, r.Patient.LastName),
					r.Type, r.Title,
					r.Date.Format(listview.DateLayout), r.Status)
			}
			w.Flush()
			printFooter(cmd.OutOrStdout(), v)
			return nil
		},
	}
	addListFlags(listCmd, &lf)
	cmd.AddCommand(listCmd)

	var draft reports.Draft
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "File a medical report",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			if err := rt.require(auth.CapReportsManage); err != nil {
				return err
			}

			v := reports.NewView(
				reports.NewRESTRepository(rt.client, rt.session),
				rt.cfg.PageSize, rt.logger)
			if err := v.Create(cmd.Context(), draft); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "report filed")
			return nil
		},
	}
	createCmd.Flags().StringVar(&draft.PatientID, "patient", "", "patient id")
	createCmd.Flags().StringVar(&draft.Type, "type", "", "report type")
	createCmd.Flags().StringVar(&draft.Title, "title", "", "title")
	createCmd.Flags().StringVar(&draft.Findings, "findings", "", "findings")
	createCmd.Flags().StringVar(&draft.Recommendations, "recommendations", "", "recommendations")
	createCmd.Flags().StringVar(&draft.Date, "date", "", "report date (YYYY-MM-DD)")
	cmd.AddCommand(createCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "set-status <id> <status>",
		Short: "Change a report's status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			if err := rt.require(auth.CapReportsManage); err != nil {
				return err
			}
			if !reports.ValidStatus(args[1]) {
				return fmt.Errorf("unknown status %q (one of: %s)",
					args[1], strings.Join(reports.Statuses(), ", "))
			}

			v := reports.NewView(
				reports.NewRESTRepository(rt.client, rt.session),
				rt.cfg.PageSize, rt.logger)
			return v.UpdateStatus(cmd.Context(), args[0], args[1])
		},
	})

	var yes bool
	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			if err := rt.require(auth.CapReportsManage); err != nil {
				return err
			}

			v := reports.NewView(
				reports.NewRESTRepository(rt.client, rt.session),
				rt.cfg.PageSize, rt.logger)
			return deletionMessage(v.Remove(cmd.Context(), args[0], confirmFlag(yes)))
		},
	}
	deleteCmd.Flags().BoolVar(&yes, "yes", false, "confirm the deletion")
	cmd.AddCommand(deleteCmd)

	return cmd
}

// -- Prescriptions --

func prescriptionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prescriptions",
		Short: "Manage prescriptions",
	}

	var lf listFlags
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List prescriptions",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			if err := rt.require(auth.CapPrescriptionsView); err != nil {
				return err
			}

			v := prescriptions.NewView(
				prescriptions.NewRESTRepository(rt.client, rt.session),
				rt.cfg.PageSize, rt.logger)
			applyListFlags(v, lf)
			if err := v.Fetch(cmd.Context()); err != nil {
				return err
			}

			w := table(cmd.OutOrStdout())
			fmt.Fprintln(w, "ID\tPATIENT\tMEDICATION\tDOSAGE\tFREQUENCY\tSTATUS")
			for _, p := range v.Visible() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					p.ID,
					personName(p.Patient.FirstName, p.Patient.LastName),
					p.Medication, p.Dosage, p.Frequency, p.Status)
			}
			w.Flush()
			printFooter(cmd.OutOrStdout(), v)
			return nil
		},
	}
	addListFlags(listCmd, &lf)
	cmd.AddCommand(listCmd)

	var draft prescriptions.Draft
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Issue a prescription",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			if err := rt.require(auth.CapPrescriptionsManage); err != nil {
				return err
			}

			v := prescriptions.NewView(
				prescriptions.NewRESTRepository(rt.client, rt.session),
				rt.cfg.PageSize, rt.logger)
			if err := v.Create(cmd.Context(), draft); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "prescription issued")
			return nil
		},
	}
	createCmd.Flags().StringVar(&draft.PatientID, "patient", "", "patient id")
	createCmd.Flags().StringVar(&draft.Medication, "medication", "", "medication")
	createCmd.Flags().StringVar(&draft.Dosage, "dosage", "", "dosage")
	createCmd.Flags().StringVar(&draft.Frequency, "frequency", "", "frequency")
	createCmd.Flags().StringVar(&draft.Duration, "duration", "", "duration")
	createCmd.Flags().StringVar(&draft.Notes, "notes", "", "notes")
	createCmd.Flags().StringVar(&draft.StartDate, "start", "", "start date (YYYY-MM-DD)")
	cmd.AddCommand(createCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "set-status <id> <status>",
		Short: "Change a prescription's status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			if err := rt.require(auth.CapPrescriptionsManage); err != nil {
				return err
			}
			if !prescriptions.ValidStatus(args[1]) {
				return fmt.Errorf("unknown status %q (one of: %s)",
					args[1], strings.Join(prescriptions.Statuses(), ", "))
			}

			v := prescriptions.NewView(
				prescriptions.NewRESTRepository(rt.client, rt.session),
				rt.cfg.PageSize, rt.logger)
			return v.UpdateStatus(cmd.Context(), args[0], args[1])
		},
	})

	var yes bool
	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a prescription",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			if err := rt.require(auth.CapPrescriptionsManage); err != nil {
				return err
			}

			v := prescriptions.NewView(
				prescriptions.NewRESTRepository(rt.client, rt.session),
				rt.cfg.PageSize, rt.logger)
			return deletionMessage(v.Remove(cmd.Context(), args[0], confirmFlag(yes)))
		},
	}
	deleteCmd.Flags().BoolVar(&yes, "yes", false, "confirm the deletion")
	cmd.AddCommand(deleteCmd)

	return cmd
}

// -- Lab equipment --

func equipmentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "equipment",
		Short: "Manage lab equipment",
	}

	var lf listFlags
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List lab equipment",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			if err := rt.require(auth.CapEquipmentView); err != nil {
				return err
			}

			v := equipment.NewView(
				equipment.NewRESTRepository(rt.client),
				rt.cfg.PageSize, rt.logger)
			applyListFlags(v, lf)
			if err := v.Fetch(cmd.Context()); err != nil {
				return err
			}

			w := table(cmd.OutOrStdout())
			fmt.Fprintln(w, "ID\tNAME\tSERIAL\tLOCATION\tSTATUS")
			for _, i := range v.Visible() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					i.ID, i.Name, i.SerialNumber, i.Location, i.Status)
			}
			w.Flush()
			printFooter(cmd.OutOrStdout(), v)
			return nil
		},
	}
	addListFlags(listCmd, &lf)
	cmd.AddCommand(listCmd)

	var draft equipment.Draft
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Register equipment",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			if err := rt.require(auth.CapEquipmentManage); err != nil {
				return err
			}

			v := equipment.NewView(
				equipment.NewRESTRepository(rt.client),
				rt.cfg.PageSize, rt.logger)
			if err := v.Create(cmd.Context(), draft); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "equipment registered")
			return nil
		},
	}
	createCmd.Flags().StringVar(&draft.Name, "name", "", "equipment name")
	createCmd.Flags().StringVar(&draft.SerialNumber, "serial", "", "serial number")
	createCmd.Flags().StringVar(&draft.Manufacturer, "manufacturer", "", "manufacturer")
	createCmd.Flags().StringVar(&draft.Location, "location", "", "location")
	cmd.AddCommand(createCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "set-status <id> <status>",
		Short: "Change an equipment entry's status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			if err := rt.require(auth.CapEquipmentManage); err != nil {
				return err
			}
			if !equipment.ValidStatus(args[1]) {
				return fmt.Errorf("unknown status %q (one of: %s)",
					args[1], strings.Join(equipment.Statuses(), ", "))
			}

			v := equipment.NewView(
				equipment.NewRESTRepository(rt.client),
				rt.cfg.PageSize, rt.logger)
			return v.UpdateStatus(cmd.Context(), args[0], args[1])
		},
	})

	var yes bool
	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove an equipment entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			if err := rt.require(auth.CapEquipmentManage); err != nil {
				return err
			}

			v := equipment.NewView(
				equipment.NewRESTRepository(rt.client),
				rt.cfg.PageSize, rt.logger)
			return deletionMessage(v.Remove(cmd.Context(), args[0], confirmFlag(yes)))
		},
	}
	deleteCmd.Flags().BoolVar(&yes, "yes", false, "confirm the deletion")
	cmd.AddCommand(deleteCmd)

	return cmd
}

// -- Users --

func usersCmd() *cobra.Command {
	var rolesCSV string
	cmd := &cobra.Command{
		Use:   "users",
		Short: "List staff and patients",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			if err := rt.require(auth.CapUsersView); err != nil {
				return err
			}

			var roles []auth.Role
			if rolesCSV != "" {
				for _, part := range strings.Split(rolesCSV, ",") {
					role, err := auth.ParseRole(strings.TrimSpace(part))
					if err != nil {
						return err
					}
					roles = append(roles, role)
				}
			}

			roster := users.NewRoster(rt.client)
			list, err := roster.ByRoles(cmd.Context(), roles...)
			if err != nil {
				return err
			}

			w := table(cmd.OutOrStdout())
			fmt.Fprintln(w, "ID\tNAME\tEMAIL\tROLE")
			for _, u := range list {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", u.ID, u.FullName(), u.Email, u.Role)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&rolesCSV, "roles", "", "comma-separated role filter (e.g. doctor,patient)")
	return cmd
}
