package main

import (
	"context"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"staffbook/internal/platform/config"
	"staffbook/internal/platform/logger"
	"staffbook/internal/staff"
	"staffbook/internal/staff/metrics"
	"staffbook/internal/staff/models"
	"staffbook/internal/staff/report"
	"staffbook/internal/staff/service"
	"staffbook/internal/staff/store"
	auditmemory "staffbook/pkg/platform/audit/store/memory"
)

// main loads the demo staff list, applies a few changes and removals, and
// prints the book grouped by department followed by the salary roster.
func main() {
	cfg, cfgErr := config.FromEnv()
	log := logger.New(cfg.LogFormat, cfg.LogLevel)
	if cfgErr != nil {
		log.Warn("using defaults for invalid settings", "error", cfgErr)
	}

	ctx := context.Background()
	auditStore := auditmemory.NewInMemoryStore()
	book, err := staff.NewService(cfg.Capacity, nil,
		service.WithLogger(log),
		service.WithAuditStore(auditStore),
		service.WithMetrics(metrics.New(prometheus.NewRegistry())),
	)
	if err != nil {
		log.Error("failed to create staff book", "error", err)
		os.Exit(1)
	}

	n, err := store.SeedBootstrapStaff(ctx, book, store.BootstrapStaff)
	if err != nil {
		log.Warn("bootstrap staff list truncated", "loaded", n, "error", err)
	}
	log.Info("staff book ready", "headcount", book.Count(ctx), "capacity", book.Capacity(ctx))

	changes := []struct {
		family, given, patronymic string
		change                    models.Change
	}{
		{"Gurevich", "Lyubov", "Yakovlevna", models.SetDepartment(models.DepartmentSecond)},
		{"Landa", "Yakov", "Semyonovich", models.SetSalary(99999)},
	}
	for _, c := range changes {
		if _, err := book.ChangeByName(ctx, c.family, c.given, c.patronymic, c.change); err != nil {
			log.Warn("change skipped", "subject", models.NewPerson(c.family, c.given, c.patronymic).FullName(), "error", err)
		}
	}
	if _, err := book.Change(ctx, 15, models.SetDepartment(models.DepartmentFifth).WithSalary(99999)); err != nil {
		log.Warn("change skipped", "employee_id", 15, "error", err)
	}

	if err := book.Remove(ctx, 7); err != nil {
		log.Warn("removal skipped", "employee_id", 7, "error", err)
	}
	if err := book.RemoveByName(ctx, "Gurevich", "Lyubov", "Yakovlevna"); err != nil {
		log.Warn("removal skipped", "error", err)
	}
	if err := book.RemoveByPerson(ctx, models.NewPerson("Derevyankin", "Andrei", "Nikolaevich")); err != nil {
		log.Warn("removal skipped", "error", err)
	}

	printer := report.NewPrinter(os.Stdout)
	if err := printer.Departments(ctx, book); err != nil {
		log.Error("failed to print report", "error", err)
		os.Exit(1)
	}

	var rosterDepartments []models.Department
	if cfg.RosterDepartment.IsValid() {
		rosterDepartments = append(rosterDepartments, cfg.RosterDepartment)
	}
	if err := printer.Roster(ctx, book, rosterDepartments...); err != nil {
		log.Error("failed to print roster", "error", err)
		os.Exit(1)
	}

	events, _ := auditStore.ListAll(ctx)
	log.Info("done",
		"headcount", book.Count(ctx),
		"ids_issued", book.Issued(ctx),
		"audit_events", len(events))
}
