package cmd

import (
	"time"

	"expeditor/internal/core/domain/model/cookinglog"
	"expeditor/internal/core/domain/model/kernel"
	"expeditor/internal/core/domain/model/staff"
)

// seedRoster is the built-in default roster, used when the snapshot store
// has no roster or its value cannot be read.
func seedRoster() ([]*staff.Worker, error) {
	members := []struct {
		name       string
		department kernel.Department
		waiter     bool
	}{
		{"Alice", kernel.Kitchen, false},
		{"Marco", kernel.Kitchen, false},
		{"Bob", kernel.Bar, false},
		{"Dilnaz", kernel.Snack, false},
		{"Carol", kernel.Kitchen, true},
		{"Dave", kernel.Bar, true},
	}

	roster := make([]*staff.Worker, 0, len(members))
	for _, member := range members {
		worker, err := staff.NewWorker(member.name, member.department, member.waiter)
		if err != nil {
			return nil, err
		}
		roster = append(roster, worker)
	}
	return roster, nil
}

// seedCookingLogs returns the demo history shown on a fresh install, dated
// relative to now so the analytics screens are never empty.
func seedCookingLogs(now time.Time) ([]*cookinglog.CookingLog, error) {
	entries := []struct {
		menuName        string
		staffName       string
		department      kernel.Department
		durationSeconds int64
		age             time.Duration
	}{
		{"Margherita", "Alice", kernel.Kitchen, 55, 26 * time.Hour},
		{"Margherita", "Marco", kernel.Kitchen, 32, 22 * time.Hour},
		{"Carbonara", "Alice", kernel.Kitchen, 95, 20 * time.Hour},
		{"Negroni", "Bob", kernel.Bar, 40, 8 * time.Hour},
		{"Espresso", "Bob", kernel.Bar, 25, 5 * time.Hour},
		{"Tiramisu", "Dilnaz", kernel.Snack, 130, 3 * time.Hour},
	}

	logs := make([]*cookinglog.CookingLog, 0, len(entries))
	for _, entry := range entries {
		log, err := cookinglog.NewCookingLog(
			kernel.NewUUID(),
			entry.menuName,
			entry.staffName,
			entry.department,
			entry.durationSeconds,
			now.Add(-entry.age),
			cookinglog.Seed,
		)
		if err != nil {
			return nil, err
		}
		logs = append(logs, log)
	}
	return logs, nil
}
