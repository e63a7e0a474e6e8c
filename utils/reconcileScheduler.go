package utils

import (
	"log"
	"time"

	"coursehub/database"
	"coursehub/workflow"

	"github.com/robfig/cron/v3"
)

// logReconciler logs reconciliation scheduler events with timestamp
func logReconciler(message string) {
	log.Printf("[RECONCILE-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

func runReconciliation() {
	logReconciler("Starting counter reconciliation")

	if err := workflow.ReconcileCounters(database.Database.Db); err != nil {
		logReconciler("Reconciliation failed: " + err.Error())
		return
	}

	logReconciler("Reconciliation completed")
}

// StartReconcileScheduler recounts the denormalized counters (course
// students, ratings, category course counts) every night at 03:00.
func StartReconcileScheduler() {
	c := cron.New()

	if _, err := c.AddFunc("0 3 * * *", runReconciliation); err != nil {
		logReconciler("Failed to schedule reconciliation: " + err.Error())
		return
	}

	c.Start()
	logReconciler("Scheduler started (nightly at 03:00)")
}
