package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/robfig/cron"
)

// regenTimeout bounds one full regeneration run.
const regenTimeout = 30 * time.Minute

// startScheduler runs regeneratePlans on spec, a six-field cron expression
// with seconds. An empty spec disables the schedule and returns nil.
func (h *Handler) startScheduler(spec string) (*cron.Cron, error) {
	if spec == "" {
		return nil, nil
	}
	sched := cron.New()
	err := sched.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), regenTimeout)
		defer cancel()
		h.regeneratePlans(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("parse schedule %q: %w", spec, err)
	}
	sched.Start()
	log.Printf("[scheduler] plan regeneration scheduled: %s", spec)
	return sched, nil
}

// regeneratePlans stores a fresh plan for every profile that opted in and
// has no plan for the current week yet. Per-user failures are logged and
// skipped.
func (h *Handler) regeneratePlans(ctx context.Context) {
	userIDs, err := h.autoRegenerateUsers(ctx)
	if err != nil {
		log.Printf("[scheduler] failed to list profiles: %v", err)
		return
	}

	created := 0
	for _, userID := range userIDs {
		if ctx.Err() != nil {
			log.Printf("[scheduler] stopping early: %v", ctx.Err())
			break
		}
		in, err := h.profileInputs(ctx, userID)
		if err != nil {
			log.Printf("[scheduler] skipping user %d: %v", userID, err)
			continue
		}
		week, nt := h.buildWeeklyPlan(ctx, in)
		if _, err := h.savePlan(ctx, userID, in.MealsPerDay, nt.Calories, week); err != nil {
			log.Printf("[scheduler] failed to save plan for user %d: %v", userID, err)
			continue
		}
		created++
	}
	log.Printf("[scheduler] regenerated %d of %d plans", created, len(userIDs))
}

// autoRegenerateUsers lists users with plan_auto_regenerate set and no plan
// for the current week.
func (h *Handler) autoRegenerateUsers(ctx context.Context) ([]int, error) {
	rows, err := h.db.Query(ctx,
		`SELECT p.user_id FROM profiles p
		 WHERE p.plan_auto_regenerate AND p.setup_complete
		   AND NOT EXISTS (
		     SELECT 1 FROM diet_plans d
		     WHERE d.user_id = p.user_id AND d.week_start = @weekStart)
		 ORDER BY p.user_id`,
		pgx.NamedArgs{"weekStart": currentMonday().Format("2006-01-02")})
	if err != nil {
		return nil, fmt.Errorf("query profiles: %w", err)
	}
	return pgx.CollectRows(rows, pgx.RowTo[int])
}
