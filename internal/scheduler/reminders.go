package scheduler

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/canchalibre/canchalibre/internal/db"
	"github.com/canchalibre/canchalibre/internal/notify"
)

const (
	fixtureReminderWindow = 24 * time.Hour
	defaultReminderCron   = "0 8 * * *"
)

// RegisterFixtureReminderJob registers a daily digest of fixtures kicking off
// within the next 24 hours.
func RegisterFixtureReminderJob(database *db.DB, notifier notify.Notifier, cronExpr string) error {
	if database == nil {
		return fmt.Errorf("fixture reminder job requires database")
	}
	if strings.TrimSpace(cronExpr) == "" {
		cronExpr = defaultReminderCron
	}

	jobName := "fixture_reminders"
	jobLogger := log.With().
		Str("component", "fixture_reminders_job").
		Str("job_name", jobName).
		Str("cron", cronExpr).
		Logger()

	_, err := AddJob(jobName, cronExpr, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		ctx = jobLogger.WithContext(ctx)

		if notifier == nil {
			jobLogger.Debug().Msg("Reminder job skipped: notifier not configured")
			return
		}

		if err := SendFixtureReminders(ctx, database, notifier, time.Now().UTC()); err != nil {
			jobLogger.Error().Err(err).Msg("Fixture reminder job failed")
		}
	})
	return err
}

// SendFixtureReminders notifies delegates about fixtures starting within the
// reminder window after now. A day with no fixtures sends nothing.
func SendFixtureReminders(ctx context.Context, database *db.DB, notifier notify.Notifier, now time.Time) error {
	matches, err := database.Queries.ListMatchesStartingBetween(ctx, now, now.Add(fixtureReminderWindow))
	if err != nil {
		return fmt.Errorf("list upcoming matches: %w", err)
	}
	if len(matches) == 0 {
		return nil
	}

	var body strings.Builder
	for _, match := range matches {
		local, err := database.Queries.GetTeam(ctx, match.LocalTeamID)
		if err != nil {
			return fmt.Errorf("load local team: %w", err)
		}
		away, err := database.Queries.GetTeam(ctx, match.AwayTeamID)
		if err != nil {
			return fmt.Errorf("load away team: %w", err)
		}
		fmt.Fprintf(&body, "%s: %s vs %s", match.Date.Format("Mon 15:04"), local.Name, away.Name)
		if match.Field != "" {
			fmt.Fprintf(&body, " (%s)", match.Field)
		}
		body.WriteString("\n")
	}

	subject := fmt.Sprintf("Upcoming fixtures: %d in the next 24 hours", len(matches))
	if err := notifier.Notify(ctx, subject, body.String()); err != nil {
		return fmt.Errorf("send fixture reminders: %w", err)
	}

	log.Ctx(ctx).Info().Int("matches", len(matches)).Msg("Fixture reminders sent")
	return nil
}
