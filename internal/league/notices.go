package league

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	appdb "github.com/canchalibre/canchalibre/internal/db"
)

// PostNotice publishes an announcement under a season's board.
func PostNotice(ctx context.Context, q *appdb.Queries, seasonID, title, body string) (appdb.Notice, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return appdb.Notice{}, fmt.Errorf("notice title is required")
	}

	if _, err := q.GetSeason(ctx, seasonID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appdb.Notice{}, ErrSeasonNotFound
		}
		return appdb.Notice{}, fmt.Errorf("fetch season: %w", err)
	}

	return q.CreateNotice(ctx, appdb.CreateNoticeParams{
		SeasonID: seasonID,
		Title:    title,
		Body:     strings.TrimSpace(body),
	})
}

// ListNotices returns a season's announcements, newest first.
func ListNotices(ctx context.Context, q *appdb.Queries, seasonID string) ([]appdb.Notice, error) {
	return q.ListNotices(ctx, seasonID)
}
