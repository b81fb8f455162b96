package utils

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"strings"
	"time"

	"gorm.io/gorm"
)

// InsertOrFetch inserts dest into table unless a row matching query already exists,
// in which case that row is loaded into dest instead.
// It takes [*gorm.io/gorm.DB] and [*slog.Logger] as the db connection and the logger.
// dest must be a pointer to the struct that the data is parsed onto.
// query and args are passed directly to [*gorm.io/gorm.DB.Where()].
// It reports whether a new row was inserted.
func InsertOrFetch(ctx context.Context, db *gorm.DB, logger *slog.Logger, table string, dest interface{}, query interface{}, args ...interface{}) (bool, error) {
	var exists bool

	v := reflect.ValueOf(dest)

	if v.Kind() != reflect.Ptr {
		return false, fmt.Errorf("dest is not of type pointer but %s instead", v.Type().String())
	}

	db = db.WithContext(ctx)

	if err := db.Table(table).Select("count(*) > 0").Where(query, args...).Find(&exists).Error; err != nil {
		return false, err
	}

	if exists {
		if err := db.Table(table).Where(query, args...).First(dest).Error; err != nil {
			return false, err
		}

		logger.Warn(fmt.Sprintf("this row is already in %s", table), "row", v.Elem().Interface())

		return false, nil
	}

	if err := db.Table(table).Create(dest).Error; err != nil {
		return false, err
	}

	logger.Info(fmt.Sprintf("new row inserted into %s", table), "row", v.Elem().Interface())

	return true, nil
}

var dateLayouts = []string{
	time.DateOnly,
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
}

// ParseDate accepts a calendar date (2006-01-02) or a full timestamp.
// Dates without a zone are read as UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognised date %q", s)
}
