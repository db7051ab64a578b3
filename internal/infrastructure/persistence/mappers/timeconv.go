package mappers

import (
	"time"

	"gorm.io/datatypes"

	"github.com/tradesbook-ie/tradesbook/internal/shared/biztime"
)

func millisToTime(millis int64) time.Time {
	return time.UnixMilli(millis).UTC()
}

func millisPtrToTime(millis *int64) *time.Time {
	if millis == nil {
		return nil
	}
	t := millisToTime(*millis)
	return &t
}

func timePtrToMillis(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	ms := t.UnixMilli()
	return &ms
}

// dateToModel keeps the business calendar day; the column has no zone.
func dateToModel(t time.Time) datatypes.Date {
	b := t.In(biztime.Location())
	return datatypes.Date(time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC))
}

func dateFromModel(d datatypes.Date) time.Time {
	t := time.Time(d)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, biztime.Location())
}
