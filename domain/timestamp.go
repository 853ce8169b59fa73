package domain

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	"2006-01-02",
}

// Timestamp keeps whatever the store handed us: a native time or an ISO string.
// Resolution to an instant is deferred so the caller decides what "now" is
// for values that cannot be parsed.
type Timestamp struct {
	t   time.Time
	raw string
}

func TimestampOf(t time.Time) Timestamp {
	return Timestamp{t: t}
}

func TimestampFromString(s string) Timestamp {
	return Timestamp{raw: s}
}

func (ts Timestamp) IsZero() bool {
	return ts.t.IsZero() && ts.raw == ""
}

// Time returns the instant this timestamp denotes and whether it had one.
func (ts Timestamp) Time() (time.Time, bool) {
	if !ts.t.IsZero() {
		return ts.t, true
	}
	if ts.raw == "" {
		return time.Time{}, false
	}
	return ParseISOTime(ts.raw)
}

// Resolve is Time with now substituted for missing or unparseable values.
func (ts Timestamp) Resolve(now time.Time) time.Time {
	if t, ok := ts.Time(); ok {
		return t
	}
	return now
}

// ParseISOTime parses ISO-8601 strings. A trailing "Z" is read as "+00:00";
// strings without an offset are taken in local time.
func ParseISOTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, "Z") {
		s = strings.TrimSuffix(s, "Z") + "+00:00"
	}

	for _, layout := range isoLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

func (ts *Timestamp) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: t, Value: data}

	switch t {
	case bsontype.DateTime:
		*ts = TimestampOf(time.UnixMilli(rv.DateTime()).UTC())
	case bsontype.String:
		*ts = TimestampFromString(rv.StringValue())
	case bsontype.Timestamp:
		sec, _ := rv.Timestamp()
		*ts = TimestampOf(time.Unix(int64(sec), 0).UTC())
	default:
		// anything else is treated as missing and resolves to "now"
		*ts = Timestamp{}
	}

	return nil
}
