package types

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// MillisecondTimestamp is a unix timestamp in milliseconds, sent either as a
// number or as a numeric string.
type MillisecondTimestamp time.Time

func NewMillisecondTimestampFromInt(i int64) MillisecondTimestamp {
	return MillisecondTimestamp(time.UnixMilli(i))
}

func (t MillisecondTimestamp) String() string {
	return time.Time(t).String()
}

func (t MillisecondTimestamp) Time() time.Time {
	return time.Time(t)
}

func (t MillisecondTimestamp) MarshalJSON() ([]byte, error) {
	if time.Time(t).IsZero() {
		return []byte("0"), nil
	}

	return []byte(strconv.FormatInt(time.Time(t).UnixMilli(), 10)), nil
}

func (t *MillisecondTimestamp) UnmarshalJSON(data []byte) error {
	var v interface{}

	var err = json.Unmarshal(data, &v)
	if err != nil {
		return err
	}

	switch vt := v.(type) {
	case nil:
		*t = MillisecondTimestamp(time.Time{})
		return nil

	case string:
		if vt == "" {
			// treat empty string as 0
			*t = MillisecondTimestamp(time.Time{})
			return nil
		}

		i, err := strconv.ParseInt(vt, 10, 64)
		if err != nil {
			return fmt.Errorf("can not parse %q as millisecond timestamp: %w", vt, err)
		}

		*t = NewMillisecondTimestampFromInt(i)
		return nil

	case float64:
		if vt == 0 {
			*t = MillisecondTimestamp(time.Time{})
			return nil
		}

		*t = NewMillisecondTimestampFromInt(int64(vt))
		return nil

	default:
		return fmt.Errorf("can not parse %T %+v as millisecond timestamp", vt, vt)
	}
}
