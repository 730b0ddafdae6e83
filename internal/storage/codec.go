package storage

import (
	"strconv"
	"strings"
)

// EncodeItemIDs renders an id list in the at-rest form: comma-joined
// decimal ids, insertion order preserved.
func EncodeItemIDs(ids []int64) string {
	if len(ids) == 0 {
		return ""
	}
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, strconv.FormatInt(id, 10))
	}
	return strings.Join(parts, ",")
}

// DecodeItemIDs parses a stored id list. Tokens that are not valid
// non-negative integers are skipped rather than reported; a corrupt token
// must not take the whole schedule down.
func DecodeItemIDs(s string) []int64 {
	if s == "" {
		return nil
	}
	var ids []int64
	for _, tok := range strings.Split(s, ",") {
		tok = strings.TrimSpace(tok)
		id, err := strconv.ParseInt(tok, 10, 64)
		if err != nil || id < 0 {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// EncodeBool renders a flag in the at-rest form used by daily_schedules.
func EncodeBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// DecodeBool parses a stored flag; anything but "true" is false.
func DecodeBool(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "true")
}
