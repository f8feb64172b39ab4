package tautulli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// epoch decodes a Tautulli timestamp field. Accepts a JSON number, a
// numeric string, an empty string, or null; the latter two leave value
// nil, meaning the service never stamped the field.
type epoch struct {
	value *int64
}

func (e *epoch) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		e.value = nil
		return nil
	}

	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			e.value = nil
			return nil
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid epoch value %q: %w", s, err)
		}
		e.value = &n
		return nil
	}

	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid epoch value %s: %w", trimmed, err)
	}
	e.value = &n
	return nil
}
