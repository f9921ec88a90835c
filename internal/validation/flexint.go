package validation

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FlexInt is an integer that also decodes from a numeric JSON string, so
// both {"duration": 2} and {"duration": "2"} are accepted.  Fractional
// values are rejected.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var n float64
	switch v := raw.(type) {
	case nil:
		*f = 0
		return nil
	case float64:
		n = v
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			*f = 0
			return nil
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("not a number: %q", v)
		}
		n = parsed
	default:
		return fmt.Errorf("not a number: %s", string(data))
	}
	if n != math.Trunc(n) || math.IsInf(n, 0) || math.Abs(n) > math.MaxInt32 {
		return fmt.Errorf("not an integer: %s", string(data))
	}
	*f = FlexInt(int(n))
	return nil
}
