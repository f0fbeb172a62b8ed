package eventsource

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// missing is how absent values appear inside identifiers.
const missing = "None"

func render(value any) string {
	switch typed := value.(type) {
	case nil:
		return missing
	case string:
		return typed
	case bool:
		if typed {
			return "True"
		}
		return "False"
	case json.Number:
		return typed.String()
	case float64:
		if typed == math.Trunc(typed) && !math.IsInf(typed, 0) {
			return strconv.FormatFloat(typed, 'f', -1, 64)
		}
		return strconv.FormatFloat(typed, 'g', -1, 64)
	case fmt.Stringer:
		return typed.String()
	default:
		return fmt.Sprint(typed)
	}
}

// renderPresent is render without the placeholder for absent values.
func renderPresent(value any) string {
	if value == nil {
		return ""
	}
	return render(value)
}

// truthy reports whether value counts as set: nil, zero numbers, false and
// empty strings or containers do not.
func truthy(value any) bool {
	switch typed := value.(type) {
	case nil:
		return false
	case string:
		return typed != ""
	case bool:
		return typed
	case json.Number:
		f, err := typed.Float64()
		return err != nil || f != 0
	case float64:
		return typed != 0
	case int:
		return typed != 0
	case map[string]any:
		return len(typed) > 0
	case []any:
		return len(typed) > 0
	default:
		return true
	}
}
