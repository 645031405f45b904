package tools

import "strings"

// Argument maps come from json.Unmarshal, so numbers are float64 and
// every value is optional. The schemas enforce presence and types before
// executors run; these helpers just unwrap with quiet zero defaults.

func argString(args map[string]interface{}, key string) string {
	if v, found := args[key]; found {
		if s, isString := v.(string); isString {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

func argInt(args map[string]interface{}, key string) int {
	if v, found := args[key]; found {
		switch n := v.(type) {
		case float64:
			return int(n)
		case int:
			return n
		}
	}
	return 0
}

func argIntPtr(args map[string]interface{}, key string) *int {
	if _, found := args[key]; !found {
		return nil
	}
	n := argInt(args, key)
	return &n
}

func argBool(args map[string]interface{}, key string) bool {
	if v, found := args[key]; found {
		if b, isBool := v.(bool); isBool {
			return b
		}
	}
	return false
}

func argStringPtr(args map[string]interface{}, key string) *string {
	if _, found := args[key]; !found {
		return nil
	}
	s := argString(args, key)
	return &s
}
