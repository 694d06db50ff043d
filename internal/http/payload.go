package http

import (
	"bytes"
	"encoding/json"
	"math"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"user-hobbies/internal/domain"
)

// bindPayload decodes the request body into an untyped object. An empty body
// is an empty object; anything that is not a single JSON object, including
// trailing data and a bare null, is malformed.
func bindPayload(c *gin.Context) (map[string]any, bool) {
	body, err := c.GetRawData()
	if err != nil {
		abortWith(c, errBadJSON)
		return nil, false
	}
	payload := map[string]any{}
	if len(bytes.TrimSpace(body)) == 0 {
		return payload, true
	}
	if !json.Valid(body) {
		abortWith(c, errBadJSON)
		return nil, false
	}
	if err := binding.JSON.BindBody(body, &payload); err != nil || payload == nil {
		abortWith(c, errBadJSON)
		return nil, false
	}
	return payload, true
}

func userPatch(payload map[string]any) domain.UserPatch {
	var patch domain.UserPatch
	if name, ok := payload["name"].(string); ok {
		patch.Name = &name
	}
	if _, ok := payload["hobbies"]; ok {
		hobbies := stringSlice(payload["hobbies"])
		patch.Hobbies = &hobbies
	}
	return patch
}

func hobbyPatch(payload map[string]any) (domain.HobbyPatch, error) {
	var patch domain.HobbyPatch
	if name, ok := payload["name"].(string); ok {
		patch.Name = &name
	}
	if v, ok := payload["passionLevel"]; ok {
		level, err := domain.NormalizePassionLevel(v)
		if err != nil {
			return patch, err
		}
		patch.PassionLevel = &level
	}
	if v, ok := payload["year"]; ok {
		year := integer(v)
		patch.Year = &year
	}
	return patch, nil
}

func stringSlice(v any) []string {
	items, _ := v.([]any)
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// integer converts a number already checked by the guards.
func integer(v any) int64 {
	switch t := v.(type) {
	case float64:
		return int64(math.Trunc(t))
	case int:
		return int64(t)
	case int64:
		return t
	default:
		return 0
	}
}
