package scheduling

import (
	"strings"

	"bizchat-be/internal/entity"
)

// DefaultDurationMinutes sizes an appointment when no service matched.
const DefaultDurationMinutes = 30

// SlotGranularityMinutes is the step between offered slot start times.
const SlotGranularityMinutes = 30

// MatchService resolves a visitor-supplied service name against the
// tenant's service list. Matching is fuzzy: a requested name matches a
// known service if either string contains the other, case-insensitively.
// First match wins; nil means no match (callers fall back to the default
// duration).
func MatchService(services []*entity.Service, requested string) *entity.Service {
	requested = strings.ToLower(strings.TrimSpace(requested))
	if requested == "" {
		return nil
	}

	for _, svc := range services {
		known := strings.ToLower(svc.Name)
		if strings.Contains(known, requested) || strings.Contains(requested, known) {
			return svc
		}
	}
	return nil
}
