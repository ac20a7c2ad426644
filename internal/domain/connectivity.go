package domain

import (
	"errors"
	"fmt"
	"strings"
)

type ConnectivityStatus string

const (
	ConnectivityReady     ConnectivityStatus = "ready"
	ConnectivityWarmingUp ConnectivityStatus = "warming_up"
	ConnectivityError     ConnectivityStatus = "error"
)

type ConnectivityState struct {
	Status ConnectivityStatus `json:"status"`
	// only set for ConnectivityError
	Message string `json:"message,omitempty"`
}

func (s ConnectivityState) Display() string {
	switch s.Status {
	case ConnectivityReady:
		return "Connected! Database is ready."
	case ConnectivityWarmingUp:
		return "Database is warming up. Refresh in a few seconds..."
	}
	return fmt.Sprintf("Error: %s", s.Message)
}

// ProbeError is the structured error a probe client returns when the store
// answered with an error, as opposed to not answering at all.
type ProbeError struct {
	Code    string
	Message string
}

func (e *ProbeError) Error() string {
	if e.Code == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// PGRST204 is what PostgREST returns for an unknown relation, 42P01 is
// postgres undefined_table
var relationMissingCodes = map[string]struct{}{
	"PGRST204": {},
	"42P01":    {},
}

// isSqlState reports whether code came from postgres itself rather than
// PostgREST. Those codes are exact, so the message is never consulted;
// 28000 and 3D000 also say "does not exist" but mean we never got in.
func isSqlState(code string) bool {
	return code != "" && !strings.HasPrefix(code, "PGRST")
}

type probeRule struct {
	status  ConnectivityStatus
	matches func(code, message string) bool
}

// evaluated top to bottom, first match wins
var probeRules = []probeRule{
	{
		// a missing table right after provisioning still means we reached the db
		status: ConnectivityReady,
		matches: func(code, message string) bool {
			if _, ok := relationMissingCodes[code]; ok {
				return true
			}
			if isSqlState(code) {
				return false
			}
			return strings.Contains(message, "relation") || strings.Contains(message, "does not exist")
		},
	},
	{
		status: ConnectivityWarmingUp,
		matches: func(code, message string) bool {
			if isSqlState(code) {
				return false
			}
			return strings.Contains(message, "schema cache")
		},
	},
}

// ClassifyProbeError maps the outcome of a probe read onto a connectivity
// state. The checks are substring heuristics over whatever the store
// reports, so keep them here and nowhere else.
func ClassifyProbeError(err error) ConnectivityState {
	if err == nil {
		return ConnectivityState{Status: ConnectivityReady}
	}

	code, message := "", err.Error()
	var probeErr *ProbeError
	if errors.As(err, &probeErr) {
		code, message = probeErr.Code, probeErr.Message
	}

	lowered := strings.ToLower(message)
	for _, rule := range probeRules {
		if rule.matches(code, lowered) {
			return ConnectivityState{Status: rule.status}
		}
	}

	return ConnectivityState{
		Status:  ConnectivityError,
		Message: message,
	}
}
