package model

import "testing"

func TestRefreshState_String(t *testing.T) {
	tests := []struct {
		state    RefreshState
		expected string
	}{
		{RefreshIdle, "Idle"},
		{RefreshPulling, "Pulling"},
		{RefreshRefreshing, "Refreshing"},
		{RefreshFinished, "Finished"},
		{RefreshState(42), "Unknown"},
	}

	for _, test := range tests {
		result := test.state.String()
		if result != test.expected {
			t.Errorf("RefreshState(%d).String() = %s, expected %s", int(test.state), result, test.expected)
		}
	}
}

func TestRefreshState_IsActive(t *testing.T) {
	tests := []struct {
		state    RefreshState
		expected bool
	}{
		{RefreshIdle, false},
		{RefreshPulling, false},
		{RefreshRefreshing, true},
		{RefreshFinished, true},
	}

	for _, test := range tests {
		result := test.state.IsActive()
		if result != test.expected {
			t.Errorf("RefreshState(%s).IsActive() = %v, expected %v", test.state, result, test.expected)
		}
	}
}
