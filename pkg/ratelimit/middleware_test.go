package ratelimit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetRateLimitType(t *testing.T) {
	cases := []struct {
		path string
		want RateLimitType
	}{
		{"/health", RateLimitTypeHealth},
		{"/ping", RateLimitTypeHealth},
		{"/status", RateLimitTypeHealth},
		{"/api/v1/admin/stats", RateLimitTypeAdmin},
		{"/api/v1/admin/users", RateLimitTypeAdmin},
		{"/api/v1/auth/login", RateLimitTypeAuth},
		{"/api/v1/auth/register", RateLimitTypeAuth},
		{"/api/v1/messages", RateLimitTypeMessaging},
		{"/api/v1/patient/appointments", RateLimitTypePatient},
		{"/api/v1/patient/triage", RateLimitTypePatient},
		{"/api/v1/hospital/verify", RateLimitTypePublic},
		{"/login", RateLimitTypePublic},
		{"/api/v1/doctor/tasks", RateLimitTypeDefault},
		{"/api/v1/front-desk/patients", RateLimitTypeDefault},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, getRateLimitType(tc.path), "path %s", tc.path)
	}
}
