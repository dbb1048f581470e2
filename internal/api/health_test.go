// Copyright (c) 2026 Hientensai. All rights reserved.
// Author: hien@hientensai.com

package api_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hientensai/blogapi/internal/api"
	"github.com/hientensai/blogapi/internal/platform/constants"
)

/*
TestLiveness reports the running version so probes and dashboards can tell
deployments apart.
*/
func TestLiveness(t *testing.T) {
	liveness, _ := api.NewHealthHandlers(api.HealthDependencies{}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	recorder := httptest.NewRecorder()
	liveness(recorder, httptest.NewRequest("GET", "/health", nil))

	require.Equal(t, http.StatusOK, recorder.Code)

	var envelope struct {
		Data map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))

	assert.Equal(t, "ok", envelope.Data["status"])
	assert.Equal(t, constants.AppVersion, envelope.Data["version"])
}

/*
TestReadiness verifies the degraded path: a failing database check turns the
probe into a 503 with the check detail attached.
*/
func TestReadiness(t *testing.T) {
	t.Run("ready", func(t *testing.T) {
		_, readiness := api.NewHealthHandlers(api.HealthDependencies{
			CheckDatabase: func() error { return nil },
		}, slog.New(slog.NewTextHandler(io.Discard, nil)))

		recorder := httptest.NewRecorder()
		readiness(recorder, httptest.NewRequest("GET", "/ready", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("degraded", func(t *testing.T) {
		_, readiness := api.NewHealthHandlers(api.HealthDependencies{
			CheckDatabase: func() error { return errors.New("connection refused") },
		}, slog.New(slog.NewTextHandler(io.Discard, nil)))

		recorder := httptest.NewRecorder()
		readiness(recorder, httptest.NewRequest("GET", "/ready", nil))

		require.Equal(t, http.StatusServiceUnavailable, recorder.Code)

		var envelope struct {
			Data struct {
				Status string `json:"status"`
				Checks []struct {
					Name  string `json:"name"`
					IsOK  bool   `json:"ok"`
					Error string `json:"error"`
				} `json:"checks"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))

		assert.Equal(t, "degraded", envelope.Data.Status)
		require.Len(t, envelope.Data.Checks, 1)
		assert.Equal(t, "postgres", envelope.Data.Checks[0].Name)
		assert.False(t, envelope.Data.Checks[0].IsOK)
		assert.Contains(t, envelope.Data.Checks[0].Error, "connection refused")
	})
}
