package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yoockh/devprofiles/config"
	"github.com/yoockh/devprofiles/internal/logger"
	"github.com/yoockh/devprofiles/internal/models"
)

func TestSeedCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"seed"})
	require.NoError(t, cmd.Execute())

	var got []models.Profile
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, models.SeedProfiles(), got)
}

func TestBuildRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	log := logger.NewWithOutput(io.Discard, "error")

	tests := []struct {
		name string
		seed bool
		want int
	}{
		{"seeded", true, len(models.SeedProfiles())},
		{"empty", false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := buildRouter(&config.Config{SeedProfiles: tt.seed}, log, nil)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/profiles", nil))
			require.Equal(t, http.StatusOK, w.Code)

			var got []models.Profile
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			assert.Len(t, got, tt.want)
			assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
		})
	}
}
