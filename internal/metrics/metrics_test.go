package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRegisterExposesMetricsEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	Register(router, "/metrics")

	RegistrationsTotal.Inc()
	LoginsTotal.Inc()
	VerificationCodesSentTotal.Inc()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from the metrics endpoint, got %d", rec.Code)
	}

	body := rec.Body.String()
	for _, name := range []string{
		"sponsvisa_registrations_total",
		"sponsvisa_logins_total",
		"sponsvisa_verification_codes_sent_total",
	} {
		if !strings.Contains(body, name) {
			t.Fatalf("metrics output missing %s", name)
		}
	}
}
