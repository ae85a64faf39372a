package httpapi

import "testing"

func TestShouldTraceRequest_HealthPaths(t *testing.T) {
	paths := []string{"/healthz", "/health", "/livez", "/readyz", " /healthz "}
	for _, path := range paths {
		if shouldTraceRequest(path) {
			t.Fatalf("expected no tracing for path %q", path)
		}
	}
}

func TestShouldTraceRequest_NonHealthPaths(t *testing.T) {
	paths := []string{"/v1/report", "/v1/relations/rivals", "/", "/v1/players/Kenedy/teammates"}
	for _, path := range paths {
		if !shouldTraceRequest(path) {
			t.Fatalf("expected tracing for path %q", path)
		}
	}
}

func TestShouldCreateHTTPAPISpan(t *testing.T) {
	if !shouldCreateHTTPAPISpan("httpapi.Handler.GetReport") {
		t.Fatalf("expected handler spans to be created")
	}
	if shouldCreateHTTPAPISpan("httpapi.writeJSON") {
		t.Fatalf("did not expect helper spans")
	}
}
