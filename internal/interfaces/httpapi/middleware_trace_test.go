package httpapi

import "testing"

func TestShouldTraceRequest_SkipsProbesAndOverlays(t *testing.T) {
	paths := []string{"/healthz", "/health", "/livez", "/readyz", " /healthz ", "/overlays/standings"}
	for _, path := range paths {
		if shouldTraceRequest(path) {
			t.Fatalf("expected no tracing for path %q", path)
		}
	}
}

func TestShouldTraceRequest_APIAndPages(t *testing.T) {
	paths := []string{"/v1/teams", "/report", "/live/2001", "/"}
	for _, path := range paths {
		if !shouldTraceRequest(path) {
			t.Fatalf("expected tracing for path %q", path)
		}
	}
}
