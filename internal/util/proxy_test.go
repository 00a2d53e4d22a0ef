package util

import (
	"net/http"
	"testing"
)

func TestNewProxyFunc_Explicit(t *testing.T) {
	proxyFunc := NewProxyFunc("http://proxy:8080", "http://sproxy:8443")

	httpReq, _ := http.NewRequest(http.MethodGet, "http://example.com", nil)
	u, err := proxyFunc(httpReq)
	if err != nil {
		t.Fatalf("proxy func: %v", err)
	}
	if u == nil || u.Host != "proxy:8080" {
		t.Errorf("expected http proxy, got %v", u)
	}

	httpsReq, _ := http.NewRequest(http.MethodGet, "https://example.com", nil)
	u, err = proxyFunc(httpsReq)
	if err != nil {
		t.Fatalf("proxy func: %v", err)
	}
	if u == nil || u.Host != "sproxy:8443" {
		t.Errorf("expected https proxy, got %v", u)
	}
}

func TestNewProxyFunc_HTTPProxyCoversHTTPS(t *testing.T) {
	proxyFunc := NewProxyFunc("http://proxy:8080", "")

	httpsReq, _ := http.NewRequest(http.MethodGet, "https://example.com", nil)
	u, err := proxyFunc(httpsReq)
	if err != nil {
		t.Fatalf("proxy func: %v", err)
	}
	if u == nil || u.Host != "proxy:8080" {
		t.Errorf("expected fallback to http proxy, got %v", u)
	}
}
