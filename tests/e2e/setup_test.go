// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"
)

const defaultBaseURL = "http://localhost:8080"

var (
	baseURL string
	client  = &http.Client{Timeout: 10 * time.Second}
)

func TestMain(m *testing.M) {
	baseURL = os.Getenv("HTTP_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	if os.Getenv("E2E_USE_EXISTING_DEPLOYMENT") != "true" {
		fmt.Println("E2E_USE_EXISTING_DEPLOYMENT is not set, skipping e2e tests")
		os.Exit(0)
	}

	os.Exit(m.Run())
}

func doJSON(t *testing.T, method, path, token string, payload any) (*http.Response, []byte) {
	t.Helper()

	var body *bytes.Buffer = bytes.NewBuffer(nil)
	if payload != nil {
		if err := json.NewEncoder(body).Encode(payload); err != nil {
			t.Fatalf("failed to encode payload: %v", err)
		}
	}

	req, err := http.NewRequest(method, baseURL+path, body)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("request %s %s failed: %v", method, path, err)
	}
	defer resp.Body.Close()

	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	return resp, buf.Bytes()
}

func decode(t *testing.T, data []byte, out any) {
	t.Helper()

	if err := json.Unmarshal(data, out); err != nil {
		t.Fatalf("failed to decode %s: %v", data, err)
	}
}
