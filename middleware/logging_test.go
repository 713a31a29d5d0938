package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLogging(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantLevel string
	}{
		{"ok", 0, "hello", "INFO"},
		{"explicit ok", http.StatusOK, "", "INFO"},
		{"client error", http.StatusBadRequest, "bad", "WARN"},
		{"server error", http.StatusInternalServerError, "", "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.status != 0 {
					w.WriteHeader(tt.status)
				}
				w.Write([]byte(tt.body))
			})

			rec := httptest.NewRecorder()
			Logging(logger)(next).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/format?dialect=vb", nil))

			var entry struct {
				Level  string `json:"level"`
				Msg    string `json:"msg"`
				Method string `json:"method"`
				Path   string `json:"path"`
				Status int    `json:"status"`
				Bytes  int    `json:"bytes"`
			}
			if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
				t.Fatalf("decode log entry %q: %v", buf.String(), err)
			}

			wantStatus := tt.status
			if wantStatus == 0 {
				wantStatus = http.StatusOK
			}
			if entry.Level != tt.wantLevel {
				t.Errorf("level = %s, want %s", entry.Level, tt.wantLevel)
			}
			if entry.Msg != "request completed" || entry.Method != http.MethodPost || entry.Path != "/format" {
				t.Errorf("unexpected entry %+v", entry)
			}
			if entry.Status != wantStatus {
				t.Errorf("status = %d, want %d", entry.Status, wantStatus)
			}
			if entry.Bytes != len(tt.body) {
				t.Errorf("bytes = %d, want %d", entry.Bytes, len(tt.body))
			}
			if rec.Code != wantStatus {
				t.Errorf("response code = %d, want %d", rec.Code, wantStatus)
			}
		})
	}
}

func TestLogging_NilLogger(t *testing.T) {
	h := Logging(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/keywords", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("code = %d", rec.Code)
	}
}
