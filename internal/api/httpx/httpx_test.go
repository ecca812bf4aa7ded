package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/5w1tchy/bookshelf-api/internal/api/httpx"
)

func TestEnvelopes(t *testing.T) {
	tests := []struct {
		name  string
		write func(w http.ResponseWriter)
		code  int
		body  string
	}{
		{
			name:  "success with data",
			write: func(w http.ResponseWriter) { httpx.Success(w, http.StatusCreated, "added", httpx.Data{"bookId": "abc"}) },
			code:  http.StatusCreated,
			body:  `{"status":"success","message":"added","data":{"bookId":"abc"}}` + "\n",
		},
		{
			name:  "success without message",
			write: func(w http.ResponseWriter) { httpx.Success(w, http.StatusOK, "", httpx.Data{"books": []string{}}) },
			code:  http.StatusOK,
			body:  `{"status":"success","data":{"books":[]}}` + "\n",
		},
		{
			name:  "fail",
			write: func(w http.ResponseWriter) { httpx.Fail(w, http.StatusNotFound, "not found") },
			code:  http.StatusNotFound,
			body:  `{"status":"fail","message":"not found"}` + "\n",
		},
		{
			name:  "error",
			write: func(w http.ResponseWriter) { httpx.Error(w, http.StatusInternalServerError, "boom") },
			code:  http.StatusInternalServerError,
			body:  `{"status":"error","message":"boom"}` + "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.write(rec)
			if rec.Code != tt.code {
				t.Errorf("Expected %d, got %d", tt.code, rec.Code)
			}
			if rec.Body.String() != tt.body {
				t.Errorf("Expected body %s, got %s", tt.body, rec.Body.String())
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
				t.Errorf("Unexpected Content-Type %q", ct)
			}
		})
	}
}
