package backend

import (
	"errors"
	"net/url"
	"strings"
	"testing"
)

func TestEncodeBody(t *testing.T) {
	tests := []struct {
		name     string
		body     any
		wantBody string
		wantCT   string
		wantErr  bool
	}{
		{"nil", nil, "", "", false},
		{"string raw", `{"id":1}`, `{"id":1}`, contentTypeText, false},
		{"bytes binary", []byte{0x01, 0x02}, "\x01\x02", contentTypeBytes, false},
		{"string map form", map[string]string{"name": "X"}, "name=X", contentTypeForm, false},
		{"any map form", map[string]any{"id": 7}, "id=7", contentTypeForm, false},
		{"url values", url.Values{"a": {"b"}}, "a=b", contentTypeForm, false},
		{"unsupported struct", struct{}{}, "", "", true},
		{"unsupported int", 42, "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ct, err := encodeBody(tt.body)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected construction-time error")
				}
				return
			}
			if err != nil {
				t.Fatalf("encodeBody: %v", err)
			}
			if string(got) != tt.wantBody {
				t.Errorf("body = %q, want %q", got, tt.wantBody)
			}
			if ct != tt.wantCT {
				t.Errorf("content type = %q, want %q", ct, tt.wantCT)
			}
		})
	}
}

func TestDecodeRecord_JSON(t *testing.T) {
	rec, err := decodeRecord([]byte(`{"id": 7, "name": "X"}`), contentTypeText)
	if err != nil {
		t.Fatalf("decodeRecord: %v", err)
	}
	if rec["name"] != "X" {
		t.Errorf("name = %v", rec["name"])
	}
	// JSON numbers arrive as float64; normalization happens at dispatch.
	if rec["id"] != float64(7) {
		t.Errorf("id = %v (%T)", rec["id"], rec["id"])
	}
}

func TestDecodeRecord_Form(t *testing.T) {
	rec, err := decodeRecord([]byte("id=7&name=X"), contentTypeForm)
	if err != nil {
		t.Fatalf("decodeRecord: %v", err)
	}
	if rec["id"] != "7" || rec["name"] != "X" {
		t.Errorf("record = %v", rec)
	}
}

func TestDecodeRecord_Empty(t *testing.T) {
	rec, err := decodeRecord(nil, "")
	if err != nil {
		t.Fatalf("decodeRecord: %v", err)
	}
	if len(rec) != 0 {
		t.Errorf("record = %v, want empty", rec)
	}
}

func TestDecodeRecord_CompositeID(t *testing.T) {
	for _, body := range []string{
		`{"id": [1], "name": "X"}`,
		`{"id": {"v": 1}, "name": "X"}`,
	} {
		_, err := decodeRecord([]byte(body), contentTypeText)
		if err == nil {
			t.Fatalf("decodeRecord(%s) accepted a composite id", body)
		}
		var bad *BadRequestError
		if !errors.As(err, &bad) {
			t.Errorf("error type = %T, want *BadRequestError", err)
		}
	}
}

func TestDecodeRecord_BadJSON(t *testing.T) {
	_, err := decodeRecord([]byte("not json"), contentTypeText)
	if err == nil {
		t.Fatal("expected error")
	}
	var bad *BadRequestError
	if !errors.As(err, &bad) {
		t.Errorf("error type = %T, want *BadRequestError", err)
	}
	if !strings.Contains(err.Error(), "unable to parse") {
		t.Errorf("error = %q", err)
	}
}
