// Catalogus - TM Forum Open API Resource Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogus

package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"fatal", zerolog.FatalLevel},
		{"disabled", zerolog.Disabled},
		{"INFO", zerolog.InfoLevel},
		{"bogus", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.input); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestInitJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "debug", Format: "json", Output: &buf})
	defer Init(DefaultConfig())

	Info().Str("key", "value").Msg("test message")

	out := buf.String()
	if !strings.Contains(out, `"key":"value"`) {
		t.Errorf("expected structured field in output, got %q", out)
	}
	if !strings.Contains(out, "test message") {
		t.Errorf("expected message in output, got %q", out)
	}
}

func TestCtxIncludesRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := NewTestLogger(&buf)

	ctx := ContextWithLogger(context.Background(), logger)
	ctx = ContextWithRequestID(ctx, "req-123")

	Ctx(ctx).Info().Msg("with context")

	out := buf.String()
	if !strings.Contains(out, `"request_id":"req-123"`) {
		t.Errorf("expected request_id in output, got %q", out)
	}
}

func TestCtxWithoutRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := NewTestLogger(&buf)

	ctx := ContextWithLogger(context.Background(), logger)
	Ctx(ctx).Info().Msg("plain")

	if strings.Contains(buf.String(), "request_id") {
		t.Errorf("did not expect request_id in output, got %q", buf.String())
	}
}

func TestGenerateRequestIDUnique(t *testing.T) {
	a := GenerateRequestID()
	b := GenerateRequestID()
	if a == b {
		t.Error("expected unique request IDs")
	}
	if len(a) != 36 {
		t.Errorf("expected UUID format, got %q", a)
	}
}

func TestSlogHandlerWritesToZerolog(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(NewTestLogger(&buf))
	defer Init(DefaultConfig())

	slogger := NewSlogLogger()
	slogger.Info("supervised", "service", "http-server")

	out := buf.String()
	if !strings.Contains(out, "supervised") {
		t.Errorf("expected message in output, got %q", out)
	}
	if !strings.Contains(out, `"service":"http-server"`) {
		t.Errorf("expected attribute in output, got %q", out)
	}
}
