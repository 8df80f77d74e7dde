// SPDX-License-Identifier: Apache-2.0

package nibble

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggedWith(t *testing.T) {
	t.Parallel()
	c := Combinators[Text]{}

	t.Run("LogsStartAndFinish", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		logger := slog.New(slog.NewJSONHandler(&buf, nil))

		p := LoggedWith(logger, slog.LevelInfo, "digits", c.TakeWhile1(IsDigit))
		rest, out, err := p("123abc")
		if err != nil || rest != "abc" || out != "123" {
			t.Errorf("wrapping altered the result: (%q, %q, %v)", rest, out, err)
		}

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		if len(lines) != 2 {
			t.Fatalf("expected 2 log lines, got %d: %s", len(lines), buf.String())
		}

		var log1 map[string]interface{}
		if err := json.Unmarshal([]byte(lines[0]), &log1); err != nil {
			t.Fatalf("failed to parse first log line: %v", err)
		}
		if log1["msg"] != "starting parser" || log1["name"] != "digits" {
			t.Errorf("expected starting parser with name=digits, got: %v", log1)
		}
		if log1["input_len"] != float64(6) {
			t.Errorf("expected input_len=6, got: %v", log1["input_len"])
		}

		var log2 map[string]interface{}
		if err := json.Unmarshal([]byte(lines[1]), &log2); err != nil {
			t.Fatalf("failed to parse second log line: %v", err)
		}
		if log2["msg"] != "finished parser" || log2["name"] != "digits" {
			t.Errorf("expected finished parser with name=digits, got: %v", log2)
		}
		if log2["consumed"] != float64(3) {
			t.Errorf("expected consumed=3, got: %v", log2["consumed"])
		}
		if _, ok := log2["duration_us"]; !ok {
			t.Errorf("expected duration_us attribute, got: %v", log2)
		}
		if _, ok := log2["error"]; ok {
			t.Errorf("unexpected error attribute on success: %v", log2)
		}
	})

	t.Run("LogsErrorOnFailure", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		logger := slog.New(slog.NewJSONHandler(&buf, nil))

		p := LoggedWith(logger, slog.LevelInfo, "digits", c.TakeWhile1(IsDigit))
		_, _, err := p("abc")
		if err == nil {
			t.Fatal("expected parse error")
		}

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		var finish map[string]interface{}
		if err := json.Unmarshal([]byte(lines[len(lines)-1]), &finish); err != nil {
			t.Fatalf("failed to parse finish line: %v", err)
		}
		errMsg, ok := finish["error"].(string)
		if !ok || !strings.Contains(errMsg, "TakeWhile1") {
			t.Errorf("expected error attribute naming the failure, got: %v", finish)
		}
		if finish["consumed"] != float64(0) {
			t.Errorf("expected consumed=0 on failure, got: %v", finish["consumed"])
		}
	})

	t.Run("RespectsHandlerLevel", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		// Handler admits info and above; debug records are dropped.
		logger := slog.New(slog.NewJSONHandler(&buf, nil))

		p := LoggedWith(logger, slog.LevelDebug, "digits", c.TakeWhile1(IsDigit))
		if _, _, err := p("123"); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		if buf.Len() != 0 {
			t.Errorf("expected no output below handler level, got: %s", buf.String())
		}
	})
}

func TestLogged(t *testing.T) {
	t.Parallel()
	c := Combinators[Text]{}

	// Logged emits at debug level on the default logger, which drops
	// debug records unless reconfigured; only the parse result is
	// observable here.
	p := Logged("digits", c.TakeWhile1(IsDigit))
	rest, out, err := p("12a")
	if err != nil || rest != "a" || out != "12" {
		t.Errorf("wrapping altered the result: (%q, %q, %v)", rest, out, err)
	}
}
