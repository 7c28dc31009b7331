package logging

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func capturedDefault() (*Default, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return &Default{
		out:    log.New(&out, "", 0),
		errOut: log.New(&errOut, "", 0),
		level:  WarnLevel,
		fields: make(Fields),
	}, &out, &errOut
}

func TestDefaultLevelFiltering(t *testing.T) {
	d, out, errOut := capturedDefault()

	d.Info("quiet")
	d.Warn("loud")

	if out.Len() != 0 {
		t.Errorf("info below min level should be dropped, got %q", out.String())
	}
	if !strings.Contains(errOut.String(), "[WARN] loud") {
		t.Errorf("warn output = %q", errOut.String())
	}

	d.SetLevel(DebugLevel)
	d.Debug("now visible")
	if !strings.Contains(out.String(), "[DEBUG] now visible") {
		t.Errorf("debug output = %q", out.String())
	}
}

func TestDefaultFields(t *testing.T) {
	d, _, errOut := capturedDefault()

	d.WithFields(Fields{"component": "conv"}).Warn("residue", Fields{"value": 0.25})

	line := errOut.String()
	for _, want := range []string{"component:conv", "value:0.25"} {
		if !strings.Contains(line, want) {
			t.Errorf("output %q missing %q", line, want)
		}
	}
}

func TestSetNilInstallsNoOp(t *testing.T) {
	prev := Get()
	defer Set(prev)

	Set(nil)
	if _, ok := Get().(NoOp); !ok {
		t.Fatalf("Set(nil) installed %T, want NoOp", Get())
	}

	// Must not panic.
	Warn("into the void")
}
