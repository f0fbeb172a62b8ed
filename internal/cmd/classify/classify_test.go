package classify

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeEvent(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestCommandClassifiesFiles(t *testing.T) {
	dir := t.TempDir()
	api := writeEvent(t, dir, "api.json", `{"requestContext":{"apiId":"abc","accountId":"123","httpMethod":"GET","path":"/x"},"multiValueHeaders":{"Host":["svc.a.us-west-2.amazonaws.com"]}}`)
	other := writeEvent(t, dir, "other.json", `{"detail-type":"Scheduled Event"}`)

	var out bytes.Buffer
	cmd := NewCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--log-level", "error", api, other})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	want := api + "\tarn:aws:execute-api:us-west-2:123:abc/*/GET/x\n" + other + "\tUnknown\n"
	if out.String() != want {
		t.Fatalf("output = %q, want %q", out.String(), want)
	}
}

func TestCommandReadsStdin(t *testing.T) {
	var out bytes.Buffer
	cmd := NewCommand()
	cmd.SetOut(&out)
	cmd.SetIn(strings.NewReader(`{"Records":[{"eventSource":"aws:s3","s3":{"bucket":{"arn":"arn:aws:s3:::logs"}}}]}`))
	cmd.SetArgs([]string{"--log-level", "error"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if out.String() != "-\tarn:aws:s3:::logs\n" {
		t.Fatalf("output = %q", out.String())
	}
}

func TestCommandMissingFile(t *testing.T) {
	cmd := NewCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "absent.json")})
	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected read error")
	}
	if !strings.Contains(err.Error(), "read event:") {
		t.Fatalf("expected read event prefix, got %v", err)
	}
}

func TestCommandRejectsBadLogLevel(t *testing.T) {
	cmd := NewCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(`{}`))
	cmd.SetArgs([]string{"--log-level", "shout"})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected log level error")
	}
}
