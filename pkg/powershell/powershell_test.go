package powershell

import (
	"strings"
	"testing"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`C:\Users\u\Downloads\a.txt`, `'C:\Users\u\Downloads\a.txt'`},
		{`C:\Users\u\Downloads\it's.txt`, `'C:\Users\u\Downloads\it''s.txt'`},
		{`'); Remove-Item C:\ -Recurse; ('`, `'''); Remove-Item C:\ -Recurse; ('''`},
		{`$env:HOME`, `'$env:HOME'`},
		{``, `''`},
	}
	for _, tt := range tests {
		if got := Quote(tt.in); got != tt.want {
			t.Errorf("Quote(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestArgs(t *testing.T) {
	args := Args("Get-Date")
	want := []string{"-NoProfile", "-NonInteractive", "-Command", "Get-Date"}
	if len(args) != len(want) {
		t.Fatalf("length mismatch: got=%v", args)
	}
	for i := range want {
		if args[i] != want[i] {
			t.Errorf("arg %d: got=%q want=%q", i, args[i], want[i])
		}
	}
}

func TestRecycleCommand(t *testing.T) {
	dir := RecycleCommand(`C:\Users\u\Downloads\bob's stuff`, true)
	wantDir := `Add-Type -AssemblyName Microsoft.VisualBasic; [Microsoft.VisualBasic.FileIO.FileSystem]::DeleteDirectory('C:\Users\u\Downloads\bob''s stuff', 'OnlyErrorDialogs', 'SendToRecycleBin')`
	if dir != wantDir {
		t.Errorf("directory command mismatch:\ngot  %s\nwant %s", dir, wantDir)
	}

	file := RecycleCommand(`C:\Users\u\Downloads\a.txt`, false)
	wantFile := `Add-Type -AssemblyName Microsoft.VisualBasic; [Microsoft.VisualBasic.FileIO.FileSystem]::DeleteFile('C:\Users\u\Downloads\a.txt', 'OnlyErrorDialogs', 'SendToRecycleBin')`
	if file != wantFile {
		t.Errorf("file command mismatch:\ngot  %s\nwant %s", file, wantFile)
	}
}

func TestRecycleBatchScriptQuotesEveryPath(t *testing.T) {
	script := RecycleBatchScript([]string{`C:\a'b`, `C:\c`})
	if !strings.Contains(script, `@('C:\a''b', 'C:\c')`) {
		t.Errorf("paths not quoted as a literal array: %s", script)
	}
	if !strings.HasPrefix(script, "Add-Type -AssemblyName Microsoft.VisualBasic; ") {
		t.Errorf("missing assembly load: %s", script)
	}
}
