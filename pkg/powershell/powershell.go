// Package powershell builds non-interactive PowerShell invocations.
package powershell

import "strings"

// Executable is resolved through PATH; Windows PowerShell 5 and pwsh both load
// Microsoft.VisualBasic.
const Executable = "powershell"

// Quote returns s as a single-quoted PowerShell literal. Single quotes are doubled,
// which is the only escape a single-quoted string knows.
func Quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// Args wraps script in the flags used for every invocation: no profile, no prompts.
func Args(script string) []string {
	return []string{"-NoProfile", "-NonInteractive", "-Command", script}
}

const visualBasic = "Add-Type -AssemblyName Microsoft.VisualBasic; "

// RecycleCommand returns a script that sends one path to the Recycle Bin.
// Directories and files need different FileSystem methods.
func RecycleCommand(path string, isDir bool) string {
	method := "DeleteFile"
	if isDir {
		method = "DeleteDirectory"
	}
	return visualBasic + "[Microsoft.VisualBasic.FileIO.FileSystem]::" + method +
		"(" + Quote(path) + ", 'OnlyErrorDialogs', 'SendToRecycleBin')"
}

// RecycleBatchScript returns a script that sends every path to the Recycle Bin,
// deciding file or directory on the Windows side. Failures are reported on stderr
// per path and the script exits non-zero if any path failed.
func RecycleBatchScript(paths []string) string {
	quoted := make([]string, len(paths))
	for i, p := range paths {
		quoted[i] = Quote(p)
	}
	return visualBasic +
		"$failed = 0; " +
		"foreach ($p in @(" + strings.Join(quoted, ", ") + ")) { " +
		"try { " +
		"if (Test-Path -LiteralPath $p -PathType Container) { " +
		"[Microsoft.VisualBasic.FileIO.FileSystem]::DeleteDirectory($p, 'OnlyErrorDialogs', 'SendToRecycleBin') " +
		"} else { " +
		"[Microsoft.VisualBasic.FileIO.FileSystem]::DeleteFile($p, 'OnlyErrorDialogs', 'SendToRecycleBin') " +
		"} " +
		"} catch { [Console]::Error.WriteLine($p + ': ' + $_.Exception.Message); $failed++ } " +
		"}; " +
		"exit [int]($failed -gt 0)"
}
