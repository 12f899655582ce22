// Package security annotates proposed shell commands with risk hints.
//
// The controller parses the command string with mvdan.cc/sh and reports:
//
//   - dangerous command names, including ones run through sudo or env
//   - writes to protected paths, by redirection or by write commands
//   - redirections that climb out of the working directory
//
// Findings are shown next to the confirmation prompt. Nothing here blocks a
// command; the user's answer decides.
package security
