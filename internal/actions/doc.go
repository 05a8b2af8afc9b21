// Package actions implements the grit workflows. Each action takes the
// runtime context and an Options struct, performs its workflow against
// the repository gateway, and reports through the context's splog.
package actions
