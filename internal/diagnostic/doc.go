// Package diagnostic provides coded, structured issues raised while
// assembling a course manifest.
//
// Key capabilities:
//   - Error, warning and info severities collected in one result
//   - Source context (table name and row reference) on every issue
//   - "Did you mean" suggestions for misspelled attribute keys
//   - A single combined error built from all error issues
package diagnostic
