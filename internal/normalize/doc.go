// Package normalize converts hand-entered course values into canonical typed
// values. Every converter is total: bad input degrades to "absent" or to an
// empty result and never produces an error.
package normalize
