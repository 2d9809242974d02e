// Package checks contains the individual probes behind the health report.
package checks
