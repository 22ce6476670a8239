// Package report turns finished runs into human- and machine-readable
// output: a run Summary, an aligned results table, CVRPLIB-style route
// listings, host information, and a SQLite ledger of past runs.
//
// Nothing here is on the solver's hot path; every function runs once per
// instance after the search has finished.
package report
