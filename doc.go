// Package cashflow provides the core ledger for a personal and
// small-business finance tracker. It is designed to be local-first and
// auditable: the whole financial state lives in a single document that is
// loaded once at startup and rewritten wholesale after every mutation.
//
// The core functionalities include:
//   - Ledger state: income, expenses, recurring installment payments (EMIs),
//     bank accounts, investment balances, and a taxi-fleet business sub-ledger
//     (cars, drivers, revenue/cost entries).
//   - Mutation operations: every state transition produces a new state that is
//     committed atomically through a [Store]; an append-only history log
//     records every money-moving operation.
//   - Derived statistics: totals, outstanding debt, next-month obligations,
//     and rolling business-cycle profit are recomputed on demand from the
//     current state, never cached.
//   - Data exchange: whole-document JSON backup and restore with
//     all-or-nothing validation, and CSV export of the history log.
//
// This package serves as the foundational logic for the `nxc` command-line
// tool, which is a thin front-end over the ledger's operations.
package cashflow
