package model

// Package model defines domain data structures used across the app: the
// user-entered form state, the status traffic-light mapping, and run state
// enums for background tasks. Structures are designed for direct use by the
// UI and explicit state transitions.
