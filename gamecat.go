// Package gamecat ingests semi-structured pages from third-party game
// information sites (rank tables, event pages, forum listings) and turns
// them into normalized records for a content catalog.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, bluemonday/, sqlite/).
package gamecat
