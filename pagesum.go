// Package pagesum summarizes web pages. It fetches a page, extracts the
// visible text and image URLs, and asks the Gemini API for a brief summary
// of the combined content.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, gemini/, toml/).
package pagesum
