// Package admin backs the administrator screens: location management,
// leader and treasurer accounts, and searchable participant lists.
//
// Lists are filtered with accent-insensitive search before pagination, so
// page numbers always refer to the filtered collection.
package admin
