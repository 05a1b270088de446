// Package domain defines the core entities of the board-game review
// platform (categories, users, reviews, comments) and their validation
// rules. It has no dependencies on storage or transport concerns.
package domain
