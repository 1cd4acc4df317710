// Package model defines domain entities and data structures for the Inkline blog API.
//
// The model package contains all struct definitions for domain objects,
// projection types, and error definitions. Models are used across all layers
// of the application.
//
// # Domain Entities
//
// Core domain entities include:
//
//   - User: Registered account with authentication credentials
//   - PublicUser: Credential-free projection of User for API responses
//   - Post: Blog post owned by an author
//   - Comment: Comment attached to a post
//
// # Statistics Rows
//
// The author ranking aggregation produces fixed structured row types rather
// than loosely-typed maps:
//
//   - AuthorPostStats: post count + latest post + that post's latest comment
//   - AuthorCommentStats: post count + the author's own latest comment
//
// # JSON Serialization
//
// All models use json struct tags for API serialization. Optional aggregate
// fields are pointers so absent values serialize as explicit null.
//
// # Error Types
//
// RFC 9457 Problem Details errors are defined in errors.go:
//
//	type ProblemDetails struct {
//	    Type   string `json:"type"`
//	    Title  string `json:"title"`
//	    Status int    `json:"status"`
//	    Detail string `json:"detail"`
//	}
package model
