// Package utils provides a collection of helper functions shared across the application,
// such as regex named-group extraction and content type validation.
package utils
