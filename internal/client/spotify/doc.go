// Package spotify provides a thin HTTP client for the public, unauthenticated
// Spotify embed endpoint. It fetches the embed page document for a track;
// interpreting the document is left to the service layer.
package spotify
