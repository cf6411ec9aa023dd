// Package app provides the main application logic for resolving Spotify track
// previews. It wires the configuration, the embed page client, and the preview
// service together, and drives the resolution of the tracks passed on the
// command line.
package app
