// Package spotify resolves Spotify track identifiers to their 30-second audio
// preview URLs. It normalizes caller input (a raw 22-character identifier or a
// full track URL), fetches the track's public embed page through the client
// package, and extracts the preview link from the embedded page data.
package spotify
