// Package handlers provides HTTP request handlers for the music server API.
//
// It includes handlers for:
//   - Album, artist, and song catalog lookups
//   - Media and cover file serving under the files prefix
//   - Health checks and catalog stats
//   - Version info and Prometheus metrics
package handlers
