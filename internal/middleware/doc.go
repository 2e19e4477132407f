// Package middleware provides HTTP middleware for the music server.
//
// It includes:
//   - Request logging in W3C Extended Log Format
//   - Response compression (gzip) for catalog JSON
//   - Prometheus request metrics with path normalization
//   - Cross-origin response headers for browser players
package middleware
