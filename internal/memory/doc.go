// Package memory configures Go's runtime memory limit for containerized
// deployments.
//
// # Overview
//
// When running in Kubernetes or other container orchestrators, Go
// applications can be OOM-killed if they exceed their memory limits.
// Unlike GOMAXPROCS, which Go detects from cgroup CPU limits on its own,
// GOMEMLIMIT must be configured explicitly.
//
// The server spawns ffmpeg subprocesses for frame decoding and runs
// libvips through CGO for cover encoding; both allocate outside the Go
// heap. The heap limit is therefore set to a fraction of the container
// limit, leaving headroom for that non-heap memory.
//
// # Configuration
//
// Call [ConfigureFromEnv] early in main, before significant allocations:
//
//	func main() {
//	    memory.ConfigureFromEnv()
//	    // ... rest of application
//	}
//
// # Environment Variables
//
//   - GOMEMLIMIT: Standard Go environment variable. If set, takes
//     precedence over all other configuration. Accepts values like
//     "400MiB" or "1GiB".
//
//   - MEMORY_LIMIT: Container memory limit in bytes, typically injected
//     via the Kubernetes Downward API. GOMEMLIMIT is calculated from it.
//
//   - MEMORY_RATIO: Fraction of MEMORY_LIMIT to give the Go heap, as a
//     decimal between 0.0 and 1.0. Default is 0.85. Lower it when cover
//     generation runs against large video-bearing files.
//
// # Kubernetes Configuration
//
// Pass the container limit through the Downward API:
//
//	spec:
//	  containers:
//	  - name: music-server
//	    resources:
//	      limits:
//	        memory: "512Mi"
//	    env:
//	    - name: MEMORY_LIMIT
//	      valueFrom:
//	        resourceFieldRef:
//	          resource: limits.memory
package memory
