// Package health runs a periodic, best-effort self-diagnostic: resident
// memory and open file descriptor count for the replica's own process,
// logged at debug level. It is purely an operational aid — the fault
// model in spec.md §7 does not depend on it, and its failure (e.g. no
// /proc on this host) only disables the reporting goroutine.
package health

import (
	"context"
	"time"

	"github.com/prometheus/procfs"

	"github.com/chat262/cluster/internal/logging"
)

// Report periodically logs this process's own resident memory and open FD
// count until ctx is canceled. interval is typically 30s; callers run this
// in its own goroutine. If /proc is unavailable (e.g. non-Linux hosts) it
// logs one debug line and returns without reporting — this is
// diagnostics, not correctness.
func Report(ctx context.Context, component string, interval time.Duration) {
	proc, err := procfs.Self()
	if err != nil {
		logging.Debugf("health: /proc unavailable for %s, disabling self-report: %v", component, err)
		return
	}

	log := logging.Named(component)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			stat, err := proc.Stat()
			if err != nil {
				log.Debug("health: stat read failed", "err", err)
				continue
			}
			fds, err := proc.FileDescriptorsLen()
			if err != nil {
				fds = -1
			}
			log.Debug("health",
				"rss_bytes", stat.ResidentMemory(),
				"open_fds", fds,
			)
		}
	}
}
