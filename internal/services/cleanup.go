package services

import (
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

const staticMaxAge = 24 * time.Hour

// CleanupStaticDir removes generated chart images older than a day. It is
// best-effort: failures are logged and skipped.
func CleanupStaticDir(dir string, logger *zap.Logger) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("reading static dir failed", zap.String("dir", dir), zap.Error(err))
		}
		return
	}

	cutoff := time.Now().Add(-staticMaxAge)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			path := filepath.Join(dir, entry.Name())
			if err := os.Remove(path); err != nil {
				logger.Warn("removing stale chart failed", zap.String("path", path), zap.Error(err))
			}
		}
	}
	logger.Debug("static dir cleaned", zap.String("dir", dir))
}
