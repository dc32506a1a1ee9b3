// Package service holds background jobs that run next to the API
package service

import (
	"os"
	"time"

	"studyvault/edu-api/model"
	"studyvault/edu-api/storage"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// OrphanSweep periodically deletes blobs that no file row points at.
// Upload writes the blob before the row and delete removes the row even
// when the blob unlink fails, so a crash between the two steps can leak
// a blob on either path. The sweep repairs both within one interval.
//
// Blobs younger than one interval are skipped, an upload may simply not
// have written its row yet
func OrphanSweep(t time.Duration, db *gorm.DB, st *storage.Store) {
	ticker := time.NewTicker(t)

	zap.L().Debug("Orphan blob sweep attached", zap.Duration("tick_every", t))

	go func() {
		for range ticker.C {
			sweepOnce(t, db, st)
		}
	}()
}

func sweepOnce(grace time.Duration, db *gorm.DB, st *storage.Store) {
	entries, err := os.ReadDir(st.Root)
	if err != nil {
		zap.L().Error("Failed to read uploads directory", zap.Error(err))
		return
	}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}

		info, err := e.Info()
		if err != nil {
			continue
		}

		if time.Since(info.ModTime()) < grace {
			continue
		}

		var count int64

		err = db.
			Model(model.File{}).
			Where("stored_name = ?", e.Name()).
			Count(&count).
			Error
		if err != nil {
			zap.L().Error("Failed to check blob for a matching row", zap.Error(err))
			continue
		}

		if count > 0 {
			continue
		}

		if err := st.Delete(e.Name()); err != nil {
			zap.L().Error("Failed to delete orphan blob", zap.Error(err), zap.String("blob", e.Name()))
			continue
		}

		zap.L().Info("Deleted orphan blob", zap.String("blob", e.Name()))
	}
}
