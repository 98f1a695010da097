package events

import (
	"fmt"
	"log"

	"github.com/robfig/cron/v3"
)

// Backup snapshots the events document on a cron schedule so a bad write or
// an accidental delete never loses more than one interval of planning work.
type Backup struct {
	cron  *cron.Cron
	store *Store
	dir   string
}

func NewBackup(store *Store, dir string) *Backup {
	return &Backup{cron: cron.New(), store: store, dir: dir}
}

func (b *Backup) Start(schedule string) error {
	_, err := b.cron.AddFunc(schedule, func() {
		name, err := b.store.Snapshot(b.dir)
		if err != nil {
			log.Printf("⚠️ Events backup failed: %v", err)
			return
		}
		log.Printf("💾 Events backup written: %s", name)
	})
	if err != nil {
		return fmt.Errorf("schedule backup: %w", err)
	}
	b.cron.Start()
	log.Printf("⏰ Events backup scheduled: %s -> %s", schedule, b.dir)
	return nil
}

func (b *Backup) Stop() {
	b.cron.Stop()
}
