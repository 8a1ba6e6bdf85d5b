package config

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"
)

const tuningKey = "tuning"

var gdataManager *gdata.Manager

// InitPersistence opens the per-user data store used for saved tuning.
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	return nil
}

// LoadSavedTuning returns the tuning saved by a previous run, or nil when
// nothing was saved or persistence is unavailable.
func LoadSavedTuning() (*Tuning, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(tuningKey)
	if err != nil {
		log.Printf("Warning: Could not load tuning: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	t := CurrentTuning()
	if err := json.Unmarshal(data, &t); err != nil {
		log.Printf("Warning: Could not parse saved tuning: %v", err)
		return nil, err
	}
	return &t, nil
}

// SaveTuning stores t for the next run.
func SaveTuning(t Tuning) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(t)
	if err != nil {
		log.Printf("Warning: Could not serialize tuning: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(tuningKey, data); err != nil {
		log.Printf("Warning: Could not save tuning: %v", err)
		return err
	}
	return nil
}
