package systems

import (
	"encoding/json"
	"errors"

	"github.com/automoto/firstperson/controller"
	"github.com/automoto/firstperson/logger"
	"github.com/quasilyte/gdata"
)

const tuningItem = "tuning"

// Tuning is the per-user controller tuning stored on disk. Zero fields are
// left at their configured value.
type Tuning struct {
	RotationSpeed float64 `json:"rotationSpeed"`
	WalkSpeed     float64 `json:"walkSpeed"`
	SprintSpeed   float64 `json:"sprintSpeed"`
	JumpHeight    float64 `json:"jumpHeight"`
}

// itemStore is the subset of *gdata.Manager used here.
type itemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var store itemStore

// InitPersistence initializes the gdata manager for tuning storage
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		logger.L().Warn("Could not initialize persistence", "error", err)
		return err
	}
	store = m
	return nil
}

// LoadTuning loads saved tuning. It returns nil when nothing is saved or
// persistence is unavailable.
func LoadTuning() (*Tuning, error) {
	if store == nil {
		return nil, nil
	}

	data, err := store.LoadItem(tuningItem)
	if err != nil {
		logger.L().Warn("Could not load tuning", "error", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var t Tuning
	if err := json.Unmarshal(data, &t); err != nil {
		logger.L().Warn("Could not parse saved tuning", "error", err)
		return nil, err
	}
	return &t, nil
}

// SaveTuning writes t to disk.
func SaveTuning(t Tuning) error {
	if store == nil {
		return errors.New("persistence not initialized")
	}

	data, err := json.Marshal(t)
	if err != nil {
		return err
	}
	if err := store.SaveItem(tuningItem, data); err != nil {
		logger.L().Warn("Could not save tuning", "error", err)
		return err
	}
	logger.L().Info("Tuning saved", "rotation_speed", t.RotationSpeed)
	return nil
}

// TuningFrom captures the persisted fields of c.
func TuningFrom(c controller.Config) Tuning {
	return Tuning{
		RotationSpeed: c.RotationSpeed,
		WalkSpeed:     c.WalkSpeed,
		SprintSpeed:   c.SprintSpeed,
		JumpHeight:    c.JumpHeight,
	}
}

// Apply overlays the non-zero fields of t onto c. The result is rejected if
// it would not validate.
func (t Tuning) Apply(c controller.Config) (controller.Config, error) {
	out := c
	if t.RotationSpeed != 0 {
		out.RotationSpeed = t.RotationSpeed
	}
	if t.WalkSpeed != 0 {
		out.WalkSpeed = t.WalkSpeed
	}
	if t.SprintSpeed != 0 {
		out.SprintSpeed = t.SprintSpeed
	}
	if t.JumpHeight != 0 {
		out.JumpHeight = t.JumpHeight
	}
	if err := out.Validate(); err != nil {
		return c, err
	}
	return out, nil
}
