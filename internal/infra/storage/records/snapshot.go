package records

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// Snapshot содержимое всех коллекций в формате realtime_db.json
type Snapshot struct {
	Zones    []domain.Zone    `json:"parking_zones"`
	Slots    []domain.Slot    `json:"parking_slots"`
	Sessions []domain.Session `json:"parking_sessions"`
}

// ReadSnapshotFile читает снимок коллекций из JSON файла
func ReadSnapshotFile(path string) (Snapshot, error) {
	var snapshot Snapshot

	data, err := os.ReadFile(path)
	if err != nil {
		return snapshot, fmt.Errorf("%w: read seed file %s: %v", ErrLoad, path, err)
	}
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return snapshot, fmt.Errorf("%w: seed file %s: %v", ErrDecode, path, err)
	}

	return snapshot, nil
}
