package records

import (
	"slices"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// Tx рабочая копия слотов и сессий внутри Store.Update
type Tx struct {
	slots    []domain.Slot
	sessions []domain.Session

	slotsDirty    bool
	sessionsDirty bool
}

// Slots возвращает копию коллекции слотов в порядке хранения
func (tx *Tx) Slots() []domain.Slot {
	return slices.Clone(tx.slots)
}

// Sessions возвращает копию коллекции сессий в порядке хранения
func (tx *Tx) Sessions() []domain.Session {
	return slices.Clone(tx.sessions)
}

// PutSlot заменяет слот с тем же ID или добавляет новый в конец коллекции
func (tx *Tx) PutSlot(slot domain.Slot) {
	if i := domain.FindSlotIndex(tx.slots, slot.ID); i >= 0 {
		tx.slots[i] = slot
	} else {
		tx.slots = append(tx.slots, slot)
	}
	tx.slotsDirty = true
}

// PutSession заменяет сессию с тем же ID или добавляет новую в конец коллекции
func (tx *Tx) PutSession(session domain.Session) {
	if i := domain.FindSessionIndex(tx.sessions, session.ID); i >= 0 {
		tx.sessions[i] = session
	} else {
		tx.sessions = append(tx.sessions, session)
	}
	tx.sessionsDirty = true
}
