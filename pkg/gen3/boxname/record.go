// Package boxname models the box-name block of a Generation III save:
// 14 fixed 9-byte slots stored back to back.
package boxname

import (
	"bytes"
	"fmt"

	gen3errors "github.com/provide-io/boxnames/go/boxnames/pkg/gen3/errors"
	"github.com/provide-io/boxnames/go/boxnames/pkg/logging"
)

const (
	SlotCount  = 14                   // Boxes in the PC storage system
	SlotSize   = 9                    // Bytes per box name
	RecordSize = SlotCount * SlotSize // 126 bytes
	Terminator = 0xFF                 // Ends the visible name within a slot
)

var recordLogger = logging.Named("gen3.boxname")

// Slot is one box name as stored in the save.
type Slot [SlotSize]byte

// EmptySlot returns a slot of nine terminators.
func EmptySlot() Slot {
	var s Slot
	for i := range s {
		s[i] = Terminator
	}
	return s
}

// Name returns the bytes before the first terminator.
func (s Slot) Name() []byte {
	if i := bytes.IndexByte(s[:], Terminator); i >= 0 {
		return s[:i]
	}
	return s[:]
}

// Terminated reports whether the slot contains a terminator.
func (s Slot) Terminated() bool {
	return bytes.IndexByte(s[:], Terminator) >= 0
}

// Record is the full box-name block. Its size never changes; slots are only
// overwritten in place. A Record is not safe for concurrent writers.
type Record struct {
	slots [SlotCount]Slot
}

// New returns a record whose slots are all terminators.
func New() *Record {
	r := &Record{}
	for i := range r.slots {
		r.slots[i] = EmptySlot()
	}
	return r
}

// Unpack builds a record from exactly RecordSize bytes.
func Unpack(data []byte) (*Record, error) {
	r := New()
	if err := r.SetBytes(data); err != nil {
		return nil, err
	}
	return r, nil
}

func checkIndex(index int) error {
	if index < 0 || index >= SlotCount {
		return fmt.Errorf("%w: %d (want 0-%d)", gen3errors.ErrInvalidSlotIndex, index, SlotCount-1)
	}
	return nil
}

// Slot returns a copy of slot index.
func (r *Record) Slot(index int) (Slot, error) {
	if err := checkIndex(index); err != nil {
		return Slot{}, err
	}
	return r.slots[index], nil
}

// SetSlot overwrites slot index.
func (r *Record) SetSlot(index int, s Slot) error {
	if err := checkIndex(index); err != nil {
		return err
	}
	r.slots[index] = s
	return nil
}

// SetSlotBytes overwrites slot index from exactly SlotSize bytes.
func (r *Record) SetSlotBytes(index int, data []byte) error {
	if err := checkIndex(index); err != nil {
		return err
	}
	if len(data) != SlotSize {
		recordLogger.Debug("❌ Invalid slot size",
			"slot", index,
			"expected", SlotSize,
			"got", len(data),
		)
		return fmt.Errorf("%w: slot needs %d bytes, got %d", gen3errors.ErrMalformedInput, SlotSize, len(data))
	}
	copy(r.slots[index][:], data)
	return nil
}

// SetBytes overwrites every slot from exactly RecordSize bytes.
func (r *Record) SetBytes(data []byte) error {
	if len(data) != RecordSize {
		recordLogger.Debug("❌ Invalid record size",
			"expected", RecordSize,
			"got", len(data),
		)
		return fmt.Errorf("%w: record needs %d bytes, got %d", gen3errors.ErrMalformedInput, RecordSize, len(data))
	}
	for i := range r.slots {
		copy(r.slots[i][:], data[i*SlotSize:(i+1)*SlotSize])
	}
	recordLogger.Trace("📥 Loaded box names", "bytes", len(data))
	return nil
}

// Bytes returns the slots concatenated in order. Slot i covers
// [9i, 9i+9).
func (r *Record) Bytes() []byte {
	buf := make([]byte, 0, RecordSize)
	for _, s := range r.slots {
		buf = append(buf, s[:]...)
	}
	return buf
}

// Slots returns a copy of all slots.
func (r *Record) Slots() [SlotCount]Slot {
	return r.slots
}
