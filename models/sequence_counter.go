package models

import "time"

// SequenceCounter stores the last allocated value for a named monotonic counter.
// Rows are created on first allocation and only ever incremented.
type SequenceCounter struct {
	Name      string    `gorm:"primaryKey;size:64" json:"name"`
	Seq       int64     `gorm:"not null;default:0;check:chk_sequence_counters_seq_non_negative,seq >= 0" json:"seq"`
	CreatedAt time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC')" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC')" json:"updated_at"`
}

func (SequenceCounter) TableName() string { return "sequence_counters" }
