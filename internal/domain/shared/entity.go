package shared

import (
	"time"

	"github.com/google/uuid"
)

// Entity is the base interface for all domain entities
type Entity interface {
	GetID() uuid.UUID
	GetCreatedAt() time.Time
	GetUpdatedAt() time.Time
}

// BaseEntity provides common fields for all entities
type BaseEntity struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"not null;index"`
	UpdatedAt time.Time `gorm:"not null"`
}

// GetID returns the entity ID
func (e *BaseEntity) GetID() uuid.UUID {
	return e.ID
}

// GetCreatedAt returns the creation timestamp
func (e *BaseEntity) GetCreatedAt() time.Time {
	return e.CreatedAt
}

// GetUpdatedAt returns the last update timestamp
func (e *BaseEntity) GetUpdatedAt() time.Time {
	return e.UpdatedAt
}

// NewBaseEntity creates a new base entity with a generated ID
func NewBaseEntity() BaseEntity {
	now := time.Now()
	return BaseEntity{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// VendorEntity extends BaseEntity with vendor (tenant) ownership.
// Every record in the system belongs to exactly one vendor account;
// all reads and writes must be scoped by VendorID.
type VendorEntity struct {
	BaseEntity
	VendorID uuid.UUID `gorm:"type:uuid;not null;index"`
}

// NewVendorEntity creates a new vendor-owned entity
func NewVendorEntity(vendorID uuid.UUID) VendorEntity {
	return VendorEntity{
		BaseEntity: NewBaseEntity(),
		VendorID:   vendorID,
	}
}

// BelongsTo reports whether the entity is owned by the given vendor
func (v *VendorEntity) BelongsTo(vendorID uuid.UUID) bool {
	return v.VendorID == vendorID
}
