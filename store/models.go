package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ProfileRecord is the profiles table row.
type ProfileRecord struct {
	bun.BaseModel `bun:"table:profiles,alias:prf"`
	UserID        string     `bun:"user_id,pk" json:"user_id,omitempty"`
	FullName      string     `bun:"full_name" json:"full_name,omitempty"`
	AvatarURL     string     `bun:"avatar_url" json:"avatar_url,omitempty"`
	Phone         string     `bun:"phone_number" json:"phone_number,omitempty"`
	AgencyID      string     `bun:"agency_id" json:"agency_id,omitempty"`
	IsActive      bool       `bun:"is_active" json:"is_active,omitempty"`
	CreatedAt     *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt     *time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
}

// RoleGrantRecord is the user_roles table row. A user may hold many rows.
type RoleGrantRecord struct {
	bun.BaseModel `bun:"table:user_roles,alias:url"`
	ID            uuid.UUID `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	UserID        string    `bun:"user_id,notnull" json:"user_id,omitempty"`
	Role          string    `bun:"role,notnull" json:"role,omitempty"`
}
