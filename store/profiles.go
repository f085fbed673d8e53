package store

import (
	"context"
	"database/sql"

	"github.com/goliatone/go-errors"
	"github.com/nyaruka/phonenumbers"
	"github.com/uptrace/bun"

	identity "github.com/eddy7896/buildsite-flow-sub004"
)

// Profiles implements identity.ProfileStore on top of the profiles table.
type Profiles struct {
	db     *bun.DB
	region string
	logger identity.Logger
}

// NewProfiles returns a profile gateway. Phone numbers are normalized to
// E.164 using the given default region; records with unparseable numbers
// keep the raw value.
func NewProfiles(db *bun.DB) *Profiles {
	return &Profiles{
		db:     db,
		region: "US",
	}
}

// WithPhoneRegion overrides the default region used for phone normalization.
func (p *Profiles) WithPhoneRegion(region string) *Profiles {
	if region != "" {
		p.region = region
	}
	return p
}

func (p *Profiles) WithLogger(logger identity.Logger) *Profiles {
	p.logger = logger
	return p
}

// FetchProfile loads one profile by user id. A missing row maps to
// identity.ErrProfileNotFound so the session manager can degrade quietly.
func (p *Profiles) FetchProfile(ctx context.Context, userID string) (*identity.Profile, error) {
	record := new(ProfileRecord)

	err := p.db.NewSelect().
		Model(record).
		Where("user_id = ?", userID).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, identity.ErrProfileNotFound
		}
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to fetch profile")
	}

	return &identity.Profile{
		UserID:    record.UserID,
		FullName:  record.FullName,
		AvatarURL: record.AvatarURL,
		Phone:     p.normalizePhone(record.Phone),
		AgencyID:  record.AgencyID,
		IsActive:  record.IsActive,
	}, nil
}

func (p *Profiles) normalizePhone(raw string) string {
	if raw == "" {
		return ""
	}

	// Parse is lenient and will extract digits from free text, so only
	// values that hold a valid number get rewritten
	number, err := phonenumbers.Parse(raw, p.region)
	if err != nil || !phonenumbers.IsValidNumber(number) {
		if p.logger != nil {
			p.logger.Debug("keeping non-normalizable phone value as-is: %q", raw)
		}
		return raw
	}

	return phonenumbers.Format(number, phonenumbers.E164)
}

var _ identity.ProfileStore = (*Profiles)(nil)
