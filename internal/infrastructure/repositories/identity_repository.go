package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sachinkumar2222/Productr/domain"
)

// IdentityRepositoryImpl implements domain.IdentityRepository using GORM.
type IdentityRepositoryImpl struct {
	db *gorm.DB
}

// DBIdentity represents the database model for Identity. Email and Phone are
// nullable so the unique indexes ignore the absent one.
type DBIdentity struct {
	ID         string     `gorm:"primaryKey;size:36"`
	Email      *string    `gorm:"uniqueIndex;size:255"`
	Phone      *string    `gorm:"uniqueIndex;size:32"`
	Role       string     `gorm:"size:32;default:user"`
	OTPCode    *string    `gorm:"column:otp_code;size:12"`
	OTPExpires *time.Time `gorm:"column:otp_expires"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName returns the table name for GORM.
func (DBIdentity) TableName() string {
	return "identities"
}

// NewIdentityRepository creates a new identity repository.
func NewIdentityRepository(db *gorm.DB) *IdentityRepositoryImpl {
	return &IdentityRepositoryImpl{db: db}
}

// FindByRecipient implements domain.IdentityRepository.
func (r *IdentityRepositoryImpl) FindByRecipient(ctx context.Context, key domain.RecipientKey) (*domain.Identity, error) {
	var dbIdentity DBIdentity
	err := r.db.WithContext(ctx).Where(recipientColumn(key)+" = ?", key.Value).First(&dbIdentity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrIdentityNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbIdentity), nil
}

// UpsertCode implements domain.IdentityRepository. Insert-or-overwrite runs
// as one statement so code and expiry can never be written separately.
func (r *IdentityRepositoryImpl) UpsertCode(ctx context.Context, key domain.RecipientKey, code string, expires time.Time) error {
	dbIdentity := &DBIdentity{
		ID:         uuid.NewString(),
		Role:       "user",
		OTPCode:    &code,
		OTPExpires: &expires,
	}
	switch key.Channel {
	case domain.ChannelEmail:
		dbIdentity.Email = &key.Value
	case domain.ChannelPhone:
		dbIdentity.Phone = &key.Value
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: recipientColumn(key)}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"otp_code":    code,
			"otp_expires": expires,
			"updated_at":  time.Now(),
		}),
	}).Create(dbIdentity).Error
}

// ConsumeCode implements domain.IdentityRepository. The conditional update
// is the compare-and-swap that guarantees at most one successful verify per
// issued code.
func (r *IdentityRepositoryImpl) ConsumeCode(ctx context.Context, identityID, code string, now time.Time) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&DBIdentity{}).
		Where("id = ? AND otp_code = ? AND otp_expires > ?", identityID, code, now).
		Updates(map[string]interface{}{
			"otp_code":    nil,
			"otp_expires": nil,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func recipientColumn(key domain.RecipientKey) string {
	if key.Channel == domain.ChannelEmail {
		return "email"
	}
	return "phone"
}

// dbToDomain converts a database identity to a domain identity.
func (r *IdentityRepositoryImpl) dbToDomain(dbIdentity *DBIdentity) *domain.Identity {
	identity := &domain.Identity{
		ID:        dbIdentity.ID,
		Role:      dbIdentity.Role,
		CreatedAt: dbIdentity.CreatedAt,
		UpdatedAt: dbIdentity.UpdatedAt,
	}
	if dbIdentity.Email != nil {
		identity.Email = *dbIdentity.Email
	}
	if dbIdentity.Phone != nil {
		identity.Phone = *dbIdentity.Phone
	}
	if dbIdentity.OTPCode != nil {
		identity.OTPCode = *dbIdentity.OTPCode
	}
	if dbIdentity.OTPExpires != nil {
		identity.OTPExpires = *dbIdentity.OTPExpires
	}
	return identity
}

var _ domain.IdentityRepository = (*IdentityRepositoryImpl)(nil)
