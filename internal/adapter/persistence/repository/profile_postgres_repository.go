package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"loja_virtual/internal/domain/entities"
	"loja_virtual/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// ProfilePostgresRepository persists profiles and their linked addresses.
//
// A profile row is created lazily on first address upsert, so identities
// minted by the auth provider need no separate provisioning step here.

type ProfilePostgresRepository struct {
	db *sql.DB
}

var _ interfaces.IProfileRepository = (*ProfilePostgresRepository)(nil)

func NewProfilePostgresRepository(db *sql.DB) *ProfilePostgresRepository {
	return &ProfilePostgresRepository{db: db}
}

func (r *ProfilePostgresRepository) GetByID(ctx context.Context, id string) (entities.Profile, error) {
	var (
		p      entities.Profile
		addrID sql.NullString
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, role, address_id, created_at FROM profiles WHERE id = $1`, id,
	).Scan(&p.ID, &p.Role, &addrID, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entities.Profile{}, nil
		}
		return entities.Profile{}, fmt.Errorf("select profile: %w", err)
	}

	if addrID.Valid {
		addr, err := r.addressByID(ctx, addrID.String)
		if err != nil {
			return entities.Profile{}, err
		}
		if addr.ID != "" {
			p.Address = &addr
		}
	}
	return p, nil
}

func (r *ProfilePostgresRepository) UpsertAddress(ctx context.Context, profileID string, addr entities.Address) (entities.Address, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return entities.Address{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO profiles (id, role, created_at) VALUES ($1, $2, $3)
		 ON CONFLICT (id) DO NOTHING`,
		profileID, entities.ProfileRoleCustomer, now,
	)
	if err != nil {
		return entities.Address{}, fmt.Errorf("ensure profile: %w", err)
	}

	var existingAddrID sql.NullString
	err = tx.QueryRowContext(ctx,
		`SELECT address_id FROM profiles WHERE id = $1`, profileID,
	).Scan(&existingAddrID)
	if err != nil {
		return entities.Address{}, fmt.Errorf("select profile address: %w", err)
	}

	if existingAddrID.Valid {
		addr.ID = existingAddrID.String
		addr.UpdatedAt = now
		_, err = tx.ExecContext(ctx,
			`UPDATE addresses
			 SET postal_code = $2, street = $3, number = $4, neighborhood = $5,
			     city = $6, region = $7, complement = $8, updated_at = $9
			 WHERE id = $1`,
			addr.ID, addr.PostalCode, addr.Street, addr.Number, addr.Neighborhood,
			addr.City, addr.Region, addr.Complement, now,
		)
		if err != nil {
			return entities.Address{}, fmt.Errorf("update address: %w", err)
		}
	} else {
		addr.ID = uuid.NewString()
		addr.CreatedAt = now
		addr.UpdatedAt = now
		_, err = tx.ExecContext(ctx,
			`INSERT INTO addresses (id, postal_code, street, number, neighborhood, city, region, complement, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			addr.ID, addr.PostalCode, addr.Street, addr.Number, addr.Neighborhood,
			addr.City, addr.Region, addr.Complement, now, now,
		)
		if err != nil {
			return entities.Address{}, fmt.Errorf("insert address: %w", err)
		}

		_, err = tx.ExecContext(ctx,
			`UPDATE profiles SET address_id = $2 WHERE id = $1`, profileID, addr.ID,
		)
		if err != nil {
			return entities.Address{}, fmt.Errorf("link address: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return entities.Address{}, fmt.Errorf("commit: %w", err)
	}
	return addr, nil
}

func (r *ProfilePostgresRepository) addressByID(ctx context.Context, id string) (entities.Address, error) {
	var a entities.Address
	err := r.db.QueryRowContext(ctx,
		`SELECT id, postal_code, street, number, neighborhood, city, region, complement, created_at, updated_at
		 FROM addresses WHERE id = $1`, id,
	).Scan(&a.ID, &a.PostalCode, &a.Street, &a.Number, &a.Neighborhood, &a.City, &a.Region, &a.Complement, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entities.Address{}, nil
		}
		return entities.Address{}, fmt.Errorf("select address: %w", err)
	}
	return a, nil
}
