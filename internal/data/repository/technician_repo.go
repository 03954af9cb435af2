package repository

import (
	"context"
	"fmt"

	"movie-api/internal/data/entity"
	"movie-api/pkg/database"

	"go.uber.org/zap"
)

type TechnicianRepository interface {
	Create(ctx context.Context, technician *entity.Technician) error
}

type technicianRepository struct {
	db  database.DBIface
	log *zap.Logger
}

func NewTechnicianRepository(db database.DBIface, log *zap.Logger) TechnicianRepository {
	return &technicianRepository{
		db:  db,
		log: log.With(zap.String("repository", "technician")),
	}
}

func (r *technicianRepository) Create(ctx context.Context, technician *entity.Technician) error {
	id, err := r.db.Insert(ctx, `INSERT INTO technicians (name) VALUES (?)`, technician.Name)
	if err != nil {
		r.log.Error("Failed to create technician",
			zap.Error(err),
			zap.String("name", technician.Name),
		)
		return fmt.Errorf("failed to create technician: %w", err)
	}

	technician.ID = id
	return nil
}
