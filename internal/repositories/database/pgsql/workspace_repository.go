package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/salonledger/salon_ledger_app/internal/apperrors"
	"github.com/salonledger/salon_ledger_app/internal/core/domain"
	portsrepo "github.com/salonledger/salon_ledger_app/internal/core/ports/repositories"
	"github.com/salonledger/salon_ledger_app/internal/models"
	"github.com/salonledger/salon_ledger_app/internal/utils/mapping"
)

type PgxWorkspaceRepository struct {
	BaseRepository
}

// newPgxWorkspaceRepository creates a new repository for workspace data.
func newPgxWorkspaceRepository(pool *pgxpool.Pool) portsrepo.WorkspaceRepositoryFacade {
	return &PgxWorkspaceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.WorkspaceRepositoryFacade = (*PgxWorkspaceRepository)(nil)

// SaveWorkspace persists a new workspace.
func (r *PgxWorkspaceRepository) SaveWorkspace(ctx context.Context, workspace domain.Workspace) error {
	m := mapping.ToModelWorkspace(workspace)
	query := `
		INSERT INTO workspaces (workspace_id, name, description, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.WorkspaceID,
		m.Name,
		m.Description,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert workspace "+m.WorkspaceID, err)
	}
	return nil
}

// FindWorkspaceByID retrieves a specific workspace by its ID.
func (r *PgxWorkspaceRepository) FindWorkspaceByID(ctx context.Context, workspaceID string) (*domain.Workspace, error) {
	query := `
		SELECT workspace_id, name, description, is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM workspaces
		WHERE workspace_id = $1;
	`
	var m models.Workspace
	err := r.Pool.QueryRow(ctx, query, workspaceID).Scan(
		&m.WorkspaceID,
		&m.Name,
		&m.Description,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find workspace by ID "+workspaceID, err)
	}

	workspace := mapping.ToDomainWorkspace(m)
	return &workspace, nil
}

// ListWorkspacesByUserID retrieves all workspaces a user belongs to.
func (r *PgxWorkspaceRepository) ListWorkspacesByUserID(ctx context.Context, userID string) ([]domain.Workspace, error) {
	query := `
		SELECT w.workspace_id, w.name, w.description, w.is_active, w.created_at, w.created_by, w.last_updated_at, w.last_updated_by
		FROM workspaces w
		JOIN workspace_users wu ON wu.workspace_id = w.workspace_id
		WHERE wu.user_id = $1 AND wu.role != 'REMOVED'
		ORDER BY w.created_at;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list workspaces for user "+userID, err)
	}
	defer rows.Close()

	var workspaces []domain.Workspace
	for rows.Next() {
		var m models.Workspace
		if err := rows.Scan(
			&m.WorkspaceID,
			&m.Name,
			&m.Description,
			&m.IsActive,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan workspace row", err)
		}
		workspaces = append(workspaces, mapping.ToDomainWorkspace(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed reading workspace rows", err)
	}
	return workspaces, nil
}

// AddUserToWorkspace adds a user to a workspace with a specific role.
func (r *PgxWorkspaceRepository) AddUserToWorkspace(ctx context.Context, membership domain.UserWorkspace) error {
	query := `
		INSERT INTO workspace_users (user_id, workspace_id, role, joined_at)
		VALUES ($1, $2, $3, $4);
	`
	_, err := r.Pool.Exec(ctx, query,
		membership.UserID,
		membership.WorkspaceID,
		string(membership.Role),
		membership.JoinedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to add user to workspace", err)
	}
	return nil
}

// FindUserWorkspaceRole retrieves the role of a user in a workspace.
func (r *PgxWorkspaceRepository) FindUserWorkspaceRole(ctx context.Context, userID, workspaceID string) (*domain.UserWorkspace, error) {
	query := `
		SELECT wu.user_id, u.name, wu.workspace_id, wu.role, wu.joined_at
		FROM workspace_users wu
		JOIN users u ON u.user_id = wu.user_id
		WHERE wu.user_id = $1 AND wu.workspace_id = $2;
	`
	var m models.WorkspaceUser
	err := r.Pool.QueryRow(ctx, query, userID, workspaceID).Scan(
		&m.UserID,
		&m.UserName,
		&m.WorkspaceID,
		&m.Role,
		&m.JoinedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find workspace membership", err)
	}

	membership := mapping.ToDomainUserWorkspace(m)
	return &membership, nil
}

// ListWorkspaceUsers retrieves all memberships of a workspace.
func (r *PgxWorkspaceRepository) ListWorkspaceUsers(ctx context.Context, workspaceID string) ([]domain.UserWorkspace, error) {
	query := `
		SELECT wu.user_id, u.name, wu.workspace_id, wu.role, wu.joined_at
		FROM workspace_users wu
		JOIN users u ON u.user_id = wu.user_id
		WHERE wu.workspace_id = $1
		ORDER BY wu.joined_at;
	`
	rows, err := r.Pool.Query(ctx, query, workspaceID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list workspace users", err)
	}
	defer rows.Close()

	var members []domain.UserWorkspace
	for rows.Next() {
		var m models.WorkspaceUser
		if err := rows.Scan(&m.UserID, &m.UserName, &m.WorkspaceID, &m.Role, &m.JoinedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan workspace user row", err)
		}
		members = append(members, mapping.ToDomainUserWorkspace(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed reading workspace user rows", err)
	}
	return members, nil
}

// UpdateUserWorkspaceRole changes a user's role in a workspace.
func (r *PgxWorkspaceRepository) UpdateUserWorkspaceRole(ctx context.Context, userID, workspaceID string, role domain.UserWorkspaceRole) error {
	query := `UPDATE workspace_users SET role = $3 WHERE user_id = $1 AND workspace_id = $2;`
	tag, err := r.Pool.Exec(ctx, query, userID, workspaceID, string(role))
	if err != nil {
		return apperrors.NewAppError(500, "failed to update workspace role", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
