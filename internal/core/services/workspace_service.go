package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/salonledger/salon_ledger_app/internal/apperrors"
	"github.com/salonledger/salon_ledger_app/internal/core/domain"
	portsrepo "github.com/salonledger/salon_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/salonledger/salon_ledger_app/internal/core/ports/services"
	"github.com/salonledger/salon_ledger_app/internal/dto"
)

// workspaceService implements the WorkspaceSvc interface
type workspaceService struct {
	BaseService
	workspaceRepo portsrepo.WorkspaceRepositoryFacade
	userRepo      portsrepo.UserReader
}

// NewWorkspaceService creates a new workspace service with the provided dependencies
func NewWorkspaceService(workspaceRepo portsrepo.WorkspaceRepositoryFacade, userRepo portsrepo.UserReader) portssvc.WorkspaceSvc {
	return &workspaceService{
		workspaceRepo: workspaceRepo,
		userRepo:      userRepo,
	}
}

var _ portssvc.WorkspaceSvc = (*workspaceService)(nil)

// AuthorizeUserAction verifies the user holds at least the required role in the workspace.
func (s *workspaceService) AuthorizeUserAction(ctx context.Context, userID, workspaceID string, required domain.UserWorkspaceRole) (*domain.UserWorkspace, error) {
	membership, err := s.workspaceRepo.FindUserWorkspaceRole(ctx, userID, workspaceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrForbidden
		}
		s.LogError(ctx, err, "Failed to fetch workspace membership",
			slog.String("user_id", userID),
			slog.String("workspace_id", workspaceID))
		return nil, err
	}

	if !membership.Role.Satisfies(required) {
		s.LogDebug(ctx, "User lacks required workspace role",
			slog.String("user_id", userID),
			slog.String("workspace_id", workspaceID),
			slog.String("role", string(membership.Role)),
			slog.String("required_role", string(required)))
		return nil, apperrors.ErrForbidden
	}

	return membership, nil
}

// CreateWorkspace creates a new workspace and adds the creator as admin.
func (s *workspaceService) CreateWorkspace(ctx context.Context, userID string, req dto.CreateWorkspaceRequest) (*domain.Workspace, error) {
	now := time.Now()
	workspace := domain.Workspace{
		WorkspaceID: uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.workspaceRepo.SaveWorkspace(ctx, workspace); err != nil {
		s.LogError(ctx, err, "Failed to save workspace",
			slog.String("workspace_id", workspace.WorkspaceID))
		return nil, err
	}

	membership := domain.UserWorkspace{
		UserID:      userID,
		WorkspaceID: workspace.WorkspaceID,
		Role:        domain.RoleAdmin,
		JoinedAt:    now,
	}
	if err := s.workspaceRepo.AddUserToWorkspace(ctx, membership); err != nil {
		s.LogError(ctx, err, "Failed to add creator as admin to new workspace",
			slog.String("workspace_id", workspace.WorkspaceID),
			slog.String("user_id", userID))
		return nil, err
	}

	s.LogInfo(ctx, "Workspace created successfully",
		slog.String("workspace_id", workspace.WorkspaceID),
		slog.String("creator_id", userID))
	return &workspace, nil
}

// GetWorkspace retrieves a workspace the user belongs to.
func (s *workspaceService) GetWorkspace(ctx context.Context, userID, workspaceID string) (*domain.Workspace, error) {
	if _, err := s.AuthorizeUserAction(ctx, userID, workspaceID, domain.RoleMaster); err != nil {
		return nil, err
	}

	workspace, err := s.workspaceRepo.FindWorkspaceByID(ctx, workspaceID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find workspace by ID",
				slog.String("workspace_id", workspaceID))
		}
		return nil, err
	}
	return workspace, nil
}

// ListUserWorkspaces retrieves all workspaces the user belongs to.
func (s *workspaceService) ListUserWorkspaces(ctx context.Context, userID string) ([]domain.Workspace, error) {
	workspaces, err := s.workspaceRepo.ListWorkspacesByUserID(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list workspaces for user",
			slog.String("user_id", userID))
		return nil, err
	}
	if workspaces == nil {
		return []domain.Workspace{}, nil
	}
	return workspaces, nil
}

// AddWorkspaceUser adds a user to the workspace with a role. Admin only.
func (s *workspaceService) AddWorkspaceUser(ctx context.Context, userID, workspaceID string, req dto.AddWorkspaceUserRequest) error {
	if _, err := s.AuthorizeUserAction(ctx, userID, workspaceID, domain.RoleAdmin); err != nil {
		return err
	}

	// The target must be a real account.
	if _, err := s.userRepo.FindUserByID(ctx, req.UserID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewBadRequestError("target user does not exist")
		}
		return err
	}

	if existing, err := s.workspaceRepo.FindUserWorkspaceRole(ctx, req.UserID, workspaceID); err == nil && existing != nil {
		return apperrors.ErrDuplicate
	} else if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return err
	}

	membership := domain.UserWorkspace{
		UserID:      req.UserID,
		WorkspaceID: workspaceID,
		Role:        domain.UserWorkspaceRole(req.Role),
		JoinedAt:    time.Now(),
	}
	if err := s.workspaceRepo.AddUserToWorkspace(ctx, membership); err != nil {
		s.LogError(ctx, err, "Failed to add user to workspace",
			slog.String("workspace_id", workspaceID),
			slog.String("target_user_id", req.UserID))
		return err
	}

	s.LogInfo(ctx, "User added to workspace",
		slog.String("workspace_id", workspaceID),
		slog.String("target_user_id", req.UserID),
		slog.String("role", req.Role))
	return nil
}

// ListWorkspaceUsers retrieves the memberships of a workspace.
func (s *workspaceService) ListWorkspaceUsers(ctx context.Context, userID, workspaceID string) ([]domain.UserWorkspace, error) {
	if _, err := s.AuthorizeUserAction(ctx, userID, workspaceID, domain.RoleMaster); err != nil {
		return nil, err
	}

	members, err := s.workspaceRepo.ListWorkspaceUsers(ctx, workspaceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list workspace users",
			slog.String("workspace_id", workspaceID))
		return nil, err
	}
	if members == nil {
		return []domain.UserWorkspace{}, nil
	}
	return members, nil
}

// UpdateWorkspaceUserRole changes a member's role. Admin only. An admin cannot
// demote themselves, so a workspace always keeps at least one admin.
func (s *workspaceService) UpdateWorkspaceUserRole(ctx context.Context, userID, workspaceID, memberID string, req dto.UpdateWorkspaceUserRoleRequest) error {
	if _, err := s.AuthorizeUserAction(ctx, userID, workspaceID, domain.RoleAdmin); err != nil {
		return err
	}

	if userID == memberID {
		return apperrors.NewBadRequestError("cannot change your own role")
	}

	if _, err := s.workspaceRepo.FindUserWorkspaceRole(ctx, memberID, workspaceID); err != nil {
		return err
	}

	newRole := domain.UserWorkspaceRole(req.Role)
	if err := s.workspaceRepo.UpdateUserWorkspaceRole(ctx, memberID, workspaceID, newRole); err != nil {
		s.LogError(ctx, err, "Failed to update workspace user role",
			slog.String("workspace_id", workspaceID),
			slog.String("member_id", memberID))
		return err
	}

	s.LogInfo(ctx, "Workspace user role updated",
		slog.String("workspace_id", workspaceID),
		slog.String("member_id", memberID),
		slog.String("role", req.Role))
	return nil
}
