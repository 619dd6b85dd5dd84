package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"staff-auth/app/domain"
	mock_port "staff-auth/app/mocks"
	apperrors "staff-auth/app/utils/errors"
)

func validCreateInput() domain.CreateUserInput {
	return domain.CreateUserInput{
		FirstName:      "Juan",
		FirstLastName:  "Pérez",
		SecondLastName: "Santos",
		Email:          "juan.perez@cfe.mx",
		Password:       "Password123!",
	}
}

func TestUserUsecase_ListUsers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	first := employeeUser()
	second, _ := domain.NewUser("María", "Sánchez", "Ruiz", "maria.sanchez@cfe.mx", "$2a$10$hash2")

	repo := mock_port.NewMockUserRepository(ctrl)
	repo.EXPECT().FindByPrivilege(gomock.Any(), domain.PrivilegeEmployee).
		Return([]*domain.User{first, second}, nil)

	uc := NewUserUsecase(repo, mock_port.NewMockPasswordHasher(ctrl), "cfe.mx", testLogger())

	summaries, err := uc.ListUsers(context.Background())

	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, first.ID, summaries[0].ID)
	assert.Equal(t, first.Email, summaries[0].Email)
	assert.Equal(t, second.FirstName, summaries[1].FirstName)
}

func TestUserUsecase_ListUsers_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_port.NewMockUserRepository(ctrl)
	repo.EXPECT().FindByPrivilege(gomock.Any(), domain.PrivilegeEmployee).
		Return(nil, errors.New("connection refused"))

	uc := NewUserUsecase(repo, mock_port.NewMockPasswordHasher(ctrl), "cfe.mx", testLogger())

	summaries, err := uc.ListUsers(context.Background())

	assert.Error(t, err)
	assert.Nil(t, summaries)
}

func TestUserUsecase_CreateUser(t *testing.T) {
	tests := []struct {
		name         string
		input        func() domain.CreateUserInput
		setupMocks   func(*mock_port.MockUserRepository, *mock_port.MockPasswordHasher)
		wantMessages []string
		wantCreated  bool
	}{
		{
			name:  "valid submission persists an employee",
			input: validCreateInput,
			setupMocks: func(repo *mock_port.MockUserRepository, hasher *mock_port.MockPasswordHasher) {
				repo.EXPECT().FindByEmail(gomock.Any(), "juan.perez@cfe.mx").Return(nil, nil)
				hasher.EXPECT().Hash("Password123!").Return("$2a$10$hashed", nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, user *domain.User) error {
						assert.True(t, user.IsEmployee())
						assert.Equal(t, "$2a$10$hashed", user.PasswordHash)
						assert.NotEqual(t, uuid.Nil, user.ID)
						return nil
					})
			},
			wantCreated: true,
		},
		{
			name: "submitted privilege is ignored",
			input: func() domain.CreateUserInput {
				input := validCreateInput()
				input.Privilege = "admin"
				return input
			},
			setupMocks: func(repo *mock_port.MockUserRepository, hasher *mock_port.MockPasswordHasher) {
				repo.EXPECT().FindByEmail(gomock.Any(), "juan.perez@cfe.mx").Return(nil, nil)
				hasher.EXPECT().Hash("Password123!").Return("$2a$10$hashed", nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, user *domain.User) error {
						assert.Equal(t, domain.PrivilegeEmployee, user.Privilege)
						return nil
					})
			},
			wantCreated: true,
		},
		{
			name: "taken email is rejected before the store is written",
			input: func() domain.CreateUserInput {
				input := validCreateInput()
				input.Email = "ana.lopez@cfe.mx"
				return input
			},
			setupMocks: func(repo *mock_port.MockUserRepository, hasher *mock_port.MockPasswordHasher) {
				repo.EXPECT().FindByEmail(gomock.Any(), "ana.lopez@cfe.mx").Return(adminUser(), nil)
			},
			wantMessages: []string{"Email no permitido"},
		},
		{
			name: "foreign email domain is rejected",
			input: func() domain.CreateUserInput {
				input := validCreateInput()
				input.Email = "juan.perez@gmail.com"
				return input
			},
			setupMocks: func(repo *mock_port.MockUserRepository, hasher *mock_port.MockPasswordHasher) {
				repo.EXPECT().FindByEmail(gomock.Any(), "juan.perez@gmail.com").Return(nil, nil)
			},
			wantMessages: []string{"Dominio inválido"},
		},
		{
			name: "malformed email never reaches the store",
			input: func() domain.CreateUserInput {
				input := validCreateInput()
				input.Email = "no-es-un-email"
				return input
			},
			setupMocks:   func(repo *mock_port.MockUserRepository, hasher *mock_port.MockPasswordHasher) {},
			wantMessages: []string{"Formato de email inválido"},
		},
		{
			name: "missing names are reported per field",
			input: func() domain.CreateUserInput {
				input := validCreateInput()
				input.FirstName = ""
				input.SecondLastName = ""
				return input
			},
			setupMocks: func(repo *mock_port.MockUserRepository, hasher *mock_port.MockPasswordHasher) {
				repo.EXPECT().FindByEmail(gomock.Any(), "juan.perez@cfe.mx").Return(nil, nil)
			},
			wantMessages: []string{
				"Se requiere el nombre completo",
				"Se requiere el nombre completo",
			},
		},
		{
			name: "weak password is rejected with the policy message",
			input: func() domain.CreateUserInput {
				input := validCreateInput()
				input.Password = "password123!"
				return input
			},
			setupMocks: func(repo *mock_port.MockUserRepository, hasher *mock_port.MockPasswordHasher) {
				repo.EXPECT().FindByEmail(gomock.Any(), "juan.perez@cfe.mx").Return(nil, nil)
			},
			wantMessages: []string{"La contraseña debe de contener al menos una letra mayúscula"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mock_port.NewMockUserRepository(ctrl)
			hasher := mock_port.NewMockPasswordHasher(ctrl)
			tt.setupMocks(repo, hasher)

			uc := NewUserUsecase(repo, hasher, "cfe.mx", testLogger())

			id, err := uc.CreateUser(context.Background(), tt.input())

			if tt.wantCreated {
				require.NoError(t, err)
				assert.NotEqual(t, uuid.Nil, id)
			} else {
				require.Error(t, err)
				assert.Equal(t, uuid.Nil, id)
				assert.Equal(t, tt.wantMessages, validationMessages(t, err))
			}
		})
	}
}

func TestUserUsecase_CreateUser_HashingFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hashErr := errors.New("bcrypt failure")

	repo := mock_port.NewMockUserRepository(ctrl)
	repo.EXPECT().FindByEmail(gomock.Any(), "juan.perez@cfe.mx").Return(nil, nil)

	hasher := mock_port.NewMockPasswordHasher(ctrl)
	hasher.EXPECT().Hash("Password123!").Return("", hashErr)

	uc := NewUserUsecase(repo, hasher, "cfe.mx", testLogger())

	id, err := uc.CreateUser(context.Background(), validCreateInput())

	assert.Equal(t, uuid.Nil, id)
	assert.ErrorIs(t, err, hashErr)
}

func TestUserUsecase_UpdateUser(t *testing.T) {
	tests := []struct {
		name         string
		update       domain.UserUpdate
		setupMocks   func(targetID uuid.UUID, repo *mock_port.MockUserRepository, hasher *mock_port.MockPasswordHasher)
		wantMessages []string
		wantNotFound bool
		wantUpdated  bool
	}{
		{
			name:   "name update is applied",
			update: domain.UserUpdate{FirstName: "Carlos"},
			setupMocks: func(targetID uuid.UUID, repo *mock_port.MockUserRepository, hasher *mock_port.MockPasswordHasher) {
				target := employeeUser()
				target.ID = targetID
				repo.EXPECT().FindByID(gomock.Any(), targetID).Return(target, nil).AnyTimes()
				repo.EXPECT().Update(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, user *domain.User) error {
						assert.Equal(t, "Carlos", user.FirstName)
						assert.Equal(t, "Pérez", user.FirstLastName)
						return nil
					})
			},
			wantUpdated: true,
		},
		{
			name:   "password update is rehashed before persisting",
			update: domain.UserUpdate{Password: "NuevaClave12!"},
			setupMocks: func(targetID uuid.UUID, repo *mock_port.MockUserRepository, hasher *mock_port.MockPasswordHasher) {
				target := employeeUser()
				target.ID = targetID
				repo.EXPECT().FindByID(gomock.Any(), targetID).Return(target, nil).AnyTimes()
				hasher.EXPECT().Hash("NuevaClave12!").Return("$2a$10$rehashed", nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, user *domain.User) error {
						assert.Equal(t, "$2a$10$rehashed", user.PasswordHash)
						return nil
					})
			},
			wantUpdated: true,
		},
		{
			name:   "empty update never touches the store",
			update: domain.UserUpdate{},
			setupMocks: func(targetID uuid.UUID, repo *mock_port.MockUserRepository, hasher *mock_port.MockPasswordHasher) {
				target := employeeUser()
				target.ID = targetID
				repo.EXPECT().FindByID(gomock.Any(), targetID).Return(target, nil).AnyTimes()
			},
			wantMessages: []string{"Debería de haber al menos un dato a actualizar"},
		},
		{
			name:   "admin target cannot be modified",
			update: domain.UserUpdate{FirstName: "Carlos"},
			setupMocks: func(targetID uuid.UUID, repo *mock_port.MockUserRepository, hasher *mock_port.MockPasswordHasher) {
				target := adminUser()
				target.ID = targetID
				repo.EXPECT().FindByID(gomock.Any(), targetID).Return(target, nil).AnyTimes()
			},
			wantMessages: []string{"No puede modificarse la información de este usuario"},
		},
		{
			name:   "missing target is reported as not found",
			update: domain.UserUpdate{FirstName: "Carlos"},
			setupMocks: func(targetID uuid.UUID, repo *mock_port.MockUserRepository, hasher *mock_port.MockPasswordHasher) {
				repo.EXPECT().FindByID(gomock.Any(), targetID).Return(nil, nil).AnyTimes()
			},
			wantNotFound: true,
		},
		{
			name:   "email update to a taken address is rejected",
			update: domain.UserUpdate{Email: "ana.lopez@cfe.mx"},
			setupMocks: func(targetID uuid.UUID, repo *mock_port.MockUserRepository, hasher *mock_port.MockPasswordHasher) {
				holder := adminUser()
				target := employeeUser()
				target.ID = targetID
				repo.EXPECT().FindByEmail(gomock.Any(), "ana.lopez@cfe.mx").Return(holder, nil)
				repo.EXPECT().FindByID(gomock.Any(), targetID).Return(target, nil).AnyTimes()
			},
			wantMessages: []string{"Email no permitido"},
		},
		{
			name:   "email update may keep the target's own address",
			update: domain.UserUpdate{Email: "juan.perez@cfe.mx"},
			setupMocks: func(targetID uuid.UUID, repo *mock_port.MockUserRepository, hasher *mock_port.MockPasswordHasher) {
				target := employeeUser()
				target.ID = targetID
				repo.EXPECT().FindByEmail(gomock.Any(), "juan.perez@cfe.mx").Return(target, nil)
				repo.EXPECT().FindByID(gomock.Any(), targetID).Return(target, nil).AnyTimes()
				repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantUpdated: true,
		},
		{
			name:   "short replacement password is rejected",
			update: domain.UserUpdate{Password: "Corta1!"},
			setupMocks: func(targetID uuid.UUID, repo *mock_port.MockUserRepository, hasher *mock_port.MockPasswordHasher) {
				target := employeeUser()
				target.ID = targetID
				repo.EXPECT().FindByID(gomock.Any(), targetID).Return(target, nil).AnyTimes()
			},
			wantMessages: []string{"La contraseña debe de tener al menos 12 caracteres"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			targetID := uuid.New()
			repo := mock_port.NewMockUserRepository(ctrl)
			hasher := mock_port.NewMockPasswordHasher(ctrl)
			tt.setupMocks(targetID, repo, hasher)

			uc := NewUserUsecase(repo, hasher, "cfe.mx", testLogger())

			id, err := uc.UpdateUser(context.Background(), targetID, tt.update)

			switch {
			case tt.wantUpdated:
				require.NoError(t, err)
				assert.Equal(t, targetID, id)
			case tt.wantNotFound:
				require.Error(t, err)
				appErr, ok := apperrors.AsAppError(err)
				require.True(t, ok)
				assert.Equal(t, apperrors.ErrCodeNotFound, appErr.Code)
			default:
				require.Error(t, err)
				assert.Equal(t, uuid.Nil, id)
				assert.Equal(t, tt.wantMessages, validationMessages(t, err))
			}
		})
	}
}

func TestUserUsecase_DeleteUser(t *testing.T) {
	tests := []struct {
		name         string
		setupMocks   func(targetID uuid.UUID, repo *mock_port.MockUserRepository)
		wantMessages []string
		wantDeleted  bool
	}{
		{
			name: "employee target is deleted",
			setupMocks: func(targetID uuid.UUID, repo *mock_port.MockUserRepository) {
				target := employeeUser()
				target.ID = targetID
				repo.EXPECT().FindByID(gomock.Any(), targetID).Return(target, nil).AnyTimes()
				repo.EXPECT().Delete(gomock.Any(), targetID).Return(nil)
			},
			wantDeleted: true,
		},
		{
			name: "missing target short-circuits before the privilege rule",
			setupMocks: func(targetID uuid.UUID, repo *mock_port.MockUserRepository) {
				repo.EXPECT().FindByID(gomock.Any(), targetID).Return(nil, nil)
			},
			wantMessages: []string{"Usuario no registrado"},
		},
		{
			name: "admin target cannot be deleted",
			setupMocks: func(targetID uuid.UUID, repo *mock_port.MockUserRepository) {
				target := adminUser()
				target.ID = targetID
				repo.EXPECT().FindByID(gomock.Any(), targetID).Return(target, nil).AnyTimes()
			},
			wantMessages: []string{"No puede eliminarse este usuario"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			targetID := uuid.New()
			repo := mock_port.NewMockUserRepository(ctrl)
			tt.setupMocks(targetID, repo)

			uc := NewUserUsecase(repo, mock_port.NewMockPasswordHasher(ctrl), "cfe.mx", testLogger())

			err := uc.DeleteUser(context.Background(), targetID)

			if tt.wantDeleted {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Equal(t, tt.wantMessages, validationMessages(t, err))
			}
		})
	}
}
