package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"quizku_backend/internals/constants"
	authDTO "quizku_backend/internals/features/users/auth/dto"
	authHelper "quizku_backend/internals/features/users/auth/helper"
	"quizku_backend/internals/features/users/user/model"
	helper "quizku_backend/internals/helpers"
	helperAuth "quizku_backend/internals/helpers/auth"
	"quizku_backend/internals/mocks"
)

const testSecret = "test-secret"

func newSvc(repo *mocks.UserRepository, setupKey string) *AuthService {
	return NewAuthService(repo, testSecret, time.Hour, setupKey)
}

func fiberCode(t *testing.T, err error) int {
	t.Helper()
	var fe *fiber.Error
	require.True(t, errors.As(err, &fe), "expected *fiber.Error, got %v", err)
	return fe.Code
}

func hashed(t *testing.T, pw string) string {
	t.Helper()
	h, err := authHelper.HashPassword(pw)
	require.NoError(t, err)
	return h
}

func TestRegister_CreatesStudentAndIssuesToken(t *testing.T) {
	repo := new(mocks.UserRepository)
	repo.On("FindByEmailOrRegisterNumber", mock.Anything, "a@x.io", "R1").Return(nil, helper.ErrNotFound)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(u *model.UserModel) bool {
		return u.Role == constants.RoleStudent && u.Password != "secret1" && u.CollegeName == constants.DefaultCollegeName
	})).Return(nil)

	res, err := newSvc(repo, "").Register(context.Background(), authDTO.RegisterRequest{
		Name: "Asha", RegisterNumber: "R1", Department: "CSE",
		Email: "a@x.io", Mobile: "9999999", Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, "student", res.User.Role)
	assert.Equal(t, "a@x.io", res.User.Email)

	claims, err := helperAuth.ParseToken(testSecret, res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, claims.UserID)
	assert.Equal(t, constants.RoleStudent, claims.Role)
	repo.AssertExpectations(t)
}

func TestRegister_DuplicateIs409(t *testing.T) {
	repo := new(mocks.UserRepository)
	repo.On("FindByEmailOrRegisterNumber", mock.Anything, "a@x.io", "R1").Return(&model.UserModel{ID: uuid.New()}, nil)

	_, err := newSvc(repo, "").Register(context.Background(), authDTO.RegisterRequest{Email: "a@x.io", RegisterNumber: "R1"})
	assert.Equal(t, fiber.StatusConflict, fiberCode(t, err))
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_RaceOnInsertIs409(t *testing.T) {
	repo := new(mocks.UserRepository)
	repo.On("FindByEmailOrRegisterNumber", mock.Anything, mock.Anything, mock.Anything).Return(nil, helper.ErrNotFound)
	repo.On("Create", mock.Anything, mock.Anything).Return(helper.ErrDuplicate)

	_, err := newSvc(repo, "").Register(context.Background(), authDTO.RegisterRequest{Email: "a@x.io", RegisterNumber: "R1", Password: "secret1"})
	assert.Equal(t, fiber.StatusConflict, fiberCode(t, err))
}

func TestRegister_StoreDownIs503(t *testing.T) {
	repo := new(mocks.UserRepository)
	repo.On("FindByEmailOrRegisterNumber", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))

	_, err := newSvc(repo, "").Register(context.Background(), authDTO.RegisterRequest{Email: "a@x.io", RegisterNumber: "R1"})
	assert.Equal(t, fiber.StatusServiceUnavailable, fiberCode(t, err))
}

func TestLogin(t *testing.T) {
	user := &model.UserModel{ID: uuid.New(), Email: "a@x.io", Role: constants.RoleStudent, Password: hashed(t, "secret1")}

	t.Run("ok", func(t *testing.T) {
		repo := new(mocks.UserRepository)
		repo.On("FindByEmail", mock.Anything, "a@x.io").Return(user, nil)
		res, err := newSvc(repo, "").Login(context.Background(), authDTO.LoginRequest{Email: "a@x.io", Password: "secret1"})
		require.NoError(t, err)
		assert.NotEmpty(t, res.Token)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := new(mocks.UserRepository)
		repo.On("FindByEmail", mock.Anything, "a@x.io").Return(user, nil)
		_, err := newSvc(repo, "").Login(context.Background(), authDTO.LoginRequest{Email: "a@x.io", Password: "nope"})
		assert.Equal(t, fiber.StatusUnauthorized, fiberCode(t, err))
		assert.EqualError(t, err, constants.ErrInvalidLogin)
	})

	t.Run("unknown email", func(t *testing.T) {
		repo := new(mocks.UserRepository)
		repo.On("FindByEmail", mock.Anything, "b@x.io").Return(nil, helper.ErrNotFound)
		_, err := newSvc(repo, "").Login(context.Background(), authDTO.LoginRequest{Email: "b@x.io", Password: "secret1"})
		assert.EqualError(t, err, constants.ErrInvalidLogin)
	})
}

func TestAdminRegister_SetupKey(t *testing.T) {
	req := authDTO.AdminRegisterRequest{Name: "Root", Email: "root@x.io", Password: "secret1", SetupKey: "k"}

	_, err := newSvc(new(mocks.UserRepository), "").AdminRegister(context.Background(), req)
	assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))

	_, err = newSvc(new(mocks.UserRepository), "other").AdminRegister(context.Background(), req)
	assert.Equal(t, fiber.StatusUnauthorized, fiberCode(t, err))
	assert.EqualError(t, err, "Invalid Admin Setup Key")
}

func TestAdminRegister_Conflicts(t *testing.T) {
	req := authDTO.AdminRegisterRequest{Name: "Root", Email: "root@x.io", Password: "secret1", SetupKey: "k"}

	repo := new(mocks.UserRepository)
	repo.On("FindByEmail", mock.Anything, "root@x.io").Return(&model.UserModel{Role: constants.RoleAdmin}, nil).Once()
	_, err := newSvc(repo, "k").AdminRegister(context.Background(), req)
	assert.EqualError(t, err, "Admin account already exists. Please login.")

	repo.On("FindByEmail", mock.Anything, "root@x.io").Return(&model.UserModel{Role: constants.RoleStudent}, nil).Once()
	_, err = newSvc(repo, "k").AdminRegister(context.Background(), req)
	assert.EqualError(t, err, "Email already exists as a student. Use a different email.")
}

func TestAdminRegister_CreatesAdmin(t *testing.T) {
	repo := new(mocks.UserRepository)
	repo.On("FindByEmail", mock.Anything, "root@x.io").Return(nil, helper.ErrNotFound)
	var created *model.UserModel
	repo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		created = args.Get(1).(*model.UserModel)
	}).Return(nil)

	res, err := newSvc(repo, "k").AdminRegister(context.Background(), authDTO.AdminRegisterRequest{
		Name: "Root", Email: "root@x.io", Password: "secret1", SetupKey: "k",
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, constants.RoleAdmin, res.User.Role)
	assert.True(t, strings.HasPrefix(created.RegisterNumber, "ADMIN-"))
	assert.Len(t, created.RegisterNumber, len("ADMIN-")+12)
	assert.Equal(t, "Administration", created.Department)
	assert.Equal(t, "Admin", created.CollegeName)
}

func TestAdminLogin_RejectsStudent(t *testing.T) {
	repo := new(mocks.UserRepository)
	repo.On("FindByEmail", mock.Anything, "a@x.io").Return(&model.UserModel{
		ID: uuid.New(), Role: constants.RoleStudent, Password: hashed(t, "secret1"),
	}, nil)

	_, err := newSvc(repo, "").AdminLogin(context.Background(), authDTO.LoginRequest{Email: "a@x.io", Password: "secret1"})
	assert.Equal(t, fiber.StatusUnauthorized, fiberCode(t, err))
	assert.EqualError(t, err, constants.ErrInvalidAdmin)
}

func TestEnsureAdminUser(t *testing.T) {
	ctx := context.Background()

	t.Run("no env is no-op", func(t *testing.T) {
		repo := new(mocks.UserRepository)
		require.NoError(t, EnsureAdminUser(ctx, repo, "", "", ""))
		repo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
	})

	t.Run("promotes existing user", func(t *testing.T) {
		id := uuid.New()
		repo := new(mocks.UserRepository)
		repo.On("FindByEmail", ctx, "boss@x.io").Return(&model.UserModel{ID: id, Role: constants.RoleStudent}, nil)
		repo.On("SetRole", ctx, id, constants.RoleAdmin).Return(nil)
		require.NoError(t, EnsureAdminUser(ctx, repo, " Boss@x.io ", "pw", ""))
		repo.AssertExpectations(t)
	})

	t.Run("creates admin", func(t *testing.T) {
		repo := new(mocks.UserRepository)
		repo.On("FindByEmail", ctx, "boss@x.io").Return(nil, helper.ErrNotFound)
		repo.On("Create", ctx, mock.MatchedBy(func(u *model.UserModel) bool {
			return u.Name == "Admin" && u.Role == constants.RoleAdmin && u.RegisterNumber == AdminRegisterNumber("boss@x.io")
		})).Return(nil)
		require.NoError(t, EnsureAdminUser(ctx, repo, "boss@x.io", "pw", ""))
		repo.AssertExpectations(t)
	})
}

func TestAdminRegisterNumber(t *testing.T) {
	// 12 hex pertama dari "boss@x"
	assert.Equal(t, "ADMIN-626f73734078", AdminRegisterNumber("boss@x.io"))
	assert.Equal(t, "ADMIN-6140", AdminRegisterNumber("a@"))
}
